package api

import (
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"

	"github.com/wyattandrews22-lgtm/the-letter-challenge/http_utils"
	"github.com/wyattandrews22-lgtm/the-letter-challenge/util"
)

// Healthz reports liveness plus how many words are loaded, so a degraded
// (dictionary-less) process is visible from the outside.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	http_utils.SendResponse(w, http.StatusOK, http_utils.DataResponse{
		BaseResponse: http_utils.NewBaseResponse(true, "ok"),
		Data: map[string]any{
			"words":   s.dict.Len(),
			"waiting": s.wsManager.WaitingCount(),
		},
	})
}

type checkRoomRequest struct {
	RoomID string `validate:"required,alphanum,len=6"`
}

// CheckRoom lets a client probe a room code before attempting to join:
// whether the room exists and whether both seats are already taken.
func (s *Server) CheckRoom(w http.ResponseWriter, r *http.Request) {
	req := checkRoomRequest{
		RoomID: chi.URLParam(r, "id"),
	}

	vErr := http_utils.ValidateStruct(util.Validate, req)

	if !reflect.ValueOf(vErr).IsZero() {
		http_utils.SendResponse(w, http.StatusBadRequest, vErr)
		return
	}

	exists, full := s.wsManager.RoomInfo(req.RoomID)

	if !exists {
		http_utils.SendResponse(w, http.StatusNotFound, http_utils.NewBaseResponse(false, "room not found"))
		return
	}

	http_utils.SendResponse(w, http.StatusOK, http_utils.DataResponse{
		BaseResponse: http_utils.NewBaseResponse(true, "room data"),
		Data: map[string]any{
			"id":   req.RoomID,
			"full": full,
		},
	})
}
