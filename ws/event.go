package ws

import (
	"encoding/json"

	"github.com/wyattandrews22-lgtm/the-letter-challenge/game"
)

// Event is the wire envelope for every message in both directions.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type EventHandler = func(e Event, c *Client) error

// Inbound event types.
const (
	EventCreateRoom = "create-room"
	EventJoinRoom   = "join-room"
	EventQuickMatch = "quick-match"
	EventStartGame  = "start-game"
	EventSubmitWord = "submit-word"
	EventGetState   = "get-state"
)

// Outbound event types.
const (
	EventRoomCreated  = "room-created"
	EventRoomJoined   = "room-joined"
	EventMatched      = "matched"
	EventWaiting      = "waiting"
	EventGameStart    = "game-start"
	EventStateUpdate  = "state-update"
	EventMoveRejected = "move-rejected"
	EventPeerLeft     = "peer-left"
	EventError        = "error"
)

type JoinRoomPayload struct {
	RoomID string `json:"roomId"`
	Mode   string `json:"mode,omitempty"`
}

type QuickMatchPayload struct {
	Mode string `json:"mode,omitempty"`
}

type StartGamePayload struct {
	Mode string `json:"mode,omitempty"`
}

type SubmitWordPayload struct {
	Word        string `json:"word"`
	PlayerIndex int    `json:"playerIndex"`
}

type RoomCreatedPayload struct {
	RoomID string `json:"roomId"`
}

// RoomJoinedPayload doubles as the matched payload: both tell a player which
// room it landed in, which seat it holds, and the authoritative state.
type RoomJoinedPayload struct {
	RoomID      string      `json:"roomId"`
	PlayerIndex int         `json:"playerIndex"`
	State       *game.State `json:"state"`
}

type GameStartPayload struct {
	State       *game.State `json:"state"`
	PlayerIndex int         `json:"playerIndex"`
}

type StateUpdatePayload struct {
	State *game.State `json:"state"`
}

type MoveRejectedPayload struct {
	Reason string `json:"reason"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func NewEvent(evtType string, payload any) (Event, error) {
	b, err := json.Marshal(payload)

	if err != nil {
		return Event{}, err
	}

	return Event{Type: evtType, Payload: b}, nil
}

func NewErrorEvent(message string) (Event, error) {
	return NewEvent(EventError, ErrorPayload{Message: message})
}
