package ws

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/wyattandrews22-lgtm/the-letter-challenge/game"
)

// Handlers unmarshal their payload and delegate to the manager. A payload
// that does not parse is dropped without a reply; errors returned here are
// surfaced to the sender as an error event by the read pump.

func CreateRoomHandler(e Event, c *Client) error {
	room := c.manager.CreateRoom(c)

	// Already seated somewhere; the request is ignored.
	if room == nil {
		return nil
	}

	return c.SendEvent(EventRoomCreated, RoomCreatedPayload{RoomID: room.ID})
}

func JoinRoomHandler(e Event, c *Client) error {
	var payload JoinRoomPayload

	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		log.Debug().Err(err).Msg("dropping malformed join-room payload")
		return nil
	}

	return c.manager.JoinRoom(c, payload.RoomID, game.ParseMode(payload.Mode))
}

func QuickMatchHandler(e Event, c *Client) error {
	var payload QuickMatchPayload

	if len(e.Payload) > 0 {
		if err := json.Unmarshal(e.Payload, &payload); err != nil {
			log.Debug().Err(err).Msg("dropping malformed quick-match payload")
			return nil
		}
	}

	c.manager.QuickMatch(c, game.ParseMode(payload.Mode))
	return nil
}

func StartGameHandler(e Event, c *Client) error {
	var payload StartGamePayload

	if len(e.Payload) > 0 {
		if err := json.Unmarshal(e.Payload, &payload); err != nil {
			log.Debug().Err(err).Msg("dropping malformed start-game payload")
			return nil
		}
	}

	c.manager.StartGame(c, game.ParseMode(payload.Mode))
	return nil
}

func SubmitWordHandler(e Event, c *Client) error {
	var payload SubmitWordPayload

	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		log.Debug().Err(err).Msg("dropping malformed submit-word payload")
		return nil
	}

	c.manager.SubmitWord(c, payload.Word, payload.PlayerIndex)
	return nil
}

func GetStateHandler(e Event, c *Client) error {
	c.manager.GetState(c)
	return nil
}
