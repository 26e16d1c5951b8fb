package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var (
	pongWait = 10 * time.Second

	pingInterval = (pongWait * 8) / 10
)

// egressBuffer bounds the per-client outbound queue. Sends into a full
// buffer are dropped rather than blocking the sender, so a stalled peer
// never delays delivery to its opponent.
const egressBuffer = 32

// Client wraps one websocket connection. The read and write pumps run as
// goroutines for the connection's lifetime; the first failure on either
// side closes done, which tears the client down and removes it from the
// manager.
type Client struct {
	SocketID   string
	manager    *Manager
	connection *websocket.Conn
	egress     chan Event

	done      chan struct{}
	closeOnce sync.Once

	// room and player are the client's matchmaking assignment, guarded by
	// the manager's registry lock.
	room   *Room
	player int
}

func NewClient(conn *websocket.Conn, m *Manager) *Client {
	return &Client{
		SocketID:   uuid.NewString(),
		connection: conn,
		manager:    m,
		egress:     make(chan Event, egressBuffer),
		done:       make(chan struct{}),
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *Client) readMessages() {
	defer c.close()

	c.connection.SetReadLimit(512)

	if err := c.connection.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Error().Err(err).Str("socket", c.SocketID).Msg("cannot set read deadline")
		return
	}

	c.connection.SetPongHandler(c.pongHandler)

	for {
		select {
		case <-c.done:
			return
		default:
			_, payload, err := c.connection.ReadMessage()

			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
					log.Warn().Err(err).Str("socket", c.SocketID).Msg("unexpected socket closure")
				}
				return
			}

			var evt Event

			if err := json.Unmarshal(payload, &evt); err != nil {
				// Malformed envelopes are dropped, not surfaced.
				log.Debug().Err(err).Str("socket", c.SocketID).Msg("dropping unparsable event")
				continue
			}

			if err := c.manager.routeEvent(evt, c); err != nil {
				errEvent, err := NewErrorEvent(err.Error())

				if err != nil {
					log.Error().Err(err).Msg("cannot build error event")
					continue
				}

				c.Send(errEvent)
			}
		}
	}
}

func (c *Client) writeMessages() {
	ticker := time.NewTicker(pingInterval)

	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case <-c.done:
			return
		case event := <-c.egress:
			message, err := json.Marshal(event)

			if err != nil {
				log.Error().Err(err).Str("type", event.Type).Msg("cannot marshal event")
				continue
			}

			if err := c.connection.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Debug().Err(err).Str("socket", c.SocketID).Msg("write failed")
				return
			}
		case <-ticker.C:
			if err := c.connection.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				log.Debug().Err(err).Str("socket", c.SocketID).Msg("cannot send ping")
				return
			}
		}
	}
}

// Waits for either pump to fail, then removes the client from the manager,
// which also handles room teardown and queue cleanup.
func (c *Client) listenForClose() {
	<-c.done
	c.manager.removeClient(c)
}

// Send queues an event for delivery, dropping it if the client's buffer is
// full or the client is closing. Delivery is best-effort per recipient.
func (c *Client) Send(evt Event) {
	select {
	case c.egress <- evt:
	case <-c.done:
	default:
		log.Warn().Str("socket", c.SocketID).Str("type", evt.Type).Msg("egress full, dropping event")
	}
}

// SendEvent marshals payload into an event and queues it.
func (c *Client) SendEvent(evtType string, payload any) error {
	evt, err := NewEvent(evtType, payload)
	if err != nil {
		return err
	}
	c.Send(evt)
	return nil
}

func (c *Client) pongHandler(pongMsg string) error {
	return c.connection.SetReadDeadline(time.Now().Add(pongWait))
}
