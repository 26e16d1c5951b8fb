package ws

import (
	"errors"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/wyattandrews22-lgtm/the-letter-challenge/game"
	"github.com/wyattandrews22-lgtm/the-letter-challenge/util"
	"github.com/wyattandrews22-lgtm/the-letter-challenge/words"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is full")
)

const (
	roomIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	roomIDLength   = 6
)

// Manager owns the process-wide matchmaking registries: every connected
// client, every live room, and the FIFO queue of players waiting for a
// quick match. All registry mutations go through the manager's lock; a
// room's game state has its own lock and is never touched while the
// registry lock is held.
//
// A client is in at most one place at a time: seated in a room or waiting
// in the queue, never both. Entering a room dequeues the client; a seated
// client must leave before it can queue or be seated elsewhere.
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	rooms    map[string]*Room
	waiting  []*Client
	handlers map[string]EventHandler

	config *util.Config
	dict   *words.Dictionary
	gen    *words.Generator
	rand   *rand.Rand

	upgrader websocket.Upgrader
}

func NewManager(config *util.Config, dict *words.Dictionary) *Manager {
	m := &Manager{
		clients:  make(map[string]*Client),
		rooms:    make(map[string]*Room),
		handlers: make(map[string]EventHandler),
		config:   config,
		dict:     dict,
		gen:      words.NewGenerator(dict, rand.NewSource(time.Now().UnixNano())),
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	m.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     m.checkOrigin,
	}

	m.setupEventHandlers()
	return m
}

func (m *Manager) setupEventHandlers() {
	m.handlers[EventCreateRoom] = CreateRoomHandler
	m.handlers[EventJoinRoom] = JoinRoomHandler
	m.handlers[EventQuickMatch] = QuickMatchHandler
	m.handlers[EventStartGame] = StartGameHandler
	m.handlers[EventSubmitWord] = SubmitWordHandler
	m.handlers[EventGetState] = GetStateHandler
}

func (m *Manager) routeEvent(e Event, c *Client) error {
	if handler, ok := m.handlers[e.Type]; ok {
		return handler(e, c)
	}
	return errors.New("cannot handle this event")
}

func (m *Manager) addClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.SocketID] = client
}

// removeClient runs the full disconnect path: Leave tears down the client's
// room or dequeues it, then the client is dropped from the registry and its
// socket closed.
func (m *Manager) removeClient(client *Client) {
	m.Leave(client)

	m.Lock()
	defer m.Unlock()

	if _, ok := m.clients[client.SocketID]; ok {
		client.connection.Close()
		delete(m.clients, client.SocketID)
	}
}

// seat pairs a room member with its player index, captured under the
// registry lock so broadcasts never read the seat pointers unsynchronized.
type seat struct {
	client *Client
	index  int
}

func (m *Manager) seatsLocked(room *Room) []seat {
	out := make([]seat, 0, 2)
	for _, p := range room.players() {
		out = append(out, seat{client: p, index: p.player})
	}
	return out
}

func (m *Manager) seats(room *Room) []seat {
	m.RLock()
	defer m.RUnlock()
	return m.seatsLocked(room)
}

// dequeueLocked drops the client from the waiting queue. Caller must hold
// the registry write lock.
func (m *Manager) dequeueLocked(c *Client) {
	m.waiting = lo.Filter(m.waiting, func(w *Client, _ int) bool {
		return w != c
	})
}

// letters generates a fresh pool sized for the mode.
func (m *Manager) letters(mode game.Mode) []string {
	return m.gen.Generate(mode.PoolSize(), m.config.MinPlayableWords)
}

// newRoomID generates a short code unique among live rooms. Codes may be
// reused after their room is gone. Caller must hold the registry lock.
func (m *Manager) newRoomID() string {
	for {
		b := make([]byte, roomIDLength)
		for i := range b {
			b[i] = roomIDAlphabet[m.rand.Intn(len(roomIDAlphabet))]
		}

		id := string(b)
		if _, taken := m.rooms[id]; !taken {
			return id
		}
	}
}

// CreateRoom opens a room with the client as player 1 and no game state;
// state is created when a second player joins or the host starts the game.
// A queued client leaves the queue; a client already seated in a room may
// not open another, and nil is returned.
func (m *Manager) CreateRoom(c *Client) *Room {
	m.Lock()
	defer m.Unlock()

	if c.room != nil {
		return nil
	}

	m.dequeueLocked(c)

	room := NewRoom(m.newRoomID(), c)
	m.rooms[room.ID] = room

	c.room = room
	c.player = 1

	log.Info().Str("room", room.ID).Str("socket", c.SocketID).Msg("room created")

	return room
}

// JoinRoom seats the client as player 2 and lazily starts the game. Both
// players are told the room is ready along with their seat and the state.
// A client already seated somewhere is ignored.
func (m *Manager) JoinRoom(c *Client, roomID string, mode game.Mode) error {
	m.Lock()

	if c.room != nil {
		m.Unlock()
		return nil
	}

	room, ok := m.rooms[roomID]

	if !ok {
		m.Unlock()
		return ErrRoomNotFound
	}

	if room.full() {
		m.Unlock()
		return ErrRoomFull
	}

	m.dequeueLocked(c)

	room.Player2 = c
	c.room = room
	c.player = 2

	seats := m.seatsLocked(room)

	m.Unlock()

	state, _ := room.EnsureState(mode, m.letters)

	log.Info().Str("room", room.ID).Str("socket", c.SocketID).Msg("player joined room")

	for _, s := range seats {
		s.client.SendEvent(EventRoomJoined, RoomJoinedPayload{
			RoomID:      room.ID,
			PlayerIndex: s.index,
			State:       state,
		})
	}

	return nil
}

// QuickMatch pairs the client with the head of the waiting queue, or
// enqueues it when nobody is waiting. The earlier waiter is always player 1.
// A client already seated or already queued is ignored, so a room's member
// can never reappear in the queue and a client cannot pair with itself.
func (m *Manager) QuickMatch(c *Client, mode game.Mode) {
	m.Lock()

	if c.room != nil || lo.Contains(m.waiting, c) {
		m.Unlock()
		return
	}

	if len(m.waiting) == 0 {
		m.waiting = append(m.waiting, c)
		m.Unlock()

		c.SendEvent(EventWaiting, struct{}{})
		return
	}

	waiter := m.waiting[0]
	m.waiting = m.waiting[1:]

	room := NewRoom(m.newRoomID(), waiter)
	room.Player2 = c
	m.rooms[room.ID] = room

	waiter.room = room
	waiter.player = 1
	c.room = room
	c.player = 2

	seats := m.seatsLocked(room)

	m.Unlock()

	state, _ := room.EnsureState(mode, m.letters)

	log.Info().Str("room", room.ID).Msg("quick match paired")

	for _, s := range seats {
		s.client.SendEvent(EventMatched, RoomJoinedPayload{
			RoomID:      room.ID,
			PlayerIndex: s.index,
			State:       state,
		})
	}
}

// Leave detaches the client from matchmaking. A queued client is silently
// dequeued; a seated client takes its whole room down, and the other player
// is told the peer left. There is no solo continuation.
func (m *Manager) Leave(c *Client) {
	m.Lock()

	m.dequeueLocked(c)

	room := c.room

	if room == nil {
		m.Unlock()
		return
	}

	delete(m.rooms, room.ID)

	var sibling *Client
	for _, p := range room.players() {
		p.room = nil
		p.player = 0
		if p != c {
			sibling = p
		}
	}

	m.Unlock()

	log.Info().Str("room", room.ID).Str("socket", c.SocketID).Msg("player left, room destroyed")

	if sibling != nil {
		sibling.SendEvent(EventPeerLeft, struct{}{})
	}
}

// StartGame materializes game state for the client's room if it has none
// and announces game-start to every member with their own seat index.
// Without a room this is a no-op.
func (m *Manager) StartGame(c *Client, mode game.Mode) {
	m.RLock()
	room := c.room

	if room == nil {
		m.RUnlock()
		return
	}

	seats := m.seatsLocked(room)
	m.RUnlock()

	state, created := room.EnsureState(mode, m.letters)

	if created {
		log.Info().Str("room", room.ID).Str("mode", string(state.Mode)).Msg("game started")
	}

	for _, s := range seats {
		s.client.SendEvent(EventGameStart, GameStartPayload{
			State:       state,
			PlayerIndex: s.index,
		})
	}
}

// SubmitWord adjudicates one submission. A rejection goes back to the
// submitter only; an accepted move broadcasts the updated state to the
// whole room, submitter included.
func (m *Manager) SubmitWord(c *Client, word string, player int) {
	m.RLock()
	room := c.room
	m.RUnlock()

	if room == nil {
		return
	}

	state, err := room.ApplyMove(func(s *game.State) error {
		return s.ApplyMove(m.dict, word, player)
	})

	if err != nil {
		var moveErr *game.MoveError

		if errors.As(err, &moveErr) {
			c.SendEvent(EventMoveRejected, MoveRejectedPayload{Reason: moveErr.Reason})
		}
		// A move against a not-yet-started game is a no-op.
		return
	}

	evt := mustEvent(EventStateUpdate, StateUpdatePayload{State: state})

	for _, s := range m.seats(room) {
		s.client.Send(evt)
	}
}

// GetState sends the room's current state to the requesting client only.
// No room or no started game is a no-op.
func (m *Manager) GetState(c *Client) {
	m.RLock()
	room := c.room
	m.RUnlock()

	if room == nil {
		return
	}

	state := room.Snapshot()

	if state == nil {
		return
	}

	c.SendEvent(EventStateUpdate, StateUpdatePayload{State: state})
}

// RoomInfo reports whether a room exists and whether both seats are taken.
func (m *Manager) RoomInfo(roomID string) (exists, full bool) {
	m.RLock()
	defer m.RUnlock()

	room, ok := m.rooms[roomID]

	if !ok {
		return false, false
	}

	return true, room.full()
}

// WaitingCount reports how many players are queued for quick match.
func (m *Manager) WaitingCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.waiting)
}

// ServeWS upgrades the request and runs the connection's pumps until the
// socket dies, at which point the client is cleaned up.
func (m *Manager) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)

	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := NewClient(conn, m)
	m.addClient(client)

	log.Debug().Str("socket", client.SocketID).Msg("client connected")

	go client.readMessages()
	go client.writeMessages()
	go client.listenForClose()
}

func (m *Manager) checkOrigin(r *http.Request) bool {
	if m.config.AllowedOrigins == "" {
		return true
	}

	origin := r.Header.Get("Origin")

	for _, allowed := range strings.Split(m.config.AllowedOrigins, ",") {
		if strings.TrimSpace(allowed) == origin {
			return true
		}
	}

	return false
}

// mustEvent builds an event from a payload that cannot fail to marshal.
func mustEvent(evtType string, payload any) Event {
	evt, err := NewEvent(evtType, payload)
	if err != nil {
		panic(err)
	}
	return evt
}
