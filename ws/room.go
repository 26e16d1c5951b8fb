package ws

import (
	"sync"

	"github.com/wyattandrews22-lgtm/the-letter-challenge/game"
)

// Room holds one two-player match. Membership (Player1/Player2) is guarded
// by the manager's registry lock; State by the room's own mutex, so moves in
// different rooms never contend with each other. State leaves the room only
// as a clone taken under the lock, never as the live pointer.
type Room struct {
	ID      string
	Player1 *Client
	Player2 *Client

	mu    sync.Mutex
	state *game.State
}

func NewRoom(id string, creator *Client) *Room {
	return &Room{
		ID:      id,
		Player1: creator,
	}
}

// players returns the current members, skipping empty seats. Callers must
// hold the registry lock.
func (r *Room) players() []*Client {
	out := make([]*Client, 0, 2)
	if r.Player1 != nil {
		out = append(out, r.Player1)
	}
	if r.Player2 != nil {
		out = append(out, r.Player2)
	}
	return out
}

func (r *Room) full() bool {
	return r.Player1 != nil && r.Player2 != nil
}

// Snapshot returns a copy of the room's game state, or nil before the game
// has started.
func (r *Room) Snapshot() *game.State {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == nil {
		return nil
	}

	return r.state.Clone()
}

// EnsureState lazily materializes game state for the given mode, generating
// a fresh letter pool on first use. Returns a snapshot of the state and
// whether this call created it.
func (r *Room) EnsureState(mode game.Mode, letters func(game.Mode) []string) (*game.State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != nil {
		return r.state.Clone(), false
	}

	r.state = game.NewState(mode, letters(mode))
	return r.state.Clone(), true
}

// ApplyMove runs the move transition under the room lock. On success it
// returns a snapshot taken in the same critical section, so the broadcast
// payload is consistent with the move it announces.
func (r *Room) ApplyMove(apply func(*game.State) error) (*game.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == nil {
		return nil, game.ErrNoGame
	}

	if err := apply(r.state); err != nil {
		return nil, err
	}

	return r.state.Clone(), nil
}
