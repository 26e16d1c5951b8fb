package game

import (
	"errors"
	"fmt"
)

// ErrNoGame marks a move against a room whose game has not started.
var ErrNoGame = errors.New("no game in progress")

const (
	ReasonAlreadyFound = "already-found"
	ReasonInvalidWord  = "invalid-word"
)

// MoveError is a terminal rejection of a single submission. The client may
// resubmit; nothing is retried or rolled back server-side.
type MoveError struct {
	Reason string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move rejected: %s", e.Reason)
}
