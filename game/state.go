package game

import (
	"strings"

	"github.com/wyattandrews22-lgtm/the-letter-challenge/words"
)

type Mode string

const (
	ModeBasic    Mode = "basic"
	ModeVersus   Mode = "versus"
	ModeTerrible Mode = "terrible"
)

// PoolSize returns the number of letters a game of this mode plays with.
// Unknown modes fall back to versus, the default.
func (m Mode) PoolSize() int {
	switch m {
	case ModeBasic:
		return 5
	case ModeTerrible:
		return 10
	default:
		return 20
	}
}

// ParseMode normalizes a client-supplied mode string. Empty or unrecognized
// values become versus.
func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(s)) {
	case ModeBasic:
		return ModeBasic
	case ModeTerrible:
		return ModeTerrible
	default:
		return ModeVersus
	}
}

type FoundWord struct {
	Word string `json:"word"`
	By   int    `json:"by"`
}

// State is the authoritative record of one match. It is mutated only by
// ApplyMove, and callers must serialize access per room.
type State struct {
	Mode       Mode        `json:"mode"`
	Letters    []string    `json:"letters"`
	Turn       int         `json:"turn"`
	P1Score    int         `json:"p1Score"`
	P2Score    int         `json:"p2Score"`
	FoundWords []FoundWord `json:"foundWords"`

	// found mirrors FoundWords for duplicate lookup. Reconstructible, so
	// never serialized.
	found map[string]struct{}
}

func NewState(mode Mode, letters []string) *State {
	return &State{
		Mode:       mode,
		Letters:    letters,
		Turn:       1,
		FoundWords: []FoundWord{},
		found:      make(map[string]struct{}),
	}
}

// Clone returns a deep copy of the state. Outbound payloads are built from
// clones so that a move accepted after the copy cannot mutate a payload
// mid-marshal.
func (s *State) Clone() *State {
	c := &State{
		Mode:       s.Mode,
		Turn:       s.Turn,
		P1Score:    s.P1Score,
		P2Score:    s.P2Score,
		Letters:    append([]string(nil), s.Letters...),
		FoundWords: append([]FoundWord{}, s.FoundWords...),
		found:      make(map[string]struct{}, len(s.found)),
	}

	for w := range s.found {
		c.found[w] = struct{}{}
	}

	return c
}

// ApplyMove validates word against the current state and dictionary and, if
// accepted, records it for player, credits len(word) points, and flips the
// turn. Words are lowercased before any comparison, so resubmitting an
// accepted word in different casing is still a duplicate.
//
// Whose turn it is is deliberately not checked: either player may submit at
// any time, and the turn marker flips on every accepted move regardless.
func (s *State) ApplyMove(dict *words.Dictionary, word string, player int) error {
	word = strings.ToLower(strings.TrimSpace(word))

	if word == "" {
		return &MoveError{Reason: ReasonInvalidWord}
	}

	if _, ok := s.found[word]; ok {
		return &MoveError{Reason: ReasonAlreadyFound}
	}

	if !dict.Contains(word) || !words.CanFormFromLetters(word, s.Letters) {
		return &MoveError{Reason: ReasonInvalidWord}
	}

	s.FoundWords = append(s.FoundWords, FoundWord{Word: word, By: player})
	s.found[word] = struct{}{}

	if player == 1 {
		s.P1Score += len(word)
	} else {
		s.P2Score += len(word)
	}

	if s.Turn == 1 {
		s.Turn = 2
	} else {
		s.Turn = 1
	}

	return nil
}
