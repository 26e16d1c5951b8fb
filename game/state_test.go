package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wyattandrews22-lgtm/the-letter-challenge/words"
)

var testLetters = []string{"C", "A", "B", "T", "E", "S"}

func newTestState() (*State, *words.Dictionary) {
	dict := words.New([]string{"cab", "cat", "bat", "beast", "taste"})
	return NewState(ModeVersus, testLetters), dict
}

func TestApplyMove(t *testing.T) {
	t.Run("accepted move records word, score and turn", func(t *testing.T) {
		s, dict := newTestState()

		require.NoError(t, s.ApplyMove(dict, "cab", 1))

		require.Equal(t, []FoundWord{{Word: "cab", By: 1}}, s.FoundWords)
		require.Equal(t, 3, s.P1Score)
		require.Equal(t, 0, s.P2Score)
		require.Equal(t, 2, s.Turn)
	})

	t.Run("duplicate rejected regardless of submitter or casing", func(t *testing.T) {
		s, dict := newTestState()

		require.NoError(t, s.ApplyMove(dict, "cab", 1))

		for _, resubmit := range []string{"cab", "CAB", "Cab"} {
			for _, player := range []int{1, 2} {
				err := s.ApplyMove(dict, resubmit, player)

				var moveErr *MoveError
				require.ErrorAs(t, err, &moveErr)
				require.Equal(t, ReasonAlreadyFound, moveErr.Reason)
			}
		}

		require.Len(t, s.FoundWords, 1)
	})

	t.Run("unknown word rejected", func(t *testing.T) {
		s, dict := newTestState()

		err := s.ApplyMove(dict, "abc", 1)

		var moveErr *MoveError
		require.ErrorAs(t, err, &moveErr)
		require.Equal(t, ReasonInvalidWord, moveErr.Reason)
	})

	t.Run("word not formable from letters rejected", func(t *testing.T) {
		s := NewState(ModeVersus, testLetters)

		// In the dictionary, but needs two As.
		err := s.ApplyMove(words.New([]string{"abate"}), "abate", 1)

		var moveErr *MoveError
		require.ErrorAs(t, err, &moveErr)
		require.Equal(t, ReasonInvalidWord, moveErr.Reason)
	})

	t.Run("empty dictionary still enforces letter feasibility", func(t *testing.T) {
		s := NewState(ModeBasic, []string{"C", "A", "B"})
		empty := words.New(nil)

		require.NoError(t, s.ApplyMove(empty, "cab", 1))

		err := s.ApplyMove(empty, "dog", 2)

		var moveErr *MoveError
		require.ErrorAs(t, err, &moveErr)
		require.Equal(t, ReasonInvalidWord, moveErr.Reason)
	})

	t.Run("empty submission rejected", func(t *testing.T) {
		s, dict := newTestState()

		err := s.ApplyMove(dict, "  ", 1)

		var moveErr *MoveError
		require.ErrorAs(t, err, &moveErr)
		require.Equal(t, ReasonInvalidWord, moveErr.Reason)
	})

	t.Run("scores sum the lengths of each player's words", func(t *testing.T) {
		s, dict := newTestState()

		moves := []struct {
			word   string
			player int
		}{
			{"cab", 1},
			{"beast", 2},
			{"cat", 2},
			{"taste", 1},
		}

		for _, m := range moves {
			require.NoError(t, s.ApplyMove(dict, m.word, m.player))
		}

		p1, p2 := 0, 0
		for _, fw := range s.FoundWords {
			if fw.By == 1 {
				p1 += len(fw.Word)
			} else {
				p2 += len(fw.Word)
			}
		}

		require.Equal(t, p1, s.P1Score)
		require.Equal(t, p2, s.P2Score)
		require.Equal(t, 8, s.P1Score)
		require.Equal(t, 8, s.P2Score)
	})

	t.Run("turn flips on every accepted move, not per submitter", func(t *testing.T) {
		s, dict := newTestState()

		// Player 1 submits every word; the turn marker alternates anyway
		// because out-of-turn submissions are not rejected.
		for i, word := range []string{"cab", "cat", "bat"} {
			require.Equal(t, i%2+1, s.Turn)
			require.NoError(t, s.ApplyMove(dict, word, 1))
		}

		require.Equal(t, 2, s.Turn)
	})
}

func TestClone(t *testing.T) {
	s, dict := newTestState()
	require.NoError(t, s.ApplyMove(dict, "cab", 1))

	clone := s.Clone()

	require.Equal(t, s.FoundWords, clone.FoundWords)
	require.Equal(t, s.Letters, clone.Letters)

	// Moves applied to either copy must not leak into the other.
	require.NoError(t, clone.ApplyMove(dict, "bat", 2))

	require.Len(t, s.FoundWords, 1)
	require.Equal(t, 0, s.P2Score)
	require.Equal(t, 2, s.Turn)

	// The duplicate set is copied too: "bat" is still fresh for the
	// original, while "cab" stays a duplicate on the clone.
	require.NoError(t, s.ApplyMove(dict, "bat", 2))

	var moveErr *MoveError
	require.ErrorAs(t, clone.ApplyMove(dict, "cab", 2), &moveErr)
	require.Equal(t, ReasonAlreadyFound, moveErr.Reason)

	clone.Letters[0] = "z"
	require.Equal(t, "C", s.Letters[0])
}

func TestParseMode(t *testing.T) {
	require.Equal(t, ModeBasic, ParseMode("basic"))
	require.Equal(t, ModeTerrible, ParseMode("TERRIBLE"))
	require.Equal(t, ModeVersus, ParseMode("versus"))
	require.Equal(t, ModeVersus, ParseMode(""))
	require.Equal(t, ModeVersus, ParseMode("bogus"))
}

func TestPoolSize(t *testing.T) {
	require.Equal(t, 5, ModeBasic.PoolSize())
	require.Equal(t, 10, ModeTerrible.PoolSize())
	require.Equal(t, 20, ModeVersus.PoolSize())
	require.Equal(t, 20, Mode("unknown").PoolSize())
}
