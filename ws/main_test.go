package ws

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/wyattandrews22-lgtm/the-letter-challenge/util"
	"github.com/wyattandrews22-lgtm/the-letter-challenge/words"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)

	os.Exit(m.Run())
}

func newTestManager(dict *words.Dictionary) *Manager {
	return NewManager(&util.Config{
		Port:             "8080",
		MinPlayableWords: 1,
	}, dict)
}

// recvEvent pops the next queued event for a client. Manager operations
// queue replies synchronously, so nothing needs to be awaited.
func recvEvent(t *testing.T, c *Client) Event {
	t.Helper()

	select {
	case evt := <-c.egress:
		return evt
	default:
		t.Fatal("no event queued for client")
		return Event{}
	}
}

func requireNoEvent(t *testing.T, c *Client) {
	t.Helper()

	select {
	case evt := <-c.egress:
		t.Fatalf("unexpected event %q queued for client", evt.Type)
	default:
	}
}

func decodePayload[T any](t *testing.T, evt Event) T {
	t.Helper()

	var payload T
	require.NoError(t, json.Unmarshal(evt.Payload, &payload))
	return payload
}
