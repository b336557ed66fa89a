package httpapi

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/MoayadAlismail/batata-hara/internal/protocol"
	"github.com/MoayadAlismail/batata-hara/internal/registry"
	"github.com/MoayadAlismail/batata-hara/internal/room"
	"github.com/MoayadAlismail/batata-hara/internal/words"
)

func newTestServer(t *testing.T) string {
	t.Helper()
	reg := registry.New(context.Background(), registry.Options{
		Settings: room.Settings{
			MaxPlayers:          8,
			InitialLives:        3,
			InitialTimerSeconds: 10,
			TickInterval:        time.Hour,
		},
		Generator: words.NewGeneratorFrom([]string{"بر"}, rand.New(rand.NewSource(1))),
		Lexicon:   words.NewSetLexicon([]string{"برتقال", "برج"}),
		Logger:    zaptest.NewLogger(t),
	})
	t.Cleanup(reg.Shutdown)

	srv := httptest.NewServer(SetupRoutes(reg, zaptest.NewLogger(t)))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestHealthz(t *testing.T) {
	url := newTestServer(t)

	resp, err := http.Get(url + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// client is a minimal websocket game client for tests. Frames read while
// waiting for something else are kept so acks and broadcasts can arrive
// in either order.
type client struct {
	t       *testing.T
	conn    *websocket.Conn
	backlog []protocol.ServerMessage
}

func dial(t *testing.T, serverURL string) *client {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + "/ws"
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	c := &client{t: t, conn: conn}
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return c
}

func (c *client) send(m protocol.ClientMessage) {
	c.t.Helper()
	payload, err := json.Marshal(m)
	require.NoError(c.t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(c.t, c.conn.Write(ctx, websocket.MessageText, payload))
}

func (c *client) next() protocol.ServerMessage {
	c.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := c.conn.Read(ctx)
	require.NoError(c.t, err)
	var m protocol.ServerMessage
	require.NoError(c.t, json.Unmarshal(data, &m))
	return m
}

func (c *client) ack(id int) protocol.ServerMessage {
	c.t.Helper()
	for i, m := range c.backlog {
		if m.Type == "ack" && m.ID == id {
			c.backlog = append(c.backlog[:i], c.backlog[i+1:]...)
			return m
		}
	}
	for {
		m := c.next()
		if m.Type == "ack" && m.ID == id {
			return m
		}
		c.backlog = append(c.backlog, m)
	}
}

func (c *client) event(name string) protocol.ServerMessage {
	c.t.Helper()
	for i, m := range c.backlog {
		if m.Type == "event" && m.Event == name {
			c.backlog = append(c.backlog[:i], c.backlog[i+1:]...)
			return m
		}
	}
	for {
		m := c.next()
		if m.Type == "event" && m.Event == name {
			return m
		}
		c.backlog = append(c.backlog, m)
	}
}

func data(m protocol.ServerMessage) map[string]any {
	d, _ := m.Data.(map[string]any)
	return d
}

func TestGameFlowOverWebsocket(t *testing.T) {
	url := newTestServer(t)

	host := dial(t, url)
	host.send(protocol.ClientMessage{ID: 1, Type: protocol.OpCreateRoom})
	created := host.ack(1)
	require.True(t, created.Success)
	pin, _ := data(created)["pin"].(string)
	require.Len(t, pin, 6)

	host.send(protocol.ClientMessage{ID: 2, Type: protocol.OpJoinRoom, Pin: pin, PlayerName: "Alice"})
	joined := host.ack(2)
	require.True(t, joined.Success)
	assert.Equal(t, true, data(joined)["isHost"])
	assert.Equal(t, "setup", data(joined)["gameState"])

	// Drain the host's own join broadcast so the next player-joined
	// observed is Bob's.
	hostSeesAlice := host.event(protocol.EvtPlayerJoined)
	assert.Equal(t, "Alice joined the game", data(hostSeesAlice)["message"])

	guest := dial(t, url)
	guest.send(protocol.ClientMessage{ID: 1, Type: protocol.OpJoinRoom, Pin: pin, PlayerName: "Bob"})
	guestJoined := guest.ack(1)
	require.True(t, guestJoined.Success)
	assert.Equal(t, false, data(guestJoined)["isHost"])
	assert.Len(t, data(guestJoined)["players"], 2)

	hostSeesBob := host.event(protocol.EvtPlayerJoined)
	assert.Equal(t, "Bob joined the game", data(hostSeesBob)["message"])

	// Guests cannot start the game.
	guest.send(protocol.ClientMessage{ID: 2, Type: protocol.OpStartGame, Pin: pin})
	assert.Equal(t, protocol.CodeNotHost, guest.ack(2).Error)

	host.send(protocol.ClientMessage{ID: 3, Type: protocol.OpStartGame, Pin: pin})
	require.True(t, host.ack(3).Success)

	started := data(guest.event(protocol.EvtGameStarted))
	assert.Equal(t, "playing", started["phase"])
	assert.Equal(t, "بر", started["activeCombination"])
	assert.Equal(t, float64(10), started["timeRemaining"])

	// Out-of-turn submission is rejected without costing a life.
	guest.send(protocol.ClientMessage{ID: 3, Type: protocol.OpSubmitWord, Pin: pin, Word: "برتقال"})
	assert.Equal(t, protocol.CodeNotYourTurn, guest.ack(3).Error)

	host.send(protocol.ClientMessage{ID: 4, Type: protocol.OpSubmitWord, Pin: pin, Word: "برتقال"})
	submitted := host.ack(4)
	require.True(t, submitted.Success)
	assert.Equal(t, true, data(submitted)["isValid"])

	accepted := data(guest.event(protocol.EvtWordAccepted))
	assert.Equal(t, "برتقال", accepted["word"])
	turn := data(guest.event(protocol.EvtTurnChanged))
	current, _ := turn["currentPlayer"].(map[string]any)
	assert.Equal(t, "Bob", current["name"])
}

func TestJoinUnknownPin(t *testing.T) {
	url := newTestServer(t)

	c := dial(t, url)
	c.send(protocol.ClientMessage{ID: 1, Type: protocol.OpJoinRoom, Pin: "000000", PlayerName: "Alice"})
	m := c.ack(1)
	assert.False(t, m.Success)
	assert.Equal(t, protocol.CodeRoomNotFound, m.Error)
}

func TestDuplicateNameOverWebsocket(t *testing.T) {
	url := newTestServer(t)

	host := dial(t, url)
	host.send(protocol.ClientMessage{ID: 1, Type: protocol.OpCreateRoom})
	pin, _ := data(host.ack(1))["pin"].(string)
	host.send(protocol.ClientMessage{ID: 2, Type: protocol.OpJoinRoom, Pin: pin, PlayerName: "Alice"})
	require.True(t, host.ack(2).Success)

	guest := dial(t, url)
	guest.send(protocol.ClientMessage{ID: 1, Type: protocol.OpJoinRoom, Pin: pin, PlayerName: "Alice"})
	assert.Equal(t, protocol.CodeNameTaken, guest.ack(1).Error)
}

func TestRepeatJoinSameConnection(t *testing.T) {
	url := newTestServer(t)

	host := dial(t, url)
	host.send(protocol.ClientMessage{ID: 1, Type: protocol.OpCreateRoom})
	pin, _ := data(host.ack(1))["pin"].(string)
	host.send(protocol.ClientMessage{ID: 2, Type: protocol.OpJoinRoom, Pin: pin, PlayerName: "Alice"})
	require.True(t, host.ack(2).Success)

	// A connection already seated in the room cannot take a second slot.
	host.send(protocol.ClientMessage{ID: 3, Type: protocol.OpJoinRoom, Pin: pin, PlayerName: "Alice2"})
	again := host.ack(3)
	assert.False(t, again.Success)
	assert.Equal(t, protocol.CodeAlreadyInRoom, again.Error)

	guest := dial(t, url)
	guest.send(protocol.ClientMessage{ID: 1, Type: protocol.OpJoinRoom, Pin: pin, PlayerName: "Bob"})
	joined := guest.ack(1)
	require.True(t, joined.Success)
	assert.Len(t, data(joined)["players"], 2)
}

func TestHostDisconnectReassignsHost(t *testing.T) {
	url := newTestServer(t)

	host := dial(t, url)
	host.send(protocol.ClientMessage{ID: 1, Type: protocol.OpCreateRoom})
	pin, _ := data(host.ack(1))["pin"].(string)
	host.send(protocol.ClientMessage{ID: 2, Type: protocol.OpJoinRoom, Pin: pin, PlayerName: "Alice"})
	require.True(t, host.ack(2).Success)

	guest := dial(t, url)
	guest.send(protocol.ClientMessage{ID: 1, Type: protocol.OpJoinRoom, Pin: pin, PlayerName: "Bob"})
	require.True(t, guest.ack(1).Success)

	require.NoError(t, host.conn.Close(websocket.StatusNormalClosure, ""))

	changed := guest.event(protocol.EvtHostChanged)
	assert.Equal(t, true, data(changed)["isHost"])
	left := guest.event(protocol.EvtPlayerLeft)
	assert.Equal(t, "Alice left the game", data(left)["message"])
}
