package registry

import (
	"context"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/MoayadAlismail/batata-hara/internal/room"
	"github.com/MoayadAlismail/batata-hara/internal/words"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := New(context.Background(), Options{
		Settings: room.Settings{
			MaxPlayers:          8,
			InitialLives:        3,
			InitialTimerSeconds: 10,
			TickInterval:        time.Hour,
		},
		Generator: words.NewGeneratorFrom([]string{"بر"}, rand.New(rand.NewSource(1))),
		Lexicon:   words.NewSetLexicon([]string{"برتقال"}),
		Logger:    zaptest.NewLogger(t),
	})
	t.Cleanup(r.Shutdown)
	return r
}

func ctxT(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

var pinPattern = regexp.MustCompile(`^[1-9]\d{5}$`)

func TestCreate_PinFormat(t *testing.T) {
	reg := newTestRegistry(t)

	rm, err := reg.Create(ctxT(t), "host")
	require.NoError(t, err)
	assert.Regexp(t, pinPattern, rm.Pin())
}

func TestCreate_PinsUnique(t *testing.T) {
	reg := newTestRegistry(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		rm, err := reg.Create(ctxT(t), "host")
		require.NoError(t, err)
		require.False(t, seen[rm.Pin()], "pin %s reused", rm.Pin())
		seen[rm.Pin()] = true
	}
}

func TestGet_ReturnsLiveRoom(t *testing.T) {
	reg := newTestRegistry(t)

	rm, err := reg.Create(ctxT(t), "host")
	require.NoError(t, err)

	assert.Same(t, rm, reg.Get(ctxT(t), rm.Pin()))
	assert.Nil(t, reg.Get(ctxT(t), "000000"))
}

func TestRemove_TearsRoomDown(t *testing.T) {
	reg := newTestRegistry(t)

	rm, err := reg.Create(ctxT(t), "host")
	require.NoError(t, err)

	reg.Remove(rm.Pin())

	require.Eventually(t, func() bool {
		return reg.Get(ctxT(t), rm.Pin()) == nil
	}, time.Second, 10*time.Millisecond)

	select {
	case <-rm.Done():
	case <-time.After(time.Second):
		t.Fatal("room not torn down on removal")
	}
}

func TestEmptyRoomIsReaped(t *testing.T) {
	reg := newTestRegistry(t)

	rm, err := reg.Create(ctxT(t), "host")
	require.NoError(t, err)
	pin := rm.Pin()

	res, err := rm.Join(ctxT(t), "host", "Alice")
	require.NoError(t, err)
	require.NoError(t, res.Err)
	require.NoError(t, rm.Leave(ctxT(t), "host"))

	// The last player leaving deletes the room and frees its code.
	require.Eventually(t, func() bool {
		return reg.Get(ctxT(t), pin) == nil
	}, time.Second, 10*time.Millisecond)
}

func TestShutdown_ClosesRooms(t *testing.T) {
	reg := newTestRegistry(t)

	rm, err := reg.Create(ctxT(t), "host")
	require.NoError(t, err)

	reg.Shutdown()

	select {
	case <-rm.Done():
	case <-time.After(time.Second):
		t.Fatal("room survived registry shutdown")
	}
}
