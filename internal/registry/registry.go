// Package registry owns the mapping from 6-digit PIN codes to live room
// actors. A single goroutine serializes creation, lookup, and removal, so
// PIN uniqueness needs no locking. Codes are freed for reuse when their
// room goes away.
package registry

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/MoayadAlismail/batata-hara/internal/room"
	"github.com/MoayadAlismail/batata-hara/internal/words"
)

// ErrRoomCreation reports a failure to mint a room, which only happens
// when the PIN entropy source errors.
var ErrRoomCreation = errors.New("room creation failed")

// Options configures a Registry and the rooms it creates.
type Options struct {
	Settings  room.Settings
	Generator *words.Generator
	Lexicon   words.Lexicon
	Rules     words.Rules
	Logger    *zap.Logger
}

type msg interface{ isRegistryMsg() }

type createMsg struct {
	hostConnID string
	reply      chan *room.Room
}

type getMsg struct {
	pin   string
	reply chan *room.Room
}

type removeMsg struct{ pin string }

type shutdownMsg struct{}

func (createMsg) isRegistryMsg()   {}
func (getMsg) isRegistryMsg()      {}
func (removeMsg) isRegistryMsg()   {}
func (shutdownMsg) isRegistryMsg() {}

// Registry is the process-owned room table. Multiple isolated registries
// may coexist, which tests rely on.
type Registry struct {
	inbox  chan msg
	rooms  map[string]*room.Room
	opts   Options
	ctx    context.Context
	cancel context.CancelFunc
	log    *zap.Logger
}

func New(parent context.Context, opts Options) *Registry {
	ctx, cancel := context.WithCancel(parent)
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	r := &Registry{
		inbox:  make(chan msg, 64),
		rooms:  make(map[string]*room.Room),
		opts:   opts,
		ctx:    ctx,
		cancel: cancel,
		log:    opts.Logger,
	}
	go r.loop()
	return r
}

func (r *Registry) loop() {
	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return

		case m := <-r.inbox:
			switch msg := m.(type) {
			case createMsg:
				msg.reply <- r.handleCreate(msg.hostConnID)

			case getMsg:
				msg.reply <- r.rooms[msg.pin]

			case removeMsg:
				if rm := r.rooms[msg.pin]; rm != nil {
					rm.Close()
					delete(r.rooms, msg.pin)
					r.log.Info("room removed", zap.String("pin", msg.pin))
				}

			case shutdownMsg:
				r.shutdown()
				return
			}
		}
	}
}

func (r *Registry) handleCreate(hostConnID string) *room.Room {
	var pin string
	for {
		p, err := generatePIN()
		if err != nil {
			r.log.Error("pin generation failed", zap.Error(err))
			return nil
		}
		if _, taken := r.rooms[p]; !taken {
			pin = p
			break
		}
	}

	rm := room.New(r.ctx, room.Params{
		Pin:        pin,
		HostConnID: hostConnID,
		Settings:   r.opts.Settings,
		Generator:  r.opts.Generator,
		Lexicon:    r.opts.Lexicon,
		Rules:      r.opts.Rules,
		Logger:     r.opts.Logger,
		OnEmpty: func() {
			// Called from the room's goroutine once it has emptied; the
			// registry entry is all that is left to reap.
			select {
			case r.inbox <- removeMsg{pin: pin}:
			case <-r.ctx.Done():
			}
		},
	})
	r.rooms[pin] = rm
	r.log.Info("room created", zap.String("pin", pin))
	return rm
}

func (r *Registry) shutdown() {
	for pin, rm := range r.rooms {
		rm.Close()
		delete(r.rooms, pin)
	}
	r.cancel()
}

// Create makes a new room in Setup with hostConnID as host and returns it.
func (r *Registry) Create(ctx context.Context, hostConnID string) (*room.Room, error) {
	reply := make(chan *room.Room, 1)
	select {
	case r.inbox <- createMsg{hostConnID: hostConnID, reply: reply}:
	case <-r.ctx.Done():
		return nil, context.Canceled
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case rm := <-reply:
		if rm == nil {
			return nil, ErrRoomCreation
		}
		return rm, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Get returns the live room for pin, or nil.
func (r *Registry) Get(ctx context.Context, pin string) *room.Room {
	reply := make(chan *room.Room, 1)
	select {
	case r.inbox <- getMsg{pin: pin, reply: reply}:
	case <-r.ctx.Done():
		return nil
	case <-ctx.Done():
		return nil
	}
	select {
	case rm := <-reply:
		return rm
	case <-ctx.Done():
		return nil
	}
}

// Remove deletes the room for pin, tearing it down and freeing the code.
func (r *Registry) Remove(pin string) {
	select {
	case r.inbox <- removeMsg{pin: pin}:
	case <-r.ctx.Done():
	}
}

// Shutdown tears down the registry and every live room.
func (r *Registry) Shutdown() { r.cancel() }

// generatePIN draws a 6-digit numeric code; the caller retries on
// collision with a live room.
func generatePIN() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
