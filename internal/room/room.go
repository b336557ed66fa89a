// Package room implements the per-room session orchestrator. Each Room is
// an actor: one goroutine owns all mutable state and every operation
// (join, leave, start, submit, reset, countdown tick) is a message
// processed to completion on its inbox, so concurrent mutation of a
// room's state is impossible. Independent rooms run fully in parallel.
package room

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MoayadAlismail/batata-hara/internal/protocol"
	"github.com/MoayadAlismail/batata-hara/internal/words"
)

var (
	ErrRoomFull         = errors.New("room is full")
	ErrNameTaken        = errors.New("player name already exists")
	ErrAlreadyInRoom    = errors.New("connection already in the roster")
	ErrNotHost          = errors.New("requester is not the host")
	ErrNotEnoughPlayers = errors.New("need at least 2 players")
	ErrNotPlaying       = errors.New("game not in playing state")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrAlreadyStarted   = errors.New("game already started")
	ErrRoomClosed       = errors.New("room closed")
)

// Phase is the room lifecycle state.
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

// Settings are the per-room game parameters.
type Settings struct {
	MaxPlayers          int
	InitialLives        int
	InitialTimerSeconds int
	TickInterval        time.Duration
}

// Player is one roster member. Eliminated players stay in the roster but
// are skipped by turn advancement.
type Player struct {
	ID         string
	Name       string
	Lives      int
	Eliminated bool
	ConnID     string
	JoinedAt   time.Time
}

// Params configures a new Room.
type Params struct {
	Pin        string
	HostConnID string
	Settings   Settings
	Generator  *words.Generator
	Lexicon    words.Lexicon
	Rules      words.Rules
	Logger     *zap.Logger
	// OnEmpty is called once, from the room's goroutine, when the last
	// player leaves and the room tears itself down.
	OnEmpty func()
}

type msg interface{ isRoomMsg() }

type subscribeMsg struct {
	connID string
	outbox chan protocol.ServerMessage
	reply  chan struct{}
}

type unsubscribeMsg struct{ connID string }

type joinMsg struct {
	connID string
	name   string
	reply  chan JoinResult
}

type leaveMsg struct {
	connID string
	reply  chan struct{}
}

type startMsg struct {
	connID string
	reply  chan error
}

type submitMsg struct {
	connID string
	word   string
	reply  chan SubmitResult
}

type resetMsg struct {
	connID string
	reply  chan error
}

type tickMsg struct{ gen int }

type viewMsg struct{ reply chan View }

func (subscribeMsg) isRoomMsg()   {}
func (unsubscribeMsg) isRoomMsg() {}
func (joinMsg) isRoomMsg()        {}
func (leaveMsg) isRoomMsg()       {}
func (startMsg) isRoomMsg()       {}
func (submitMsg) isRoomMsg()      {}
func (resetMsg) isRoomMsg()       {}
func (tickMsg) isRoomMsg()        {}
func (viewMsg) isRoomMsg()        {}

// JoinResult reports a successful join back to the requesting connection.
type JoinResult struct {
	Player    protocol.PlayerInfo
	Players   []protocol.PlayerInfo
	IsHost    bool
	GameState string
	Err       error
}

// SubmitResult reports the outcome of a word submission. Err is set for
// precondition rejections only; a word failing validation yields
// Valid=false with a nil Err.
type SubmitResult struct {
	Valid bool
	Err   error
}

// View reflects internal state without data races; test-only.
type View struct {
	Pin           string
	HostConnID    string
	Phase         Phase
	TurnIndex     int
	Combination   string
	TimeRemaining int
	UsedWords     []string
	Players       []protocol.PlayerInfo
	Subscribers   int
}

// Room is one isolated game session identified by its PIN.
type Room struct {
	pin       string
	inbox     chan msg
	ctx       context.Context
	cancel    context.CancelFunc
	log       *zap.Logger
	settings  Settings
	gen       *words.Generator
	lex       words.Lexicon
	rules     words.Rules
	onEmpty   func()
	createdAt time.Time

	// Everything below is owned by the loop goroutine.
	gateway       *gateway
	hostConnID    string
	players       []*Player
	phase         Phase
	turnIndex     int
	combination   string
	timeRemaining int
	usedWords     map[string]struct{}
	stopTick      context.CancelFunc
	tickGen       int
}

// New creates a Room in Setup with p.HostConnID as host and starts its
// actor goroutine.
func New(parent context.Context, p Params) *Room {
	ctx, cancel := context.WithCancel(parent)
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Generator == nil {
		p.Generator = words.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	r := &Room{
		pin:        p.Pin,
		inbox:      make(chan msg, 64),
		ctx:        ctx,
		cancel:     cancel,
		log:        p.Logger.With(zap.String("pin", p.Pin)),
		settings:   p.Settings,
		gen:        p.Generator,
		lex:        p.Lexicon,
		rules:      p.Rules,
		onEmpty:    p.OnEmpty,
		createdAt:  time.Now(),
		gateway:    newGateway(),
		hostConnID: p.HostConnID,
		phase:      PhaseSetup,
		usedWords:  make(map[string]struct{}),
	}
	go r.loop()
	return r
}

func (r *Room) Pin() string { return r.pin }

// Done is closed once the room has shut down.
func (r *Room) Done() <-chan struct{} { return r.ctx.Done() }

// Close tears the room down: the countdown stops and every subscriber
// outbox is closed.
func (r *Room) Close() { r.cancel() }

func (r *Room) send(ctx context.Context, m msg) error {
	select {
	case r.inbox <- m:
		return nil
	case <-r.ctx.Done():
		return ErrRoomClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe registers the connection with the broadcast gateway and
// returns the channel its event frames arrive on. The channel is closed
// on Unsubscribe or room teardown.
func (r *Room) Subscribe(ctx context.Context, connID string) (<-chan protocol.ServerMessage, error) {
	out := make(chan protocol.ServerMessage, 32)
	reply := make(chan struct{}, 1)
	if err := r.send(ctx, subscribeMsg{connID: connID, outbox: out, reply: reply}); err != nil {
		return nil, err
	}
	select {
	case <-reply:
		return out, nil
	case <-r.ctx.Done():
		return nil, ErrRoomClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Unsubscribe detaches the connection from the gateway. If it was the
// last subscriber of a room with no players, the room is torn down.
func (r *Room) Unsubscribe(connID string) {
	_ = r.send(context.Background(), unsubscribeMsg{connID: connID})
}

// Join adds a named player for the connection.
func (r *Room) Join(ctx context.Context, connID, name string) (JoinResult, error) {
	reply := make(chan JoinResult, 1)
	if err := r.send(ctx, joinMsg{connID: connID, name: name, reply: reply}); err != nil {
		return JoinResult{}, err
	}
	select {
	case res := <-reply:
		return res, nil
	case <-r.ctx.Done():
		return JoinResult{}, ErrRoomClosed
	case <-ctx.Done():
		return JoinResult{}, ctx.Err()
	}
}

// Leave removes the connection's player, reassigning the host or tearing
// the room down as needed. Unknown connections are a no-op.
func (r *Room) Leave(ctx context.Context, connID string) error {
	reply := make(chan struct{}, 1)
	if err := r.send(ctx, leaveMsg{connID: connID, reply: reply}); err != nil {
		return err
	}
	select {
	case <-reply:
		return nil
	case <-r.ctx.Done():
		// Teardown racing the ack means the leave was applied.
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start begins the game. Host-only, needs at least two players, valid
// only in Setup.
func (r *Room) Start(ctx context.Context, connID string) error {
	reply := make(chan error, 1)
	if err := r.send(ctx, startMsg{connID: connID, reply: reply}); err != nil {
		return err
	}
	select {
	case err := <-reply:
		return err
	case <-r.ctx.Done():
		return ErrRoomClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Submit plays a word for the connection's turn.
func (r *Room) Submit(ctx context.Context, connID, word string) (SubmitResult, error) {
	reply := make(chan SubmitResult, 1)
	if err := r.send(ctx, submitMsg{connID: connID, word: word, reply: reply}); err != nil {
		return SubmitResult{}, err
	}
	select {
	case res := <-reply:
		return res, nil
	case <-r.ctx.Done():
		return SubmitResult{}, ErrRoomClosed
	case <-ctx.Done():
		return SubmitResult{}, ctx.Err()
	}
}

// Reset returns the room to Setup: lives restored, eliminations cleared,
// used words dropped, countdown stopped. Host-only.
func (r *Room) Reset(ctx context.Context, connID string) error {
	reply := make(chan error, 1)
	if err := r.send(ctx, resetMsg{connID: connID, reply: reply}); err != nil {
		return err
	}
	select {
	case err := <-reply:
		return err
	case <-r.ctx.Done():
		return ErrRoomClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// View returns a race-free snapshot of the room's state; test-only.
func (r *Room) View(ctx context.Context) (View, error) {
	reply := make(chan View, 1)
	if err := r.send(ctx, viewMsg{reply: reply}); err != nil {
		return View{}, err
	}
	select {
	case v := <-reply:
		return v, nil
	case <-r.ctx.Done():
		return View{}, ErrRoomClosed
	case <-ctx.Done():
		return View{}, ctx.Err()
	}
}

func newPlayer(connID, name string, lives int) *Player {
	return &Player{
		ID:       uuid.NewString(),
		Name:     name,
		Lives:    lives,
		ConnID:   connID,
		JoinedAt: time.Now(),
	}
}
