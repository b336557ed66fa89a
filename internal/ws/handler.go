// Package ws binds websocket connections to the room registry: it decodes
// request frames, routes them to the right room actor, and pushes acks
// and room broadcasts back to the client.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MoayadAlismail/batata-hara/internal/protocol"
	"github.com/MoayadAlismail/batata-hara/internal/registry"
	"github.com/MoayadAlismail/batata-hara/internal/room"
)

const writeTimeout = 3 * time.Second

// Handler upgrades the connection and runs one session until the client
// goes away. Disconnecting releases the connection's room membership,
// which may reassign the host or delete the room.
func Handler(reg *registry.Registry, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		s := &session{
			connID: uuid.NewString(),
			reg:    reg,
			conn:   conn,
			egress: make(chan protocol.ServerMessage, 32),
		}
		s.log = log.With(zap.String("conn", s.connID))
		s.run(r.Context())
	}
}

type session struct {
	connID string
	reg    *registry.Registry
	conn   *websocket.Conn
	egress chan protocol.ServerMessage
	cur    *room.Room
	log    *zap.Logger
}

func (s *session) run(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	s.log.Debug("connected")
	defer func() {
		if s.cur != nil {
			leaveCtx, leaveCancel := context.WithTimeout(context.Background(), writeTimeout)
			_ = s.cur.Leave(leaveCtx, s.connID)
			s.cur.Unsubscribe(s.connID)
			leaveCancel()
		}
		s.log.Debug("disconnected")
	}()

	// Writer goroutine: the only place frames go out on the socket.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m := <-s.egress:
				payload, err := json.Marshal(m)
				if err != nil {
					continue
				}
				wctx, wcancel := context.WithTimeout(ctx, writeTimeout)
				_ = s.conn.Write(wctx, websocket.MessageText, payload)
				wcancel()
			}
		}
	}()

	// Reader loop.
	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			// Clean close or broken connection; the deferred leave
			// releases room membership either way.
			return
		}

		var cm protocol.ClientMessage
		if err := json.Unmarshal(data, &cm); err != nil {
			s.push(ctx, protocol.Nack(0, "", protocol.CodeBadRequest))
			continue
		}
		s.push(ctx, s.dispatch(ctx, cm))
	}
}

func (s *session) dispatch(ctx context.Context, cm protocol.ClientMessage) protocol.ServerMessage {
	switch cm.Type {
	case protocol.OpCreateRoom:
		return s.createRoom(ctx, cm)
	case protocol.OpJoinRoom:
		return s.joinRoom(ctx, cm)
	case protocol.OpStartGame:
		return s.startGame(ctx, cm)
	case protocol.OpSubmitWord:
		return s.submitWord(ctx, cm)
	case protocol.OpResetGame:
		return s.resetGame(ctx, cm)
	case protocol.OpLeaveRoom:
		return s.leaveRoom(ctx, cm)
	default:
		return protocol.Nack(cm.ID, cm.Type, protocol.CodeBadRequest)
	}
}

func (s *session) createRoom(ctx context.Context, cm protocol.ClientMessage) protocol.ServerMessage {
	if s.cur != nil {
		return protocol.Nack(cm.ID, cm.Type, protocol.CodeAlreadyInRoom)
	}
	rm, err := s.reg.Create(ctx, s.connID)
	if err != nil {
		return protocol.Nack(cm.ID, cm.Type, protocol.CodeBadRequest)
	}
	out, err := rm.Subscribe(ctx, s.connID)
	if err != nil {
		return protocol.Nack(cm.ID, cm.Type, protocol.CodeRoomNotFound)
	}
	s.cur = rm
	go s.forward(ctx, out)
	s.log.Info("room created", zap.String("pin", rm.Pin()))
	return protocol.Ack(cm.ID, cm.Type, protocol.CreateRoomResult{Pin: rm.Pin(), IsHost: true})
}

func (s *session) joinRoom(ctx context.Context, cm protocol.ClientMessage) protocol.ServerMessage {
	if s.cur != nil && s.cur.Pin() != cm.Pin {
		return protocol.Nack(cm.ID, cm.Type, protocol.CodeAlreadyInRoom)
	}

	rm := s.cur
	subscribed := rm != nil
	if rm == nil {
		if rm = s.reg.Get(ctx, cm.Pin); rm == nil {
			return protocol.Nack(cm.ID, cm.Type, protocol.CodeRoomNotFound)
		}
		out, err := rm.Subscribe(ctx, s.connID)
		if err != nil {
			return protocol.Nack(cm.ID, cm.Type, protocol.CodeRoomNotFound)
		}
		go s.forward(ctx, out)
	}

	res, err := rm.Join(ctx, s.connID, cm.PlayerName)
	if err != nil {
		if !subscribed {
			rm.Unsubscribe(s.connID)
		}
		// The room was torn down between lookup and join; from the
		// client's view the pin no longer exists.
		return protocol.Nack(cm.ID, cm.Type, protocol.CodeRoomNotFound)
	}
	if res.Err != nil {
		if !subscribed {
			rm.Unsubscribe(s.connID)
		}
		return protocol.Nack(cm.ID, cm.Type, rejectionCode(res.Err))
	}

	s.cur = rm
	return protocol.Ack(cm.ID, cm.Type, protocol.JoinRoomResult{
		Player:    res.Player,
		Players:   res.Players,
		IsHost:    res.IsHost,
		GameState: res.GameState,
	})
}

func (s *session) startGame(ctx context.Context, cm protocol.ClientMessage) protocol.ServerMessage {
	rm, code := s.boundRoom(cm.Pin)
	if rm == nil {
		return protocol.Nack(cm.ID, cm.Type, code)
	}
	if err := rm.Start(ctx, s.connID); err != nil {
		return protocol.Nack(cm.ID, cm.Type, rejectionCode(err))
	}
	return protocol.Ack(cm.ID, cm.Type, struct{}{})
}

func (s *session) submitWord(ctx context.Context, cm protocol.ClientMessage) protocol.ServerMessage {
	rm, code := s.boundRoom(cm.Pin)
	if rm == nil {
		return protocol.Nack(cm.ID, cm.Type, code)
	}
	res, err := rm.Submit(ctx, s.connID, cm.Word)
	if err != nil {
		return protocol.Nack(cm.ID, cm.Type, rejectionCode(err))
	}
	if res.Err != nil {
		return protocol.Nack(cm.ID, cm.Type, rejectionCode(res.Err))
	}
	return protocol.Ack(cm.ID, cm.Type, protocol.SubmitWordResult{IsValid: res.Valid})
}

func (s *session) resetGame(ctx context.Context, cm protocol.ClientMessage) protocol.ServerMessage {
	rm, code := s.boundRoom(cm.Pin)
	if rm == nil {
		return protocol.Nack(cm.ID, cm.Type, code)
	}
	if err := rm.Reset(ctx, s.connID); err != nil {
		return protocol.Nack(cm.ID, cm.Type, rejectionCode(err))
	}
	return protocol.Ack(cm.ID, cm.Type, struct{}{})
}

func (s *session) leaveRoom(ctx context.Context, cm protocol.ClientMessage) protocol.ServerMessage {
	rm, code := s.boundRoom(cm.Pin)
	if rm == nil {
		return protocol.Nack(cm.ID, cm.Type, code)
	}
	_ = rm.Leave(ctx, s.connID)
	rm.Unsubscribe(s.connID)
	s.cur = nil
	return protocol.Ack(cm.ID, cm.Type, struct{}{})
}

// boundRoom resolves the session's room for an operation that requires
// membership, returning the rejection code when there is none.
func (s *session) boundRoom(pin string) (*room.Room, string) {
	if s.cur == nil {
		return nil, protocol.CodeNotInRoom
	}
	if pin != "" && pin != s.cur.Pin() {
		return nil, protocol.CodeRoomNotFound
	}
	return s.cur, ""
}

// forward copies room broadcasts onto the session egress until the
// subscription or the session ends.
func (s *session) forward(ctx context.Context, out <-chan protocol.ServerMessage) {
	for m := range out {
		select {
		case s.egress <- m:
		case <-ctx.Done():
			return
		}
	}
}

func (s *session) push(ctx context.Context, m protocol.ServerMessage) {
	select {
	case s.egress <- m:
	case <-ctx.Done():
	}
}

func rejectionCode(err error) string {
	switch {
	case errors.Is(err, room.ErrRoomFull):
		return protocol.CodeRoomFull
	case errors.Is(err, room.ErrNameTaken):
		return protocol.CodeNameTaken
	case errors.Is(err, room.ErrNotHost):
		return protocol.CodeNotHost
	case errors.Is(err, room.ErrNotEnoughPlayers):
		return protocol.CodeNotEnough
	case errors.Is(err, room.ErrNotPlaying):
		return protocol.CodeNotPlaying
	case errors.Is(err, room.ErrNotYourTurn):
		return protocol.CodeNotYourTurn
	case errors.Is(err, room.ErrAlreadyInRoom):
		return protocol.CodeAlreadyInRoom
	case errors.Is(err, room.ErrAlreadyStarted):
		return protocol.CodeAlreadyStarted
	case errors.Is(err, room.ErrRoomClosed):
		return protocol.CodeRoomNotFound
	default:
		return protocol.CodeBadRequest
	}
}
