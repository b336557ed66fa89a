package room

import "github.com/MoayadAlismail/batata-hara/internal/protocol"

// gateway fans room events out to subscribed connections. It owns no game
// state and is only touched from the room's goroutine.
type gateway struct {
	subs map[string]chan protocol.ServerMessage
}

func newGateway() *gateway {
	return &gateway{subs: make(map[string]chan protocol.ServerMessage)}
}

func (g *gateway) add(connID string, outbox chan protocol.ServerMessage) {
	if old, ok := g.subs[connID]; ok {
		close(old)
	}
	g.subs[connID] = outbox
}

func (g *gateway) remove(connID string) {
	if ch, ok := g.subs[connID]; ok {
		close(ch)
		delete(g.subs, connID)
	}
}

func (g *gateway) size() int { return len(g.subs) }

// toRoom delivers to every subscriber. A subscriber whose outbox is full
// is dropped rather than allowed to stall the room.
func (g *gateway) toRoom(m protocol.ServerMessage) {
	for id, ch := range g.subs {
		select {
		case ch <- m:
		default:
			close(ch)
			delete(g.subs, id)
		}
	}
}

// toConnection delivers to a single subscriber, with the same drop policy.
func (g *gateway) toConnection(connID string, m protocol.ServerMessage) {
	ch, ok := g.subs[connID]
	if !ok {
		return
	}
	select {
	case ch <- m:
	default:
		close(ch)
		delete(g.subs, connID)
	}
}

func (g *gateway) closeAll() {
	for id, ch := range g.subs {
		close(ch)
		delete(g.subs, id)
	}
}
