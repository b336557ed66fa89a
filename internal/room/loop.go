package room

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MoayadAlismail/batata-hara/internal/protocol"
	"github.com/MoayadAlismail/batata-hara/internal/words"
)

func (r *Room) loop() {
	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return

		case m := <-r.inbox:
			switch msg := m.(type) {
			case subscribeMsg:
				r.gateway.add(msg.connID, msg.outbox)
				msg.reply <- struct{}{}

			case unsubscribeMsg:
				r.gateway.remove(msg.connID)
				if len(r.players) == 0 && r.gateway.size() == 0 {
					// Creator left before ever joining the roster.
					r.teardown()
					return
				}

			case joinMsg:
				msg.reply <- r.handleJoin(msg.connID, msg.name)

			case leaveMsg:
				empty := r.handleLeave(msg.connID)
				msg.reply <- struct{}{}
				if empty {
					r.teardown()
					return
				}

			case startMsg:
				msg.reply <- r.handleStart(msg.connID)

			case submitMsg:
				msg.reply <- r.handleSubmit(msg.connID, msg.word)

			case resetMsg:
				msg.reply <- r.handleReset(msg.connID)

			case tickMsg:
				r.handleTick(msg.gen)

			case viewMsg:
				msg.reply <- r.view()
			}
		}
	}
}

func (r *Room) handleJoin(connID, name string) JoinResult {
	// The roster is keyed by connection; one connection holds at most
	// one slot.
	for _, p := range r.players {
		if p.ConnID == connID {
			return JoinResult{Err: ErrAlreadyInRoom}
		}
	}
	if len(r.players) >= r.settings.MaxPlayers {
		return JoinResult{Err: ErrRoomFull}
	}
	for _, p := range r.players {
		if p.Name == name {
			return JoinResult{Err: ErrNameTaken}
		}
	}

	p := newPlayer(connID, name, r.settings.InitialLives)
	r.players = append(r.players, p)
	r.log.Info("player joined", zap.String("name", name), zap.Int("players", len(r.players)))

	roster := r.roster()
	r.gateway.toRoom(protocol.Event(protocol.EvtPlayersUpdated, roster))
	r.gateway.toRoom(protocol.Event(protocol.EvtPlayerJoined, protocol.PlayerJoinedEvent{
		Player:  r.playerInfo(p),
		Message: name + " joined the game",
	}))

	return JoinResult{
		Player:    r.playerInfo(p),
		Players:   roster,
		IsHost:    connID == r.hostConnID,
		GameState: string(r.phase),
	}
}

// handleLeave removes the connection's player. It reports whether the
// roster emptied, in which case the caller tears the room down.
func (r *Room) handleLeave(connID string) bool {
	idx := -1
	for i, p := range r.players {
		if p.ConnID == connID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	departed := r.players[idx]
	heldTurn := r.phase == PhasePlaying && idx == r.turnIndex
	r.players = append(r.players[:idx], r.players[idx+1:]...)
	r.gateway.remove(connID)
	r.log.Info("player left", zap.String("name", departed.Name), zap.Int("players", len(r.players)))

	if len(r.players) == 0 {
		return true
	}

	if connID == r.hostConnID {
		// Earliest-joined remaining player becomes host.
		r.hostConnID = r.players[0].ConnID
		r.gateway.toConnection(r.hostConnID, protocol.Event(protocol.EvtHostChanged, protocol.HostChangedEvent{IsHost: true}))
		r.log.Info("host reassigned", zap.String("name", r.players[0].Name))
	}

	r.gateway.toRoom(protocol.Event(protocol.EvtPlayersUpdated, r.roster()))
	r.gateway.toRoom(protocol.Event(protocol.EvtPlayerLeft, protocol.PlayerLeftEvent{
		ConnectionID: connID,
		Message:      departed.Name + " left the game",
	}))

	if r.phase == PhasePlaying {
		// Keep turnIndex pointing at the same player after the splice.
		if idx < r.turnIndex {
			r.turnIndex--
		}
		if r.activeCount() <= 1 {
			r.endGame()
		} else if heldTurn {
			// The departed player held the turn; hand it to whoever now
			// occupies their slot, skipping eliminated players.
			r.setTurn(r.nextActiveFrom(idx % len(r.players)))
		}
	}
	return false
}

func (r *Room) handleStart(connID string) error {
	if connID != r.hostConnID {
		return ErrNotHost
	}
	if r.phase != PhaseSetup {
		return ErrAlreadyStarted
	}
	if len(r.players) < 2 {
		return ErrNotEnoughPlayers
	}

	r.phase = PhasePlaying
	r.turnIndex = 0
	r.usedWords = make(map[string]struct{})
	r.combination = r.gen.Next()
	r.timeRemaining = r.settings.InitialTimerSeconds
	r.startCountdown()
	r.log.Info("game started", zap.Int("players", len(r.players)))

	r.gateway.toRoom(protocol.Event(protocol.EvtGameStarted, protocol.GameStartedEvent{
		Phase:             string(r.phase),
		CurrentPlayer:     r.playerInfo(r.players[r.turnIndex]),
		ActiveCombination: r.combination,
		TimeRemaining:     r.timeRemaining,
		Players:           r.roster(),
	}))
	return nil
}

func (r *Room) handleSubmit(connID, word string) SubmitResult {
	if r.phase != PhasePlaying {
		return SubmitResult{Err: ErrNotPlaying}
	}
	current := r.players[r.turnIndex]
	if current.ConnID != connID {
		return SubmitResult{Err: ErrNotYourTurn}
	}

	reason := words.Validate(word, r.combination, r.usedWords, r.lex, r.rules)
	if reason == words.ReasonNone {
		r.usedWords[word] = struct{}{}
		r.gateway.toRoom(protocol.Event(protocol.EvtWordAccepted, protocol.WordAcceptedEvent{
			Word:      word,
			Player:    r.playerInfo(current),
			UsedWords: r.usedWordList(),
		}))
		r.advanceTurn()
		return SubmitResult{Valid: true}
	}

	r.gateway.toRoom(protocol.Event(protocol.EvtWordRejected, protocol.WordRejectedEvent{
		Word:   word,
		Player: r.playerInfo(current),
		Reason: string(reason),
	}))
	r.applyElimination(current)
	return SubmitResult{Valid: false}
}

func (r *Room) handleReset(connID string) error {
	if connID != r.hostConnID {
		return ErrNotHost
	}

	r.stopCountdown()
	r.phase = PhaseSetup
	r.turnIndex = 0
	r.combination = ""
	r.timeRemaining = 0
	r.usedWords = make(map[string]struct{})
	for _, p := range r.players {
		p.Lives = r.settings.InitialLives
		p.Eliminated = false
	}
	r.log.Info("room reset")

	r.gateway.toRoom(protocol.Event(protocol.EvtGameReset, protocol.GameResetEvent{
		Phase:   string(r.phase),
		Players: r.roster(),
	}))
	return nil
}

func (r *Room) handleTick(gen int) {
	if gen != r.tickGen || r.phase != PhasePlaying {
		return
	}
	r.timeRemaining--
	if r.timeRemaining <= 0 {
		// The turn-holder ran out of time; same cost as a rejected word.
		r.applyElimination(r.players[r.turnIndex])
		return
	}
	r.gateway.toRoom(protocol.Event(protocol.EvtTimerUpdate, protocol.TimerUpdateEvent{
		TimeRemaining: r.timeRemaining,
	}))
}

// applyElimination charges the player one life, eliminating them at zero,
// then either finishes the game or advances the turn.
func (r *Room) applyElimination(p *Player) {
	p.Lives--
	if p.Lives <= 0 {
		p.Lives = 0
		p.Eliminated = true
		r.log.Info("player eliminated", zap.String("name", p.Name))
		r.gateway.toRoom(protocol.Event(protocol.EvtPlayerEliminated, protocol.PlayerEliminatedEvent{
			Player: r.playerInfo(p),
		}))
	}

	if r.activeCount() <= 1 {
		r.endGame()
	} else {
		r.advanceTurn()
	}
}

// advanceTurn moves to the next non-eliminated player, draws a fresh
// combination, and tightens the countdown as the game progresses.
func (r *Room) advanceTurn() {
	r.setTurn(r.nextActiveFrom((r.turnIndex + 1) % len(r.players)))
}

func (r *Room) setTurn(idx int) {
	r.turnIndex = idx
	r.combination = r.gen.Next()
	r.timeRemaining = max(5, r.settings.InitialTimerSeconds-len(r.usedWords)/5)

	r.gateway.toRoom(protocol.Event(protocol.EvtTurnChanged, protocol.TurnChangedEvent{
		CurrentPlayer:     r.playerInfo(r.players[r.turnIndex]),
		ActiveCombination: r.combination,
		TimeRemaining:     r.timeRemaining,
		Players:           r.roster(),
	}))
}

// nextActiveFrom returns the first non-eliminated index at or after
// start, wrapping around. Callers guarantee at least one active player.
func (r *Room) nextActiveFrom(start int) int {
	idx := start
	for r.players[idx].Eliminated {
		idx = (idx + 1) % len(r.players)
	}
	return idx
}

func (r *Room) endGame() {
	r.phase = PhaseFinished
	r.stopCountdown()

	var winner *protocol.PlayerInfo
	for _, p := range r.players {
		if !p.Eliminated {
			info := r.playerInfo(p)
			winner = &info
			break
		}
	}
	if winner != nil {
		r.log.Info("game ended", zap.String("winner", winner.Name))
	} else {
		r.log.Info("game ended", zap.String("winner", ""))
	}

	r.gateway.toRoom(protocol.Event(protocol.EvtGameEnded, protocol.GameEndedEvent{
		Winner:  winner,
		Players: r.roster(),
		Phase:   string(r.phase),
	}))
}

// startCountdown launches the repeating per-room tick, cancelling any
// countdown already running. Ticks are delivered through the inbox so
// they serialize with every other room operation; the generation counter
// keeps a stale queued tick from touching a newer game.
func (r *Room) startCountdown() {
	r.stopCountdown()
	r.tickGen++
	gen := r.tickGen

	ctx, cancel := context.WithCancel(r.ctx)
	r.stopTick = cancel
	interval := r.settings.TickInterval
	if interval <= 0 {
		interval = time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case r.inbox <- tickMsg{gen: gen}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}

func (r *Room) stopCountdown() {
	r.tickGen++
	if r.stopTick != nil {
		r.stopTick()
		r.stopTick = nil
	}
}

func (r *Room) teardown() {
	r.log.Info("room empty, shutting down")
	r.shutdown()
	if r.onEmpty != nil {
		r.onEmpty()
	}
}

func (r *Room) shutdown() {
	r.stopCountdown()
	r.gateway.closeAll()
	r.cancel()
}

func (r *Room) activeCount() int {
	n := 0
	for _, p := range r.players {
		if !p.Eliminated {
			n++
		}
	}
	return n
}

func (r *Room) playerInfo(p *Player) protocol.PlayerInfo {
	return protocol.PlayerInfo{
		ID:           p.ID,
		Name:         p.Name,
		Lives:        p.Lives,
		IsEliminated: p.Eliminated,
		ConnectionID: p.ConnID,
		JoinedAt:     p.JoinedAt,
	}
}

func (r *Room) roster() []protocol.PlayerInfo {
	out := make([]protocol.PlayerInfo, len(r.players))
	for i, p := range r.players {
		out[i] = r.playerInfo(p)
	}
	return out
}

func (r *Room) usedWordList() []string {
	out := make([]string, 0, len(r.usedWords))
	for w := range r.usedWords {
		out = append(out, w)
	}
	return out
}

func (r *Room) view() View {
	return View{
		Pin:           r.pin,
		HostConnID:    r.hostConnID,
		Phase:         r.phase,
		TurnIndex:     r.turnIndex,
		Combination:   r.combination,
		TimeRemaining: r.timeRemaining,
		UsedWords:     r.usedWordList(),
		Players:       r.roster(),
		Subscribers:   r.gateway.size(),
	}
}
