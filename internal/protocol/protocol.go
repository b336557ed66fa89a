// Package protocol defines the JSON wire messages exchanged over a game
// websocket: client requests, their correlated acknowledgments, and the
// broadcast events fanned out to room members.
package protocol

import "time"

// Client -> Server operation names.
const (
	OpCreateRoom = "create-room"
	OpJoinRoom   = "join-room"
	OpStartGame  = "start-game"
	OpSubmitWord = "submit-word"
	OpResetGame  = "reset-game"
	OpLeaveRoom  = "leave-room"
)

// Rejection codes carried in acks. They never mutate room state.
const (
	CodeRoomNotFound   = "RoomNotFound"
	CodeRoomFull       = "RoomFull"
	CodeNameTaken      = "NameTaken"
	CodeNotHost        = "NotHost"
	CodeNotEnough      = "NotEnoughPlayers"
	CodeNotPlaying     = "NotPlaying"
	CodeNotYourTurn    = "NotYourTurn"
	CodeAlreadyStarted = "AlreadyStarted"
	CodeAlreadyInRoom  = "AlreadyInRoom"
	CodeNotInRoom      = "NotInRoom"
	CodeBadRequest     = "BadRequest"
)

// Server -> Client broadcast event names.
const (
	EvtPlayersUpdated   = "players-updated"
	EvtPlayerJoined     = "player-joined"
	EvtPlayerLeft       = "player-left"
	EvtHostChanged      = "host-changed"
	EvtGameStarted      = "game-started"
	EvtTimerUpdate      = "timer-update"
	EvtWordAccepted     = "word-accepted"
	EvtWordRejected     = "word-rejected"
	EvtTurnChanged      = "turn-changed"
	EvtPlayerEliminated = "player-eliminated"
	EvtGameEnded        = "game-ended"
	EvtGameReset        = "game-reset"
)

// ClientMessage is one request frame. ID is chosen by the client and
// echoed in the ack so requests and responses can be correlated.
type ClientMessage struct {
	ID         int    `json:"id,omitempty"`
	Type       string `json:"type"`
	Pin        string `json:"pin,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
	Word       string `json:"word,omitempty"`
}

// ServerMessage is one frame pushed to a client: either an ack
// (Type="ack", ID echoes the request) or a broadcast event
// (Type="event", Event names it).
type ServerMessage struct {
	Type    string `json:"type"`
	ID      int    `json:"id,omitempty"`
	Op      string `json:"op,omitempty"`
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
	Event   string `json:"event,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Ack builds a successful acknowledgment for a request.
func Ack(id int, op string, data any) ServerMessage {
	return ServerMessage{Type: "ack", ID: id, Op: op, Success: true, Data: data}
}

// Nack builds a rejection acknowledgment carrying a stable error code.
func Nack(id int, op, code string) ServerMessage {
	return ServerMessage{Type: "ack", ID: id, Op: op, Error: code}
}

// Event builds a broadcast frame.
func Event(name string, data any) ServerMessage {
	return ServerMessage{Type: "event", Event: name, Data: data}
}

// PlayerInfo is the public view of a roster member.
type PlayerInfo struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Lives        int       `json:"lives"`
	IsEliminated bool      `json:"isEliminated"`
	ConnectionID string    `json:"connectionId"`
	JoinedAt     time.Time `json:"joinedAt"`
}

// Ack payloads.

type CreateRoomResult struct {
	Pin    string `json:"pin"`
	IsHost bool   `json:"isHost"`
}

type JoinRoomResult struct {
	Player    PlayerInfo   `json:"player"`
	Players   []PlayerInfo `json:"players"`
	IsHost    bool         `json:"isHost"`
	GameState string       `json:"gameState"`
}

type SubmitWordResult struct {
	IsValid bool `json:"isValid"`
}

// Event payloads.

type PlayerJoinedEvent struct {
	Player  PlayerInfo `json:"player"`
	Message string     `json:"message"`
}

type PlayerLeftEvent struct {
	ConnectionID string `json:"connectionId"`
	Message      string `json:"message"`
}

type HostChangedEvent struct {
	IsHost bool `json:"isHost"`
}

type GameStartedEvent struct {
	Phase             string       `json:"phase"`
	CurrentPlayer     PlayerInfo   `json:"currentPlayer"`
	ActiveCombination string       `json:"activeCombination"`
	TimeRemaining     int          `json:"timeRemaining"`
	Players           []PlayerInfo `json:"players"`
}

type TimerUpdateEvent struct {
	TimeRemaining int `json:"timeRemaining"`
}

type WordAcceptedEvent struct {
	Word      string     `json:"word"`
	Player    PlayerInfo `json:"player"`
	UsedWords []string   `json:"usedWords"`
}

type WordRejectedEvent struct {
	Word   string     `json:"word"`
	Player PlayerInfo `json:"player"`
	Reason string     `json:"reason"`
}

type TurnChangedEvent struct {
	CurrentPlayer     PlayerInfo   `json:"currentPlayer"`
	ActiveCombination string       `json:"activeCombination"`
	TimeRemaining     int          `json:"timeRemaining"`
	Players           []PlayerInfo `json:"players"`
}

type PlayerEliminatedEvent struct {
	Player PlayerInfo `json:"player"`
}

type GameEndedEvent struct {
	Winner  *PlayerInfo  `json:"winner"`
	Players []PlayerInfo `json:"players"`
	Phase   string       `json:"phase"`
}

type GameResetEvent struct {
	Phase   string       `json:"phase"`
	Players []PlayerInfo `json:"players"`
}
