package ws

import (
	"encoding/json"

	"github.com/smiitm/literature/internal/game"
	"github.com/smiitm/literature/internal/room"
)

// Envelope is the wire frame both directions: a named action plus an
// action-specific payload. Inbound data stays raw until the dispatch
// switch picks the matching payload type, so nothing passes through
// unvalidated.
type Envelope struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type outbound struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

type CreateGamePayload struct {
	PlayerName string `json:"playerName"`
	PlayerID   string `json:"playerId"`
}

type JoinGamePayload struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
	PlayerID   string `json:"playerId"`
}

type StartGamePayload struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
}

type AskCardPayload struct {
	RoomID   string    `json:"roomId"`
	TargetID string    `json:"targetId"`
	Card     game.Card `json:"card"`
}

type DeclareSetPayload struct {
	RoomID      string          `json:"roomId"`
	Declaration []room.Declared `json:"declaration"`
}

type PassTurnPayload struct {
	RoomID   string `json:"roomId"`
	TargetID string `json:"targetId"`
}

type LeaveRoomPayload struct {
	RoomID string `json:"roomId"`
}
