package ws

import (
	"github.com/smiitm/literature/internal/game"
	"github.com/smiitm/literature/internal/room"
	"github.com/smiitm/literature/internal/shared"
)

// GameService is what the hub needs from the room manager.
type GameService interface {
	CreateGame(connID, playerName, playerID string) *shared.Room
	JoinGame(connID, roomID, playerName, playerID string) error
	StartGame(connID, roomID, playerID string) error
	AskCard(connID, roomID, targetID string, card game.Card) error
	DeclareSet(connID, roomID string, declaration []room.Declared) error
	PassTurn(connID, roomID, targetID string) error
	LeaveRoom(connID, roomID string) error
	Disconnect(connID string)
}
