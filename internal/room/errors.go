package room

import "errors"

// Handler-level failures. Each is recoverable, reported only to the
// offending connection, and never crashes a room.
var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrGameAlreadyStarted = errors.New("game already started")
	ErrRoomFull           = errors.New("room is full")
	ErrNotOwner           = errors.New("you are not the owner of this game")
	ErrNotInGame          = errors.New("you are not in this game")
	ErrNotInRoom          = errors.New("you are not in this room")
	ErrGameNotStarted     = errors.New("game is not in progress")
	ErrNotEnoughPlayers   = errors.New("not enough players to start")
	ErrUnevenTeams        = errors.New("player count must be even to start")

	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrTargetNotFound    = errors.New("target player not found")
	ErrCannotAskTeammate = errors.New("cannot ask teammate")
	ErrTargetEmpty       = errors.New("target has no cards")
	ErrMustHoldBase      = errors.New("you must hold a card from that set to ask")
	ErrAlreadyHaveCard   = errors.New("you already have this card")

	ErrInvalidDeclaration = errors.New("invalid declaration")

	ErrCannotPassWithCards       = errors.New("you still have cards")
	ErrMustPassToTeammate        = errors.New("must pass to a teammate")
	ErrCannotPassToEmptyTeammate = errors.New("cannot pass to a player with no cards")
)
