package shared

import (
	"sync"
	"time"

	"github.com/smiitm/literature/internal/game"
)

type Status string

const (
	StatusLobby    Status = "LOBBY"
	StatusInGame   Status = "IN_GAME"
	StatusGameOver Status = "GAME_OVER"
)

type Team string

const (
	TeamNone Team = ""
	TeamA    Team = "A"
	TeamB    Team = "B"
)

// TurnState is the secondary sub-machine inside IN_GAME. PASSING_TURN
// forces the current seat to hand off because it holds zero cards.
type TurnState string

const (
	TurnNormal  TurnState = "NORMAL"
	TurnPassing TurnState = "PASSING_TURN"
)

// Winner value for a tied finished game.
const WinnerDraw = "DRAW"

// Player is one seat in a room. ConnID is the transient socket
// identity and changes on every reconnect; PlayerID is the stable
// client-generated identity that survives reconnects and is the only
// identifier gameplay commands may target.
type Player struct {
	ConnID   string      `json:"id"`
	PlayerID string      `json:"playerId"`
	Name     string      `json:"name"`
	Hand     []game.Card `json:"hand"`
	Team     Team        `json:"team"`
	IsOwner  bool        `json:"isOwner"`
}

type TeamScore struct {
	Score int `json:"score"`
}

type LastAsk struct {
	AskerName  string    `json:"askerName"`
	TargetName string    `json:"targetName"`
	Card       game.Card `json:"card"`
	Success    bool      `json:"success"`
}

// CompletedSet records one resolved set. CompletedBy is "A", "B" or
// "Discarded" when a wrong declaration scored for nobody.
type CompletedSet struct {
	SetName     game.SetName `json:"setName"`
	CompletedBy string       `json:"completedBy"`
}

// Room is the full authoritative state of one game. The mutex makes
// every mutating operation a single writer; handlers hold it for their
// whole duration so two commands never interleave against one room.
type Room struct {
	Mutex sync.Mutex `json:"-"`

	RoomID  string    `json:"roomId"`
	Status  Status    `json:"status"`
	Players []*Player `json:"players"`

	TurnIndex     int                 `json:"turnIndex"`
	TurnState     TurnState           `json:"turnState"`
	Teams         map[Team]*TeamScore `json:"teams"`
	CompletedSets []CompletedSet      `json:"completedSets"`
	LastAsk       *LastAsk            `json:"lastAsk,omitempty"`
	Winner        string              `json:"winner,omitempty"`
	Log           []string            `json:"-"`

	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"-"`
}

// PublicPlayer is the redacted roster entry every snapshot carries:
// hands are never serialized for anyone but their owner, only a count.
type PublicPlayer struct {
	ConnID    string `json:"id"`
	PlayerID  string `json:"playerId"`
	Name      string `json:"name"`
	Team      Team   `json:"team"`
	IsOwner   bool   `json:"isOwner"`
	CardCount int    `json:"cardCount"`
}

// PersonalState is the per-recipient projection broadcast after every
// successful gameplay mutation, and on mid-game reconnect.
type PersonalState struct {
	Hand          []game.Card    `json:"hand"`
	TurnIndex     int            `json:"turnIndex"`
	TurnState     TurnState      `json:"turnState"`
	Players       []PublicPlayer `json:"players"`
	MyTeam        Team           `json:"myTeam"`
	LastAsk       *LastAsk       `json:"lastAsk,omitempty"`
	Scores        map[Team]int   `json:"scores"`
	CompletedSets []CompletedSet `json:"completedSets"`
	Winner        string         `json:"winner,omitempty"`
}

// PublicPlayers projects the roster with hands redacted to counts.
func (r *Room) PublicPlayers() []PublicPlayer {
	out := make([]PublicPlayer, 0, len(r.Players))
	for _, p := range r.Players {
		out = append(out, PublicPlayer{
			ConnID:    p.ConnID,
			PlayerID:  p.PlayerID,
			Name:      p.Name,
			Team:      p.Team,
			IsOwner:   p.IsOwner,
			CardCount: len(p.Hand),
		})
	}
	return out
}

// PersonalView builds the snapshot delivered to a single player. Only
// p's own hand appears; everyone else is reduced to a card count.
func (r *Room) PersonalView(p *Player) PersonalState {
	hand := make([]game.Card, len(p.Hand))
	copy(hand, p.Hand)
	completed := make([]CompletedSet, len(r.CompletedSets))
	copy(completed, r.CompletedSets)
	return PersonalState{
		Hand:      hand,
		TurnIndex: r.TurnIndex,
		TurnState: r.TurnState,
		Players:   r.PublicPlayers(),
		MyTeam:    p.Team,
		LastAsk:   r.LastAsk,
		Scores: map[Team]int{
			TeamA: r.Teams[TeamA].Score,
			TeamB: r.Teams[TeamB].Score,
		},
		CompletedSets: completed,
		Winner:        r.Winner,
	}
}

// FindByPlayerID returns the seat index with the given stable id, or -1.
func (r *Room) FindByPlayerID(playerID string) int {
	for i, p := range r.Players {
		if p.PlayerID == playerID {
			return i
		}
	}
	return -1
}

// FindByConnID returns the seat index bound to the connection, or -1.
func (r *Room) FindByConnID(connID string) int {
	for i, p := range r.Players {
		if p.ConnID == connID {
			return i
		}
	}
	return -1
}
