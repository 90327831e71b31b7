package room

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smiitm/literature/internal/config"
	"github.com/smiitm/literature/internal/game"
	"github.com/smiitm/literature/internal/shared"
)

type Store interface {
	GetRoom(roomID string) (*shared.Room, bool)
	SaveRoom(r *shared.Room)
	DeleteRoom(roomID string)
	Rooms() []*shared.Room
}

// Declared is one (card, claimed holder) pair of a set declaration.
// PlayerID is the stable identity, not the connection id.
type Declared struct {
	Card     game.Card `json:"card"`
	PlayerID string    `json:"playerId"`
}

// Manager owns every room and runs the turn/declaration state machine.
// Each mutating method holds the target room's mutex for its whole
// run, so commands against one room never interleave.
type Manager struct {
	store Store
	cfg   config.Config
	b     Broadcaster

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

func NewManager(s Store, cfg config.Config) *Manager {
	return &Manager{
		store: s,
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (m *Manager) SetBroadcaster(b Broadcaster) {
	m.b = b
}

// CreateGame makes a new lobby with the creator as sole player and
// owner. The room id is a 6-digit numeric code, regenerated until it
// does not collide with a live room.
func (m *Manager) CreateGame(connID, playerName, playerID string) *shared.Room {
	roomID := m.newRoomID()
	r := &shared.Room{
		RoomID: roomID,
		Status: shared.StatusLobby,
		Players: []*shared.Player{{
			ConnID:   connID,
			PlayerID: playerID,
			Name:     playerName,
			Hand:     []game.Card{},
			Team:     shared.TeamNone,
			IsOwner:  true,
		}},
		TurnState: shared.TurnNormal,
		Teams: map[shared.Team]*shared.TeamScore{
			shared.TeamA: {},
			shared.TeamB: {},
		},
		CompletedSets: []shared.CompletedSet{},
		CreatedAt:     time.Now(),
		LastActivity:  time.Now(),
	}
	m.send(connID, "game_created", gin.H{"roomId": roomID, "playerName": playerName})
	m.broadcastRoster(r)

	// Saving publishes the code: no other connection can reach the
	// roster until after this point.
	m.store.SaveRoom(r)
	log.Printf("game created: %s by %s", roomID, playerName)
	return r
}

// JoinGame attaches a connection to a room. A stable id already seated
// in the room means a reconnect: the seat's connection id is rebound
// (last writer wins) and, mid-game, the caller gets a full personal
// snapshot instead of the lobby roster. Genuinely new players are only
// admitted while the room is still in the lobby.
func (m *Manager) JoinGame(connID, roomID, playerName, playerID string) error {
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return ErrRoomNotFound
	}
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	// The room may have been deleted between the lookup and the lock.
	if cur, ok := m.store.GetRoom(roomID); !ok || cur != r {
		return ErrRoomNotFound
	}

	if i := r.FindByPlayerID(playerID); i >= 0 {
		p := r.Players[i]
		p.ConnID = connID
		r.LastActivity = time.Now()

		if r.Status == shared.StatusInGame {
			m.send(connID, "game_started_personal", r.PersonalView(p))
			log.Printf("%s rejoined in-progress game %s", p.Name, roomID)
		} else {
			m.broadcastRoster(r)
			m.send(connID, "joined_game", gin.H{"roomId": roomID, "playerName": p.Name})
			log.Printf("%s reconnected to %s", p.Name, roomID)
		}
		return nil
	}

	if r.Status != shared.StatusLobby {
		return ErrGameAlreadyStarted
	}
	if len(r.Players) >= m.cfg.MaxPlayers {
		return ErrRoomFull
	}

	r.Players = append(r.Players, &shared.Player{
		ConnID:   connID,
		PlayerID: playerID,
		Name:     playerName,
		Hand:     []game.Card{},
		Team:     shared.TeamNone,
	})
	r.LastActivity = time.Now()

	m.broadcastRoster(r)
	m.send(connID, "joined_game", gin.H{"roomId": roomID, "playerName": playerName})
	log.Printf("%s joined %s", playerName, roomID)
	return nil
}

// StartGame deals a fresh game. Only the owner (by stable id) may
// start; their connection id is rebound to the requesting socket so a
// reconnected owner can start immediately.
func (m *Manager) StartGame(connID, roomID, playerID string) error {
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return ErrRoomNotFound
	}
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	i := r.FindByPlayerID(playerID)
	if i < 0 || !r.Players[i].IsOwner {
		return ErrNotOwner
	}
	if r.Status != shared.StatusLobby {
		return ErrGameAlreadyStarted
	}
	r.Players[i].ConnID = connID

	n := len(r.Players)
	if n < m.cfg.MinPlayers {
		return ErrNotEnoughPlayers
	}
	if m.cfg.RequireEvenTeams && n%2 != 0 {
		return ErrUnevenTeams
	}

	// Teams alternate by seat order: 0,2,4.. -> A and 1,3,5.. -> B.
	for idx, p := range r.Players {
		if idx%2 == 0 {
			p.Team = shared.TeamA
		} else {
			p.Team = shared.TeamB
		}
	}

	m.mu.Lock()
	deck := game.Shuffle(game.NewDeck(), m.rng)
	turn := m.rng.Intn(n)
	m.mu.Unlock()

	hands := game.Deal(deck, n)
	for idx, p := range r.Players {
		p.Hand = hands[idx]
	}

	r.Status = shared.StatusInGame
	r.TurnIndex = turn
	r.TurnState = shared.TurnNormal
	r.LastActivity = time.Now()

	// Public start event carries the redacted roster only; the
	// personal variant below is the authoritative one.
	m.broadcast(r, "game_started", gin.H{
		"turnIndex": r.TurnIndex,
		"players":   r.PublicPlayers(),
	})
	for _, p := range r.Players {
		m.send(p.ConnID, "game_started_personal", r.PersonalView(p))
	}
	log.Printf("game started in room %s with %d players", roomID, n)
	return nil
}

// AskCard resolves one ask. On a hit the card moves to the asker, who
// keeps the turn; on a miss the turn moves to the target. Scores never
// change on an ask.
func (m *Manager) AskCard(connID, roomID, targetID string, card game.Card) error {
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return ErrRoomNotFound
	}
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	if r.Status != shared.StatusInGame {
		return ErrGameNotStarted
	}
	pi := r.FindByConnID(connID)
	if pi < 0 {
		return ErrNotInGame
	}
	if r.TurnIndex != pi {
		return ErrNotYourTurn
	}
	player := r.Players[pi]

	ti := r.FindByPlayerID(targetID)
	if ti < 0 {
		return ErrTargetNotFound
	}
	target := r.Players[ti]

	if player.Team == target.Team {
		return ErrCannotAskTeammate
	}
	if len(target.Hand) == 0 {
		return ErrTargetEmpty
	}

	// Base rule: the asker must hold at least one card of the set the
	// asked card belongs to, and must not hold the asked card itself.
	set := game.SetOf(card)
	hasBase := false
	for _, c := range player.Hand {
		if c == card {
			return ErrAlreadyHaveCard
		}
		if game.SetOf(c) == set {
			hasBase = true
		}
	}
	if set == game.SetUnknown || !hasBase {
		return ErrMustHoldBase
	}

	hit := -1
	for idx, c := range target.Hand {
		if c == card {
			hit = idx
			break
		}
	}

	r.LastAsk = &shared.LastAsk{
		AskerName:  player.Name,
		TargetName: target.Name,
		Card:       card,
		Success:    hit >= 0,
	}
	if hit >= 0 {
		target.Hand = append(target.Hand[:hit], target.Hand[hit+1:]...)
		player.Hand = append(player.Hand, card)
		r.Log = append(r.Log, fmt.Sprintf("%s took %s of %s from %s", player.Name, card.Rank, card.Suit, target.Name))
	} else {
		r.TurnIndex = ti
		r.Log = append(r.Log, fmt.Sprintf("%s asked %s for %s of %s and missed", player.Name, target.Name, card.Rank, card.Suit))
	}

	r.LastActivity = time.Now()
	m.emitGameState(r)
	return nil
}

// DeclareSet adjudicates a declaration. Whatever the outcome, all six
// cards of the implied set are retired from every hand; an incorrect
// declaration scores for the opposing team only if some opposing
// player actually held a card of the set, and in both incorrect
// branches the turn advances one seat. The ninth resolved set ends the
// game.
func (m *Manager) DeclareSet(connID, roomID string, declaration []Declared) error {
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return ErrRoomNotFound
	}
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	if r.Status != shared.StatusInGame {
		return ErrGameNotStarted
	}
	pi := r.FindByConnID(connID)
	if pi < 0 {
		return ErrNotInGame
	}
	player := r.Players[pi]

	if len(declaration) == 0 {
		return ErrInvalidDeclaration
	}
	setName := game.SetOf(declaration[0].Card)
	if setName == game.SetUnknown {
		return ErrInvalidDeclaration
	}
	expected := game.SetCards(setName)
	if len(declaration) != len(expected) {
		return ErrInvalidDeclaration
	}
	for _, want := range expected {
		found := false
		for _, d := range declaration {
			if d.Card == want {
				found = true
				break
			}
		}
		if !found {
			return ErrInvalidDeclaration
		}
	}

	// Correct iff every claimed holder actually holds their card.
	correct := true
	for _, d := range declaration {
		hi := r.FindByPlayerID(d.PlayerID)
		if hi < 0 || !holds(r.Players[hi], d.Card) {
			correct = false
			break
		}
	}

	// On a wrong declaration, whether any opposing player held a card
	// of the set decides opponent-scores versus discarded.
	opponentHeld := false
	if !correct {
		for _, c := range expected {
			for _, p := range r.Players {
				if holds(p, c) && p.Team != player.Team {
					opponentHeld = true
				}
			}
		}
	}

	// Declaring always retires the set: strip its cards everywhere.
	for _, p := range r.Players {
		kept := p.Hand[:0]
		for _, c := range p.Hand {
			if game.SetOf(c) != setName {
				kept = append(kept, c)
			}
		}
		p.Hand = kept
	}

	if correct {
		r.Teams[player.Team].Score++
		r.CompletedSets = append(r.CompletedSets, shared.CompletedSet{SetName: setName, CompletedBy: string(player.Team)})
		r.Log = append(r.Log, fmt.Sprintf("%s declared %s correctly", player.Name, setName))
	} else {
		opponent := shared.TeamA
		if player.Team == shared.TeamA {
			opponent = shared.TeamB
		}
		if opponentHeld {
			r.Teams[opponent].Score++
			r.CompletedSets = append(r.CompletedSets, shared.CompletedSet{SetName: setName, CompletedBy: string(opponent)})
			r.Log = append(r.Log, fmt.Sprintf("%s declared %s incorrectly, point to team %s", player.Name, setName, opponent))
		} else {
			r.CompletedSets = append(r.CompletedSets, shared.CompletedSet{SetName: setName, CompletedBy: "Discarded"})
			r.Log = append(r.Log, fmt.Sprintf("%s declared %s incorrectly, set discarded", player.Name, setName))
		}
		// Plain seat increment, not next-on-opposing-team.
		r.TurnIndex = (r.TurnIndex + 1) % len(r.Players)
	}

	// A mid-game leave can strand TurnIndex past the last seat.
	if r.TurnIndex < len(r.Players) && len(r.Players[r.TurnIndex].Hand) == 0 {
		r.TurnState = shared.TurnPassing
	}

	if len(r.CompletedSets) == 9 {
		r.Status = shared.StatusGameOver
		a, b := r.Teams[shared.TeamA].Score, r.Teams[shared.TeamB].Score
		switch {
		case a > b:
			r.Winner = string(shared.TeamA)
		case b > a:
			r.Winner = string(shared.TeamB)
		default:
			r.Winner = shared.WinnerDraw
		}
		log.Printf("game over in room %s: winner %s (%d-%d)", roomID, r.Winner, a, b)
	}

	r.LastActivity = time.Now()
	m.emitGameState(r)
	return nil
}

// PassTurn hands an empty seat's turn to a teammate holding cards.
// When every teammate is also empty-handed the pass may target an
// opponent with cards instead, so the game cannot wedge.
func (m *Manager) PassTurn(connID, roomID, targetID string) error {
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return ErrRoomNotFound
	}
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	if r.Status != shared.StatusInGame {
		return ErrGameNotStarted
	}
	pi := r.FindByConnID(connID)
	if pi < 0 {
		return ErrNotInGame
	}
	if r.TurnIndex != pi {
		return ErrNotYourTurn
	}
	player := r.Players[pi]

	if len(player.Hand) > 0 {
		return ErrCannotPassWithCards
	}

	ti := r.FindByPlayerID(targetID)
	if ti < 0 {
		return ErrTargetNotFound
	}
	target := r.Players[ti]

	if target.Team != player.Team && !teamEmptyHanded(r, player.Team, pi) {
		return ErrMustPassToTeammate
	}
	if len(target.Hand) == 0 {
		return ErrCannotPassToEmptyTeammate
	}

	r.TurnIndex = ti
	r.TurnState = shared.TurnNormal
	r.Log = append(r.Log, fmt.Sprintf("%s passed turn to %s", player.Name, target.Name))

	r.LastActivity = time.Now()
	m.emitGameState(r)
	return nil
}

// LeaveRoom removes the seat bound to connID regardless of game
// status. Ownership moves to the first remaining player; an emptied
// room is deleted.
func (m *Manager) LeaveRoom(connID, roomID string) error {
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return ErrRoomNotFound
	}
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	i := r.FindByConnID(connID)
	if i < 0 {
		return ErrNotInRoom
	}
	leaving := r.Players[i]
	r.Players = append(r.Players[:i], r.Players[i+1:]...)

	if len(r.Players) == 0 {
		m.store.DeleteRoom(roomID)
		log.Printf("room %s deleted (no players left)", roomID)
		return nil
	}
	if leaving.IsOwner {
		r.Players[0].IsOwner = true
	}
	r.LastActivity = time.Now()

	m.broadcastRoster(r)
	log.Printf("%s left room %s", leaving.Name, roomID)
	return nil
}

// Disconnect is the transport-level drop, distinct from an explicit
// leave: the seat, hand, team and turn position are preserved pending
// a reconnect, and observers are only notified. A room whose sole
// player drops is deleted.
func (m *Manager) Disconnect(connID string) {
	for _, r := range m.store.Rooms() {
		r.Mutex.Lock()
		i := r.FindByConnID(connID)
		if i < 0 {
			r.Mutex.Unlock()
			continue
		}
		p := r.Players[i]
		if len(r.Players) == 1 {
			m.store.DeleteRoom(r.RoomID)
			log.Printf("room %s deleted (last player disconnected)", r.RoomID)
			r.Mutex.Unlock()
			return
		}
		m.broadcast(r, "player_disconnected", gin.H{
			"playerId":   p.PlayerID,
			"playerName": p.Name,
		})
		log.Printf("%s disconnected from room %s", p.Name, r.RoomID)
		r.Mutex.Unlock()
		return
	}
}

// Get returns a live room by code.
func (m *Manager) Get(roomID string) (*shared.Room, bool) {
	return m.store.GetRoom(roomID)
}

// StartReaper launches the idle-room sweep when a TTL is configured.
// The returned func stops it.
func (m *Manager) StartReaper() func() {
	if m.cfg.RoomTTL <= 0 {
		return func() {}
	}
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(m.cfg.ReapInterval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				m.reapIdle()
			}
		}
	}()
	return func() { close(done) }
}

func (m *Manager) reapIdle() {
	now := time.Now()
	for _, r := range m.store.Rooms() {
		r.Mutex.Lock()
		idle := now.Sub(r.LastActivity)
		if idle > m.cfg.RoomTTL {
			m.store.DeleteRoom(r.RoomID)
			log.Printf("room %s reaped after %s idle", r.RoomID, idle.Round(time.Second))
		}
		r.Mutex.Unlock()
	}
}

func (m *Manager) newRoomID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		code := fmt.Sprintf("%06d", 100000+m.rng.Intn(900000))
		if _, exists := m.store.GetRoom(code); !exists {
			return code
		}
	}
}

func (m *Manager) send(connID, action string, data interface{}) {
	if m.b == nil || connID == "" {
		return
	}
	m.b.Send(connID, action, data)
}

func (m *Manager) broadcast(r *shared.Room, action string, data interface{}) {
	for _, p := range r.Players {
		m.send(p.ConnID, action, data)
	}
}

func (m *Manager) broadcastRoster(r *shared.Room) {
	m.broadcast(r, "player_update", gin.H{"players": r.PublicPlayers()})
}

// emitGameState sends every seated player their own personal
// projection. This is the information-hiding contract: no payload ever
// carries another player's hand contents.
func (m *Manager) emitGameState(r *shared.Room) {
	for _, p := range r.Players {
		m.send(p.ConnID, "game_update", r.PersonalView(p))
	}
}

func holds(p *shared.Player, c game.Card) bool {
	for _, h := range p.Hand {
		if h == c {
			return true
		}
	}
	return false
}

// teamEmptyHanded reports whether every member of team other than the
// seat at exclude holds zero cards.
func teamEmptyHanded(r *shared.Room, team shared.Team, exclude int) bool {
	for i, p := range r.Players {
		if i == exclude || p.Team != team {
			continue
		}
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}
