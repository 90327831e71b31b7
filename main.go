package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/smiitm/literature/internal/config"
	"github.com/smiitm/literature/internal/game"
	"github.com/smiitm/literature/internal/room"
	"github.com/smiitm/literature/internal/shared"
	"github.com/smiitm/literature/internal/store"
)

// Hot-seat terminal demo: four local seats share one keyboard and the
// commands go through the same manager the server uses.

type silentBroadcaster struct{}

func (silentBroadcaster) Send(connID, action string, data interface{}) {}

func main() {
	cfg := config.Load()
	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg)
	rm.SetBroadcaster(silentBroadcaster{})

	names := []string{"North", "East", "South", "West"}
	r := rm.CreateGame("seat-0", names[0], "demo-0")
	for i := 1; i < len(names); i++ {
		if err := rm.JoinGame(fmt.Sprintf("seat-%d", i), r.RoomID, names[i], fmt.Sprintf("demo-%d", i)); err != nil {
			fmt.Println("join failed:", err)
			return
		}
	}
	if err := rm.StartGame("seat-0", r.RoomID, "demo-0"); err != nil {
		fmt.Println("start failed:", err)
		return
	}

	reader := bufio.NewReader(os.Stdin)
	for r.Status == shared.StatusInGame {
		cp := r.Players[r.TurnIndex]
		fmt.Printf("\nTurn: %s (team %s)\n", cp.Name, cp.Team)
		printTable(r)
		fmt.Printf("Hand: %s\n", handString(cp.Hand))
		if r.TurnState == shared.TurnPassing {
			fmt.Println("No cards left, you must pass: pass <seat>")
		}
		fmt.Println("Commands: ask <seat> <rank> <suit> | declare <set name> | pass <seat>")
		fmt.Print("> ")

		line, _ := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		var err error
		switch parts[0] {
		case "ask":
			if len(parts) != 4 {
				fmt.Println("usage: ask <seat> <rank> <suit>")
				continue
			}
			target, ok := seatPlayer(r, parts[1])
			if !ok {
				fmt.Println("no such seat")
				continue
			}
			card := game.Card{Suit: game.Suit(parts[3]), Rank: parts[2]}
			err = rm.AskCard(cp.ConnID, r.RoomID, target.PlayerID, card)
		case "declare":
			set := game.SetName(strings.Join(parts[1:], " "))
			decl, ok := readDeclaration(reader, r, set)
			if !ok {
				continue
			}
			err = rm.DeclareSet(cp.ConnID, r.RoomID, decl)
		case "pass":
			if len(parts) != 2 {
				fmt.Println("usage: pass <seat>")
				continue
			}
			target, ok := seatPlayer(r, parts[1])
			if !ok {
				fmt.Println("no such seat")
				continue
			}
			err = rm.PassTurn(cp.ConnID, r.RoomID, target.PlayerID)
		default:
			fmt.Println("unknown command")
			continue
		}
		if err != nil {
			fmt.Println("rejected:", err)
		}
	}

	fmt.Printf("\nGame over! Winner: %s (A %d - B %d)\n",
		r.Winner, r.Teams[shared.TeamA].Score, r.Teams[shared.TeamB].Score)
}

func printTable(r *shared.Room) {
	for i, p := range r.Players {
		fmt.Printf("  [%d] %-6s team %s  %2d cards\n", i+1, p.Name, p.Team, len(p.Hand))
	}
	fmt.Printf("  Scores: A %d - B %d, sets resolved: %d/9\n",
		r.Teams[shared.TeamA].Score, r.Teams[shared.TeamB].Score, len(r.CompletedSets))
}

func handString(hand []game.Card) string {
	out := make([]string, 0, len(hand))
	for _, c := range hand {
		out = append(out, fmt.Sprintf("%s-%s", c.Rank, c.Suit))
	}
	return strings.Join(out, " ")
}

func seatPlayer(r *shared.Room, arg string) (*shared.Player, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(r.Players) {
		return nil, false
	}
	return r.Players[n-1], true
}

func readDeclaration(reader *bufio.Reader, r *shared.Room, set game.SetName) ([]room.Declared, bool) {
	cards := game.SetCards(set)
	if len(cards) == 0 {
		fmt.Println("unknown set name")
		return nil, false
	}
	decl := make([]room.Declared, 0, len(cards))
	for _, c := range cards {
		fmt.Printf("who holds %s of %s? seat number> ", c.Rank, c.Suit)
		line, _ := reader.ReadString('\n')
		p, ok := seatPlayer(r, strings.TrimSpace(line))
		if !ok {
			fmt.Println("no such seat, declaration aborted")
			return nil, false
		}
		decl = append(decl, room.Declared{Card: c, PlayerID: p.PlayerID})
	}
	return decl, true
}
