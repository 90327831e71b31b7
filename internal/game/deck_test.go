package game

import (
	"math/rand"
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 54 {
		t.Fatalf("deck size = %d, want 54", len(deck))
	}

	seen := make(map[Card]bool)
	jokers := 0
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("duplicate card: %v", c)
		}
		seen[c] = true
		if c.Suit == Joker {
			jokers++
		}
	}
	if jokers != 2 {
		t.Fatalf("joker count = %d, want 2", jokers)
	}
}

func TestShuffle(t *testing.T) {
	deck := NewDeck()
	orig := make([]Card, len(deck))
	copy(orig, deck)

	rng := rand.New(rand.NewSource(1))
	shuffled := Shuffle(deck, rng)

	// Caller's slice must be untouched.
	for i := range deck {
		if deck[i] != orig[i] {
			t.Fatalf("Shuffle mutated input at %d", i)
		}
	}

	// Permutation: same multiset, same size.
	if len(shuffled) != len(deck) {
		t.Fatalf("shuffled size = %d, want %d", len(shuffled), len(deck))
	}
	seen := make(map[Card]bool)
	for _, c := range shuffled {
		if seen[c] {
			t.Fatalf("duplicate after shuffle: %v", c)
		}
		seen[c] = true
	}
}

func TestDeal(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{name: "four players", n: 4},
		{name: "five players", n: 5},
		{name: "six players", n: 6},
		{name: "eight players", n: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck := NewDeck()
			hands := Deal(deck, tt.n)
			if len(hands) != tt.n {
				t.Fatalf("hand count = %d, want %d", len(hands), tt.n)
			}

			total := 0
			min, max := 55, 0
			for _, h := range hands {
				total += len(h)
				if len(h) < min {
					min = len(h)
				}
				if len(h) > max {
					max = len(h)
				}
			}
			if total != 54 {
				t.Fatalf("dealt %d cards, want 54", total)
			}
			if max-min > 1 {
				t.Fatalf("hand sizes differ by %d, want at most 1", max-min)
			}

			seen := make(map[Card]bool)
			for _, h := range hands {
				for _, c := range h {
					if seen[c] {
						t.Fatalf("card dealt twice: %v", c)
					}
					seen[c] = true
				}
			}
		})
	}
}

func TestDealNoPlayers(t *testing.T) {
	if hands := Deal(NewDeck(), 0); hands != nil {
		t.Fatalf("Deal with 0 players = %v, want nil", hands)
	}
}
