package game

import "math/rand"

// NewDeck builds the 54-card deck: four suits of thirteen ranks plus
// the red and black jokers.
func NewDeck() []Card {
	deck := make([]Card, 0, 54)
	for _, suit := range standardSuits {
		deck = append(deck, suitRun(suit, lowRanks)...)
		deck = append(deck, Card{Suit: suit, Rank: "7"})
		deck = append(deck, suitRun(suit, highRanks)...)
	}
	deck = append(deck,
		Card{Suit: Joker, Rank: "Red"},
		Card{Suit: Joker, Rank: "Black"},
	)
	return deck
}

// Shuffle returns a shuffled copy of the deck. The input is not modified.
func Shuffle(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Deal splits the deck round-robin into n hands. Hand sizes differ by
// at most one card. Returns nil when n is not positive.
func Deal(deck []Card, n int) [][]Card {
	if n <= 0 {
		return nil
	}
	hands := make([][]Card, n)
	for i := range hands {
		hands[i] = make([]Card, 0, (len(deck)+n-1)/n)
	}
	for i, c := range deck {
		hands[i%n] = append(hands[i%n], c)
	}
	return hands
}
