package game

import "testing"

func TestSetOf(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want SetName
	}{
		{name: "low spade", card: Card{Suit: Spades, Rank: "A"}, want: LowSpades},
		{name: "low heart upper bound", card: Card{Suit: Hearts, Rank: "6"}, want: LowHearts},
		{name: "high club lower bound", card: Card{Suit: Clubs, Rank: "8"}, want: HighClubs},
		{name: "high diamond face", card: Card{Suit: Diamonds, Rank: "Q"}, want: HighDiamonds},
		{name: "seven of spades", card: Card{Suit: Spades, Rank: "7"}, want: Sevens},
		{name: "red joker", card: Card{Suit: Joker, Rank: "Red"}, want: Sevens},
		{name: "big joker labelling", card: Card{Suit: Joker, Rank: "Big"}, want: Sevens},
		{name: "malformed rank", card: Card{Suit: Spades, Rank: "11"}, want: SetUnknown},
		{name: "malformed suit", card: Card{Suit: "Stars", Rank: "A"}, want: SetUnknown},
		{name: "malformed joker rank", card: Card{Suit: Joker, Rank: "Q"}, want: SetUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SetOf(tt.card); got != tt.want {
				t.Fatalf("SetOf(%v) = %q, want %q", tt.card, got, tt.want)
			}
		})
	}
}

func TestPartitionTotality(t *testing.T) {
	// Every deck card classifies into exactly one of the 9 sets, and
	// the set memberships cover the 54 cards with no overlap.
	counts := map[SetName]int{}
	for _, c := range NewDeck() {
		set := SetOf(c)
		if set == SetUnknown {
			t.Fatalf("deck card %v classified as unknown", c)
		}
		counts[set]++
	}
	if len(counts) != 9 {
		t.Fatalf("deck covers %d sets, want 9", len(counts))
	}
	for set, n := range counts {
		if n != 6 {
			t.Fatalf("set %q has %d deck cards, want 6", set, n)
		}
	}

	total := 0
	seen := map[Card]SetName{}
	for _, name := range AllSets() {
		cards := SetCards(name)
		if len(cards) != 6 {
			t.Fatalf("SetCards(%q) returned %d cards, want 6", name, len(cards))
		}
		for _, c := range cards {
			if prev, dup := seen[c]; dup {
				t.Fatalf("card %v appears in both %q and %q", c, prev, name)
			}
			seen[c] = name
			// Round trip: classification must agree with membership.
			if got := SetOf(c); got != name {
				t.Fatalf("SetOf(%v) = %q, want %q", c, got, name)
			}
		}
		total += len(cards)
	}
	if total != 54 {
		t.Fatalf("set memberships sum to %d cards, want 54", total)
	}
}

func TestSetCardsUnknown(t *testing.T) {
	if got := SetCards(SetUnknown); got != nil {
		t.Fatalf("SetCards(unknown) = %v, want nil", got)
	}
	if got := SetCards(SetName("Mid Spades")); got != nil {
		t.Fatalf("SetCards on bogus name = %v, want nil", got)
	}
}
