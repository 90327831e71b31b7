package game

// Suit identifies one of the four French suits, or the joker pseudo-suit.
type Suit string

const (
	Spades   Suit = "Spades"
	Hearts   Suit = "Hearts"
	Clubs    Suit = "Clubs"
	Diamonds Suit = "Diamonds"
	Joker    Suit = "Joker"
)

// Card is a single playing card. Jokers carry their colour in Rank.
type Card struct {
	Suit Suit   `json:"suit"`
	Rank string `json:"rank"`
}

// SetName names one of the nine declarable half-suits.
type SetName string

const (
	LowSpades    SetName = "Low Spades"
	LowHearts    SetName = "Low Hearts"
	LowClubs     SetName = "Low Clubs"
	LowDiamonds  SetName = "Low Diamonds"
	HighSpades   SetName = "High Spades"
	HighHearts   SetName = "High Hearts"
	HighClubs    SetName = "High Clubs"
	HighDiamonds SetName = "High Diamonds"
	Sevens       SetName = "Sevens"

	SetUnknown SetName = ""
)

var (
	standardSuits = []Suit{Spades, Hearts, Clubs, Diamonds}
	lowRanks      = []string{"A", "2", "3", "4", "5", "6"}
	highRanks     = []string{"8", "9", "10", "J", "Q", "K"}

	lowSetBySuit = map[Suit]SetName{
		Spades:   LowSpades,
		Hearts:   LowHearts,
		Clubs:    LowClubs,
		Diamonds: LowDiamonds,
	}
	highSetBySuit = map[Suit]SetName{
		Spades:   HighSpades,
		Hearts:   HighHearts,
		Clubs:    HighClubs,
		Diamonds: HighDiamonds,
	}
	jokerRanks = map[string]bool{
		"Red":   true,
		"Black": true,
		"Big":   true,
		"Small": true,
	}
)

// AllSets returns the nine set names in a stable order.
func AllSets() []SetName {
	return []SetName{
		LowSpades, LowHearts, LowClubs, LowDiamonds,
		HighSpades, HighHearts, HighClubs, HighDiamonds,
		Sevens,
	}
}

// SetOf classifies a card into its half-suit. Sevens and both jokers
// belong to the Sevens set. Malformed cards map to SetUnknown.
func SetOf(c Card) SetName {
	if c.Suit == Joker {
		if jokerRanks[c.Rank] {
			return Sevens
		}
		return SetUnknown
	}
	if c.Rank == "7" {
		if _, ok := lowSetBySuit[c.Suit]; ok {
			return Sevens
		}
		return SetUnknown
	}
	for _, r := range lowRanks {
		if c.Rank == r {
			if set, ok := lowSetBySuit[c.Suit]; ok {
				return set
			}
			return SetUnknown
		}
	}
	for _, r := range highRanks {
		if c.Rank == r {
			if set, ok := highSetBySuit[c.Suit]; ok {
				return set
			}
			return SetUnknown
		}
	}
	return SetUnknown
}

// SetCards returns the six members of a set, or nil for an unknown name.
func SetCards(name SetName) []Card {
	for suit, set := range lowSetBySuit {
		if set == name {
			return suitRun(suit, lowRanks)
		}
	}
	for suit, set := range highSetBySuit {
		if set == name {
			return suitRun(suit, highRanks)
		}
	}
	if name == Sevens {
		return []Card{
			{Suit: Spades, Rank: "7"},
			{Suit: Hearts, Rank: "7"},
			{Suit: Clubs, Rank: "7"},
			{Suit: Diamonds, Rank: "7"},
			{Suit: Joker, Rank: "Red"},
			{Suit: Joker, Rank: "Black"},
		}
	}
	return nil
}

func suitRun(suit Suit, ranks []string) []Card {
	cards := make([]Card, 0, len(ranks))
	for _, r := range ranks {
		cards = append(cards, Card{Suit: suit, Rank: r})
	}
	return cards
}
