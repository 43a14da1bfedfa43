package engine

// Rank is the face value of a card, backed by its single-character token
// symbol. Ten is "T" so every card token stays exactly two characters.
type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "T"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

// Suit of a card, backed by its single-character token symbol.
type Suit string

const (
	Clubs    Suit = "C"
	Diamonds Suit = "D"
	Hearts   Suit = "H"
	Spades   Suit = "S"
)

// Ranks and Suits enumerate the full symbol sets in canonical order.
var (
	Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
	Suits = []Suit{Clubs, Diamonds, Hearts, Spades}
)

var (
	validRanks = map[Rank]bool{}
	validSuits = map[Suit]bool{}
)

func init() {
	for _, r := range Ranks {
		validRanks[r] = true
	}
	for _, s := range Suits {
		validSuits[s] = true
	}
}

// Card is an immutable (rank, suit) value, e.g. ace of spades => "AS".
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// Token returns the canonical two-character encoding of the card.
func (c Card) Token() string { return string(c.Rank) + string(c.Suit) }

func (c Card) String() string { return c.Token() }

// Valid reports whether both symbols belong to the closed rank/suit sets.
func (c Card) Valid() bool { return validRanks[c.Rank] && validSuits[c.Suit] }

// ParseCard decodes a two-character token back into a Card. It is the
// strict inverse of Token: ParseCard(c.Token()) == c for every valid card.
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, E(KindInvalidCardEncoding, "card token %q must be exactly 2 characters", token)
	}
	c := Card{Rank: Rank(token[:1]), Suit: Suit(token[1:])}
	if !validRanks[c.Rank] {
		return Card{}, E(KindInvalidCardEncoding, "card token %q has unknown rank %q", token, token[:1])
	}
	if !validSuits[c.Suit] {
		return Card{}, E(KindInvalidCardEncoding, "card token %q has unknown suit %q", token, token[1:])
	}
	return c, nil
}
