package klondike

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Name returns the lowercase suit name used in saved layouts
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "unknown"
	}
}

// SuitFromName maps a layout suit name back to a Suit
func SuitFromName(name string) (Suit, error) {
	switch name {
	case "spades":
		return Spades, nil
	case "hearts":
		return Hearts, nil
	case "diamonds":
		return Diamonds, nil
	case "clubs":
		return Clubs, nil
	default:
		return 0, fmt.Errorf("unknown suit %q", name)
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are always low in Klondike:
// foundations build A..K and tableaus build K..A.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r >= Two && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card represents a playing card. Suit and Rank never change after
// construction; FaceUp flips as the card is dealt, drawn and uncovered.
type Card struct {
	Suit   Suit
	Rank   Rank
	FaceUp bool

	// owner is a weak back-reference to the stack currently holding the
	// card. Stack.Push and Stack.Remove are the only writers.
	owner *Stack
}

// NewCard creates a new face-down card
func NewCard(suit Suit, rank Rank) *Card {
	return &Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c *Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c *Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Stack returns the stack currently holding the card, or nil if the
// card has not been dealt onto any stack.
func (c *Card) Stack() *Stack {
	return c.owner
}
