package klondike

import "fmt"

// StackKind identifies the role a stack plays on the board.
type StackKind int

const (
	Stock StackKind = iota
	Waste
	Foundation
	Tableau
)

// String returns the string representation of a stack kind
func (k StackKind) String() string {
	switch k {
	case Stock:
		return "stock"
	case Waste:
		return "waste"
	case Foundation:
		return "foundation"
	case Tableau:
		return "tableau"
	default:
		return "unknown"
	}
}

// StackRef identifies a stack by kind and slot without holding a
// pointer to it. Move records use refs so history stays valid across
// board resets.
type StackRef struct {
	Kind StackKind
	Slot int
}

// String returns the string representation of a stack ref (e.g., "tableau[3]")
func (r StackRef) String() string {
	return fmt.Sprintf("%s[%d]", r.Kind, r.Slot)
}

// Stack is an ordered pile of cards. Cards are ordered bottom-to-top:
// index 0 is the bottom, the last index is the top. All card placement
// goes through Push and Remove so that each card belongs to exactly
// one stack at any time.
type Stack struct {
	Kind StackKind
	Slot int

	cards []*Card
}

// NewStack creates an empty stack
func NewStack(kind StackKind, slot int) *Stack {
	return &Stack{Kind: kind, Slot: slot}
}

// Ref returns the stack's identifying ref
func (s *Stack) Ref() StackRef {
	return StackRef{Kind: s.Kind, Slot: s.Slot}
}

// Len returns the number of cards in the stack
func (s *Stack) Len() int {
	return len(s.cards)
}

// Empty returns true if the stack holds no cards
func (s *Stack) Empty() bool {
	return len(s.cards) == 0
}

// Top returns the top card, or nil if the stack is empty
func (s *Stack) Top() *Card {
	if len(s.cards) == 0 {
		return nil
	}
	return s.cards[len(s.cards)-1]
}

// At returns the card at index i (0 = bottom), or nil if out of range
func (s *Stack) At(i int) *Card {
	if i < 0 || i >= len(s.cards) {
		return nil
	}
	return s.cards[i]
}

// Cards returns a copy of the stack's cards, bottom to top. Mutating
// the returned slice does not affect the stack.
func (s *Stack) Cards() []*Card {
	out := make([]*Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// IndexOf returns the position of card in the stack, or -1
func (s *Stack) IndexOf(card *Card) int {
	for i, c := range s.cards {
		if c == card {
			return i
		}
	}
	return -1
}

// CanAccept reports whether card may be placed directly on this stack.
// Foundations build up by suit from the Ace; tableaus build down in
// alternating colors from the King. Stock and waste never accept
// direct placement.
func (s *Stack) CanAccept(card *Card) bool {
	if card == nil {
		return false
	}
	switch s.Kind {
	case Foundation:
		top := s.Top()
		if top == nil {
			return card.Rank == Ace
		}
		return card.Suit == top.Suit && card.Rank == top.Rank+1
	case Tableau:
		top := s.Top()
		if top == nil {
			return card.Rank == King
		}
		return top.FaceUp && card.IsRed() != top.IsRed() && card.Rank == top.Rank-1
	default:
		return false
	}
}

// Push places card on top of the stack. If the card currently belongs
// to another stack it is removed from there first, preserving the
// one-stack-per-card invariant.
func (s *Stack) Push(card *Card) {
	if card.owner != nil && card.owner != s {
		card.owner.Remove(card)
	}
	s.cards = append(s.cards, card)
	card.owner = s
}

// Remove takes card out of the stack, keeping the order of the rest.
// Returns false if the card is not in this stack.
func (s *Stack) Remove(card *Card) bool {
	i := s.IndexOf(card)
	if i < 0 {
		return false
	}
	s.cards = append(s.cards[:i], s.cards[i+1:]...)
	card.owner = nil
	return true
}

// SequenceFrom returns the longest valid run starting at index i. On a
// tableau a run extends while every card is face-up, colors alternate
// and ranks descend by exactly one; it stops at the first violation.
// On other stack kinds the full tail is returned unmodified since run
// semantics do not apply there.
func (s *Stack) SequenceFrom(i int) []*Card {
	if i < 0 || i >= len(s.cards) {
		return nil
	}
	if s.Kind != Tableau {
		out := make([]*Card, len(s.cards)-i)
		copy(out, s.cards[i:])
		return out
	}
	if !s.cards[i].FaceUp {
		return nil
	}
	run := []*Card{s.cards[i]}
	for j := i + 1; j < len(s.cards); j++ {
		prev, next := s.cards[j-1], s.cards[j]
		if !next.FaceUp || next.IsRed() == prev.IsRed() || next.Rank != prev.Rank-1 {
			break
		}
		run = append(run, next)
	}
	return run
}
