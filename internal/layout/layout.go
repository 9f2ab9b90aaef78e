// Package layout encodes and decodes saved card layouts: an ordered
// list of {suit, rank, faceUp} per pile, the format consumed and
// produced by persistence collaborators. The rule engine itself never
// touches storage; this package bridges between its stacks and disk.
package layout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lox/klondike/internal/fileutil"
	"github.com/lox/klondike/klondike"
)

// CardState is the persisted form of a single card.
type CardState struct {
	Suit   string `json:"suit"`
	Rank   int    `json:"rank"`
	FaceUp bool   `json:"faceUp"`
}

// Layout is a full board snapshot, each pile ordered bottom-to-top.
type Layout struct {
	Stock       []CardState                           `json:"stock"`
	Waste       []CardState                           `json:"waste"`
	Foundations [klondike.FoundationCount][]CardState `json:"foundations"`
	Tableaus    [klondike.TableauCount][]CardState    `json:"tableaus"`
}

// Capture snapshots the engine's current board.
func Capture(e *klondike.Engine) *Layout {
	l := &Layout{
		Stock: pile(e.Stock()),
		Waste: pile(e.Waste()),
	}
	for i := 0; i < klondike.FoundationCount; i++ {
		l.Foundations[i] = pile(e.Foundation(i))
	}
	for i := 0; i < klondike.TableauCount; i++ {
		l.Tableaus[i] = pile(e.Tableau(i))
	}
	return l
}

func pile(s *klondike.Stack) []CardState {
	cards := s.Cards()
	out := make([]CardState, len(cards))
	for i, c := range cards {
		out[i] = CardState{Suit: c.Suit.Name(), Rank: int(c.Rank), FaceUp: c.FaceUp}
	}
	return out
}

// Restore replaces the engine's board with the saved layout. Fails if
// the layout is not the complete 52-card set or names an unknown card;
// the board is unchanged on failure.
func Restore(e *klondike.Engine, l *Layout) error {
	stock, err := cards(l.Stock)
	if err != nil {
		return fmt.Errorf("stock: %w", err)
	}
	waste, err := cards(l.Waste)
	if err != nil {
		return fmt.Errorf("waste: %w", err)
	}
	foundations := make([][]*klondike.Card, klondike.FoundationCount)
	for i, pile := range l.Foundations {
		if foundations[i], err = cards(pile); err != nil {
			return fmt.Errorf("foundation %d: %w", i, err)
		}
	}
	tableaus := make([][]*klondike.Card, klondike.TableauCount)
	for i, pile := range l.Tableaus {
		if tableaus[i], err = cards(pile); err != nil {
			return fmt.Errorf("tableau %d: %w", i, err)
		}
	}
	return e.ResetPiles(stock, waste, foundations, tableaus)
}

func cards(states []CardState) ([]*klondike.Card, error) {
	out := make([]*klondike.Card, len(states))
	for i, st := range states {
		suit, err := klondike.SuitFromName(st.Suit)
		if err != nil {
			return nil, err
		}
		if st.Rank < int(klondike.Ace) || st.Rank > int(klondike.King) {
			return nil, fmt.Errorf("invalid rank %d", st.Rank)
		}
		card := klondike.NewCard(suit, klondike.Rank(st.Rank))
		card.FaceUp = st.FaceUp
		out[i] = card
	}
	return out, nil
}

// Save writes the layout to path atomically.
func Save(path string, l *Layout) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	return fileutil.WriteFileAtomic(path, data, 0644)
}

// Load reads a layout from path.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to decode layout: %w", err)
	}
	return &l, nil
}
