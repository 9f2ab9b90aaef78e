package klondike

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Board layout constants.
const (
	FoundationCount = 4
	TableauCount    = 7
)

// Engine owns the board and applies the rules of Klondike. Every
// public operation runs to completion synchronously and reports
// failure as a zero value, never a panic: an illegal command is a
// no-op. The engine is driven serially by a single controller.
type Engine struct {
	stock       *Stack
	waste       *Stack
	foundations [FoundationCount]*Stack
	tableaus    [TableauCount]*Stack
	stacks      []*Stack

	drawCount int
	history   *History
	state     *GameState
	logger    *log.Logger
}

// Option customises engine construction.
type Option func(*Engine)

// WithDrawCount sets how many cards a single draw turns over (1 or 3).
func WithDrawCount(n int) Option {
	return func(e *Engine) {
		if n == 1 || n == 3 {
			e.drawCount = n
		}
	}
}

// WithUndoCapacity bounds the undo history.
func WithUndoCapacity(n int) Option {
	return func(e *Engine) {
		e.history = NewHistory(n)
	}
}

// NewEngine creates an engine with an empty board. The state object is
// read for its status only; the engine never mutates its counters.
func NewEngine(state *GameState, logger *log.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	e := &Engine{
		drawCount: 1,
		history:   NewHistory(DefaultHistoryCapacity),
		state:     state,
		logger:    logger.WithPrefix("engine"),
	}
	e.stock = NewStack(Stock, 0)
	e.waste = NewStack(Waste, 0)
	e.stacks = []*Stack{e.stock, e.waste}
	for i := range e.foundations {
		e.foundations[i] = NewStack(Foundation, i)
		e.stacks = append(e.stacks, e.foundations[i])
	}
	for i := range e.tableaus {
		e.tableaus[i] = NewStack(Tableau, i)
		e.stacks = append(e.stacks, e.tableaus[i])
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stock returns the stock pile
func (e *Engine) Stock() *Stack { return e.stock }

// Waste returns the waste pile
func (e *Engine) Waste() *Stack { return e.waste }

// Foundation returns foundation pile i (0-3), or nil if out of range
func (e *Engine) Foundation(i int) *Stack {
	if i < 0 || i >= FoundationCount {
		return nil
	}
	return e.foundations[i]
}

// Tableau returns tableau column i (0-6), or nil if out of range
func (e *Engine) Tableau(i int) *Stack {
	if i < 0 || i >= TableauCount {
		return nil
	}
	return e.tableaus[i]
}

// Stacks returns every stack in canonical order: stock, waste,
// foundations 0-3, tableaus 0-6.
func (e *Engine) Stacks() []*Stack {
	out := make([]*Stack, len(e.stacks))
	copy(out, e.stacks)
	return out
}

// DrawCount returns the configured cards-per-draw
func (e *Engine) DrawCount() int { return e.drawCount }

// History returns the undo log
func (e *Engine) History() *History { return e.history }

// LastMove returns the most recent recorded move, or nil
func (e *Engine) LastMove() *MoveRecord { return e.history.Last() }

// FoundationCards returns the total number of cards on all foundations
func (e *Engine) FoundationCards() int {
	n := 0
	for _, f := range e.foundations {
		n += f.Len()
	}
	return n
}

// Lookup finds the stack holding a card of the given suit and rank, or
// nil if the card is not on the board.
func (e *Engine) Lookup(suit Suit, rank Rank) (*Card, *Stack) {
	for _, s := range e.stacks {
		for _, c := range s.Cards() {
			if c.Suit == suit && c.Rank == rank {
				return c, s
			}
		}
	}
	return nil, nil
}

// Deal lays out a shuffled 52-card deck: tableau columns 0-6 receive
// 1-7 cards with only the last card of each column face-up, and the
// remaining 24 cards go to the stock face-down. Any prior board and
// undo history is cleared. A deck that is not the complete 52-card set
// is a programmer error and returns an error.
func (e *Engine) Deal(deck []*Card) error {
	if err := checkFullDeck(deck); err != nil {
		return err
	}
	for _, s := range e.stacks {
		for _, c := range s.Cards() {
			s.Remove(c)
		}
	}
	e.history.Clear()

	next := 0
	for col := 0; col < TableauCount; col++ {
		for n := 0; n <= col; n++ {
			card := deck[next]
			next++
			card.FaceUp = n == col
			e.tableaus[col].Push(card)
		}
	}
	for ; next < len(deck); next++ {
		deck[next].FaceUp = false
		e.stock.Push(deck[next])
	}
	e.logger.Debug("dealt new game", "stock", e.stock.Len(), "drawCount", e.drawCount)
	return nil
}

// Move moves a single card onto a foundation or tableau. The card must
// be the top of its source stack. Returns false if the move is
// illegal; the board is unchanged on failure.
func (e *Engine) Move(card *Card, from, to *Stack) bool {
	if from == nil || from.Top() != card {
		return false
	}
	if !ValidateMove(e.status(), card, from, to) {
		return false
	}
	to.Push(card)
	rec := e.history.Record(CardMove, []*Card{card}, from.Ref(), to.Ref())
	e.logger.Debug("card moved", "card", card, "from", rec.From, "to", rec.To)
	e.notify(rec)
	return true
}

// MoveRun moves a run of cards between tableau columns. The cards must
// be a valid run extending to the top of the source column and the run
// head must be accepted by the destination.
func (e *Engine) MoveRun(cards []*Card, from, to *Stack) bool {
	if !ValidateRun(e.status(), cards, from, to) {
		return false
	}
	// The run must be the source's own tail: nothing may sit on top.
	head := from.IndexOf(cards[0])
	if head < 0 || from.Len()-head != len(cards) {
		return false
	}
	for i, c := range cards {
		if from.At(head+i) != c {
			return false
		}
	}
	moved := make([]*Card, len(cards))
	copy(moved, cards)
	for _, c := range moved {
		to.Push(c)
	}
	rec := e.history.Record(RunMove, moved, from.Ref(), to.Ref())
	e.logger.Debug("run moved", "head", moved[0], "size", len(moved), "from", rec.From, "to", rec.To)
	e.notify(rec)
	return true
}

// Draw turns over up to drawCount cards from the stock onto the waste.
// When the stock is empty the waste is recycled instead: all waste
// cards move back to the stock face-down in reverse order, restoring
// the stock's pre-draw order. Returns the cards transferred, or nil
// when both piles are empty or the game is not being played.
func (e *Engine) Draw() []*Card {
	if e.status() != StatusPlaying {
		return nil
	}
	if e.stock.Empty() {
		return e.recycle()
	}
	n := min(e.drawCount, e.stock.Len())
	drawn := make([]*Card, 0, n)
	for i := 0; i < n; i++ {
		card := e.stock.Top()
		e.waste.Push(card)
		card.FaceUp = true
		drawn = append(drawn, card)
	}
	rec := e.history.Record(StockToWaste, drawn, e.stock.Ref(), e.waste.Ref())
	e.logger.Debug("drew from stock", "count", len(drawn), "remaining", e.stock.Len())
	e.notify(rec)
	return drawn
}

// recycle moves the entire waste back onto the stock.
func (e *Engine) recycle() []*Card {
	if e.waste.Empty() {
		return nil
	}
	// Reversing the waste restores the stock to the order it had
	// before this pass of draws.
	cards := e.waste.Cards()
	recycled := make([]*Card, 0, len(cards))
	for i := len(cards) - 1; i >= 0; i-- {
		card := cards[i]
		e.stock.Push(card)
		card.FaceUp = false
		recycled = append(recycled, card)
	}
	rec := e.history.Record(WasteToStock, recycled, e.waste.Ref(), e.stock.Ref())
	e.logger.Debug("recycled waste", "count", len(recycled))
	e.notify(rec)
	return recycled
}

// FindFlips returns every tableau top card that is face-down and so
// eligible to flip.
func (e *Engine) FindFlips() []*Card {
	var out []*Card
	for _, t := range e.tableaus {
		if top := t.Top(); top != nil && !top.FaceUp {
			out = append(out, top)
		}
	}
	return out
}

// FlipCard turns a face-down tableau top card face-up. Safe to call
// with any card: returns false unless the card is the current top of a
// tableau and face-down.
func (e *Engine) FlipCard(card *Card) bool {
	if e.status() != StatusPlaying || card == nil || card.FaceUp {
		return false
	}
	owner := card.Stack()
	if owner == nil || owner.Kind != Tableau || owner.Top() != card {
		return false
	}
	card.FaceUp = true
	rec := e.history.Record(CardFlip, []*Card{card}, owner.Ref(), owner.Ref())
	e.logger.Debug("card flipped", "card", card, "stack", rec.From)
	e.notify(rec)
	return true
}

// AutoComplete performs one sweep over the waste and tableau tops,
// moving every top card a foundation accepts. Each call makes exactly
// one pass; callers re-invoke until it returns false to play out to a
// fixpoint. Returns true if at least one card moved.
func (e *Engine) AutoComplete() bool {
	moved := false
	for _, s := range e.stacks {
		if s.Kind == Foundation || s.Kind == Stock {
			continue
		}
		top := s.Top()
		if top == nil || !top.FaceUp {
			continue
		}
		for _, f := range e.foundations {
			if e.Move(top, s, f) {
				moved = true
				break
			}
		}
	}
	return moved
}

// Undo pops the most recent move and physically restores the prior
// board state, returning the reversed record or nil if the history is
// empty or the game is not in play. Records carry their cards in
// placement order, so reversal walks them backwards for pile transfers
// and forwards for runs.
func (e *Engine) Undo() *MoveRecord {
	if e.status() != StatusPlaying {
		return nil
	}
	rec := e.history.Pop()
	if rec == nil {
		return nil
	}
	switch rec.Kind {
	case CardMove:
		e.stackAt(rec.From).Push(rec.Cards[0])
	case RunMove:
		from := e.stackAt(rec.From)
		for _, c := range rec.Cards {
			from.Push(c)
		}
	case StockToWaste:
		for i := len(rec.Cards) - 1; i >= 0; i-- {
			card := rec.Cards[i]
			e.stock.Push(card)
			card.FaceUp = false
		}
	case WasteToStock:
		for i := len(rec.Cards) - 1; i >= 0; i-- {
			card := rec.Cards[i]
			e.waste.Push(card)
			card.FaceUp = true
		}
	case CardFlip:
		rec.Cards[0].FaceUp = false
	}
	e.logger.Debug("move undone", "kind", rec.Kind, "seq", rec.Seq)
	return rec
}

// IsComplete reports whether all 52 cards have reached the foundations
func (e *Engine) IsComplete() bool {
	return e.FoundationCards() == DeckSize
}

// ResetPiles replaces the entire board with the provided piles,
// preserving each slice's bottom-to-top order and every card's face
// state. The combined piles must be the complete 52-card set. Undo
// history is cleared. Used when restoring a saved layout.
func (e *Engine) ResetPiles(stock, waste []*Card, foundations, tableaus [][]*Card) error {
	if len(foundations) != FoundationCount {
		return fmt.Errorf("expected %d foundation piles, got %d", FoundationCount, len(foundations))
	}
	if len(tableaus) != TableauCount {
		return fmt.Errorf("expected %d tableau piles, got %d", TableauCount, len(tableaus))
	}
	var all []*Card
	all = append(all, stock...)
	all = append(all, waste...)
	for _, f := range foundations {
		all = append(all, f...)
	}
	for _, t := range tableaus {
		all = append(all, t...)
	}
	if err := checkFullDeck(all); err != nil {
		return err
	}
	for _, s := range e.stacks {
		for _, c := range s.Cards() {
			s.Remove(c)
		}
	}
	e.history.Clear()
	for _, c := range stock {
		e.stock.Push(c)
	}
	for _, c := range waste {
		e.waste.Push(c)
	}
	for i, pile := range foundations {
		for _, c := range pile {
			e.foundations[i].Push(c)
		}
	}
	for i, pile := range tableaus {
		for _, c := range pile {
			e.tableaus[i].Push(c)
		}
	}
	return nil
}

// notify logs board-level consequences of a recorded move.
func (e *Engine) notify(rec *MoveRecord) {
	if e.IsComplete() {
		e.logger.Info("game complete", "moves", rec.Seq)
	}
}

func (e *Engine) status() Status {
	if e.state == nil {
		return StatusPlaying
	}
	return e.state.Status()
}

// stackAt resolves a stack ref back to the engine's stack.
func (e *Engine) stackAt(ref StackRef) *Stack {
	switch ref.Kind {
	case Stock:
		return e.stock
	case Waste:
		return e.waste
	case Foundation:
		return e.Foundation(ref.Slot)
	case Tableau:
		return e.Tableau(ref.Slot)
	default:
		return nil
	}
}

// checkFullDeck verifies cards is exactly the 52-card set.
func checkFullDeck(cards []*Card) error {
	if len(cards) != DeckSize {
		return fmt.Errorf("expected %d cards, got %d", DeckSize, len(cards))
	}
	var seen [4][14]bool
	for _, c := range cards {
		if c == nil {
			return fmt.Errorf("nil card in deck")
		}
		if c.Suit < Spades || c.Suit > Clubs || c.Rank < Ace || c.Rank > King {
			return fmt.Errorf("invalid card %v of %v", c.Rank, c.Suit)
		}
		if seen[c.Suit][c.Rank] {
			return fmt.Errorf("duplicate card %s", c)
		}
		seen[c.Suit][c.Rank] = true
	}
	return nil
}
