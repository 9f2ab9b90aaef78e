package klondike

// FindHints enumerates every candidate action in a fixed order so
// repeated calls on the same board return identical results:
//
//  1. any non-foundation stack's face-up top card accepted by a
//     foundation, one hint per (card, foundation) pair
//  2. the waste top onto any accepting tableau
//  3. any tableau top onto any other accepting tableau
//  4. face-down tableau tops eligible to flip
func (e *Engine) FindHints() []*Hint {
	var hints []*Hint

	for _, s := range e.stacks {
		// A card already on a foundation never needs to move to another
		// one; suggesting it would shuffle aces between piles forever.
		if s.Kind == Foundation {
			continue
		}
		top := s.Top()
		if top == nil || !top.FaceUp {
			continue
		}
		for _, f := range e.foundations {
			if f.CanAccept(top) {
				hints = append(hints, &Hint{Kind: HintFoundation, Card: top, From: s, To: f})
			}
		}
	}

	if top := e.waste.Top(); top != nil {
		for _, t := range e.tableaus {
			if t.CanAccept(top) {
				hints = append(hints, &Hint{Kind: HintWasteToTableau, Card: top, From: e.waste, To: t})
			}
		}
	}

	for _, src := range e.tableaus {
		top := src.Top()
		if top == nil || !top.FaceUp {
			continue
		}
		for _, dst := range e.tableaus {
			if dst == src {
				continue
			}
			if dst.CanAccept(top) {
				hints = append(hints, &Hint{Kind: HintTableauToTableau, Card: top, From: src, To: dst})
			}
		}
	}

	for _, card := range e.FindFlips() {
		hints = append(hints, &Hint{Kind: HintFlip, Card: card, From: card.Stack()})
	}

	return hints
}

// Ranking buckets for SuggestBestMove, lowest wins. Enumeration order
// breaks ties, which keeps suggestions deterministic.
const (
	rankLowFoundation = iota
	rankFoundation
	rankFlip
	rankEmptyColumn
	rankUncover
	rankTableau
)

// SuggestBestMove returns the single top-ranked candidate action, or a
// draw/recycle suggestion when no hints exist, or nil when the game is
// truly blocked. Ranking: foundation moves first (Aces and Twos ahead
// of the rest), then flips, then moves into an empty tableau column,
// then moves that uncover a face-down card, then any other move.
func (e *Engine) SuggestBestMove() *BestMove {
	hints := e.FindHints()
	if len(hints) == 0 {
		if !e.stock.Empty() {
			return &BestMove{Type: BestDraw}
		}
		if !e.waste.Empty() {
			return &BestMove{Type: BestRecycle}
		}
		return nil
	}

	best := hints[0]
	bestRank := rankHint(hints[0])
	for _, h := range hints[1:] {
		if r := rankHint(h); r < bestRank {
			best, bestRank = h, r
		}
	}
	return &BestMove{Type: classify(bestRank), Card: best.Card, From: best.From, To: best.To}
}

func rankHint(h *Hint) int {
	switch h.Kind {
	case HintFoundation:
		// Low cards block everything beneath them; clear them first.
		if h.Card.Rank <= Two {
			return rankLowFoundation
		}
		return rankFoundation
	case HintFlip:
		return rankFlip
	}
	if h.To != nil && h.To.Kind == Tableau && h.To.Empty() {
		return rankEmptyColumn
	}
	if uncovers(h) {
		return rankUncover
	}
	return rankTableau
}

// uncovers reports whether moving the hinted card would leave a
// face-down card as the source's new top.
func uncovers(h *Hint) bool {
	if h.From == nil || h.From.Kind != Tableau {
		return false
	}
	i := h.From.IndexOf(h.Card)
	if i <= 0 {
		return false
	}
	return !h.From.At(i - 1).FaceUp
}

func classify(rank int) BestMoveKind {
	switch rank {
	case rankLowFoundation, rankFoundation:
		return BestFoundation
	case rankFlip:
		return BestFlip
	case rankEmptyColumn:
		return BestToEmptyColumn
	case rankUncover:
		return BestUncover
	default:
		return BestTableau
	}
}

// RequestHint is the controller-facing name for the best-move search.
func (e *Engine) RequestHint() *BestMove {
	return e.SuggestBestMove()
}

// IsBlocked reports a dead game: no hints, nothing left to draw and
// nothing left to recycle. Purely read-only; the engine never resolves
// a block itself.
func (e *Engine) IsBlocked() bool {
	return e.stock.Empty() && e.waste.Empty() && len(e.FindHints()) == 0
}
