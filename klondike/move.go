package klondike

// MoveKind identifies the kind of mutation a move record describes.
type MoveKind int

const (
	CardMove MoveKind = iota
	RunMove
	StockToWaste
	WasteToStock
	CardFlip
)

// String returns the string representation of a move kind
func (k MoveKind) String() string {
	switch k {
	case CardMove:
		return "card_move"
	case RunMove:
		return "run_move"
	case StockToWaste:
		return "stock_to_waste"
	case WasteToStock:
		return "waste_to_stock"
	case CardFlip:
		return "card_flip"
	default:
		return "unknown"
	}
}

// MoveRecord captures one successful mutation with enough data to
// reverse it exactly. Cards are stored in the order they were placed
// on the destination: bottom-to-top for runs, draw order for stock and
// recycle transfers.
type MoveRecord struct {
	Seq   int
	Kind  MoveKind
	Cards []*Card
	From  StackRef
	To    StackRef
}

// Card returns the primary card of the record: the moved card for
// single moves and flips, the head of the run for run moves, the first
// transferred card otherwise.
func (r *MoveRecord) Card() *Card {
	if len(r.Cards) == 0 {
		return nil
	}
	return r.Cards[0]
}

// HintKind classifies a hint in the fixed enumeration order.
type HintKind int

const (
	HintFoundation HintKind = iota
	HintWasteToTableau
	HintTableauToTableau
	HintFlip
)

// String returns the string representation of a hint kind
func (k HintKind) String() string {
	switch k {
	case HintFoundation:
		return "foundation"
	case HintWasteToTableau:
		return "waste_to_tableau"
	case HintTableauToTableau:
		return "tableau_to_tableau"
	case HintFlip:
		return "flip"
	default:
		return "unknown"
	}
}

// Hint is one candidate action. To is nil for flip hints.
type Hint struct {
	Kind HintKind
	Card *Card
	From *Stack
	To   *Stack
}

// BestMoveKind classifies the suggested action returned by the
// best-move search.
type BestMoveKind int

const (
	BestFoundation BestMoveKind = iota
	BestFlip
	BestToEmptyColumn
	BestUncover
	BestTableau
	BestDraw
	BestRecycle
)

// String returns the string representation of a best-move kind
func (k BestMoveKind) String() string {
	switch k {
	case BestFoundation:
		return "foundation"
	case BestFlip:
		return "flip"
	case BestToEmptyColumn:
		return "to_empty_column"
	case BestUncover:
		return "uncover"
	case BestTableau:
		return "tableau"
	case BestDraw:
		return "draw"
	case BestRecycle:
		return "recycle"
	default:
		return "unknown"
	}
}

// BestMove is the single top-ranked candidate. Card, From and To are
// nil for draw and recycle suggestions.
type BestMove struct {
	Type BestMoveKind
	Card *Card
	From *Stack
	To   *Stack
}
