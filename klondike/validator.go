package klondike

// ValidateMove reports whether card may legally move from one stack to
// another. The game status is passed in explicitly so legality checks
// never read ambient state. Illegal moves are ordinary outcomes, not
// errors: the result is always a plain boolean.
func ValidateMove(status Status, card *Card, from, to *Stack) bool {
	if status != StatusPlaying {
		return false
	}
	if card == nil || !card.FaceUp || from == nil || to == nil {
		return false
	}
	// Only foundations and tableaus are direct move targets.
	switch to.Kind {
	case Foundation, Tableau:
		return to.CanAccept(card)
	default:
		return false
	}
}

// ValidateRun reports whether the given cards may move together from a
// tableau to another stack. The cards must form a face-up
// alternating-color descending run and the head of the run must
// individually pass ValidateMove against the destination. Multi-card
// runs may only land on a tableau; foundations build one card at a
// time.
func ValidateRun(status Status, cards []*Card, from, to *Stack) bool {
	if len(cards) == 0 || from == nil || from.Kind != Tableau {
		return false
	}
	if len(cards) > 1 && (to == nil || to.Kind != Tableau) {
		return false
	}
	if !isRun(cards) {
		return false
	}
	return ValidateMove(status, cards[0], from, to)
}

// isRun reports whether cards form a valid face-up run.
func isRun(cards []*Card) bool {
	for i, c := range cards {
		if c == nil || !c.FaceUp {
			return false
		}
		if i == 0 {
			continue
		}
		prev := cards[i-1]
		if c.IsRed() == prev.IsRed() || c.Rank != prev.Rank-1 {
			return false
		}
	}
	return true
}
