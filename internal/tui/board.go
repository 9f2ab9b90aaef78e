package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/klondike/klondike"
)

// cardLabel renders a card in board notation with its color style.
func cardLabel(c *klondike.Card) string {
	if c == nil {
		return EmptySlotStyle.Render(" --")
	}
	if !c.FaceUp {
		return FaceDownStyle.Render(" ▒▒")
	}
	label := fmt.Sprintf("%3s", c.String())
	if c.IsRed() {
		return RedCardStyle.Render(label)
	}
	return BlackCardStyle.Render(label)
}

// RenderBoard renders the full board as text: top row with stock,
// waste and foundations, then the tableau columns. Shared by the
// interactive TUI and the one-shot CLI commands.
func RenderBoard(e *klondike.Engine) string {
	var b strings.Builder

	b.WriteString(FaceDownStyle.Render(fmt.Sprintf("stock: %2d", e.Stock().Len())))
	b.WriteString("   waste:")
	waste := e.Waste().Cards()
	if len(waste) == 0 {
		b.WriteString(EmptySlotStyle.Render(" --"))
	} else {
		// Only the tail of the waste matters for play.
		from := max(len(waste)-3, 0)
		for _, c := range waste[from:] {
			b.WriteString(cardLabel(c))
		}
	}
	b.WriteString("   foundations:")
	for i := 0; i < klondike.FoundationCount; i++ {
		b.WriteString(cardLabel(e.Foundation(i).Top()))
	}
	b.WriteString("\n\n")

	height := 0
	for i := 0; i < klondike.TableauCount; i++ {
		height = max(height, e.Tableau(i).Len())
	}

	for i := 0; i < klondike.TableauCount; i++ {
		b.WriteString(InfoStyle.Render(fmt.Sprintf(" t%d ", i+1)))
	}
	b.WriteString("\n")
	for row := 0; row < height; row++ {
		for i := 0; i < klondike.TableauCount; i++ {
			if c := e.Tableau(i).At(row); c != nil {
				b.WriteString(cardLabel(c) + " ")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderInfo renders the progress counters line.
func RenderInfo(info klondike.GameInfo) string {
	return InfoStyle.Render(fmt.Sprintf(
		"score %d   moves %d   time %s   foundations %d/52",
		info.Score, info.Moves, info.Time.Truncate(time.Second), info.FoundationCards,
	))
}

// DescribeBestMove renders a best-move suggestion as a sentence.
func DescribeBestMove(best *klondike.BestMove) string {
	if best == nil {
		return "no moves left: the game is blocked"
	}
	switch best.Type {
	case klondike.BestDraw:
		return "draw from the stock"
	case klondike.BestRecycle:
		return "recycle the waste into the stock"
	case klondike.BestFlip:
		return fmt.Sprintf("flip the face-down card on t%d", best.From.Slot+1)
	}
	return fmt.Sprintf("move %s from %s to %s", best.Card, stackName(best.From), stackName(best.To))
}

func stackName(s *klondike.Stack) string {
	switch s.Kind {
	case klondike.Stock:
		return "stock"
	case klondike.Waste:
		return "waste"
	case klondike.Foundation:
		return fmt.Sprintf("f%d", s.Slot+1)
	default:
		return fmt.Sprintf("t%d", s.Slot+1)
	}
}
