package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/klondike/klondike"
)

// Controller executes parsed player commands against the engine and
// keeps the game-state counters in step. It is the single caller of
// the engine, as the engine expects.
type Controller struct {
	Engine *klondike.Engine
	State  *klondike.GameState
}

// Do parses and executes one command line, returning a message for the
// player. Recognised commands:
//
//	d | draw               draw from the stock (or recycle)
//	m <src> <dst> [n]      move n cards (default 1), e.g. "m t3 t5 2"
//	f <col>                flip the face-down top of a tableau column
//	h | hint               show the suggested best move
//	a | auto               auto-complete to the foundations
//	u | undo               undo the last move
//
// Piles are named w (waste), f1-f4 (foundations), t1-t7 (tableaus).
func (c *Controller) Do(line string) (string, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return "", nil
	}

	switch fields[0] {
	case "d", "draw":
		return c.draw()
	case "m", "move":
		return c.move(fields[1:])
	case "f", "flip":
		return c.flip(fields[1:])
	case "h", "hint":
		return HintStyle.Render(DescribeBestMove(c.Engine.RequestHint())), nil
	case "a", "auto":
		return c.autoComplete()
	case "u", "undo":
		return c.undo()
	default:
		return "", fmt.Errorf("unknown command %q", fields[0])
	}
}

func (c *Controller) draw() (string, error) {
	cards := c.Engine.Draw()
	if cards == nil {
		return "", fmt.Errorf("nothing to draw or recycle")
	}
	c.State.Apply(c.Engine.LastMove())
	if c.Engine.LastMove().Kind == klondike.WasteToStock {
		return fmt.Sprintf("recycled %d cards into the stock", len(cards)), nil
	}
	return fmt.Sprintf("drew %d", len(cards)), nil
}

func (c *Controller) move(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("usage: m <src> <dst> [count]")
	}
	src, err := c.stack(args[0])
	if err != nil {
		return "", err
	}
	dst, err := c.stack(args[1])
	if err != nil {
		return "", err
	}
	count := 1
	if len(args) > 2 {
		if count, err = strconv.Atoi(args[2]); err != nil || count < 1 {
			return "", fmt.Errorf("bad count %q", args[2])
		}
	}
	if count > src.Len() {
		return "", fmt.Errorf("%s has only %d cards", args[0], src.Len())
	}

	ok := false
	if count == 1 {
		ok = c.Engine.Move(src.Top(), src, dst)
	} else {
		run := src.SequenceFrom(src.Len() - count)
		ok = len(run) == count && c.Engine.MoveRun(run, src, dst)
	}
	if !ok {
		return "", fmt.Errorf("illegal move")
	}
	c.State.Apply(c.Engine.LastMove())

	if c.Engine.IsComplete() {
		c.State.Complete()
		return HintStyle.Render("you won!"), nil
	}
	return fmt.Sprintf("moved %d to %s", count, args[1]), nil
}

func (c *Controller) flip(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: f <column>")
	}
	s, err := c.stack(args[0])
	if err != nil {
		return "", err
	}
	if s.Kind != klondike.Tableau {
		return "", fmt.Errorf("only tableau cards flip")
	}
	if !c.Engine.FlipCard(s.Top()) {
		return "", fmt.Errorf("nothing to flip on %s", args[0])
	}
	c.State.Apply(c.Engine.LastMove())
	return fmt.Sprintf("flipped %s", c.Engine.Tableau(s.Slot).Top()), nil
}

func (c *Controller) autoComplete() (string, error) {
	// Each engine call is a single sweep; play sweeps to a fixpoint.
	total := 0
	for {
		lastSeq := 0
		if last := c.Engine.LastMove(); last != nil {
			lastSeq = last.Seq
		}
		if !c.Engine.AutoComplete() {
			break
		}
		for _, rec := range c.Engine.History().Records() {
			if rec.Seq > lastSeq {
				c.State.Apply(rec)
				total++
			}
		}
	}
	if total == 0 {
		return "", fmt.Errorf("no cards ready for the foundations")
	}
	if c.Engine.IsComplete() {
		c.State.Complete()
		return HintStyle.Render("you won!"), nil
	}
	return fmt.Sprintf("sent %d cards up", total), nil
}

func (c *Controller) undo() (string, error) {
	rec := c.Engine.Undo()
	if rec == nil {
		return "", fmt.Errorf("nothing to undo")
	}
	c.State.Revert(rec)
	return fmt.Sprintf("undid %s", rec.Kind), nil
}

// stack resolves a pile name like "w", "f2" or "t7".
func (c *Controller) stack(name string) (*klondike.Stack, error) {
	if name == "w" || name == "waste" {
		return c.Engine.Waste(), nil
	}
	if len(name) == 2 {
		slot := int(name[1] - '1')
		switch name[0] {
		case 'f':
			if s := c.Engine.Foundation(slot); s != nil {
				return s, nil
			}
		case 't':
			if s := c.Engine.Tableau(slot); s != nil {
				return s, nil
			}
		}
	}
	return nil, fmt.Errorf("unknown pile %q", name)
}
