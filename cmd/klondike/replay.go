package main

import (
	"fmt"

	"github.com/lox/klondike/internal/layout"
	"github.com/lox/klondike/internal/tui"
	"github.com/lox/klondike/klondike"
)

// ReplayCmd loads a saved layout and reports the board state, the
// suggested best move and whether the game is blocked
type ReplayCmd struct {
	File        string `kong:"arg,help='Saved layout file'"`
	Interactive bool   `kong:"short='i',help='Resume playing the layout'"`
	LogLevel    string `kong:"default='warn',help='Log level'"`
}

func (c *ReplayCmd) Run() error {
	logger := setupLogger(c.LogLevel)

	saved, err := layout.Load(c.File)
	if err != nil {
		return err
	}

	state := klondike.NewGameState()
	engine := klondike.NewEngine(state, logger)
	if err := layout.Restore(engine, saved); err != nil {
		return err
	}
	state.Start()

	if c.Interactive {
		return tui.Run(engine, state, logger)
	}

	fmt.Print(tui.RenderBoard(engine))
	fmt.Println()
	switch {
	case engine.IsComplete():
		fmt.Println("game complete")
	case engine.IsBlocked():
		fmt.Println("game blocked: no moves, nothing to draw or recycle")
	default:
		fmt.Printf("best move: %s\n", tui.DescribeBestMove(engine.RequestHint()))
		fmt.Printf("hints: %d\n", len(engine.FindHints()))
	}
	return nil
}
