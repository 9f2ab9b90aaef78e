package main

import (
	"fmt"

	"github.com/lox/klondike/internal/layout"
	"github.com/lox/klondike/internal/randutil"
	"github.com/lox/klondike/internal/tui"
	"github.com/lox/klondike/klondike"
)

// DealCmd prints the board a seed deals, optionally saving it
type DealCmd struct {
	Seed     int64  `kong:"arg,help='Deal seed'"`
	Out      string `kong:"help='Save the layout to this file'"`
	LogLevel string `kong:"default='warn',help='Log level'"`
}

func (c *DealCmd) Run() error {
	logger := setupLogger(c.LogLevel)

	state := klondike.NewGameState()
	engine := klondike.NewEngine(state, logger)
	if err := engine.Deal(klondike.ShuffledDeck(randutil.New(c.Seed))); err != nil {
		return err
	}
	state.Start()

	fmt.Printf("seed %d\n\n%s", c.Seed, tui.RenderBoard(engine))

	if c.Out != "" {
		if err := layout.Save(c.Out, layout.Capture(engine)); err != nil {
			return err
		}
		fmt.Printf("\nsaved layout to %s\n", c.Out)
	}
	return nil
}
