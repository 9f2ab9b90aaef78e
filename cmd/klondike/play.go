package main

import (
	"time"

	"github.com/lox/klondike/internal/config"
	"github.com/lox/klondike/internal/randutil"
	"github.com/lox/klondike/internal/tui"
	"github.com/lox/klondike/klondike"
)

// PlayCmd runs an interactive game in the terminal
type PlayCmd struct {
	Config    string `kong:"help='Path to an HCL config file'"`
	Seed      *int64 `kong:"help='Deterministic deal seed (optional)'"`
	DrawCount int    `kong:"default='0',help='Cards per draw, 1 or 3 (overrides config)'"`
	LogLevel  string `kong:"default='warn',help='Log level'"`
}

func (c *PlayCmd) Run() error {
	cfg := config.DefaultConfig()
	if c.Config != "" {
		loaded, err := config.LoadConfig(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.DrawCount != 0 {
		cfg.Game.DrawCount = c.DrawCount
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := cfg.Game.Seed
	if c.Seed != nil {
		seed = *c.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := setupLogger(c.LogLevel)
	logger.Info("starting game", "seed", seed, "drawCount", cfg.Game.DrawCount)

	state := klondike.NewGameState()
	engine := klondike.NewEngine(state, logger,
		klondike.WithDrawCount(cfg.Game.DrawCount),
		klondike.WithUndoCapacity(cfg.Game.UndoCapacity),
	)
	if err := engine.Deal(klondike.ShuffledDeck(randutil.New(seed))); err != nil {
		return err
	}
	state.Start()

	return tui.Run(engine, state, logger)
}
