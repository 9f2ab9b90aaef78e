package main

import (
	"context"
	"fmt"

	"github.com/lox/klondike/internal/solver"
)

// SolveCmd plays a sweep of seeded deals with the best-move engine and
// reports how many were winnable by greedy play
type SolveCmd struct {
	StartSeed int64  `kong:"arg,help='First seed of the sweep'"`
	Deals     int    `kong:"default='100',help='Number of consecutive seeds to play'"`
	DrawCount int    `kong:"default='1',help='Cards per draw, 1 or 3'"`
	MaxMoves  int    `kong:"default='2000',help='Per-deal move budget'"`
	Workers   int    `kong:"default='0',help='Worker goroutines (0 = GOMAXPROCS)'"`
	Verbose   bool   `kong:"help='Print per-deal outcomes'"`
	LogLevel  string `kong:"default='warn',help='Log level'"`
}

func (c *SolveCmd) Run() error {
	logger := setupLogger(c.LogLevel)

	summary, err := solver.Run(context.Background(), solver.Options{
		StartSeed: c.StartSeed,
		Deals:     c.Deals,
		DrawCount: c.DrawCount,
		MaxMoves:  c.MaxMoves,
		Workers:   c.Workers,
	}, logger)
	if err != nil {
		return err
	}

	if c.Verbose {
		for _, r := range summary.Results {
			fmt.Printf("seed %-8d %-8s %d moves\n", r.Seed, r.Outcome, r.Moves)
		}
		fmt.Println()
	}
	fmt.Printf("played  %d\n", summary.Played)
	fmt.Printf("won     %d (%.1f%%)\n", summary.Won, summary.WinRate()*100)
	fmt.Printf("blocked %d\n", summary.Blocked)
	fmt.Printf("stalled %d\n", summary.Stalled)
	return nil
}
