// Package solver estimates the winnability of deals by playing whole
// games with the engine's own best-move search. It is an offline
// analysis tool: the live engine only ever reports a block, while the
// solver is free to play greedily through draws and recycles to see
// where a deal ends up.
package solver

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/klondike/internal/randutil"
	"github.com/lox/klondike/klondike"
)

// Outcome classifies how a single played-out deal ended.
type Outcome int

const (
	Won Outcome = iota
	Blocked
	Stalled // move budget exhausted before winning or blocking
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Blocked:
		return "blocked"
	case Stalled:
		return "stalled"
	default:
		return "unknown"
	}
}

// Result is the outcome of one deal.
type Result struct {
	Seed    int64
	Outcome Outcome
	Moves   int
}

// Summary aggregates results across a sweep of seeds.
type Summary struct {
	Played  int
	Won     int
	Blocked int
	Stalled int
	Results []Result
}

// WinRate returns the fraction of played deals that were won.
func (s *Summary) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// Options control a sweep.
type Options struct {
	StartSeed int64
	Deals     int
	DrawCount int
	MaxMoves  int // per-deal move budget, guards against greedy loops
	Workers   int
}

func (o *Options) withDefaults() Options {
	out := *o
	if out.Deals <= 0 {
		out.Deals = 100
	}
	if out.DrawCount != 1 && out.DrawCount != 3 {
		out.DrawCount = 1
	}
	if out.MaxMoves <= 0 {
		out.MaxMoves = 2000
	}
	if out.Workers <= 0 {
		out.Workers = runtime.NumCPU()
	}
	return out
}

// Run plays Deals consecutive seeds starting at StartSeed and reports
// the aggregate. Deals are independent, so they fan out across
// Workers goroutines; each result is collected under a lock.
func Run(ctx context.Context, opts Options, logger *log.Logger) (*Summary, error) {
	opts = opts.withDefaults()
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("solver")

	seeds := make(chan int64)
	summary := &Summary{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(seeds)
		for i := 0; i < opts.Deals; i++ {
			select {
			case seeds <- opts.StartSeed + int64(i):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < opts.Workers; w++ {
		g.Go(func() error {
			for seed := range seeds {
				result, err := PlayDeal(seed, opts.DrawCount, opts.MaxMoves)
				if err != nil {
					return fmt.Errorf("seed %d: %w", seed, err)
				}
				mu.Lock()
				summary.Played++
				switch result.Outcome {
				case Won:
					summary.Won++
				case Blocked:
					summary.Blocked++
				case Stalled:
					summary.Stalled++
				}
				summary.Results = append(summary.Results, result)
				mu.Unlock()
				logger.Debug("deal finished", "seed", seed, "outcome", result.Outcome, "moves", result.Moves)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}

// PlayDeal plays a single seeded deal to its end: won, blocked, or out
// of move budget. Each worker gets its own engine, so deals never
// share state.
func PlayDeal(seed int64, drawCount, maxMoves int) (Result, error) {
	state := klondike.NewGameState()
	e := klondike.NewEngine(state, log.New(io.Discard), klondike.WithDrawCount(drawCount))
	if err := e.Deal(klondike.ShuffledDeck(randutil.New(seed))); err != nil {
		return Result{}, err
	}
	state.Start()

	moves := 0
	for moves < maxMoves {
		if e.IsComplete() {
			return Result{Seed: seed, Outcome: Won, Moves: moves}, nil
		}
		best := e.SuggestBestMove()
		if best == nil {
			return Result{Seed: seed, Outcome: Blocked, Moves: moves}, nil
		}
		if !apply(e, best) {
			// A suggestion the engine then refuses would be a bug in
			// the hint search; surface it rather than spinning.
			return Result{}, fmt.Errorf("suggested move rejected: %s %s", best.Type, best.Card)
		}
		moves++
	}
	return Result{Seed: seed, Outcome: Stalled, Moves: moves}, nil
}

func apply(e *klondike.Engine, best *klondike.BestMove) bool {
	switch best.Type {
	case klondike.BestDraw, klondike.BestRecycle:
		return e.Draw() != nil
	case klondike.BestFlip:
		return e.FlipCard(best.Card)
	default:
		return e.Move(best.Card, best.From, best.To)
	}
}
