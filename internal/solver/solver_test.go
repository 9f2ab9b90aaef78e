package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayDealTerminates(t *testing.T) {
	result, err := PlayDeal(1, 1, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Seed)
	assert.LessOrEqual(t, result.Moves, 500)
}

func TestPlayDealDeterministic(t *testing.T) {
	a, err := PlayDeal(42, 3, 500)
	require.NoError(t, err)
	b, err := PlayDeal(42, 3, 500)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunSweep(t *testing.T) {
	summary, err := Run(context.Background(), Options{
		StartSeed: 1,
		Deals:     8,
		DrawCount: 1,
		MaxMoves:  300,
		Workers:   4,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 8, summary.Played)
	assert.Equal(t, 8, summary.Won+summary.Blocked+summary.Stalled)
	assert.Len(t, summary.Results, 8)
	assert.GreaterOrEqual(t, summary.WinRate(), 0.0)
	assert.LessOrEqual(t, summary.WinRate(), 1.0)

	seen := map[int64]bool{}
	for _, r := range summary.Results {
		assert.False(t, seen[r.Seed], "seed %d played twice", r.Seed)
		seen[r.Seed] = true
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Deals: 1000, MaxMoves: 100}, nil)
	assert.Error(t, err)
}

func TestWinRateEmpty(t *testing.T) {
	var s Summary
	assert.Zero(t, s.WinRate())
}
