package klondike

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/klondike/internal/randutil"
)

func TestNewDeckComplete(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, DeckSize)
	require.NoError(t, checkFullDeck(deck))
	for _, c := range deck {
		assert.False(t, c.FaceUp)
	}
}

func TestShuffledDeckDeterministic(t *testing.T) {
	a := ShuffledDeck(randutil.New(42))
	b := ShuffledDeck(randutil.New(42))
	require.NoError(t, checkFullDeck(a))

	for i := range a {
		assert.Equal(t, a[i].Suit, b[i].Suit, "position %d", i)
		assert.Equal(t, a[i].Rank, b[i].Rank, "position %d", i)
	}

	// A different seed produces a different order.
	c := ShuffledDeck(randutil.New(43))
	same := true
	for i := range a {
		if a[i].Suit != c[i].Suit || a[i].Rank != c[i].Rank {
			same = false
			break
		}
	}
	assert.False(t, same)
}
