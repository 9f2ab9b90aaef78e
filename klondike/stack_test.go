package klondike

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faceUp builds a face-up card for board setup in tests.
func faceUp(suit Suit, rank Rank) *Card {
	c := NewCard(suit, rank)
	c.FaceUp = true
	return c
}

// faceDown builds a face-down card for board setup in tests.
func faceDown(suit Suit, rank Rank) *Card {
	return NewCard(suit, rank)
}

func TestFoundationAcceptance(t *testing.T) {
	t.Run("empty accepts aces only", func(t *testing.T) {
		f := NewStack(Foundation, 0)
		for _, c := range NewDeck() {
			c.FaceUp = true
			assert.Equal(t, c.Rank == Ace, f.CanAccept(c), "card %s", c)
		}
	})

	t.Run("non-empty accepts same suit next rank only", func(t *testing.T) {
		f := NewStack(Foundation, 0)
		f.Push(faceUp(Hearts, Ace))
		f.Push(faceUp(Hearts, Two))
		for _, c := range NewDeck() {
			c.FaceUp = true
			want := c.Suit == Hearts && c.Rank == Three
			assert.Equal(t, want, f.CanAccept(c), "card %s", c)
		}
	})
}

func TestTableauAcceptance(t *testing.T) {
	t.Run("empty accepts kings only", func(t *testing.T) {
		tab := NewStack(Tableau, 0)
		for _, c := range NewDeck() {
			c.FaceUp = true
			assert.Equal(t, c.Rank == King, tab.CanAccept(c), "card %s", c)
		}
	})

	t.Run("non-empty accepts opposite color descending only", func(t *testing.T) {
		tab := NewStack(Tableau, 0)
		tab.Push(faceUp(Spades, Ten))
		for _, c := range NewDeck() {
			c.FaceUp = true
			want := c.IsRed() && c.Rank == Nine
			assert.Equal(t, want, tab.CanAccept(c), "card %s", c)
		}
	})

	t.Run("rejects placement on face-down top", func(t *testing.T) {
		tab := NewStack(Tableau, 0)
		tab.Push(faceDown(Spades, Ten))
		assert.False(t, tab.CanAccept(faceUp(Hearts, Nine)))
	})
}

func TestStockAndWasteNeverAccept(t *testing.T) {
	for _, kind := range []StackKind{Stock, Waste} {
		s := NewStack(kind, 0)
		assert.False(t, s.CanAccept(faceUp(Spades, Ace)), "%s empty", kind)
		s.Push(faceUp(Spades, Five))
		assert.False(t, s.CanAccept(faceUp(Hearts, Four)), "%s non-empty", kind)
	}
}

func TestPushRemoveOwnership(t *testing.T) {
	a := NewStack(Tableau, 0)
	b := NewStack(Tableau, 1)
	c := faceUp(Hearts, King)

	a.Push(c)
	require.Same(t, a, c.Stack())
	require.Equal(t, 1, a.Len())

	// Pushing onto another stack removes from the first.
	b.Push(c)
	assert.Same(t, b, c.Stack())
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 1, b.Len())

	require.True(t, b.Remove(c))
	assert.Nil(t, c.Stack())
	assert.True(t, b.Empty())
	assert.False(t, b.Remove(c))
}

func TestRemoveKeepsOrder(t *testing.T) {
	s := NewStack(Tableau, 0)
	c1 := faceUp(Spades, Nine)
	c2 := faceUp(Hearts, Eight)
	c3 := faceUp(Clubs, Seven)
	s.Push(c1)
	s.Push(c2)
	s.Push(c3)

	require.True(t, s.Remove(c2))
	require.Equal(t, 2, s.Len())
	assert.Same(t, c1, s.At(0))
	assert.Same(t, c3, s.At(1))
	assert.Same(t, c3, s.Top())
}

func TestSequenceFrom(t *testing.T) {
	tests := []struct {
		name  string
		cards []*Card
		from  int
		want  int // run length
	}{
		{
			name:  "full alternating run",
			cards: []*Card{faceUp(Spades, Nine), faceUp(Hearts, Eight), faceUp(Clubs, Seven)},
			from:  0,
			want:  3,
		},
		{
			name:  "run from the middle",
			cards: []*Card{faceUp(Spades, Nine), faceUp(Hearts, Eight), faceUp(Clubs, Seven)},
			from:  1,
			want:  2,
		},
		{
			name:  "stops at same color",
			cards: []*Card{faceUp(Spades, Nine), faceUp(Clubs, Eight), faceUp(Hearts, Seven)},
			from:  0,
			want:  1,
		},
		{
			name:  "stops at rank gap",
			cards: []*Card{faceUp(Spades, Nine), faceUp(Hearts, Seven)},
			from:  0,
			want:  1,
		},
		{
			name:  "stops at face-down card",
			cards: []*Card{faceUp(Spades, Nine), faceDown(Hearts, Eight)},
			from:  0,
			want:  1,
		},
		{
			name:  "face-down start yields nothing",
			cards: []*Card{faceDown(Spades, Nine), faceUp(Hearts, Eight)},
			from:  0,
			want:  0,
		},
		{
			name:  "out of range yields nothing",
			cards: []*Card{faceUp(Spades, Nine)},
			from:  5,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack(Tableau, 0)
			for _, c := range tt.cards {
				s.Push(c)
			}
			run := s.SequenceFrom(tt.from)
			require.Len(t, run, tt.want)
			for i, c := range run {
				assert.Same(t, tt.cards[tt.from+i], c)
			}
		})
	}
}

func TestSequenceFromNonTableau(t *testing.T) {
	// Run semantics only apply to tableaus: other kinds return the raw
	// tail whatever the cards look like.
	w := NewStack(Waste, 0)
	w.Push(faceUp(Spades, Two))
	w.Push(faceUp(Spades, Jack))
	w.Push(faceDown(Hearts, Five))

	tail := w.SequenceFrom(1)
	require.Len(t, tail, 2)
	assert.Equal(t, Jack, tail[0].Rank)
	assert.Equal(t, Five, tail[1].Rank)
}
