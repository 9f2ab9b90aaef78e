package klondike

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMoveStatusGate(t *testing.T) {
	from := NewStack(Waste, 0)
	to := NewStack(Foundation, 0)
	ace := faceUp(Hearts, Ace)
	from.Push(ace)

	tests := []struct {
		status Status
		want   bool
	}{
		{StatusNotStarted, false},
		{StatusPlaying, true},
		{StatusPaused, false},
		{StatusComplete, false},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateMove(tt.status, ace, from, to))
		})
	}
}

func TestValidateMoveRejectsFaceDown(t *testing.T) {
	from := NewStack(Tableau, 0)
	to := NewStack(Foundation, 0)
	ace := faceDown(Hearts, Ace)
	from.Push(ace)

	assert.False(t, ValidateMove(StatusPlaying, ace, from, to))
}

func TestValidateMoveTargetKinds(t *testing.T) {
	from := NewStack(Tableau, 0)
	king := faceUp(Spades, King)
	from.Push(king)

	// Only foundations and tableaus may be targets.
	assert.True(t, ValidateMove(StatusPlaying, king, from, NewStack(Tableau, 1)))
	assert.False(t, ValidateMove(StatusPlaying, king, from, NewStack(Waste, 0)))
	assert.False(t, ValidateMove(StatusPlaying, king, from, NewStack(Stock, 0)))
}

func TestValidateMoveNilArgs(t *testing.T) {
	s := NewStack(Tableau, 0)
	c := faceUp(Spades, King)
	assert.False(t, ValidateMove(StatusPlaying, nil, s, s))
	assert.False(t, ValidateMove(StatusPlaying, c, nil, s))
	assert.False(t, ValidateMove(StatusPlaying, c, s, nil))
}

func TestValidateRun(t *testing.T) {
	tableau := NewStack(Tableau, 0)
	waste := NewStack(Waste, 0)
	dest := NewStack(Tableau, 1)
	dest.Push(faceUp(Diamonds, Ten))

	goodRun := []*Card{faceUp(Spades, Nine), faceUp(Hearts, Eight), faceUp(Clubs, Seven)}
	sameColor := []*Card{faceUp(Spades, Nine), faceUp(Clubs, Eight)}
	rankGap := []*Card{faceUp(Spades, Nine), faceUp(Hearts, Seven)}
	withFaceDown := []*Card{faceUp(Spades, Nine), faceDown(Hearts, Eight)}

	tests := []struct {
		name  string
		cards []*Card
		from  *Stack
		want  bool
	}{
		{"valid run onto fitting top", goodRun, tableau, true},
		{"same color pair", sameColor, tableau, false},
		{"rank gap", rankGap, tableau, false},
		{"face-down card in run", withFaceDown, tableau, false},
		{"empty run", nil, tableau, false},
		{"non-tableau source", goodRun, waste, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateRun(StatusPlaying, tt.cards, tt.from, dest))
		})
	}

	// The head must individually satisfy the destination rule.
	badDest := NewStack(Tableau, 2)
	badDest.Push(faceUp(Spades, Jack))
	assert.False(t, ValidateRun(StatusPlaying, goodRun, tableau, badDest))
}

func TestValidateRunRejectsMultiCardFoundation(t *testing.T) {
	tableau := NewStack(Tableau, 0)
	foundation := NewStack(Foundation, 0)
	foundation.Push(faceUp(Spades, Ace))

	// The head fits the foundation, but a multi-card run would bury it
	// under an off-suit card. Only a single card may go through.
	run := []*Card{faceUp(Spades, Two), faceUp(Hearts, Ace)}
	assert.False(t, ValidateRun(StatusPlaying, run, tableau, foundation))

	single := []*Card{faceUp(Spades, Two)}
	assert.True(t, ValidateRun(StatusPlaying, single, tableau, foundation))
}
