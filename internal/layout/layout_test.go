package layout

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/klondike/internal/randutil"
	"github.com/lox/klondike/klondike"
)

func newPlayingEngine(t *testing.T) *klondike.Engine {
	t.Helper()
	state := klondike.NewGameState()
	state.Start()
	return klondike.NewEngine(state, log.New(io.Discard))
}

func TestCaptureRestoreRoundTrip(t *testing.T) {
	src := newPlayingEngine(t)
	require.NoError(t, src.Deal(klondike.ShuffledDeck(randutil.New(5))))
	// Mutate a little so the snapshot is not a fresh deal.
	src.Draw()
	src.Draw()

	snapshot := Capture(src)

	dst := newPlayingEngine(t)
	require.NoError(t, Restore(dst, snapshot))

	srcStacks := src.Stacks()
	dstStacks := dst.Stacks()
	require.Len(t, dstStacks, len(srcStacks))
	for i := range srcStacks {
		want := srcStacks[i].Cards()
		got := dstStacks[i].Cards()
		require.Len(t, got, len(want), "stack %s", srcStacks[i].Ref())
		for j := range want {
			assert.Equal(t, want[j].Suit, got[j].Suit)
			assert.Equal(t, want[j].Rank, got[j].Rank)
			assert.Equal(t, want[j].FaceUp, got[j].FaceUp)
		}
	}
}

func TestRestoreRejectsIncompleteLayout(t *testing.T) {
	e := newPlayingEngine(t)
	var l Layout
	l.Stock = []CardState{{Suit: "hearts", Rank: 1, FaceUp: false}}
	assert.Error(t, Restore(e, &l))
}

func TestRestoreRejectsUnknownCards(t *testing.T) {
	e := newPlayingEngine(t)

	bad := Capture(e)
	bad.Stock = []CardState{{Suit: "swords", Rank: 1}}
	assert.Error(t, Restore(e, bad))

	bad.Stock = []CardState{{Suit: "hearts", Rank: 14}}
	assert.Error(t, Restore(e, bad))
}

func TestSaveLoad(t *testing.T) {
	e := newPlayingEngine(t)
	require.NoError(t, e.Deal(klondike.ShuffledDeck(randutil.New(8))))

	path := filepath.Join(t.TempDir(), "game.json")
	require.NoError(t, Save(path, Capture(e)))

	loaded, err := Load(path)
	require.NoError(t, err)

	restored := newPlayingEngine(t)
	require.NoError(t, Restore(restored, loaded))
	assert.Equal(t, 24, restored.Stock().Len())
	assert.Equal(t, 7, restored.Tableau(6).Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
