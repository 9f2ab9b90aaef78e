package klondike

import (
	"time"

	"github.com/coder/quartz"
)

// Status is the lifecycle phase of a game. The rule engine reads it to
// gate commands but never changes it; the controller owns transitions.
type Status int

const (
	StatusNotStarted Status = iota
	StatusPlaying
	StatusPaused
	StatusComplete
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Scoring constants for standard Klondike scoring.
const (
	scoreWasteToTableau      = 5
	scoreToFoundation        = 10
	scoreFlip                = 5
	scoreFoundationToTableau = -15
	scoreRecycle             = -100
)

// GameState tracks progress counters alongside the rule engine: move
// count, score and elapsed time. The engine consults Status before
// mutating the board; counters feed heuristics and the GameInfo
// snapshot but the engine itself never writes them. The controller
// calls Apply and Revert as moves are made and undone.
type GameState struct {
	clock quartz.Clock

	status    Status
	startedAt time.Time
	banked    time.Duration
	moves     int
	score     int
}

// NewGameState creates game state using the real clock
func NewGameState() *GameState {
	return NewGameStateWithClock(quartz.NewReal())
}

// NewGameStateWithClock creates game state with an explicit clock,
// used by tests to control elapsed time.
func NewGameStateWithClock(clock quartz.Clock) *GameState {
	return &GameState{clock: clock}
}

// Status returns the current lifecycle phase
func (g *GameState) Status() Status {
	return g.status
}

// Start begins timing a fresh game and resets all counters
func (g *GameState) Start() {
	g.status = StatusPlaying
	g.startedAt = g.clock.Now()
	g.banked = 0
	g.moves = 0
	g.score = 0
}

// Pause suspends the elapsed-time clock. No-op unless playing.
func (g *GameState) Pause() {
	if g.status != StatusPlaying {
		return
	}
	g.banked += g.clock.Now().Sub(g.startedAt)
	g.status = StatusPaused
}

// Resume restarts the clock after a pause. No-op unless paused.
func (g *GameState) Resume() {
	if g.status != StatusPaused {
		return
	}
	g.startedAt = g.clock.Now()
	g.status = StatusPlaying
}

// Complete marks the game won and freezes the clock
func (g *GameState) Complete() {
	if g.status == StatusPlaying {
		g.banked += g.clock.Now().Sub(g.startedAt)
	}
	g.status = StatusComplete
}

// Elapsed returns total play time excluding paused periods
func (g *GameState) Elapsed() time.Duration {
	if g.status == StatusPlaying {
		return g.banked + g.clock.Now().Sub(g.startedAt)
	}
	return g.banked
}

// Moves returns the number of applied moves
func (g *GameState) Moves() int {
	return g.moves
}

// Score returns the current score, clamped at zero
func (g *GameState) Score() int {
	return max(g.score, 0)
}

// Apply folds a successful move into the counters
func (g *GameState) Apply(rec *MoveRecord) {
	g.moves++
	g.score += scoreDelta(rec)
}

// Revert unwinds a move that was undone. The raw score is kept
// unclamped internally so Apply followed by Revert is exact.
func (g *GameState) Revert(rec *MoveRecord) {
	g.moves--
	g.score -= scoreDelta(rec)
}

func scoreDelta(rec *MoveRecord) int {
	switch rec.Kind {
	case CardFlip:
		return scoreFlip
	case WasteToStock:
		return scoreRecycle
	case CardMove, RunMove:
		switch {
		case rec.To.Kind == Foundation:
			return scoreToFoundation * len(rec.Cards)
		case rec.From.Kind == Waste && rec.To.Kind == Tableau:
			return scoreWasteToTableau
		case rec.From.Kind == Foundation && rec.To.Kind == Tableau:
			return scoreFoundationToTableau
		}
	}
	return 0
}

// GameInfo is the snapshot shape consumed by presentation collaborators.
type GameInfo struct {
	Score           int
	Moves           int
	Time            time.Duration
	FoundationCards int
	Progress        float64
	CanUndo         bool
}

// Info assembles a GameInfo snapshot from the state's own counters and
// the raw counts the engine exposes.
func (g *GameState) Info(foundationCards int, canUndo bool) GameInfo {
	return GameInfo{
		Score:           g.Score(),
		Moves:           g.moves,
		Time:            g.Elapsed(),
		FoundationCards: foundationCards,
		Progress:        float64(foundationCards) / float64(DeckSize),
		CanUndo:         canUndo,
	}
}
