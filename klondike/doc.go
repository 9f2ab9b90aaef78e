// Package klondike implements the rule engine for single-player
// Klondike patience: the stack and move model, legality checks,
// draw/recycle handling, hint and best-move search, block detection
// and a bounded undo history.
//
// The main type is Engine, which owns the thirteen stacks (stock,
// waste, four foundations, seven tableau columns) and applies every
// mutation through its command surface. Rule violations are ordinary
// outcomes reported as false/nil results; the engine never panics on
// an illegal command.
//
// # Basic Usage
//
// Deal and play a game:
//
//	state := klondike.NewGameState()
//	e := klondike.NewEngine(state, logger, klondike.WithDrawCount(3))
//	e.Deal(klondike.ShuffledDeck(rng))
//	state.Start()
//	drawn := e.Draw()
//	e.Move(card, from, to)
//	if best := e.RequestHint(); best != nil {
//	    // apply the suggestion
//	}
//
// # Deterministic Testing
//
// All randomness lives in the caller-supplied deal order. A seeded RNG
// (see internal/randutil) makes deals, hints and best-move suggestions
// fully reproducible:
//
//	rng := randutil.New(42)
//	e.Deal(klondike.ShuffledDeck(rng))
//
// # Architecture
//
// Engine delegates to specialized components:
//   - Stack: ordered piles with kind-specific acceptance rules
//   - ValidateMove/ValidateRun: pure legality checks given a Status
//   - History: bounded FIFO-evicting move log backing Undo
//   - GameState: sibling progress counters (score, moves, elapsed
//     time) read by the engine but owned by the controller
//
// The engine is single-threaded and command-driven: every operation
// runs to completion before returning and is invoked serially by one
// controller.
package klondike
