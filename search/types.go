// Package search implements the alpha-beta search: iterative deepening
// with aspiration windows, principal-variation search, null-move
// pruning, late-move reduction, a transposition table, killer/history
// move ordering, and quiescence search. It sits on top of board (state
// and move generation) and eval (static scoring).
package search

import "time"

// Difficulty selects the depth and time budget getBestMove searches
// under. Presets, not user-tunable knobs — the engine has no config
// file, per the ambient-stack design.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Expert
	Master
	Grandmaster
)

// preset bundles a Difficulty's iteration cap and wall-clock budget.
type preset struct {
	maxDepth  int
	timeLimit time.Duration
}

var presets = map[Difficulty]preset{
	Beginner:     {maxDepth: 3, timeLimit: 800 * time.Millisecond},
	Intermediate: {maxDepth: 5, timeLimit: 1500 * time.Millisecond},
	Expert:       {maxDepth: 7, timeLimit: 2500 * time.Millisecond},
	Master:       {maxDepth: 10, timeLimit: 4000 * time.Millisecond},
	Grandmaster:  {maxDepth: 24, timeLimit: 6000 * time.Millisecond},
}

func (d Difficulty) preset() preset {
	p, ok := presets[d]
	if !ok {
		panic("search: unknown difficulty")
	}
	return p
}

// Language selects the reasoning string's output language.
type Language int

const (
	English Language = iota
	SimplifiedChinese
)

// Bound is which side of the true score a transposition table entry
// represents: exact, a lower bound (fail-high/beta cutoff), or an
// upper bound (fail-low, no move raised alpha).
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

// Score bounds, matching spec's numeric contract exactly. mateScore is
// the score assigned to a checkmate found at ply 0; MateThreshold is
// used to distinguish "found a forced mate" from an ordinary
// evaluation when deciding whether iterative deepening can stop early.
const (
	MaxScore      = 20000
	MinScore      = -20000
	mateScore     = 20000
	MateThreshold = 15000
)

// RSquare/RMove/Result are the external, UI-facing coordinate types
// from spec.md §6 — row/col pairs, not internal Square values.
type RSquare struct {
	Row, Col int
}

type RMove struct {
	From, To RSquare
}

// Result is what GetBestMove returns: the chosen move in external
// coordinates, a human-readable explanation, and the search's own
// evaluation of the position after that move.
type Result struct {
	Move      RMove
	Reasoning string
	Score     int
}
