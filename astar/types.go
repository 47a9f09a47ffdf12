// Package astar defines tunable options, result types, and sentinel
// errors for A* search over a grid.Grid.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search invocation. All are surfaced synchronously,
// before any search state is constructed.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds is returned when start or goal lies outside the grid extents.
	ErrOutOfBounds = errors.New("astar: cell out of bounds")

	// ErrBlocked is returned when start or goal is not a walkable cell.
	ErrBlocked = errors.New("astar: cell is blocked")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrBadStepCost is returned when a user-supplied step-cost function
	// yields a non-positive cost during expansion.
	ErrBadStepCost = errors.New("astar: step cost must be positive")
)

// Heuristic estimates the remaining cost from a to b. It must be
// non-negative; for optimality guarantees it must also be admissible
// (never overestimate the true remaining cost) and consistent (satisfy
// the triangle inequality relative to step costs).
type Heuristic func(a, b grid.Cell) float64

// StepCost returns the cost of moving between two adjacent cells.
// It must be positive for every traversable step.
type StepCost func(from, to grid.Cell) float64

// Status reports how a search terminated.
type Status int

const (
	// StatusFound means the goal was reached and Result.Path holds an
	// optimal route (given an admissible, consistent heuristic).
	StatusFound Status = iota

	// StatusNoPath means the frontier was exhausted without reaching the
	// goal: the goal is provably unreachable. This is a normal outcome,
	// not an error.
	StatusNoPath

	// StatusBoundExceeded means the search stopped early because the
	// expansion bound or the context deadline was hit. Unlike
	// StatusNoPath, a path may still exist.
	StatusBoundExceeded
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "Found"
	case StatusNoPath:
		return "NoPath"
	case StatusBoundExceeded:
		return "BoundExceeded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result holds the outcome of one search invocation:
//   - Status: how the search terminated.
//   - Path: ordered cells from start to goal inclusive; nil unless Found.
//   - Cost: total path cost; 0 for a single-cell path.
//   - Expanded: number of frontier extractions that were expanded.
type Result struct {
	Status   Status
	Path     []grid.Cell
	Cost     float64
	Expanded int
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative expansion bound), it is recorded
// internally and surfaced as ErrOptionViolation when Find is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines, checked once per loop iteration.
	Ctx context.Context

	// Heuristic estimates remaining cost to the goal. If nil, Manhattan is
	// used for Conn4 grids and Chebyshev for Conn8 grids.
	Heuristic Heuristic

	// StepCost prices each move. If nil, UnitCost is used: 1 per orthogonal
	// move, √2 per diagonal move.
	StepCost StepCost

	// MaxExpansions, if > 0, stops the search after this many expansions
	// with StatusBoundExceeded. A value of 0 explicitly disables the bound.
	MaxExpansions int

	// OnExpand is called as each cell is expanded, with its accumulated
	// cost g and total estimate f. Useful for tracing and visualization.
	OnExpand func(c grid.Cell, g, f float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - Context.Background()
//   - heuristic and step cost resolved from the grid's connectivity
//   - no expansion bound (MaxExpansions == 0)
//   - no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Heuristic:     nil,
		StepCost:      nil,
		MaxExpansions: 0,
		OnExpand:      func(grid.Cell, float64, float64) {},
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic overrides the default heuristic. Passing a non-admissible
// heuristic voids the optimality guarantee but is otherwise legal.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithStepCost overrides the default step-cost function. The function must
// return a positive cost for every step; a non-positive cost surfaces as
// ErrBadStepCost during the search.
func WithStepCost(sc StepCost) Option {
	return func(o *Options) {
		if sc != nil {
			o.StepCost = sc
		}
	}
}

// WithMaxExpansions bounds the number of expansions before the search
// gives up with StatusBoundExceeded.
//
//	n > 0:  stop after n expansions
//	n == 0: explicit no bound
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no bound"
			o.MaxExpansions = 0
		default:
			o.MaxExpansions = n
		}
	}
}

// WithOnExpand registers a callback to run as each cell is expanded.
func WithOnExpand(fn func(c grid.Cell, g, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
