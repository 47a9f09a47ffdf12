// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("grid: all rows must have the same length")
	// ErrBadRune indicates an unrecognized cell character in a text map.
	ErrBadRune = errors.New("grid: unrecognized cell character")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is an integer coordinate pair (X = column, Y = row)
// identifying one grid cell. Valid only inside grid bounds.
type Cell struct {
	X, Y int
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// WalkableThreshold specifies the minimum cell value considered walkable.
	WalkableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns an Options with default settings:
// WalkableThreshold=1 (values ≥1 are walkable), Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		WalkableThreshold: 1,
		Conn:              Conn4,
	}
}

// Grid is an immutable rectangular occupancy map. Width and Height define
// dimensions; walkable holds per-cell occupancy in row-major order.
// Conn is fixed from Options during construction, and neighborOffsets is
// precomputed for efficient adjacency lookups.
//
// A Grid is never mutated after New returns, so any number of concurrent
// searches may read it without coordination.
type Grid struct {
	Width, Height   int
	Conn            Connectivity
	walkable        []bool
	neighborOffsets [][2]int
}
