package grid

import (
	"fmt"
)

// Parse builds a Grid from rows of map characters, one string per row.
// Recognized characters:
//
//	'.' or '1' — walkable
//	'#' or '0' — blocked
//
// Any other character yields ErrBadRune with the offending rune and its
// position. Empty input yields ErrEmptyGrid; rows of differing lengths
// yield ErrRagged. The Options' WalkableThreshold is ignored here since
// the characters encode occupancy directly; Conn is honored as usual.
//
// Parse exists for scenario files and tests, where a text map reads far
// better than a slice literal.
// Complexity: O(W×H) time and memory.
func Parse(rows []string, opts Options) (*Grid, error) {
	values, err := parseValues(rows)
	if err != nil {
		return nil, err
	}
	// Characters already encode occupancy as 0/1.
	opts.WalkableThreshold = 1

	return New(values, opts)
}

// parseValues translates map characters into 0/1 cell values.
func parseValues(rows []string) ([][]int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]int, len(rows))
	var y int
	var row string
	for y, row = range rows {
		runes := []rune(row)
		values[y] = make([]int, len(runes))
		for x, r := range runes {
			switch r {
			case '.', '1':
				values[y][x] = 1
			case '#', '0':
				values[y][x] = 0
			default:
				return nil, badRuneError(r, x, y)
			}
		}
	}

	return values, nil
}

// badRuneError wraps ErrBadRune with the offending rune and its coordinates.
func badRuneError(r rune, x, y int) error {
	return fmt.Errorf("%w: %q at (%d,%d)", ErrBadRune, r, x, y)
}
