package astar

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Manhattan returns |dx| + |dy|: the exact minimum number of orthogonal
// moves between a and b on an unobstructed grid. Admissible and consistent
// for Conn4 movement with unit step cost; it overestimates under Conn8
// (a diagonal covers dx and dy at once), so do not pair it with diagonals.
func Manhattan(a, b grid.Cell) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// Chebyshev returns max(|dx|, |dy|): the exact minimum number of moves
// when diagonals are allowed and cost the same as orthogonal steps.
// Admissible and consistent for Conn8 under any step cost ≥ 1 per move.
func Chebyshev(a, b grid.Cell) float64 {
	return float64(max(abs(a.X-b.X), abs(a.Y-b.Y)))
}

// Euclidean returns the straight-line distance √(dx² + dy²). Admissible for
// both Conn4 and Conn8 movement since no grid path is shorter than the
// straight line, though it is a weaker bound than Manhattan on Conn4.
func Euclidean(a, b grid.Cell) float64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)

	return math.Hypot(dx, dy)
}

// Octile returns the exact unobstructed cost under Conn8 movement with
// unit orthogonal steps and √2 diagonal steps:
// max(|dx|,|dy|) + (√2−1)·min(|dx|,|dy|).
// Admissible and consistent for Conn8 with UnitCost; the tightest of the
// built-in heuristics for that configuration.
func Octile(a, b grid.Cell) float64 {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx < dy {
		dx, dy = dy, dx
	}

	return float64(dx) + (math.Sqrt2-1)*float64(dy)
}

// UnitCost is the default step-cost function: 1 per orthogonal move and
// √2 per diagonal move. It assumes from and to are adjacent.
func UnitCost(from, to grid.Cell) float64 {
	if from.X != to.X && from.Y != to.Y {
		return math.Sqrt2
	}

	return 1
}

// defaultHeuristic picks the admissible default for the given connectivity:
// Manhattan for Conn4, Chebyshev for Conn8.
func defaultHeuristic(conn grid.Connectivity) Heuristic {
	if conn == grid.Conn8 {
		return Chebyshev
	}

	return Manhattan
}

// abs returns the absolute value of an int.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
