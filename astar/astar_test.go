// Package astar_test contains unit tests for the A* implementation.
// These tests validate input validation, path optimality, determinism,
// the NoPath/BoundExceeded distinction, and edge cases such as
// start == goal and misbehaving cost functions.
package astar_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// mustParse builds a grid from text rows or fails the test.
func mustParse(t *testing.T, rows []string, conn grid.Connectivity) *grid.Grid {
	t.Helper()
	opts := grid.DefaultOptions()
	opts.Conn = conn
	g, err := grid.Parse(rows, opts)
	require.NoError(t, err, "test grid must parse")

	return g
}

// assertValidPath checks reconstruction consistency: the path is a sequence
// of pairwise-adjacent walkable cells from start to goal with no repeats.
func assertValidPath(t *testing.T, g *grid.Grid, path []grid.Cell, start, goal grid.Cell) {
	t.Helper()
	require.NotEmpty(t, path, "path must not be empty")
	assert.Equal(t, start, path[0], "path must begin at start")
	assert.Equal(t, goal, path[len(path)-1], "path must end at goal")

	seen := make(map[grid.Cell]bool, len(path))
	for i, c := range path {
		assert.True(t, g.IsWalkable(c), "path cell %v must be walkable", c)
		assert.False(t, seen[c], "path cell %v must not repeat", c)
		seen[c] = true
		if i == 0 {
			continue
		}
		p := path[i-1]
		dx, dy := abs(c.X-p.X), abs(c.Y-p.Y)
		adjacent := dx <= 1 && dy <= 1 && (dx+dy > 0)
		if g.Conn == grid.Conn4 {
			adjacent = dx+dy == 1
		}
		assert.True(t, adjacent, "cells %v and %v must be adjacent", p, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestFind_NilGrid(t *testing.T) {
	_, err := astar.Find(nil, grid.Cell{}, grid.Cell{})
	assert.ErrorIs(t, err, astar.ErrNilGrid, "nil grid must error before any search work")
}

func TestFind_OptionViolation(t *testing.T) {
	g := mustParse(t, []string{".."}, grid.Conn4)
	_, err := astar.Find(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 1, Y: 0},
		astar.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, astar.ErrOptionViolation, "negative MaxExpansions must be rejected")
}

func TestFind_OutOfBounds(t *testing.T) {
	g := mustParse(t, []string{"..", ".."}, grid.Conn4)

	_, err := astar.Find(g, grid.Cell{X: -1, Y: 0}, grid.Cell{X: 1, Y: 1})
	assert.ErrorIs(t, err, astar.ErrOutOfBounds, "out-of-bounds start must fail immediately")
	assert.Contains(t, err.Error(), "start", "error must name the offending endpoint")

	_, err = astar.Find(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 0})
	assert.ErrorIs(t, err, astar.ErrOutOfBounds, "out-of-bounds goal must fail immediately")
	assert.Contains(t, err.Error(), "goal", "error must name the offending endpoint")
}

func TestFind_Blocked(t *testing.T) {
	g := mustParse(t, []string{".#", ".."}, grid.Conn4)

	_, err := astar.Find(g, grid.Cell{X: 1, Y: 0}, grid.Cell{X: 0, Y: 0})
	assert.ErrorIs(t, err, astar.ErrBlocked, "blocked start must fail immediately")

	_, err = astar.Find(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 1, Y: 0})
	assert.ErrorIs(t, err, astar.ErrBlocked, "blocked goal must fail immediately")
}

func TestFind_BadStepCost(t *testing.T) {
	g := mustParse(t, []string{"..."}, grid.Conn4)
	_, err := astar.Find(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 0},
		astar.WithStepCost(func(_, _ grid.Cell) float64 { return 0 }))
	assert.ErrorIs(t, err, astar.ErrBadStepCost, "zero step cost must surface as ErrBadStepCost")
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: immediate case and the reference scenario.
// ------------------------------------------------------------------------

func TestFind_StartEqualsGoal(t *testing.T) {
	g := mustParse(t, []string{"..", ".."}, grid.Conn4)
	start := grid.Cell{X: 1, Y: 1}

	res, err := astar.Find(g, start, start)
	require.NoError(t, err)
	assert.Equal(t, astar.StatusFound, res.Status)
	assert.Equal(t, []grid.Cell{start}, res.Path, "single-cell path expected")
	assert.Equal(t, 0.0, res.Cost, "zero total cost expected")
	assert.Equal(t, 0, res.Expanded, "no expansions expected")
}

// TestFind_ReferenceScenario runs the canonical 5×5 map: the only optimal
// route goes down column 0, across row 2, and down column 4, for a cost
// of 8 over 9 cells.
func TestFind_ReferenceScenario(t *testing.T) {
	g := mustParse(t, []string{
		"....#",
		".##.#",
		".....",
		".###.",
		".....",
	}, grid.Conn4)
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 4}

	res, err := astar.Find(g, start, goal)
	require.NoError(t, err)
	require.Equal(t, astar.StatusFound, res.Status)
	assert.Equal(t, 8.0, res.Cost, "optimal cost is 8 moves")
	assert.Len(t, res.Path, 9, "optimal path covers 9 cells")
	assertValidPath(t, g, res.Path, start, goal)
}

// ------------------------------------------------------------------------
// 3. Outcome distinction: NoPath vs BoundExceeded.
// ------------------------------------------------------------------------

func TestFind_NoPath(t *testing.T) {
	// A full wall of blocked cells separates start from goal.
	g := mustParse(t, []string{
		"...",
		"###",
		"...",
	}, grid.Conn4)

	res, err := astar.Find(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 2})
	require.NoError(t, err, "an unreachable goal is a normal outcome, not an error")
	assert.Equal(t, astar.StatusNoPath, res.Status)
	assert.Nil(t, res.Path, "no path must yield a nil path")
	assert.Positive(t, res.Expanded, "the upper region must have been explored")
}

func TestFind_BoundExceeded(t *testing.T) {
	// The map does have a path; an absurdly low bound must report
	// BoundExceeded, never NoPath.
	g := mustParse(t, []string{
		".....",
		".....",
		".....",
	}, grid.Conn4)

	res, err := astar.Find(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 2},
		astar.WithMaxExpansions(1))
	require.NoError(t, err)
	assert.Equal(t, astar.StatusBoundExceeded, res.Status)
	assert.Nil(t, res.Path)
	assert.Equal(t, 1, res.Expanded, "exactly one expansion before the bound fires")
}

func TestFind_ContextCanceled(t *testing.T) {
	g := mustParse(t, []string{"....."}, grid.Conn4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // canceled before the search starts

	res, err := astar.Find(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 0},
		astar.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, astar.StatusBoundExceeded, res.Status,
		"cancellation is an early stop, distinguishable from NoPath")
}

// ------------------------------------------------------------------------
// 4. Determinism and hooks.
// ------------------------------------------------------------------------

// TestFind_Deterministic verifies repeated invocations with identical
// inputs return identical paths, on a map with many equal-cost ties.
func TestFind_Deterministic(t *testing.T) {
	g := mustParse(t, []string{
		".....",
		".....",
		".....",
		".....",
		".....",
	}, grid.Conn4)
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 4}

	first, err := astar.Find(g, start, goal)
	require.NoError(t, err)
	require.Equal(t, astar.StatusFound, first.Status)

	for i := 0; i < 10; i++ {
		res, err := astar.Find(g, start, goal)
		require.NoError(t, err)
		assert.Equal(t, first.Path, res.Path, "run %d diverged from the first path", i)
		assert.Equal(t, first.Expanded, res.Expanded, "run %d expanded differently", i)
	}
}

func TestFind_OnExpandHook(t *testing.T) {
	g := mustParse(t, []string{
		"....",
		"....",
	}, grid.Conn4)

	var calls int
	res, err := astar.Find(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 1},
		astar.WithOnExpand(func(_ grid.Cell, gCost, fCost float64) {
			calls++
			assert.GreaterOrEqual(t, fCost, gCost, "f must never be below g")
		}))
	require.NoError(t, err)
	assert.Equal(t, res.Expanded, calls, "hook must fire once per expansion")
}

// ------------------------------------------------------------------------
// 5. Diagonals and custom step costs.
// ------------------------------------------------------------------------

func TestFind_DiagonalStraightLine(t *testing.T) {
	g := mustParse(t, []string{
		"....",
		"....",
		"....",
		"....",
	}, grid.Conn8)

	res, err := astar.Find(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 3},
		astar.WithHeuristic(astar.Octile))
	require.NoError(t, err)
	require.Equal(t, astar.StatusFound, res.Status)
	assert.InDelta(t, 3*math.Sqrt2, res.Cost, 1e-9, "pure diagonal run costs 3√2")
	assert.Len(t, res.Path, 4)
	assertValidPath(t, g, res.Path, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 3})
}

// TestFind_CustomStepCost makes the middle row expensive and expects the
// route to detour around it.
func TestFind_CustomStepCost(t *testing.T) {
	g := mustParse(t, []string{
		"...",
		"...",
		"...",
	}, grid.Conn4)

	expensiveRow := func(_, to grid.Cell) float64 {
		if to.Y == 1 && to.X == 1 {
			return 100 // center cell is a swamp
		}

		return 1
	}
	// Zero heuristic keeps admissibility under the inflated cost surface.
	zero := func(_, _ grid.Cell) float64 { return 0 }

	res, err := astar.Find(g, grid.Cell{X: 0, Y: 1}, grid.Cell{X: 2, Y: 1},
		astar.WithStepCost(expensiveRow), astar.WithHeuristic(zero))
	require.NoError(t, err)
	require.Equal(t, astar.StatusFound, res.Status)
	assert.Equal(t, 4.0, res.Cost, "detour around the swamp costs 4")
	assert.NotContains(t, res.Path, grid.Cell{X: 1, Y: 1}, "route must avoid the swamp")
	assertValidPath(t, g, res.Path, grid.Cell{X: 0, Y: 1}, grid.Cell{X: 2, Y: 1})
}

// ------------------------------------------------------------------------
// 6. Optimality: brute-force comparison on random grids.
// ------------------------------------------------------------------------

// bfsDistance computes the exact minimum number of orthogonal moves
// between a and b, or -1 when unreachable. Reference oracle for unit-cost
// Conn4 optimality.
func bfsDistance(g *grid.Grid, a, b grid.Cell) int {
	dist := make([]int, g.Size())
	for i := range dist {
		dist[i] = -1
	}
	dist[g.Index(a)] = 0
	queue := []grid.Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if cur == b {
			return dist[g.Index(cur)]
		}
		for _, n := range g.Neighbors(cur) {
			if ni := g.Index(n); dist[ni] < 0 {
				dist[ni] = dist[g.Index(cur)] + 1
				queue = append(queue, n)
			}
		}
	}

	return -1
}

// TestFind_OptimalOnRandomGrids cross-checks A* costs against BFS on a
// series of seeded random maps, covering both reachable and unreachable
// pairs.
func TestFind_OptimalOnRandomGrids(t *testing.T) {
	const (
		trials = 50
		side   = 12
	)
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < trials; trial++ {
		values := make([][]int, side)
		for y := range values {
			values[y] = make([]int, side)
			for x := range values[y] {
				if rng.Intn(10) < 7 {
					values[y][x] = 1
				}
			}
		}
		start := grid.Cell{X: rng.Intn(side), Y: rng.Intn(side)}
		goal := grid.Cell{X: rng.Intn(side), Y: rng.Intn(side)}
		values[start.Y][start.X] = 1
		values[goal.Y][goal.X] = 1

		g, err := grid.New(values, grid.DefaultOptions())
		require.NoError(t, err)

		res, err := astar.Find(g, start, goal)
		require.NoError(t, err)

		want := bfsDistance(g, start, goal)
		if want < 0 {
			assert.Equal(t, astar.StatusNoPath, res.Status,
				"trial %d: BFS says unreachable, A* must agree", trial)
			continue
		}
		require.Equal(t, astar.StatusFound, res.Status, "trial %d", trial)
		assert.Equal(t, float64(want), res.Cost,
			"trial %d: A* cost must match the BFS optimum", trial)
		assertValidPath(t, g, res.Path, start, goal)
	}
}

// parityManhattan is admissible everywhere (it never exceeds Manhattan,
// hence never the true cost) but deliberately inconsistent: cells whose
// coordinate sum is even estimate the full Manhattan distance while odd
// cells estimate nothing, so h can drop by more than one step cost
// between neighbors. Under such a heuristic a cell can be expanded with a
// suboptimal g, and optimality then depends on re-opening closed cells
// when a strictly cheaper route appears.
func parityManhattan(a, b grid.Cell) float64 {
	if (a.X+a.Y)%2 == 0 {
		return astar.Manhattan(a, b)
	}

	return 0
}

// TestFind_InconsistentHeuristicReopens cross-checks A* under the
// inconsistent-but-admissible heuristic against the BFS oracle on seeded
// random maps: every found cost must still match the exact optimum,
// which only holds because closed cells are re-opened on improvement.
func TestFind_InconsistentHeuristicReopens(t *testing.T) {
	const (
		trials = 200
		side   = 12
	)
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < trials; trial++ {
		values := make([][]int, side)
		for y := range values {
			values[y] = make([]int, side)
			for x := range values[y] {
				if rng.Intn(10) < 7 {
					values[y][x] = 1
				}
			}
		}
		start := grid.Cell{X: rng.Intn(side), Y: rng.Intn(side)}
		goal := grid.Cell{X: rng.Intn(side), Y: rng.Intn(side)}
		values[start.Y][start.X] = 1
		values[goal.Y][goal.X] = 1

		g, err := grid.New(values, grid.DefaultOptions())
		require.NoError(t, err)

		res, err := astar.Find(g, start, goal, astar.WithHeuristic(parityManhattan))
		require.NoError(t, err)

		want := bfsDistance(g, start, goal)
		if want < 0 {
			assert.Equal(t, astar.StatusNoPath, res.Status,
				"trial %d: BFS says unreachable, A* must agree", trial)
			continue
		}
		require.Equal(t, astar.StatusFound, res.Status, "trial %d", trial)
		assert.Equal(t, float64(want), res.Cost,
			"trial %d: cost must match the optimum despite the inconsistent estimate", trial)
		assertValidPath(t, g, res.Path, start, goal)
	}
}

// TestFind_ZeroHeuristicMatchesDefault verifies A* with a zero heuristic
// (pure Dijkstra) finds the same cost as the Manhattan-guided search.
func TestFind_ZeroHeuristicMatchesDefault(t *testing.T) {
	g := mustParse(t, []string{
		"....#....",
		".##.#.##.",
		".#......#",
		".#.####..",
		".........",
	}, grid.Conn4)
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 8, Y: 4}

	guided, err := astar.Find(g, start, goal)
	require.NoError(t, err)
	blind, err := astar.Find(g, start, goal,
		astar.WithHeuristic(func(_, _ grid.Cell) float64 { return 0 }))
	require.NoError(t, err)

	require.Equal(t, astar.StatusFound, guided.Status)
	require.Equal(t, astar.StatusFound, blind.Status)
	assert.Equal(t, blind.Cost, guided.Cost, "heuristic guidance must not change the optimum")
	assert.LessOrEqual(t, guided.Expanded, blind.Expanded,
		"an informative heuristic must not expand more than Dijkstra")
}
