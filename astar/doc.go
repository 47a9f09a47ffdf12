// Package astar provides a precise, deterministic implementation of the A*
// shortest-path algorithm on 2D occupancy grids.
//
// Overview:
//
//   - Find computes the minimum-cost route between two walkable cells of a
//     grid.Grid, or reports that none exists, in O(N log N) time for
//     N = W×H cells.
//   - It maintains a min-heap frontier ordered by total estimate f = g + h
//     and finalizes each cell's cost on extraction.
//   - Supports pluggable heuristics and step costs, expansion bounds,
//     cooperative cancellation, and per-expansion tracing hooks.
//
// When to use:
//
//   - Tile-based game maps, robotics occupancy grids, maze solving — any
//     domain where movement happens between adjacent cells of a fixed map.
//   - Whenever you need guaranteed-optimal paths: with an admissible,
//     consistent heuristic the returned route's cost is minimal.
//   - As a drop-in Dijkstra: pass a zero heuristic and A* degenerates into
//     uniform-cost search.
//
// Key features:
//
//   - Deterministic tie-breaking: equal-f candidates are ordered by lower h,
//     then insertion order, so identical inputs always yield identical paths.
//   - Heuristics included: Manhattan (Conn4 default), Chebyshev (Conn8
//     default), Euclidean, and Octile. Custom ones plug in via WithHeuristic.
//   - UnitCost step pricing (1 orthogonal, √2 diagonal), replaceable via
//     WithStepCost for terrain-style weighting.
//   - WithMaxExpansions / WithContext bound runaway searches; the result
//     distinguishes "provably unreachable" (StatusNoPath) from "gave up
//     early" (StatusBoundExceeded).
//   - WithOnExpand hook for tracing, metrics, or visualization.
//
// Search outcomes:
//
//   - StatusFound:         Result.Path runs start → goal inclusive, Cost is its total cost.
//   - StatusNoPath:        the frontier drained; no path exists. Not an error.
//   - StatusBoundExceeded: the bound or deadline fired first; a path may still exist.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         a nil *grid.Grid was passed to Find.
//   - ErrOutOfBounds:     start or goal lies outside the grid extents.
//   - ErrBlocked:         start or goal is not a walkable cell.
//   - ErrOptionViolation: an invalid option value was supplied (e.g. negative MaxExpansions).
//   - ErrBadStepCost:     the step-cost function returned a non-positive cost.
//
// All structural input errors surface before any search work begins.
// NoPath and BoundExceeded are expected terminal results, not errors.
//
// API reference:
//
//	func Find(
//	    g *grid.Grid,
//	    start, goal grid.Cell,
//	    opts ...Option,
//	) (Result, error)
//
//	  - g:     the occupancy map; read-only for the duration of the call.
//	  - opts:  zero or more functional options:
//	      • WithHeuristic(Heuristic):   estimate of remaining cost (default by connectivity).
//	      • WithStepCost(StepCost):     per-move pricing (default UnitCost).
//	      • WithMaxExpansions(int):     stop after n expansions with BoundExceeded.
//	      • WithContext(ctx):           cancellation/deadline, checked once per iteration.
//	      • WithOnExpand(func):         tracing hook per expanded cell.
//
// Determinism:
//
//   - The frontier breaks f-ties by lower h, then insertion order, and
//     neighbor enumeration is fixed clockwise-from-north, so repeated runs
//     on identical inputs reproduce the same path cell for cell.
//
// Thread safety:
//
//   - All search state is local to one Find call. Any number of Find calls
//     may run concurrently against the same Grid, which is immutable.
//
// See also:
//
//   - grid.Grid: construction, validation, connectivity, region analysis.
//   - grid.Connected: O(W×H) reachability pre-check without a full search.
package astar
