// Package astar implements A* shortest-path search on 2D occupancy grids.
//
// A* computes the minimum-cost route between two walkable cells by
// expanding candidates in order of g + h, where g is the accumulated cost
// from the start and h is an admissible estimate of the remaining cost.
// It maintains a min-heap frontier of discovered cells and finalizes each
// cell's cost when it is extracted.
//
// Complexity:
//
//   - Time:  O(N log N) worst case, N = W×H cells
//   - Each cell is expanded at most once under a consistent heuristic: up to N extractions.
//   - Each expansion relaxes at most d neighbors (d = 4 or 8): up to d·N heap updates.
//   - Each heap operation (push/pop/fix) costs O(log N).
//   - Space: O(N)
//   - One flat node record per cell (arena), plus the heap of live indexes.
//
// Notes on implementation choices:
//
//   - Per-cell bookkeeping lives in a flat arena indexed by row-major cell
//     index; parent links are indexes, not pointers.
//   - Improvements to queued cells reorder the existing heap entry in place
//     (heap.Fix), so the heap never holds stale duplicates.
//   - A closed cell reached by a strictly cheaper route is re-opened, which
//     preserves optimality even when the heuristic is inconsistent with a
//     custom step-cost function.
package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Find computes a minimal-cost path from start to goal on g. It accepts
// functional options to customize behavior (heuristic, step cost,
// expansion bound, cancellation, tracing).
//
// Returns:
//
//   - Result.Status Found with the path, its cost, and the expansion count; or
//   - Status NoPath when the goal is provably unreachable (not an error); or
//   - Status BoundExceeded when MaxExpansions or the context stopped the
//     search before resolution (callers can tell "unreachable" apart from
//     "gave up early").
//   - err: a sentinel error for invalid input, the context's error on
//     cancellation, or ErrBadStepCost from a misbehaving cost function.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. All supplied options must be valid (ErrOptionViolation).
//  3. start and goal must lie inside the grid (ErrOutOfBounds).
//  4. start and goal must be walkable (ErrBlocked).
//
// Structural input errors are surfaced synchronously before any search
// state is constructed; they are never retried internally.
//
// If start == goal, Find succeeds immediately with the single-cell path
// and zero cost, performing no expansions.
//
// The returned path is optimal whenever the heuristic is admissible and
// consistent relative to the step costs. Repeated invocations with
// identical inputs return identical paths.
func Find(g *grid.Grid, start, goal grid.Cell, opts ...Option) (Result, error) {
	// 1) Validate grid is non-nil.
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// 2) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	// 3) Validate endpoints: bounds first, then occupancy, start before goal.
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start (%d,%d)", ErrOutOfBounds, start.X, start.Y)
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: goal (%d,%d)", ErrOutOfBounds, goal.X, goal.Y)
	}
	if !g.IsWalkable(start) {
		return Result{}, fmt.Errorf("%w: start (%d,%d)", ErrBlocked, start.X, start.Y)
	}
	if !g.IsWalkable(goal) {
		return Result{}, fmt.Errorf("%w: goal (%d,%d)", ErrBlocked, goal.X, goal.Y)
	}

	// 4) Resolve defaults bound to the grid's connectivity.
	if o.Heuristic == nil {
		o.Heuristic = defaultHeuristic(g.Conn)
	}
	if o.StepCost == nil {
		o.StepCost = UnitCost
	}

	// 5) Immediate case: nothing to search.
	if start == goal {
		return Result{Status: StatusFound, Path: []grid.Cell{start}, Cost: 0, Expanded: 0}, nil
	}

	// 6) Initialize per-invocation state and run the main loop. All search
	//    state is local to this call; only the immutable grid is shared.
	r := &runner{
		grid:    g,
		opts:    o,
		goal:    goal,
		goalIdx: g.Index(goal),
		front:   newFrontier(g.Size()),
	}
	r.seed(start)

	return r.process()
}

// runner holds the mutable state for a single search execution.
type runner struct {
	grid     *grid.Grid // the input grid; read-only within Find
	opts     Options    // resolved configuration (heuristic, step cost, bounds)
	goal     grid.Cell  // target cell
	goalIdx  int        // row-major index of goal, compared on every extraction
	front    *frontier  // open set plus the per-cell node arena
	expanded int        // number of expansions performed so far
}

// seed places the start cell into the frontier with g = 0 and
// h = heuristic(start, goal).
func (r *runner) seed(start grid.Cell) {
	idx := r.grid.Index(start)
	n := &r.front.arena[idx]
	n.seen = true
	n.g = 0
	n.h = r.opts.Heuristic(start, r.goal)
	r.front.push(idx)
}

// process is the core A* loop. It repeatedly extracts the frontier
// candidate with the smallest total estimate and either terminates or
// expands it.
//
// Loop termination conditions:
//
//   - The extracted cell is the goal → StatusFound with the reconstructed path.
//   - The frontier becomes empty → StatusNoPath (goal provably unreachable).
//   - The expansion bound or context deadline is hit → StatusBoundExceeded.
func (r *runner) process() (Result, error) {
	for !r.front.empty() {
		// cancellation check (once per loop)
		select {
		case <-r.opts.Ctx.Done():
			return Result{Status: StatusBoundExceeded, Expanded: r.expanded}, r.opts.Ctx.Err()
		default:
		}

		// 1) Expansion bound check, before any further work.
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return Result{Status: StatusBoundExceeded, Expanded: r.expanded}, nil
		}

		// 2) Extract the minimum-f candidate.
		cur := r.front.popMin()

		// 3) Goal test on extraction: the popped g is final, so the route is optimal.
		if cur == r.goalIdx {
			return Result{
				Status:   StatusFound,
				Path:     r.reconstruct(cur),
				Cost:     r.front.arena[cur].g,
				Expanded: r.expanded,
			}, nil
		}

		// 4) Finalize and expand.
		r.front.arena[cur].closed = true
		r.expanded++
		if err := r.expand(cur); err != nil {
			return Result{}, err
		}
	}

	// Frontier exhausted without reaching the goal: a normal, expected
	// outcome, reported without error.
	return Result{Status: StatusNoPath, Expanded: r.expanded}, nil
}

// expand relaxes every walkable neighbor of the cell at arena index cur:
// a neighbor reached by a strictly cheaper route than previously known is
// created or updated with cur as its parent.
//
// Assumes arena[cur].g is finalized before expand(cur) is called.
func (r *runner) expand(cur int) error {
	curCell := r.grid.CellAt(cur)
	curNode := &r.front.arena[cur]
	r.opts.OnExpand(curCell, curNode.g, curNode.f())

	var nb grid.Cell
	var step, tentative float64
	for _, nb = range r.grid.Neighbors(curCell) {
		// Price the move and reject misbehaving cost functions: a zero or
		// negative step would break the non-decreasing extraction order.
		step = r.opts.StepCost(curCell, nb)
		if step <= 0 {
			return fmt.Errorf("%w: got %v for (%d,%d)→(%d,%d)",
				ErrBadStepCost, step, curCell.X, curCell.Y, nb.X, nb.Y)
		}
		tentative = curNode.g + step

		ni := r.grid.Index(nb)
		n := &r.front.arena[ni]
		switch {
		case !n.seen:
			// First discovery: record the route and enqueue.
			n.seen = true
			n.g = tentative
			n.h = r.opts.Heuristic(nb, r.goal)
			n.parent = cur
			r.front.push(ni)

		case tentative < n.g:
			// Strict improvement over the best known route.
			n.g = tentative
			n.parent = cur
			if n.closed {
				// Re-open a finalized cell: a cheaper route invalidates its
				// earlier expansion. Unreachable under a consistent
				// heuristic, required for optimality otherwise.
				n.closed = false
				r.front.push(ni)
			} else {
				r.front.fix(ni)
			}
		}
		// Equal-or-worse routes are ignored: g only ever decreases.
	}

	return nil
}

// reconstruct walks parent links from the arena index at the goal back to
// the parentless start cell, then reverses the collected coordinates so
// the path runs start → goal inclusive. It never mutates the arena.
// Complexity: O(L), L = path length.
func (r *runner) reconstruct(idx int) []grid.Cell {
	var path []grid.Cell
	for at := idx; at >= 0; at = r.front.arena[at].parent {
		path = append(path, r.grid.CellAt(at))
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
