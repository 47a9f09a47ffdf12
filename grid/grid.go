// Package grid provides immutable rectangular occupancy maps for
// shortest-path search. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Strict validation of rectangular input (ragged rows are an error)
//   - Bounds, walkability, and neighbor queries
//   - Row-major index ↔ coordinate mapping for flat per-cell tables
//   - Identification of connected walkable regions
//
// Cells with value < WalkableThreshold are blocked; cells with value
// ≥ WalkableThreshold are walkable.
package grid

// New constructs a Grid from a non-empty, rectangular 2D slice of cell
// values. Occupancy is captured at construction, so later mutation of the
// input cannot affect the Grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrRagged if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func New(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrRagged
		}
	}
	// Flatten occupancy into a row-major bool table.
	walkable := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			walkable[y*w+x] = values[y][x] >= opts.WalkableThreshold
		}
	}
	g := &Grid{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		walkable:        walkable,
		neighborOffsets: offsetsFor(opts.Conn),
	}

	return g, nil
}

// offsetsFor returns the neighbor offsets for the given connectivity,
// enumerated clockwise from north. The enumeration order is fixed so that
// neighbor expansion, and therefore search tie-breaking, is deterministic.
func offsetsFor(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// IsWalkable reports whether c is inside the grid and not blocked.
// Out-of-bounds cells are never walkable.
// Complexity: O(1).
func (g *Grid) IsWalkable(c Cell) bool {
	return g.InBounds(c) && g.walkable[c.Y*g.Width+c.X]
}

// Neighbors returns the walkable cells adjacent to c under the grid's
// connectivity, enumerated clockwise from north. Out-of-bounds and blocked
// cells are excluded. The result is freshly allocated on every call; callers
// may retain or mutate it freely.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if g.IsWalkable(n) {
			out = append(out, n)
		}
	}

	return out
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Callers must treat the result as read-only.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Index maps c to a row-major index: Y*Width + X.
// The caller is responsible for bounds; see InBounds.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Y*g.Width + c.X
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{X: idx % g.Width, Y: idx / g.Width}
}

// Size returns the total number of cells, Width×Height.
// Complexity: O(1).
func (g *Grid) Size() int {
	return g.Width * g.Height
}
