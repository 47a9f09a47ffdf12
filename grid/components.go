package grid

// Regions finds all contiguous regions of walkable cells according to the
// grid's connectivity. Returns a slice of regions; each region is a slice
// of row-major cell indexes, ordered by discovery (row-major scan, then
// BFS order within a region), so output is deterministic.
//
// To convert an index back to a Cell, use CellAt(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]int {
	seen := make([]bool, g.Size())
	var regions [][]int

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			i0 := g.Index(c)
			if seen[i0] || !g.walkable[i0] {
				continue
			}
			regions = append(regions, g.flood(i0, seen))
		}
	}

	return regions
}

// flood collects the walkable region containing start via BFS,
// marking each discovered index in seen.
func (g *Grid) flood(start int, seen []bool) []int {
	queue := []int{start}
	seen[start] = true
	var region []int

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		region = append(region, u)
		uc := g.CellAt(u)
		for _, d := range g.neighborOffsets {
			n := Cell{X: uc.X + d[0], Y: uc.Y + d[1]}
			if !g.IsWalkable(n) {
				continue
			}
			ni := g.Index(n)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, ni)
			}
		}
	}

	return region
}

// Connected reports whether walkable cells a and b lie in the same
// contiguous region, i.e. whether any path exists between them. It is a
// cheap reachability pre-check: search can be skipped entirely when it
// returns false. Returns false if either cell is blocked or out of bounds.
//
// Time:   O(W·H·d) worst case (single BFS from a).
// Memory: O(W·H).
func (g *Grid) Connected(a, b Cell) bool {
	if !g.IsWalkable(a) || !g.IsWalkable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, g.Size())
	target := g.Index(b)
	for _, idx := range g.flood(g.Index(a), seen) {
		if idx == target {
			return true
		}
	}

	return false
}
