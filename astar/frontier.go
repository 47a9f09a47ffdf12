package astar

import (
	"container/heap"
)

// node is one per-cell search record in the flat arena, addressed by the
// cell's row-major index. Parent links are stored as arena indexes rather
// than object references, so bookkeeping forms a plain tree rooted at the
// start cell with no reference cycles.
type node struct {
	g      float64 // accumulated cost from start along the best known route
	h      float64 // heuristic estimate of remaining cost to goal
	parent int     // arena index of the predecessor; -1 for the start cell
	pos    int     // position in the frontier heap; -1 when not queued
	seq    uint64  // insertion stamp, the final tie-break key
	seen   bool    // a route to this cell has been discovered
	closed bool    // this cell has been expanded
}

// f returns the node's total estimate g + h. It is always derived from its
// components, never stored.
func (n *node) f() float64 {
	return n.g + n.h
}

// frontier is the open set: a binary min-heap of arena indexes ordered by
// total estimate f, with deterministic tie-breaking by lower h, then
// earlier insertion. It owns the node arena, sized to the whole grid, so
// every heap comparison is two array lookups.
//
// Each cell has at most one live heap entry: improvements to a queued cell
// reorder it in place (heap.Fix) instead of pushing duplicates, so popped
// entries are never stale.
type frontier struct {
	arena []node
	items []int // heap of arena indexes
	stamp uint64
}

// newFrontier allocates an arena for size cells with every node unseen,
// unqueued, and parentless.
func newFrontier(size int) *frontier {
	f := &frontier{
		arena: make([]node, size),
		items: make([]int, 0, 64),
	}
	for i := range f.arena {
		f.arena[i].parent = -1
		f.arena[i].pos = -1
	}

	return f
}

// empty reports whether the frontier has no candidates awaiting expansion.
func (f *frontier) empty() bool { return len(f.items) == 0 }

// push enqueues the cell at arena index idx with a fresh insertion stamp.
func (f *frontier) push(idx int) {
	f.stamp++
	f.arena[idx].seq = f.stamp
	heap.Push(f, idx)
}

// popMin removes and returns the arena index with the smallest f,
// ties broken by lower h, then earlier insertion.
func (f *frontier) popMin() int {
	return heap.Pop(f).(int)
}

// fix restores heap order after the cell at arena index idx improved.
// The original insertion stamp is kept, so an improved cell retains its
// place in the tie-break order.
func (f *frontier) fix(idx int) {
	heap.Fix(f, f.arena[idx].pos)
}

// Len implements heap.Interface.
func (f *frontier) Len() int { return len(f.items) }

// Less implements heap.Interface: smaller f wins; on equal f, smaller h;
// on equal h, earlier insertion. The full rule keeps extraction order, and
// therefore returned paths, reproducible across runs.
func (f *frontier) Less(i, j int) bool {
	a, b := &f.arena[f.items[i]], &f.arena[f.items[j]]
	if a.f() != b.f() {
		return a.f() < b.f()
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.seq < b.seq
}

// Swap implements heap.Interface, keeping each node's heap position current.
func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.arena[f.items[i]].pos = i
	f.arena[f.items[j]].pos = j
}

// Push implements heap.Interface; x must be an arena index.
// Use push instead: it assigns the insertion stamp.
func (f *frontier) Push(x interface{}) {
	idx := x.(int)
	f.arena[idx].pos = len(f.items)
	f.items = append(f.items, idx)
}

// Pop implements heap.Interface, unmarking the node's heap position.
func (f *frontier) Pop() interface{} {
	old := f.items
	n := len(old)
	idx := old[n-1]
	f.items = old[:n-1]
	f.arena[idx].pos = -1

	return idx
}
