// Package grid models a 2D occupancy map of walkable and blocked cells,
// the substrate for shortest-path search in gridpath.
//
// What:
//
//   - Grid wraps a rectangular [][]int input with a tunable WalkableThreshold.
//   - Answers bounds, walkability, and neighbor queries under Conn4 or Conn8.
//   - Maps coordinates to row-major indexes and back, for flat per-cell tables.
//   - Identifies connected walkable regions and answers reachability pre-checks.
//   - Parses text maps ('.'/'#' rows) for scenario files and tests.
//
// Why:
//
//   - Game maps and robotics occupancy grids: tile walkability, map regions.
//   - Search substrates: astar queries Neighbors and Index on every expansion.
//   - Fast feasibility: Connected answers "provably unreachable" without search.
//
// Complexity:
//
//   - New / Parse:  O(W×H), Memory: O(W×H).
//   - InBounds / IsWalkable / Index / CellAt: O(1).
//   - Neighbors:    O(d)       (d = number of neighbors, 4 or 8).
//   - Regions:      O(W×H×d), Memory: O(W×H).
//   - Connected:    O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - Options.WalkableThreshold: minimum value considered walkable.
//   - Options.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrRagged: rows have differing lengths.
//   - ErrBadRune: unrecognized character in a text map.
//
// A Grid is immutable once built: construction captures the input, and no
// method mutates state. Any number of concurrent searches may share one
// Grid without coordination.
package grid
