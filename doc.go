// Package gridpath is an in-memory toolkit for shortest-path search on
// 2D occupancy grids: maps of walkable and blocked cells.
//
// 🚀 What is gridpath?
//
//	A small, focused library that brings together:
//		• Grid primitives: immutable rectangular occupancy maps with
//		  4- or 8-directional connectivity and strict input validation
//		• Region analysis: connected walkable regions and fast
//		  reachability pre-checks
//		• A* search: optimal paths under admissible heuristics, with a
//		  deterministic frontier, pluggable step costs, expansion bounds
//		  and cooperative cancellation
//
// ✨ Why choose gridpath?
//
//   - Deterministic – identical inputs always yield identical paths
//   - Rock-solid guarantees – strict validation, in-code docs & hooks
//   - Concurrency-friendly – grids are immutable; run any number of
//     searches against one grid without coordination
//   - Extensible – plug in your own heuristic and step-cost functions
//
// Everything is organized under two subpackages plus a CLI:
//
//	grid/         — Grid, Cell, connectivity, validation, regions
//	astar/        — A* driver, frontier, heuristics, path reconstruction
//	cmd/gridpath/ — scenario runner: load a map, search, render the path
//
// Quick ASCII example:
//
//	S . . . #
//	. # # . #
//	. . . . .
//	. # # # .
//	. . . . G
//
//	a 5×5 map where A* traces an optimal 8-move route from S to G.
//
// Dive into the package docs of grid and astar for full examples and
// complexity notes.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
