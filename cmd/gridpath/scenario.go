package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// scenarioCell is a YAML-friendly cell coordinate.
type scenarioCell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// cell converts to the library coordinate type.
func (c scenarioCell) cell() grid.Cell {
	return grid.Cell{X: c.X, Y: c.Y}
}

// scenario is the YAML schema for one search task: the map rows, the
// endpoints, and optional search settings. Flags override file settings.
type scenario struct {
	Grid          []string     `yaml:"grid"`
	Start         scenarioCell `yaml:"start"`
	Goal          scenarioCell `yaml:"goal"`
	Diagonal      bool         `yaml:"diagonal"`
	Heuristic     string       `yaml:"heuristic"`
	MaxExpansions int          `yaml:"max_expansions"`
}

// loadScenario reads and decodes a scenario file.
func loadScenario(path string) (*scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var sc scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	if len(sc.Grid) == 0 {
		return nil, fmt.Errorf("scenario %s: grid is empty", path)
	}

	return &sc, nil
}

// build parses the scenario's map rows into a Grid with the configured
// connectivity.
func (sc *scenario) build() (*grid.Grid, error) {
	opts := grid.DefaultOptions()
	if sc.Diagonal {
		opts.Conn = grid.Conn8
	}

	return grid.Parse(sc.Grid, opts)
}

// heuristicByName maps scenario/flag names onto the built-in heuristics.
// An empty name defers to the library default for the grid's connectivity.
func heuristicByName(name string) (astar.Heuristic, error) {
	switch strings.ToLower(name) {
	case "":
		return nil, nil
	case "manhattan":
		return astar.Manhattan, nil
	case "chebyshev":
		return astar.Chebyshev, nil
	case "euclidean":
		return astar.Euclidean, nil
	case "octile":
		return astar.Octile, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q (want manhattan, chebyshev, euclidean, or octile)", name)
	}
}

// renderPath draws the map with the route overlaid: 'S' start, 'G' goal,
// '*' intermediate path cells, '.' walkable, '#' blocked.
func renderPath(g *grid.Grid, path []grid.Cell, start, goal grid.Cell) string {
	onPath := make(map[grid.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := grid.Cell{X: x, Y: y}
			switch {
			case c == start:
				b.WriteByte('S')
			case c == goal:
				b.WriteByte('G')
			case onPath[c]:
				b.WriteByte('*')
			case g.IsWalkable(c):
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
