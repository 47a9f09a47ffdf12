// Command gridpath runs grid shortest-path scenarios from the command line.
//
// A scenario is a YAML file describing an occupancy map plus the start and
// goal cells; see scenario.go for the schema. The find subcommand searches
// the map and renders the route; the regions subcommand reports connected
// walkable regions and endpoint reachability.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit codes mirror the three search outcomes so scripts can branch on
// them: 0 found, 1 no path, 2 bound exceeded, 3 usage or input error.
const (
	exitFound         = 0
	exitNoPath        = 1
	exitBoundExceeded = 2
	exitError         = 3
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger

	// exitCode is set by subcommands and consumed by main.
	exitCode = exitFound
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "gridpath",
	Short: "gridpath - A* shortest-path search on 2D occupancy grids",
	Long: `gridpath searches 2D occupancy maps for minimal-cost routes.

Maps, endpoints, and search options live in YAML scenario files:

  grid:
    - "....#"
    - ".##.#"
    - "....."
    - ".###."
    - "....."
  start: {x: 0, y: 0}
  goal:  {x: 4, y: 4}

'.' cells are walkable, '#' cells are blocked. The find subcommand prints
the map with the discovered route overlaid; regions reports connectivity.`,
	// Runtime failures are not usage mistakes; keep the flag help out of them.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging (per-expansion traces)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitError)
	}
	os.Exit(exitCode)
}
