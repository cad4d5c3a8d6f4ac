// bouncebox animates a rectangle bouncing around the terminal.
//
// Usage:
//
//	bouncebox run              - Animate the box in this terminal
//	bouncebox serve            - Start SSH server, one box per session
//	bouncebox runs             - Show recorded runs
//	bouncebox backends         - List available backends
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for a reproducible layout
//	--db <path>         - Set database path (default: ~/.bouncebox/runs.db)
//	--config <path>     - Use a custom bounce.yaml
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/bouncebox/internal/platform/headless"
	_ "github.com/vovakirdan/bouncebox/internal/platform/tcellui"
	_ "github.com/vovakirdan/bouncebox/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bouncebox",
	Short: "Bouncebox - a rectangle bouncing around your terminal",
	Long: `Bouncebox draws a randomly sized rectangle that drifts diagonally
across the terminal and bounces off its edges.

Available commands:
  run       - Animate the box in this terminal
  serve     - Start SSH server, every session gets its own box
  runs      - Show recorded runs
  backends  - List available backends

Examples:
  bouncebox run
  bouncebox run --backend tcell --fps 30
  bouncebox run --backend headless --frames 1000 --seed 42
  bouncebox serve --ssh :2222
  bouncebox runs --longest`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bouncebox/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom bounce.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}
