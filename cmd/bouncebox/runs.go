package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bouncebox/internal/storage"
)

var (
	flagRunsLimit   int
	flagRunsLongest bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Display recent runs from the history database.

Examples:
  bouncebox runs
  bouncebox runs --limit 20
  bouncebox runs --longest`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsLongest, "longest", false, "Order by frame count instead of start time")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}

	var runs []storage.Run
	title := "Recent runs"
	if flagRunsLongest {
		title = "Longest runs"
		runs, err = store.LongestRuns(flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(flagRunsLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	total, err := store.RunCount()
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error counting runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%d recorded)\n", title, total)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Start one with 'bouncebox run'.")
		return
	}

	fmt.Printf("  %-8s  %-8s  %-10s  %-9s  %-8s  %-8s  %s\n",
		"ID", "Backend", "User", "Box", "Frames", "Bounces", "Started")
	fmt.Printf("  %-8s  %-8s  %-10s  %-9s  %-8s  %-8s  %s\n",
		"--", "-------", "----", "---", "------", "-------", "-------")

	for _, r := range runs {
		fmt.Printf("  %-8s  %-8s  %-10s  %-9s  %-8d  %-8d  %s (%s)\n",
			shortID(r.ID),
			r.Backend,
			r.User,
			fmt.Sprintf("%gx%g", r.BoxW, r.BoxH),
			r.Ticks,
			r.HorizontalBounces+r.VerticalBounces,
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			r.Duration().Round(time.Second),
		)
	}
}

// shortID trims a run ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
