package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagRunsLimit   int
	flagRunsRecent  bool
	flagRunsPattern string
	flagRunsClear   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Display recorded runs, longest first.

A run is recorded when a board that has advanced at least one generation
dies out, is cleared, or is closed. Board contents are never stored.

Examples:
  life runs
  life runs --recent
  life runs --pattern glider
  life runs --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsRecent, "recent", false, "Show the most recent runs instead of the longest")
	runsCmd.Flags().StringVar(&flagRunsPattern, "pattern", "", "Only show runs started from this pattern")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	var runs []storage.RunEntry
	title := "Longest runs"
	switch {
	case flagRunsPattern != "":
		runs, err = store.PatternRuns(flagRunsPattern, flagRunsLimit)
		title = fmt.Sprintf("Longest runs - %s", flagRunsPattern)
	case flagRunsRecent:
		runs, err = store.RecentRuns(flagRunsLimit)
		title = "Recent runs"
	default:
		runs, err = store.TopRuns(flagRunsLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'life play' and start the simulation to record one!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-9s  %-14s  %-8s  %s\n",
		"#", "Gens", "Peak", "Start", "Board", "Pattern", "End", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-9s  %-14s  %-8s  %s\n",
		"-", "----", "----", "-----", "-----", "-------", "---", "----")

	for i, r := range runs {
		pattern := r.Pattern
		if pattern == "" {
			pattern = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-9s  %-14s  %-8s  %s\n",
			i+1, r.Generations, r.PeakPopulation, r.InitialPopulation,
			fmt.Sprintf("%dx%d", r.Width, r.Height), pattern, r.EndReason,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Extinct: %d  Longest: %d  Average: %.1f\n",
			stats.Runs, stats.Extinctions, stats.LongestRun, stats.AvgGenerations)
	}
	return nil
}
