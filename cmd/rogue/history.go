package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rogue/internal/platform/tui"
	"github.com/vovakirdan/tui-rogue/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse finished runs",
	Long: `Browse the run journal: one row per finished game, newest first,
with the message log of the selected run.

Use --plain to print the list instead of opening the browser.

Examples:
  rogue history
  rogue history --plain --limit 5`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var logCmd = &cobra.Command{
	Use:   "log <run>",
	Short: "Print the message log of a run",
	Long: `Print every archived message of a run, oldest first.
The run may be given by its full ID or any unique prefix.

Examples:
  rogue log 3f2a9c1e`,
	Args: cobra.ExactArgs(1),
	RunE: runLog,
}

var forgetCmd = &cobra.Command{
	Use:   "forget <run>",
	Short: "Delete a run from the journal",
	Args:  cobra.ExactArgs(1),
	RunE:  runForget,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print runs instead of opening the browser")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to print with --plain")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run journal: %w", err)
	}
	defer store.Close()

	if !flagPlain {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
			height = h
		}
		return tui.RunHistory(store, width, height)
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rogue play' and quit with q to record one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-8s  %-10s  %6s  %4s  %8s  %s\n", "Run", "Player", "Turns", "Maps", "Length", "Date")
	fmt.Printf("  %-8s  %-10s  %6s  %4s  %8s  %s\n", "---", "------", "-----", "----", "------", "----")

	for _, r := range runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-8s  %-10s  %6d  %4d  %8s  %s\n",
			r.ID.String()[:8], player, r.Turns, r.MapsVisited,
			r.Duration().Round(time.Second), r.StartedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Turns: %d  Longest: %d  Most maps: %d\n",
			stats.Runs, stats.TotalTurns, stats.LongestRun, stats.MostMaps)
	}
	return nil
}

func runLog(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run journal: %w", err)
	}
	defer store.Close()

	run, err := store.FindRun(args[0])
	if err != nil {
		return err
	}
	msgs, err := store.RunMessages(run.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s  seed %d  %d turns  %d maps\n", run.ID, run.Seed, run.Turns, run.MapsVisited)
	fmt.Println()
	for _, m := range msgs {
		fmt.Printf("  [%-10s] %s\n", m.Severity, m.Contents)
	}
	return nil
}

func runForget(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run journal: %w", err)
	}
	defer store.Close()

	run, err := store.FindRun(args[0])
	if err != nil {
		return err
	}
	if err := store.DeleteRun(run.ID); err != nil {
		return err
	}
	fmt.Printf("Forgot run %s.\n", run.ID)
	return nil
}
