package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/registry"
	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	flagRecent bool
	flagClear  bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the longest runs for a mode",
	Long: `Display the longest runs for the given mode (default: starfall).

Examples:
  starfall scores
  starfall scores dodge
  starfall scores --recent
  starfall scores dodge --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the longest")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history for the mode")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := modeArg(args)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Printf("Cleared run history for %s.\n", title)
		return
	}

	heading := "Longest runs"
	fetch := store.TopRuns
	if flagRecent {
		heading = "Recent runs"
		fetch = store.RecentRuns
	}

	runs, err := fetch(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'starfall play %s' to set the first time!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "#", "Time", "Played", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "-", "----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6s  %-8s  %s\n", i+1, r.Clock(), r.Source, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Runs: %d   Best: %s   Average: %s\n",
			stats.RunsCount,
			storage.RunEntry{Seconds: stats.BestSeconds}.Clock(),
			storage.RunEntry{Seconds: int(stats.AvgSeconds)}.Clock())
	}
}
