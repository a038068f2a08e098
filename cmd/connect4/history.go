package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvoronin/connect4/internal/game"
	"github.com/nvoronin/connect4/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded match results",
	Long: `Display the most recent finished matches and the win totals.

Examples:
  connect4 history
  connect4 history --limit 50
  connect4 history --db ./matches.db`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "How many matches to show")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.RecentMatches(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No finished matches yet.")
		fmt.Println()
		fmt.Println("Play 'connect4 play' to the end to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-7s  %-7s  %s\n", "#", "Played", "Winner", "Board", "Moves")
	fmt.Printf("  %-4s  %-16s  %-7s  %-7s  %s\n", "----", "------", "------", "-----", "-----")

	for i, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-7s  %-7s  %d\n",
			i+1, dateStr, e.Winner, fmt.Sprintf("%dx%d", e.Rows, e.Cols), e.Moves)
	}

	fmt.Println()
	redWins, redErr := store.WinCount(game.TurnRed)
	blueWins, blueErr := store.WinCount(game.TurnBlue)
	if redErr == nil && blueErr == nil {
		fmt.Printf("Totals: Red %d, Blue %d\n", redWins, blueWins)
	}
}
