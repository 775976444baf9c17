package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent duels",
	Long: `Display the top single-player runs, the stored high score and the
most recent duels with the overall tally.

Examples:
  bomber scores
  bomber scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows per table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := printScores(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}
	fmt.Println()
	if err := printDuels(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving duels: %v\n", err)
	}
}

func printScores(store *storage.Store) error {
	scores, err := store.TopScores("bomber", flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Bomber")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bomber play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Maps", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.MapsCleared, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore("bomber"); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

func printDuels(store *storage.Store) error {
	duels, err := store.RecentDuels("bomber_duel", flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Duels")
	fmt.Println()

	if len(duels) == 0 {
		fmt.Println("No duels recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-8s  %-6s  %-6s  %s\n", "P1", "P2", "Rounds", "Winner", "Date")
	fmt.Printf("  %-8s  %-8s  %-6s  %-6s  %s\n", "--", "--", "------", "------", "----")

	for _, d := range duels {
		winner := "draw"
		if d.Winner > 0 {
			winner = fmt.Sprintf("P%d", d.Winner)
		}
		fmt.Printf("  %-8d  %-8d  %-6d  %-6s  %s\n",
			d.Score1, d.Score2, d.Rounds, winner, d.CreatedAt.Format("2006-01-02 15:04"))
	}

	tally, err := store.DuelTally("bomber_duel")
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("P1 wins: %d  P2 wins: %d  Draws: %d\n", tally.Player1Wins, tally.Player2Wins, tally.Draws)
	return nil
}
