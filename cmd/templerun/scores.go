package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akshaywadatkar/temple-run/internal/game"
	"github.com/akshaywadatkar/temple-run/internal/platform/tui"
	"github.com/akshaywadatkar/temple-run/internal/storage"
)

var flagPlainScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Browse the high-score table.

By default this opens an interactive scoreboard; use --plain to print
the top 10 to stdout instead.

Examples:
  templerun scores
  templerun scores --plain`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlainScores, "plain", false, "Print scores to stdout instead of the interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := game.New().ID()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagPlainScores {
		if err := tui.RunScoreboard(store, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Temple Run")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'templerun play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-9s  %-6s  %s\n", "Rank", "Player", "Score", "Distance", "Coins", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-9s  %-6s  %s\n", "----", "------", "-----", "--------", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-8d  %-9.0f  %-6d  %s\n",
			i+1, entry.Player, entry.Score, entry.Distance, entry.Coins,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
