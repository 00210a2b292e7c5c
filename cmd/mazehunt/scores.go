package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mazehunt/mazehunt/internal/registry"
	"github.com/mazehunt/mazehunt/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Show the top 10 high scores for a variant.

Examples:
  mazehunt scores mazehunt
  mazehunt scores mazehunt_patrol`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant: %s (run 'mazehunt list' to see available variants)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}

	// Get variant title for display
	title := gameID
	for _, info := range registry.List() {
		if info.ID == gameID {
			title = info.Title
			break
		}
	}

	fmt.Printf("High scores for %s:\n\n", title)

	if len(scores) == 0 {
		fmt.Println("  No scores yet. Play the game to set one!")
		return nil
	}

	fmt.Printf("  %-4s %-8s %s\n", "#", "Score", "Date")
	fmt.Println("  " + "----------------------------------")
	for i, entry := range scores {
		fmt.Printf("  %-4d %-8d %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("\n  Best: %d\n", best)
	}

	deepest, err := store.DeepestLevel(gameID)
	if err == nil && deepest > 0 {
		fmt.Printf("  Deepest level reached: %d\n", deepest)
	}

	return nil
}
