package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/platform/tui"
	"github.com/vovakirdan/minigames/internal/registry"
	"github.com/vovakirdan/minigames/internal/storage"
)

var flagClearScore bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the best recorded score of every game, or of one game.

Examples:
  minigames scores
  minigames scores tetris
  minigames scores snake --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScore, "clear", false, "Delete the stored best for the given game")
}

func runScores(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer closeStore(store)

	if len(args) == 0 {
		if flagClearScore {
			return fmt.Errorf("--clear needs a game")
		}
		rows, err := tui.LoadScoreRows(store)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "High Scores")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-12s  %-10s  %s\n", "Game", "Best", "Updated")
		fmt.Fprintf(out, "  %-12s  %-10s  %s\n", "----", "----", "-------")
		for _, r := range rows {
			best := "-"
			if r.Score > 0 {
				best = fmt.Sprintf("%d", r.Score)
			}
			fmt.Fprintf(out, "  %-12s  %-10s  %s\n", r.Title, best, r.Updated)
		}
		return nil
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'minigames list' to see available games", gameID)
	}

	if flagClearScore {
		if err := store.ClearScore(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared best score for %s.\n", gameID)
		return nil
	}

	best, err := store.HighScore(gameID)
	if err != nil {
		return err
	}
	if best == 0 {
		fmt.Fprintln(out, "No score recorded yet.")
		fmt.Fprintf(out, "Play 'minigames play %s' to set the first high score!\n", gameID)
		return nil
	}
	fmt.Fprintf(out, "Best: %d\n", best)
	return nil
}
