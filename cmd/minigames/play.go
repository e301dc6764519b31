package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/platform/tui"
	"github.com/vovakirdan/minigames/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move (Tetris: Up rotates, Down soft-drops)
  Space       - Hard drop (Tetris), reveal (Minesweeper)
  F           - Flag (Minesweeper)
  P           - Pause
  R           - Restart
  Esc/B       - Leave a paused or finished game
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a screenshot to ~/.minigames/screenshots

Examples:
  minigames play tetris
  minigames play snake --difficulty hard
  minigames play minesweeper --difficulty normal
  minigames play tetris --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'minigames list' to see available games", gameID)
	}

	// Games fall back to defaults on a bad config, so surface the error here.
	if err := checkConfig(gameID, flagConfig, flagDifficulty); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	cfg.ConfigPath = flagConfig

	store := openStore()
	defer closeStore(store)

	if _, err := tui.Run(game, store, logger, cfg); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

// checkConfig loads the game's config the same way the game will.
func checkConfig(gameID, path, difficulty string) error {
	var err error
	switch gameID {
	case "tetris":
		_, err = config.LoadTetris(path)
	case "snake":
		_, err = config.LoadSnake(path, difficulty)
	case "minesweeper":
		_, err = config.LoadMinesweeper(path, difficulty)
	}
	return err
}
