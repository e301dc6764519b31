package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Rows: 20,
			Cols: 10,
		},
		Scoring: TetrisScoring{
			LinePoints:    []int{0, 40, 100, 300, 1200},
			LinesPerLevel: 10,
		},
		Speed: TetrisSpeed{
			BaseIntervalMS: 1000,
			MinIntervalMS:  50,
		},
		Display: TetrisDisplay{
			Ghost: true,
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:  20,
			Height: 20,
		},
		Speeds: SnakeSpeeds{
			SlowMS:   150,
			MediumMS: 105, // 0.7 of slow
			FastMS:   60,  // 0.4 of slow
		},
		Gameplay: SnakeGameplay{
			FoodPoints: 10,
		},
		Preset: DifficultyEasy,
	}
}

// DefaultMinesweeperConfig returns the default Minesweeper configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Levels: MinesweeperLevels{
			Beginner:     MinefieldSize{Name: "Beginner", Rows: 9, Cols: 9, Mines: 10},
			Intermediate: MinefieldSize{Name: "Intermediate", Rows: 16, Cols: 16, Mines: 40},
			Expert:       MinefieldSize{Name: "Expert", Rows: 16, Cols: 30, Mines: 99},
		},
		Preset: DifficultyEasy,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	case "snake":
		return defaultSnakeYAML
	case "minesweeper":
		return defaultMinesweeperYAML
	default:
		return nil
	}
}
