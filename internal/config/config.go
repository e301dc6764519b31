// Package config provides YAML-based game configuration loading and
// difficulty presets for the minigames.
package config

import "time"

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Scoring TetrisScoring `yaml:"scoring"`
	Speed   TetrisSpeed   `yaml:"speed"`
	Display TetrisDisplay `yaml:"display"`
}

// TetrisBoard defines the playfield dimensions.
type TetrisBoard struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TetrisScoring defines line-clear rewards and level progression.
type TetrisScoring struct {
	LinePoints    []int `yaml:"line_points"`     // Points by simultaneous clears, index 0..4
	LinesPerLevel int   `yaml:"lines_per_level"` // Lines needed per level
}

// TetrisSpeed defines the gravity curve.
type TetrisSpeed struct {
	BaseIntervalMS int `yaml:"base_interval_ms"` // Drop interval at level 1
	MinIntervalMS  int `yaml:"min_interval_ms"`  // Floor applied to the curve
}

// TetrisDisplay toggles optional rendering aids.
type TetrisDisplay struct {
	Ghost bool `yaml:"ghost"`
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid     SnakeGrid        `yaml:"grid"`
	Speeds   SnakeSpeeds      `yaml:"speeds"`
	Gameplay SnakeGameplay    `yaml:"gameplay"`
	Preset   DifficultyPreset `yaml:"preset"`
}

// SnakeGrid defines the arena size in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeSpeeds defines the step interval per difficulty preset, in milliseconds.
type SnakeSpeeds struct {
	SlowMS   int `yaml:"slow_ms"`
	MediumMS int `yaml:"medium_ms"`
	FastMS   int `yaml:"fast_ms"`
}

// SnakeGameplay defines scoring parameters.
type SnakeGameplay struct {
	FoodPoints int `yaml:"food_points"`
}

// StepInterval returns the snake step interval for the configured preset.
func (c SnakeConfig) StepInterval() time.Duration {
	ms := c.Speeds.SlowMS
	switch c.Preset {
	case DifficultyNormal:
		ms = c.Speeds.MediumMS
	case DifficultyHard:
		ms = c.Speeds.FastMS
	}
	if ms <= 0 {
		ms = 150
	}
	return time.Duration(ms) * time.Millisecond
}

// MinesweeperConfig contains all configuration for the Minesweeper game.
type MinesweeperConfig struct {
	Levels MinesweeperLevels `yaml:"levels"`
	Preset DifficultyPreset  `yaml:"preset"`
}

// MinesweeperLevels maps each preset to a field layout.
type MinesweeperLevels struct {
	Beginner     MinefieldSize `yaml:"beginner"`
	Intermediate MinefieldSize `yaml:"intermediate"`
	Expert       MinefieldSize `yaml:"expert"`
}

// MinefieldSize defines a minefield.
type MinefieldSize struct {
	Name  string `yaml:"name"`
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Mines int    `yaml:"mines"`
}

// Field returns the minefield layout for the configured preset.
func (c MinesweeperConfig) Field() MinefieldSize {
	switch c.Preset {
	case DifficultyNormal:
		return c.Levels.Intermediate
	case DifficultyHard:
		return c.Levels.Expert
	default:
		return c.Levels.Beginner
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name selects easy.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case "", DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return DifficultyEasy, false
	}
}
