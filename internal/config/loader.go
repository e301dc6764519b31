package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configDirName is the per-user directory under $HOME holding configs and data.
const configDirName = ".minigames"

// LoadTetris loads Tetris configuration.
// Search order: customPath -> ~/.minigames/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, err := load("tetris", customPath, defaultTetrisYAML, DefaultTetrisConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, validateTetris(cfg)
}

// LoadSnake loads Snake configuration and applies the difficulty preset.
// An empty preset keeps the preset from the file.
func LoadSnake(customPath string, preset string) (SnakeConfig, error) {
	cfg, err := load("snake", customPath, defaultSnakeYAML, DefaultSnakeConfig)
	if err != nil {
		return cfg, err
	}
	if err := applyPreset(&cfg.Preset, preset); err != nil {
		return cfg, err
	}
	if cfg.Grid.Width < 5 || cfg.Grid.Height < 5 {
		return cfg, fmt.Errorf("config: snake grid %dx%d is too small", cfg.Grid.Width, cfg.Grid.Height)
	}
	return cfg, nil
}

// LoadMinesweeper loads Minesweeper configuration and applies the difficulty preset.
func LoadMinesweeper(customPath string, preset string) (MinesweeperConfig, error) {
	cfg, err := load("minesweeper", customPath, defaultMinesweeperYAML, DefaultMinesweeperConfig)
	if err != nil {
		return cfg, err
	}
	if err := applyPreset(&cfg.Preset, preset); err != nil {
		return cfg, err
	}
	field := cfg.Field()
	// The first reveal keeps a 3x3 area clear, so at least nine cells stay free.
	if field.Rows <= 0 || field.Cols <= 0 || field.Mines < 0 || field.Mines > field.Rows*field.Cols-9 {
		return cfg, fmt.Errorf("config: invalid minefield %dx%d with %d mines", field.Rows, field.Cols, field.Mines)
	}
	return cfg, nil
}

// load resolves a game config following the search order. A custom path
// that cannot be read or parsed is an error; the other locations are
// best-effort and fall through.
func load[T any](gameID, customPath string, embedded []byte, fallback func() T) (T, error) {
	var cfg T

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		var local T
		if err := yaml.Unmarshal(data, &local); err == nil {
			return local, nil
		}
	}

	// Use embedded default YAML
	var def T
	if err := yaml.Unmarshal(embedded, &def); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return def, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "configs", filename)
}

func applyPreset(dst *DifficultyPreset, name string) error {
	if name == "" {
		if *dst == "" {
			*dst = DifficultyEasy
		}
		return nil
	}
	preset, ok := ParsePreset(name)
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
	*dst = preset
	return nil
}

func validateTetris(cfg TetrisConfig) error {
	if cfg.Board.Rows < 4 || cfg.Board.Cols < 4 {
		return fmt.Errorf("config: tetris board %dx%d is too small", cfg.Board.Rows, cfg.Board.Cols)
	}
	if len(cfg.Scoring.LinePoints) != 5 {
		return fmt.Errorf("config: tetris line_points needs 5 entries, got %d", len(cfg.Scoring.LinePoints))
	}
	if cfg.Scoring.LinesPerLevel <= 0 {
		return fmt.Errorf("config: tetris lines_per_level must be positive")
	}
	if cfg.Speed.BaseIntervalMS <= 0 || cfg.Speed.MinIntervalMS <= 0 {
		return fmt.Errorf("config: tetris drop intervals must be positive")
	}
	return nil
}
