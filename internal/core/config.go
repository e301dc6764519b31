package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Tick driver rate per second (default 60)
	Seed       int64  // RNG seed for deterministic gameplay
	ConfigPath string // Optional path to a game YAML config
	Difficulty string // Difficulty preset name: easy, normal, hard
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Running reports whether the game wants tick deltas delivered.
func (s GameState) Running() bool {
	return !s.GameOver && !s.Paused
}

// StepResult is returned by Game.Step() after each input or tick.
type StepResult struct {
	State GameState
}
