package tetris

import (
	"math"
	"time"

	"github.com/vovakirdan/minigames/internal/config"
)

// Rules holds the scoring table and gravity curve.
type Rules struct {
	LinePoints    [5]int        // Points for 0..4 rows cleared at once, multiplied by level
	LinesPerLevel int           // Cleared lines needed per level
	BaseInterval  time.Duration // Drop interval at level 1
	MinInterval   time.Duration // Floor for the drop interval
}

// DefaultRules returns the classic scoring table with a 1s base interval
// and a 50ms floor.
func DefaultRules() Rules {
	return Rules{
		LinePoints:    [5]int{0, 40, 100, 300, 1200},
		LinesPerLevel: 10,
		BaseInterval:  time.Second,
		MinInterval:   50 * time.Millisecond,
	}
}

// RulesFromConfig converts a loaded Tetris config into Rules. Missing or
// invalid values keep their defaults.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	r := DefaultRules()
	if len(cfg.Scoring.LinePoints) == len(r.LinePoints) {
		copy(r.LinePoints[:], cfg.Scoring.LinePoints)
	}
	if cfg.Scoring.LinesPerLevel > 0 {
		r.LinesPerLevel = cfg.Scoring.LinesPerLevel
	}
	if cfg.Speed.BaseIntervalMS > 0 {
		r.BaseInterval = time.Duration(cfg.Speed.BaseIntervalMS) * time.Millisecond
	}
	if cfg.Speed.MinIntervalMS > 0 {
		r.MinInterval = time.Duration(cfg.Speed.MinIntervalMS) * time.Millisecond
	}
	return r
}

// Level returns the level reached after clearing lines in total.
func (r Rules) Level(lines int) int {
	return lines/r.LinesPerLevel + 1
}

// Points returns the reward for clearing n rows at once at the given level.
func (r Rules) Points(n, level int) int {
	if n < 0 || n >= len(r.LinePoints) {
		return 0
	}
	return r.LinePoints[n] * level
}

// DropInterval returns the gravity interval for level:
// base * (0.8 - (level-1)*0.007)^(level-1), never below MinInterval.
// The base of the power reaches zero past level 115; from there on the
// curve is pinned to the floor so it never climbs back or overflows.
func (r Rules) DropInterval(level int) time.Duration {
	n := float64(level - 1)
	b := 0.8 - n*0.007
	if b <= 0 {
		return r.MinInterval
	}
	d := float64(r.BaseInterval) * math.Pow(b, n)
	switch {
	case math.IsNaN(d) || d < float64(r.MinInterval):
		return r.MinInterval
	case math.IsInf(d, 0) || d > float64(r.BaseInterval):
		return max(r.BaseInterval, r.MinInterval)
	}
	return time.Duration(d)
}
