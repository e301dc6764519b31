// Package minesweeper implements Minesweeper with a keyboard cursor.
// Mines are laid on the first reveal or flag so the opening move is
// always safe.
package minesweeper

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

const hudHeight = 2

// Game adapts a Field to the registry.Game interface.
type Game struct {
	cfg    config.MinesweeperConfig
	level  config.MinefieldSize
	field  *Field
	rng    *rand.Rand
	cursor core.Point

	elapsed time.Duration // Play time since the first move
	started bool
	paused  bool

	runtime core.RuntimeConfig
}

// New creates a new Minesweeper game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("minesweeper", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "minesweeper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// Reset builds a fresh field for the configured difficulty.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	mcfg, err := config.LoadMinesweeper(cfg.ConfigPath, cfg.Difficulty)
	if err != nil {
		mcfg = config.DefaultMinesweeperConfig()
		if p, ok := config.ParsePreset(cfg.Difficulty); ok {
			mcfg.Preset = p
		}
	}
	g.cfg = mcfg
	g.level = mcfg.Field()
	g.field = NewField(g.level.Rows, g.level.Cols, g.level.Mines)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.cursor = core.Point{X: g.level.Cols / 2, Y: g.level.Rows / 2}
	g.elapsed = 0
	g.started = false
	g.paused = false
	g.runtime = cfg
}

// Field returns the current minefield.
func (g *Game) Field() *Field {
	return g.field
}

// Cursor returns the selected cell.
func (g *Game) Cursor() core.Point {
	return g.cursor
}

// Elapsed returns whole seconds played.
func (g *Game) Elapsed() int {
	return int(g.elapsed / time.Second)
}

// Step applies cursor and cell actions, then advances the timer by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.field == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		next := g.runtime
		next.Seed = g.rng.Int63()
		next.Difficulty = string(g.cfg.Preset)
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}

	over := g.field.Status() != StatusPlaying
	if in.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}
	if g.paused || over {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	switch {
	case in.Has(core.ActionPrimary), in.Has(core.ActionConfirm):
		g.layMines()
		g.field.Reveal(g.cursor.X, g.cursor.Y)
	case in.Has(core.ActionSecondary):
		g.layMines()
		g.field.ToggleFlag(g.cursor.X, g.cursor.Y)
	}

	if g.started && g.field.Status() == StatusPlaying {
		g.elapsed += dt
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y--
	case in.Has(core.ActionDown):
		g.cursor.Y++
	case in.Has(core.ActionLeft):
		g.cursor.X--
	case in.Has(core.ActionRight):
		g.cursor.X++
	}
	g.cursor.X = core.Clamp(g.cursor.X, 0, g.field.Cols()-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, g.field.Rows()-1)
}

// layMines places mines around the cursor on the first move.
func (g *Game) layMines() {
	if g.started {
		return
	}
	g.field.PlaceMines(g.cursor.X, g.cursor.Y, g.rng)
	g.started = true
}

// State reports revealed safe cells as the score.
func (g *Game) State() core.GameState {
	if g.field == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.field.RevealedSafe(),
		GameOver: g.field.Status() != StatusPlaying,
		Paused:   g.paused,
	}
}

var numberColors = [9]core.Color{
	0: core.ColorDefault,
	1: core.ColorBlue,
	2: core.ColorGreen,
	3: core.ColorRed,
	4: core.ColorMagenta,
	5: core.ColorOrange,
	6: core.ColorCyan,
	7: core.ColorWhite,
	8: core.ColorGray,
}

// Render draws the field with the cursor and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.field == nil {
		return
	}
	g.renderHUD(dst)

	f := g.field
	boxW, boxH := f.Cols()*2+2, f.Rows()+2
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	if area.W < boxW || area.H < boxH {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", boxW, boxH+hudHeight))
		return
	}
	box := area.Centered(boxW, boxH)
	dst.DrawBoxColor(box, core.ColorGray)

	if g.paused {
		dst.DrawOverlay("Paused", "Press P to continue")
		return
	}

	lost := f.Status() == StatusLost
	for y := 0; y < f.Rows(); y++ {
		for x := 0; x < f.Cols(); x++ {
			r, c := g.glyph(x, y, lost)
			dst.SetCell(box.X+2+x*2, box.Y+1+y, r, c)
		}
	}
	if f.Status() == StatusPlaying {
		dst.SetCell(box.X+1+g.cursor.X*2, box.Y+1+g.cursor.Y, '>', core.ColorYellow)
	}

	switch f.Status() {
	case StatusWon:
		dst.DrawOverlay("You Win!", fmt.Sprintf("Cleared in %ds  Press R", g.Elapsed()))
	case StatusLost:
		dst.DrawOverlay("Boom! Game Over", "Press R to restart")
	}
}

func (g *Game) glyph(x, y int, lost bool) (rune, core.Color) {
	f := g.field
	switch {
	case f.Flagged(x, y):
		if lost && !f.IsMine(x, y) {
			return 'x', core.ColorRed
		}
		return 'F', core.ColorRed
	case !f.Revealed(x, y):
		return '■', core.ColorGray
	case f.IsMine(x, y):
		return '*', core.ColorRed
	}
	n := f.Neighbors(x, y)
	if n == 0 {
		return '·', core.ColorGray
	}
	return rune('0' + n), numberColors[n]
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Minesweeper | %s  Mines: %d  Flags left: %d  Time: %ds",
		g.level.Name, g.field.Mines(), g.field.FlagsLeft(), g.Elapsed())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}
