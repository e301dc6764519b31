// Package tetris implements the falling-block puzzle: a board with a
// collision oracle, clockwise rotation with simple wall kicks, bottom-up
// line clearing, and a level-driven gravity curve.
package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

const hudHeight = 2

// Game adapts an Engine to the registry.Game interface.
type Game struct {
	engine *Engine
	frame  Frame
	ghost  bool

	score int
	level int
	lines int
}

// New creates a Tetris game. The engine is built on Reset.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset loads the configuration and starts a fresh game.
// An unreadable config falls back to the built-in defaults.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tcfg, err := config.LoadTetris(cfg.ConfigPath)
	if err != nil {
		tcfg = config.DefaultTetrisConfig()
	}
	g.ghost = tcfg.Display.Ghost
	g.engine = NewEngine(Options{
		Rows:     tcfg.Board.Rows,
		Cols:     tcfg.Board.Cols,
		Rules:    RulesFromConfig(tcfg),
		Seed:     cfg.Seed,
		Renderer: RendererFunc(g.captureFrame),
		Scores:   ScoreFunc(g.scoreChanged),
	})
	g.engine.Start()
}

func (g *Game) captureFrame(f Frame) {
	g.frame = f
}

func (g *Game) scoreChanged(score, level, lines int) {
	g.score = score
	g.level = level
	g.lines = lines
}

// Engine returns the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Epoch reports the engine epoch so the platform can drop stale ticks.
func (g *Game) Epoch() uint64 {
	if g.engine == nil {
		return 0
	}
	return g.engine.Epoch()
}

// Step maps actions to intents, then advances gravity by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.engine.Apply(IntentStart)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.engine.Apply(IntentTogglePause)
	}

	switch {
	case in.Has(core.ActionLeft):
		g.engine.Apply(IntentMoveLeft)
	case in.Has(core.ActionRight):
		g.engine.Apply(IntentMoveRight)
	}
	if in.Has(core.ActionUp) {
		g.engine.Apply(IntentRotate)
	}
	if in.Has(core.ActionDown) {
		g.engine.Apply(IntentSoftDrop)
	}
	if in.Has(core.ActionPrimary) {
		g.engine.Apply(IntentHardDrop)
	}

	if dt > 0 {
		g.engine.Update(dt)
	}
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.score,
		GameOver: g.engine.GameOver(),
		Paused:   g.engine.Paused(),
	}
}

// Render draws the last captured frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	f := g.frame
	if len(f.Board) == 0 {
		return
	}
	rows, cols := len(f.Board), len(f.Board[0])
	boardW := cols*2 + 2
	boardH := rows + 2
	panelW := 12

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	if area.W < boardW+panelW || area.H < boardH {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", boardW+panelW, boardH+hudHeight))
		return
	}
	layout := area.Centered(boardW+panelW, boardH)
	box := core.NewRect(layout.X, layout.Y, boardW, boardH)

	dst.DrawBoxColor(box, core.ColorGray)
	for y, row := range f.Board {
		for x, v := range row {
			if v != 0 {
				drawBlock(dst, box, x, y, '█', core.Color(v))
			} else {
				dst.SetCell(box.X+1+x*2+1, box.Y+1+y, '.', core.ColorGray)
			}
		}
	}

	if f.HasActive {
		if g.ghost && f.Phase != PhaseGameOver && f.GhostY > f.Active.Pos.Y {
			ghost := f.Active
			ghost.Pos.Y = f.GhostY
			for _, c := range ghost.Cells() {
				drawBlock(dst, box, c.X, c.Y, '░', core.ColorGray)
			}
		}
		for _, c := range f.Active.Cells() {
			drawBlock(dst, box, c.X, c.Y, '█', core.Color(f.Active.Kind))
		}
	}

	g.renderPanel(dst, box.Right()+2, box.Y, f)

	switch f.Phase {
	case PhaseGameOver:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score: %d  Press R", f.Score))
	case PhasePaused:
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

// drawBlock paints board cell (x, y) as two characters inside box.
// Cells above the top edge are skipped.
func drawBlock(dst *core.Screen, box core.Rect, x, y int, r rune, c core.Color) {
	if y < 0 {
		return
	}
	sx := box.X + 1 + x*2
	sy := box.Y + 1 + y
	dst.SetCell(sx, sy, r, c)
	dst.SetCell(sx+1, sy, r, c)
}

func (g *Game) renderPanel(dst *core.Screen, x, y int, f Frame) {
	dst.DrawTextColor(x, y+1, "NEXT", core.ColorWhite)
	if f.HasNext {
		for ry, row := range f.Next.Shape {
			for rx, v := range row {
				if v != 0 {
					dst.SetCell(x+rx*2, y+3+ry, '█', core.Color(f.Next.Kind))
					dst.SetCell(x+rx*2+1, y+3+ry, '█', core.Color(f.Next.Kind))
				}
			}
		}
	}

	dst.DrawTextColor(x, y+8, "SCORE", core.ColorWhite)
	dst.DrawText(x, y+9, fmt.Sprintf("%d", f.Score))
	dst.DrawTextColor(x, y+11, "LEVEL", core.ColorWhite)
	dst.DrawText(x, y+12, fmt.Sprintf("%d", f.Level))
	dst.DrawTextColor(x, y+14, "LINES", core.ColorWhite)
	dst.DrawText(x, y+15, fmt.Sprintf("%d", f.Lines))
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris | Score: %d  Level: %d  Lines: %d", g.score, g.level, g.lines)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}
