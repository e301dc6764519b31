// Package snake implements the classic Snake game on a walled grid.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

const hudHeight = 2

// Game implements the Snake game.
type Game struct {
	cfg      config.SnakeConfig
	rng      *rand.Rand
	moves    uint64
	score    int
	interval time.Duration
	elapsed  time.Duration // Time accumulated toward the next move

	// Snake state
	snake     []core.Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move

	gridW int
	gridH int
	food  core.Point

	// Screen dimensions
	runtime core.RuntimeConfig
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	scfg, err := config.LoadSnake(cfg.ConfigPath, cfg.Difficulty)
	if err != nil {
		scfg = config.DefaultSnakeConfig()
		if p, ok := config.ParsePreset(cfg.Difficulty); ok {
			scfg.Preset = p
		}
	}
	g.cfg = scfg
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.moves = 0
	g.score = 0
	g.elapsed = 0
	g.interval = scfg.StepInterval()
	g.gameOver = false
	g.won = false
	g.paused = false
	g.gridW = scfg.Grid.Width
	g.gridH = scfg.Grid.Height
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.updateFit()
	g.initSnake()
	g.spawnFood()
}

// Resize records new screen dimensions without restarting the round.
// The game is held while the arena does not fit.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.updateFit()
}

func (g *Game) updateFit() {
	requiredW, requiredH := g.requiredSize()
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// requiredSize returns the screen size needed to draw the arena.
// Each cell is two characters wide.
func (g *Game) requiredSize() (int, int) {
	return g.gridW*2 + 2, g.gridH + 2 + hudHeight
}

// initSnake places a three-segment snake heading right from the grid center.
func (g *Game) initSnake() {
	cx, cy := g.gridW/2, g.gridH/2
	g.snake = []core.Point{
		{X: cx, Y: cy}, // Head
		{X: cx - 1, Y: cy},
		{X: cx - 2, Y: cy},
	}
	g.direction = DirRight
	g.nextDir = DirRight
}

// spawnFood places food at a random empty cell. A full grid wins the game.
func (g *Game) spawnFood() {
	var emptyCells []core.Point
	for y := 0; y < g.gridH; y++ {
		for x := 0; x < g.gridW; x++ {
			p := core.Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		g.food = core.Point{X: -1, Y: -1}
		g.won = true
		return
	}

	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step applies input, then advances the snake by whole intervals of dt.
func (g *Game) Step(input core.InputFrame, dt time.Duration) core.StepResult {
	if input.Has(core.ActionRestart) {
		next := g.runtime
		next.Seed = g.rng.Int63()
		next.Difficulty = string(g.cfg.Preset)
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	g.elapsed += dt
	for g.elapsed >= g.interval && !g.gameOver && !g.won {
		g.elapsed -= g.interval
		g.moveSnake()
	}

	return core.StepResult{State: g.State()}
}

// processInput handles direction changes.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	// Prevent instant reversal
	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// moveSnake moves the snake one cell in the buffered direction.
func (g *Game) moveSnake() {
	if len(g.snake) == 0 {
		return
	}
	g.moves++
	g.direction = g.nextDir

	head := g.snake[0]
	var newHead core.Point
	switch g.direction {
	case DirUp:
		newHead = core.Point{X: head.X, Y: head.Y - 1}
	case DirDown:
		newHead = core.Point{X: head.X, Y: head.Y + 1}
	case DirLeft:
		newHead = core.Point{X: head.X - 1, Y: head.Y}
	case DirRight:
		newHead = core.Point{X: head.X + 1, Y: head.Y}
	}

	if newHead.X < 0 || newHead.X >= g.gridW || newHead.Y < 0 || newHead.Y >= g.gridH {
		g.gameOver = true
		return
	}

	eating := newHead == g.food

	// The tail vacates its cell this move unless the snake is growing.
	checkLen := len(g.snake)
	if !eating {
		checkLen--
	}
	for i := range checkLen {
		if g.snake[i] == newHead {
			g.gameOver = true
			return
		}
	}

	g.snake = append([]core.Point{newHead}, g.snake...)
	if eating {
		g.score += g.cfg.Gameplay.FoodPoints
		g.spawnFood()
		return
	}
	g.snake = g.snake[:len(g.snake)-1]
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	requiredW, requiredH := g.requiredSize()
	if g.tooSmall || dst.Width() < requiredW || dst.Height() < requiredH {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", requiredW, requiredH))
		return
	}

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	box := area.Centered(g.gridW*2+2, g.gridH+2)
	dst.DrawBoxColor(box, core.ColorGreen)

	cell := func(p core.Point, r rune, c core.Color) {
		x := box.X + 1 + p.X*2
		y := box.Y + 1 + p.Y
		dst.SetCell(x, y, r, c)
		dst.SetCell(x+1, y, r, c)
	}

	for i, seg := range g.snake {
		if i == 0 {
			cell(seg, '█', core.ColorDarkGreen)
		} else {
			cell(seg, '▓', core.ColorGreen)
		}
	}
	if g.food.X >= 0 {
		x := box.X + 1 + g.food.X*2
		dst.SetCell(x, box.Y+1+g.food.Y, '(', core.ColorRed)
		dst.SetCell(x+1, box.Y+1+g.food.Y, ')', core.ColorRed)
	}

	switch {
	case g.won:
		dst.DrawOverlay("You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score: %d  Press R", g.score))
	case g.paused:
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | Score: %d  Length: %d  Speed: %s", g.score, len(g.snake), g.cfg.Preset)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
