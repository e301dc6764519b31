package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/minigames/internal/core"
)

// Phase is the engine's lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Intent is a discrete player request.
type Intent int

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentSoftDrop
	IntentRotate
	IntentHardDrop
	IntentTogglePause
	IntentStart
)

// Frame is a snapshot of everything needed to draw the game.
// It shares nothing mutable with the engine.
type Frame struct {
	Board     [][]uint8
	Active    Piece
	HasActive bool
	Next      Piece
	HasNext   bool
	GhostY    int // Row where Active would land
	Score     int
	Level     int
	Lines     int
	Phase     Phase
}

// Renderer receives a frame after every state transition.
type Renderer interface {
	Render(f Frame)
}

// ScoreSink is notified when score, level or lines change.
type ScoreSink interface {
	ScoreChanged(score, level, lines int)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame)

// Render calls fn(f).
func (fn RendererFunc) Render(f Frame) { fn(f) }

// ScoreFunc adapts a function to ScoreSink.
type ScoreFunc func(score, level, lines int)

// ScoreChanged calls fn(score, level, lines).
func (fn ScoreFunc) ScoreChanged(score, level, lines int) { fn(score, level, lines) }

// Options configure a new Engine. Zero values select the defaults.
type Options struct {
	Rows     int
	Cols     int
	Rules    Rules
	Seed     int64
	Renderer Renderer
	Scores   ScoreSink
}

// Engine owns one Tetris game: the board, the active and next pieces and
// the score counters. It is driven by Apply and Update from a single
// goroutine and never reads the wall clock.
type Engine struct {
	board  *Board
	active *Piece
	next   *Piece
	rules  Rules
	rng    *rand.Rand

	score int
	level int
	lines int

	dropInterval time.Duration
	dropCounter  time.Duration

	phase Phase
	epoch uint64

	renderer Renderer
	scores   ScoreSink
}

// NewEngine creates an idle engine. Call Start to begin play.
func NewEngine(opts Options) *Engine {
	if opts.Rows <= 0 {
		opts.Rows = 20
	}
	if opts.Cols <= 0 {
		opts.Cols = 10
	}
	if opts.Rules.LinesPerLevel <= 0 {
		opts.Rules = DefaultRules()
	}
	return &Engine{
		board:        NewBoard(opts.Rows, opts.Cols),
		rules:        opts.Rules,
		rng:          rand.New(rand.NewSource(opts.Seed)),
		level:        1,
		dropInterval: opts.Rules.DropInterval(1),
		renderer:     opts.Renderer,
		scores:       opts.Scores,
	}
}

// Phase returns the current lifecycle state.
func (e *Engine) Phase() Phase { return e.phase }

// Paused reports whether the game is paused.
func (e *Engine) Paused() bool { return e.phase == PhasePaused }

// GameOver reports whether the last spawn collided.
func (e *Engine) GameOver() bool { return e.phase == PhaseGameOver }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Lines returns the total number of cleared rows.
func (e *Engine) Lines() int { return e.lines }

// DropInterval returns the current gravity interval.
func (e *Engine) DropInterval() time.Duration { return e.dropInterval }

// Board exposes the landed-block grid. Callers must not modify it.
func (e *Engine) Board() *Board { return e.board }

// Active returns a copy of the falling piece.
func (e *Engine) Active() (Piece, bool) {
	if e.active == nil {
		return Piece{}, false
	}
	return e.active.Clone(), true
}

// Next returns a copy of the preview piece.
func (e *Engine) Next() (Piece, bool) {
	if e.next == nil {
		return Piece{}, false
	}
	return e.next.Clone(), true
}

// Epoch changes whenever the engine starts, pauses, resumes or ends.
// Tick drivers compare it to discard ticks scheduled for an older state.
func (e *Engine) Epoch() uint64 { return e.epoch }

// Start resets the game and begins play. It is valid in every phase.
func (e *Engine) Start() {
	e.board.Clear()
	e.score = 0
	e.lines = 0
	e.level = e.rules.Level(0)
	e.dropInterval = e.rules.DropInterval(e.level)
	e.dropCounter = 0
	e.active = e.randomPiece()
	e.next = e.randomPiece()
	e.phase = PhaseRunning
	e.epoch++
	e.notifyScore()
	e.render()
}

// Apply performs a player intent and reports whether it was accepted.
// Movement intents are ignored unless the game is running; TogglePause is
// ignored when idle or over. Accepted intents trigger a render.
func (e *Engine) Apply(in Intent) bool {
	switch in {
	case IntentStart:
		e.Start()
		return true
	case IntentTogglePause:
		return e.togglePause()
	}

	if e.phase != PhaseRunning || e.active == nil {
		return false
	}
	switch in {
	case IntentMoveLeft:
		e.shift(-1)
	case IntentMoveRight:
		e.shift(1)
	case IntentSoftDrop:
		e.moveDown()
	case IntentRotate:
		e.rotate()
	case IntentHardDrop:
		e.hardDrop()
	default:
		return false
	}
	e.render()
	return true
}

// Update advances gravity by dt. It does nothing unless the game is running.
func (e *Engine) Update(dt time.Duration) {
	if e.phase != PhaseRunning {
		return
	}
	e.dropCounter += dt
	if e.dropCounter >= e.dropInterval {
		e.moveDown()
	}
	e.render()
}

func (e *Engine) togglePause() bool {
	switch e.phase {
	case PhaseRunning:
		e.phase = PhasePaused
	case PhasePaused:
		e.phase = PhaseRunning
	default:
		return false
	}
	e.epoch++
	e.render()
	return true
}

func (e *Engine) shift(dx int) {
	moved := e.active.Pos.Add(core.Point{X: dx})
	if !Collides(e.active.Shape, moved, e.board) {
		e.active.Pos = moved
	}
}

// Offsets tried after a rotation collides, relative to the original position.
var kicks = []core.Point{
	{X: 0, Y: 0},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: -1, Y: -1},
}

func (e *Engine) rotate() {
	rotated := RotateClockwise(e.active.Shape)
	for _, k := range kicks {
		pos := e.active.Pos.Add(k)
		if !Collides(rotated, pos, e.board) {
			e.active.Shape = rotated
			e.active.Pos = pos
			return
		}
	}
}

func (e *Engine) moveDown() {
	e.dropCounter = 0
	below := e.active.Pos.Add(core.Point{Y: 1})
	if !Collides(e.active.Shape, below, e.board) {
		e.active.Pos = below
		return
	}
	e.land()
}

func (e *Engine) hardDrop() {
	e.dropCounter = 0
	e.active.Pos.Y = e.dropRow(*e.active)
	e.land()
}

// dropRow returns the lowest row p can descend to from its position.
func (e *Engine) dropRow(p Piece) int {
	y := p.Pos.Y
	for !Collides(p.Shape, core.Point{X: p.Pos.X, Y: y + 1}, e.board) {
		y++
	}
	return y
}

// GhostY returns the row the active piece would land on, or -1 without one.
func (e *Engine) GhostY() int {
	if e.active == nil {
		return -1
	}
	return e.dropRow(*e.active)
}

// land merges the active piece, clears rows and spawns the next piece.
// A spawn that collides ends the game and is left unmerged.
func (e *Engine) land() {
	e.board.Merge(*e.active)
	e.clearLines()
	e.active = e.next
	e.next = e.randomPiece()
	if Collides(e.active.Shape, e.active.Pos, e.board) {
		e.phase = PhaseGameOver
		e.epoch++
	}
}

func (e *Engine) clearLines() int {
	n := e.board.ClearLines()
	if n == 0 {
		return 0
	}
	e.lines += n
	e.score += e.rules.Points(n, e.level)
	e.level = e.rules.Level(e.lines)
	e.dropInterval = e.rules.DropInterval(e.level)
	e.notifyScore()
	return n
}

func (e *Engine) randomPiece() *Piece {
	k := Kind(e.rng.Intn(KindCount) + 1)
	return newPiece(k, e.board.Cols())
}

func (e *Engine) notifyScore() {
	if e.scores != nil {
		e.scores.ScoreChanged(e.score, e.level, e.lines)
	}
}

func (e *Engine) render() {
	if e.renderer != nil {
		e.renderer.Render(e.Frame())
	}
}

// Frame builds a render snapshot of the current state.
func (e *Engine) Frame() Frame {
	f := Frame{
		Board: e.board.Cells(),
		Score: e.score,
		Level: e.level,
		Lines: e.lines,
		Phase: e.phase,
	}
	if e.active != nil {
		f.Active = e.active.Clone()
		f.HasActive = true
		f.GhostY = e.active.Pos.Y
		if e.phase != PhaseGameOver {
			f.GhostY = e.dropRow(*e.active)
		}
	}
	if e.next != nil {
		f.Next = e.next.Clone()
		f.HasNext = true
	}
	return f
}
