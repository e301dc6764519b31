package minesweeper

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

func newTestGame(t *testing.T, seed int64, difficulty string) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, Difficulty: difficulty})
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("minesweeper") {
		t.Fatal("minesweeper not registered")
	}
	g, err := registry.Create("minesweeper")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Minesweeper" {
		t.Errorf("Title = %q, want Minesweeper", g.Title())
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset            string
		rows, cols, mines int
	}{
		{"easy", 9, 9, 10},
		{"normal", 16, 16, 40},
		{"hard", 16, 30, 99},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			f := newTestGame(t, 1, tt.preset).Field()
			if f.Rows() != tt.rows || f.Cols() != tt.cols || f.Mines() != tt.mines {
				t.Errorf("field = %dx%d with %d mines, want %dx%d with %d",
					f.Rows(), f.Cols(), f.Mines(), tt.rows, tt.cols, tt.mines)
			}
			if f.Placed() {
				t.Error("mines placed before the first move")
			}
		})
	}
}

func TestFirstRevealIsSafe(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g := newTestGame(t, seed, "hard")
		res := g.Step(core.FrameOf(core.ActionPrimary), 0)

		if g.Field().Status() == StatusLost {
			t.Fatalf("seed %d: first reveal hit a mine", seed)
		}
		c := g.Cursor()
		if !g.Field().Revealed(c.X, c.Y) {
			t.Errorf("seed %d: cursor cell not revealed", seed)
		}
		if n := g.Field().Neighbors(c.X, c.Y); n != 0 {
			t.Errorf("seed %d: opening cell has %d neighbours, want a clear 3x3", seed, n)
		}
		if res.State.Score <= 1 {
			t.Errorf("seed %d: score = %d, opening cell should spread", seed, res.State.Score)
		}
	}
}

func TestFlagFirstPlacesMines(t *testing.T) {
	g := newTestGame(t, 3, "easy")
	g.Step(core.FrameOf(core.ActionSecondary), 0)

	c := g.Cursor()
	f := g.Field()
	if !f.Placed() {
		t.Fatal("flagging first should place the mines")
	}
	if !f.Flagged(c.X, c.Y) {
		t.Error("cursor cell not flagged")
	}
	if f.IsMine(c.X, c.Y) {
		t.Error("flagged first cell should be safe")
	}
	if f.FlagsLeft() != 9 {
		t.Errorf("FlagsLeft = %d, want 9", f.FlagsLeft())
	}
}

func TestCursorMovement(t *testing.T) {
	g := newTestGame(t, 1, "easy")
	if got := g.Cursor(); got != (core.Point{X: 4, Y: 4}) {
		t.Fatalf("start cursor = %v, want (4,4)", got)
	}

	g.Step(core.FrameOf(core.ActionUp), 0)
	g.Step(core.FrameOf(core.ActionRight), 0)
	if got := g.Cursor(); got != (core.Point{X: 5, Y: 3}) {
		t.Errorf("cursor = %v, want (5,3)", got)
	}

	for i := 0; i < 20; i++ {
		g.Step(core.FrameOf(core.ActionLeft), 0)
		g.Step(core.FrameOf(core.ActionDown), 0)
	}
	if got := g.Cursor(); got != (core.Point{X: 0, Y: 8}) {
		t.Errorf("cursor = %v, want it clamped to (0,8)", got)
	}
}

func TestTimerStartsOnFirstMove(t *testing.T) {
	g := newTestGame(t, 7, "hard")

	g.Step(core.NewInputFrame(), 5*time.Second)
	if g.Elapsed() != 0 {
		t.Errorf("Elapsed = %d before the first move, want 0", g.Elapsed())
	}

	g.Step(core.FrameOf(core.ActionPrimary), 0)
	if g.Field().Status() != StatusPlaying {
		t.Fatalf("status = %v, want playing", g.Field().Status())
	}
	g.Step(core.NewInputFrame(), 1500*time.Millisecond)
	g.Step(core.NewInputFrame(), time.Second)
	if g.Elapsed() != 2 {
		t.Errorf("Elapsed = %d, want 2", g.Elapsed())
	}

	g.Step(core.FrameOf(core.ActionPause), 0)
	g.Step(core.NewInputFrame(), time.Minute)
	if g.Elapsed() != 2 {
		t.Errorf("Elapsed = %d while paused, want 2", g.Elapsed())
	}
	if !g.State().Paused {
		t.Error("game should be paused")
	}
}

func TestRevealMineEndsGame(t *testing.T) {
	g := newTestGame(t, 1, "easy")
	g.Field().layMines([]int{0})
	g.started = true
	g.cursor = core.Point{X: 0, Y: 0}

	res := g.Step(core.FrameOf(core.ActionConfirm), 0)

	if !res.State.GameOver {
		t.Error("revealing a mine should end the game")
	}
	if g.Field().Status() != StatusLost {
		t.Errorf("status = %v, want lost", g.Field().Status())
	}

	// Input is ignored until restart.
	g.Step(core.FrameOf(core.ActionRight), 0)
	if got := g.Cursor(); got != (core.Point{X: 0, Y: 0}) {
		t.Errorf("cursor moved after game over: %v", got)
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, 1, "normal")
	g.Step(core.FrameOf(core.ActionPrimary), 0)
	if !g.Field().Placed() {
		t.Fatal("first reveal should place mines")
	}

	res := g.Step(core.FrameOf(core.ActionRestart), 0)

	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("state after restart = %+v", res.State)
	}
	if g.Field().Placed() {
		t.Error("restart should clear the mines")
	}
	if g.Field().Cols() != 16 {
		t.Errorf("Cols = %d, restart should keep the difficulty", g.Field().Cols())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1, "hard")
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Minesweeper", "Expert", "■", ">"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	g.Field().layMines([]int{0})
	g.started = true
	g.cursor = core.Point{X: 0, Y: 0}
	g.Step(core.FrameOf(core.ActionPrimary), 0)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("render should show Game Over")
	}
}
