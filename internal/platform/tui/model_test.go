package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/storage"
)

// fakeGame is a scripted game: Primary ends the round with score, Pause
// toggles, Restart starts over. Every transition bumps the epoch.
type fakeGame struct {
	state   core.GameState
	epoch   uint64
	score   int
	resets  int
	deltas  []time.Duration
	resized [2]int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
	g.epoch++
}

func (g *fakeGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	switch {
	case in.Has(core.ActionRestart):
		g.state = core.GameState{}
		g.epoch++
	case in.Has(core.ActionPause) && !g.state.GameOver:
		g.state.Paused = !g.state.Paused
		g.epoch++
	case in.Has(core.ActionPrimary) && g.state.Running():
		g.state.GameOver = true
		g.state.Score = g.score
		g.epoch++
	}
	if dt > 0 && g.state.Running() {
		g.deltas = append(g.deltas, dt)
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState   { return g.state }
func (g *fakeGame) Epoch() uint64           { return g.epoch }
func (g *fakeGame) Resize(w, h int)         { g.resized = [2]int{w, h} }

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store) Model {
	t.Helper()
	return NewModel(g, store, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 50, Seed: 1})
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func tick(t *testing.T, m Model, gen int, at time.Time) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg{Gen: gen, Time: at})
	return next.(Model), cmd
}

func TestNewModelResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if !m.ticking || m.gen != 1 {
		t.Errorf("ticking=%v gen=%d, want ticking chain 1", m.ticking, m.gen)
	}
	if m.Init() == nil {
		t.Error("Init should schedule the first tick")
	}
}

func TestTickDeltas(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	start := time.Unix(1000, 0)

	m, cmd := tick(t, m, m.gen, start)
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	m, _ = tick(t, m, m.gen, start.Add(35*time.Millisecond))

	want := []time.Duration{20 * time.Millisecond, 35 * time.Millisecond}
	if len(g.deltas) != len(want) {
		t.Fatalf("deltas = %v, want %v", g.deltas, want)
	}
	for i := range want {
		if g.deltas[i] != want[i] {
			t.Errorf("delta %d = %v, want %v", i, g.deltas[i], want[i])
		}
	}
}

func TestPauseRetiresTickChain(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	start := time.Unix(1000, 0)
	m, _ = tick(t, m, m.gen, start)
	oldGen := m.gen

	m, cmd := press(t, m, runeKey('p'))
	if cmd != nil {
		t.Error("pausing should not schedule ticks")
	}
	if m.ticking || m.gen == oldGen {
		t.Fatalf("pause should retire chain %d (ticking=%v gen=%d)", oldGen, m.ticking, m.gen)
	}

	// A tick scheduled before the pause arrives late and must be ignored.
	m, cmd = tick(t, m, oldGen, start.Add(time.Second))
	if cmd != nil || len(g.deltas) != 1 {
		t.Errorf("stale tick was processed: deltas=%v", g.deltas)
	}

	// Resuming starts a fresh chain; wall time spent paused does not leak.
	m, cmd = press(t, m, runeKey('p'))
	if cmd == nil || !m.ticking {
		t.Fatal("resume should start a new tick chain")
	}
	m, _ = tick(t, m, m.gen, start.Add(10*time.Second))
	if got := g.deltas[len(g.deltas)-1]; got != 20*time.Millisecond {
		t.Errorf("first delta after resume = %v, want 20ms", got)
	}
	_ = m
}

func TestRestartWhileRunningReplacesChain(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	oldGen := m.gen

	m, cmd := press(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("restart should start a new tick chain")
	}
	if m.gen == oldGen || !m.ticking {
		t.Errorf("gen = %d (old %d), ticking=%v", m.gen, oldGen, m.ticking)
	}

	m, _ = tick(t, m, oldGen, time.Unix(1000, 0))
	if len(g.deltas) != 0 {
		t.Error("tick from the previous round should be dropped")
	}
}

func TestGameOverStopsTicksAndRecordsScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	g := &fakeGame{score: 42}
	m := newTestModel(t, g, store)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd != nil || m.ticking {
		t.Error("game over should stop the tick chain")
	}
	if !m.State().GameOver {
		t.Fatal("model should observe game over")
	}
	if !m.NewBest() {
		t.Error("first score should be a new best")
	}
	best, err := store.HighScore("fake")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if best != 42 {
		t.Errorf("high score = %d, want 42", best)
	}

	// Another round with a lower score does not replace the best.
	g.score = 7
	m, _ = press(t, m, runeKey('r'))
	if m.NewBest() {
		t.Error("restart should clear the new-best flag")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.NewBest() {
		t.Error("lower score should not be a new best")
	}
	best, _ = store.HighScore("fake")
	if best != 42 {
		t.Errorf("high score = %d, want 42", best)
	}
}

func TestBackOnlyWhenNotRunning(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while running")
	}

	m, _ = press(t, m, runeKey('p'))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Fatal("back should be accepted while paused")
	}
	if cmd != nil {
		t.Error("embedded model should not quit the program on back")
	}

	m.quitOnBack = true
	m.backToMenu = false
	_, cmd = press(t, m, runeKey('b'))
	if cmd == nil {
		t.Fatal("standalone model should quit on back")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)

	m, cmd := press(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestResizeKeepsRound(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if g.resized != [2]int{100, 30} {
		t.Errorf("game resized to %v, want [100 30]", g.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestViewRendersGame(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)
	if !strings.Contains(m.View(), "fake") {
		t.Error("view should contain the game's render output")
	}
}

func TestScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	m := newTestModel(t, &fakeGame{}, nil)

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	matches, err := filepath.Glob(filepath.Join(home, ".minigames", "screenshots", "fake_*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Errorf("screenshots = %v, want exactly one", matches)
	}
}
