package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
	"github.com/vovakirdan/minigames/internal/storage"
)

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadScoreRows(t *testing.T) {
	store := openStore(t)
	if _, err := store.RecordScore("fake", 120); err != nil {
		t.Fatalf("RecordScore: %v", err)
	}

	rows, err := LoadScoreRows(store)
	if err != nil {
		t.Fatalf("LoadScoreRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Title != "Fake" || rows[0].Score != 120 {
		t.Errorf("row = %+v", rows[0])
	}
	if rows[0].Updated == "" {
		t.Error("recorded score should carry an update time")
	}
}

func TestLoadScoreRowsWithoutStore(t *testing.T) {
	rows, err := LoadScoreRows(nil)
	if err != nil {
		t.Fatalf("LoadScoreRows: %v", err)
	}
	for _, r := range rows {
		if r.Score != 0 || r.Updated != "" {
			t.Errorf("row without store = %+v, want zero score", r)
		}
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("view should have a title")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuShowsBestAndSelects(t *testing.T) {
	store := openStore(t)
	if _, err := store.RecordScore("fake", 55); err != nil {
		t.Fatalf("RecordScore: %v", err)
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if !strings.Contains(m.View(), "best 55") {
		t.Errorf("menu should show the best score:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)
	if menu.Selected() == nil || menu.Selected().GameID != "fake" {
		t.Errorf("selected = %+v, want fake", menu.Selected())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30})

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("enter should start the game, screen = %v", s.screen)
	}
	if cmd == nil {
		t.Error("starting a game should schedule its first tick")
	}

	// Pause, then go back to the menu without ending the session.
	next, _ = s.Update(runeKey('p'))
	s = next.(SessionModel)
	next, cmd = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.screen != screenMenu {
		t.Errorf("esc while paused should return to the menu, screen = %v", s.screen)
	}
	if cmd != nil {
		t.Error("returning to the menu should not quit the session")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.screen != screenScores {
		t.Errorf("tab should open the scoreboard, screen = %v", s.screen)
	}

	next, cmd = s.Update(runeKey('q'))
	s = next.(SessionModel)
	if !s.quitting || cmd == nil {
		t.Error("q on the scoreboard should end the session")
	}
}
