package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
	"github.com/vovakirdan/minigames/internal/storage"
)

// epocher is implemented by games that expose a round epoch. A change in
// the epoch while running means the round was restarted.
type epocher interface {
	Epoch() uint64
}

// resizer is implemented by games that track the screen size themselves.
type resizer interface {
	Resize(width, height int)
}

// Model is the Bubble Tea model for running a single game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	keys   *KeyMapper

	state core.GameState
	epoch uint64

	// Tick chain bookkeeping. Only ticks carrying gen are honoured.
	gen      int
	ticking  bool
	lastTick time.Time

	quitOnBack bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been recorded for the current game over
	newBest    bool
}

// NewModel creates a new Bubble Tea model for the given game and resets the
// game into a fresh round. store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   NewKeyMapper(),
	}

	game.Reset(cfg)
	m.state = game.State()
	if e, ok := game.(epocher); ok {
		m.epoch = e.Epoch()
	}
	if m.state.Running() {
		m.gen = 1
		m.ticking = true
	}
	return m
}

// Init starts the tick chain prepared by NewModel.
func (m Model) Init() tea.Cmd {
	if !m.ticking {
		return nil
	}
	return tickCmd(m.gen, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Key presses step the game with a zero
// delta so input never advances time.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil && m.logger != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if m.state.Running() {
			return m, nil
		}
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	if action == core.ActionNone {
		return m, nil
	}

	result := m.game.Step(core.FrameOf(action), 0)
	return m, m.sync(result.State)
}

// handleResize processes window resize events. The round keeps going;
// games that care about the screen size are told about it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, m.sync(m.game.State())
	}
	return m, nil
}

// handleTick advances the simulation by the wall time since the previous
// tick of the same chain.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticking || msg.Gen != m.gen {
		return m, nil
	}

	dt := tickInterval(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = msg.Time.Sub(m.lastTick)
		if dt < 0 {
			dt = 0
		}
	}
	m.lastTick = msg.Time

	result := m.game.Step(core.NewInputFrame(), dt)
	if cmd := m.sync(result.State); cmd != nil {
		return m, cmd
	}
	if m.ticking {
		return m, tickCmd(m.gen, m.config.TickRate)
	}
	return m, nil
}

// sync folds a new game state into the model. It records the score on game
// over and starts or retires the tick chain when the game starts or stops
// running. A non-nil command is a fresh tick chain.
func (m *Model) sync(state core.GameState) tea.Cmd {
	prev := m.state
	m.state = state

	if prev.GameOver && !state.GameOver {
		m.scoreSaved = false
		m.newBest = false
	}
	if state.GameOver && !m.scoreSaved {
		m.recordScore(state.Score)
	}

	restarted := false
	if e, ok := m.game.(epocher); ok {
		if epoch := e.Epoch(); epoch != m.epoch {
			m.epoch = epoch
			restarted = true
		}
	}

	switch {
	case state.Running() && (!m.ticking || restarted):
		return m.startTicking()
	case !state.Running() && m.ticking:
		m.stopTicking()
	}
	return nil
}

// startTicking retires any live chain and begins a new one. The delta clock
// restarts so time spent paused is never fed to the game.
func (m *Model) startTicking() tea.Cmd {
	m.gen++
	m.ticking = true
	m.lastTick = time.Time{}
	return tickCmd(m.gen, m.config.TickRate)
}

func (m *Model) stopTicking() {
	m.gen++
	m.ticking = false
}

// recordScore saves the final score once per game over.
func (m *Model) recordScore(score int) {
	m.scoreSaved = true
	if m.store == nil || score <= 0 {
		return
	}

	best, err := m.store.RecordScore(m.game.ID(), score)
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("could not record score", "game", m.game.ID(), "error", err)
		}
		return
	}
	m.newBest = best
	if best && m.logger != nil {
		m.logger.Debug("new high score", "game", m.game.ID(), "score", score)
	}
}

// saveScreenshot writes the current screen as plain text to
// ~/.minigames/screenshots.
func (m *Model) saveScreenshot() error {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".minigames", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if the user asked to leave entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// NewBest reports whether the last finished round set a high score.
func (m Model) NewBest() bool {
	return m.newBest
}

// Run starts a Bubble Tea program for one game and blocks until it exits.
// It reports whether the user asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, logger, cfg)
	model.quitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
