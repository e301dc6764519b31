// Package tui provides the Bubble Tea integration for the minigames platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the tick chain that scheduled it; ticks from a retired
// chain are dropped on arrival.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickInterval returns the wall-clock spacing between ticks.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends one tick message for the
// given chain after one tick interval.
func tickCmd(gen, tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
