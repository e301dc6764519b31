package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minigames/internal/core"
)

// colorStyles maps core.Color to lipgloss styles (ANSI 256 palette).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorPink:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	core.ColorCyan:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.ColorMagenta:   lipgloss.NewStyle().Foreground(lipgloss.Color("165")),
	core.ColorOrange:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
