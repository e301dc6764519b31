package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the games. Piece colors follow the block ids 1..7.
const (
	ColorDefault Color = iota
	ColorPink
	ColorCyan
	ColorGreen
	ColorMagenta
	ColorOrange
	ColorYellow
	ColorBlue
	ColorRed
	ColorWhite
	ColorGray
	ColorDarkGreen
)
