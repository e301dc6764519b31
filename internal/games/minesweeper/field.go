package minesweeper

import (
	"math/rand"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/minigames/internal/core"
)

// Status is the outcome of a field.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

type cell struct {
	revealed  bool
	flagged   bool
	neighbors int // Adjacent mines
}

// Field is a minefield. Cells are addressed by (x, y) with the origin at
// the top left; internally they are indexed y*cols+x.
type Field struct {
	rows      int
	cols      int
	mineCount int

	cells []cell
	mines *intmap.Map[int, struct{}]

	placed   bool
	revealed int // Safe cells revealed
	flags    int
	status   Status
}

// NewField creates a field with no mines placed yet.
func NewField(rows, cols, mines int) *Field {
	return &Field{
		rows:      rows,
		cols:      cols,
		mineCount: mines,
		cells:     make([]cell, rows*cols),
		mines:     intmap.New[int, struct{}](mines),
	}
}

// Rows returns the field height.
func (f *Field) Rows() int { return f.rows }

// Cols returns the field width.
func (f *Field) Cols() int { return f.cols }

// Mines returns the number of mines.
func (f *Field) Mines() int { return f.mineCount }

// Status returns the current outcome.
func (f *Field) Status() Status { return f.status }

// Placed reports whether mines have been laid.
func (f *Field) Placed() bool { return f.placed }

// RevealedSafe returns the number of safe cells uncovered.
func (f *Field) RevealedSafe() int { return f.revealed }

// FlagsLeft returns mines minus flags placed. It goes negative when the
// player over-flags.
func (f *Field) FlagsLeft() int { return f.mineCount - f.flags }

func (f *Field) inside(x, y int) bool {
	return x >= 0 && x < f.cols && y >= 0 && y < f.rows
}

func (f *Field) index(x, y int) int { return y*f.cols + x }

func (f *Field) isMine(i int) bool {
	_, ok := f.mines.Get(i)
	return ok
}

// IsMine reports whether (x, y) holds a mine.
func (f *Field) IsMine(x, y int) bool {
	return f.inside(x, y) && f.isMine(f.index(x, y))
}

// Revealed reports whether (x, y) is uncovered.
func (f *Field) Revealed(x, y int) bool {
	return f.inside(x, y) && f.cells[f.index(x, y)].revealed
}

// Flagged reports whether (x, y) carries a flag.
func (f *Field) Flagged(x, y int) bool {
	return f.inside(x, y) && f.cells[f.index(x, y)].flagged
}

// Neighbors returns the number of mines adjacent to (x, y).
func (f *Field) Neighbors(x, y int) int {
	if !f.inside(x, y) {
		return 0
	}
	return f.cells[f.index(x, y)].neighbors
}

// adjacent returns the indices of the up to eight cells around i.
func (f *Field) adjacent(i int) []int {
	x, y := i%f.cols, i/f.cols
	out := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if nx, ny := x+dx, y+dy; f.inside(nx, ny) {
				out = append(out, f.index(nx, ny))
			}
		}
	}
	return out
}

// PlaceMines lays mines at random, keeping the 3x3 block around
// (safeX, safeY) clear. It does nothing once mines are placed.
func (f *Field) PlaceMines(safeX, safeY int, rng *rand.Rand) {
	if f.placed {
		return
	}
	candidates := make([]int, 0, len(f.cells))
	for i := range f.cells {
		x, y := i%f.cols, i/f.cols
		if abs(x-safeX) <= 1 && abs(y-safeY) <= 1 {
			continue
		}
		candidates = append(candidates, i)
	}
	n := min(f.mineCount, len(candidates))
	// Partial Fisher-Yates: the first n candidates become mines.
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	f.layMines(candidates[:n])
}

// layMines fixes the mine set and computes neighbor counts.
func (f *Field) layMines(idx []int) {
	f.mines.Clear()
	for _, i := range idx {
		f.mines.Put(i, struct{}{})
	}
	f.mineCount = f.mines.Len()
	for i := range f.cells {
		count := 0
		for _, n := range f.adjacent(i) {
			if f.isMine(n) {
				count++
			}
		}
		f.cells[i].neighbors = count
	}
	f.placed = true
}

// Reveal uncovers (x, y). A cell with no adjacent mines opens its
// neighbors too, spreading through the empty region. Flagged and already
// revealed cells are left alone. It returns the number of cells uncovered.
func (f *Field) Reveal(x, y int) int {
	if f.status != StatusPlaying || !f.inside(x, y) {
		return 0
	}
	start := f.index(x, y)
	if c := f.cells[start]; c.revealed || c.flagged {
		return 0
	}

	if f.isMine(start) {
		f.cells[start].revealed = true
		f.status = StatusLost
		f.revealMines()
		return 1
	}

	opened := 0
	queued := intmap.New[int, struct{}](16)
	queued.Put(start, struct{}{})
	stack := []int{start}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := &f.cells[i]
		if c.revealed || c.flagged {
			continue
		}
		c.revealed = true
		f.revealed++
		opened++
		if c.neighbors != 0 {
			continue
		}
		for _, n := range f.adjacent(i) {
			if _, seen := queued.Get(n); seen {
				continue
			}
			if nc := f.cells[n]; nc.revealed || nc.flagged {
				continue
			}
			queued.Put(n, struct{}{})
			stack = append(stack, n)
		}
	}

	if f.revealed == len(f.cells)-f.mineCount {
		f.status = StatusWon
		f.flagMines()
	}
	return opened
}

// ToggleFlag flips the flag on a covered cell and reports whether it changed.
func (f *Field) ToggleFlag(x, y int) bool {
	if f.status != StatusPlaying || !f.inside(x, y) {
		return false
	}
	c := &f.cells[f.index(x, y)]
	if c.revealed {
		return false
	}
	c.flagged = !c.flagged
	if c.flagged {
		f.flags++
	} else {
		f.flags--
	}
	return true
}

func (f *Field) revealMines() {
	for i := range f.cells {
		if f.isMine(i) {
			f.cells[i].revealed = true
		}
	}
}

func (f *Field) flagMines() {
	for i := range f.cells {
		if f.isMine(i) && !f.cells[i].flagged {
			f.cells[i].flagged = true
		}
	}
	f.flags = f.mineCount
}

// MinePositions returns every mine location, row by row.
func (f *Field) MinePositions() []core.Point {
	var pts []core.Point
	for i := range f.cells {
		if f.isMine(i) {
			pts = append(pts, core.Point{X: i % f.cols, Y: i / f.cols})
		}
	}
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
