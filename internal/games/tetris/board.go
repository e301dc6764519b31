package tetris

import "github.com/vovakirdan/minigames/internal/core"

// Board is the grid of landed blocks. A cell holds 0 when empty or the
// id (1..7) of the piece that landed there. Dimensions never change after
// NewBoard.
type Board struct {
	rows  int
	cols  int
	cells [][]uint8
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int) *Board {
	b := &Board{rows: rows, cols: cols}
	b.cells = make([][]uint8, rows)
	for y := range b.cells {
		b.cells[y] = make([]uint8, cols)
	}
	return b
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// At returns the cell at (x, y), or 0 outside the board.
func (b *Board) At(x, y int) uint8 {
	if !b.inside(x, y) {
		return 0
	}
	return b.cells[y][x]
}

// Set writes a cell. Writes outside the board are ignored.
func (b *Board) Set(x, y int, v uint8) {
	if b.inside(x, y) {
		b.cells[y][x] = v
	}
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// Clear empties every cell.
func (b *Board) Clear() {
	for _, row := range b.cells {
		clear(row)
	}
}

// Cells returns a deep copy of the grid, indexed [y][x].
func (b *Board) Cells() [][]uint8 {
	out := make([][]uint8, b.rows)
	for y, row := range b.cells {
		out[y] = append([]uint8(nil), row...)
	}
	return out
}

// Collides reports whether shape placed with its top-left corner at pos
// overlaps a wall, the floor, the ceiling or a landed block. Empty shape
// cells are never tested.
func Collides(shape Shape, pos core.Point, b *Board) bool {
	for y, row := range shape {
		for x, v := range row {
			if v == 0 {
				continue
			}
			bx, by := pos.X+x, pos.Y+y
			if !b.inside(bx, by) || b.cells[by][bx] != 0 {
				return true
			}
		}
	}
	return false
}

// Merge writes the solid cells of p into the board. Callers must ensure p
// does not collide.
func (b *Board) Merge(p Piece) {
	for y, row := range p.Shape {
		for x, v := range row {
			if v != 0 {
				b.Set(p.Pos.X+x, p.Pos.Y+y, v)
			}
		}
	}
}

// ClearLines removes every full row, shifting the rows above it down and
// inserting empty rows at the top. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := b.rows - 1; y >= 0; {
		if !b.full(y) {
			y--
			continue
		}
		row := b.cells[y]
		clear(row)
		copy(b.cells[1:y+1], b.cells[:y])
		b.cells[0] = row
		cleared++
		// Row y now holds what was above it, so test it again.
	}
	return cleared
}

func (b *Board) full(y int) bool {
	for _, v := range b.cells[y] {
		if v == 0 {
			return false
		}
	}
	return true
}
