package tetris

import "github.com/vovakirdan/minigames/internal/core"

// Kind identifies a tetromino. The value doubles as the cell id written to
// the board when the piece lands.
type Kind uint8

const (
	KindI Kind = iota + 1
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of tetromino kinds.
const KindCount = 7

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Shape is a piece matrix indexed [row][col]; nonzero cells are solid.
// Shapes are treated as immutable: rotation builds a new matrix.
type Shape [][]uint8

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = append([]uint8(nil), row...)
	}
	return out
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(o[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Spawn orientations, indexed by Kind.
var shapes = [KindCount + 1]Shape{
	KindI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	KindJ: {
		{2, 0, 0},
		{2, 2, 2},
		{0, 0, 0},
	},
	KindL: {
		{0, 0, 3},
		{3, 3, 3},
		{0, 0, 0},
	},
	KindO: {
		{4, 4},
		{4, 4},
	},
	KindS: {
		{0, 5, 5},
		{5, 5, 0},
		{0, 0, 0},
	},
	KindT: {
		{0, 6, 0},
		{6, 6, 6},
		{0, 0, 0},
	},
	KindZ: {
		{7, 7, 0},
		{0, 7, 7},
		{0, 0, 0},
	},
}

// ShapeOf returns a copy of the spawn orientation of k, or nil for an
// unknown kind.
func ShapeOf(k Kind) Shape {
	if k < KindI || k > KindZ {
		return nil
	}
	return shapes[k].Clone()
}

// RotateClockwise returns s turned 90 degrees clockwise. An N×M matrix
// becomes M×N with out[i][j] = s[N-1-j][i].
func RotateClockwise(s Shape) Shape {
	n := s.Height()
	m := s.Width()
	out := make(Shape, m)
	for i := range out {
		out[i] = make([]uint8, n)
		for j := range out[i] {
			out[i][j] = s[n-1-j][i]
		}
	}
	return out
}

// Piece is a tetromino in play: its current orientation, kind and the
// board position of its top-left corner.
type Piece struct {
	Shape Shape
	Kind  Kind
	Pos   core.Point
}

// Clone returns a copy of p that shares no cells with it.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// newPiece places a fresh piece of kind k horizontally centered in a board
// cols wide, touching the top edge.
func newPiece(k Kind, cols int) *Piece {
	s := ShapeOf(k)
	return &Piece{
		Shape: s,
		Kind:  k,
		Pos:   core.Point{X: cols/2 - s.Width()/2, Y: 0},
	}
}

// Cells returns the board coordinates of the piece's solid cells.
func (p Piece) Cells() []core.Point {
	var pts []core.Point
	for y, row := range p.Shape {
		for x, v := range row {
			if v != 0 {
				pts = append(pts, core.Point{X: p.Pos.X + x, Y: p.Pos.Y + y})
			}
		}
	}
	return pts
}
