package minesweeper

import (
	"math/rand"
	"slices"
	"testing"
)

func TestPlaceMinesKeepsSafeZone(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		for _, safe := range [][2]int{{0, 0}, {4, 4}, {8, 3}} {
			f := NewField(9, 9, 10)
			f.PlaceMines(safe[0], safe[1], rand.New(rand.NewSource(seed)))

			if !f.Placed() {
				t.Fatalf("seed %d: mines not placed", seed)
			}
			if n := len(f.MinePositions()); n != 10 {
				t.Errorf("seed %d: %d mines, want 10", seed, n)
			}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if f.IsMine(safe[0]+dx, safe[1]+dy) {
						t.Errorf("seed %d: mine inside safe zone around %v", seed, safe)
					}
				}
			}
		}
	}
}

func TestPlaceMinesDeterministic(t *testing.T) {
	a := NewField(16, 30, 99)
	b := NewField(16, 30, 99)
	a.PlaceMines(5, 5, rand.New(rand.NewSource(42)))
	b.PlaceMines(5, 5, rand.New(rand.NewSource(42)))

	if !slices.Equal(a.MinePositions(), b.MinePositions()) {
		t.Error("same seed placed different mines")
	}
}

func TestPlaceMinesOnlyOnce(t *testing.T) {
	f := NewField(9, 9, 10)
	rng := rand.New(rand.NewSource(1))
	f.PlaceMines(0, 0, rng)
	first := f.MinePositions()

	f.PlaceMines(8, 8, rng)

	if !slices.Equal(first, f.MinePositions()) {
		t.Error("second PlaceMines moved the mines")
	}
}

func TestNeighborCounts(t *testing.T) {
	// 3x3 with mines in two corners:
	// * . .
	// . . .
	// . . *
	f := NewField(3, 3, 2)
	f.layMines([]int{0, 8})

	want := [3][3]int{
		{0, 1, 0},
		{1, 2, 1},
		{0, 1, 0},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if f.IsMine(x, y) {
				continue
			}
			if got := f.Neighbors(x, y); got != want[y][x] {
				t.Errorf("Neighbors(%d,%d) = %d, want %d", x, y, got, want[y][x])
			}
		}
	}
}

func TestRevealNumberedCell(t *testing.T) {
	f := NewField(3, 3, 2)
	f.layMines([]int{0, 8})

	if got := f.Reveal(1, 1); got != 1 {
		t.Errorf("Reveal(1,1) opened %d cells, want 1", got)
	}
	if !f.Revealed(1, 1) {
		t.Error("(1,1) should be revealed")
	}
	if f.Revealed(1, 0) {
		t.Error("numbered cell must not spread")
	}
	if f.Status() != StatusPlaying {
		t.Errorf("status = %v, want playing", f.Status())
	}
}

func TestRevealFloodFillWins(t *testing.T) {
	f := NewField(5, 5, 1)
	f.layMines([]int{24})

	if opened := f.Reveal(0, 0); opened != 24 {
		t.Errorf("opened %d cells, want 24", opened)
	}
	if f.RevealedSafe() != 24 {
		t.Errorf("RevealedSafe = %d, want 24", f.RevealedSafe())
	}
	if f.Status() != StatusWon {
		t.Errorf("status = %v, want won", f.Status())
	}
	if !f.Flagged(4, 4) {
		t.Error("win flags every mine")
	}
	if f.FlagsLeft() != 0 {
		t.Errorf("FlagsLeft = %d, want 0", f.FlagsLeft())
	}
	if f.Revealed(4, 4) {
		t.Error("mine should stay covered on a win")
	}
}

func TestRevealSkipsFlags(t *testing.T) {
	f := NewField(5, 5, 1)
	f.layMines([]int{24})
	if !f.ToggleFlag(2, 2) {
		t.Fatal("ToggleFlag(2,2) failed")
	}

	f.Reveal(0, 0)

	if f.Revealed(2, 2) {
		t.Error("flood fill opened a flagged cell")
	}
	if f.RevealedSafe() != 23 {
		t.Errorf("RevealedSafe = %d, want 23", f.RevealedSafe())
	}
	if f.Status() != StatusPlaying {
		t.Errorf("status = %v, want playing", f.Status())
	}
	if got := f.Reveal(2, 2); got != 0 {
		t.Errorf("flagged cell revealed %d cells", got)
	}

	if !f.ToggleFlag(2, 2) {
		t.Fatal("unflag failed")
	}
	f.Reveal(2, 2)
	if f.Status() != StatusWon {
		t.Errorf("status = %v, want won", f.Status())
	}
}

func TestRevealMineLoses(t *testing.T) {
	f := NewField(5, 5, 2)
	f.layMines([]int{0, 24})
	if !f.ToggleFlag(2, 2) {
		t.Fatal("ToggleFlag(2,2) failed")
	}

	f.Reveal(0, 0)

	if f.Status() != StatusLost {
		t.Fatalf("status = %v, want lost", f.Status())
	}
	if !f.Revealed(0, 0) {
		t.Error("hit mine should be revealed")
	}
	if !f.Revealed(4, 4) {
		t.Error("loss uncovers every mine")
	}
	if f.Reveal(1, 1) != 0 {
		t.Error("reveal after a loss should do nothing")
	}
	if f.ToggleFlag(3, 3) {
		t.Error("flagging after a loss should do nothing")
	}
	if !f.Flagged(2, 2) {
		t.Error("wrong flags stay visible after a loss")
	}
}

func TestToggleFlag(t *testing.T) {
	f := NewField(3, 3, 1)
	f.layMines([]int{0})

	steps := []struct {
		x, y      int
		flagsLeft int
	}{
		{0, 0, 0},
		{1, 0, -1}, // over-flagging goes negative
		{1, 0, 0},
	}
	for _, s := range steps {
		if !f.ToggleFlag(s.x, s.y) {
			t.Fatalf("ToggleFlag(%d,%d) failed", s.x, s.y)
		}
		if f.FlagsLeft() != s.flagsLeft {
			t.Errorf("after (%d,%d) FlagsLeft = %d, want %d", s.x, s.y, f.FlagsLeft(), s.flagsLeft)
		}
	}

	if got := f.Reveal(1, 1); got != 1 {
		t.Fatalf("Reveal(1,1) opened %d, want 1", got)
	}
	if f.ToggleFlag(1, 1) {
		t.Error("revealed cells cannot be flagged")
	}
	if f.ToggleFlag(-1, 0) {
		t.Error("out of bounds flag accepted")
	}
}

func TestRevealOutOfBounds(t *testing.T) {
	f := NewField(3, 3, 0)
	if f.Reveal(3, 0) != 0 || f.Reveal(0, -1) != 0 {
		t.Error("out of bounds reveal opened cells")
	}
}

func TestLargeFloodFill(t *testing.T) {
	f := NewField(200, 200, 1)
	f.layMines([]int{200*200 - 1})

	f.Reveal(0, 0)

	if f.RevealedSafe() != 200*200-1 {
		t.Errorf("RevealedSafe = %d, want %d", f.RevealedSafe(), 200*200-1)
	}
	if f.Status() != StatusWon {
		t.Errorf("status = %v, want won", f.Status())
	}
}
