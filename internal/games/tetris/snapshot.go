package tetris

import "time"

// Snapshot captures the engine state for determinism checks.
type Snapshot struct {
	Phase        Phase
	Score        int
	Level        int
	Lines        int
	ActiveKind   Kind
	ActiveX      int
	ActiveY      int
	NextKind     Kind
	DropInterval time.Duration
	Filled       int // Occupied board cells
	Epoch        uint64
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Phase:        e.phase,
		Score:        e.score,
		Level:        e.level,
		Lines:        e.lines,
		DropInterval: e.dropInterval,
		Epoch:        e.epoch,
	}
	if e.active != nil {
		s.ActiveKind = e.active.Kind
		s.ActiveX = e.active.Pos.X
		s.ActiveY = e.active.Pos.Y
	}
	if e.next != nil {
		s.NextKind = e.next.Kind
	}
	for _, row := range e.board.cells {
		for _, v := range row {
			if v != 0 {
				s.Filled++
			}
		}
	}
	return s
}

// Snapshot returns the engine snapshot, or the zero value before Reset.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{}
	}
	return g.engine.Snapshot()
}
