package tetris

// Snapshot is a read-only copy of everything a presentation layer needs.
// It shares no memory with the Session.
type Snapshot struct {
	Width, Height int
	Cells         [][]Cell

	Piece   Piece
	GhostY  int
	Next    Piece
	Held    Piece
	HasHeld bool
	CanHold bool

	Score        int
	Lines        int
	Level        int
	DropInterval int // ms
	Gravity      int // rows per gravity step
	LastCleared  int // rows cleared by the most recent lock
	PiecesLocked int

	Lock         LockState
	LockFraction float64 // 0–100
	LockResets   int
	MaxResets    int

	GameOver bool
	Paused   bool
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Width:        s.grid.Width(),
		Height:       s.grid.Height(),
		Cells:        s.grid.Rows(),
		Piece:        s.piece,
		GhostY:       s.GhostY(),
		Next:         s.next,
		Held:         s.held,
		HasHeld:      s.hasHeld,
		CanHold:      s.canHold,
		Score:        s.score,
		Lines:        s.lines,
		Level:        s.level,
		DropInterval: s.dropInterval,
		Gravity:      s.gravity,
		LastCleared:  s.lastCleared,
		PiecesLocked: s.piecesLocked,
		Lock:         s.lock.State(),
		LockFraction: s.LockFraction(),
		LockResets:   s.lock.ResetsUsed(),
		MaxResets:    s.rules.MaxLockResets,
		GameOver:     s.gameOver,
		Paused:       s.paused,
	}
}

// Landed reports whether the active piece is resting on a surface.
func (sn Snapshot) Landed() bool {
	return sn.Lock == Landed
}

// CellAt returns the locked cell at (x, y), or an empty cell out of range.
func (sn Snapshot) CellAt(x, y int) Cell {
	if y < 0 || y >= len(sn.Cells) || x < 0 || x >= len(sn.Cells[y]) {
		return Cell{}
	}
	return sn.Cells[y][x]
}
