package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSession returns a session whose active piece is an O at spawn.
func newTestSession(t *testing.T, rules Rules) *Session {
	t.Helper()
	s := NewSession(rules, 1)
	s.piece = NewPiece(KindO, DefaultAttributes()).SpawnedOn(rules.Width)
	return s
}

func TestNewSession(t *testing.T) {
	s := NewSession(DefaultRules(), 1)
	sn := s.Snapshot()

	assert.Equal(t, DefaultRules(), s.Rules())
	assert.Equal(t, 0, sn.Score)
	assert.Equal(t, 1, sn.Level)
	assert.Equal(t, 1000, sn.DropInterval)
	assert.Equal(t, 1, sn.Gravity)
	assert.Equal(t, 0, sn.Piece.Y)
	assert.Equal(t, 10/2-sn.Piece.Shape.Cols()/2, sn.Piece.X)
	assert.True(t, sn.CanHold)
	assert.False(t, sn.HasHeld)
	assert.Equal(t, Airborne, sn.Lock)
}

func TestGravityInterval(t *testing.T) {
	s := newTestSession(t, DefaultRules())

	s.Tick(1000)
	assert.Equal(t, 0, s.piece.Y, "counter must exceed the interval")
	s.Tick(1)
	assert.Equal(t, 1, s.piece.Y)
	s.Tick(1000)
	assert.Equal(t, 1, s.piece.Y, "counter resets after a drop")
}

func TestHardDropScoresAndLocks(t *testing.T) {
	s := newTestSession(t, DefaultRules())

	rows, ok := s.HardDrop()
	require.True(t, ok)
	assert.Equal(t, 18, rows)
	assert.Equal(t, 36, s.Score())
	assert.True(t, s.grid.Cell(4, 19).Filled)
	assert.True(t, s.grid.Cell(5, 18).Filled)
	assert.Equal(t, 1, s.Snapshot().PiecesLocked)
	assert.Equal(t, 0, s.piece.Y, "next piece spawns at the top")
}

func TestSoftDrop(t *testing.T) {
	s := newTestSession(t, DefaultRules())

	require.True(t, s.SoftDrop())
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 1, s.piece.Y)

	s.piece.Y = 18
	assert.False(t, s.SoftDrop(), "blocked soft drop")
	assert.Equal(t, 2, s.Score(), "every soft drop earns the bonus")
	assert.Equal(t, Landed, s.lock.State())

	s.Pause()
	s.SoftDrop()
	assert.Equal(t, 2, s.Score(), "no bonus while paused")
}

func TestLineClearAwardsPointsAtCurrentLevel(t *testing.T) {
	s := newTestSession(t, DefaultRules())
	fillRow(s.grid, 19, 4, 5)
	s.lines = 9

	s.HardDrop()

	assert.Equal(t, 36+100, s.Score())
	assert.Equal(t, 10, s.Lines())
	assert.Equal(t, 2, s.Level())
	sn := s.Snapshot()
	assert.Equal(t, 900, sn.DropInterval)
	assert.Equal(t, 1, sn.LastCleared)
	assert.True(t, sn.CellAt(4, 19).Filled, "O top half shifts into the cleared row")
	assert.Equal(t, 2, s.grid.FilledCount())
}

func TestTetrisClear(t *testing.T) {
	s := NewSession(DefaultRules(), 1)
	for y := 16; y < 20; y++ {
		fillRow(s.grid, y, 0)
	}
	i := NewPiece(KindI, DefaultAttributes())
	i.Shape = RotatorFor(KindI).Rotate(i.Shape)
	i.X = -2
	s.piece = i

	s.HardDrop()
	assert.Equal(t, 4, s.Lines())
	assert.Equal(t, 800+2*16, s.Score())
	assert.Equal(t, 0, s.grid.FilledCount())
}

func TestLockDelay(t *testing.T) {
	s := newTestSession(t, DefaultRules())
	s.piece.Y = 18
	s.SoftDrop() // blocked: lands

	s.Tick(999)
	assert.Equal(t, 0, s.piecesLocked)
	assert.InDelta(t, 99.9, s.Snapshot().LockFraction, 1e-9)

	s.Tick(1)
	assert.Equal(t, 1, s.piecesLocked)
	assert.Equal(t, Airborne, s.lock.State())
}

func TestLockResetCapOnFloor(t *testing.T) {
	rules := DefaultRules()
	s := newTestSession(t, rules)
	s.piece.Y = 18
	s.SoftDrop()

	for i := 0; i < rules.MaxLockResets; i++ {
		s.Tick(500)
		if i%2 == 0 {
			require.True(t, s.MoveLeft())
		} else {
			require.True(t, s.MoveRight())
		}
		require.Equal(t, 0, s.piecesLocked, "locked early at reset %d", i+1)
		require.Zero(t, s.lock.Elapsed())
	}
	assert.Equal(t, rules.MaxLockResets, s.lock.ResetsUsed())

	// The cap is spent: moving no longer buys time.
	require.True(t, s.MoveLeft())
	s.Tick(500)
	s.Tick(499)
	assert.Equal(t, 0, s.piecesLocked)
	s.Tick(1)
	assert.Equal(t, 1, s.piecesLocked)
}

func TestMoveOffLedgeLifts(t *testing.T) {
	s := newTestSession(t, DefaultRules())
	s.grid.SetCell(4, 19, Cell{Filled: true})
	s.grid.SetCell(5, 19, Cell{Filled: true})
	s.piece.Y = 17
	s.SoftDrop()
	require.Equal(t, Landed, s.lock.State())

	require.True(t, s.MoveRight())
	assert.Equal(t, Landed, s.lock.State(), "still resting on (5,19)")

	require.True(t, s.MoveRight())
	assert.Equal(t, Airborne, s.lock.State())
	assert.Zero(t, s.lock.Elapsed())
}

func TestRotationWhileLanded(t *testing.T) {
	tests := []struct {
		name       string
		x          int
		obstacle   bool // block (1,17) so only a +1 kick fits
		wantX      int
		wantResets int
		wantTimer  float64
	}{
		{name: "in place keeps timer", x: 4, wantX: 4, wantResets: 0, wantTimer: 600},
		{name: "kick resets timer", x: 0, obstacle: true, wantX: 1, wantResets: 1, wantTimer: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(DefaultRules(), 1)
			if tc.obstacle {
				s.grid.SetCell(1, 17, Cell{Filled: true})
			}
			// Down-pointing T on the floor; the left-pointing orientation
			// still rests on the floor after rotating.
			rot := RotatorFor(KindT)
			s.piece = NewPiece(KindT, DefaultAttributes())
			s.piece.Shape = rot.Rotate(rot.Rotate(s.piece.Shape))
			s.piece.X, s.piece.Y = tc.x, 17
			s.SoftDrop()
			require.Equal(t, Landed, s.lock.State())
			s.Tick(600)

			require.True(t, s.Rotate())
			assert.Equal(t, tc.wantX, s.piece.X)
			assert.Equal(t, Landed, s.lock.State())
			assert.Equal(t, tc.wantResets, s.lock.ResetsUsed())
			assert.InDelta(t, tc.wantTimer, s.lock.Elapsed(), 1e-9)
		})
	}
}

func TestHold(t *testing.T) {
	s := NewSession(DefaultRules(), 3)
	first := s.piece.Kind
	second := s.next.Kind

	require.True(t, s.Hold())
	assert.Equal(t, second, s.piece.Kind)
	assert.Equal(t, first, s.held.Kind)
	assert.Equal(t, BaseShape(first), s.held.Shape)
	assert.False(t, s.Hold(), "hold is once per piece")

	s.HardDrop()
	require.True(t, s.Snapshot().CanHold)

	current := s.piece
	require.True(t, s.Hold())
	assert.Equal(t, first, s.piece.Kind)
	assert.Equal(t, 0, s.piece.Y)
	assert.Equal(t, 10/2-s.piece.Shape.Cols()/2, s.piece.X)
	assert.Equal(t, current.Kind, s.held.Kind)
}

func TestHoldStoresBaseOrientation(t *testing.T) {
	s := NewSession(DefaultRules(), 1)
	s.piece = NewPiece(KindT, Attributes{RotationBudget: 3}).SpawnedOn(10).Moved(0, 4)
	require.True(t, s.Rotate())
	require.True(t, s.Hold())

	assert.Equal(t, BaseShape(KindT), s.held.Shape)
	assert.Equal(t, 3, s.held.RotationsRemaining)
	assert.Equal(t, Airborne, s.lock.State())
}

func TestGameOver(t *testing.T) {
	s := newTestSession(t, DefaultRules())
	// Every spawn position overlaps row 1.
	fillRow(s.grid, 1, 0)
	s.piece.Y = 10

	s.HardDrop()
	require.True(t, s.GameOver())

	y := s.piece.Y
	assert.False(t, s.MoveLeft())
	assert.False(t, s.Rotate())
	assert.False(t, s.SoftDrop())
	assert.False(t, s.Hold())
	assert.False(t, s.Pause())
	_, ok := s.HardDrop()
	assert.False(t, ok)
	s.Tick(10_000)
	assert.Equal(t, y, s.piece.Y)

	s.Restart()
	assert.False(t, s.GameOver())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.grid.FilledCount())
}

func TestPause(t *testing.T) {
	s := newTestSession(t, DefaultRules())
	require.True(t, s.Pause())
	assert.False(t, s.Pause())

	s.Tick(5000)
	assert.Equal(t, 0, s.piece.Y)
	assert.False(t, s.MoveLeft())
	assert.False(t, s.SoftDrop())

	require.True(t, s.TogglePause())
	assert.False(t, s.Paused())
	assert.True(t, s.MoveLeft())
}

func TestHardenedPieceDelaysClear(t *testing.T) {
	rules := DefaultRules()
	rules.HardenedChance = 1
	s := NewSession(rules, 1)
	require.True(t, s.piece.Hardened)
	require.True(t, s.next.Hardened)

	s.piece = NewPiece(KindO, Attributes{RotationBudget: Unlimited, Hardened: true}).SpawnedOn(10)
	fillRow(s.grid, 19, 4, 5)

	s.HardDrop()
	assert.Equal(t, 0, s.Lines())
	assert.Equal(t, 36, s.Score())
	assert.False(t, s.grid.Cell(4, 19).Hardened, "hardened cells are demoted")
}

func TestSnapshotIsolated(t *testing.T) {
	s := newTestSession(t, DefaultRules())
	sn := s.Snapshot()
	sn.Cells[19][0].Filled = true
	sn.Piece.Y = 12

	assert.False(t, s.grid.Cell(0, 19).Filled)
	assert.Equal(t, 0, s.piece.Y)
}

func TestDeterminism(t *testing.T) {
	play := func() Snapshot {
		rules := DefaultRules()
		rules.Randomizer = RandomizerBag
		rules.HardenedChance = 0.3
		s := NewSession(rules, 99)
		for i := 0; i < 400; i++ {
			switch i % 7 {
			case 0:
				s.MoveLeft()
			case 1:
				s.Rotate()
			case 3:
				s.MoveRight()
			case 5:
				s.HardDrop()
			case 6:
				s.Hold()
			}
			s.Tick(16.67)
		}
		return s.Snapshot()
	}

	assert.Equal(t, play(), play())
}
