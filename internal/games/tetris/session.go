package tetris

import "math/rand"

// Rules configures a Session. The zero value is not usable; start from
// DefaultRules.
type Rules struct {
	Width, Height int

	LockDelayMs   float64
	MaxLockResets int

	Scoring    Scoring
	Randomizer string

	// Variant piece attributes.
	HardenedChance float64 // probability in [0,1] that a drawn piece is hardened
	RotationBudget int     // Unlimited, or rotations allowed per piece
}

// DefaultRules returns the classic 10×20 rule set.
func DefaultRules() Rules {
	return Rules{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		LockDelayMs:    DefaultLockDelayMs,
		MaxLockResets:  DefaultMaxLockResets,
		Scoring:        DefaultScoring(),
		Randomizer:     RandomizerUniform,
		RotationBudget: Unlimited,
	}
}

// Session is the game state machine. All methods run synchronously; callers
// must not invoke them concurrently.
//
// Commands return whether they changed anything. A command that is not valid
// in the current state (rotation budget spent, hold already used, game over)
// is a no-op, not an error.
type Session struct {
	rules      Rules
	rng        *rand.Rand
	randomizer Randomizer

	grid  *Grid
	piece Piece
	next  Piece
	held  Piece

	hasHeld bool
	canHold bool
	lock    LockController

	score        int
	lines        int
	level        int
	dropInterval int
	gravity      int
	dropCounter  float64

	lastCleared  int
	piecesLocked int
	gameOver     bool
	paused       bool
}

// NewSession starts a game with the given rules. The seed fixes the piece
// sequence, so equal seeds and inputs replay identically.
func NewSession(rules Rules, seed int64) *Session {
	s := &Session{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}
	s.randomizer = NewRandomizer(rules.Randomizer, s.rng)
	s.grid = NewGrid(rules.Width, rules.Height)
	s.start()
	return s
}

// start resets every counter and deals the first two pieces. The RNG keeps
// its position so a restart continues the same deterministic stream.
func (s *Session) start() {
	s.grid.Reset()
	s.score = 0
	s.lines = 0
	s.level = 1
	s.dropInterval = s.rules.Scoring.DropInterval(1)
	s.gravity = s.rules.Scoring.GravityFor(1)
	s.dropCounter = 0
	s.lastCleared = 0
	s.piecesLocked = 0
	s.gameOver = false
	s.paused = false
	s.hasHeld = false
	s.held = Piece{}
	s.canHold = true
	s.lock = NewLockController(s.rules.LockDelayMs, s.rules.MaxLockResets)

	s.piece = s.draw()
	s.next = s.draw()
}

// draw deals a new piece at the spawn position.
func (s *Session) draw() Piece {
	kind := s.randomizer.Next()
	attrs := Attributes{RotationBudget: s.rules.RotationBudget}
	if s.rules.HardenedChance > 0 {
		attrs.Hardened = s.rng.Float64() < s.rules.HardenedChance
	}
	return NewPiece(kind, attrs).SpawnedOn(s.grid.Width())
}

func (s *Session) active() bool {
	return !s.gameOver && !s.paused
}

func (s *Session) fits(p Piece) bool {
	return !s.grid.IsBlocked(p.Shape, p.X, p.Y)
}

func (s *Session) restingOnSurface() bool {
	return s.grid.IsBlocked(s.piece.Shape, s.piece.X, s.piece.Y+1)
}

// Tick advances gravity and the lock timer by dtMs milliseconds.
func (s *Session) Tick(dtMs float64) {
	if !s.active() || dtMs <= 0 {
		return
	}

	s.dropCounter += dtMs
	if s.dropCounter > float64(s.dropInterval) {
		s.dropCounter = 0
		for i := 0; i < s.gravity; i++ {
			if !s.stepDown() {
				break
			}
		}
	}

	if s.lock.Landed() && s.lock.Advance(dtMs) {
		s.lockPiece()
	}
}

// stepDown moves the piece one row down, or lands it when the row below is taken.
func (s *Session) stepDown() bool {
	moved := s.piece.Moved(0, 1)
	if !s.fits(moved) {
		s.lock.Land()
		return false
	}
	s.piece = moved
	if s.lock.Landed() {
		s.lock.Lift()
	}
	return true
}

// afterShift updates the lock state after a successful lateral move or
// rotation. resetDelay restarts the lock timer when the piece stays landed.
func (s *Session) afterShift(resetDelay bool) {
	if !s.lock.Landed() {
		return
	}
	if resetDelay {
		s.lock.ResetDelay()
	}
	if !s.restingOnSurface() {
		s.lock.Lift()
	}
}

func (s *Session) shift(dx int) bool {
	if !s.active() {
		return false
	}
	moved := s.piece.Moved(dx, 0)
	if !s.fits(moved) {
		return false
	}
	s.piece = moved
	s.afterShift(true)
	return true
}

// MoveLeft shifts the piece one column left.
func (s *Session) MoveLeft() bool { return s.shift(-1) }

// MoveRight shifts the piece one column right.
func (s *Session) MoveRight() bool { return s.shift(1) }

// Rotate turns the piece clockwise with wall kicks. While landed, only a
// kicked rotation restarts the lock timer.
func (s *Session) Rotate() bool {
	if !s.active() {
		return false
	}
	r := Rotate(s.piece, s.grid)
	if !r.Accepted {
		return false
	}
	s.piece = r.Piece
	s.afterShift(r.Kick != 0)
	return true
}

// SoftDrop moves the piece one row down and reports whether it moved. Every
// soft drop earns the soft-drop bonus; a blocked one lands the piece.
func (s *Session) SoftDrop() bool {
	if !s.active() {
		return false
	}
	s.score += s.rules.Scoring.SoftDropPerStep
	return s.stepDown()
}

// HardDrop drops the piece to its landing row and locks it immediately,
// awarding points per row travelled. It returns the rows travelled.
func (s *Session) HardDrop() (rows int, ok bool) {
	if !s.active() {
		return 0, false
	}
	for s.stepDown() {
		rows++
	}
	s.score += rows * s.rules.Scoring.HardDropPerRow
	s.lockPiece()
	return rows, true
}

// Hold stores the active piece, once per piece lifetime. With an empty slot the
// lookahead piece comes into play; otherwise the held piece is swapped in at
// the spawn position. The swap is refused if the incoming piece cannot spawn.
func (s *Session) Hold() bool {
	if !s.active() || !s.canHold {
		return false
	}

	var incoming Piece
	if s.hasHeld {
		incoming = s.held.Fresh().SpawnedOn(s.grid.Width())
	} else {
		incoming = s.next
	}
	if !s.fits(incoming) {
		return false
	}

	if !s.hasHeld {
		s.next = s.draw()
	}
	s.held = s.piece.Fresh()
	s.hasHeld = true
	s.piece = incoming
	s.canHold = false
	s.lock.Clear()
	return true
}

// lockPiece fixes the active piece, clears rows, updates the score and
// spawns the next piece.
func (s *Session) lockPiece() {
	s.grid.Lock(s.piece.Shape, s.piece.X, s.piece.Y, s.piece.Color, s.piece.Hardened)
	s.piecesLocked++

	cleared := s.grid.ClearCompletedRows()
	s.lastCleared = cleared
	s.applyClear(cleared)

	s.piece = s.next
	s.next = s.draw()
	s.lock.Clear()
	s.canHold = true

	if !s.fits(s.piece) {
		s.gameOver = true
	}
}

func (s *Session) applyClear(n int) {
	if n <= 0 {
		return
	}
	sc := s.rules.Scoring
	s.score += sc.LineClearPoints(n, s.level)
	s.lines += n
	s.level = sc.LevelFor(s.lines)
	s.dropInterval = sc.DropInterval(s.level)
	s.gravity = sc.GravityFor(s.level)
}

// Pause suspends Tick and every command until Resume.
func (s *Session) Pause() bool {
	if s.gameOver || s.paused {
		return false
	}
	s.paused = true
	return true
}

// Resume lifts a pause.
func (s *Session) Resume() bool {
	if !s.paused {
		return false
	}
	s.paused = false
	return true
}

// TogglePause switches between paused and running.
func (s *Session) TogglePause() bool {
	if s.paused {
		return s.Resume()
	}
	return s.Pause()
}

// Restart begins a new game on an empty board with the same rules.
func (s *Session) Restart() {
	s.start()
}

// GhostY returns the row the active piece would land on.
func (s *Session) GhostY() int {
	y := s.piece.Y
	for !s.grid.IsBlocked(s.piece.Shape, s.piece.X, y+1) {
		y++
	}
	return y
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lines returns the total rows cleared.
func (s *Session) Lines() int { return s.lines }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// GameOver reports whether the session ended.
func (s *Session) GameOver() bool { return s.gameOver }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// LockFraction returns the lock timer progress in percent, 0–100.
func (s *Session) LockFraction() float64 { return s.lock.Fraction() }

// Rules returns the rules the session was created with.
func (s *Session) Rules() Rules { return s.rules }
