package tetris

// Lock delay defaults.
const (
	DefaultLockDelayMs   = 1000.0
	DefaultMaxLockResets = 15
)

// LockState is the resting state of the active piece.
type LockState int

const (
	Airborne LockState = iota
	Landed
)

func (s LockState) String() string {
	if s == Landed {
		return "landed"
	}
	return "airborne"
}

// LockController tracks the grace period between a piece landing and it
// locking into the grid. The timer is advanced only by caller-supplied deltas.
type LockController struct {
	delay     float64
	maxResets int

	state   LockState
	elapsed float64
	resets  int
}

// NewLockController creates a controller with the given delay (ms) and reset cap.
func NewLockController(delayMs float64, maxResets int) LockController {
	return LockController{delay: delayMs, maxResets: maxResets}
}

// Land enters the Landed state. Landing while already landed keeps the
// running timer and reset count.
func (l *LockController) Land() {
	if l.state == Landed {
		return
	}
	l.state = Landed
	l.elapsed = 0
	l.resets = 0
}

// Lift returns to Airborne after the piece gained free space beneath it.
func (l *LockController) Lift() {
	l.state = Airborne
	l.elapsed = 0
}

// Clear puts the controller in the state of a freshly spawned piece.
func (l *LockController) Clear() {
	l.state = Airborne
	l.elapsed = 0
	l.resets = 0
}

// ResetDelay restarts the timer while Landed. Once the cap is reached the
// timer keeps running and ResetDelay returns false.
func (l *LockController) ResetDelay() bool {
	if l.state != Landed || l.resets >= l.maxResets {
		return false
	}
	l.elapsed = 0
	l.resets++
	return true
}

// Advance adds dt milliseconds while Landed and reports whether the delay expired.
func (l *LockController) Advance(dtMs float64) bool {
	if l.state != Landed {
		return false
	}
	l.elapsed += dtMs
	return l.elapsed >= l.delay
}

// State returns the current lock state.
func (l LockController) State() LockState { return l.state }

// Landed reports whether the piece is resting on a surface.
func (l LockController) Landed() bool { return l.state == Landed }

// Elapsed returns the time spent landed since the last reset, in ms.
func (l LockController) Elapsed() float64 { return l.elapsed }

// ResetsUsed returns how many delay resets were spent since landing.
func (l LockController) ResetsUsed() int { return l.resets }

// Fraction returns lock progress in percent, 0–100.
func (l LockController) Fraction() float64 {
	if l.state != Landed {
		return 0
	}
	if l.delay <= 0 {
		return 100
	}
	return min(l.elapsed/l.delay*100, 100)
}
