package tetris

import "testing"

func TestLockExpiresAfterDelay(t *testing.T) {
	l := NewLockController(1000, 15)
	if l.Advance(5000) {
		t.Fatal("airborne controller must not expire")
	}

	l.Land()
	if l.Advance(999) {
		t.Error("expired before delay")
	}
	if !l.Advance(1) {
		t.Error("should expire at exactly the delay")
	}
}

func TestLandWhileLandedKeepsTimer(t *testing.T) {
	l := NewLockController(1000, 15)
	l.Land()
	l.Advance(500)
	l.Land()
	if got := l.Elapsed(); got != 500 {
		t.Errorf("Elapsed = %v, want 500", got)
	}
}

func TestResetDelayCap(t *testing.T) {
	l := NewLockController(1000, 2)
	if l.ResetDelay() {
		t.Error("reset while airborne must be refused")
	}

	l.Land()
	for i := 0; i < 2; i++ {
		l.Advance(900)
		if !l.ResetDelay() {
			t.Fatalf("reset %d refused", i+1)
		}
		if l.Elapsed() != 0 {
			t.Fatalf("reset %d did not zero the timer", i+1)
		}
	}

	l.Advance(900)
	if l.ResetDelay() {
		t.Error("reset beyond cap accepted")
	}
	if got := l.ResetsUsed(); got != 2 {
		t.Errorf("ResetsUsed = %d, want 2", got)
	}
	if !l.Advance(100) {
		t.Error("timer should keep running after the cap")
	}
}

func TestLiftAndClear(t *testing.T) {
	l := NewLockController(1000, 15)
	l.Land()
	l.Advance(300)
	l.ResetDelay()
	l.Lift()
	if l.Landed() || l.Elapsed() != 0 {
		t.Errorf("after Lift: state=%s elapsed=%v", l.State(), l.Elapsed())
	}

	l.Land()
	l.ResetDelay()
	l.Clear()
	if l.Landed() || l.ResetsUsed() != 0 {
		t.Errorf("after Clear: state=%s resets=%d", l.State(), l.ResetsUsed())
	}
}

func TestLockFraction(t *testing.T) {
	l := NewLockController(1000, 15)
	if l.Fraction() != 0 {
		t.Error("airborne fraction should be 0")
	}
	l.Land()
	l.Advance(250)
	if got := l.Fraction(); got != 25 {
		t.Errorf("Fraction = %v, want 25", got)
	}
	l.Advance(5000)
	if got := l.Fraction(); got != 100 {
		t.Errorf("Fraction = %v, want 100", got)
	}
}
