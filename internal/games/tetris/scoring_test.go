package tetris

import (
	"math/rand"
	"testing"
)

func TestLineClearPoints(t *testing.T) {
	s := DefaultScoring()
	tests := []struct {
		rows, level, want int
	}{
		{0, 1, 0},
		{1, 1, 100},
		{2, 1, 300},
		{3, 1, 500},
		{4, 1, 800},
		{4, 3, 2400},
		{6, 1, 800},
	}
	for _, tc := range tests {
		if got := s.LineClearPoints(tc.rows, tc.level); got != tc.want {
			t.Errorf("LineClearPoints(%d, %d) = %d, want %d", tc.rows, tc.level, got, tc.want)
		}
	}
}

func TestLevelAndInterval(t *testing.T) {
	s := DefaultScoring()
	tests := []struct {
		lines, level, interval int
	}{
		{0, 1, 1000},
		{9, 1, 1000},
		{10, 2, 900},
		{45, 5, 600},
		{90, 10, 100},
		{200, 21, 100},
	}
	for _, tc := range tests {
		level := s.LevelFor(tc.lines)
		if level != tc.level {
			t.Errorf("LevelFor(%d) = %d, want %d", tc.lines, level, tc.level)
		}
		if got := s.DropInterval(level); got != tc.interval {
			t.Errorf("DropInterval(%d) = %d, want %d", level, got, tc.interval)
		}
	}
}

func TestGravityMultiplier(t *testing.T) {
	s := DefaultScoring()
	if got := s.GravityFor(20); got != 1 {
		t.Errorf("classic gravity = %d, want 1", got)
	}

	s.Gravity = VariantGravity()
	for level, want := range map[int]int{1: 1, 4: 1, 5: 2, 9: 2, 10: 3, 30: 3} {
		if got := s.GravityFor(level); got != want {
			t.Errorf("GravityFor(%d) = %d, want %d", level, got, want)
		}
	}

	s.Gravity = []GravityStep{{Level: 2, Rows: 9}}
	if got := s.GravityFor(2); got != 3 {
		t.Errorf("gravity cap: got %d, want 3", got)
	}

	s.MaxGravity = 2
	if got := s.GravityFor(2); got != 2 {
		t.Errorf("configured cap: got %d, want 2", got)
	}
}

func TestGravityCapWithoutConfiguredMax(t *testing.T) {
	s := DefaultScoring()
	s.MaxGravity = 0
	s.Gravity = []GravityStep{{Level: 1, Rows: 8}}
	if got := s.GravityFor(1); got != GravityCap {
		t.Errorf("GravityFor(1) = %d, want %d", got, GravityCap)
	}
}

func TestBagDealsEachKindOncePerBag(t *testing.T) {
	r := NewRandomizer(RandomizerBag, rand.New(rand.NewSource(7)))
	for bag := 0; bag < 5; bag++ {
		seen := make(map[Kind]int)
		for iter := 0; iter < len(Kinds); iter++ {
			seen[r.Next()]++
		}
		for _, k := range Kinds {
			if seen[k] != 1 {
				t.Errorf("bag %d: kind %s dealt %d times", bag, k, seen[k])
			}
		}
	}
}

func TestUniformRandomizerIsSeeded(t *testing.T) {
	a := NewRandomizer(RandomizerUniform, rand.New(rand.NewSource(42)))
	b := NewRandomizer("unknown", rand.New(rand.NewSource(42)))
	for i := 0; i < 50; i++ {
		if ka, kb := a.Next(), b.Next(); ka != kb {
			t.Fatalf("draw %d: %s != %s", i, ka, kb)
		}
	}
}
