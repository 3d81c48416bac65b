package tetris

import "github.com/vovakirdan/blockfall/internal/config"

// GravityCap is the most rows a single gravity step may descend.
const GravityCap = config.MaxGravityRows

// GravityStep raises the rows-per-gravity-step multiplier from Level on.
type GravityStep struct {
	Level int
	Rows  int
}

// Scoring holds the point table and the level/speed curves.
type Scoring struct {
	LinePoints      [5]int // indexed by rows cleared in one lock, 0–4
	HardDropPerRow  int
	SoftDropPerStep int
	LinesPerLevel   int

	BaseIntervalMs int // drop interval at level 1
	IntervalStepMs int // reduction per level
	MinIntervalMs  int // floor

	Gravity    []GravityStep // ascending by Level; empty disables the multiplier
	MaxGravity int
}

// DefaultScoring returns the classic curve: 100/300/500/800 × level, a new level
// every 10 lines, and a drop interval shrinking by 100 ms down to 100 ms.
func DefaultScoring() Scoring {
	return Scoring{
		LinePoints:      [5]int{0, 100, 300, 500, 800},
		HardDropPerRow:  2,
		SoftDropPerStep: 1,
		LinesPerLevel:   10,
		BaseIntervalMs:  1000,
		IntervalStepMs:  100,
		MinIntervalMs:   100,
		MaxGravity:      3,
	}
}

// VariantGravity is the stepped multiplier used by the variant rules.
func VariantGravity() []GravityStep {
	return []GravityStep{{Level: 5, Rows: 2}, {Level: 10, Rows: 3}}
}

// LineClearPoints returns the award for clearing n rows at level.
func (s Scoring) LineClearPoints(n, level int) int {
	if n <= 0 {
		return 0
	}
	n = min(n, len(s.LinePoints)-1)
	return s.LinePoints[n] * level
}

// LevelFor returns the level reached after the given total of cleared lines.
func (s Scoring) LevelFor(lines int) int {
	per := s.LinesPerLevel
	if per <= 0 {
		per = 10
	}
	return lines/per + 1
}

// DropInterval returns the gravity interval in ms for a level.
func (s Scoring) DropInterval(level int) int {
	return max(s.MinIntervalMs, s.BaseIntervalMs-(level-1)*s.IntervalStepMs)
}

// GravityFor returns how many rows a gravity step descends at a level.
func (s Scoring) GravityFor(level int) int {
	rows := 1
	for _, step := range s.Gravity {
		if level >= step.Level {
			rows = step.Rows
		}
	}
	limit := GravityCap
	if s.MaxGravity > 0 {
		limit = min(limit, s.MaxGravity)
	}
	return max(min(rows, limit), 1)
}
