package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded rule set, identical to the
// embedded defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			LockDelayMs:    1000,
			MaxLockResets:  15,
			BaseIntervalMs: 1000,
			IntervalStepMs: 100,
			MinIntervalMs:  100,
		},
		Scoring: ScoringConfig{
			LinePoints:      []int{100, 300, 500, 800},
			HardDropPerRow:  2,
			SoftDropPerStep: 1,
			LinesPerLevel:   10,
		},
		Variant: VariantConfig{
			Enabled:        false,
			HardenedChance: 0.15,
			RotationBudget: 4,
			Gravity: []GravityStep{
				{Level: 5, Rows: 2},
				{Level: 10, Rows: 3},
			},
			MaxGravity: 3,
		},
		Randomizer: "uniform",
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_variant":
		return defaultTetrisYAML
	default:
		return nil
	}
}
