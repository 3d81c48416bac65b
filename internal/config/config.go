// Package config provides YAML-based configuration for the engine, with
// environment overrides and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all tunable rules of the puzzle engine.
type TetrisConfig struct {
	Board      BoardConfig   `yaml:"board"`
	Timing     TimingConfig  `yaml:"timing"`
	Scoring    ScoringConfig `yaml:"scoring"`
	Variant    VariantConfig `yaml:"variant"`
	Randomizer string        `yaml:"randomizer"` // "uniform" or "bag"
}

// BoardConfig defines the playfield size.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines lock delay and the drop-interval curve, in milliseconds.
type TimingConfig struct {
	LockDelayMs    int `yaml:"lock_delay_ms"`
	MaxLockResets  int `yaml:"max_lock_resets"`
	BaseIntervalMs int `yaml:"base_interval_ms"`
	IntervalStepMs int `yaml:"interval_step_ms"`
	MinIntervalMs  int `yaml:"min_interval_ms"`
}

// ScoringConfig defines the point table and leveling.
type ScoringConfig struct {
	LinePoints      []int `yaml:"line_points"` // awards for 1, 2, 3, 4 rows
	HardDropPerRow  int   `yaml:"hard_drop_per_row"`
	SoftDropPerStep int   `yaml:"soft_drop_per_step"`
	LinesPerLevel   int   `yaml:"lines_per_level"`
}

// VariantConfig enables the non-classic rules.
type VariantConfig struct {
	Enabled        bool          `yaml:"enabled"`
	HardenedChance float64       `yaml:"hardened_chance"`
	RotationBudget int           `yaml:"rotation_budget"` // -1 = unlimited
	Gravity        []GravityStep `yaml:"gravity"`
	MaxGravity     int           `yaml:"max_gravity"`
}

// MaxGravityRows bounds variant.max_gravity and the rows of any gravity step.
const MaxGravityRows = 3

// GravityStep sets rows-per-gravity-step from a level on.
type GravityStep struct {
	Level int `yaml:"level"`
	Rows  int `yaml:"rows"`
}

// DifficultyPreset represents a named rule adjustment.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyVariant DifficultyPreset = "variant"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyVariant:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or variant)", name)
	}
}

// Validate reports every out-of-range value in the config.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Width < 4 || c.Board.Width > 40 {
		errs = append(errs, fmt.Errorf("board.width %d out of range [4, 40]", c.Board.Width))
	}
	if c.Board.Height < 4 || c.Board.Height > 60 {
		errs = append(errs, fmt.Errorf("board.height %d out of range [4, 60]", c.Board.Height))
	}
	if c.Timing.LockDelayMs < 0 {
		errs = append(errs, errors.New("timing.lock_delay_ms must not be negative"))
	}
	if c.Timing.MaxLockResets < 0 {
		errs = append(errs, errors.New("timing.max_lock_resets must not be negative"))
	}
	if c.Timing.MinIntervalMs <= 0 || c.Timing.BaseIntervalMs < c.Timing.MinIntervalMs {
		errs = append(errs, errors.New("timing: need 0 < min_interval_ms <= base_interval_ms"))
	}
	if len(c.Scoring.LinePoints) != 4 {
		errs = append(errs, fmt.Errorf("scoring.line_points needs 4 entries, got %d", len(c.Scoring.LinePoints)))
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, errors.New("scoring.lines_per_level must be positive"))
	}
	if c.Variant.HardenedChance < 0 || c.Variant.HardenedChance > 1 {
		errs = append(errs, fmt.Errorf("variant.hardened_chance %.2f out of range [0, 1]", c.Variant.HardenedChance))
	}
	if c.Variant.RotationBudget < -1 {
		errs = append(errs, errors.New("variant.rotation_budget must be -1 (unlimited) or >= 0"))
	}
	if c.Variant.MaxGravity < 1 || c.Variant.MaxGravity > MaxGravityRows {
		errs = append(errs, fmt.Errorf("variant.max_gravity %d out of range [1, %d]", c.Variant.MaxGravity, MaxGravityRows))
	}
	for i, step := range c.Variant.Gravity {
		if step.Level < 1 || step.Rows < 1 {
			errs = append(errs, fmt.Errorf("variant.gravity[%d]: level and rows must be at least 1", i))
		}
	}
	switch c.Randomizer {
	case "", "uniform", "bag":
	default:
		errs = append(errs, fmt.Errorf("randomizer %q: want uniform or bag", c.Randomizer))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
