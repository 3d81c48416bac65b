package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides holds the engine settings that may be overridden from the
// environment. Unset variables leave the loaded value untouched.
type EnvOverrides struct {
	BoardWidth     *int     `env:"BLOCKFALL_BOARD_WIDTH"`
	BoardHeight    *int     `env:"BLOCKFALL_BOARD_HEIGHT"`
	LockDelayMs    *int     `env:"BLOCKFALL_LOCK_DELAY_MS"`
	MaxLockResets  *int     `env:"BLOCKFALL_MAX_LOCK_RESETS"`
	Randomizer     *string  `env:"BLOCKFALL_RANDOMIZER"`
	Variant        *bool    `env:"BLOCKFALL_VARIANT"`
	HardenedChance *float64 `env:"BLOCKFALL_HARDENED_CHANCE"`
	RotationBudget *int     `env:"BLOCKFALL_ROTATION_BUDGET"`
}

// ParseEnvOverrides reads overrides from the process environment.
func ParseEnvOverrides() (EnvOverrides, error) {
	return parseEnvOverrides(env.Options{})
}

// ParseEnvOverridesFrom reads overrides from the given variables instead of
// the process environment.
func ParseEnvOverridesFrom(vars map[string]string) (EnvOverrides, error) {
	return parseEnvOverrides(env.Options{Environment: vars})
}

func parseEnvOverrides(opts env.Options) (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return EnvOverrides{}, fmt.Errorf("config: parse env: %w", err)
	}
	return o, nil
}

// Apply writes every set override into cfg.
func (o EnvOverrides) Apply(cfg *TetrisConfig) {
	setInt(&cfg.Board.Width, o.BoardWidth)
	setInt(&cfg.Board.Height, o.BoardHeight)
	setInt(&cfg.Timing.LockDelayMs, o.LockDelayMs)
	setInt(&cfg.Timing.MaxLockResets, o.MaxLockResets)
	setInt(&cfg.Variant.RotationBudget, o.RotationBudget)
	if o.Randomizer != nil {
		cfg.Randomizer = *o.Randomizer
	}
	if o.Variant != nil {
		cfg.Variant.Enabled = *o.Variant
	}
	if o.HardenedChance != nil {
		cfg.Variant.HardenedChance = *o.HardenedChance
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
