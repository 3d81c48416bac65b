package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDirName is the per-user data directory under $HOME.
const AppDirName = ".blockfall"

// Source describes where a loaded config came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadTetris loads the engine configuration.
// Search order: customPath -> ~/.blockfall/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// Files are applied on top of the built-in defaults, so partial files are allowed.
func LoadTetris(customPath string) (TetrisConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseTetris(data)
		if err != nil {
			return TetrisConfig{}, SourceCustom, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseTetris(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tetris.yaml")); err == nil {
		if cfg, err := parseTetris(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseTetris(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

func parseTetris(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, err
	}
	return cfg, nil
}

// UserConfigPath returns the path of a file in the user config directory,
// or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDirName, "configs", filename)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.LockDelayMs = 1500
		cfg.Timing.MaxLockResets = 25
		cfg.Randomizer = "bag"
	case DifficultyHard:
		cfg.Timing.LockDelayMs = 500
		cfg.Timing.MaxLockResets = 8
		cfg.Timing.MinIntervalMs = 50
	case DifficultyVariant:
		cfg.Variant.Enabled = true
	}
}

// Marshal renders the config as YAML.
func (c TetrisConfig) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return out, nil
}

// Resolve produces the effective configuration: file search, then the
// difficulty preset, then environment overrides, then validation.
func Resolve(customPath, presetName string) (TetrisConfig, Source, error) {
	preset, err := ParsePreset(presetName)
	if err != nil {
		return TetrisConfig{}, "", err
	}

	cfg, src, err := LoadTetris(customPath)
	if err != nil {
		return TetrisConfig{}, src, err
	}
	ApplyTetrisPreset(&cfg, preset)

	overrides, err := ParseEnvOverrides()
	if err != nil {
		return TetrisConfig{}, src, err
	}
	overrides.Apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return TetrisConfig{}, src, err
	}
	return cfg, src, nil
}
