package tetris

import (
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode selects the rule set a registered game plays with.
type Mode int

const (
	ModeClassic Mode = iota // standard rules
	ModeVariant             // hardened pieces, rotation budget, gravity multiplier
)

// override is the config games are created with. Nil means built-in defaults.
var override *config.TetrisConfig

// SetConfig makes every game created afterwards use cfg as is. Passing nil
// restores the built-in defaults. Callers resolve files, presets and the
// environment themselves and report their errors.
func SetConfig(cfg *config.TetrisConfig) {
	override = cfg
}

func loadConfig() config.TetrisConfig {
	if override != nil {
		return *override
	}
	return config.DefaultTetrisConfig()
}

// RulesFromConfig converts the file configuration into engine rules.
// Variant settings apply when variant is true or the config enables them.
func RulesFromConfig(cfg config.TetrisConfig, variant bool) Rules {
	r := DefaultRules()
	r.Width = cfg.Board.Width
	r.Height = cfg.Board.Height
	r.LockDelayMs = float64(cfg.Timing.LockDelayMs)
	r.MaxLockResets = cfg.Timing.MaxLockResets
	r.Randomizer = cfg.Randomizer

	sc := DefaultScoring()
	for i, p := range cfg.Scoring.LinePoints {
		if i+1 < len(sc.LinePoints) {
			sc.LinePoints[i+1] = p
		}
	}
	sc.HardDropPerRow = cfg.Scoring.HardDropPerRow
	sc.SoftDropPerStep = cfg.Scoring.SoftDropPerStep
	sc.LinesPerLevel = cfg.Scoring.LinesPerLevel
	sc.BaseIntervalMs = cfg.Timing.BaseIntervalMs
	sc.IntervalStepMs = cfg.Timing.IntervalStepMs
	sc.MinIntervalMs = cfg.Timing.MinIntervalMs

	if variant || cfg.Variant.Enabled {
		r.HardenedChance = cfg.Variant.HardenedChance
		r.RotationBudget = cfg.Variant.RotationBudget
		sc.MaxGravity = cfg.Variant.MaxGravity
		sc.Gravity = make([]GravityStep, 0, len(cfg.Variant.Gravity))
		for _, g := range cfg.Variant.Gravity {
			sc.Gravity = append(sc.Gravity, GravityStep{Level: g.Level, Rows: g.Rows})
		}
	}
	r.Scoring = sc
	return r
}

// Game adapts a Session to the arcade platform: it maps input actions to
// engine commands and turns each fixed tick into a millisecond delta.
type Game struct {
	mode    Mode
	session *Session
	runtime core.RuntimeConfig
	tickMs  float64
}

// New creates a classic game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewVariant creates a game with the variant rules enabled.
func NewVariant() *Game {
	return &Game{mode: ModeVariant}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_variant", func() registry.Game {
		return NewVariant()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeVariant {
		return "tetris_variant"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeVariant {
		return "Tetris (Variant)"
	}
	return "Tetris"
}

// Reset starts a new session with freshly loaded rules.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tickMs = runtime.TickMillis()
	rules := RulesFromConfig(loadConfig(), g.mode == ModeVariant)
	g.session = NewSession(rules, runtime.Seed)
}

// Step applies the frame's actions in arrival order, then advances time by
// one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session
	for _, a := range in.Actions() {
		switch a {
		case core.ActionRestart:
			if s.GameOver() {
				s.Restart()
			}
		case core.ActionPause:
			s.TogglePause()
		case core.ActionLeft:
			s.MoveLeft()
		case core.ActionRight:
			s.MoveRight()
		case core.ActionRotate:
			s.Rotate()
		case core.ActionSoftDrop:
			s.SoftDrop()
		case core.ActionHardDrop:
			s.HardDrop()
		case core.ActionHold:
			s.Hold()
		}
	}
	s.Tick(g.tickMs)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Lines:    g.session.Lines(),
		Level:    g.session.Level(),
		GameOver: g.session.GameOver(),
		Paused:   g.session.Paused(),
	}
}

// Snapshot returns the engine snapshot for the running session.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// MeterLabel names the progress bar shown by the platform.
func (g *Game) MeterLabel() string { return "Lock" }

// MeterValue reports the lock timer progress in [0, 1]. It is zero while the
// piece is airborne.
func (g *Game) MeterValue() float64 {
	if g.session == nil {
		return 0
	}
	return g.session.LockFraction() / 100
}

var _ registry.Meter = (*Game)(nil)
