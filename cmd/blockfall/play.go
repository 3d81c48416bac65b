package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

const defaultGameID = "tetris"

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: tetris).

Controls:
  Left/Right, A/D   - Shift piece
  Up, W, X          - Rotate clockwise
  Down, S           - Soft drop
  Space             - Hard drop
  C                 - Hold
  P                 - Pause
  R                 - Restart (after game over)
  Esc/B             - Back (when paused or over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy    - Long lock delay, many lock resets
  normal  - Defaults
  hard    - Short lock delay, few lock resets
  variant - Normal timing with hardened pieces and a rotation budget

Examples:
  blockfall play
  blockfall play tetris_variant
  blockfall play --difficulty hard
  blockfall play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// runtimeConfig builds the per-run config from the terminal size and
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. The game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		newLogger().Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'blockfall list')", gameID)
	}

	logger := newLogger()
	applyGameConfig(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	runLogger, closeLog := sessionLogger(logger)
	defer closeLog()

	if _, err := tui.Run(game, store, runLogger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
