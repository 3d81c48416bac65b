package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
)

var (
	flagConfig     string
	flagDifficulty string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the engine configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective engine config as YAML",
	Long: `Resolve the engine config the same way 'play' does and print it.

Resolution order:
  --config path, ~/.blockfall/configs/tetris.yaml, ./configs/tetris.yaml,
  then the built-in default. The difficulty preset and BLOCKFALL_*
  environment overrides are applied on top.

Examples:
  blockfall config dump
  blockfall config dump --difficulty hard
  BLOCKFALL_LOCK_DELAY_MS=250 blockfall config dump`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd, configDumpCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, variant")
	}
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(cmd *cobra.Command, _ []string) error {
	cfg, src, err := config.Resolve(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	out, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", src, out)
	return nil
}

// applyGameConfig resolves the engine config once and hands it to the game
// package. An unusable config is reported and replaced by the defaults.
func applyGameConfig(logger *log.Logger) {
	cfg, src, err := config.Resolve(flagConfig, flagDifficulty)
	if err != nil {
		logger.Warn("using default engine config", "error", err)
		cfg = config.DefaultTetrisConfig()
		src = config.SourceBuiltin
	}
	logger.Debug("engine config", "source", src, "difficulty", flagDifficulty)
	tetris.SetConfig(&cfg)
}
