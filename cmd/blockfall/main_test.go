package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/storage"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagConfig, flagDifficulty = "", ""
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestListShowsModes(t *testing.T) {
	out := execute(t, "list")
	assert.Contains(t, out, "tetris")
	assert.Contains(t, out, "tetris_variant")
	assert.Contains(t, out, "Tetris (Variant)")
}

func TestConfigDumpAppliesPreset(t *testing.T) {
	out := execute(t, "config", "dump", "--difficulty", "hard")
	assert.Contains(t, out, "# source: embedded")
	assert.Contains(t, out, "lock_delay_ms: 500")
	assert.Contains(t, out, "max_lock_resets: 8")
}

func TestConfigDumpEnvOverride(t *testing.T) {
	t.Setenv("BLOCKFALL_LOCK_DELAY_MS", "250")
	out := execute(t, "config", "dump")
	assert.Contains(t, out, "lock_delay_ms: 250")
}

func TestScoresListsSavedRuns(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(db)
	require.NoError(t, err)
	_, err = store.SaveScore(storage.ScoreEntry{GameID: "tetris", SessionID: "s1", Score: 1200, Lines: 11, Level: 2})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	out := execute(t, "scores", "--db", db)
	assert.Contains(t, out, "High Scores - Tetris")
	assert.Contains(t, out, "1200")
	assert.Contains(t, out, "Most lines: 11")
}

func TestScoresRejectsUnknownMode(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	rootCmd.SetArgs([]string{"scores", "pong"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	assert.Error(t, rootCmd.Execute())
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
