package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// fakeGame ends after a fixed number of steps and restarts on ActionRestart.
type fakeGame struct {
	steps, endAfter int
	over, paused    bool
	meter           float64
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.steps, g.over = 0, false }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "FAKE") }
func (g *fakeGame) MeterLabel() string { return "Lock" }
func (g *fakeGame) MeterValue() float64 { return g.meter }
func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: 100, Lines: 2, Level: 1, GameOver: g.over, Paused: g.paused}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.over {
		g.Reset(core.RuntimeConfig{})
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	g.steps++
	if g.steps >= g.endAfter {
		g.over = true
	}
	return core.StepResult{State: g.State()}
}

var _ registry.Meter = (*fakeGame)(nil)

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(GameModel)
}

func press(t *testing.T, m GameModel, msg tea.KeyMsg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(GameModel), cmd
}

func newModel(t *testing.T, g registry.Game, store *storage.Store) GameModel {
	t.Helper()
	m := NewGameModel(g, store, nil, core.RuntimeConfig{ScreenW: 100, ScreenH: 12, TickRate: 60, Seed: 1})
	m.Init()
	return m
}

func TestScoreSavedOncePerRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g := &fakeGame{endAfter: 3}
	m := newModel(t, g, store)
	first := m.SessionID()

	for iter := 0; iter < 10; iter++ {
		m = tick(t, m)
	}
	scores, _ := store.AllScores("fake")
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].SessionID != first || scores[0].Lines != 2 || scores[0].Level != 1 {
		t.Errorf("entry = %+v", scores[0])
	}

	m, _ = press(t, m, runeKey('r'))
	m = tick(t, m)
	if m.State().GameOver {
		t.Fatal("restart should resume play")
	}
	if m.SessionID() == first {
		t.Error("restart should start a new session id")
	}

	for iter := 0; iter < 5; iter++ {
		m = tick(t, m)
	}
	scores, _ = store.AllScores("fake")
	if len(scores) != 2 {
		t.Errorf("saved %d scores after second run, want 2", len(scores))
	}
}

func TestBackOnlyWhenStopped(t *testing.T) {
	m := newModel(t, &fakeGame{endAfter: 1000}, nil)
	m = tick(t, m)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back must be ignored while playing")
	}

	m, _ = press(t, m, runeKey('p'))
	m = tick(t, m)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestQuit(t *testing.T) {
	m := newModel(t, &fakeGame{endAfter: 1000}, nil)
	m, cmd := press(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestViewShowsMeterAndHelp(t *testing.T) {
	g := &fakeGame{endAfter: 1000, meter: 0.5}
	m := newModel(t, g, nil)
	view := m.View()

	for _, want := range []string{"FAKE", "Lock", "hard drop"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if lines := strings.Count(view, "\n") + 1; lines != 12 {
		t.Errorf("view has %d lines, want 12", lines)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextColored(0, 1, "xyz", core.ColorPurple)

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows")
	}
}
