package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionModelRoutesViews(t *testing.T) {
	m := NewSessionModel(openTestStore(t), log.New(io.Discard), core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60})

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.active != viewScores {
		t.Fatalf("active = %d, want scores", m.active)
	}

	// Leaving the scoreboard must not end the connection.
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.active != viewMenu || m.quitting {
		t.Fatalf("active = %d quitting = %v", m.active, m.quitting)
	}

	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.active != viewGame || m.game == nil {
		t.Fatalf("enter should start a game, active = %d", m.active)
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}

	m, _ = sendSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 {
		t.Errorf("resize not recorded: %+v", m.config)
	}

	m, cmd = sendSession(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should end the session")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}
