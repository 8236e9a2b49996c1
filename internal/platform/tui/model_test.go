package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelWaitRunsRound(t *testing.T) {
	m := NewModel(newTestGame(t), Options{Width: 60, Height: 20})

	m, cmd := update(t, m, runeKey('5'))
	if cmd != nil {
		t.Error("wait returned a command")
	}
	if got := m.Controller().Turns(); got != 1 {
		t.Errorf("Turns() = %d, expected 1", got)
	}

	m, _ = update(t, m, runeKey('x'))
	if got := m.Controller().Turns(); got != 1 {
		t.Errorf("unbound key changed Turns() to %d", got)
	}
}

func TestModelQuitSavesRun(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(newTestGame(t), Options{Store: store, Player: "alice", Width: 60, Height: 20})

	m, _ = update(t, m, runeKey('.'))
	m, _ = update(t, m, runeKey('.'))
	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit command = %T, expected tea.QuitMsg", cmd())
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	run := runs[0]
	if run.Seed != 7 || run.Turns != 2 || run.MapsVisited != 1 || run.Player != "alice" {
		t.Errorf("saved run = %+v", run)
	}
	if run.Messages != 1 {
		t.Errorf("saved run has %d messages, expected the welcome message", run.Messages)
	}
}

func TestModelQuitWithoutStore(t *testing.T) {
	m := NewModel(newTestGame(t), Options{})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
}

func TestModelResizeRequest(t *testing.T) {
	m := NewModel(newTestGame(t), Options{Width: 60, Height: 20})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyF2})
	if cmd != nil {
		t.Error("resize request returned a command")
	}
	if m.view != core.Pos(40, 30) {
		t.Errorf("view = %v, expected [40, 30]", m.view)
	}
}

func TestModelWindowSize(t *testing.T) {
	m := NewModel(newTestGame(t), Options{Width: 60, Height: 20})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
	if w, h := m.Controller().Viewport(); w != 100 || h != 40 {
		t.Errorf("Viewport() = %dx%d, expected 100x40", w, h)
	}

	m, _ = update(t, m, runeKey('?'))
	if m.screen.Height() != 36 {
		t.Errorf("screen height with full help = %d, expected 36", m.screen.Height())
	}
	m, _ = update(t, m, runeKey('?'))
	if m.screen.Height() != 39 {
		t.Errorf("screen height after closing help = %d, expected 39", m.screen.Height())
	}
}

func TestModelToggleMessages(t *testing.T) {
	m := NewModel(newTestGame(t), Options{Width: 60, Height: 20})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Controller().ShouldShowMessages() {
		t.Error("messages still shown after tab")
	}
	if m.Controller().Turns() != 0 {
		t.Errorf("toggle took %d turns", m.Controller().Turns())
	}
	if m.View() == "" {
		t.Error("View() is empty while playing")
	}
}
