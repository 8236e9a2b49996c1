package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/game"
	"github.com/vovakirdan/tui-rogue/internal/storage"
)

// Options configures a Model.
type Options struct {
	Atlas  *Atlas
	Shown  int            // message panel lines
	Store  *storage.Store // run journal, may be nil
	Player string         // recorded with the run
	Logger *log.Logger
	Width  int // initial terminal size
	Height int
}

// Model is the Bubble Tea model hosting one game.
type Model struct {
	ctrl     *game.Controller
	renderer *Renderer
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	store    *storage.Store
	logger   *log.Logger
	player   string
	height   int // terminal rows
	started  time.Time
	view     core.Position // map area requested by the game, in cells
	saved    bool
	quitting bool
}

// NewModel creates a Bubble Tea model for the given controller.
func NewModel(ctrl *game.Controller, opts Options) Model {
	atlas := opts.Atlas
	if atlas == nil {
		atlas = DefaultAtlas()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		cfg := core.DefaultConfig()
		w, h = cfg.ScreenW, cfg.ScreenH
	}

	hm := help.New()
	hm.Width = w

	return Model{
		ctrl:     ctrl,
		renderer: NewRenderer(atlas, opts.Shown),
		screen:   core.NewScreen(w, core.Max(h-1, 1)), // one row for help
		keys:     DefaultKeyMap(),
		help:     hm,
		store:    opts.Store,
		logger:   logger,
		player:   opts.Player,
		height:   h,
		started:  time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.screen.Width(), m.screenRows())
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	ev := m.keys.Translate(msg)
	if ev.Kind == core.EventNone {
		return m, nil
	}
	m.ctrl.HandleEvent(ev)

	return m.pollStatus()
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, m.screenRows())
	m.ctrl.HandleEvent(core.ResizeEvent(msg.Width, msg.Height))
	return m, nil
}

// pollStatus acts on the request the game left for its host, if any.
func (m Model) pollStatus() (tea.Model, tea.Cmd) {
	s, ok := m.ctrl.Status()
	if !ok {
		return m, nil
	}

	switch s.Kind {
	case game.StatusQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	case game.StatusResize:
		m.view = core.Pos(s.Width/tileSize, s.Height/tileSize)
		m.logger.Debug("view resized", "cells", m.view)
	}
	return m, nil
}

// saveRun records the finished game in the journal, once.
func (m *Model) saveRun() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	run := storage.Run{
		ID:          uuid.New(),
		Seed:        m.ctrl.Seed(),
		Turns:       m.ctrl.Turns(),
		MapsVisited: m.ctrl.MapsVisited(),
		Player:      m.player,
		StartedAt:   m.started,
		EndedAt:     time.Now(),
	}
	if err := m.store.SaveRun(run, m.ctrl.History()); err != nil {
		m.logger.Error("cannot save run", "run", run.ID, "err", err)
		return
	}
	m.logger.Info("run saved", "run", run.ID, "turns", run.Turns, "maps", run.MapsVisited)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Draw(m.screen, m.ctrl, m.view)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".rogue", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("rogue_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// screenRows is the terminal height left over by the help bar.
func (m Model) screenRows() int {
	rows := 1
	if m.help.ShowAll {
		for _, group := range m.keys.FullHelp() {
			rows = core.Max(rows, len(group))
		}
	}
	return core.Max(m.height-rows, 1)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.ctrl, m.view)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return m.renderer.RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Controller returns the hosted game.
func (m Model) Controller() *game.Controller {
	return m.ctrl
}

// Run starts the Bubble Tea program with the given model.
func Run(ctrl *game.Controller, opts Options) error {
	p := tea.NewProgram(
		NewModel(ctrl, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
