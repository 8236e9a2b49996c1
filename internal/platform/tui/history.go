package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-rogue/internal/message"
	"github.com/vovakirdan/tui-rogue/internal/storage"
)

// History layout constants
const (
	minWidthForLog = 100 // Minimum width to show the message pane
	logPaneWidth   = 44  // Width of the message pane
	maxRuns        = 100 // Max runs to load
)

// HistoryKeyMap defines the key bindings for the run history.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Delete key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Delete, k.Help, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "forget run"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing past runs.
type HistoryModel struct {
	store    *storage.Store
	runs     []storage.Run
	messages []message.Message // log of the selected run
	stats    *storage.Stats
	err      error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	showLog  bool // Whether to show the message pane
	quitting bool
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := HistoryModel{
		store:   store,
		keys:    DefaultHistoryKeyMap(),
		help:    h,
		width:   width,
		height:  height,
		showLog: width >= minWidthForLog,
	}

	m.table = m.createTable()
	m.loadRuns()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 10},
		{Title: "Player", Width: 10},
		{Title: "Turns", Width: 7},
		{Title: "Maps", Width: 5},
		{Title: "Length", Width: 9},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, stats, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns reloads runs and stats from the journal.
func (m *HistoryModel) loadRuns() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	runs, err := m.store.RecentRuns(maxRuns)
	if err != nil {
		m.err = err
	} else {
		m.runs = runs
	}
	if stats, err := m.store.GetStats(); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		rows[i] = table.Row{
			r.ID.String()[:8],
			player,
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%d", r.MapsVisited),
			r.Duration().Round(time.Second).String(),
			r.StartedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
	m.loadMessages()
}

// loadMessages loads the archived log of the selected run.
func (m *HistoryModel) loadMessages() {
	m.messages = nil
	run, ok := m.selected()
	if !ok || m.store == nil {
		return
	}
	msgs, err := m.store.RunMessages(run.ID)
	if err != nil {
		m.err = err
		return
	}
	m.messages = msgs
}

func (m HistoryModel) selected() (storage.Run, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return storage.Run{}, false
	}
	return m.runs[i], true
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if run, ok := m.selected(); ok && m.store != nil {
				if err := m.store.DeleteRun(run.ID); err != nil {
					m.err = err
					return m, nil
				}
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			m.loadMessages()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showLog = m.width >= minWidthForLog
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.loadMessages()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("RUN HISTORY", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	runs := boxStyle.Render(m.renderTableContent())

	if m.showLog {
		pane := boxStyle.Width(logPaneWidth).Render(m.renderMessages())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, runs, "  ", pane))
	} else {
		b.WriteString(runs)
	}

	b.WriteString("\n")
	b.WriteString(m.renderStats())

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.err.Error()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay a game and quit with q to record one!")
	}

	return m.table.View()
}

// renderMessages renders the newest messages of the selected run.
func (m HistoryModel) renderMessages() string {
	if len(m.messages) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("No messages")
	}

	rows := max(m.height-10, 1)
	var lines []string
	for i := len(m.messages) - 1; i >= 0 && len(lines) < rows; i-- {
		msg := m.messages[i]
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(msg.Severity.Color().Hex()))
		lines = append(lines, style.Render(truncate(msg.Contents, logPaneWidth-2)))
	}
	return strings.Join(lines, "\n")
}

// renderStats renders the journal totals.
func (m HistoryModel) renderStats() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return style.Render(fmt.Sprintf("%d runs, %d turns total, longest %d turns, most maps %d, last played %s",
		m.stats.Runs, m.stats.TotalTurns, m.stats.LongestRun, m.stats.MostMaps,
		m.stats.LastPlayed.Format("Jan 02 15:04")))
}

// Runs returns the runs currently listed.
func (m HistoryModel) Runs() []storage.Run {
	return m.runs
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunHistory runs the history browser.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
