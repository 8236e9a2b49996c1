package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rogue/internal/core"
)

// KeyMap defines the in-game key bindings. Movement follows the numeric
// keypad, with vi keys and arrows as alternatives.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	UpLeft    key.Binding
	UpRight   key.Binding
	DownLeft  key.Binding
	DownRight key.Binding
	Wait      key.Binding
	Spawn     key.Binding
	Messages  key.Binding
	Resize    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Wait, k.Spawn, k.Messages, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.UpLeft, k.UpRight, k.DownLeft, k.DownRight},
		{k.Wait, k.Spawn, k.Messages, k.Resize},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("8", "k", "up"),
			key.WithHelp("8/k", "north"),
		),
		Down: key.NewBinding(
			key.WithKeys("2", "j", "down"),
			key.WithHelp("2/j", "south"),
		),
		Left: key.NewBinding(
			key.WithKeys("4", "h", "left"),
			key.WithHelp("4/h", "west"),
		),
		Right: key.NewBinding(
			key.WithKeys("6", "l", "right"),
			key.WithHelp("6/l", "east"),
		),
		UpLeft: key.NewBinding(
			key.WithKeys("7", "y", "home"),
			key.WithHelp("7/y", "north-west"),
		),
		UpRight: key.NewBinding(
			key.WithKeys("9", "u", "pgup"),
			key.WithHelp("9/u", "north-east"),
		),
		DownLeft: key.NewBinding(
			key.WithKeys("1", "b", "end"),
			key.WithHelp("1/b", "south-west"),
		),
		DownRight: key.NewBinding(
			key.WithKeys("3", "n", "pgdown"),
			key.WithHelp("3/n", "south-east"),
		),
		Wait: key.NewBinding(
			key.WithKeys("0", "5", "."),
			key.WithHelp("5/.", "wait"),
		),
		Spawn: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "spawn soldier"),
		),
		Messages: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "messages"),
		),
		Resize: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "resize view"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Translate decodes a key press into a game event. Keys with no game
// meaning, including Help, yield an event of kind EventNone.
func (k KeyMap) Translate(msg tea.KeyMsg) core.Event {
	for _, b := range k.gameBindings() {
		if key.Matches(msg, b.binding) {
			return core.KeyEvent(b.key)
		}
	}
	return core.Event{}
}

type gameBinding struct {
	binding key.Binding
	key     core.Key
}

func (k KeyMap) gameBindings() []gameBinding {
	return []gameBinding{
		{k.Up, core.KeyUp},
		{k.Down, core.KeyDown},
		{k.Left, core.KeyLeft},
		{k.Right, core.KeyRight},
		{k.UpLeft, core.KeyUpLeft},
		{k.UpRight, core.KeyUpRight},
		{k.DownLeft, core.KeyDownLeft},
		{k.DownRight, core.KeyDownRight},
		{k.Wait, core.KeyWait},
		{k.Spawn, core.KeySpawn},
		{k.Messages, core.KeyToggleMessages},
		{k.Resize, core.KeyResize},
		{k.Quit, core.KeyQuit},
	}
}
