package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rogue/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapTranslate(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
	}{
		{"numpad 8", runeKey('8'), core.KeyUp},
		{"vi k", runeKey('k'), core.KeyUp},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{"numpad 2", runeKey('2'), core.KeyDown},
		{"numpad 4", runeKey('4'), core.KeyLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{"numpad 7", runeKey('7'), core.KeyUpLeft},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, core.KeyUpLeft},
		{"numpad 9", runeKey('9'), core.KeyUpRight},
		{"numpad 1", runeKey('1'), core.KeyDownLeft},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, core.KeyDownRight},
		{"numpad 5", runeKey('5'), core.KeyWait},
		{"numpad 0", runeKey('0'), core.KeyWait},
		{"period", runeKey('.'), core.KeyWait},
		{"f1", tea.KeyMsg{Type: tea.KeyF1}, core.KeySpawn},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.KeyToggleMessages},
		{"f2", tea.KeyMsg{Type: tea.KeyF2}, core.KeyResize},
		{"q", runeKey('q'), core.KeyQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := keys.Translate(tt.msg)
			if ev.Kind != core.EventKey || ev.Key != tt.want {
				t.Errorf("Translate(%q) = %+v, expected key %v", tt.msg.String(), ev, tt.want)
			}
		})
	}
}

func TestKeyMapTranslateUnbound(t *testing.T) {
	keys := DefaultKeyMap()

	for _, msg := range []tea.KeyMsg{runeKey('x'), runeKey('?'), {Type: tea.KeyEnter}} {
		if ev := keys.Translate(msg); ev.Kind != core.EventNone {
			t.Errorf("Translate(%q) = %+v, expected no event", msg.String(), ev)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	n := 0
	for _, group := range keys.FullHelp() {
		n += len(group)
	}
	if n != 14 {
		t.Errorf("FullHelp() lists %d bindings, expected 14", n)
	}
}
