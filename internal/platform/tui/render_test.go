package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-rogue/internal/config"
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/game"
)

func newTestGame(t *testing.T) *game.Controller {
	t.Helper()

	cfg := config.Default()
	cfg.Map.Width, cfg.Map.Height = 20, 10
	c, err := game.FromConfig(cfg, 7, nil)
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}
	return c
}

func TestCameraAxis(t *testing.T) {
	tests := []struct {
		name            string
		pos, size, view int
		want            int
	}{
		{"small map centred", 5, 10, 20, -5},
		{"exact fit", 3, 20, 20, 0},
		{"left edge", 0, 56, 20, 0},
		{"follows player", 30, 56, 20, 20},
		{"right edge", 55, 56, 20, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cameraAxis(tt.pos, tt.size, tt.view); got != tt.want {
				t.Errorf("cameraAxis(%d, %d, %d) = %d, expected %d", tt.pos, tt.size, tt.view, got, tt.want)
			}
		})
	}
}

func TestRendererDraw(t *testing.T) {
	c := newTestGame(t)
	r := NewRenderer(DefaultAtlas(), 6)
	scr := core.NewScreen(40, 20)

	r.Draw(scr, c, core.Position{})

	if row := scr.Row(0); !strings.HasPrefix(row, "Turn 0  Maps 1") {
		t.Errorf("status line = %q", row)
	}

	// 40x11 map area around a 20x10 map: columns shifted by 10, rows by 0.
	p := c.PlayerPosition()
	if got := scr.Get(p.X+10, p.Y+1); got != '@' {
		t.Errorf("player cell = %q, expected '@'", got)
	}
	if got := scr.Get(0, 1); got != ' ' {
		t.Errorf("cell left of the map = %q, expected blank", got)
	}

	// Message panel: 6 lines plus its border, at the bottom.
	if got := scr.Get(0, 12); got != '┌' {
		t.Errorf("panel corner = %q, expected '┌'", got)
	}
	if row := scr.Row(13); !strings.Contains(row, "Welcome!") {
		t.Errorf("first panel line = %q, expected the welcome message", row)
	}
}

func TestRendererDrawHiddenMessages(t *testing.T) {
	c := newTestGame(t)
	c.HandleEvent(core.KeyEvent(core.KeyToggleMessages))

	r := NewRenderer(DefaultAtlas(), 6)
	scr := core.NewScreen(40, 20)
	r.Draw(scr, c, core.Position{})

	for y := 0; y < scr.Height(); y++ {
		if strings.Contains(scr.Row(y), "Welcome!") {
			t.Fatalf("row %d shows messages while the panel is closed", y)
		}
	}
}

func TestRendererDrawLimitedView(t *testing.T) {
	c := newTestGame(t)
	r := NewRenderer(DefaultAtlas(), 6)
	scr := core.NewScreen(40, 20)

	// A 4x3 view onto the 20x10 map.
	r.Draw(scr, c, core.Pos(4, 3))

	p := c.PlayerPosition()
	cx := core.Clamp(p.X-2, 0, 16)
	cy := core.Clamp(p.Y-1, 0, 7)
	if got := scr.Get(p.X-cx, p.Y-cy+1); got != '@' {
		t.Errorf("player cell = %q, expected '@'", got)
	}
	for y := 1; y <= 3; y++ {
		if got := scr.Get(4, y); got != ' ' {
			t.Errorf("cell right of the view at row %d = %q, expected blank", y, got)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	scr := core.NewScreen(3, 2)
	scr.SetCell(0, 0, core.Cell{Rune: 'a', Fg: core.ColorRed})
	scr.SetCell(1, 0, core.Cell{Rune: 'b', Fg: core.ColorRed})
	scr.SetCell(2, 0, core.Cell{Rune: 'c'})
	scr.DrawText(0, 1, "xyz", core.ColorGreen)

	r := NewRenderer(DefaultAtlas(), 1)
	out := r.RenderScreen(scr)

	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", n)
	}
	for _, want := range []string{"ab", "c", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, missing %q", out, want)
		}
	}
	if len(r.styles) != 3 {
		t.Errorf("cached %d styles, expected 3", len(r.styles))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"héllo", 2, "hé"},
		{"hello", 0, ""},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tt.in, tt.n, got, tt.want)
		}
	}
}
