package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/game"
)

// Pixels per map cell when the game asks for a viewport in pixels.
const tileSize = 16

// Renderer draws a controller's view of the world into a Screen and turns
// the Screen into styled terminal output.
type Renderer struct {
	atlas  *Atlas
	shown  int
	styles map[cellStyle]lipgloss.Style
}

type cellStyle struct {
	fg, bg core.Color
}

// NewRenderer creates a renderer that shows up to shown messages in the
// message panel.
func NewRenderer(atlas *Atlas, shown int) *Renderer {
	if shown < 1 {
		shown = 1
	}
	return &Renderer{
		atlas:  atlas,
		shown:  shown,
		styles: make(map[cellStyle]lipgloss.Style),
	}
}

// Draw renders the status line, the map around the player and, when open,
// the message panel. view limits the map area in cells; zero means use
// all the room there is.
func (r *Renderer) Draw(scr *core.Screen, c *game.Controller, view core.Position) {
	scr.Clear()

	playerPos := c.PlayerPosition()
	status := fmt.Sprintf("Turn %d  Maps %d  %v", c.Turns(), c.MapsVisited(), playerPos)
	scr.DrawText(0, 0, status, core.ColorGray)

	panelH := 0
	if c.ShouldShowMessages() {
		panelH = r.shown + 2
	}

	vw, vh := scr.Width(), scr.Height()-1-panelH
	if view.X > 0 {
		vw = core.Min(vw, view.X)
	}
	if view.Y > 0 {
		vh = core.Min(vh, view.Y)
	}
	if vw > 0 && vh > 0 {
		r.drawMap(scr, c, playerPos, core.Pos(0, 1), vw, vh)
	}

	if panelH > 0 {
		r.drawMessages(scr, c, scr.Height()-panelH, panelH)
	}
}

func (r *Renderer) drawMap(scr *core.Screen, c *game.Controller, center, at core.Position, vw, vh int) {
	mw, mh := c.MapSize()
	cam := core.Pos(cameraAxis(center.X, mw, vw), cameraAxis(center.Y, mh, vh))

	for sy := 0; sy < vh; sy++ {
		for sx := 0; sx < vw; sx++ {
			p := cam.Add(sx, sy)
			if p.X < 0 || p.X >= mw || p.Y < 0 || p.Y >= mh {
				continue
			}
			sprites, err := c.TileSprites(p)
			if err != nil {
				continue
			}
			scr.SetCell(at.X+sx, at.Y+sy, r.atlas.Compose(sprites))
		}
	}

	for _, a := range c.ActorSprites() {
		sx, sy := a.Position.X-cam.X, a.Position.Y-cam.Y
		if sx < 0 || sx >= vw || sy < 0 || sy >= vh {
			continue
		}
		scr.SetCell(at.X+sx, at.Y+sy, r.atlas.Compose(a.Sprites))
	}
}

// cameraAxis returns the first map coordinate shown on one axis. A map
// smaller than the view is centred in it; a larger one follows pos and
// stops at the map edges.
func cameraAxis(pos, size, view int) int {
	if size <= view {
		return -(view - size) / 2
	}
	return core.Clamp(pos-view/2, 0, size-view)
}

func (r *Renderer) drawMessages(scr *core.Screen, c *game.Controller, y, h int) {
	w := scr.Width()
	scr.FillRect(0, y, w, h)
	scr.DrawBox(0, y, w, h, core.ColorGray)
	scr.DrawText(2, y, " Messages ", core.ColorGray)

	for i, m := range c.Messages(r.shown) {
		scr.DrawText(2, y+1+i, truncate(m.Contents, w-4), m.Severity.Color())
	}
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

func (r *Renderer) style(cs cellStyle) lipgloss.Style {
	if st, ok := r.styles[cs]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if cs.fg.A > 0 {
		st = st.Foreground(lipgloss.Color(cs.fg.Hex()))
	}
	if cs.bg.A > 0 {
		st = st.Background(lipgloss.Color(cs.bg.Hex()))
	}
	r.styles[cs] = st
	return st
}
