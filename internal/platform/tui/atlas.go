package tui

import (
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/world"
)

// Atlas resolves sprite keys to terminal glyphs. Sprites registered as
// overlays have no glyph of their own; their tint is composited over the
// cell below.
type Atlas struct {
	glyphs   map[string]rune
	overlays map[string]bool
	fallback rune
}

// NewAtlas returns an empty atlas that draws unknown sprites as fallback.
func NewAtlas(fallback rune) *Atlas {
	return &Atlas{
		glyphs:   make(map[string]rune),
		overlays: make(map[string]bool),
		fallback: fallback,
	}
}

// DefaultAtlas returns the glyph set for every sprite the game draws.
func DefaultAtlas() *Atlas {
	a := NewAtlas('?')

	a.Add(world.VoidSprite.Key, ' ')
	a.AddOverlay(world.ShadowSprite.Key)

	a.Add("wall top", '#')
	a.Add("brick wall top", '#')
	a.Add("wall face", '█')
	a.Add("brick wall face", '▓')

	a.Add("16 16 Dark Sand", '.')
	a.Add("16 16 Stone Brick", ':')
	a.Add("16 16 Light Grass", '"')
	a.Add("floor tile 2", '+')
	a.Add("biege brick floor", '=')
	a.Add("16 16 Light Stone", '.')
	a.Add("water", '~')
	a.Add("mud", ',')

	a.Add("pc", '@')
	a.Add("mutant", 's')
	return a
}

// Add binds a sprite key to a glyph.
func (a *Atlas) Add(key string, r rune) {
	a.glyphs[key] = r
	delete(a.overlays, key)
}

// AddOverlay marks a sprite key as a tint-only overlay.
func (a *Atlas) AddOverlay(key string) {
	a.overlays[key] = true
	delete(a.glyphs, key)
}

// Glyph returns the glyph for a sprite key and whether the key is known.
func (a *Atlas) Glyph(key string) (rune, bool) {
	r, ok := a.glyphs[key]
	if !ok {
		return a.fallback, false
	}
	return r, true
}

// Compose flattens a sprite stack, bottom first, into one cell.
func (a *Atlas) Compose(sprites []world.SpriteInfo) core.Cell {
	cell := core.Cell{Rune: ' '}
	for _, s := range sprites {
		if a.overlays[s.Key] {
			cell.Fg = s.Tint.Over(cell.Fg)
			continue
		}
		cell.Rune, _ = a.Glyph(s.Key)
		cell.Fg = s.Tint
	}
	return cell
}
