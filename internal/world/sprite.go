package world

import "github.com/vovakirdan/tui-rogue/internal/core"

// SpriteInfo names a sprite and the tint to draw it with.
type SpriteInfo struct {
	Key  string
	Tint core.Color
}

// Sprites shared by the renderer and the game view.
var (
	// VoidSprite is drawn for cells the player cannot see.
	VoidSprite = SpriteInfo{Key: "Void", Tint: core.ColorBlack}

	// ShadowSprite is composited over half-visible cells.
	ShadowSprite = SpriteInfo{Key: "shadow", Tint: core.RGBA(0, 0, 0, 0.5)}
)
