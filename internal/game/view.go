package game

import (
	"fmt"

	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/message"
	"github.com/vovakirdan/tui-rogue/internal/world"
)

// ActorSprite is a visible actor and the sprites to draw at its cell,
// bottom layer first.
type ActorSprite struct {
	Position core.Position
	Sprites  []world.SpriteInfo
}

// TileSprites returns the sprites for a map cell as seen by the player.
// Cells out of sight are void; half-visible cells get a shadow on top.
func (c *Controller) TileSprites(pos core.Position) ([]world.SpriteInfo, error) {
	tile, err := c.state.Map.Lookup(pos)
	if err != nil {
		return []world.SpriteInfo{world.VoidSprite}, fmt.Errorf("game: tile sprites: %w", err)
	}

	switch c.visibility(pos) {
	case world.VisibilityInvisible:
		return []world.SpriteInfo{world.VoidSprite}, nil
	case world.VisibilityHalf:
		return []world.SpriteInfo{tile.Type.Sprite(), world.ShadowSprite}, nil
	default:
		return []world.SpriteInfo{tile.Type.Sprite()}, nil
	}
}

// ActorSprites returns every actor the player can see, in update order.
func (c *Controller) ActorSprites() []ActorSprite {
	var out []ActorSprite
	for _, a := range c.state.Actors() {
		if !a.Visible() {
			continue
		}

		var sprites []world.SpriteInfo
		switch c.visibility(a.Position()) {
		case world.VisibilityInvisible:
			continue
		case world.VisibilityHalf:
			sprites = []world.SpriteInfo{a.Sprite(), world.ShadowSprite}
		default:
			sprites = []world.SpriteInfo{a.Sprite()}
		}
		out = append(out, ActorSprite{Position: a.Position(), Sprites: sprites})
	}
	return out
}

// visibility classifies a cell as seen from the player.
func (c *Controller) visibility(pos core.Position) world.Visibility {
	return world.VisibilityOf(c.state.Map, c.PlayerPosition(), pos, c.sight)
}

// PlayerPosition returns the player's cell, or the origin if the player is
// missing from the actor table.
func (c *Controller) PlayerPosition() core.Position {
	p, err := c.state.Actor(c.state.PlayerID)
	if err != nil {
		c.logger.Error("player lookup failed", "err", err)
		return core.Position{}
	}
	return p.Position()
}

// Messages returns up to n messages, newest first.
func (c *Controller) Messages(n int) []message.Message {
	return c.state.Messages.Recent(n)
}

// History returns the whole retained message log, oldest first.
func (c *Controller) History() []message.Message {
	return c.state.Messages.All()
}

// ShouldShowMessages reports whether the message panel is open.
func (c *Controller) ShouldShowMessages() bool {
	return c.state.ShowMessages
}

// MapSize returns the current map dimensions.
func (c *Controller) MapSize() (width, height int) {
	return c.state.Map.Width(), c.state.Map.Height()
}
