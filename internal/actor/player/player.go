// Package player implements the user-controlled actor.
package player

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-rogue/internal/actor"
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/message"
	"github.com/vovakirdan/tui-rogue/internal/world"
)

// ResizeWidth and ResizeHeight are the size requested by the resize key.
const (
	ResizeWidth  = 640
	ResizeHeight = 480
)

// DefaultSpawnOffset is where the spawn key places a soldier, relative to
// the player.
var DefaultSpawnOffset = core.Pos(10, 10)

var sprite = world.SpriteInfo{Key: "pc", Tint: core.RGBA(0.141, 0.424, 0.376, 1)}

// Player turns input events into moves and status requests. It does no
// work in OnUpdate; everything happens when an event is handled.
type Player struct {
	actor.Base

	ticks       int
	spawnOffset core.Position
}

// New creates a player. The caller runs OnCreate.
func New(id uuid.UUID) *Player {
	return &Player{
		Base:        actor.NewBase(id, actor.TypePlayer, actor.Friendly),
		spawnOffset: DefaultSpawnOffset,
	}
}

// SetSpawnOffset changes where the spawn key places new soldiers.
func (p *Player) SetSpawnOffset(off core.Position) {
	p.spawnOffset = off
}

func (p *Player) OnCreate() {
	p.Say("Welcome!", message.Background)
}

func (p *Player) OnUpdate(infos []actor.Info, m *world.Map) {}

func (p *Player) Sprite() world.SpriteInfo {
	return sprite
}

// Ticks returns how many rounds the handled events asked for and resets
// the count.
func (p *Player) Ticks() int {
	n := p.ticks
	p.ticks = 0
	return n
}

// HandleEvent applies one input event. Every move attempt costs a tick,
// whether or not the player actually moved.
func (p *Player) HandleEvent(ev core.Event, m *world.Map) {
	key := ev.Pressed()
	if key == core.KeyNone {
		return
	}

	if dir, ok := key.Direction(); ok {
		p.move(dir, m)
		p.ticks++
		return
	}

	switch key {
	case core.KeyWait:
		p.ticks++
	case core.KeySpawn:
		at := p.Position().Add(p.spawnOffset.X, p.spawnOffset.Y)
		p.Emit(actor.SpawnAt(actor.TypeSoldier, at))
	case core.KeyToggleMessages:
		p.Emit(actor.ToggleMessages())
	case core.KeyResize:
		p.Emit(actor.Resize(ResizeWidth, ResizeHeight))
	case core.KeyQuit:
		p.Emit(actor.Quit())
	}
}

func (p *Player) move(dir core.Direction, m *world.Map) {
	res := world.TryMove(m, p.Position(), dir, 1)

	switch res.Outcome {
	case world.MoveClear, world.MoveFluid:
		p.SetPosition(res.Target)
	case world.MoveMapEdge:
		p.SetPosition(world.WrapEdge(res.Target, m.Width(), m.Height()))
		p.Emit(actor.LoadMapAt(world.EdgeOffset(res.Target, m.Width(), m.Height())))
	}
}
