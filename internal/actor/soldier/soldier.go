// Package soldier implements a hostile NPC that walks straight at the
// player while keeping its distance from other soldiers.
package soldier

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-rogue/internal/actor"
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/message"
	"github.com/vovakirdan/tui-rogue/internal/registry"
	"github.com/vovakirdan/tui-rogue/internal/world"
)

// PersonalSpace is the Euclidean radius a soldier will not step into
// around another non-player actor it is currently outside of.
const PersonalSpace = 3.0

var sprite = world.SpriteInfo{Key: "mutant", Tint: core.RGBA(0.937, 0.529, 0, 1)}

func init() {
	registry.Register(actor.TypeSoldier, func(id uuid.UUID) actor.Actor {
		return New(id)
	})
}

// Soldier pursues the player one cell per round. It ignores terrain.
type Soldier struct {
	actor.Base
}

// New creates a soldier. The caller runs OnCreate.
func New(id uuid.UUID) *Soldier {
	return &Soldier{Base: actor.NewBase(id, actor.TypeSoldier, actor.Hostile)}
}

func (s *Soldier) OnCreate() {
	s.Say(fmt.Sprintf("Soldier was created!  ID: %s", s.ID()), message.Danger)
}

func (s *Soldier) Sprite() world.SpriteInfo {
	return sprite
}

// OnUpdate steps one cell along the line toward the player. A soldier
// already next to the player stays put.
func (s *Soldier) OnUpdate(infos []actor.Info, m *world.Map) {
	target, ok := actor.FindType(infos, actor.TypePlayer)
	if !ok {
		return
	}

	line := world.Line(s.Position(), target.Position)
	if len(line) < 3 {
		return
	}
	next := line[1]

	if s.crowded(next, infos) {
		return
	}
	s.SetPosition(next)
}

// crowded reports whether moving to next would enter the personal space
// of another actor this soldier is not already close to.
func (s *Soldier) crowded(next core.Position, infos []actor.Info) bool {
	here := s.Position()
	for _, info := range infos {
		if info.Type == actor.TypePlayer {
			continue
		}
		if next.DistanceTo(info.Position) <= PersonalSpace && here.DistanceTo(info.Position) > PersonalSpace {
			return true
		}
	}
	return false
}
