// Package actor defines the capability interface shared by every entity on
// the map, the read-only snapshot actors see of each other, and the
// deferred status requests they hand back to the game loop.
//
// Concrete actors live in subpackages and embed Base for the bookkeeping
// every actor needs. Actors other than the player are created through
// the registry package so the game never names their concrete types.
package actor

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/message"
	"github.com/vovakirdan/tui-rogue/internal/world"
)

// Type identifies the concrete kind of an actor.
type Type int

const (
	TypePlayer Type = iota
	TypeSoldier
)

// String returns the lowercase type name.
func (t Type) String() string {
	switch t {
	case TypePlayer:
		return "player"
	case TypeSoldier:
		return "soldier"
	default:
		return "unknown"
	}
}

// BehaviorStyle is an actor's disposition toward the player.
type BehaviorStyle int

const (
	Friendly BehaviorStyle = iota
	Oblivious
	Hostile
	Fearful
	Inactive
)

// String returns the behaviour name.
func (b BehaviorStyle) String() string {
	switch b {
	case Friendly:
		return "friendly"
	case Oblivious:
		return "oblivious"
	case Hostile:
		return "hostile"
	case Fearful:
		return "fearful"
	case Inactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// Actor is implemented by every entity that lives on the map.
//
// The game loop calls OnUpdate once per round with a snapshot of all
// actors taken before the round began. Actors never touch the game state
// directly; they queue at most one Status and any number of messages,
// which the loop collects after everyone has updated.
type Actor interface {
	// ID returns the actor's stable identifier.
	ID() uuid.UUID

	// Type returns the concrete kind of the actor.
	Type() Type

	// Behavior returns the actor's disposition.
	Behavior() BehaviorStyle

	// Position returns the actor's current cell.
	Position() core.Position
	SetX(x int)
	SetY(y int)

	// MoveToward shifts the actor one cell in the given direction without
	// consulting the map.
	MoveToward(dir core.Direction)

	// Sprite returns how the actor is drawn.
	Sprite() world.SpriteInfo

	// Visible reports whether the actor should be drawn at all.
	Visible() bool

	// OnCreate runs once, right after construction.
	OnCreate()

	// OnUpdate runs once per round.
	OnUpdate(infos []Info, m *world.Map)

	// OnInteract and OnRemove are lifecycle hooks; no current
	// actor does anything in them.
	OnInteract(infos []Info)
	OnRemove(infos []Info)

	// Status returns the pending status request and clears it.
	Status() (Status, bool)

	// Messages returns pending messages and clears them.
	Messages() []message.Message
}

// Info is a value snapshot of an actor taken at the start of a round.
type Info struct {
	ID       uuid.UUID
	Type     Type
	Position core.Position
}

// Snapshot copies the identity and position of each actor.
func Snapshot(actors []Actor) []Info {
	infos := make([]Info, len(actors))
	for i, a := range actors {
		infos[i] = Info{ID: a.ID(), Type: a.Type(), Position: a.Position()}
	}
	return infos
}

// FindType returns the first snapshot entry of the given type.
func FindType(infos []Info, t Type) (Info, bool) {
	for _, info := range infos {
		if info.Type == t {
			return info, true
		}
	}
	return Info{}, false
}
