package actor

import (
	"fmt"

	"github.com/vovakirdan/tui-rogue/internal/core"
)

// StatusKind selects which side effect a Status requests.
type StatusKind int

const (
	StatusResize StatusKind = iota
	StatusLoadMap
	StatusToggleMessages
	StatusSpawn
	StatusQuit
)

// Status is a side effect an actor asks the game loop to perform once the
// current round has finished. Only the fields for Kind are set.
type Status struct {
	Kind StatusKind

	// Resize
	Width, Height int

	// LoadMap: signed per-axis step across the world.
	Offset core.Position

	// Spawn
	Spawn Type
	At    core.Position
}

// Resize asks the host to change its view size.
func Resize(width, height int) Status {
	return Status{Kind: StatusResize, Width: width, Height: height}
}

// LoadMapAt asks for the map at a relative world offset.
func LoadMapAt(offset core.Position) Status {
	return Status{Kind: StatusLoadMap, Offset: offset}
}

// ToggleMessages flips message panel visibility.
func ToggleMessages() Status {
	return Status{Kind: StatusToggleMessages}
}

// SpawnAt asks for a new actor of type t at a position.
func SpawnAt(t Type, at core.Position) Status {
	return Status{Kind: StatusSpawn, Spawn: t, At: at}
}

// Quit ends the game.
func Quit() Status {
	return Status{Kind: StatusQuit}
}

func (s Status) String() string {
	switch s.Kind {
	case StatusResize:
		return fmt.Sprintf("Resize(%d, %d)", s.Width, s.Height)
	case StatusLoadMap:
		return fmt.Sprintf("LoadMapAtRelativeOffset(%v)", s.Offset)
	case StatusToggleMessages:
		return "ToggleMessageVisibility"
	case StatusSpawn:
		return fmt.Sprintf("SpawnActorAt(%v, %v)", s.Spawn, s.At)
	case StatusQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
