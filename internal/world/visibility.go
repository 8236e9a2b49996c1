package world

import "github.com/vovakirdan/tui-rogue/internal/core"

// Visibility is how well a target can be seen from an observer.
type Visibility int

const (
	VisibilityFull Visibility = iota
	VisibilityHalf
	VisibilityInvisible
)

// String returns a human-readable name for the visibility tier.
func (v Visibility) String() string {
	switch v {
	case VisibilityFull:
		return "Full"
	case VisibilityHalf:
		return "Half"
	case VisibilityInvisible:
		return "Invisible"
	default:
		return "Unknown"
	}
}

// Sight configures visibility tiers. Cells further than MaxDistance steps
// are invisible; the last Falloff steps inside that range are half visible.
type Sight struct {
	MaxDistance int
	Falloff     int
}

// DefaultSight matches the standard game view.
var DefaultSight = Sight{MaxDistance: 8, Falloff: 5}

// Obstructed reports whether a wall lies strictly between origin and target
// on the Bresenham line. Neither endpoint is checked.
func Obstructed(m *Map, origin, target core.Position) bool {
	line := Line(origin, target)
	if len(line) <= 2 {
		return false
	}
	for _, p := range line[1 : len(line)-1] {
		tile, ok := m.At(p)
		if ok && tile.Type.IsWall() {
			return true
		}
	}
	return false
}

// VisibilityOf classifies target as seen from origin. Distance is the number
// of line steps between the two cells.
func VisibilityOf(m *Map, origin, target core.Position, sight Sight) Visibility {
	distance := len(Line(origin, target)) - 1
	if distance > sight.MaxDistance {
		return VisibilityInvisible
	}
	if Obstructed(m, origin, target) {
		return VisibilityInvisible
	}
	if distance > sight.MaxDistance-sight.Falloff {
		return VisibilityHalf
	}
	return VisibilityFull
}
