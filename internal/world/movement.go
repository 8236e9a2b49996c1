package world

import "github.com/vovakirdan/tui-rogue/internal/core"

// MoveOutcome classifies an attempted move.
type MoveOutcome int

const (
	MoveClear MoveOutcome = iota
	MoveWall
	MoveFluid
	MoveMapEdge
)

// String returns a human-readable name for the outcome.
func (o MoveOutcome) String() string {
	switch o {
	case MoveClear:
		return "Clear"
	case MoveWall:
		return "Wall"
	case MoveFluid:
		return "Fluid"
	case MoveMapEdge:
		return "MapEdge"
	default:
		return "Unknown"
	}
}

// MoveResult is the outcome of TryMove. Target is the cell that was
// checked; for MoveMapEdge it is the off-grid position.
type MoveResult struct {
	Outcome MoveOutcome
	Target  core.Position
}

// Passable reports whether the mover may enter the target cell.
// Fluid is passable for every current actor.
func (r MoveResult) Passable() bool {
	return r.Outcome == MoveClear || r.Outcome == MoveFluid
}

// TryMove classifies moving from a position the given number of spaces in a
// direction. It never changes anything.
func TryMove(m *Map, from core.Position, dir core.Direction, spaces int) MoveResult {
	target := from.Step(dir, spaces)

	tile, ok := m.At(target)
	if !ok {
		return MoveResult{Outcome: MoveMapEdge, Target: target}
	}

	switch {
	case tile.Type.Blocks():
		return MoveResult{Outcome: MoveWall, Target: target}
	case tile.Type.IsFluid():
		return MoveResult{Outcome: MoveFluid, Target: target}
	default:
		return MoveResult{Outcome: MoveClear, Target: target}
	}
}

// WrapEdge maps an off-grid edge position onto the opposite edge, each axis
// independently: -1 becomes width-1 and width becomes 0.
func WrapEdge(edge core.Position, width, height int) core.Position {
	wrapped := edge
	if edge.X == -1 {
		wrapped.X = width - 1
	} else if edge.X == width {
		wrapped.X = 0
	}
	if edge.Y == -1 {
		wrapped.Y = height - 1
	} else if edge.Y == height {
		wrapped.Y = 0
	}
	return wrapped
}

// EdgeOffset returns the signed per-axis map offset for the edges crossed
// by an off-grid position.
func EdgeOffset(edge core.Position, width, height int) core.Position {
	var off core.Position
	if edge.X == -1 {
		off.X = -1
	} else if edge.X == width {
		off.X = 1
	}
	if edge.Y == -1 {
		off.Y = -1
	} else if edge.Y == height {
		off.Y = 1
	}
	return off
}
