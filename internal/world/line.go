package world

import "github.com/vovakirdan/tui-rogue/internal/core"

// Line rasterises the segment from a to b with Bresenham's algorithm.
// Both endpoints are included; Line(a, a) is [a].
func Line(a, b core.Position) []core.Position {
	dx := core.Abs(b.X - a.X)
	dy := core.Abs(b.Y - a.Y)
	sx := core.Sign(b.X - a.X)
	sy := core.Sign(b.Y - a.Y)

	points := make([]core.Position, 0, core.Max(dx, dy)+1)
	x, y := a.X, a.Y
	err := dx - dy

	for {
		points = append(points, core.Pos(x, y))
		if x == b.X && y == b.Y {
			return points
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}
