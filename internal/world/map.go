package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-rogue/internal/core"
)

// Default map dimensions in tiles.
const (
	DefaultWidth  = 56
	DefaultHeight = 32
)

// ErrOutOfBounds is returned for lookups outside the grid.
var ErrOutOfBounds = errors.New("position outside map")

// Map is a fixed-size dense grid of tiles, stored row-major.
// Its dimensions never change after construction.
type Map struct {
	width  int
	height int
	tiles  []Tile
}

// NewMap creates a map of the given size filled with dirt floor.
// Non-positive dimensions are raised to 1.
func NewMap(width, height int) *Map {
	width = core.Max(width, 1)
	height = core.Max(height, 1)

	m := &Map{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.tiles[y*width+x] = Tile{
				Type:     Floor(FloorDirt),
				Position: core.Pos(x, y),
			}
		}
	}
	return m
}

// Width returns the width of the map in tiles.
func (m *Map) Width() int {
	return m.width
}

// Height returns the height of the map in tiles.
func (m *Map) Height() int {
	return m.height
}

// InBounds reports whether p lies on the grid.
func (m *Map) InBounds(p core.Position) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// At returns the tile at p. ok is false for off-grid positions.
func (m *Map) At(p core.Position) (tile Tile, ok bool) {
	if !m.InBounds(p) {
		return Tile{}, false
	}
	return m.tiles[p.Y*m.width+p.X], true
}

// Lookup is At with an error for callers that propagate failures.
func (m *Map) Lookup(p core.Position) (Tile, error) {
	t, ok := m.At(p)
	if !ok {
		return Tile{}, fmt.Errorf("world: tile %v: %w", p, ErrOutOfBounds)
	}
	return t, nil
}

// Set overwrites the tile type at p. Off-grid positions are ignored.
func (m *Map) Set(p core.Position, tt TileType) {
	if !m.InBounds(p) {
		return
	}
	m.tiles[p.Y*m.width+p.X].Type = tt
}

// Fill sets every tile to tt.
func (m *Map) Fill(tt TileType) {
	for i := range m.tiles {
		m.tiles[i].Type = tt
	}
}

// Row returns the tiles of row y. The slice aliases the map; it is meant for
// bulk generation, where each row is owned by a single writer.
func (m *Map) Row(y int) []Tile {
	if y < 0 || y >= m.height {
		return nil
	}
	return m.tiles[y*m.width : (y+1)*m.width]
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	c := &Map{
		width:  m.width,
		height: m.height,
		tiles:  make([]Tile, len(m.tiles)),
	}
	copy(c.tiles, m.tiles)
	return c
}
