// Package mapgen produces maps for positions in an endless world. A Builder
// tracks where in the world the player is; a Generator turns a world
// position into terrain.
package mapgen

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/world"
)

// Builder creates maps from a fixed seed and a running world offset.
type Builder struct {
	seed    int64
	offset  core.Position
	gen     Generator
	logger  *log.Logger
	visited int
}

// NewBuilder creates a builder at world offset [0, 0]. A nil logger
// discards output.
func NewBuilder(seed int64, gen Generator, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Builder{seed: seed, gen: gen, logger: logger}
}

// Seed returns the world seed.
func (b *Builder) Seed() int64 {
	return b.seed
}

// Offset returns the current world offset.
func (b *Builder) Offset() core.Position {
	return b.offset
}

// Visited returns how many maps the builder has produced.
func (b *Builder) Visited() int {
	return b.visited
}

// Create builds the map at the current offset.
func (b *Builder) Create() (*world.Map, error) {
	start := time.Now()

	m, err := b.gen.Generate(b.seed, b.offset)
	if err != nil {
		return nil, err
	}
	b.visited++

	b.logger.Info("map generated",
		"offset", b.offset,
		"size", fmt.Sprintf("%dx%d", m.Width(), m.Height()),
		"elapsed", time.Since(start))
	return m, nil
}

// CreateOffset moves the world offset by delta and builds the map there.
// The offset is left unchanged if generation fails.
func (b *Builder) CreateOffset(delta core.Position) (*world.Map, error) {
	prev := b.offset
	b.offset = b.offset.Add(delta.X, delta.Y)

	m, err := b.Create()
	if err != nil {
		b.offset = prev
		return nil, err
	}
	return m, nil
}

// PlayerStart picks a random cell the player can stand on: not a wall and
// not fluid. It falls back to the map centre when no such cell exists.
func PlayerStart(m *world.Map, rng *rand.Rand) core.Position {
	var candidates []core.Position
	for y := 0; y < m.Height(); y++ {
		for _, tile := range m.Row(y) {
			if !tile.Type.Blocks() && !tile.Type.IsFluid() {
				candidates = append(candidates, tile.Position)
			}
		}
	}
	if len(candidates) == 0 {
		return core.Pos(m.Width()/2, m.Height()/2)
	}
	return candidates[rng.Intn(len(candidates))]
}
