package mapgen

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/world"
)

// Generator produces the map for a world offset. The same seed and offset
// must always produce the same map.
type Generator interface {
	Generate(seed int64, offset core.Position) (*world.Map, error)
}

// DefaultScale is the noise frequency per tile.
const DefaultScale = 0.02

// Layer thresholds.
const (
	concreteThreshold = 0.1
	grassThreshold    = 0.1
	waterThreshold    = -0.45
	mudThreshold      = -0.35
	wallThreshold     = 0.45
)

// NoiseGenerator lays out terrain from several fractal noise layers, each
// seeded from the world seed.
//
// Neighbouring maps overlap by one tile: column width-1 of one map is
// sampled at the same world coordinate as column 0 of the map to its right,
// and likewise for rows. A player wrapped across an edge therefore lands on
// the same terrain it left.
type NoiseGenerator struct {
	Width  int
	Height int
	Scale  float64
}

// NewNoiseGenerator creates a generator for maps of the given size.
func NewNoiseGenerator(width, height int, scale float64) *NoiseGenerator {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &NoiseGenerator{Width: width, Height: height, Scale: scale}
}

type layers struct {
	grass    fbm
	concrete fbm
	fluid    fbm
	walls    fbm
}

func newLayers(seed int64) layers {
	return layers{
		grass:    newFBM(seed),
		concrete: newFBM(seed + 1),
		fluid:    newFBM(seed + 2),
		walls:    newFBM(seed + 3),
	}
}

// Generate builds the map at offset. Rows are filled in parallel.
func (g *NoiseGenerator) Generate(seed int64, offset core.Position) (*world.Map, error) {
	if g.Width < 2 || g.Height < 2 {
		return nil, fmt.Errorf("mapgen: invalid map size %dx%d", g.Width, g.Height)
	}

	m := world.NewMap(g.Width, g.Height)
	l := newLayers(seed)
	originX := (g.Width - 1) * offset.X
	originY := (g.Height - 1) * offset.Y

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for y := 0; y < g.Height; y++ {
		y := y
		eg.Go(func() error {
			row := m.Row(y)
			for x := range row {
				row[x].Type = g.cell(l, originX+x, originY+y)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("mapgen: cannot generate map at %v: %w", offset, err)
	}

	return m, nil
}

// cell classifies one world coordinate.
func (g *NoiseGenerator) cell(l layers, wx, wy int) world.TileType {
	nx, ny := g.coords(wx, wy)
	concrete := l.concrete.At(nx, ny) > concreteThreshold

	if g.isWall(l, wx, wy) {
		material := world.WallBasic
		if concrete {
			material = world.WallBrick
		}
		orientation := world.WallTop
		if !g.isWall(l, wx, wy+1) {
			orientation = world.WallFace
		}
		return world.Wall(orientation, material)
	}

	fluid := l.fluid.At(nx, ny)
	switch {
	case fluid < waterThreshold:
		return world.Floor(world.FloorWater)
	case fluid < mudThreshold:
		return world.Floor(world.FloorMud)
	case l.grass.At(nx, ny) > grassThreshold:
		return world.Floor(world.FloorGrass)
	case concrete:
		return world.Floor(world.FloorConcrete)
	default:
		return world.Floor(world.FloorDirt)
	}
}

func (g *NoiseGenerator) isWall(l layers, wx, wy int) bool {
	nx, ny := g.coords(wx, wy)
	return l.walls.At(nx, ny) > wallThreshold
}

func (g *NoiseGenerator) coords(wx, wy int) (float64, float64) {
	return float64(wx) * g.Scale, float64(wy) * g.Scale
}
