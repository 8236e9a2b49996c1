package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rogue/internal/config"
	"github.com/vovakirdan/tui-rogue/internal/mapgen"
	"github.com/vovakirdan/tui-rogue/internal/world"
)

// FromConfig builds a controller over a noise-generated world.
func FromConfig(cfg config.Config, seed int64, logger *log.Logger) (*Controller, error) {
	gen := mapgen.NewNoiseGenerator(cfg.Map.Width, cfg.Map.Height, cfg.Map.NoiseScale)
	builder := mapgen.NewBuilder(seed, gen, logger)

	return NewController(builder, Options{
		Sight: world.Sight{
			MaxDistance: cfg.Visibility.MaxDistance,
			Falloff:     cfg.Visibility.Falloff,
		},
		MessageCapacity: cfg.Messages.Capacity,
		SpawnOffset:     cfg.Player.SpawnPosition(),
		Logger:          logger,
	})
}
