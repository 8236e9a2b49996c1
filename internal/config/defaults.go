package config

import (
	_ "embed"
)

//go:embed defaults/rogue.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration.
func Default() Config {
	return Config{
		Map: MapConfig{
			Width:      56,
			Height:     32,
			NoiseScale: 0.02,
		},
		Visibility: VisibilityConfig{
			MaxDistance: 8,
			Falloff:     5,
		},
		Messages: MessagesConfig{
			Capacity: 256,
			Shown:    6,
		},
		Player: PlayerConfig{
			SpawnOffset: []int{10, 10},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
