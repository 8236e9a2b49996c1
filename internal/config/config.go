// Package config provides YAML-based configuration loading for the game:
// map size and noise scale, sight range, message log size and actor
// spawning.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-rogue/internal/core"
)

// Config contains all tunable game settings.
type Config struct {
	Map        MapConfig        `yaml:"map"`
	Visibility VisibilityConfig `yaml:"visibility"`
	Messages   MessagesConfig   `yaml:"messages"`
	Player     PlayerConfig     `yaml:"player"`
}

// MapConfig defines the generated map.
type MapConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	NoiseScale float64 `yaml:"noise_scale"` // noise frequency per tile
}

// VisibilityConfig defines how far the player can see.
type VisibilityConfig struct {
	MaxDistance int `yaml:"max_distance"`
	Falloff     int `yaml:"falloff"` // steps before MaxDistance drawn in shadow
}

// MessagesConfig defines the message log.
type MessagesConfig struct {
	Capacity int `yaml:"capacity"` // messages kept in memory and in the run journal
	Shown    int `yaml:"shown"`    // lines in the on-screen panel
}

// PlayerConfig defines player-driven actions.
type PlayerConfig struct {
	SpawnOffset []int `yaml:"spawn_offset,flow"` // [dx, dy] from the player
}

// SpawnPosition returns SpawnOffset as a position.
// Malformed offsets yield [0, 0]; Validate rejects them.
func (p PlayerConfig) SpawnPosition() core.Position {
	if len(p.SpawnOffset) != 2 {
		return core.Position{}
	}
	return core.Pos(p.SpawnOffset[0], p.SpawnOffset[1])
}

// Validate checks the config for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Map.Width < 2 || c.Map.Height < 2 {
		errs = append(errs, fmt.Errorf("map size %dx%d must be at least 2x2", c.Map.Width, c.Map.Height))
	}
	if c.Map.NoiseScale <= 0 {
		errs = append(errs, fmt.Errorf("noise_scale %v must be positive", c.Map.NoiseScale))
	}
	if c.Visibility.MaxDistance < 0 || c.Visibility.Falloff < 0 {
		errs = append(errs, errors.New("visibility distances must not be negative"))
	}
	if c.Visibility.Falloff > c.Visibility.MaxDistance {
		errs = append(errs, fmt.Errorf("falloff %d exceeds max_distance %d", c.Visibility.Falloff, c.Visibility.MaxDistance))
	}
	if c.Messages.Capacity < 1 {
		errs = append(errs, fmt.Errorf("messages capacity %d must be at least 1", c.Messages.Capacity))
	}
	if c.Messages.Shown < 0 {
		errs = append(errs, fmt.Errorf("messages shown %d must not be negative", c.Messages.Shown))
	}
	if len(c.Player.SpawnOffset) != 2 {
		errs = append(errs, fmt.Errorf("spawn_offset must have 2 values, got %d", len(c.Player.SpawnOffset)))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
