package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-rogue/internal/core"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "map:\n  width: 40\nplayer:\n  spawn_offset: [-3, 2]\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Map.Width != 40 {
		t.Errorf("Map.Width = %d, expected 40", cfg.Map.Width)
	}
	if cfg.Map.Height != 32 {
		t.Errorf("Map.Height = %d, expected default 32", cfg.Map.Height)
	}
	if got := cfg.Player.SpawnPosition(); got != core.Pos(-3, 2) {
		t.Errorf("SpawnPosition() = %v, expected [-3, 2]", got)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing file should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { os.Chdir(prev) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() with no files = %+v, expected defaults", cfg)
	}

	writeFile(t, filepath.Join(work, "configs", FileName), "messages:\n  shown: 3\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Messages.Shown != 3 {
		t.Errorf("local config Shown = %d, expected 3", cfg.Messages.Shown)
	}

	writeFile(t, filepath.Join(home, ".rogue", "configs", FileName), "messages:\n  shown: 9\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Messages.Shown != 9 {
		t.Errorf("user config Shown = %d, expected 9 (user dir wins)", cfg.Messages.Shown)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"tiny map", func(c *Config) { c.Map.Width = 1 }},
		{"zero scale", func(c *Config) { c.Map.NoiseScale = 0 }},
		{"falloff too large", func(c *Config) { c.Visibility.Falloff = 9 }},
		{"negative distance", func(c *Config) { c.Visibility.MaxDistance = -1 }},
		{"no capacity", func(c *Config) { c.Messages.Capacity = 0 }},
		{"bad offset", func(c *Config) { c.Player.SpawnOffset = []int{1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("round trip = %+v, expected %+v", cfg, Default())
	}
}
