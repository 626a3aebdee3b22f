package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Window.Width != DefaultWidth || cfg.Window.Height != DefaultHeight {
		t.Errorf("window size = %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Engine.TickRate <= 0 {
		t.Error("tick rate should be positive")
	}
	if cfg.Camera.SafeDistanceFactor != DefaultSafeDistFactor {
		t.Errorf("safe distance factor = %f", cfg.Camera.SafeDistanceFactor)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")

	cfg := GetPreset("solar-system")
	cfg.Animation.TimeScaleFactor = 0.25
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Animation.TimeScaleFactor != 0.25 {
		t.Errorf("time scale = %f, want 0.25", loaded.Animation.TimeScaleFactor)
	}
	if len(loaded.Bodies) != len(cfg.Bodies) {
		t.Fatalf("bodies = %d, want %d", len(loaded.Bodies), len(cfg.Bodies))
	}
	if loaded.Bodies[6].Rings == nil {
		t.Error("saturn rings lost in round trip")
	}
	if loaded.Bodies[3].Atmosphere == nil {
		t.Error("earth atmosphere lost in round trip")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid preset", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, false},
		{"zero tick rate", func(c *Config) { c.Engine.TickRate = 0 }, false},
		{"negative safe factor", func(c *Config) { c.Camera.SafeDistanceFactor = -1 }, false},
		{"unnamed body", func(c *Config) { c.Bodies[0].Name = "" }, false},
		{"duplicate names", func(c *Config) { c.Bodies[1].Name = c.Bodies[0].Name }, false},
		{"zero radius", func(c *Config) { c.Bodies[2].Radius = 0 }, false},
		{"orbiter without distance", func(c *Config) { c.Bodies[1].Distance = 0 }, false},
		{"inverted rings", func(c *Config) { c.Bodies[6].Rings.OuterRadius = 1 }, false},
		{"central without distance", func(c *Config) { c.Bodies[0].Distance = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetPreset("solar-system")
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("solar-system")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Bodies) != 9 {
		t.Errorf("bodies = %d, want 9", len(cfg.Bodies))
	}
	if !cfg.Bodies[0].Central {
		t.Error("first body should be the central one")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestPresetsAreIndependent(t *testing.T) {
	a := GetPreset("solar-system")
	a.Bodies[0].Radius = 999

	b := GetPreset("solar-system")
	if b.Bodies[0].Radius == 999 {
		t.Error("presets must not share state between calls")
	}
}

func TestInnerPlanetsPreset(t *testing.T) {
	cfg := GetPreset("inner-planets")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Bodies) != 5 {
		t.Errorf("bodies = %d, want 5", len(cfg.Bodies))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected at least one preset")
	}
}
