package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Particles.AreaPerParticle != 15000 {
		t.Errorf("expected area per particle 15000, got %g", cfg.Particles.AreaPerParticle)
	}
	if cfg.Network.MaxDistance != 150 {
		t.Errorf("expected max distance 150, got %g", cfg.Network.MaxDistance)
	}
	if cfg.Route.Padding != 50 {
		t.Errorf("expected padding 50, got %g", cfg.Route.Padding)
	}
	if cfg.Playback.Interval != 2*time.Second {
		t.Errorf("expected 2s interval, got %s", cfg.Playback.Interval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "theme: dark\nviewport:\n  width: 800\nplayback:\n  interval: 500ms\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Theme != "dark" || cfg.Viewport.Width != 800 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Viewport.Height != DefaultHeight {
		t.Errorf("expected default height, got %d", cfg.Viewport.Height)
	}
	if cfg.Playback.Interval != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %s", cfg.Playback.Interval)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 42
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Seed != 42 || got.Playback.Interval != cfg.Playback.Interval {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero area", func(c *Config) { c.Particles.AreaPerParticle = 0 }},
		{"zero distance", func(c *Config) { c.Network.MaxDistance = 0 }},
		{"negative padding", func(c *Config) { c.Route.Padding = -1 }},
		{"zero interval", func(c *Config) { c.Playback.Interval = 0 }},
		{"inverted radius", func(c *Config) { c.Particles.RadiusMin = 5 }},
		{"inverted opacity", func(c *Config) { c.Particles.OpacityMax = 0.1 }},
		{"negative width", func(c *Config) { c.Viewport.Width = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("dense")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Particles.AreaPerParticle != 8000 {
		t.Errorf("expected area 8000, got %g", cfg.Particles.AreaPerParticle)
	}
	if cfg.Route.Padding != DefaultConfig().Route.Padding {
		t.Error("preset should leave route settings alone")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if err := ApplyPreset(DefaultConfig(), "nonexistent"); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	want := []string{"calm", "dense", "sparse"}
	if len(presets) != len(want) {
		t.Fatalf("expected %v, got %v", want, presets)
	}
	for i := range want {
		if presets[i] != want[i] {
			t.Errorf("expected %v, got %v", want, presets)
		}
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvWidth:    "640",
		EnvHeight:   "480",
		EnvTheme:    "dark",
		EnvSeed:     "7",
		EnvInterval: "250ms",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := DefaultConfig()
	if err := applyEnv(cfg, lookup); err != nil {
		t.Fatal(err)
	}
	if cfg.Viewport.Width != 640 || cfg.Viewport.Height != 480 {
		t.Errorf("expected 640x480, got %dx%d", cfg.Viewport.Width, cfg.Viewport.Height)
	}
	if cfg.Theme != "dark" || cfg.Seed != 7 {
		t.Errorf("theme/seed not applied: %s %d", cfg.Theme, cfg.Seed)
	}
	if cfg.Playback.Interval != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", cfg.Playback.Interval)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == EnvWidth {
			return "wide", true
		}
		return "", false
	}
	if err := applyEnv(DefaultConfig(), lookup); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("ROUTEVIZ_TEST_DOTENV=yes\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("ROUTEVIZ_TEST_DOTENV") })

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if os.Getenv("ROUTEVIZ_TEST_DOTENV") != "yes" {
		t.Error("dotenv value not loaded")
	}
}
