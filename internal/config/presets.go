package config

import (
	"fmt"
	"sort"
	"time"
)

// Presets tweak a config in place. They only touch density and pacing so a
// preset can be layered over a file config.
var Presets = map[string]func(*Config){
	"calm": func(c *Config) {
		c.Particles.AreaPerParticle = 22000
		c.Particles.MaxSpeed = 0.12
		c.Network.TimeStep = 0.005
		c.Playback.Interval = 3 * time.Second
	},
	"dense": func(c *Config) {
		c.Particles.AreaPerParticle = 8000
		c.Network.MaxDistance = 120
	},
	"sparse": func(c *Config) {
		c.Particles.AreaPerParticle = 40000
		c.Network.MaxDistance = 200
		c.Particles.MaxSpeed = 0.4
	},
}

// GetPreset returns the default config with the named preset applied, or
// nil if there is no such preset.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ApplyPreset(cfg *Config, name string) error {
	apply, ok := Presets[name]
	if !ok {
		return fmt.Errorf("%w: unknown preset %q (have %v)", ErrInvalid, name, ListPresets())
	}
	apply(cfg)
	return nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
