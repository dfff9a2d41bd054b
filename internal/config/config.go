package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/routeviz/internal/network"
	"github.com/san-kum/routeviz/internal/particles"
	"github.com/san-kum/routeviz/internal/playback"
	"github.com/san-kum/routeviz/internal/projection"
)

const (
	DefaultWidth     = 1280
	DefaultHeight    = 720
	DefaultTheme     = "light"
	DefaultFrameRate = 60
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Seed      int64          `yaml:"seed"`
	Theme     string         `yaml:"theme"`
	FrameRate int            `yaml:"frame_rate"`
	Viewport  ViewportConfig `yaml:"viewport"`
	Particles ParticleConfig `yaml:"particles"`
	Network   NetworkConfig  `yaml:"network"`
	Route     RouteConfig    `yaml:"route"`
	Playback  PlaybackConfig `yaml:"playback"`
}

type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ParticleConfig struct {
	AreaPerParticle float64 `yaml:"area_per_particle"`
	MaxSpeed        float64 `yaml:"max_speed"`
	RadiusMin       float64 `yaml:"radius_min"`
	RadiusMax       float64 `yaml:"radius_max"`
	OpacityMin      float64 `yaml:"opacity_min"`
	OpacityMax      float64 `yaml:"opacity_max"`
	PulseStep       float64 `yaml:"pulse_step"`
}

type NetworkConfig struct {
	MaxDistance    float64 `yaml:"max_distance"`
	MinStrength    float64 `yaml:"min_strength"`
	TimeStep       float64 `yaml:"time_step"`
	LineWidthScale float64 `yaml:"line_width_scale"`
}

type RouteConfig struct {
	Padding  float64 `yaml:"padding"`
	MinRange float64 `yaml:"min_range"`
}

type PlaybackConfig struct {
	Interval time.Duration `yaml:"interval"`
}

func DefaultConfig() *Config {
	p := particles.DefaultParams()
	return &Config{
		Theme:     DefaultTheme,
		FrameRate: DefaultFrameRate,
		Viewport:  ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Particles: ParticleConfig{
			AreaPerParticle: p.AreaPerParticle,
			MaxSpeed:        p.MaxSpeed,
			RadiusMin:       p.RadiusMin,
			RadiusMax:       p.RadiusMax,
			OpacityMin:      p.OpacityMin,
			OpacityMax:      p.OpacityMax,
			PulseStep:       p.PulseStep,
		},
		Network: NetworkConfig{
			MaxDistance:    network.DefaultMaxDistance,
			MinStrength:    network.DefaultMinStrength,
			TimeStep:       network.DefaultTimeStep,
			LineWidthScale: network.DefaultLineWidthScale,
		},
		Route: RouteConfig{
			Padding:  projection.DefaultPadding,
			MinRange: projection.DefaultMinRange,
		},
		Playback: PlaybackConfig{Interval: playback.DefaultInterval},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Viewport.Width < 0 || c.Viewport.Height < 0:
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalid, c.Viewport.Width, c.Viewport.Height)
	case c.Particles.AreaPerParticle <= 0:
		return fmt.Errorf("%w: area_per_particle must be positive, got %g", ErrInvalid, c.Particles.AreaPerParticle)
	case c.Particles.RadiusMin > c.Particles.RadiusMax:
		return fmt.Errorf("%w: radius_min %g above radius_max %g", ErrInvalid, c.Particles.RadiusMin, c.Particles.RadiusMax)
	case c.Particles.OpacityMin > c.Particles.OpacityMax:
		return fmt.Errorf("%w: opacity_min %g above opacity_max %g", ErrInvalid, c.Particles.OpacityMin, c.Particles.OpacityMax)
	case c.Network.MaxDistance <= 0:
		return fmt.Errorf("%w: max_distance must be positive, got %g", ErrInvalid, c.Network.MaxDistance)
	case c.Route.Padding < 0:
		return fmt.Errorf("%w: padding must not be negative, got %g", ErrInvalid, c.Route.Padding)
	case c.Playback.Interval <= 0:
		return fmt.Errorf("%w: playback interval must be positive, got %s", ErrInvalid, c.Playback.Interval)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalid, c.FrameRate)
	}
	return nil
}

// ResolveSeed returns the configured seed, or a time based one when unset.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func (c *Config) ParticleParams() particles.Params {
	return particles.Params{
		AreaPerParticle: c.Particles.AreaPerParticle,
		MaxSpeed:        c.Particles.MaxSpeed,
		RadiusMin:       c.Particles.RadiusMin,
		RadiusMax:       c.Particles.RadiusMax,
		OpacityMin:      c.Particles.OpacityMin,
		OpacityMax:      c.Particles.OpacityMax,
		PulseStep:       c.Particles.PulseStep,
	}
}

// NetworkStyle applies the configured tunables over base, which carries
// the theme palette.
func (c *Config) NetworkStyle(base network.Style) network.Style {
	base.MaxDistance = c.Network.MaxDistance
	base.MinStrength = c.Network.MinStrength
	base.LineWidthScale = c.Network.LineWidthScale
	return base
}

func (c *Config) ProjectionOptions() projection.Options {
	return projection.Options{Padding: c.Route.Padding, MinRange: c.Route.MinRange}
}
