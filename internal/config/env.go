package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvWidth    = "ROUTEVIZ_WIDTH"
	EnvHeight   = "ROUTEVIZ_HEIGHT"
	EnvTheme    = "ROUTEVIZ_THEME"
	EnvSeed     = "ROUTEVIZ_SEED"
	EnvInterval = "ROUTEVIZ_INTERVAL"
)

// LoadDotEnv reads .env style files into the process environment. Missing
// files are not an error; variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg from ROUTEVIZ_* variables.
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, os.LookupEnv)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvWidth, v)
		}
		cfg.Viewport.Width = n
	}
	if v, ok := lookup(EnvHeight); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvHeight, v)
		}
		cfg.Viewport.Height = n
	}
	if v, ok := lookup(EnvTheme); ok && v != "" {
		cfg.Theme = v
	}
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvSeed, v)
		}
		cfg.Seed = n
	}
	if v, ok := lookup(EnvInterval); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvInterval, v)
		}
		cfg.Playback.Interval = d
	}
	return nil
}
