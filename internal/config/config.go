package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/dotsim/internal/physics"
)

const (
	DefaultWidth           = 800
	DefaultHeight          = 600
	DefaultTargetTickMs    = 17
	DefaultInitialBodies   = 20
	DefaultSpawnIntervalMs = 100
	DefaultTheme           = "classic"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is read from YAML, or from TOML when the file ends in .toml.
type Config struct {
	Width           float64 `yaml:"width" toml:"width"`
	Height          float64 `yaml:"height" toml:"height"`
	TargetTickMs    float64 `yaml:"target_tick_ms" toml:"target_tick_ms"`
	Seed            int64   `yaml:"seed" toml:"seed"`
	InitialBodies   int     `yaml:"initial_bodies" toml:"initial_bodies"`
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms" toml:"spawn_interval_ms"`
	Theme           string  `yaml:"theme" toml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		TargetTickMs:    DefaultTargetTickMs,
		InitialBodies:   DefaultInitialBodies,
		SpawnIntervalMs: DefaultSpawnIntervalMs,
		Theme:           DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var data []byte
	var err error
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func (c *Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"target_tick_ms", c.TargetTickMs},
		{"spawn_interval_ms", c.SpawnIntervalMs},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("config: %s must be finite, got %v: %w", f.name, f.v, ErrInvalidConfig)
		}
	}
	if c.Width <= 1 || c.Height <= 1 {
		return fmt.Errorf("config: world must be larger than 1x1, got %.0fx%.0f: %w", c.Width, c.Height, ErrInvalidConfig)
	}
	if c.TargetTickMs <= 0 {
		return fmt.Errorf("config: target_tick_ms must be positive, got %f: %w", c.TargetTickMs, ErrInvalidConfig)
	}
	if c.InitialBodies < 0 {
		return fmt.Errorf("config: initial_bodies must not be negative, got %d: %w", c.InitialBodies, ErrInvalidConfig)
	}
	if c.SpawnIntervalMs < 0 {
		return fmt.Errorf("config: spawn_interval_ms must not be negative, got %f: %w", c.SpawnIntervalMs, ErrInvalidConfig)
	}
	return nil
}

func (c *Config) Bounds() physics.Bounds {
	return physics.Bounds{Width: c.Width, Height: c.Height}
}

func (c *Config) TickDuration() time.Duration {
	return time.Duration(c.TargetTickMs * float64(time.Millisecond))
}

func (c *Config) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalMs * float64(time.Millisecond))
}

// TargetFPS is the frame cap implied by TargetTickMs.
func (c *Config) TargetFPS() int {
	fps := int(1000/c.TargetTickMs + 0.5)
	return max(fps, 1)
}
