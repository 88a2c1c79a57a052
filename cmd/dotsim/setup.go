package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/dotsim/internal/config"
	"github.com/san-kum/dotsim/internal/metrics"
	"github.com/san-kum/dotsim/internal/sim"
)

type app struct {
	cfg *config.Config
	sim *sim.Simulator
	log *slog.Logger
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// loadConfig resolves the configuration: preset first, then the config file,
// then any flag set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("bodies") {
		cfg.InitialBodies = numBodies
	}
	if flags.Changed("tick-ms") {
		cfg.TargetTickMs = tickMs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setup(cmd *cobra.Command) (*app, error) {
	log, err := newLogger(logLevel)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	world := sim.NewWorld(cfg.Bounds(), rand.New(rand.NewSource(cfg.Seed)), cfg.InitialBodies)
	s := sim.New(world, sim.WithLogger(log))
	for _, m := range metrics.Default() {
		s.AddMetric(m)
	}

	log.Debug("world ready", "seed", cfg.Seed, "bodies", cfg.InitialBodies, "width", cfg.Width, "height", cfg.Height)
	return &app{cfg: cfg, sim: s, log: log}, nil
}
