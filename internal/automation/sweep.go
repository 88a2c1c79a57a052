package automation

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/san-kum/dotsim/internal/metrics"
	"github.com/san-kum/dotsim/internal/physics"
	"github.com/san-kum/dotsim/internal/sim"
)

// Sweep runs the same scenario across a range of initial dot counts.
type Sweep struct {
	MinBodies int
	MaxBodies int
	NumSteps  int
	Ticks     int
	TickMs    float64
	Seed      int64
	Bounds    physics.Bounds
}

// SweepResult holds what one run of a sweep left behind.
type SweepResult struct {
	Bodies         int
	Destroyed      int
	Survivors      int
	PeakExplosions int
}

// RunSweep executes a sweep. Each run gets a fresh world seeded with the same
// seed, so counts differ only in how many dots were placed.
func RunSweep(ctx context.Context, sweep Sweep, scenario *Scenario, log *slog.Logger) ([]SweepResult, error) {
	if sweep.NumSteps < 1 || sweep.MinBodies < 0 || sweep.MaxBodies < sweep.MinBodies {
		return nil, fmt.Errorf("invalid sweep: %d..%d dots in %d steps", sweep.MinBodies, sweep.MaxBodies, sweep.NumSteps)
	}
	if scenario == nil {
		scenario = CenterBlast(sweep.Bounds)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	stride := 0.0
	if sweep.NumSteps > 1 {
		stride = float64(sweep.MaxBodies-sweep.MinBodies) / float64(sweep.NumSteps-1)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	for i := 0; i < sweep.NumSteps; i++ {
		n := sweep.MinBodies + int(float64(i)*stride+0.5)

		world := sim.NewWorld(sweep.Bounds, rand.New(rand.NewSource(sweep.Seed)), n)
		s := sim.New(world)
		peak := metrics.NewPeakExplosions()
		s.AddMetric(peak)

		script, err := NewScript(scenario, world)
		if err != nil {
			return results, err
		}
		script.Attach(s)

		result, err := s.Run(ctx, sim.RunConfig{Ticks: sweep.Ticks, TickMs: sweep.TickMs})
		if err != nil {
			return results, fmt.Errorf("sweep step %d: %w", i+1, err)
		}

		results = append(results, SweepResult{
			Bodies:         n,
			Destroyed:      result.Destroyed,
			Survivors:      len(world.Bodies()),
			PeakExplosions: int(peak.Value()),
		})
		log.Debug("sweep step", "step", i+1, "bodies", n, "destroyed", result.Destroyed)
	}

	return results, nil
}
