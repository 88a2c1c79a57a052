package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/dotsim/internal/physics"
)

// Simulator advances a World one tick at a time.
type Simulator struct {
	world     *World
	log       *slog.Logger
	metrics   []Metric
	observers []Observer
	tick      int
	time      float64
}

type Option func(*Simulator)

func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

func New(world *World, opts ...Option) *Simulator {
	s := &Simulator{
		world:     world,
		log:       slog.New(slog.DiscardHandler),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) World() *World     { return s.world }
func (s *Simulator) Ticks() int        { return s.tick }
func (s *Simulator) Time() float64     { return s.time }
func (s *Simulator) Metrics() []Metric { return s.metrics }

// Reset reseeds the world and zeroes the clock and every metric.
func (s *Simulator) Reset() {
	s.world.Reset()
	s.tick = 0
	s.time = 0
	for _, m := range s.metrics {
		m.Reset()
	}
	s.log.Debug("world reset", "bodies", len(s.world.bodies))
}

// Step runs one tick of dt milliseconds: queued spawns join the world, bodies
// move and bounce, gravity updates velocities for the next tick, explosions
// destroy the bodies they touch and finally age.
func (s *Simulator) Step(dt float64) (Frame, error) {
	if math.IsNaN(dt) || dt <= 0 {
		s.log.Warn("rejected tick", "dt", dt, "tick", s.tick)
		return Frame{}, &StepError{Tick: s.tick, Time: s.time, Wrapped: ErrInvalidDt}
	}

	clamped := false
	if dt > MaxTickMs {
		s.log.Debug("clamped stalled tick", "elapsed_ms", dt, "dt_ms", NominalTickMs)
		dt = NominalTickMs
		clamped = true
	}

	w := s.world
	w.flush()

	for i := range w.bodies {
		w.bodies[i].Integrate(dt/1000, w.bounds)
	}

	centroid := physics.Accumulate(w.bodies)

	res := physics.Resolve(w.bodies, w.explosions)
	w.bodies = res.Bodies
	w.explosions = append(w.explosions, res.Spawned...)
	if res.Destroyed > 0 {
		s.log.Debug("bodies destroyed", "count", res.Destroyed, "tick", s.tick, "remaining", len(w.bodies))
	}

	var expired int
	w.explosions, expired = physics.TickAll(w.explosions, dt)

	s.tick++
	s.time += dt

	bodies, explosions := w.snapshot()
	frame := Frame{
		Tick:       s.tick,
		Time:       s.time,
		Dt:         dt,
		Clamped:    clamped,
		Bodies:     bodies,
		Explosions: explosions,
		Centroid:   centroid,
		Destroyed:  res.Destroyed,
		Spawned:    len(res.Spawned),
		Expired:    expired,
	}

	for _, m := range s.metrics {
		m.Observe(&frame)
	}
	for _, obs := range s.observers {
		obs.OnStep(&frame)
	}

	return frame, nil
}

func (s *Simulator) validateRun(cfg RunConfig) error {
	if cfg.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d: %w", cfg.Ticks, ErrInvalidRun)
	}
	if math.IsNaN(cfg.TickMs) || cfg.TickMs <= 0 {
		return fmt.Errorf("tick must be positive, got %f: %w", cfg.TickMs, ErrInvalidRun)
	}
	return nil
}

// Run steps the simulation cfg.Ticks times without a frontend. On
// cancellation it returns what was collected so far together with ctx.Err().
func (s *Simulator) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if err := s.validateRun(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Times:      make([]float64, 0, cfg.Ticks),
		Bodies:     make([]int, 0, cfg.Ticks),
		Explosions: make([]int, 0, cfg.Ticks),
		Centroids:  make([]physics.Centroid, 0, cfg.Ticks),
		Metrics:    make(map[string]float64),
	}

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			s.collectMetrics(result)
			return result, ctx.Err()
		default:
		}

		frame, err := s.Step(cfg.TickMs)
		if err != nil {
			return result, err
		}

		result.Times = append(result.Times, frame.Time)
		result.Bodies = append(result.Bodies, len(frame.Bodies))
		result.Explosions = append(result.Explosions, len(frame.Explosions))
		result.Centroids = append(result.Centroids, frame.Centroid)
		result.Destroyed += frame.Destroyed
		result.StepsTaken++
	}

	s.collectMetrics(result)
	s.log.Info("run complete", "ticks", result.StepsTaken, "destroyed", result.Destroyed, "bodies", len(s.world.bodies))
	return result, nil
}

func (s *Simulator) collectMetrics(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
