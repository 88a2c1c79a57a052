package sim

import "github.com/san-kum/dotsim/internal/physics"

const (
	// MaxTickMs is the longest elapsed time accepted as a single tick. Longer
	// gaps (a dragged window, a paused terminal) are replaced by NominalTickMs.
	MaxTickMs     = 200.0
	NominalTickMs = 17.0
)

// Frame is what a single tick reports to renderers, metrics and observers.
// Its slices are copies and stay valid after later ticks.
type Frame struct {
	Tick       int
	Time       float64
	Dt         float64
	Clamped    bool
	Bodies     []physics.Body
	Explosions []physics.Explosion
	Centroid   physics.Centroid
	Destroyed  int
	Spawned    int
	Expired    int
}

type Metric interface {
	Name() string
	Observe(f *Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(f *Frame)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(f *Frame)

func (fn ObserverFunc) OnStep(f *Frame) { fn(f) }

type RunConfig struct {
	Ticks  int
	TickMs float64
}

func DefaultRunConfig() RunConfig {
	return RunConfig{
		Ticks:  600,
		TickMs: NominalTickMs,
	}
}

type Result struct {
	Times      []float64
	Bodies     []int
	Explosions []int
	Centroids  []physics.Centroid
	Destroyed  int
	StepsTaken int
	Metrics    map[string]float64
}
