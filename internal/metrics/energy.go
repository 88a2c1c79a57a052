package metrics

import (
	"math"

	"github.com/san-kum/dotsim/internal/physics"
	"github.com/san-kum/dotsim/internal/sim"
)

// Energy is the mean total kinetic energy of the bodies over all observed
// frames.
type Energy struct {
	name        string
	samples     int
	totalEnergy float64
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(f *sim.Frame) {
	e.totalEnergy += KineticEnergy(f.Bodies)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}

// KineticEnergy sums 0.5*m*v² over bodies.
func KineticEnergy(bodies []physics.Body) float64 {
	total := 0.0
	for i := range bodies {
		total += bodies[i].KineticEnergy()
	}
	return total
}

// MomentumDrift tracks the largest change in total momentum magnitude seen
// since the first observed frame. Gravity alone conserves momentum, so drift
// comes from wall bounces and destroyed bodies.
type MomentumDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{name: "momentum_drift"}
}

func (m *MomentumDrift) Name() string { return m.name }

func (m *MomentumDrift) Observe(f *sim.Frame) {
	px, py := physics.Momentum(f.Bodies)
	p := math.Hypot(px, py)
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++
	m.maxDrift = math.Max(m.maxDrift, math.Abs(p-m.initial))
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}
