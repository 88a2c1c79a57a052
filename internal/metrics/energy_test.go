package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/dotsim/internal/physics"
	"github.com/san-kum/dotsim/internal/sim"
)

func TestEnergy(t *testing.T) {
	m := NewEnergy()

	f := &sim.Frame{Bodies: []physics.Body{
		physics.NewBody(0, 0, 3, 4),
		physics.NewBody(0, 0, 0, 2),
	}}
	m.Observe(f)

	expected := 0.5*25 + 0.5*4
	if math.Abs(m.Value()-expected) > 1e-9 {
		t.Errorf("expected energy %f, got %f", expected, m.Value())
	}

	m.Observe(&sim.Frame{})
	if math.Abs(m.Value()-expected/2) > 1e-9 {
		t.Errorf("expected mean energy %f, got %f", expected/2, m.Value())
	}
}

func TestEnergyReset(t *testing.T) {
	m := NewEnergy()

	m.Observe(&sim.Frame{Bodies: []physics.Body{physics.NewBody(0, 0, 1, 1)}})
	if m.Value() == 0 {
		t.Error("expected non-zero energy")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestMomentumDrift(t *testing.T) {
	m := NewMomentumDrift()

	m.Observe(&sim.Frame{Bodies: []physics.Body{physics.NewBody(0, 0, 10, 0)}})
	m.Observe(&sim.Frame{Bodies: []physics.Body{physics.NewBody(0, 0, -5, 0)}})
	m.Observe(&sim.Frame{Bodies: []physics.Body{physics.NewBody(0, 0, 8, 0)}})

	if m.Value() != 5 {
		t.Errorf("expected max drift 5, got %f", m.Value())
	}
}

func TestStability(t *testing.T) {
	s := NewStability(100)
	if s.Value() != 1 {
		t.Errorf("expected 1 with no samples, got %f", s.Value())
	}

	s.Observe(&sim.Frame{Bodies: []physics.Body{physics.NewBody(0, 0, 10, 0)}})
	s.Observe(&sim.Frame{Bodies: []physics.Body{physics.NewBody(0, 0, 300, 0)}})
	s.Observe(&sim.Frame{Clamped: true})
	s.Observe(&sim.Frame{})

	if s.Value() != 0.5 {
		t.Errorf("expected stability 0.5, got %f", s.Value())
	}
}

func TestCounters(t *testing.T) {
	pop, dead, peak := NewPopulation(), NewCasualties(), NewPeakExplosions()
	frames := []*sim.Frame{
		{Bodies: make([]physics.Body, 4), Explosions: make([]physics.Explosion, 1), Destroyed: 1},
		{Bodies: make([]physics.Body, 2), Explosions: make([]physics.Explosion, 3), Destroyed: 2},
		{Bodies: make([]physics.Body, 2), Explosions: make([]physics.Explosion, 0)},
	}
	for _, f := range frames {
		pop.Observe(f)
		dead.Observe(f)
		peak.Observe(f)
	}

	if pop.Value() != 2 || dead.Value() != 3 || peak.Value() != 3 {
		t.Errorf("got bodies=%v destroyed=%v peak=%v", pop.Value(), dead.Value(), peak.Value())
	}

	pop.Reset()
	dead.Reset()
	peak.Reset()
	if pop.Value() != 0 || dead.Value() != 0 || peak.Value() != 0 {
		t.Error("counters should be zero after reset")
	}
}

func TestDefaultNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Default() {
		if seen[m.Name()] {
			t.Errorf("duplicate metric name %q", m.Name())
		}
		seen[m.Name()] = true
	}
}
