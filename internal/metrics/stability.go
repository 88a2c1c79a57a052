package metrics

import (
	"github.com/san-kum/dotsim/internal/sim"
)

// Stability is the fraction of observed frames in which no body moved faster
// than threshold and the tick did not have to be clamped.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(f *sim.Frame) {
	s.samples++
	if f.Clamped {
		s.violations++
		return
	}
	for i := range f.Bodies {
		if f.Bodies[i].Speed() > s.threshold {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
