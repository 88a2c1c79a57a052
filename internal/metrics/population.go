package metrics

import "github.com/san-kum/dotsim/internal/sim"

// Population reports the body count of the latest frame.
type Population struct {
	last int
}

func NewPopulation() *Population { return &Population{} }

func (p *Population) Name() string         { return "bodies" }
func (p *Population) Observe(f *sim.Frame) { p.last = len(f.Bodies) }
func (p *Population) Value() float64       { return float64(p.last) }
func (p *Population) Reset()               { p.last = 0 }

// Casualties counts bodies destroyed by explosions.
type Casualties struct {
	total int
}

func NewCasualties() *Casualties { return &Casualties{} }

func (c *Casualties) Name() string         { return "destroyed" }
func (c *Casualties) Observe(f *sim.Frame) { c.total += f.Destroyed }
func (c *Casualties) Value() float64       { return float64(c.total) }
func (c *Casualties) Reset()               { c.total = 0 }

// PeakExplosions is the largest number of simultaneous explosions seen.
type PeakExplosions struct {
	peak int
}

func NewPeakExplosions() *PeakExplosions { return &PeakExplosions{} }

func (p *PeakExplosions) Name() string { return "peak_explosions" }
func (p *PeakExplosions) Observe(f *sim.Frame) {
	p.peak = max(p.peak, len(f.Explosions))
}
func (p *PeakExplosions) Value() float64 { return float64(p.peak) }
func (p *PeakExplosions) Reset()         { p.peak = 0 }

// Default returns the metrics attached to every run.
func Default() []sim.Metric {
	return []sim.Metric{
		NewPopulation(),
		NewCasualties(),
		NewPeakExplosions(),
		NewEnergy(),
		NewMomentumDrift(),
		NewStability(5 * 300),
	}
}
