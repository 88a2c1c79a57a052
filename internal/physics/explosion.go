package physics

import "math"

const (
	ExplosionDuration  = 500.0
	ExplosionMaxRadius = 100.0
)

// Explosion is an expanding destructive field. Age and Duration are in
// milliseconds.
type Explosion struct {
	X, Y     float64
	Age      float64
	Duration float64
}

func NewExplosion(x, y float64) Explosion {
	return Explosion{X: x, Y: y, Duration: ExplosionDuration}
}

// Radius grows with the square root of the explosion's life fraction, from 0
// at creation to ExplosionMaxRadius at expiry.
func (e *Explosion) Radius() float64 {
	if e.Duration <= 0 {
		return ExplosionMaxRadius
	}
	age := math.Min(math.Max(e.Age, 0), e.Duration)
	return ExplosionMaxRadius * math.Sqrt(age/e.Duration)
}

// Tick ages the explosion by dt milliseconds and reports whether it has
// expired. Age never exceeds Duration.
func (e *Explosion) Tick(dt float64) bool {
	e.Age += dt
	if e.Age >= e.Duration {
		e.Age = e.Duration
		return true
	}
	return false
}

func (e *Explosion) Expired() bool { return e.Age >= e.Duration }

// Intersects reports whether the explosion's circle overlaps the body's.
func (e *Explosion) Intersects(b *Body) bool {
	return Distance(e.X, e.Y, b.X, b.Y) < e.Radius()+b.Radius
}

// TickAll ages every explosion and compacts expired ones out of the slice in
// place. It returns the survivors and the number removed.
func TickAll(explosions []Explosion, dt float64) ([]Explosion, int) {
	kept := explosions[:0]
	for i := range explosions {
		if explosions[i].Tick(dt) {
			continue
		}
		kept = append(kept, explosions[i])
	}
	expired := len(explosions) - len(kept)
	clear(explosions[len(kept):])
	return kept, expired
}
