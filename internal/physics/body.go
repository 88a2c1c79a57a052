package physics

import "math"

const (
	BodyRadius  = 5.0
	BodyMass    = 1.0
	Restitution = 0.5
	MaxSpeed    = 300.0
)

// Source is the random source used to seed bodies.
type Source interface {
	Float64() float64
}

// Bounds is the rectangle bodies bounce inside of.
type Bounds struct {
	Width  float64
	Height float64
}

func DefaultBounds() Bounds {
	return Bounds{Width: 800, Height: 600}
}

// Body is a point mass. Velocities are in pixels per second.
type Body struct {
	X, Y   float64
	DX, DY float64
	Mass   float64
	Radius float64
}

// NewBody creates a body with the default mass and radius.
func NewBody(x, y, dx, dy float64) Body {
	return Body{X: x, Y: y, DX: dx, DY: dy, Mass: BodyMass, Radius: BodyRadius}
}

// NewBodyWithMass is NewBody with an explicit mass. Negative mass is clamped
// to zero, and a zero mass body does not take part in gravity.
func NewBodyWithMass(x, y, dx, dy, mass float64) Body {
	b := NewBody(x, y, dx, dy)
	b.Mass = math.Max(mass, 0)
	return b
}

// RandomVelocity draws both components uniformly from [-MaxSpeed, MaxSpeed].
func RandomVelocity(src Source) (float64, float64) {
	return src.Float64()*2*MaxSpeed - MaxSpeed, src.Float64()*2*MaxSpeed - MaxSpeed
}

// RandomBody places a body uniformly inside b with a random velocity.
func RandomBody(src Source, b Bounds) Body {
	x := src.Float64() * b.Width
	y := src.Float64() * b.Height
	dx, dy := RandomVelocity(src)
	return NewBody(x, y, dx, dy)
}

func (b *Body) Massive() bool { return b.Mass != 0 }

// Integrate moves the body by dt seconds and reflects it off the walls.
// The reflected velocity component loses half its magnitude and the position
// is pinned one pixel inside the wall so the same branch does not fire again
// on the next tick.
func (b *Body) Integrate(dt float64, bounds Bounds) {
	b.X += b.DX * dt
	b.Y += b.DY * dt

	if b.X > bounds.Width {
		b.X = bounds.Width - 1
		b.DX = -Restitution * math.Abs(b.DX)
	} else if b.X < 0 {
		b.X = 1
		b.DX = Restitution * math.Abs(b.DX)
	}
	if b.Y > bounds.Height {
		b.Y = bounds.Height - 1
		b.DY = -Restitution * math.Abs(b.DY)
	} else if b.Y < 0 {
		b.Y = 1
		b.DY = Restitution * math.Abs(b.DY)
	}
}

func (b *Body) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

func (b *Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * (b.DX*b.DX + b.DY*b.DY)
}

// Distance returns the center-to-center distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}
