package physics

// Gravity scales the pairwise attraction. Force decays linearly with
// distance, not quadratically.
const (
	Gravity         = 500.0
	MinPairDistance = 1.0
)

// Centroid is the mean position of the massive bodies. OK is false when there
// were none.
type Centroid struct {
	X, Y float64
	OK   bool
}

// PairForce returns the velocity change applied to a by b. Pairs closer than
// MinPairDistance, or involving a massless body, contribute nothing.
func PairForce(a, b *Body) (float64, float64) {
	if !a.Massive() || !b.Massive() {
		return 0, 0
	}
	rx := a.X - b.X
	ry := a.Y - b.Y
	dist := Distance(a.X, a.Y, b.X, b.Y)
	if dist < MinPairDistance {
		return 0, 0
	}
	px := rx / dist
	py := ry / dist
	force := Gravity * a.Mass * b.Mass / dist
	return -px * force, -py * force
}

// Accumulate applies gravity between every ordered pair of massive bodies and
// returns their centroid. Only velocities change; positions move on the next
// Integrate.
func Accumulate(bodies []Body) Centroid {
	var sx, sy float64
	count := 0

	for i := range bodies {
		a := &bodies[i]
		if !a.Massive() {
			continue
		}
		sx += a.X
		sy += a.Y
		count++

		for j := range bodies {
			if i == j {
				continue
			}
			fx, fy := PairForce(a, &bodies[j])
			a.DX += fx
			a.DY += fy
		}
	}

	if count == 0 {
		return Centroid{}
	}
	return Centroid{X: sx / float64(count), Y: sy / float64(count), OK: true}
}

// Momentum sums mass-weighted velocity over all bodies.
func Momentum(bodies []Body) (px, py float64) {
	for i := range bodies {
		px += bodies[i].Mass * bodies[i].DX
		py += bodies[i].Mass * bodies[i].DY
	}
	return
}
