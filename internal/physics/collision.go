package physics

import "math"

// Resolution is the outcome of one collision pass.
type Resolution struct {
	Bodies    []Body
	Spawned   []Explosion
	Destroyed int
}

// Resolve tests every body against the explosions passed in. A body that
// intersects any of them is destroyed and replaced by exactly one new
// explosion at its truncated position. Destroyed bodies are marked during the
// pass and compacted afterwards, and spawned explosions are only returned, so
// neither list changes while it is being walked. The caller appends Spawned
// once the pass is over; chain reactions continue on the next tick.
func Resolve(bodies []Body, explosions []Explosion) Resolution {
	if len(explosions) == 0 || len(bodies) == 0 {
		return Resolution{Bodies: bodies}
	}

	dead := make([]bool, len(bodies))
	var spawned []Explosion

	for e := range explosions {
		exp := &explosions[e]
		for i := range bodies {
			if dead[i] {
				continue
			}
			if exp.Intersects(&bodies[i]) {
				dead[i] = true
				spawned = append(spawned, NewExplosion(math.Trunc(bodies[i].X), math.Trunc(bodies[i].Y)))
			}
		}
	}

	if len(spawned) == 0 {
		return Resolution{Bodies: bodies}
	}

	kept := bodies[:0]
	for i := range bodies {
		if !dead[i] {
			kept = append(kept, bodies[i])
		}
	}
	clear(bodies[len(kept):])

	return Resolution{Bodies: kept, Spawned: spawned, Destroyed: len(spawned)}
}
