package sim

import (
	"math"
	"slices"

	"github.com/san-kum/dotsim/internal/physics"
)

// DefaultInitialBodies is how many random bodies a fresh world starts with.
const DefaultInitialBodies = 20

// World owns every body and explosion. Spawn requests from input are queued
// and only join the live collections at the start of the next tick, so no
// pass ever sees its collection change underneath it.
type World struct {
	bounds  physics.Bounds
	rng     physics.Source
	initial int

	bodies     []physics.Body
	explosions []physics.Explosion

	pendingBodies     []physics.Body
	pendingExplosions []physics.Explosion
}

// NewWorld creates a world seeded with initialBodies random bodies drawn from
// rng.
func NewWorld(bounds physics.Bounds, rng physics.Source, initialBodies int) *World {
	w := &World{
		bounds:  bounds,
		rng:     rng,
		initial: max(initialBodies, 0),
	}
	w.seed()
	return w
}

func (w *World) seed() {
	w.bodies = make([]physics.Body, 0, w.initial)
	for i := 0; i < w.initial; i++ {
		w.bodies = append(w.bodies, physics.RandomBody(w.rng, w.bounds))
	}
}

// Reset drops everything, queued spawns included, and reseeds the initial
// bodies.
func (w *World) Reset() {
	w.explosions = nil
	w.pendingBodies = nil
	w.pendingExplosions = nil
	w.seed()
}

// Clear removes every body and explosion without reseeding.
func (w *World) Clear() {
	w.bodies = w.bodies[:0]
	w.explosions = w.explosions[:0]
	w.pendingBodies = nil
	w.pendingExplosions = nil
}

func (w *World) Bounds() physics.Bounds { return w.bounds }

// Bodies returns the live bodies. The slice is owned by the world; callers
// must not keep or modify it across ticks.
func (w *World) Bodies() []physics.Body { return w.bodies }

// Explosions returns the live explosions, with the same ownership rule as
// Bodies.
func (w *World) Explosions() []physics.Explosion { return w.explosions }

func (w *World) Pending() int { return len(w.pendingBodies) + len(w.pendingExplosions) }

// SpawnBody queues a body at (x, y) with a random velocity. Positions outside
// the world are clamped onto its edge.
func (w *World) SpawnBody(x, y float64) {
	x, y = w.clamp(x, y)
	dx, dy := physics.RandomVelocity(w.rng)
	w.pendingBodies = append(w.pendingBodies, physics.NewBody(x, y, dx, dy))
}

// SpawnRandomBody queues a body at a uniformly random position.
func (w *World) SpawnRandomBody() {
	w.pendingBodies = append(w.pendingBodies, physics.RandomBody(w.rng, w.bounds))
}

// AddBody queues a fully specified body. Non-finite velocity and mass
// components are zeroed.
func (w *World) AddBody(b physics.Body) {
	b.X, b.Y = w.clamp(b.X, b.Y)
	b.DX, b.DY = finite(b.DX), finite(b.DY)
	b.Mass = math.Max(finite(b.Mass), 0)
	w.pendingBodies = append(w.pendingBodies, b)
}

// SpawnExplosion queues a new explosion at (x, y).
func (w *World) SpawnExplosion(x, y float64) {
	w.pendingExplosions = append(w.pendingExplosions, physics.NewExplosion(x, y))
}

// AddExplosion queues a fully specified explosion.
func (w *World) AddExplosion(e physics.Explosion) {
	w.pendingExplosions = append(w.pendingExplosions, e)
}

// flush moves queued spawns into the live collections.
func (w *World) flush() int {
	n := len(w.pendingBodies) + len(w.pendingExplosions)
	w.bodies = append(w.bodies, w.pendingBodies...)
	w.explosions = append(w.explosions, w.pendingExplosions...)
	w.pendingBodies = w.pendingBodies[:0]
	w.pendingExplosions = w.pendingExplosions[:0]
	return n
}

// clamp maps NaN to 0 and everything else onto the nearest edge.
func (w *World) clamp(x, y float64) (float64, float64) {
	if math.IsNaN(x) {
		x = 0
	}
	if math.IsNaN(y) {
		y = 0
	}
	return math.Min(math.Max(x, 0), w.bounds.Width), math.Min(math.Max(y, 0), w.bounds.Height)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (w *World) snapshot() ([]physics.Body, []physics.Explosion) {
	return slices.Clone(w.bodies), slices.Clone(w.explosions)
}

// Snapshot returns a tick-less frame holding copies of the live bodies and
// explosions, for renderers that need something to draw before the first
// step.
func (w *World) Snapshot() Frame {
	bodies, explosions := w.snapshot()
	return Frame{Bodies: bodies, Explosions: explosions}
}
