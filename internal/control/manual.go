package control

import "time"

// Spawner receives spawn requests in world coordinates.
type Spawner interface {
	SpawnBody(x, y float64)
	SpawnExplosion(x, y float64)
}

// Manual maps pointer gestures to spawns. A press with explode set creates an
// explosion; a press without it starts a drag, and drag motion drops bodies
// no faster than the throttle allows.
type Manual struct {
	ExplodeMode bool

	spawner  Spawner
	throttle *Throttle
	dragging bool
}

func NewManual(spawner Spawner, interval time.Duration, now Clock) *Manual {
	return &Manual{
		spawner:  spawner,
		throttle: NewThrottle(interval, now),
	}
}

// Press handles a button press. explode is true when the frontend's explode
// modifier is held; ExplodeMode has the same effect.
func (m *Manual) Press(x, y float64, explode bool) {
	if explode || m.ExplodeMode {
		m.spawner.SpawnExplosion(x, y)
		m.dragging = false
		return
	}
	m.dragging = true
}

// Drag handles pointer motion with the button held.
func (m *Manual) Drag(x, y float64) {
	if !m.dragging {
		return
	}
	if m.throttle.Allow() {
		m.spawner.SpawnBody(x, y)
	}
}

func (m *Manual) Release() { m.dragging = false }

func (m *Manual) Dragging() bool { return m.dragging }

func (m *Manual) ToggleExplodeMode() { m.ExplodeMode = !m.ExplodeMode }
