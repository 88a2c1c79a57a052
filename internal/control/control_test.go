package control

import (
	"testing"
	"time"

	"github.com/san-kum/dotsim/internal/physics"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type recorder struct {
	bodies     [][2]float64
	explosions [][2]float64
}

func (r *recorder) SpawnBody(x, y float64)      { r.bodies = append(r.bodies, [2]float64{x, y}) }
func (r *recorder) SpawnExplosion(x, y float64) { r.explosions = append(r.explosions, [2]float64{x, y}) }

func TestThrottle(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	th := NewThrottle(100*time.Millisecond, clock.now)

	if !th.Allow() {
		t.Fatal("first event should pass")
	}
	clock.advance(50 * time.Millisecond)
	if th.Allow() {
		t.Error("event inside interval should be dropped")
	}
	clock.advance(50 * time.Millisecond)
	if th.Allow() {
		t.Error("event exactly at the interval should be dropped")
	}
	clock.advance(time.Millisecond)
	if !th.Allow() {
		t.Error("event after the interval should pass")
	}

	th.Reset()
	if !th.Allow() {
		t.Error("event after reset should pass")
	}
}

func TestManualDragSpawnsThrottled(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 1)}
	rec := &recorder{}
	m := NewManual(rec, 100*time.Millisecond, clock.now)

	m.Drag(5, 5)
	if len(rec.bodies) != 0 {
		t.Fatal("motion without a press must not spawn")
	}

	m.Press(10, 10, false)
	if len(rec.bodies) != 0 || len(rec.explosions) != 0 {
		t.Fatal("a plain press spawns nothing")
	}

	for i := 0; i < 30; i++ {
		m.Drag(float64(10+i), 10)
		clock.advance(17 * time.Millisecond)
	}
	// 30 moves over 510ms with a 100ms throttle: t=0, 102, 204, 306, 408
	if len(rec.bodies) != 5 {
		t.Errorf("expected 5 throttled spawns, got %d", len(rec.bodies))
	}

	m.Release()
	clock.advance(time.Second)
	m.Drag(1, 1)
	if len(rec.bodies) != 5 {
		t.Error("motion after release must not spawn")
	}
}

func TestManualExplode(t *testing.T) {
	rec := &recorder{}
	m := NewManual(rec, 100*time.Millisecond, nil)

	m.Press(400, 300, true)
	if len(rec.explosions) != 1 || rec.explosions[0] != [2]float64{400, 300} {
		t.Fatalf("expected explosion at (400, 300), got %v", rec.explosions)
	}
	if m.Dragging() {
		t.Error("an explode press should not start a drag")
	}

	m.ToggleExplodeMode()
	m.Press(1, 2, false)
	if len(rec.explosions) != 2 {
		t.Errorf("explode mode should turn plain presses into explosions, got %d", len(rec.explosions))
	}
}

func TestViewportToWorld(t *testing.T) {
	v := Viewport{X: 2, Y: 1, Width: 80, Height: 30, World: physics.Bounds{Width: 800, Height: 600}}

	tests := []struct {
		name         string
		sx, sy       float64
		wantX, wantY float64
		ok           bool
	}{
		{"origin", 2, 1, 0, 0, true},
		{"middle", 42, 16, 400, 300, true},
		{"left of viewport", 1, 5, 0, 0, false},
		{"below viewport", 10, 31, 0, 0, false},
		{"right edge excluded", 82, 5, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := v.ToWorld(tt.sx, tt.sy)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (x != tt.wantX || y != tt.wantY) {
				t.Errorf("got (%.2f, %.2f), want (%.2f, %.2f)", x, y, tt.wantX, tt.wantY)
			}
		})
	}

	x, y, ok := v.CellToWorld(2, 1)
	if !ok || x != 5 || y != 10 {
		t.Errorf("CellToWorld(2, 1) = (%.2f, %.2f, %v), want (5, 10, true)", x, y, ok)
	}
}
