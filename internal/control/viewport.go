package control

import "github.com/san-kum/dotsim/internal/physics"

// Viewport is a screen rectangle showing the whole world. Screen units are
// whatever the frontend reports: pixels for a window, cells for a terminal.
type Viewport struct {
	X, Y          float64
	Width, Height float64
	World         physics.Bounds
}

// ToWorld converts a screen point to world coordinates. ok is false when the
// point lies outside the viewport.
func (v Viewport) ToWorld(sx, sy float64) (x, y float64, ok bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, 0, false
	}
	rx := sx - v.X
	ry := sy - v.Y
	if rx < 0 || ry < 0 || rx >= v.Width || ry >= v.Height {
		return 0, 0, false
	}
	return rx * v.World.Width / v.Width, ry * v.World.Height / v.Height, true
}

// CellToWorld converts a terminal cell to the world point at its center.
func (v Viewport) CellToWorld(col, row int) (float64, float64, bool) {
	return v.ToWorld(float64(col)+0.5, float64(row)+0.5)
}
