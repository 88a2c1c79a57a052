// Package export renders world snapshots as SVG.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/dotsim/internal/physics"
	"github.com/san-kum/dotsim/internal/sim"
)

const (
	colBackground = "#000000"
	colBody       = "#0000ff"
	colExplosion  = "#ff0000"
	colCentroid   = "#00ff00"
	colTrail      = "#006600"

	centroidRadius = 3
)

// FrameToSVG draws a frame the way the window frontend does: explosions,
// then bodies, then the centroid. trail, if it has at least two points with
// a centroid, is drawn under everything as the path of the center of mass.
func FrameToSVG(w io.Writer, f *sim.Frame, b physics.Bounds, trail []physics.Centroid) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, b.Width, b.Height, b.Width, b.Height, colBackground)

	if path := trailPath(trail); path != "" {
		fmt.Fprintf(&sb, `<path d="%s" fill="none" stroke="%s" stroke-width="1"/>
`, path, colTrail)
	}

	sb.WriteString(`<g fill="` + colExplosion + `">` + "\n")
	for i := range f.Explosions {
		e := &f.Explosions[i]
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, e.X, e.Y, e.Radius())
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g fill="` + colBody + `">` + "\n")
	for i := range f.Bodies {
		d := &f.Bodies[i]
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, d.X, d.Y, d.Radius)
	}
	sb.WriteString("</g>\n")

	if c := f.Centroid; c.OK {
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%d" fill="%s"/>
`, c.X, c.Y, centroidRadius, colCentroid)
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// trailPath builds an SVG path through the valid centroids. Ticks without a
// centroid break the line.
func trailPath(trail []physics.Centroid) string {
	var sb strings.Builder
	points, move := 0, true
	for _, c := range trail {
		if !c.OK {
			move = true
			continue
		}
		cmd := "L"
		if move {
			cmd = "M"
			move = false
		}
		fmt.Fprintf(&sb, "%s%.1f,%.1f ", cmd, c.X, c.Y)
		points++
	}
	if points < 2 {
		return ""
	}
	return strings.TrimSpace(sb.String())
}
