package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/dotsim/internal/physics"
	"github.com/san-kum/dotsim/internal/sim"
)

func TestFrameToSVG(t *testing.T) {
	f := &sim.Frame{
		Bodies:     []physics.Body{physics.NewBody(10, 20, 0, 0), physics.NewBody(30, 40, 0, 0)},
		Explosions: []physics.Explosion{{X: 400, Y: 300, Age: 500, Duration: 500}},
		Centroid:   physics.Centroid{X: 20, Y: 30, OK: true},
	}

	var buf bytes.Buffer
	if err := FrameToSVG(&buf, f, physics.DefaultBounds(), nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, `width="800" height="600"`) {
		t.Error("missing world size")
	}
	if got := strings.Count(out, "<circle"); got != 4 {
		t.Errorf("circles = %d, want 4", got)
	}
	if !strings.Contains(out, `<circle cx="400.0" cy="300.0" r="100.0"/>`) {
		t.Error("explosion not drawn at full radius")
	}
	if strings.Index(out, colExplosion) > strings.Index(out, colBody) {
		t.Error("explosions must be drawn before bodies")
	}
	if strings.Contains(out, "<path") {
		t.Error("path drawn without a trail")
	}
}

func TestFrameToSVGNoCentroid(t *testing.T) {
	var buf bytes.Buffer
	if err := FrameToSVG(&buf, &sim.Frame{}, physics.DefaultBounds(), nil); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), colCentroid) {
		t.Error("centroid drawn for an empty world")
	}
}

func TestTrailPath(t *testing.T) {
	tests := []struct {
		name  string
		trail []physics.Centroid
		want  string
	}{
		{"empty", nil, ""},
		{"single point", []physics.Centroid{{X: 1, Y: 2, OK: true}}, ""},
		{"line", []physics.Centroid{{X: 1, Y: 2, OK: true}, {X: 3, Y: 4, OK: true}}, "M1.0,2.0 L3.0,4.0"},
		{"gap", []physics.Centroid{{X: 1, Y: 2, OK: true}, {}, {X: 3, Y: 4, OK: true}}, "M1.0,2.0 M3.0,4.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trailPath(tt.trail); got != tt.want {
				t.Errorf("trailPath = %q, want %q", got, tt.want)
			}
		})
	}
}
