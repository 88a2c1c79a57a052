package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Layer tags what a cell shows. When layers share a cell the higher one
// decides its color.
type Layer uint8

const (
	LayerNone Layer = iota
	LayerExplosion
	LayerBody
	LayerCentroid
)

type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Layers        [][]Layer
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Layers: make([][]Layer, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Layers[i] = make([]Layer, w)
	}
	c.Clear()
	return c
}

// PixelSize is the canvas size in sub-pixels.
func (c *Canvas) PixelSize() (int, int) { return c.Width * 2, c.Height * 4 }

// Set sets the sub-pixel (x, y) on the given layer.
func (c *Canvas) Set(x, y int, layer Layer) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if layer > c.Layers[row][col] {
		c.Layers[row][col] = layer
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Layers[i][j] = LayerNone
		}
	}
}

// Ellipse draws the outline of an axis-aligned ellipse centered on (cx, cy).
func (c *Canvas) Ellipse(cx, cy, rx, ry float64, layer Layer) {
	if rx < 0.5 && ry < 0.5 {
		c.Set(int(cx), int(cy), layer)
		return
	}
	steps := max(16, int(6*math.Max(rx, ry)))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.Set(int(math.Round(cx+rx*math.Cos(a))), int(math.Round(cy+ry*math.Sin(a))), layer)
	}
}

// Dot fills a size x size block centered on (x, y). Even sizes cover one more
// sub-pixel above and left of the center than below and right.
func (c *Canvas) Dot(x, y, size int, layer Layer) {
	x -= size / 2
	y -= size / 2
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			c.Set(x+dx, y+dy, layer)
		}
	}
}

// Render draws the grid, coloring each run of same-layer cells with the
// style style returns for that layer.
func (c *Canvas) Render(style func(Layer) lipgloss.Style) string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Layers[i][j] == c.Layers[i][start] {
				continue
			}
			run := string(row[start:j])
			if layer := c.Layers[i][start]; layer != LayerNone && style != nil {
				run = style(layer).Render(run)
			}
			b.WriteString(run)
			start = j
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Canvas) String() string { return c.Render(nil) }
