// Package geom maps between grid cells, surface pixels and pointer
// coordinates. Every cell occupies a cellSize square followed by a one pixel
// gridline, with one extra gridline along the top and left edges.
package geom

import "math"

// Rect is an integer rectangle in surface pixels.
type Rect struct {
	X, Y, W, H int
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: float64(r.X) + float64(r.W)/2, Y: float64(r.Y) + float64(r.H)/2}
}

// Point is a position in either surface or CSS pixels.
type Point struct {
	X, Y float64
}

// Size is a width and height in either surface or CSS pixels.
type Size struct {
	W, H float64
}

// Segment is a straight line between two surface points.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Pitch returns the distance between the origins of adjacent cells.
func Pitch(cellSize int) int { return cellSize + 1 }

// SurfaceSize returns the pixel dimensions of a surface holding a
// width x height grid.
func SurfaceSize(width, height, cellSize int) (int, int) {
	p := Pitch(cellSize)
	return p*width + 1, p*height + 1
}

// CellRect returns the surface rectangle filled for (row, col).
func CellRect(row, col, cellSize int) Rect {
	p := Pitch(cellSize)
	return Rect{X: col*p + 1, Y: row*p + 1, W: cellSize, H: cellSize}
}

// GridLines returns the vertical then horizontal gridline segments covering a
// width x height grid.
func GridLines(width, height, cellSize int) []Segment {
	p := float64(Pitch(cellSize))
	sw, sh := SurfaceSize(width, height, cellSize)
	lines := make([]Segment, 0, width+height+2)
	for i := 0; i <= width; i++ {
		x := float64(i)*p + 1
		lines = append(lines, Segment{X0: x, Y0: 0, X1: x, Y1: float64(sh)})
	}
	for j := 0; j <= height; j++ {
		y := float64(j)*p + 1
		lines = append(lines, Segment{X0: 0, Y0: y, X1: float64(sw), Y1: y})
	}
	return lines
}

// PointerToCell maps a pointer position given in CSS pixels relative to the
// surface origin onto a grid cell. surface is the backing pixel size and css
// the displayed size; their ratio is the device pixel scale applied per axis.
// Results are clamped into the grid.
func PointerToCell(p Point, surface, css Size, width, height, cellSize int) (row, col int) {
	sx, sy := 1.0, 1.0
	if css.W > 0 {
		sx = surface.W / css.W
	}
	if css.H > 0 {
		sy = surface.H / css.H
	}
	pitch := float64(Pitch(cellSize))
	row = clamp(int(math.Floor(p.Y*sy/pitch)), height-1)
	col = clamp(int(math.Floor(p.X*sx/pitch)), width-1)
	return row, col
}

func clamp(v, max int) int {
	if v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	return v
}
