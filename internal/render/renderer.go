package render

import (
	"image/color"

	"lifecanvas/internal/core"
	"lifecanvas/internal/geom"
)

// Surface is a canvas-style 2D drawing target. Fill and stroke colours are
// sticky state, so changing them is the expensive operation callers batch.
type Surface interface {
	Size() (int, int)
	SetFillColor(c color.Color)
	FillRect(x, y, w, h float64)
	SetStrokeColor(c color.Color)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	Clear()
}

// Colors holds the palette used by the Renderer.
type Colors struct {
	Grid  color.Color
	Dead  color.Color
	Alive color.Color
}

// DefaultColors returns light gridlines, white dead cells and black live cells.
func DefaultColors() Colors {
	return Colors{
		Grid:  color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
		Dead:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Alive: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	}
}

// Renderer draws gridlines and cells of a fixed-size grid onto a Surface.
type Renderer struct {
	surface  Surface
	cellSize int
	w, h     int
	colors   Colors
	grid     []geom.Segment
	overlay  bool
}

// NewRenderer constructs a Renderer for a w x h grid.
func NewRenderer(s Surface, w, h, cellSize int, colors Colors) *Renderer {
	return &Renderer{
		surface:  s,
		cellSize: cellSize,
		w:        w,
		h:        h,
		colors:   colors,
		grid:     geom.GridLines(w, h, cellSize),
	}
}

// Surface returns the drawing target.
func (r *Renderer) Surface() Surface { return r.surface }

// CellSize returns the edge length of a cell in surface pixels.
func (r *Renderer) CellSize() int { return r.cellSize }

// GridOverlay reports whether gridlines are drawn every frame.
func (r *Renderer) GridOverlay() bool { return r.overlay }

// SetGridOverlay enables or disables per-frame gridlines. Disabling clears
// the surface once since the lines already drawn would otherwise remain.
func (r *Renderer) SetGridOverlay(enabled bool) {
	if r.overlay && !enabled {
		r.surface.Clear()
	}
	r.overlay = enabled
}

// DrawGrid strokes every gridline in a single path.
func (r *Renderer) DrawGrid() {
	s := r.surface
	s.BeginPath()
	s.SetStrokeColor(r.colors.Grid)
	for _, l := range r.grid {
		s.MoveTo(l.X0, l.Y0)
		s.LineTo(l.X1, l.Y1)
	}
	s.Stroke()
}

// DrawCells fills every cell of v. Live cells are filled in one scan and dead
// cells in a second one, so the fill colour changes exactly twice per call
// whatever the grid size.
func (r *Renderer) DrawCells(v core.View) {
	r.surface.SetFillColor(r.colors.Alive)
	r.fillWhere(v, core.Alive)
	r.surface.SetFillColor(r.colors.Dead)
	r.fillWhere(v, core.Dead)
}

func (r *Renderer) fillWhere(v core.View, state core.CellState) {
	w, h := v.Width(), v.Height()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if v.At(row, col) != state {
				continue
			}
			rc := geom.CellRect(row, col, r.cellSize)
			r.surface.FillRect(float64(rc.X), float64(rc.Y), float64(rc.W), float64(rc.H))
		}
	}
}
