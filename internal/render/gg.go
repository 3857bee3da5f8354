package render

import (
	"image/color"

	"github.com/gogpu/gg"
)

// GGSurface draws onto an in-memory gg.Context. It backs headless rendering.
type GGSurface struct {
	dc     *gg.Context
	fill   color.Color
	stroke color.Color
	err    error
}

// NewGGSurface wraps dc.
func NewGGSurface(dc *gg.Context) *GGSurface {
	dc.SetLineWidth(1)
	return &GGSurface{dc: dc, fill: color.Black, stroke: color.Black}
}

// Context returns the wrapped gg context.
func (s *GGSurface) Context() *gg.Context { return s.dc }

// Err returns the first rasterisation error encountered, if any.
func (s *GGSurface) Err() error { return s.err }

// Size implements Surface.
func (s *GGSurface) Size() (int, int) { return s.dc.Width(), s.dc.Height() }

// SetFillColor implements Surface.
func (s *GGSurface) SetFillColor(c color.Color) { s.fill = c }

// SetStrokeColor implements Surface.
func (s *GGSurface) SetStrokeColor(c color.Color) { s.stroke = c }

// FillRect implements Surface.
func (s *GGSurface) FillRect(x, y, w, h float64) {
	s.dc.SetColor(s.fill)
	s.dc.DrawRectangle(x, y, w, h)
	s.keep(s.dc.Fill())
}

// BeginPath implements Surface.
func (s *GGSurface) BeginPath() { s.dc.ClearPath() }

// MoveTo implements Surface.
func (s *GGSurface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }

// LineTo implements Surface.
func (s *GGSurface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

// Stroke implements Surface.
func (s *GGSurface) Stroke() {
	s.dc.SetColor(s.stroke)
	s.keep(s.dc.Stroke())
}

// Clear implements Surface.
func (s *GGSurface) Clear() { s.dc.Clear() }

// SavePNG writes the current surface to path.
func (s *GGSurface) SavePNG(path string) error { return s.dc.SavePNG(path) }

func (s *GGSurface) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}
