//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface keeps a persistent offscreen image that behaves like a
// canvas: drawn pixels stay until overwritten or cleared.
type EbitenSurface struct {
	w, h   int
	img    *ebiten.Image
	fill   color.Color
	stroke color.Color
	path   []pathPoint
}

type pathPoint struct {
	x, y float32
	move bool
}

// NewEbitenSurface allocates a w x h canvas image.
func NewEbitenSurface(w, h int) *EbitenSurface {
	return &EbitenSurface{
		w:      w,
		h:      h,
		img:    ebiten.NewImage(w, h),
		fill:   color.Black,
		stroke: color.Black,
	}
}

// Image returns the canvas image for compositing onto the screen.
func (s *EbitenSurface) Image() *ebiten.Image { return s.img }

// Size implements Surface.
func (s *EbitenSurface) Size() (int, int) { return s.w, s.h }

// SetFillColor implements Surface.
func (s *EbitenSurface) SetFillColor(c color.Color) { s.fill = c }

// SetStrokeColor implements Surface.
func (s *EbitenSurface) SetStrokeColor(c color.Color) { s.stroke = c }

// FillRect implements Surface.
func (s *EbitenSurface) FillRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), s.fill, false)
}

// BeginPath implements Surface.
func (s *EbitenSurface) BeginPath() { s.path = s.path[:0] }

// MoveTo implements Surface.
func (s *EbitenSurface) MoveTo(x, y float64) {
	s.path = append(s.path, pathPoint{x: float32(x), y: float32(y), move: true})
}

// LineTo implements Surface.
func (s *EbitenSurface) LineTo(x, y float64) {
	s.path = append(s.path, pathPoint{x: float32(x), y: float32(y)})
}

// Stroke implements Surface. Each segment is drawn as a 1px line shifted by
// half a pixel so that a line on integer coordinate c lands exactly on pixel
// c-1, which cells never cover.
func (s *EbitenSurface) Stroke() {
	for i := 1; i < len(s.path); i++ {
		p := s.path[i]
		if p.move {
			continue
		}
		prev := s.path[i-1]
		vector.StrokeLine(s.img, prev.x-0.5, prev.y-0.5, p.x-0.5, p.y-0.5, 1, s.stroke, false)
	}
	s.path = s.path[:0]
}

// Clear implements Surface.
func (s *EbitenSurface) Clear() { s.img.Clear() }

// Draw composites the canvas onto dst scaled to the given display size.
func (s *EbitenSurface) Draw(dst *ebiten.Image, displayW, displayH float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(displayW/float64(s.w), displayH/float64(s.h))
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(s.img, op)
}
