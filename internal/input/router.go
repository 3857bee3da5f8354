// Package input turns pointer events on the drawing surface into universe
// mutations.
package input

import (
	"lifecanvas/internal/core"
	"lifecanvas/internal/geom"
)

// Modifier qualifies a pointer event.
type Modifier int

const (
	ModNone Modifier = iota
	ModShift
	ModCtrl
)

// PointerEvent is a pointer press in CSS pixels relative to the top-left
// corner of the displayed surface.
type PointerEvent struct {
	X, Y float64
	Mod  Modifier
}

// Target is what the router mutates. Engine is queried on every event so a
// replaced engine is never toggled through a stale reference.
type Target interface {
	Engine() core.Engine
	Redraw()
}

// Router maps pointer events to cell toggles.
type Router struct {
	target   Target
	cellSize int
	surface  geom.Size
	css      geom.Size
	patterns map[Modifier]Pattern
}

// NewRouter returns a Router whose displayed size equals the surface size
// until SetDisplaySize is called.
func NewRouter(t Target, surfaceW, surfaceH, cellSize int) *Router {
	s := geom.Size{W: float64(surfaceW), H: float64(surfaceH)}
	return &Router{target: t, cellSize: cellSize, surface: s, css: s, patterns: map[Modifier]Pattern{}}
}

// SetDisplaySize records the size the surface is currently displayed at.
func (r *Router) SetDisplaySize(w, h float64) {
	r.css = geom.Size{W: w, H: h}
}

// Bind makes events carrying mod stamp p instead of toggling one cell.
// Binding an empty pattern removes the binding.
func (r *Router) Bind(mod Modifier, p Pattern) {
	if mod == ModNone {
		return
	}
	if len(p.Cells) == 0 {
		delete(r.patterns, mod)
		return
	}
	r.patterns[mod] = p
}

// Cell returns the grid cell under ev.
func (r *Router) Cell(ev PointerEvent) (row, col int) {
	e := r.target.Engine()
	return geom.PointerToCell(geom.Point{X: ev.X, Y: ev.Y}, r.surface, r.css, e.Width(), e.Height(), r.cellSize)
}

// OnPointerDown toggles the cell under ev, or stamps the pattern bound to its
// modifier, then redraws.
func (r *Router) OnPointerDown(ev PointerEvent) {
	row, col := r.Cell(ev)
	e := r.target.Engine()
	if p, ok := r.patterns[ev.Mod]; ok {
		Stamp(e, p, row, col)
	} else {
		e.ToggleCell(row, col)
	}
	r.target.Redraw()
}
