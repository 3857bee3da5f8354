package render

import (
	"image/color"
	"math"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	runeBlank = ' '
	runeFill  = '█'
	runeHoriz = '─'
	runeVert  = '│'
	runeCross = '┼'
)

type termCell struct {
	r rune
	c uint8
}

// TermSurface is a character-cell Surface: one surface pixel is one terminal
// cell. Fills paint solid blocks and axis-aligned strokes paint box-drawing
// lines; diagonal segments are ignored.
type TermSurface struct {
	w, h   int
	cells  []termCell
	fill   uint8
	stroke uint8
	path   []pathVertex
	au     aurora.Aurora
}

type pathVertex struct {
	x, y int
	move bool
}

// NewTermSurface allocates a w x h character surface. When colors is false
// Render emits plain text.
func NewTermSurface(w, h int, colors bool) *TermSurface {
	s := &TermSurface{w: w, h: h, cells: make([]termCell, w*h), au: aurora.NewAurora(colors)}
	s.Clear()
	return s
}

// Size implements Surface.
func (s *TermSurface) Size() (int, int) { return s.w, s.h }

// SetFillColor implements Surface.
func (s *TermSurface) SetFillColor(c color.Color) { s.fill = Xterm256(c) }

// SetStrokeColor implements Surface.
func (s *TermSurface) SetStrokeColor(c color.Color) { s.stroke = Xterm256(c) }

// FillRect implements Surface.
func (s *TermSurface) FillRect(x, y, w, h float64) {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for row := max(y0, 0); row < min(y1, s.h); row++ {
		for col := max(x0, 0); col < min(x1, s.w); col++ {
			s.cells[row*s.w+col] = termCell{r: runeFill, c: s.fill}
		}
	}
}

// BeginPath implements Surface.
func (s *TermSurface) BeginPath() { s.path = s.path[:0] }

// MoveTo implements Surface.
func (s *TermSurface) MoveTo(x, y float64) {
	s.path = append(s.path, pathVertex{x: int(x), y: int(y), move: true})
}

// LineTo implements Surface.
func (s *TermSurface) LineTo(x, y float64) {
	s.path = append(s.path, pathVertex{x: int(x), y: int(y)})
}

// Stroke implements Surface. A line on integer coordinate c straddles pixels
// c-1 and c; it is snapped onto c-1, which cells never cover.
func (s *TermSurface) Stroke() {
	for i := 1; i < len(s.path); i++ {
		p := s.path[i]
		if p.move {
			continue
		}
		prev := s.path[i-1]
		switch {
		case prev.y == p.y:
			for x := max(min(prev.x, p.x), 0); x <= min(max(prev.x, p.x), s.w-1); x++ {
				s.line(x, p.y-1, runeHoriz)
			}
		case prev.x == p.x:
			for y := max(min(prev.y, p.y), 0); y <= min(max(prev.y, p.y), s.h-1); y++ {
				s.line(p.x-1, y, runeVert)
			}
		}
	}
	s.path = s.path[:0]
}

func (s *TermSurface) line(x, y int, r rune) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	cell := &s.cells[y*s.w+x]
	if (cell.r == runeHoriz && r == runeVert) || (cell.r == runeVert && r == runeHoriz) || cell.r == runeCross {
		r = runeCross
	}
	*cell = termCell{r: r, c: s.stroke}
}

// Clear implements Surface.
func (s *TermSurface) Clear() {
	for i := range s.cells {
		s.cells[i] = termCell{r: runeBlank}
	}
}

// Lines returns the surface as uncoloured text, one string per row.
func (s *TermSurface) Lines() []string {
	out := make([]string, s.h)
	var b strings.Builder
	for row := 0; row < s.h; row++ {
		b.Reset()
		for _, c := range s.cells[row*s.w : (row+1)*s.w] {
			b.WriteRune(c.r)
		}
		out[row] = b.String()
	}
	return out
}

// Render returns the surface as text with 256-colour escapes, merging runs
// of identical cells.
func (s *TermSurface) Render() string {
	var b, run strings.Builder
	for row := 0; row < s.h; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		line := s.cells[row*s.w : (row+1)*s.w]
		for i := 0; i < len(line); {
			j := i
			run.Reset()
			for j < len(line) && line[j] == line[i] {
				run.WriteRune(line[j].r)
				j++
			}
			if line[i].r == runeBlank {
				b.WriteString(run.String())
			} else {
				b.WriteString(s.au.Index(line[i].c, run.String()).String())
			}
			i = j
		}
	}
	return b.String()
}

// Xterm256 maps c onto the closest entry of the xterm 6x6x6 colour cube or
// greyscale ramp.
func Xterm256(c color.Color) uint8 {
	r, g, b, _ := c.RGBA()
	r8, g8, b8 := int(r>>8), int(g>>8), int(b>>8)
	if r8 == g8 && g8 == b8 {
		switch {
		case r8 < 8:
			return 16
		case r8 > 248:
			return 231
		default:
			return uint8(232 + (r8-8)*24/241)
		}
	}
	q := func(v int) int { return (v*5 + 127) / 255 }
	return uint8(16 + 36*q(r8) + 6*q(g8) + q(b8))
}
