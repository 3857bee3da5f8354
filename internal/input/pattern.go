package input

import (
	"fmt"
	"sort"

	"lifecanvas/internal/core"
)

// Pattern is a set of cell offsets relative to an anchor cell.
type Pattern struct {
	Name  string
	Cells []core.Cell
}

var patterns = map[string]Pattern{
	"glider": {Name: "glider", Cells: []core.Cell{
		{Row: -1, Col: 0},
		{Row: 0, Col: 1},
		{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
	}},
	"blinker": {Name: "blinker", Cells: []core.Cell{
		{Row: 0, Col: -1}, {Row: 0, Col: 0}, {Row: 0, Col: 1},
	}},
	"block": {Name: "block", Cells: []core.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
	}},
}

// PatternNames lists the built-in patterns.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for n := range patterns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LookupPattern returns the built-in pattern called name. The empty name
// yields the empty pattern.
func LookupPattern(name string) (Pattern, error) {
	if name == "" {
		return Pattern{}, nil
	}
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("unknown pattern %q", name)
	}
	return p, nil
}

// Place resolves p anchored at (row, col) onto a w x h torus.
func (p Pattern) Place(row, col, w, h int) []core.Cell {
	out := make([]core.Cell, len(p.Cells))
	for i, c := range p.Cells {
		out[i] = core.Cell{
			Row: ((row+c.Row)%h + h) % h,
			Col: ((col+c.Col)%w + w) % w,
		}
	}
	return out
}

// Stamp toggles every cell of p anchored at (row, col), in a single mutation
// when e supports it.
func Stamp(e core.Engine, p Pattern, row, col int) {
	cells := p.Place(row, col, e.Width(), e.Height())
	if bt, ok := e.(core.BatchToggler); ok {
		bt.ToggleCells(cells)
		return
	}
	for _, c := range cells {
		e.ToggleCell(c.Row, c.Col)
	}
}
