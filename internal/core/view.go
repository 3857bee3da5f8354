package core

// View is a read-only borrow of an engine's cell region. It aliases the
// engine's memory directly and is valid only until the next mutation of that
// engine, so it must be taken fresh for every frame and never stored.
type View struct {
	w, h  int
	cells []uint8
}

// NewView reinterprets mem[ptr:ptr+w*h] as a row-major cell grid. No bytes are
// copied. Out-of-range regions produce an empty view.
func NewView(mem []uint8, ptr, w, h int) View {
	if w <= 0 || h <= 0 || ptr < 0 || ptr+w*h > len(mem) {
		return View{}
	}
	n := w * h
	return View{w: w, h: h, cells: mem[ptr : ptr+n : ptr+n]}
}

// Borrow acquires the current cell region of e.
func Borrow(e Engine) View {
	return NewView(e.Memory(), e.Cells(), e.Width(), e.Height())
}

// Width returns the number of columns.
func (v View) Width() int { return v.w }

// Height returns the number of rows.
func (v View) Height() int { return v.h }

// Len returns the number of cells in the view.
func (v View) Len() int { return len(v.cells) }

// Index returns the linear index for (row, col).
func (v View) Index(row, col int) int { return row*v.w + col }

// At returns the raw state byte of (row, col).
func (v View) At(row, col int) CellState { return v.cells[v.Index(row, col)] }

// IsAlive reports whether (row, col) holds a live cell.
func (v View) IsAlive(row, col int) bool { return v.At(row, col) == Alive }

// Count returns the number of live cells.
func (v View) Count() int {
	n := 0
	for _, c := range v.cells {
		if c == Alive {
			n++
		}
	}
	return n
}
