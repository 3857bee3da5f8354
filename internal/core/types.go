package core

// CellState is the single-byte value stored for every cell of a universe.
type CellState = uint8

const (
	// Dead marks an empty cell.
	Dead CellState = 0
	// Alive marks a populated cell.
	Alive CellState = 1
)

// Size describes the dimensions of a universe grid.
type Size struct {
	W int
	H int
}

// Cell addresses one grid position.
type Cell struct {
	Row int
	Col int
}

// Engine is the contract the render loop consumes from an automaton
// implementation. Width and Height never change for the lifetime of a value.
// Tick, ToggleCell and Clear invalidate every View borrowed before the call.
type Engine interface {
	Width() int
	Height() int
	Tick()
	ToggleCell(row, col int)
	Clear()
	// Cells returns the offset into Memory of the width*height cell region.
	Cells() int
	// Memory exposes the shared region Cells offsets into.
	Memory() []uint8
}

// BatchToggler is implemented by engines that can flip a set of cells in a
// single mutation.
type BatchToggler interface {
	ToggleCells(cells []Cell)
}

// Factory constructs a fresh Engine.
type Factory func() Engine

// SizeOf reports the dimensions of e.
func SizeOf(e Engine) Size {
	return Size{W: e.Width(), H: e.Height()}
}
