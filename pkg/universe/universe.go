// Package universe implements Conway's Game of Life over a toroidal grid
// whose cells live in a single shared byte arena.
//
// Both generations are stored back to back in the arena. Tick writes the next
// generation into the inactive half and flips the active offset, so the value
// returned by Cells moves after every Tick and any view taken before it reads
// stale data.
package universe

import (
	"strings"

	"lifecanvas/internal/core"
	pcore "lifecanvas/pkg/core"
)

// DefaultDensity is the probability of a cell starting alive in Random.
const DefaultDensity = 0.5

// Universe is a Game of Life instance.
type Universe struct {
	w, h int
	mem  []uint8
	cur  int
}

// New returns an all-dead universe with the provided dimensions.
func New(w, h int) *Universe {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Universe{w: w, h: h, mem: make([]uint8, 2*w*h)}
}

// Random returns a universe where each cell is alive with DefaultDensity.
func Random(w, h int, seed int64) *Universe {
	u := New(w, h)
	pcore.NewRNG(seed).FillBinary(u.current(), DefaultDensity)
	return u
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.w }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.h }

// Cells returns the offset of the current generation inside Memory.
func (u *Universe) Cells() int { return u.cur }

// Memory exposes the arena holding both generations.
func (u *Universe) Memory() []uint8 { return u.mem }

func (u *Universe) current() []uint8 { return u.mem[u.cur : u.cur+u.w*u.h] }

func (u *Universe) next() []uint8 {
	n := u.w * u.h
	off := n - u.cur
	return u.mem[off : off+n]
}

func (u *Universe) index(row, col int) int { return row*u.w + col }

// Tick advances the simulation by one generation.
func (u *Universe) Tick() {
	cur, nxt := u.current(), u.next()
	w, h := u.w, u.h
	for row := 0; row < h; row++ {
		north := row - 1
		if row == 0 {
			north = h - 1
		}
		south := row + 1
		if row == h-1 {
			south = 0
		}
		for col := 0; col < w; col++ {
			west := col - 1
			if col == 0 {
				west = w - 1
			}
			east := col + 1
			if col == w-1 {
				east = 0
			}
			neighbors := cur[north*w+west] + cur[north*w+col] + cur[north*w+east] +
				cur[row*w+west] + cur[row*w+east] +
				cur[south*w+west] + cur[south*w+col] + cur[south*w+east]

			idx := row*w + col
			alive := cur[idx] == core.Alive
			nxt[idx] = core.Dead
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = core.Alive
			}
		}
	}
	u.cur = u.w*u.h - u.cur
}

// ToggleCell flips the state of (row, col). Out-of-range coordinates are ignored.
func (u *Universe) ToggleCell(row, col int) {
	if row < 0 || row >= u.h || col < 0 || col >= u.w {
		return
	}
	u.current()[u.index(row, col)] ^= core.Alive
}

// ToggleCells flips every listed cell in one mutation.
func (u *Universe) ToggleCells(cells []core.Cell) {
	for _, c := range cells {
		u.ToggleCell(c.Row, c.Col)
	}
}

// SetCells marks every listed cell alive.
func (u *Universe) SetCells(cells []core.Cell) {
	cur := u.current()
	for _, c := range cells {
		if c.Row < 0 || c.Row >= u.h || c.Col < 0 || c.Col >= u.w {
			continue
		}
		cur[u.index(c.Row, c.Col)] = core.Alive
	}
}

// Clear kills every cell.
func (u *Universe) Clear() {
	cur := u.current()
	for i := range cur {
		cur[i] = core.Dead
	}
}

// String renders the grid with one symbol per cell and one line per row.
func (u *Universe) String() string {
	var b strings.Builder
	cur := u.current()
	for row := 0; row < u.h; row++ {
		for _, c := range cur[row*u.w : (row+1)*u.w] {
			if c == core.Dead {
				b.WriteRune('◻')
				continue
			}
			b.WriteRune('◼')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
