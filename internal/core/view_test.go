package core

import "testing"

type arenaEngine struct {
	w, h int
	ptr  int
	mem  []uint8
}

func (a *arenaEngine) Width() int              { return a.w }
func (a *arenaEngine) Height() int             { return a.h }
func (a *arenaEngine) Tick()                   {}
func (a *arenaEngine) ToggleCell(row, col int) { a.mem[a.ptr+row*a.w+col] ^= 1 }
func (a *arenaEngine) Clear()                  {}
func (a *arenaEngine) Cells() int              { return a.ptr }
func (a *arenaEngine) Memory() []uint8         { return a.mem }

func TestViewAliasesMemory(t *testing.T) {
	e := &arenaEngine{w: 3, h: 2, ptr: 4, mem: make([]uint8, 16)}
	v := Borrow(e)
	if v.Len() != 6 || v.Width() != 3 || v.Height() != 2 {
		t.Fatalf("unexpected view shape len=%d w=%d h=%d", v.Len(), v.Width(), v.Height())
	}
	if v.IsAlive(1, 2) {
		t.Fatal("fresh memory must read as dead")
	}

	e.mem[4+1*3+2] = Alive
	if !v.IsAlive(1, 2) {
		t.Fatal("view must observe writes to the underlying memory without re-borrowing")
	}
	if v.Count() != 1 {
		t.Fatalf("expected 1 live cell, got %d", v.Count())
	}
}

func TestViewRespectsOffset(t *testing.T) {
	mem := []uint8{1, 1, 1, 1, 0, 1, 0, 0}
	v := NewView(mem, 4, 2, 2)
	want := []bool{false, true, false, false}
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if got := v.IsAlive(row, col); got != want[row*2+col] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, got, want[row*2+col])
			}
		}
	}
}

func TestViewOutOfRangeIsEmpty(t *testing.T) {
	mem := make([]uint8, 8)
	if v := NewView(mem, 4, 4, 4); v.Len() != 0 {
		t.Fatalf("region past the end of memory must yield an empty view, got len %d", v.Len())
	}
	if v := NewView(mem, -1, 2, 2); v.Len() != 0 {
		t.Fatalf("negative pointer must yield an empty view, got len %d", v.Len())
	}
}
