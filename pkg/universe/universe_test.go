package universe

import (
	"testing"

	"lifecanvas/internal/core"
)

var _ core.Engine = (*Universe)(nil)
var _ core.BatchToggler = (*Universe)(nil)

func aliveSet(u *Universe) map[core.Cell]bool {
	v := core.Borrow(u)
	out := map[core.Cell]bool{}
	for row := 0; row < v.Height(); row++ {
		for col := 0; col < v.Width(); col++ {
			if v.IsAlive(row, col) {
				out[core.Cell{Row: row, Col: col}] = true
			}
		}
	}
	return out
}

func TestBlinkerOscillation(t *testing.T) {
	u := New(5, 5)
	u.SetCells([]core.Cell{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}})

	u.Tick()
	got := aliveSet(u)
	expects := map[core.Cell]bool{
		{Row: 2, Col: 1}: true,
		{Row: 2, Col: 2}: true,
		{Row: 2, Col: 3}: true,
	}
	if len(got) != len(expects) {
		t.Fatalf("expected %d live cells after first tick, got %d", len(expects), len(got))
	}
	for c := range expects {
		if !got[c] {
			t.Fatalf("cell %+v should be alive after first tick", c)
		}
	}

	u.Tick()
	got = aliveSet(u)
	expects = map[core.Cell]bool{
		{Row: 1, Col: 2}: true,
		{Row: 2, Col: 2}: true,
		{Row: 3, Col: 2}: true,
	}
	if len(got) != len(expects) {
		t.Fatalf("expected %d live cells after second tick, got %d", len(expects), len(got))
	}
	for c := range expects {
		if !got[c] {
			t.Fatalf("after second tick cell %+v should be alive", c)
		}
	}
}

func TestGliderWrapsAroundEdges(t *testing.T) {
	u := New(6, 6)
	u.SetCells([]core.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}})
	// A glider returns to its shape shifted by (1,1) every four generations;
	// 24 generations bring it back to the start on a 6x6 torus.
	before := aliveSet(u)
	for i := 0; i < 24; i++ {
		u.Tick()
	}
	after := aliveSet(u)
	if len(after) != 5 {
		t.Fatalf("glider must keep 5 cells, got %d", len(after))
	}
	for c := range before {
		if !after[c] {
			t.Fatalf("glider did not wrap back to %+v", c)
		}
	}
}

func TestCellsOffsetMovesOnTick(t *testing.T) {
	u := New(4, 3)
	first := u.Cells()
	u.Tick()
	second := u.Cells()
	if first == second {
		t.Fatal("tick must move the active generation inside the arena")
	}
	if second+u.Width()*u.Height() > len(u.Memory()) {
		t.Fatalf("cells region [%d,+%d) exceeds memory of %d bytes", second, u.Width()*u.Height(), len(u.Memory()))
	}
	u.Tick()
	if u.Cells() != first {
		t.Fatal("two ticks must return to the first half of the arena")
	}
}

func TestToggleAndClear(t *testing.T) {
	u := New(4, 4)
	u.ToggleCell(0, 0)
	u.ToggleCell(3, 2)
	u.ToggleCell(9, 9)
	if got := core.Borrow(u).Count(); got != 2 {
		t.Fatalf("expected 2 live cells, got %d", got)
	}
	u.ToggleCells([]core.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}})
	v := core.Borrow(u)
	if v.IsAlive(0, 0) || !v.IsAlive(1, 1) || !v.IsAlive(3, 2) {
		t.Fatal("batch toggle must flip each listed cell")
	}
	u.Clear()
	if got := core.Borrow(u).Count(); got != 0 {
		t.Fatalf("clear left %d live cells", got)
	}
}

func TestRandomIsSeeded(t *testing.T) {
	a := Random(32, 32, 7)
	b := Random(32, 32, 7)
	if a.String() != b.String() {
		t.Fatal("same seed must produce the same universe")
	}
	n := core.Borrow(a).Count()
	if n == 0 || n == 32*32 {
		t.Fatalf("random fill produced a degenerate universe with %d live cells", n)
	}
}

func TestString(t *testing.T) {
	u := New(3, 2)
	u.ToggleCell(0, 1)
	want := "◻◼◻\n◻◻◻\n"
	if got := u.String(); got != want {
		t.Fatalf("String()=%q, expected %q", got, want)
	}
}
