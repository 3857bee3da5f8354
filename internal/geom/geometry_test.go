package geom

import "testing"

func TestSurfaceSize(t *testing.T) {
	w, h := SurfaceSize(64, 64, 5)
	if w != 390 || h != 390 {
		t.Fatalf("SurfaceSize(64,64,5)=%dx%d, expected 390x390", w, h)
	}
	w, h = SurfaceSize(128, 32, 5)
	if w != 769 || h != 193 {
		t.Fatalf("SurfaceSize(128,32,5)=%dx%d, expected 769x193", w, h)
	}
}

func TestCellRect(t *testing.T) {
	r := CellRect(2, 3, 5)
	if r != (Rect{X: 19, Y: 13, W: 5, H: 5}) {
		t.Fatalf("CellRect(2,3,5)=%+v", r)
	}
}

func TestPointerToCellRoundTrip(t *testing.T) {
	const width, height = 17, 11
	for _, cellSize := range []int{1, 2, 5, 8} {
		sw, sh := SurfaceSize(width, height, cellSize)
		surface := Size{W: float64(sw), H: float64(sh)}
		for _, cssScale := range []float64{1, 0.5, 2, 1.25} {
			css := Size{W: surface.W * cssScale, H: surface.H * cssScale}
			for row := 0; row < height; row++ {
				for col := 0; col < width; col++ {
					c := CellRect(row, col, cellSize).Center()
					p := Point{X: c.X * cssScale, Y: c.Y * cssScale}
					gotRow, gotCol := PointerToCell(p, surface, css, width, height, cellSize)
					if gotRow != row || gotCol != col {
						t.Fatalf("cellSize=%d scale=%v: centre of (%d,%d) mapped to (%d,%d)",
							cellSize, cssScale, row, col, gotRow, gotCol)
					}
				}
			}
		}
	}
}

func TestPointerToCellClamps(t *testing.T) {
	const width, height, cellSize = 8, 6, 5
	sw, sh := SurfaceSize(width, height, cellSize)
	surface := Size{W: float64(sw), H: float64(sh)}
	css := Size{W: surface.W / 2, H: surface.H / 2}

	cases := []struct {
		p        Point
		row, col int
	}{
		{Point{X: -10, Y: -10}, 0, 0},
		{Point{X: 1e6, Y: 1e6}, height - 1, width - 1},
		{Point{X: css.W, Y: css.H}, height - 1, width - 1},
		{Point{X: css.W - 0.1, Y: 0}, 0, width - 1},
		{Point{X: -0.1, Y: css.H + 3}, height - 1, 0},
	}
	for _, tc := range cases {
		row, col := PointerToCell(tc.p, surface, css, width, height, cellSize)
		if row != tc.row || col != tc.col {
			t.Fatalf("PointerToCell(%+v)=(%d,%d), expected (%d,%d)", tc.p, row, col, tc.row, tc.col)
		}
	}
}

func TestPointerToCellDegenerateCSS(t *testing.T) {
	row, col := PointerToCell(Point{X: 13, Y: 7}, Size{W: 49, H: 49}, Size{}, 8, 8, 5)
	if row != 1 || col != 2 {
		t.Fatalf("zero css size must fall back to scale 1, got (%d,%d)", row, col)
	}
}

func TestGridLines(t *testing.T) {
	lines := GridLines(4, 3, 5)
	if len(lines) != 5+4 {
		t.Fatalf("expected %d segments, got %d", 9, len(lines))
	}
	first, last := lines[0], lines[len(lines)-1]
	if first != (Segment{X0: 1, Y0: 0, X1: 1, Y1: 19}) {
		t.Fatalf("first vertical segment %+v", first)
	}
	if last != (Segment{X0: 0, Y0: 19, X1: 25, Y1: 19}) {
		t.Fatalf("last horizontal segment %+v", last)
	}
}
