package core

import "testing"

func TestFillBinaryDeterministic(t *testing.T) {
	a := make([]uint8, 1024)
	b := make([]uint8, 1024)
	NewRNG(7).FillBinary(a, 0.5)
	NewRNG(7).FillBinary(b, 0.5)
	alive := 0
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("byte %d differs for equal seeds", i)
		}
		if a[i] > 1 {
			t.Fatalf("byte %d = %d, want 0 or 1", i, a[i])
		}
		alive += int(a[i])
	}
	if alive < 400 || alive > 624 {
		t.Fatalf("density 0.5 produced %d/1024 live cells", alive)
	}
}

func TestFillBinaryExtremes(t *testing.T) {
	buf := []uint8{1, 1, 1}
	NewRNG(1).FillBinary(buf, 0)
	for _, v := range buf {
		if v != 0 {
			t.Fatal("density 0 must clear every byte")
		}
	}
	NewRNG(1).FillBinary(buf, 1)
	for _, v := range buf {
		if v != 1 {
			t.Fatal("density 1 must set every byte")
		}
	}
}
