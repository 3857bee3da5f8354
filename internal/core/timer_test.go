package core

import (
	"testing"
	"time"
)

func TestFixedStepGatesToRate(t *testing.T) {
	var now time.Duration
	fs := NewFixedStep(10, func() time.Duration { return now })

	steps := []struct {
		at   time.Duration
		want bool
	}{
		{0, true},
		{50 * time.Millisecond, false},
		{100 * time.Millisecond, true},
		{150 * time.Millisecond, false},
		{1000 * time.Millisecond, true},
		{1000 * time.Millisecond, true},
		{1000 * time.Millisecond, false},
	}
	for i, s := range steps {
		now = s.at
		if got := fs.ShouldStep(); got != s.want {
			t.Fatalf("step %d at %v: ShouldStep()=%v, expected %v", i, s.at, got, s.want)
		}
	}
}

func TestFixedStepDisabled(t *testing.T) {
	fs := NewFixedStep(0, func() time.Duration { return 0 })
	for i := 0; i < 5; i++ {
		if !fs.ShouldStep() {
			t.Fatal("a zero rate must never gate frames")
		}
	}
}
