package core

import "time"

// FixedStep gates frame production to a steady frames-per-second rate when
// the host refreshes faster than desired.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Duration
	started     bool
	now         func() time.Duration
}

// NewFixedStep constructs a FixedStep targeting fps using the provided clock.
// A non-positive fps disables gating: ShouldStep then always reports true.
func NewFixedStep(fps int, now func() time.Duration) *FixedStep {
	fs := &FixedStep{now: now}
	fs.SetRate(fps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the target rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(fps int) {
	if fps <= 0 {
		f.step = 0
		return
	}
	f.step = time.Second / time.Duration(fps)
}

// ShouldStep reports whether a frame should be produced now.
func (f *FixedStep) ShouldStep() bool {
	if f.step == 0 {
		return true
	}
	now := f.now()
	if !f.started {
		f.last = now
		f.started = true
	}
	delta := now - f.last
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// At most one frame of backlog survives a stall.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
