package anim

import "time"

// Handle identifies one frame request. The zero Handle never refers to a
// pending request.
type Handle uint64

// FrameFunc runs when a requested frame fires. h is the handle the request
// was issued under and now the scheduler clock at firing time.
type FrameFunc func(h Handle, now time.Duration)

// Scheduler arms single-shot frame callbacks.
type Scheduler interface {
	Request(fn FrameFunc) Handle
	Cancel(h Handle)
	Now() time.Duration
}

// FrameScheduler holds at most one pending frame callback and runs it when
// the host signals a display refresh through Fire.
type FrameScheduler struct {
	clock   func() time.Duration
	last    Handle
	pending Handle
	fn      FrameFunc
}

// NewFrameScheduler returns a scheduler reading time from clock.
func NewFrameScheduler(clock func() time.Duration) *FrameScheduler {
	return &FrameScheduler{clock: clock}
}

// Now returns the scheduler clock.
func (s *FrameScheduler) Now() time.Duration { return s.clock() }

// Request arms fn for the next Fire, replacing any callback still pending.
func (s *FrameScheduler) Request(fn FrameFunc) Handle {
	s.last++
	s.pending = s.last
	s.fn = fn
	return s.pending
}

// Cancel disarms the pending request if it was issued under h.
func (s *FrameScheduler) Cancel(h Handle) {
	if h == 0 || h != s.pending {
		return
	}
	s.pending = 0
	s.fn = nil
}

// Pending reports whether a callback is armed.
func (s *FrameScheduler) Pending() bool { return s.pending != 0 }

// Fire runs the pending callback, if any, and reports whether one ran. The
// slot is emptied before the callback so that it may re-arm itself.
func (s *FrameScheduler) Fire() bool {
	if s.pending == 0 {
		return false
	}
	h, fn := s.pending, s.fn
	s.pending = 0
	s.fn = nil
	fn(h, s.clock())
	return true
}
