// Package metrics keeps a rolling window of instantaneous frame rates.
package metrics

import (
	"fmt"
	"math"
	"time"
)

// WindowSize is the number of most recent samples retained.
const WindowSize = 100

// Snapshot summarises the current window.
type Snapshot struct {
	Latest float64
	Mean   float64
	Min    float64
	Max    float64
	Count  int
}

// String renders the multi-line frame rate readout.
func (s Snapshot) String() string {
	return fmt.Sprintf("Frames per second:\n"+
		"         latest = %d\n"+
		"avg of last %d = %d\n"+
		"min of last %d = %d\n"+
		"max of last %d = %d",
		round(s.Latest),
		WindowSize, round(s.Mean),
		WindowSize, round(s.Min),
		WindowSize, round(s.Max))
}

func round(v float64) int64 { return int64(math.Round(v)) }

// FrameMetrics samples frame timestamps into a fixed-capacity FIFO of rates.
// The zero value is not usable; construct with New.
type FrameMetrics struct {
	ring  [WindowSize]float64
	start int
	n     int
	last  time.Duration
}

// New returns a FrameMetrics whose first delta is measured from now.
func New(now time.Duration) *FrameMetrics {
	return &FrameMetrics{last: now}
}

// Sample records a frame at now and returns statistics over the window.
// A non-positive delta since the previous call has no defined rate and is
// skipped; the reference timestamp still advances to now.
func (m *FrameMetrics) Sample(now time.Duration) Snapshot {
	delta := now - m.last
	m.last = now
	if delta > 0 {
		ms := float64(delta) / float64(time.Millisecond)
		m.push(1000 / ms)
	}
	return m.Snapshot()
}

func (m *FrameMetrics) push(rate float64) {
	if m.n < WindowSize {
		m.ring[(m.start+m.n)%WindowSize] = rate
		m.n++
		return
	}
	m.ring[m.start] = rate
	m.start = (m.start + 1) % WindowSize
}

// Snapshot recomputes statistics from the live window without sampling.
func (m *FrameMetrics) Snapshot() Snapshot {
	if m.n == 0 {
		return Snapshot{}
	}
	s := Snapshot{Min: math.Inf(1), Max: math.Inf(-1), Count: m.n}
	var sum float64
	for i := 0; i < m.n; i++ {
		v := m.ring[(m.start+i)%WindowSize]
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Latest = m.ring[(m.start+m.n-1)%WindowSize]
	s.Mean = sum / float64(m.n)
	return s
}

// Samples returns a copy of the window, oldest first.
func (m *FrameMetrics) Samples() []float64 {
	out := make([]float64, m.n)
	for i := range out {
		out[i] = m.ring[(m.start+i)%WindowSize]
	}
	return out
}

// Len returns the number of samples in the window.
func (m *FrameMetrics) Len() int { return m.n }
