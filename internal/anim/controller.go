// Package anim owns the play/pause/step state machine and the per-frame
// cadence that draws the universe and advances it.
package anim

import (
	"log/slog"
	"time"

	"lifecanvas/internal/core"
	"lifecanvas/internal/metrics"
)

// State is the animation state.
type State int

const (
	// Paused means no frame is armed.
	Paused State = iota
	// Running means exactly one frame is armed at any time between frames.
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "paused"
}

// Labels shown on the play/pause control.
const (
	GlyphPlay  = "▶"
	GlyphPause = "⏸"
)

// Painter draws frames. *render.Renderer satisfies it.
type Painter interface {
	GridOverlay() bool
	SetGridOverlay(enabled bool)
	DrawGrid()
	DrawCells(v core.View)
}

// Config wires a Controller.
type Config struct {
	Engine    core.Engine
	Painter   Painter
	Scheduler Scheduler
	// Metrics defaults to a window starting at the scheduler clock.
	Metrics *metrics.FrameMetrics
	Logger  *slog.Logger
	// OnLabel is called whenever the play/pause label changes.
	OnLabel func(label string)
}

// Controller binds one engine to a painter and drives the animation loop.
type Controller struct {
	engine  core.Engine
	painter Painter
	sched   Scheduler
	metrics *metrics.FrameMetrics
	log     *slog.Logger
	onLabel func(string)

	handle   Handle
	label    string
	snapshot metrics.Snapshot
}

// New constructs a paused Controller.
func New(cfg Config) *Controller {
	c := &Controller{
		engine:  cfg.Engine,
		painter: cfg.Painter,
		sched:   cfg.Scheduler,
		metrics: cfg.Metrics,
		log:     cfg.Logger,
		onLabel: cfg.OnLabel,
		label:   GlyphPlay,
	}
	if c.metrics == nil {
		c.metrics = metrics.New(c.sched.Now())
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	return c
}

// Engine returns the currently bound engine. Callers must not keep it across
// a Reset.
func (c *Controller) Engine() core.Engine { return c.engine }

// State reports whether the animation is running.
func (c *Controller) State() State {
	if c.handle != 0 {
		return Running
	}
	return Paused
}

// Paused reports whether no frame is armed.
func (c *Controller) Paused() bool { return c.handle == 0 }

// Label returns the current play/pause label.
func (c *Controller) Label() string { return c.label }

// Readout returns the frame rate statistics of the last produced frame.
func (c *Controller) Readout() metrics.Snapshot { return c.snapshot }

// Samples returns the frame rate window, oldest first.
func (c *Controller) Samples() []float64 { return c.metrics.Samples() }

// Play starts the animation. The first frame is produced immediately.
func (c *Controller) Play() {
	if !c.Paused() {
		return
	}
	c.setLabel(GlyphPause)
	c.log.Debug("animation started")
	c.render(c.sched.Now())
}

// Pause stops the animation by cancelling the armed frame.
func (c *Controller) Pause() {
	if c.Paused() {
		return
	}
	h := c.handle
	c.handle = 0
	c.sched.Cancel(h)
	c.setLabel(GlyphPlay)
	c.log.Debug("animation paused")
}

// TogglePlay switches between Play and Pause.
func (c *Controller) TogglePlay() {
	if c.Paused() {
		c.Play()
		return
	}
	c.Pause()
}

// Step pauses if needed, then advances exactly one generation and redraws.
func (c *Controller) Step() {
	c.Pause()
	c.engine.Tick()
	c.Redraw()
}

// Reset binds a freshly constructed engine, discarding the previous one, and
// redraws. The animation state is unchanged.
func (c *Controller) Reset(factory core.Factory) {
	next := factory()
	if next.Width() != c.engine.Width() || next.Height() != c.engine.Height() {
		c.log.Warn("reset engine changed dimensions",
			"from", core.SizeOf(c.engine), "to", core.SizeOf(next))
	}
	c.engine = next
	c.log.Debug("universe reset", "state", c.State())
	c.Redraw()
}

// Clear kills every cell, pauses and redraws.
func (c *Controller) Clear() {
	c.engine.Clear()
	c.Pause()
	c.Redraw()
}

// ToggleGrid flips the gridline overlay and repaints.
func (c *Controller) ToggleGrid() {
	enable := !c.painter.GridOverlay()
	c.painter.SetGridOverlay(enable)
	if enable {
		c.painter.DrawGrid()
	}
	c.Redraw()
}

// Redraw paints the cells of the current engine state.
func (c *Controller) Redraw() {
	c.painter.DrawCells(core.Borrow(c.engine))
}

// frame is the scheduler callback. Callbacks for any handle other than the
// armed one are stale and ignored.
func (c *Controller) frame(h Handle, now time.Duration) {
	if h == 0 || h != c.handle {
		return
	}
	c.handle = 0
	c.render(now)
}

// render draws the pre-tick state, advances one generation and arms the next
// frame, so every drawn frame shows the state the following tick consumes.
func (c *Controller) render(now time.Duration) {
	c.snapshot = c.metrics.Sample(now)
	if c.painter.GridOverlay() {
		c.painter.DrawGrid()
	}
	c.painter.DrawCells(core.Borrow(c.engine))
	c.engine.Tick()
	c.handle = c.sched.Request(c.frame)
}

func (c *Controller) setLabel(label string) {
	if c.label == label {
		return
	}
	c.label = label
	if c.onLabel != nil {
		c.onLabel(label)
	}
}
