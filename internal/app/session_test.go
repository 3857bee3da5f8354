package app

import (
	"strings"
	"testing"
	"time"

	"lifecanvas/internal/anim"
	"lifecanvas/internal/core"
	"lifecanvas/internal/geom"
	"lifecanvas/internal/input"
	"lifecanvas/internal/render"
)

type clock struct{ now time.Duration }

func (c *clock) read() time.Duration { return c.now }

func newTestSession(t *testing.T, mutate func(*Config)) (*Session, *render.TermSurface, *clock) {
	t.Helper()
	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.CellSize = 6, 4, 1
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	w, h := geom.SurfaceSize(cfg.Width, cfg.Height, cfg.CellSize)
	surface := render.NewTermSurface(w, h, false)
	clk := &clock{}
	return NewSession(cfg, surface, clk.read, nil, nil), surface, clk
}

func TestSessionStartsPausedAndPainted(t *testing.T) {
	s, surface, _ := newTestSession(t, nil)
	s.Start()
	if !s.Controller.Paused() {
		t.Fatal("session must start paused by default")
	}
	painted := 0
	for _, l := range surface.Lines() {
		painted += strings.Count(l, "█")
	}
	if painted != 6*4 {
		t.Fatalf("expected every cell painted, got %d", painted)
	}
	if s.Refresh() {
		t.Fatal("a paused session must not produce frames")
	}
}

func TestSessionPlayingRefreshes(t *testing.T) {
	s, _, clk := newTestSession(t, func(c *Config) { c.Playing = true })
	s.Start()
	if s.Controller.State() != anim.Running || s.Controller.Label() != anim.GlyphPause {
		t.Fatal("session must be running")
	}
	for i := 0; i < 3; i++ {
		clk.now += 10 * time.Millisecond
		if !s.Refresh() {
			t.Fatalf("refresh %d produced no frame", i)
		}
	}
	if got := s.Controller.Readout().Count; got != 3 {
		t.Fatalf("expected 3 rate samples, got %d", got)
	}
}

func TestSessionFrameCap(t *testing.T) {
	s, _, clk := newTestSession(t, func(c *Config) { c.Playing = true; c.FPS = 10 })
	s.Start()
	frames := 0
	for i := 0; i < 60; i++ {
		clk.now += 10 * time.Millisecond
		if s.Refresh() {
			frames++
		}
	}
	if frames < 5 || frames > 7 {
		t.Fatalf("expected about 6 frames in 600ms at 10fps, got %d", frames)
	}
}

func TestSessionRandomizeKeepsState(t *testing.T) {
	s, _, _ := newTestSession(t, func(c *Config) { c.Width, c.Height = 16, 16 })
	s.Start()
	before := s.Controller.Engine()
	s.Randomize()
	if s.Controller.Engine() == before {
		t.Fatal("randomize must bind a new engine")
	}
	if s.Seed() != 43 {
		t.Fatalf("seed = %d", s.Seed())
	}
	if !s.Controller.Paused() {
		t.Fatal("randomize must not change the animation state")
	}
}

func TestSessionRouterUsesBindings(t *testing.T) {
	s, _, _ := newTestSession(t, func(c *Config) { c.Width, c.Height = 8, 8; c.ShiftPattern = "block" })
	s.Start()
	s.Controller.Engine().Clear()
	c := geom.CellRect(2, 2, 1).Center()
	s.Router.OnPointerDown(input.PointerEvent{X: c.X, Y: c.Y, Mod: input.ModShift})
	if got := core.Borrow(s.Controller.Engine()).Count(); got != 4 {
		t.Fatalf("expected a 4-cell block, got %d live cells", got)
	}
	s.Router.OnPointerDown(input.PointerEvent{X: c.X, Y: c.Y, Mod: input.ModCtrl})
	if got := core.Borrow(s.Controller.Engine()).Count(); got != 3 {
		t.Fatalf("unbound ctrl-click must toggle one cell, got %d live", got)
	}
}
