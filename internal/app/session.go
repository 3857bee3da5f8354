package app

import (
	"log/slog"
	"time"

	"lifecanvas/internal/anim"
	"lifecanvas/internal/core"
	"lifecanvas/internal/geom"
	"lifecanvas/internal/input"
	"lifecanvas/internal/render"
	"lifecanvas/pkg/universe"
)

// Session wires one universe, renderer, scheduler, controller and router
// around a host-provided Surface. Hosts only feed it refreshes and input.
type Session struct {
	Renderer   *render.Renderer
	Scheduler  *anim.FrameScheduler
	Controller *anim.Controller
	Router     *input.Router

	cfg     *Config
	limiter *core.FixedStep
	log     *slog.Logger
	seed    int64
}

// NewSession builds a paused session over surface. clock is the monotonic
// time source shared by the scheduler, metrics and the frame limiter.
func NewSession(cfg *Config, surface render.Surface, clock func() time.Duration, logger *slog.Logger, onLabel func(string)) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Session{
		cfg:       cfg,
		log:       logger,
		seed:      cfg.Seed,
		Scheduler: anim.NewFrameScheduler(clock),
		limiter:   core.NewFixedStep(cfg.FPS, clock),
	}
	s.Renderer = render.NewRenderer(surface, cfg.Width, cfg.Height, cfg.CellSize, cfg.Colors())
	s.Controller = anim.New(anim.Config{
		Engine:    universe.Random(cfg.Width, cfg.Height, s.seed),
		Painter:   s.Renderer,
		Scheduler: s.Scheduler,
		Logger:    logger,
		OnLabel:   onLabel,
	})
	sw, sh := geom.SurfaceSize(cfg.Width, cfg.Height, cfg.CellSize)
	s.Router = input.NewRouter(s.Controller, sw, sh, cfg.CellSize)
	for mod, p := range cfg.Bindings() {
		s.Router.Bind(mod, p)
	}
	return s
}

// Start paints the initial universe and, if configured, starts playing.
func (s *Session) Start() {
	if s.cfg.Grid {
		s.Controller.ToggleGrid()
	} else {
		s.Controller.Redraw()
	}
	if s.cfg.Playing {
		s.Controller.Play()
	}
	s.log.Info("session started",
		"width", s.cfg.Width, "height", s.cfg.Height, "cell", s.cfg.CellSize,
		"seed", s.seed, "state", s.Controller.State())
}

// Refresh is called once per host display refresh. It fires the pending
// animation frame unless the frame cap holds it back, and reports whether a
// frame was produced.
func (s *Session) Refresh() bool {
	if !s.Scheduler.Pending() {
		return false
	}
	if !s.limiter.ShouldStep() {
		return false
	}
	return s.Scheduler.Fire()
}

// Randomize replaces the universe with a freshly seeded random one.
func (s *Session) Randomize() {
	s.seed++
	seed := s.seed
	s.Controller.Reset(func() core.Engine {
		return universe.Random(s.cfg.Width, s.cfg.Height, seed)
	})
	s.log.Info("universe randomized", "seed", seed)
}

// Seed returns the seed of the current random universe.
func (s *Session) Seed() int64 { return s.seed }
