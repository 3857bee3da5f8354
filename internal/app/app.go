//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"lifecanvas/internal/geom"
	"lifecanvas/internal/input"
	"lifecanvas/internal/render"
	"lifecanvas/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	canvas  *render.EbitenSurface
	hud     *ui.HUD

	scale      int
	canvasW    int
	canvasH    int
	background color.Color
	started    bool
	startedAt  time.Time
}

// New constructs a Game for the provided configuration. cfg must be valid.
func New(cfg *Config, logger *slog.Logger) *Game {
	g := &Game{scale: cfg.Scale, background: color.RGBA{R: 16, G: 16, B: 20, A: 255}, startedAt: time.Now()}
	g.canvasW, g.canvasH = geom.SurfaceSize(cfg.Width, cfg.Height, cfg.CellSize)
	g.canvas = render.NewEbitenSurface(g.canvasW, g.canvasH)
	g.session = NewSession(cfg, g.canvas, g.clock, logger, nil)
	g.session.Router.SetDisplaySize(float64(g.canvasW*g.scale), float64(g.canvasH*g.scale))

	c := g.session.Controller
	g.hud = ui.NewHUD(hudWidth, []ui.Button{
		{Key: "Space", Label: c.Label, OnClick: c.TogglePlay},
		{Key: "N", Label: func() string { return "Step" }, OnClick: c.Step},
		{Key: "G", Label: func() string { return "Grid" }, OnClick: c.ToggleGrid},
		{Key: "R", Label: func() string { return "Randomize" }, OnClick: g.session.Randomize},
		{Key: "C", Label: func() string { return "Clear" }, OnClick: c.Clear},
	}, c.Readout)
	return g
}

// WindowSize returns the initial window size.
func (g *Game) WindowSize() (int, int) {
	return g.canvasW*g.scale + g.hud.Width(), g.canvasH * g.scale
}

func (g *Game) clock() time.Duration { return time.Since(g.startedAt) }

// Update handles per-frame input and fires the pending animation frame.
func (g *Game) Update() error {
	if !g.started {
		g.session.Start()
		g.started = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	c := g.session.Controller
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		c.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		c.Play()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		c.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		c.ToggleGrid()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		c.Clear()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx < g.canvasW*g.scale && my < g.canvasH*g.scale {
			g.session.Router.OnPointerDown(input.PointerEvent{X: float64(mx), Y: float64(my), Mod: modifier()})
		}
	}
	g.hud.Update(g.canvasW * g.scale)

	g.session.Refresh()
	return nil
}

func modifier() input.Modifier {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyShift):
		return input.ModShift
	case ebiten.IsKeyPressed(ebiten.KeyControl), ebiten.IsKeyPressed(ebiten.KeyMeta):
		return input.ModCtrl
	}
	return input.ModNone
}

// Draw composites the canvas and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.canvas.Draw(screen, float64(g.canvasW*g.scale), float64(g.canvasH*g.scale))
	g.hud.Draw(screen, g.canvasW*g.scale, g.canvasH*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
