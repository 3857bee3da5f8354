// Package term hosts the animation in a terminal, one surface pixel per
// character cell.
package term

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lifecanvas/internal/anim"
	"lifecanvas/internal/app"
	"lifecanvas/internal/geom"
	"lifecanvas/internal/input"
	"lifecanvas/internal/metrics"
	"lifecanvas/internal/render"

	"github.com/guptarohit/asciigraph"
	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

const (
	viewCanvas = "canvas"
	viewStatus = "status"
	viewFPS    = "fps"
	viewHelp   = "help"

	leftColumnWidth = 36
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI is the gocui front-end.
type ConsoleUI struct {
	g        *gocui.Gui
	session  *app.Session
	surface  *render.TermSurface
	keys     []keyBinding
	au       aurora.Aurora
	log      *slog.Logger
	interval time.Duration
	start    time.Time
	done     chan struct{}
	// stamp makes clicks carry the shift modifier, which terminals do not
	// report for mouse events.
	stamp bool
}

// NewConsoleUI opens the terminal. cfg must be valid.
func NewConsoleUI(cfg *app.Config, colors bool, logger *slog.Logger) (*ConsoleUI, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	mode := gocui.OutputNormal
	if colors {
		mode = gocui.Output256
	}
	g, err := gocui.NewGui(mode)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	g.Mouse = true

	w, h := geom.SurfaceSize(cfg.Width, cfg.Height, cfg.CellSize)
	t := &ConsoleUI{
		g:        g,
		surface:  render.NewTermSurface(w, h, colors),
		au:       aurora.NewAurora(colors),
		log:      logger,
		interval: time.Second / time.Duration(cfg.TPS),
		start:    time.Now(),
		done:     make(chan struct{}),
	}
	t.session = app.NewSession(cfg, t.surface, t.clock, logger, nil)

	c := t.session.Controller
	t.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Play/Pause", t.do(c.TogglePlay), ""},
		{'n', "N", "Step", t.do(c.Step), ""},
		{'g', "G", "Grid", t.do(c.ToggleGrid), ""},
		{'r', "R", "Randomize", t.do(t.session.Randomize), ""},
		{'c', "C", "Clear", t.do(c.Clear), ""},
		{'s', "S", "Stamp mode", t.do(func() { t.stamp = !t.stamp }), ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseClick, viewCanvas},
	}
	g.SetManagerFunc(t.layout)
	for _, kb := range t.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	return t, nil
}

func (t *ConsoleUI) clock() time.Duration { return time.Since(t.start) }

// Run blocks until the user quits.
func (t *ConsoleUI) Run() error {
	defer t.g.Close()
	t.session.Start()
	go t.tick()
	defer close(t.done)
	if err := t.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

// tick marshals refreshes into the gocui main loop, which owns every
// session mutation.
func (t *ConsoleUI) tick() {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-tk.C:
			t.g.Update(func(g *gocui.Gui) error {
				t.session.Refresh()
				return t.render(g)
			})
		}
	}
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	statusBottom := 9
	if v, err := g.SetView(viewStatus, 0, 0, leftColumnWidth, statusBottom); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(viewFPS, 0, statusBottom+1, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Frame rate"
	}
	if v, err := g.SetView(viewCanvas, leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Universe"
	}
	if v, err := g.SetView(viewHelp, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		fmt.Fprintln(v, helpText(t.keys, t.au))
	}
	return t.render(g)
}

func (t *ConsoleUI) render(g *gocui.Gui) error {
	c := t.session.Controller
	if v, err := g.View(viewCanvas); err == nil {
		v.Clear()
		fmt.Fprint(v, t.surface.Render())
	}
	if v, err := g.View(viewStatus); err == nil {
		v.Clear()
		fmt.Fprint(v, statusText(c.Label(), c.State(), t.session.Seed(), t.stamp, c.Readout(), t.au))
	}
	if v, err := g.View(viewFPS); err == nil {
		v.Clear()
		w, h := v.Size()
		fmt.Fprint(v, fpsPlot(c.Samples(), w, h))
	}
	return nil
}

// do adapts a controller action into a key handler.
func (t *ConsoleUI) do(action func()) func(*gocui.View) error {
	return func(*gocui.View) error {
		action()
		return t.render(t.g)
	}
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	ev := cursorEvent(cx+ox, cy+oy)
	if t.stamp {
		ev.Mod = input.ModShift
	}
	t.session.Router.OnPointerDown(ev)
	t.log.Debug("pointer down", "x", cx+ox, "y", cy+oy, "stamp", t.stamp)
	return t.render(t.g)
}

// cursorEvent places a pointer in the middle of character cell (x, y).
func cursorEvent(x, y int) input.PointerEvent {
	return input.PointerEvent{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

func statusText(label string, state anim.State, seed int64, stamp bool, snap metrics.Snapshot, au aurora.Aurora) string {
	mode := au.Blue(state.String())
	if state == anim.Running {
		mode = au.Cyan(state.String())
	}
	var b strings.Builder
	fmt.Fprintf(&b, " %s: %s %s\n", au.Green("Mode"), label, mode)
	fmt.Fprintf(&b, " %s: %d\n", au.Green("Seed"), seed)
	if stamp {
		fmt.Fprintf(&b, " %s: %s\n", au.Green("Stamp"), au.Yellow("on"))
	}
	for _, line := range strings.Split(snap.String(), "\n") {
		b.WriteString(" " + line + "\n")
	}
	return b.String()
}

func fpsPlot(samples []float64, w, h int) string {
	if len(samples) < 2 || w < 12 || h < 3 {
		return ""
	}
	return asciigraph.Plot(samples, asciigraph.Height(h-2), asciigraph.Width(w-10), asciigraph.Caption("fps, last 100 frames"))
}

func helpText(keys []keyBinding, au aurora.Aurora) string {
	var b strings.Builder
	b.WriteString("KEYBINDINGS: ")
	for i, k := range keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(au.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}
