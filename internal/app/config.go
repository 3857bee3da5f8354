package app

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"strings"

	"lifecanvas/internal/input"
	"lifecanvas/internal/render"

	"github.com/gogpu/gg"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize int
	Seed     int64
	TPS      int
	Scale    int
	FPS      int
	Playing  bool
	Grid     bool

	AliveColor string
	DeadColor  string
	GridColor  string

	ShiftPattern string
	CtrlPattern  string

	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:      128,
		Height:     128,
		CellSize:   5,
		Seed:       42,
		TPS:        60,
		Scale:      1,
		AliveColor: "#000000",
		DeadColor:  "#FFFFFF",
		GridColor:  "#CCCCCC",
		LogLevel:   "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "universe width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "universe height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random universe")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host refreshes per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.FPS, "fps", c.FPS, "cap on generations per second (0 = every refresh)")
	fs.BoolVar(&c.Playing, "play", c.Playing, "start running instead of paused")
	fs.BoolVar(&c.Grid, "grid", c.Grid, "start with the grid overlay shown")
	fs.StringVar(&c.AliveColor, "alive", c.AliveColor, "alive cell colour (hex)")
	fs.StringVar(&c.DeadColor, "dead", c.DeadColor, "dead cell colour (hex)")
	fs.StringVar(&c.GridColor, "grid-color", c.GridColor, "grid line colour (hex)")
	fs.StringVar(&c.ShiftPattern, "shift-pattern", c.ShiftPattern, "pattern stamped by shift-click ("+strings.Join(input.PatternNames(), "|")+")")
	fs.StringVar(&c.CtrlPattern, "ctrl-pattern", c.CtrlPattern, "pattern stamped by ctrl-click")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug|info|warn|error)")
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"cell", c.CellSize},
		{"tps", c.TPS},
		{"scale", c.Scale},
	} {
		if f.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, f.name, f.v)
		}
	}
	if c.FPS < 0 {
		return fmt.Errorf("%w: fps must not be negative, got %d", ErrInvalidConfig, c.FPS)
	}
	for name, hex := range map[string]string{"alive": c.AliveColor, "dead": c.DeadColor, "grid-color": c.GridColor} {
		if !validHex(hex) {
			return fmt.Errorf("%w: %s colour %q is not #RGB, #RRGGBB or #RRGGBBAA", ErrInvalidConfig, name, hex)
		}
	}
	for name, p := range map[string]string{"shift-pattern": c.ShiftPattern, "ctrl-pattern": c.CtrlPattern} {
		if _, err := input.LookupPattern(p); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
		}
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Colors returns the renderer palette. Call Validate first.
func (c *Config) Colors() render.Colors {
	return render.Colors{
		Grid:  parseColor(c.GridColor),
		Dead:  parseColor(c.DeadColor),
		Alive: parseColor(c.AliveColor),
	}
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// Bindings resolves the modifier patterns. Unset modifiers are omitted.
func (c *Config) Bindings() map[input.Modifier]input.Pattern {
	out := map[input.Modifier]input.Pattern{}
	for mod, name := range map[input.Modifier]string{input.ModShift: c.ShiftPattern, input.ModCtrl: c.CtrlPattern} {
		if p, err := input.LookupPattern(name); err == nil && len(p.Cells) > 0 {
			out[mod] = p
		}
	}
	return out
}

func parseColor(hex string) color.Color {
	return gg.Hex(hex).Color()
}

func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
