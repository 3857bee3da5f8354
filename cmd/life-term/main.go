package main

import (
	"fmt"
	"os"
	"strings"

	"lifecanvas/internal/app"
	"lifecanvas/internal/input"
	"lifecanvas/internal/term"

	"github.com/integrii/flaggy"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height, cfg.CellSize, cfg.TPS = 40, 20, 1, 30
	logPath := "life-term.log"
	noColor := false

	flaggy.SetName("life-term")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.Width, "x", "width", "Width of the universe in cells")
	flaggy.Int(&cfg.Height, "y", "height", "Height of the universe in cells")
	flaggy.Int(&cfg.CellSize, "", "cell", "Cell size in characters")
	flaggy.Int64(&cfg.Seed, "s", "seed", "Seed for the random universe")
	flaggy.Int(&cfg.TPS, "t", "tps", "Screen refreshes per second")
	flaggy.Int(&cfg.FPS, "f", "fps", "Cap on generations per second (0 = every refresh)")
	flaggy.Bool(&cfg.Playing, "p", "play", "Start running instead of paused")
	flaggy.Bool(&cfg.Grid, "g", "grid", "Start with the grid overlay shown")
	flaggy.String(&cfg.AliveColor, "", "alive", "Alive cell colour (hex)")
	flaggy.String(&cfg.DeadColor, "", "dead", "Dead cell colour (hex)")
	flaggy.String(&cfg.GridColor, "", "grid-color", "Grid line colour (hex)")
	flaggy.String(&cfg.ShiftPattern, "", "shift-pattern", "Pattern stamped by clicks in stamp mode ["+strings.Join(input.PatternNames(), "|")+"]")
	flaggy.String(&cfg.LogLevel, "", "log-level", "Log level (debug|info|warn|error)")
	flaggy.String(&logPath, "l", "log", "Log file; the terminal itself is owned by the UI")
	flaggy.Bool(&noColor, "", "no-color", "Disable 256-colour output")
	flaggy.Parse()

	if err := cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	if err := run(cfg, logPath, !noColor); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, logPath string, colors bool) error {
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	logger, err := cfg.Logger(f)
	if err != nil {
		return err
	}

	ui, err := term.NewConsoleUI(cfg, colors, logger)
	if err != nil {
		logger.Error("terminal unavailable", "err", err)
		return err
	}
	if err := ui.Run(); err != nil {
		logger.Error("terminal ui failed", "err", err)
		return err
	}
	logger.Info("terminal ui closed")
	return nil
}
