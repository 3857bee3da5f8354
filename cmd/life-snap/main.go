// Command life-snap runs the animation headlessly for a number of frames and
// writes the final surface to a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"lifecanvas/internal/app"
	"lifecanvas/internal/geom"
	"lifecanvas/internal/render"

	"github.com/gogpu/gg"
)

func main() {
	cfg := app.NewConfig()
	cfg.Playing = true
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 100, "animation frames to produce")
	out := flag.String("out", "life.png", "PNG output path")
	printText := flag.Bool("text", false, "print the final universe as text")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	gg.SetLogger(logger)

	w, h := geom.SurfaceSize(cfg.Width, cfg.Height, cfg.CellSize)
	dc := gg.NewContext(w, h)
	defer dc.Close()
	surface := render.NewGGSurface(dc)

	// Frames are spaced by the refresh interval on a simulated clock, so the
	// output only depends on the flags.
	var now time.Duration
	interval := time.Second / time.Duration(cfg.TPS)
	session := app.NewSession(cfg, surface, func() time.Duration { return now }, logger, nil)
	session.Start()

	produced := 0
	for produced < *frames && session.Scheduler.Pending() {
		now += interval
		if session.Refresh() {
			produced++
		}
	}
	// The animation leaves the canvas one generation behind the engine.
	session.Controller.Pause()
	session.Controller.Redraw()

	if err := surface.Err(); err != nil {
		log.Fatalf("render: %v", err)
	}
	if err := surface.SavePNG(*out); err != nil {
		log.Fatalf("save %s: %v", *out, err)
	}
	snap := session.Controller.Readout()
	logger.Info("snapshot written", "path", *out, "frames", produced, "fps", snap.Mean, "width", w, "height", h)

	if *printText {
		if s, ok := session.Controller.Engine().(fmt.Stringer); ok {
			fmt.Println(s.String())
		}
	}
}
