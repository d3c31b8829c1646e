package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/rosette/internal/config"
	"github.com/iburimskiy/rosette/internal/export"
	"github.com/iburimskiy/rosette/internal/game"
)

func main() {
	var (
		presetName = flag.String("preset", config.DefaultPreset, fmt.Sprintf("composition, one of %v", config.Names()))
		n          = flag.Float64("n", 0, "lobe count (overrides preset)")
		d          = flag.Float64("d", 0, "inner angular stretch (overrides preset)")
		radius     = flag.Float64("radius", 0, "rosette radius in pixels (overrides preset)")
		dStep      = flag.Float64("dstep", 0, "added to d every frame (overrides preset)")
		exportDir  = flag.String("export", "", "render frames headless into this directory instead of opening a window")
		frames     = flag.Int("frames", config.DefaultFrames, "number of frames to export")
		width      = flag.Int("width", config.WindowWidth, "export width")
		height     = flag.Int("height", config.WindowHeight, "export height")
		audioPath  = flag.String("audio", "", "audio file whose loudness drives d (window only)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if *verbose {
		gg.SetLogger(log)
	}

	preset, err := config.Lookup(*presetName)
	if err != nil {
		log.Error("bad preset", "err", err)
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			preset.Params.N = *n
		case "d":
			preset.Params.D = *d
		case "radius":
			preset.Params.Radius = *radius
		case "dstep":
			preset.DStep = *dStep
		}
	})
	if err := preset.Validate(); err != nil {
		log.Error("invalid parameters", "err", err)
		os.Exit(2)
	}

	if *exportDir != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		e := &export.Exporter{Dir: *exportDir, Width: *width, Height: *height, Frames: *frames, Logger: log}
		if _, err := e.Run(ctx, preset); err != nil {
			log.Error("export failed", "err", err)
			os.Exit(1)
		}
		return
	}

	g := game.New(preset, log)
	if *audioPath != "" {
		if err := g.LoadAndPlay(*audioPath); err != nil {
			log.Error("audio", "path", *audioPath, "err", err)
			os.Exit(1)
		}
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Rosette - Space: pause, O: open audio, Esc/Q: quit")
	ebiten.SetScreenClearedEveryFrame(false)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("window", "err", err)
		os.Exit(1)
	}
}
