// Package game hosts the rosette in an ebiten window.
package game

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/rosette/internal/audio"
	"github.com/iburimskiy/rosette/internal/config"
	"github.com/iburimskiy/rosette/internal/rosette"
)

type Game struct {
	preset config.Preset
	state  *rosette.State
	log    *slog.Logger

	// audio
	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	tap         *audio.Tap
	level       float64

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	drawn    int
	paused   bool
	initDone bool
	lastErr  error
}

// New returns a game drawing preset, which must already be valid.
func New(preset config.Preset, log *slog.Logger) *Game {
	return &Game{
		preset:  preset,
		state:   preset.NewState(),
		log:     log,
		prevKey: map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.togglePlayback()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openAndPlayFileDialog(); err != nil {
			g.lastErr = err
			g.log.Warn("audio not loaded", "err", err)
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.stopCurrent()
		return ebiten.Termination
	}

	if g.paused || g.drawn == 0 {
		return nil
	}
	g.level = 0
	if g.tap != nil {
		g.level = g.tap.Level(config.AudioWindow, config.SmoothingFactor)
	}
	g.state.AdvanceScaled(1 + g.level)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Each frame is drawn once; the screen keeps it until the next one.
	if !g.state.Present() {
		return
	}
	gen, err := rosette.NewGenerator(g.state.Snapshot(), g.preset.Colors)
	if err != nil {
		// d drifted somewhere unusable; keep the last picture.
		g.lastErr = err
		g.paused = true
		g.log.Error("frame skipped", "frame", g.state.Frame, "err", err)
		return
	}

	drawTrail(screen, g.drawn == 0)
	for _, s := range rosette.Compose(gen, g.state.Frame, g.preset.Layers) {
		drawStroke(screen, s)
	}
	g.drawn++

	status := fmt.Sprintf("%s  n=%.3g d=%.4g", g.preset.Name, g.state.Params.N, g.state.Params.D)
	if g.tap != nil {
		status += fmt.Sprintf("  level=%.2f", g.level)
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	drawStatus(screen, status)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
