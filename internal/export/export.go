// Package export renders rosette frames off screen and saves them as
// numbered PNG files.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/rosette/internal/config"
	"github.com/iburimskiy/rosette/internal/rosette"
)

// Exporter writes Frames consecutive frames of a preset into Dir.
type Exporter struct {
	Dir           string
	Width, Height int
	Frames        int
	Logger        *slog.Logger
}

// Run renders the frames on one canvas so the fading trail builds up the
// same way it does on screen. It returns the paths written so far.
func (e *Exporter) Run(ctx context.Context, preset config.Preset) ([]string, error) {
	if e.Width <= 0 || e.Height <= 0 {
		return nil, fmt.Errorf("export: bad canvas size %dx%d", e.Width, e.Height)
	}
	if err := preset.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	log := e.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	dc := gg.NewContext(e.Width, e.Height)
	defer func() { _ = dc.Close() }()
	dc.SetLineCap(gg.LineCapRound)

	state := preset.NewState()
	paths := make([]string, 0, e.Frames)
	for i := 0; i < e.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		gen, err := rosette.NewGenerator(state.Snapshot(), preset.Colors)
		if err != nil {
			return paths, fmt.Errorf("frame %d: %w", state.Frame, err)
		}
		alpha := config.TrailAlpha
		if i == 0 {
			alpha = 1
		}
		if err := e.drawFrame(dc, alpha, rosette.Compose(gen, state.Frame, preset.Layers)); err != nil {
			return paths, fmt.Errorf("frame %d: %w", state.Frame, err)
		}

		path := filepath.Join(e.Dir, fmt.Sprintf(config.FramePattern, i+1))
		if err := dc.SavePNG(path); err != nil {
			return paths, fmt.Errorf("export: %w", err)
		}
		log.Debug("frame saved", "path", path, "d", state.Params.D)
		paths = append(paths, path)

		state.Advance()
	}
	log.Info("export finished", "dir", e.Dir, "frames", len(paths))
	return paths, nil
}

func (e *Exporter) drawFrame(dc *gg.Context, alpha float64, strokes []rosette.Stroke) error {
	dc.SetRGBA(config.Background, config.Background, config.Background, alpha)
	dc.DrawRectangle(0, 0, float64(e.Width), float64(e.Height))
	if err := dc.Fill(); err != nil {
		return err
	}

	cx, cy := float64(e.Width)/2, float64(e.Height)/2
	for _, s := range strokes {
		dc.SetLineWidth(s.Weight)
		for j := 1; j < len(s.Curve); j++ {
			from, to := s.Curve[j-1], s.Curve[j]
			dc.SetColor(from.Color.Clamped())
			dc.MoveTo(cx+from.Point.X, cy-from.Point.Y)
			dc.LineTo(cx+to.Point.X, cy-to.Point.Y)
			if err := dc.Stroke(); err != nil {
				return err
			}
		}
	}
	return nil
}
