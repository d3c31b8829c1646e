package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/rosette/internal/audio"
	"github.com/iburimskiy/rosette/internal/config"
)

var errUnsupported = errors.New("unsupported file type")

func (g *Game) togglePlayback() {
	if g.ctrl == nil {
		return
	}
	speaker.Lock()
	g.ctrl.Paused = g.paused
	speaker.Unlock()
}

func (g *Game) stopCurrent() {
	if g.initDone {
		speaker.Clear()
	}
	if g.streamer != nil {
		_ = g.streamer.Close()
		g.streamer = nil
	}
	if g.currentFile != nil {
		_ = g.currentFile.Close()
		g.currentFile = nil
	}
	g.ctrl = nil
	g.tap = nil
}

func (g *Game) openAndPlayFileDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.LoadAndPlay(filename)
}

// LoadAndPlay plays a wav, mp3 or flac file and lets its loudness speed up
// the drift of d.
func (g *Game) LoadAndPlay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return fmt.Errorf("%w: %q", errUnsupported, ext)
	}
	if err != nil {
		_ = f.Close()
		return err
	}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !g.initDone || g.format.SampleRate != format.SampleRate {
		if g.initDone {
			// Init closes the old player while holding the speaker lock,
			// which the mixer goroutine may be waiting on.
			speaker.Close()
		}
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return err
		}
		g.initDone = true
	}
	g.stopCurrent()

	// streamer -> tap -> ctrl
	t := audio.NewTap(streamer, config.AudioRingSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: g.paused}

	g.currentFile = f
	g.streamer = streamer
	g.format = format
	g.ctrl = ctrl
	g.tap = t
	g.lastErr = nil

	g.log.Info("audio loaded", "path", path, "rate", int(format.SampleRate))
	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		g.log.Debug("audio finished", "path", path)
	})))
	return nil
}
