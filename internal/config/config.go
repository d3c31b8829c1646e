package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/iburimskiy/rosette/internal/rosette"
)

const (
	WindowWidth  = 800
	WindowHeight = 800

	// Backdrop grey, also used for the translucent trail rectangle.
	Background = 0.08
	TrailAlpha = 0.2

	// Exported frames are numbered from 1.
	FramePattern  = "img%04d.png"
	DefaultFrames = 360

	// Audio tap
	AudioRingSize   = 8192
	AudioWindow     = 2048
	SmoothingFactor = 0.6

	DefaultPreset = "static"
)

var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a complete composition: parameters, how d drifts, how points
// are coloured and which layers are drawn.
type Preset struct {
	Name   string
	Params rosette.Params
	DStep  float64
	Colors rosette.ColorMap
	Layers []rosette.Layer
}

func (p Preset) Validate() error {
	if err := p.Params.Validate(); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if err := p.Colors.Validate(); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if len(p.Layers) == 0 {
		return fmt.Errorf("preset %q: no layers", p.Name)
	}
	for i, l := range p.Layers {
		if l.Width < 0 || l.Weight <= 0 {
			return fmt.Errorf("preset %q: layer %d: %w: width=%d weight=%v",
				p.Name, i, rosette.ErrInvalidParameter, l.Width, l.Weight)
		}
	}
	return nil
}

// NewState returns the animation state a run of p starts from.
func (p Preset) NewState() *rosette.State {
	return rosette.NewState(p.Params, p.DStep)
}

var (
	wideGray = rosette.ColorMap{InMin: 0, InMax: 450, OutMin: 0.08, OutMax: 0.8, Mode: rosette.Gray}
	tightHSL = rosette.ColorMap{InMin: 0, InMax: 300, OutMin: 0.1, OutMax: 0.6, Mode: rosette.HSL}

	fullLoops = []rosette.Layer{
		{Kind: rosette.Outer, Weight: 4},
		{Kind: rosette.Inner, Weight: 1.5},
	}
)

var presets = map[string]Preset{
	"static": {
		Params: rosette.Params{N: 2, D: 39, Radius: 350},
		Colors: wideGray,
		Layers: fullLoops,
	},
	"sweep": {
		Params: rosette.Params{N: 4, D: 71, Radius: 300},
		Colors: tightHSL,
		Layers: []rosette.Layer{
			{Kind: rosette.Outer, Weight: 4, Width: 20},
			{Kind: rosette.Inner, Weight: 1.5, Width: 180},
		},
	},
	"drift": {
		Params: rosette.Params{N: 2, D: 39, Radius: 350},
		DStep:  0.125,
		Colors: wideGray,
		Layers: fullLoops,
	},
}

// Lookup returns a copy of the named preset.
func Lookup(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w %q (have %v)", ErrUnknownPreset, name, Names())
	}
	p.Name = name
	p.Layers = append([]rosette.Layer(nil), p.Layers...)
	return p, nil
}

func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
