package rosette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode picks how an intensity becomes a colour.
type ColorMode int

const (
	// Gray uses the intensity for all three channels.
	Gray ColorMode = iota
	// HSL uses hue 0, saturation 0 and the intensity as lightness.
	HSL
)

// ColorMap maps the distance of a point from the centre linearly from
// [InMin, InMax] onto [OutMin, OutMax]. The result is clamped to [0, 1]
// unless NoClamp is set.
type ColorMap struct {
	InMin, InMax   float64
	OutMin, OutMax float64
	Mode           ColorMode
	NoClamp        bool
}

func (m ColorMap) Validate() error {
	for _, v := range []float64{m.InMin, m.InMax, m.OutMin, m.OutMax} {
		if !finite(v) {
			return fmt.Errorf("%w: color range bound %v", ErrInvalidParameter, v)
		}
	}
	if m.InMin == m.InMax {
		return fmt.Errorf("%w: empty color input range [%v, %v]", ErrInvalidParameter, m.InMin, m.InMax)
	}
	return nil
}

// Intensity returns the brightness of pt. It depends only on the distance of
// pt from the origin.
func (m ColorMap) Intensity(pt Point) float64 {
	v := m.OutMin + (pt.Dist()-m.InMin)/(m.InMax-m.InMin)*(m.OutMax-m.OutMin)
	if m.NoClamp {
		return v
	}
	return clamp01(v)
}

// Color returns the colour for an intensity in the map's mode.
func (m ColorMap) Color(v float64) colorful.Color {
	if m.Mode == HSL {
		return colorful.Hsl(0, 0, v)
	}
	return colorful.Color{R: v, G: v, B: v}
}

// At returns the coloured sample for pt.
func (m ColorMap) At(pt Point) Sample {
	v := m.Intensity(pt)
	return Sample{Point: pt, Intensity: v, Color: m.Color(v)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
