package rosette

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var staticColors = ColorMap{InMin: 0, InMax: 450, OutMin: 0.08, OutMax: 0.8}

func TestColorMapValidate(t *testing.T) {
	require.NoError(t, staticColors.Validate())

	empty := staticColors
	empty.InMax = empty.InMin
	require.ErrorIs(t, empty.Validate(), ErrInvalidParameter)

	nan := staticColors
	nan.OutMax = math.NaN()
	require.ErrorIs(t, nan.Validate(), ErrInvalidParameter)
}

func TestIntensityLinear(t *testing.T) {
	assert.InDelta(t, 0.08, staticColors.Intensity(Point{}), eps)
	assert.InDelta(t, 0.8, staticColors.Intensity(Point{X: 450}), eps)
	assert.InDelta(t, 0.44, staticColors.Intensity(Point{Y: -225}), eps)
}

func TestIntensityClamp(t *testing.T) {
	wide := ColorMap{InMin: 0, InMax: 100, OutMin: 0, OutMax: 1}
	far := Point{X: 300}

	assert.Equal(t, 1.0, wide.Intensity(far))

	wide.NoClamp = true
	assert.InDelta(t, 3.0, wide.Intensity(far), eps)

	inverted := ColorMap{InMin: 0, InMax: 100, OutMin: 1, OutMax: 0}
	assert.Equal(t, 0.0, inverted.Intensity(far))
}

func TestIntensityMonotonic(t *testing.T) {
	prev := -1.0
	for d := 0.0; d <= 450; d += 5 {
		v := staticColors.Intensity(Point{X: d})
		require.GreaterOrEqual(t, v, prev, "distance %v", d)
		prev = v
	}
}

func TestIntensityIgnoresDirection(t *testing.T) {
	r := 123.0
	want := staticColors.Intensity(Point{X: r})
	for deg := 0.0; deg < 360; deg += 15 {
		rad := deg * math.Pi / 180
		pt := Point{X: r * math.Cos(rad), Y: r * math.Sin(rad)}
		assert.InDelta(t, want, staticColors.Intensity(pt), eps, "direction %v", deg)
	}
}

func TestColorModes(t *testing.T) {
	pt := Point{X: 150}

	gray := staticColors.At(pt)
	assert.Equal(t, gray.Intensity, gray.Color.R)
	assert.Equal(t, gray.Color.R, gray.Color.G)
	assert.Equal(t, gray.Color.G, gray.Color.B)

	hsl := ColorMap{InMin: 0, InMax: 300, OutMin: 0.1, OutMax: 0.6, Mode: HSL}.At(pt)
	assert.InDelta(t, 0.35, hsl.Intensity, eps)
	assert.InDelta(t, hsl.Intensity, hsl.Color.R, eps)
	assert.InDelta(t, hsl.Color.R, hsl.Color.G, eps)
	assert.InDelta(t, hsl.Color.G, hsl.Color.B, eps)
}
