package rosette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateAdvance(t *testing.T) {
	s := NewState(Params{N: 2, D: 39, Radius: 350}, 0.125)

	snap := s.Snapshot()
	s.Advance()
	s.Advance()
	assert.Equal(t, 2, s.Frame)
	assert.InDelta(t, 39.25, s.Params.D, eps)
	assert.Equal(t, 39.0, snap.D, "snapshot must not follow later updates")

	s.AdvanceScaled(2)
	assert.Equal(t, 3, s.Frame)
	assert.InDelta(t, 39.5, s.Snapshot().D, eps)
}

func TestStatePresentOncePerFrame(t *testing.T) {
	s := NewState(Params{N: 2, D: 39, Radius: 350}, 0.125)

	assert.True(t, s.Present(), "first frame")
	assert.False(t, s.Present(), "same frame drawn twice")
	assert.False(t, s.Present())

	s.Advance()
	assert.True(t, s.Present())
	assert.False(t, s.Present())

	s.Advance()
	s.Advance()
	assert.True(t, s.Present(), "skipped frames do not block the next one")
	assert.Equal(t, 3, s.Frame)
}

func TestCompose(t *testing.T) {
	g, err := NewGenerator(Params{N: 4, D: 71, Radius: 300}, staticColors)
	require.NoError(t, err)

	layers := []Layer{
		{Kind: Outer, Weight: 4, Width: 20},
		{Kind: Inner, Weight: 1.5, Width: 180},
		{Kind: Inner, Weight: 1},
	}
	strokes := Compose(g, 370, layers)
	require.Len(t, strokes, 3)

	assert.Equal(t, Outer, strokes[0].Kind)
	assert.Equal(t, 4.0, strokes[0].Weight)
	require.Len(t, strokes[0].Curve, 20)
	assert.Equal(t, g.PointAt(10, Outer), strokes[0].Curve[0].Point)

	require.Len(t, strokes[1].Curve, 180)
	require.Len(t, strokes[2].Curve, 361)
	assert.Equal(t, g.PointAt(360, Inner), strokes[2].Curve[360].Point)
}
