package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/rosette/internal/rosette"
)

func TestPresetsValid(t *testing.T) {
	require.Equal(t, []string{"drift", "static", "sweep"}, Names())
	for _, name := range Names() {
		p, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
		assert.NoError(t, p.Validate(), name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("spiral")
	require.ErrorIs(t, err, ErrUnknownPreset)
	assert.Contains(t, err.Error(), "static")
}

func TestLookupReturnsCopy(t *testing.T) {
	p, err := Lookup(DefaultPreset)
	require.NoError(t, err)
	p.Layers[0].Weight = 99
	p.Params.N = 7

	again, err := Lookup(DefaultPreset)
	require.NoError(t, err)
	assert.Equal(t, 4.0, again.Layers[0].Weight)
	assert.Equal(t, 2.0, again.Params.N)
}

func TestPresetValidate(t *testing.T) {
	p, err := Lookup("sweep")
	require.NoError(t, err)

	bad := p
	bad.Params.Radius = 0
	require.ErrorIs(t, bad.Validate(), rosette.ErrInvalidParameter)

	bad = p
	bad.Layers = []rosette.Layer{{Kind: rosette.Inner, Weight: 1, Width: -1}}
	require.ErrorIs(t, bad.Validate(), rosette.ErrInvalidParameter)

	bad = p
	bad.Layers = nil
	require.Error(t, bad.Validate())
}

func TestPresetNewState(t *testing.T) {
	p, err := Lookup("drift")
	require.NoError(t, err)

	s := p.NewState()
	s.Advance()
	assert.Equal(t, 1, s.Frame)
	assert.InDelta(t, 39.125, s.Params.D, 1e-12)
	assert.Equal(t, 39.0, p.Params.D)
}
