package theme

import (
	"testing"

	"github.com/brackishlabs/palettecore/pkg/colorspace"
	"github.com/brackishlabs/palettecore/pkg/swatch"
	"github.com/stretchr/testify/assert"
)

func swatchWith(l, a, b float64) swatch.Swatch {
	return swatch.New(colorspace.New(l, a, b), 1, swatch.Coordinate{})
}

func TestBasicAdmitsEverythingAndScoresOne(t *testing.T) {
	s := swatchWith(10, 100, 100)
	assert.True(t, Basic.Filter(s))
	assert.Equal(t, 1.0, Basic.Score(s))
}

func TestVividAndMutedPartitionByNormalizedChroma(t *testing.T) {
	vivid := swatchWith(50, 100, 100) // chroma ~141, normalized ~0.78
	muted := swatchWith(50, 5, 5)     // chroma ~7, normalized ~0.04

	assert.True(t, Vivid.Filter(vivid))
	assert.False(t, Vivid.Filter(muted))
	assert.True(t, Muted.Filter(muted))
	assert.False(t, Muted.Filter(vivid))

	assert.InDelta(t, normalizedChroma(vivid), Vivid.Score(vivid), 1e-9)
	assert.InDelta(t, 1-normalizedChroma(muted), Muted.Score(muted), 1e-9)
}

func TestLightAndDarkPartitionByLightness(t *testing.T) {
	light := swatchWith(80, 0, 0)
	dark := swatchWith(20, 0, 0)

	assert.True(t, Light.Filter(light))
	assert.False(t, Light.Filter(dark))
	assert.True(t, Dark.Filter(dark))
	assert.False(t, Dark.Filter(light))

	assert.InDelta(t, 0.8, Light.Score(light), 1e-9)
	assert.InDelta(t, 0.8, Dark.Score(dark), 1e-9)
}

func TestByNameResolvesBuiltins(t *testing.T) {
	tests := []struct {
		name string
		want Strategy
	}{
		{"basic", Basic},
		{"vivid", Vivid},
		{"muted", Muted},
		{"light", Light},
		{"dark", Dark},
	}
	for _, tt := range tests {
		got, ok := ByName(tt.name)
		assert.True(t, ok)
		assert.Equal(t, tt.want.Name, got.Name)
	}
}

func TestByNameFallsBackToBasicForUnknownName(t *testing.T) {
	got, ok := ByName("nonexistent")
	assert.False(t, ok)
	assert.Equal(t, Basic.Name, got.Name)
}
