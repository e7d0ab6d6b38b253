package swatch

import (
	"testing"

	"github.com/brackishlabs/palettecore/pkg/colorspace"
	"github.com/stretchr/testify/assert"
)

func TestToOutputRendersHexRGBHSLLab(t *testing.T) {
	red := colorspace.RGBToLab(colorspace.RGBA{R: 255, G: 0, B: 0, A: 1})
	s := New(red, 16, Coordinate{X: 1.5, Y: 2.5})

	out := s.ToOutput()

	assert.Equal(t, "#FF0000", out.Color.Hex)
	assert.InDelta(t, 255, int(out.Color.RGB.R), 1)
	assert.Equal(t, 16, out.Population)
	assert.Equal(t, Coordinate{X: 1.5, Y: 2.5}, out.Coordinate)
	assert.GreaterOrEqual(t, out.Color.HSL.S, 0.0)
}
