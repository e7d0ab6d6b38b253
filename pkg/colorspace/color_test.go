package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClampsOutOfRangeComponents(t *testing.T) {
	c := New(150, -200, 200)
	assert.Equal(t, 100.0, c.L())
	assert.Equal(t, -128.0, c.A())
	assert.Equal(t, 128.0, c.B())
}

func TestColorDerivedAccessors(t *testing.T) {
	tests := []struct {
		name          string
		l, a, b       float64
		wantChroma    float64
		wantHueInSpan bool
	}{
		{name: "neutral gray has zero chroma", l: 50, a: 0, b: 0, wantChroma: 0},
		{name: "red-ish has positive chroma", l: 50, a: 40, b: 20, wantChroma: 44.721359549995796},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.l, tt.a, tt.b)
			assert.InDelta(t, tt.wantChroma, c.Chroma(), 1e-9)
			assert.GreaterOrEqual(t, c.Chroma(), 0.0)
			assert.True(t, c.Hue() >= 0 && c.Hue() < 360)
			assert.True(t, c.Lightness() >= 0 && c.Lightness() <= 100)
		})
	}
}

func TestColorEqualWithinTolerance(t *testing.T) {
	a := New(50, 10, -10)
	b := New(50+1e-7, 10-1e-7, -10+1e-7)
	assert.True(t, a.Equal(b))

	c := New(50.01, 10, -10)
	assert.False(t, a.Equal(c))
}
