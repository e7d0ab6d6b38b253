package colordiff

import (
	"testing"

	"github.com/brackishlabs/palettecore/pkg/colorspace"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestCIEDE2000IsZeroForIdenticalColors(t *testing.T) {
	c := colorspace.New(61.2, 12.3, -45.6)
	assert.Equal(t, 0.0, CIEDE2000(c, c))
}

func TestCIEDE2000IsSymmetric(t *testing.T) {
	a := colorspace.New(50, 2.6772, -79.7751)
	b := colorspace.New(50, 0, -82.7485)
	assert.InDelta(t, CIEDE2000(a, b), CIEDE2000(b, a), 1e-9)
}

func TestCIEDE2000ReferencePair(t *testing.T) {
	a := colorspace.New(50, 2.6772, -79.7751)
	b := colorspace.New(50, 0, -82.7485)
	assert.InDelta(t, 2.0425, CIEDE2000(a, b), 1e-3)
}

// A sample drawn from Sharma et al.'s published 34-pair reference table.
func TestCIEDE2000PublishedPairs(t *testing.T) {
	tests := []struct {
		name   string
		l1, a1, b1, l2, a2, b2 float64
		want   float64
	}{
		{name: "pair 1", l1: 50.0000, a1: 2.6772, b1: -79.7751, l2: 50.0000, a2: 0.0000, b2: -82.7485, want: 2.0425},
		{name: "pair 2", l1: 50.0000, a1: 3.1571, b1: -77.2803, l2: 50.0000, a2: 0.0000, b2: -82.7485, want: 2.8615},
		{name: "pair 3", l1: 50.0000, a1: 2.8361, b1: -74.0200, l2: 50.0000, a2: 0.0000, b2: -82.7485, want: 3.4412},
		{name: "pair 8", l1: 50.0000, a1: -1.0000, b1: 2.0000, l2: 50.0000, a2: 0.0000, b2: 0.0000, want: 2.3669},
		{name: "pair 27", l1: 61.2901, a1: 3.7196, b1: -5.3901, l2: 61.4292, a2: 2.2480, b2: -4.9620, want: 1.8731},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c1 := colorspace.New(tt.l1, tt.a1, tt.b1)
			c2 := colorspace.New(tt.l2, tt.a2, tt.b2)
			assert.InDelta(t, tt.want, CIEDE2000(c1, c2), 1e-3)
		})
	}
}

// TestCIEDE2000AgreesWithGoColorful cross-checks this package's
// implementation against github.com/lucasb-eyer/go-colorful's
// Color.DistanceCIEDE2000 on ordinary (non-neutral-axis) Lab pairs.
// go-colorful works with Lab components and distances scaled down by
// 100, so inputs are divided by 100 and its distance multiplied by 100.
func TestCIEDE2000AgreesWithGoColorful(t *testing.T) {
	tests := []struct {
		name                   string
		l1, a1, b1, l2, a2, b2 float64
	}{
		{name: "warm to cool", l1: 62.3, a1: 38.1, b1: 19.7, l2: 58.9, a2: -22.4, b2: 14.2},
		{name: "light muted", l1: 81.0, a1: 4.2, b1: -9.6, l2: 76.5, a2: 6.8, b2: -12.1},
		{name: "dark saturated", l1: 24.7, a1: 45.3, b1: -60.2, l2: 29.1, a2: 51.9, b2: -55.8},
		{name: "mid greens", l1: 50.0, a1: -30.0, b1: 25.0, l2: 55.0, a2: -35.0, b2: 30.0},
		{name: "near-identical", l1: 70.0, a1: 10.0, b1: 10.0, l2: 70.2, a2: 10.3, b2: 9.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c1 := colorspace.New(tt.l1, tt.a1, tt.b1)
			c2 := colorspace.New(tt.l2, tt.a2, tt.b2)

			cf1 := colorful.Lab(tt.l1/100, tt.a1/100, tt.b1/100)
			cf2 := colorful.Lab(tt.l2/100, tt.a2/100, tt.b2/100)

			assert.InDelta(t, cf1.DistanceCIEDE2000(cf2)*100, CIEDE2000(c1, c2), 1e-2)
		})
	}
}
