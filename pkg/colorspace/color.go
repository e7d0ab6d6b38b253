// Package colorspace implements conversion between sRGB and CIE L*a*b*
// (by way of CIE XYZ, D65) and between sRGB and HSL, plus hex parsing
// and a packed 32-bit interchange token. XYZ is not exposed as a type
// of its own. Conversion math is delegated to
// github.com/lucasb-eyer/go-colorful; the Color value type and its
// invariants are owned here.
package colorspace

import "math"

const (
	lMin, lMax = 0, 100
	abMin, abMax = -128, 128

	equalTolerance = 1e-6
)

// Color is an immutable value in CIE L*a*b* (D65, 2 degree observer).
// Components are clamped to their declared ranges on construction and
// never mutated afterward.
type Color struct {
	l, a, b float64
}

// New builds a Color, clamping l to [0,100] and a/b to [-128,128].
func New(l, a, b float64) Color {
	return Color{
		l: clamp(l, lMin, lMax),
		a: clamp(a, abMin, abMax),
		b: clamp(b, abMin, abMax),
	}
}

// L returns the L* component.
func (c Color) L() float64 { return c.l }

// A returns the a* component.
func (c Color) A() float64 { return c.a }

// B returns the b* component.
func (c Color) B() float64 { return c.b }

// Lightness is an alias for L.
func (c Color) Lightness() float64 { return c.l }

// Chroma returns sqrt(a^2 + b^2), the distance from the neutral axis.
func (c Color) Chroma() float64 { return math.Hypot(c.a, c.b) }

// Hue returns atan2(b, a) in degrees, normalized to [0, 360).
func (c Color) Hue() float64 {
	h := math.Atan2(c.b, c.a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

// Equal reports structural equality within a tolerance of 1e-6 per
// component.
func (c Color) Equal(other Color) bool {
	return math.Abs(c.l-other.l) < equalTolerance &&
		math.Abs(c.a-other.a) < equalTolerance &&
		math.Abs(c.b-other.b) < equalTolerance
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
