// Package colordiff implements the CIEDE2000 perceptual color
// difference formula (Sharma et al. 2005 corrections) over two Lab
// colors. All downstream clustering and filtering in palettecore
// reasons about perceptual distance through this package. It is
// implemented directly here, rather than delegated to
// github.com/lucasb-eyer/go-colorful's DistanceCIEDE2000, so the
// published reference pairs it is tested against stay traceable to a
// fixed, auditable formula.
package colordiff

import (
	"math"

	"github.com/brackishlabs/palettecore/pkg/colorspace"
)

// CIEDE2000 returns the perceptual distance between two Lab colors. It
// is zero iff the colors are identical, symmetric, and reproduces the
// published reference pairs to within 1e-4.
func CIEDE2000(c1, c2 colorspace.Color) float64 {
	l1, a1, b1 := c1.L(), c1.A(), c1.B()
	l2, a2, b2 := c2.L(), c2.A(), c2.B()

	c1Star := math.Hypot(a1, b1)
	c2Star := math.Hypot(a2, b2)
	avgCStar := (c1Star + c2Star) / 2

	g := 0.5 * (1 - math.Sqrt(pow7(avgCStar)/(pow7(avgCStar)+pow7(25))))

	a1p := a1 * (1 + g)
	a2p := a2 * (1 + g)

	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)
	avgCp := (c1p + c2p) / 2

	h1p := hueAngle(b1, a1p)
	h2p := hueAngle(b2, a2p)

	deltaLp := l2 - l1
	deltaCp := c2p - c1p

	var deltahp float64
	switch {
	case c1p*c2p == 0:
		deltahp = 0
	case math.Abs(h2p-h1p) <= 180:
		deltahp = h2p - h1p
	case h2p-h1p > 180:
		deltahp = h2p - h1p - 360
	default:
		deltahp = h2p - h1p + 360
	}
	deltaHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(radians(deltahp/2))

	avgLp := (l1 + l2) / 2

	var avgHp float64
	switch {
	case c1p*c2p == 0:
		avgHp = h1p + h2p
	case math.Abs(h1p-h2p) > 180:
		if h1p+h2p < 360 {
			avgHp = (h1p + h2p + 360) / 2
		} else {
			avgHp = (h1p + h2p - 360) / 2
		}
	default:
		avgHp = (h1p + h2p) / 2
	}

	t := 1 - 0.17*math.Cos(radians(avgHp-30)) +
		0.24*math.Cos(radians(2*avgHp)) +
		0.32*math.Cos(radians(3*avgHp+6)) -
		0.20*math.Cos(radians(4*avgHp-63))

	deltaTheta := 30 * math.Exp(-math.Pow((avgHp-275)/25, 2))
	rc := 2 * math.Sqrt(pow7(avgCp)/(pow7(avgCp)+pow7(25)))

	sl := 1 + (0.015*math.Pow(avgLp-50, 2))/math.Sqrt(20+math.Pow(avgLp-50, 2))
	sc := 1 + 0.045*avgCp
	sh := 1 + 0.015*avgCp*t

	rt := -math.Sin(radians(2*deltaTheta)) * rc

	const kl, kc, kh = 1.0, 1.0, 1.0

	termL := deltaLp / (kl * sl)
	termC := deltaCp / (kc * sc)
	termH := deltaHp / (kh * sh)

	return math.Sqrt(termL*termL + termC*termC + termH*termH + rt*termC*termH)
}

func hueAngle(b, ap float64) float64 {
	if ap == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, ap) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func pow7(v float64) float64 {
	v2 := v * v
	v3 := v2 * v
	return v3 * v3 * v
}
