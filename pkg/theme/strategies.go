// Package theme implements the built-in theme strategies: vivid,
// muted, light, dark, and basic. Each strategy is a small capability
// record — a filter and a score function value — rather than a class
// hierarchy.
package theme

import "github.com/brackishlabs/palettecore/pkg/swatch"

// MaxChroma is the chroma value used to normalize chroma into [0,1]
// for the vivid/muted strategies.
const MaxChroma = 180.0

// Strategy filters and scores swatches according to an intent (vivid,
// muted, light, dark, basic).
type Strategy struct {
	Name   string
	Filter func(swatch.Swatch) bool
	Score  func(swatch.Swatch) float64
}

func normalizedChroma(s swatch.Swatch) float64 {
	c := s.Color.Chroma() / MaxChroma
	if c > 1 {
		c = 1
	}
	return c
}

// Basic admits every swatch and scores them all equally.
var Basic = Strategy{
	Name:   "basic",
	Filter: func(swatch.Swatch) bool { return true },
	Score:  func(swatch.Swatch) float64 { return 1.0 },
}

// Vivid admits swatches with normalized chroma >= 0.35, scored by
// normalized chroma.
var Vivid = Strategy{
	Name:   "vivid",
	Filter: func(s swatch.Swatch) bool { return normalizedChroma(s) >= 0.35 },
	Score:  normalizedChroma,
}

// Muted admits swatches with normalized chroma < 0.35, scored by
// 1 - normalized chroma.
var Muted = Strategy{
	Name:   "muted",
	Filter: func(s swatch.Swatch) bool { return normalizedChroma(s) < 0.35 },
	Score:  func(s swatch.Swatch) float64 { return 1 - normalizedChroma(s) },
}

// Light admits swatches with lightness > 50, scored by lightness/100.
var Light = Strategy{
	Name:   "light",
	Filter: func(s swatch.Swatch) bool { return s.Color.Lightness() > 50 },
	Score:  func(s swatch.Swatch) float64 { return s.Color.Lightness() / 100 },
}

// Dark admits swatches with lightness <= 50, scored by 1 - lightness/100.
var Dark = Strategy{
	Name:   "dark",
	Filter: func(s swatch.Swatch) bool { return s.Color.Lightness() <= 50 },
	Score:  func(s swatch.Swatch) float64 { return 1 - s.Color.Lightness()/100 },
}

// ByName looks up a built-in strategy by name. It returns Basic and
// false for an unrecognized name.
func ByName(name string) (Strategy, bool) {
	switch name {
	case "", "basic":
		return Basic, true
	case "vivid":
		return Vivid, true
	case "muted":
		return Muted, true
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	default:
		return Basic, false
	}
}
