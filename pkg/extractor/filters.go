package extractor

import "github.com/brackishlabs/palettecore/pkg/colorspace"

// PixelFilter decides whether a surviving pixel should be pushed onto
// the feature-vector point list. It returns true to keep the pixel.
type PixelFilter func(rgb colorspace.RGBA, x, y int) bool

// Compose chains filters: a pixel survives only if every filter admits
// it.
func Compose(filters ...PixelFilter) PixelFilter {
	return func(rgb colorspace.RGBA, x, y int) bool {
		for _, f := range filters {
			if !f(rgb, x, y) {
				return false
			}
		}
		return true
	}
}

// AlphaFilter drops pixels with opacity below minOpacity. The default
// pipeline uses AlphaFilter(1.0), dropping any pixel with opacity < 1.0
// so fully transparent pixels never contribute to a swatch.
func AlphaFilter(minOpacity float64) PixelFilter {
	return func(rgb colorspace.RGBA, x, y int) bool {
		return rgb.A >= minOpacity
	}
}

// NearWhiteFilter drops pixels close to white: Lab lightness at or
// above threshold and chroma below 10.
func NearWhiteFilter(threshold float64) PixelFilter {
	return func(rgb colorspace.RGBA, x, y int) bool {
		lab := colorspace.RGBToLab(rgb)
		return !(lab.Lightness() >= threshold && lab.Chroma() < 10)
	}
}

// NearBlackFilter drops pixels close to black: Lab lightness at or
// below threshold and chroma below 10.
func NearBlackFilter(threshold float64) PixelFilter {
	return func(rgb colorspace.RGBA, x, y int) bool {
		lab := colorspace.RGBToLab(rgb)
		return !(lab.Lightness() <= threshold && lab.Chroma() < 10)
	}
}

func defaultFilter() PixelFilter {
	return AlphaFilter(1.0)
}
