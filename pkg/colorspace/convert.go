package colorspace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brackishlabs/palettecore/pkg/paletteerr"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is a single sRGB pixel with opacity expressed as [0,1] (a raw
// opacity byte divided by 255).
type RGBA struct {
	R, G, B uint8
	A       float64
}

// HSL is a color in the standard hue/saturation/lightness model: hue in
// [0,360), saturation and lightness in [0,1].
type HSL struct {
	H, S, L float64
}

// Packed is a 32-bit AARRGGBB interchange token, used as a compact
// token between space modules.
type Packed uint32

func toColorful(rgb RGBA) colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

// RGBToLab converts an sRGB pixel to a Lab Color. RGB channels are
// already clamped by their uint8 representation; opacity is clamped to
// [0,1] but otherwise unused by the conversion. go-colorful reports Lab
// scaled down by 100, so its components are scaled back up here.
func RGBToLab(rgb RGBA) Color {
	rgb.A = clamp(rgb.A, 0, 1)
	l, a, b := toColorful(rgb).Lab()
	return New(l*100, a*100, b*100)
}

// LabToRGB converts a Lab Color back to sRGB, clamping the result to
// [0,255] per channel. Round-trips are not required to be exact, only
// within 1 RGB unit per channel for in-gamut opaque colors.
func LabToRGB(c Color) RGBA {
	cc := colorful.Lab(c.l/100, c.a/100, c.b/100).Clamped()
	r, g, b := cc.RGB255()
	return RGBA{R: r, G: g, B: b, A: 1}
}

// RGBToHSL converts an sRGB pixel to HSL.
func RGBToHSL(rgb RGBA) HSL {
	h, s, l := toColorful(rgb).Hsl()
	return HSL{H: h, S: s, L: l}
}

// HSLToRGB converts HSL back to sRGB, clamping the result to [0,255]
// per channel.
func HSLToRGB(hsl HSL) RGBA {
	cc := colorful.Hsl(hsl.H, hsl.S, hsl.L).Clamped()
	r, g, b := cc.RGB255()
	return RGBA{R: r, G: g, B: b, A: 1}
}

// ParseHex accepts #RGB, #RGBA, #RRGGBB, #RRGGBBAA (case-insensitive)
// and fails with a paletteerr ParseError on any other input.
func ParseHex(s string) (RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return RGBA{}, paletteerr.NewParseError(s, "hex color (expected leading '#')")
	}
	hex := s[1:]

	expand := func(c byte) string { return string([]byte{c, c}) }

	var rs, gs, bs, as string
	switch len(hex) {
	case 3:
		rs, gs, bs, as = expand(hex[0]), expand(hex[1]), expand(hex[2]), "ff"
	case 4:
		rs, gs, bs, as = expand(hex[0]), expand(hex[1]), expand(hex[2]), expand(hex[3])
	case 6:
		rs, gs, bs, as = hex[0:2], hex[2:4], hex[4:6], "ff"
	case 8:
		rs, gs, bs, as = hex[0:2], hex[2:4], hex[4:6], hex[6:8]
	default:
		return RGBA{}, paletteerr.NewParseError(s, "#RGB, #RGBA, #RRGGBB, or #RRGGBBAA")
	}

	r, errR := parseByte(rs)
	g, errG := parseByte(gs)
	b, errB := parseByte(bs)
	a, errA := parseByte(as)
	if errR != nil || errG != nil || errB != nil || errA != nil {
		return RGBA{}, paletteerr.NewParseError(s, "hex digits")
	}

	return RGBA{R: r, G: g, B: b, A: float64(a) / 255.0}, nil
}

func parseByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

// ToHex renders an RGBA pixel's color channels as "#RRGGBB".
func ToHex(rgb RGBA) string {
	return strings.ToUpper(fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B))
}

// Pack encodes an RGBA pixel as a 32-bit AARRGGBB token, rounding
// opacity to the nearest byte.
func Pack(rgb RGBA) Packed {
	a := uint8(clamp(rgb.A, 0, 1)*255 + 0.5)
	return Packed(uint32(a)<<24 | uint32(rgb.R)<<16 | uint32(rgb.G)<<8 | uint32(rgb.B))
}

// Unpack decodes a 32-bit AARRGGBB token back into an RGBA pixel.
func Unpack(p Packed) RGBA {
	return RGBA{
		A: float64(uint8(p>>24)) / 255.0,
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
	}
}
