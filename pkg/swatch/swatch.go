// Package swatch defines the Swatch aggregate: a representative color
// paired with the population of source pixels it stands for and their
// population-weighted mean image coordinate.
package swatch

import "github.com/brackishlabs/palettecore/pkg/colorspace"

// Coordinate is a population-weighted mean pixel position in image
// coordinates (0-indexed, origin top-left).
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Swatch is an immutable value: once built, none of its fields are
// mutated. Population must be at least 1 for any swatch that reaches a
// Palette; clustering code may transiently hold swatches with
// population 0 for dropped clusters before they are filtered out.
type Swatch struct {
	Color      colorspace.Color
	Population int
	Coordinate Coordinate
}

// New builds a Swatch.
func New(color colorspace.Color, population int, coordinate Coordinate) Swatch {
	return Swatch{Color: color, Population: population, Coordinate: coordinate}
}

// ColorOutput is the wire representation of a Color, in the hex/rgb/
// hsl/lab shape swatch consumers expect.
type ColorOutput struct {
	Hex string    `json:"hex"`
	RGB RGBOutput `json:"rgb"`
	HSL HSLOutput `json:"hsl"`
	Lab LabOutput `json:"lab"`
}

// RGBOutput is the sRGB channel triple of a swatch's color.
type RGBOutput struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSLOutput is the HSL triple of a swatch's color.
type HSLOutput struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// LabOutput is the Lab triple of a swatch's color.
type LabOutput struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Output is the wire representation of a Swatch: color, population,
// and coordinate.
type Output struct {
	Color      ColorOutput `json:"color"`
	Population int         `json:"population"`
	Coordinate Coordinate  `json:"coordinate"`
}

// ToOutput renders s as its wire representation by converting its Lab
// color to sRGB/HSL/hex.
func (s Swatch) ToOutput() Output {
	rgb := colorspace.LabToRGB(s.Color)
	hsl := colorspace.RGBToHSL(rgb)
	return Output{
		Color: ColorOutput{
			Hex: colorspace.ToHex(rgb),
			RGB: RGBOutput{R: rgb.R, G: rgb.G, B: rgb.B},
			HSL: HSLOutput{H: hsl.H, S: hsl.S, L: hsl.L},
			Lab: LabOutput{L: s.Color.L(), A: s.Color.A(), B: s.Color.B()},
		},
		Population: s.Population,
		Coordinate: s.Coordinate,
	}
}
