package spiro

import (
	"fmt"
	"image/color"
)

// Point is a position in canvas space: origin at the canvas centre, y up.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Splat returns the coordinates as a pair.
func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// ToScreen maps pt onto a w×h raster whose origin is the top-left corner and
// whose y axis grows downwards.
func ToScreen(pt Point, w, h int) (float64, float64) {
	x, y := pt.Splat()
	return float64(w)/2 + x, float64(h)/2 - y
}

// RGB is a colour with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// Black is the colour used for curves drawn from explicit parameters.
var Black = RGB{}

func (c RGB) valid() bool {
	in := func(v float64) bool { return v >= 0 && v <= 1 }
	return in(c.R) && in(c.G) && in(c.B)
}

// RGBA converts c to an opaque 8-bit colour.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 0xff}
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*0xff + 0.5)
}
