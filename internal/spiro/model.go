// Package spiro generates hypotrochoid curves and animates groups of them.
//
// The package never talks to a window or an image directly. Every curve draws
// through an injected [Pen], a group of curves gets its pens from a [Canvas],
// and the animation loop asks a [Scheduler] for its next tick. That keeps the
// maths and the per-curve state machine testable without a rendering backend.
//
// Coordinates are turtle style: the origin is the canvas centre and y grows
// upwards. Use [ToScreen] to map them onto a raster.
package spiro

import (
	"math"

	"github.com/iburimskiy/spirograph/internal/errors"
)

// Params describes one hypotrochoid. It is immutable and only [NewParams]
// produces a usable value; the zero Params is not a curve.
type Params struct {
	outer  int     // fixed circle radius R
	inner  int     // rolling circle radius r
	hole   float64 // tracing point offset as a fraction of r
	center Point
	color  RGB

	rotations int
}

// NewParams validates the curve parameters and derives the rotation count.
func NewParams(R, r int, l float64, center Point, col RGB) (Params, error) {
	switch {
	case R <= 0:
		return Params{}, errors.New(errors.ErrCodeInvalidParams, "outer radius R=%d must be positive", R)
	case r <= 0:
		return Params{}, errors.New(errors.ErrCodeInvalidParams, "inner radius r=%d must be positive", r)
	case r >= R:
		return Params{}, errors.New(errors.ErrCodeInvalidParams, "inner radius r=%d must be smaller than R=%d", r, R)
	case !(l > 0 && l < 1):
		return Params{}, errors.New(errors.ErrCodeInvalidParams, "hole ratio l=%g must lie in (0, 1)", l)
	case !col.valid():
		return Params{}, errors.New(errors.ErrCodeInvalidParams, "colour %v has components outside [0, 1]", col)
	}
	return Params{
		outer:     R,
		inner:     r,
		hole:      l,
		center:    center,
		color:     col,
		rotations: r / gcd(r, R),
	}, nil
}

func (p Params) OuterRadius() int   { return p.outer }
func (p Params) InnerRadius() int   { return p.inner }
func (p Params) HoleRatio() float64 { return p.hole }
func (p Params) Center() Point      { return p.center }
func (p Params) Color() RGB         { return p.color }

// Valid reports whether p came from [NewParams].
func (p Params) Valid() bool {
	return p.rotations > 0
}

// RotationCount is the number of full turns after which the curve closes.
func (p Params) RotationCount() int {
	return p.rotations
}

// ClosureDeg is the angle at which the curve closes, 360 × RotationCount.
func (p Params) ClosureDeg() int {
	return 360 * p.rotations
}

// PointAt returns the curve point for angleDeg.
func (p Params) PointAt(angleDeg int) Point {
	R := float64(p.outer)
	k := float64(p.inner) / R
	l := p.hole
	a := float64(angleDeg) * math.Pi / 180

	x := R * ((1-k)*math.Cos(a) + l*k*math.Cos((1-k)*a/k))
	y := R * ((1-k)*math.Sin(a) - l*k*math.Sin((1-k)*a/k))
	return Point{X: p.center.X + x, Y: p.center.Y + y}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
