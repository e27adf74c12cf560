package spiro

import "fmt"

// Curve is one hypotrochoid being drawn through its pen.
type Curve struct {
	pen      Pen
	params   Params
	angle    int
	complete bool
}

// NewCurve binds a pen to params and positions it at the curve's start.
func NewCurve(pen Pen, params Params) *Curve {
	c := &Curve{pen: pen}
	c.Reset(params)
	return c
}

// Reset replaces the parameters and rewinds the curve to angle 0. The pen
// jumps to the new start point without drawing; the existing path stays
// until Clear is called. It panics if params did not come from NewParams.
func (c *Curve) Reset(params Params) {
	if !params.Valid() {
		panic("spiro: curve parameters must be built with NewParams")
	}
	c.params = params
	c.angle = 0
	c.complete = false

	c.pen.SetColor(params.Color())
	c.pen.SetCursorVisible(true)
	c.pen.MoveTo(params.PointAt(0), false)
}

// Step advances the curve by stepDeg and draws the new segment. Once the
// angle reaches the closure bound the curve is complete and further calls do
// nothing. The last angle drawn may overshoot the bound by less than stepDeg.
// A stepDeg below 1 panics since the curve could never close.
func (c *Curve) Step(stepDeg int) bool {
	mustStep(stepDeg)
	if c.complete {
		return true
	}
	c.angle += stepDeg
	c.pen.MoveTo(c.params.PointAt(c.angle), true)

	if c.angle >= c.params.ClosureDeg() {
		c.complete = true
		c.pen.SetCursorVisible(false)
	}
	return c.complete
}

// DrawFull draws the whole curve from angle 0 in one call.
func (c *Curve) DrawFull(stepDeg int) {
	mustStep(stepDeg)
	c.angle = 0
	c.complete = false
	c.pen.MoveTo(c.params.PointAt(0), true)
	for !c.Step(stepDeg) {
	}
}

func mustStep(stepDeg int) {
	if stepDeg < 1 {
		panic(fmt.Sprintf("spiro: step of %d degrees never closes a curve", stepDeg))
	}
}

// Clear erases the drawn path. Progress is left untouched.
func (c *Curve) Clear() {
	c.pen.Clear()
}

func (c *Curve) Params() Params { return c.params }
func (c *Curve) Angle() int     { return c.angle }
func (c *Curve) Complete() bool { return c.complete }
