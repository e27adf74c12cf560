package spiro

import "time"

// Pen is the drawing cursor owned by a single curve.
type Pen interface {
	// MoveTo moves the cursor to p. With down set, a segment is drawn from the
	// previous position.
	MoveTo(p Point, down bool)
	SetColor(c RGB)
	// Clear erases everything this pen has drawn.
	Clear()
	SetCursorVisible(visible bool)
	CursorVisible() bool
}

// Canvas hands out one pen per curve and reports the drawable size.
type Canvas interface {
	Pen(id int) Pen
	Size() (w, h int)
}

// Scheduler runs fn once after d. Implementations call fn on the same
// goroutine that drives the host loop.
type Scheduler interface {
	After(d time.Duration, fn func())
}
