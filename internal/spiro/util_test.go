package spiro

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustParams(t *testing.T, R, r int, l float64) Params {
	t.Helper()
	p, err := NewParams(R, r, l, Point{}, Black)
	if err != nil {
		t.Fatalf("NewParams(%d, %d, %g): %v", R, r, l, err)
	}
	return p
}

type move struct {
	P    Point
	Down bool
}

// recordingPen keeps every call so tests can inspect the drawing.
type recordingPen struct {
	id      int
	trace   *[]int // shared by every pen of a canvas, in call order
	moves   []move
	color   RGB
	clears  int
	visible bool
}

func (p *recordingPen) MoveTo(pt Point, down bool) {
	p.moves = append(p.moves, move{pt, down})
	if p.trace != nil {
		*p.trace = append(*p.trace, p.id)
	}
}

func (p *recordingPen) SetColor(c RGB)          { p.color = c }
func (p *recordingPen) Clear()                  { p.clears++; p.moves = nil }
func (p *recordingPen) SetCursorVisible(v bool) { p.visible = v }
func (p *recordingPen) CursorVisible() bool     { return p.visible }

type recordingCanvas struct {
	w, h  int
	pens  map[int]*recordingPen
	trace []int // pen ids in MoveTo order
}

func newRecordingCanvas(w, h int) *recordingCanvas {
	return &recordingCanvas{w: w, h: h, pens: map[int]*recordingPen{}}
}

func (c *recordingCanvas) Pen(id int) Pen {
	p := &recordingPen{id: id, trace: &c.trace}
	c.pens[id] = p
	return p
}

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }

// manualScheduler queues callbacks until the test fires them.
type manualScheduler struct {
	queue  []func()
	delays []time.Duration
}

func (s *manualScheduler) After(d time.Duration, fn func()) {
	s.delays = append(s.delays, d)
	s.queue = append(s.queue, fn)
}

func (s *manualScheduler) fire() bool {
	if len(s.queue) == 0 {
		return false
	}
	fn := s.queue[0]
	s.queue = s.queue[1:]
	fn()
	return true
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}
