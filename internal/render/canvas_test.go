package render

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"

	"github.com/iburimskiy/spirograph/internal/spiro"
)

func TestPenSplitsOnPenUp(t *testing.T) {
	c := NewCanvas(200, 200, 1)
	p := c.Pen(0)
	p.SetColor(spiro.Black)
	p.MoveTo(spiro.Pt(0, 0), false)
	p.MoveTo(spiro.Pt(10, 0), true)
	p.MoveTo(spiro.Pt(10, 10), true)
	p.MoveTo(spiro.Pt(50, 50), false)
	p.MoveTo(spiro.Pt(60, 50), true)

	got := c.pens[0].lines
	want := []polyline{
		{color: spiro.Black, points: []spiro.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}},
		{color: spiro.Black, points: []spiro.Point{{X: 50, Y: 50}, {X: 60, Y: 50}}},
	}
	if d := cmp.Diff(want, got, cmp.AllowUnexported(polyline{})); d != "" {
		t.Errorf("polylines mismatch (-want +got):\n%s", d)
	}
	if c.Segments() != 3 {
		t.Errorf("Segments() = %d, want 3", c.Segments())
	}
}

func TestPenColourChangeKeepsJoin(t *testing.T) {
	c := NewCanvas(200, 200, 1)
	p := c.Pen(0)
	p.MoveTo(spiro.Pt(0, 0), false)
	p.MoveTo(spiro.Pt(10, 0), true)
	p.SetColor(spiro.RGB{R: 1})
	p.MoveTo(spiro.Pt(20, 0), true)

	lines := c.pens[0].lines
	if len(lines) != 2 {
		t.Fatalf("got %d polylines, want 2", len(lines))
	}
	if d := cmp.Diff([]spiro.Point{{X: 10, Y: 0}, {X: 20, Y: 0}}, lines[1].points); d != "" {
		t.Errorf("second polyline (-want +got):\n%s", d)
	}
}

func TestPenClear(t *testing.T) {
	c := NewCanvas(200, 200, 1)
	a, b := c.Pen(0), c.Pen(1)
	for _, p := range []spiro.Pen{a, b} {
		p.MoveTo(spiro.Pt(0, 0), false)
		p.MoveTo(spiro.Pt(5, 5), true)
	}
	a.Clear()
	if c.Segments() != 1 {
		t.Errorf("Segments() after clearing one pen = %d, want 1", c.Segments())
	}
}

func TestDrawCurve(t *testing.T) {
	const w, h = 240, 240
	c := NewCanvas(w, h, 2)
	params, err := spiro.NewParams(100, 40, 0.5, spiro.Point{}, spiro.RGB{B: 1})
	if err != nil {
		t.Fatal(err)
	}
	curve := spiro.NewCurve(c.Pen(0), params)
	curve.DrawFull(5)

	// 144 steps plus the zero-length segment DrawFull starts with.
	if c.Segments() != 145 {
		t.Errorf("Segments() = %d, want 145", c.Segments())
	}

	img, err := c.Image(gg.RGB(1, 1, 1))
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("bounds = %v, want %dx%d", b, w, h)
	}

	// The curve starts at (80, 0) in canvas space, (200, 120) on screen.
	r, g, b, _ := img.At(200, 120).RGBA()
	if b>>8 < 128 || r>>8 > 200 || g>>8 > 200 {
		t.Errorf("start pixel = %d,%d,%d, want blue-ish", r>>8, g>>8, b>>8)
	}
	// The centre of this curve is never visited.
	r, g, b, _ = img.At(120, 120).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("centre pixel = %d,%d,%d, want background", r>>8, g>>8, b>>8)
	}
}
