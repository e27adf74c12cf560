// Package render draws curves off screen with gogpu/gg.
//
// A Canvas records what every pen draws as coloured polylines and rasterizes
// them on demand, so single curves can be erased without repainting the rest.
package render

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/spirograph/internal/spiro"
)

type polyline struct {
	color  spiro.RGB
	points []spiro.Point
}

type pen struct {
	lines   []polyline
	color   spiro.RGB
	visible bool
}

func (p *pen) MoveTo(pt spiro.Point, down bool) {
	n := len(p.lines)
	switch {
	case !down || n == 0:
		p.lines = append(p.lines, polyline{color: p.color})
	case p.lines[n-1].color != p.color:
		// Carry the last point over so the colour change leaves no gap.
		last := p.lines[n-1].points
		p.lines = append(p.lines, polyline{color: p.color, points: []spiro.Point{last[len(last)-1]}})
	}
	cur := &p.lines[len(p.lines)-1]
	cur.points = append(cur.points, pt)
}

func (p *pen) SetColor(c spiro.RGB)    { p.color = c }
func (p *pen) Clear()                  { p.lines = nil }
func (p *pen) SetCursorVisible(v bool) { p.visible = v }
func (p *pen) CursorVisible() bool     { return p.visible }

// Canvas implements spiro.Canvas without a window.
type Canvas struct {
	width, height int
	lineWidth     float64
	pens          []*pen
}

// NewCanvas returns an empty w×h canvas stroking lines lineWidth pixels wide.
func NewCanvas(w, h int, lineWidth float64) *Canvas {
	return &Canvas{width: w, height: h, lineWidth: lineWidth}
}

func (c *Canvas) Pen(id int) spiro.Pen {
	for len(c.pens) <= id {
		c.pens = append(c.pens, &pen{visible: true})
	}
	return c.pens[id]
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Segments counts the drawn line segments across all pens.
func (c *Canvas) Segments() int {
	n := 0
	for _, p := range c.pens {
		for _, l := range p.lines {
			n += max(len(l.points)-1, 0)
		}
	}
	return n
}

// Draw rasterizes every pen in id order onto a new gg context filled with
// background. The caller closes the context.
func (c *Canvas) Draw(background gg.RGBA) (*gg.Context, error) {
	dc := gg.NewContext(c.width, c.height)
	dc.ClearWithColor(background)
	dc.SetLineWidth(c.lineWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	for _, p := range c.pens {
		for _, l := range p.lines {
			if len(l.points) < 2 {
				continue
			}
			dc.SetRGB(l.color.R, l.color.G, l.color.B)
			dc.MoveTo(spiro.ToScreen(l.points[0], c.width, c.height))
			for _, pt := range l.points[1:] {
				dc.LineTo(spiro.ToScreen(pt, c.width, c.height))
			}
			if err := dc.Stroke(); err != nil {
				dc.Close()
				return nil, err
			}
		}
	}
	return dc, nil
}

// Image rasterizes the canvas and returns the pixels.
func (c *Canvas) Image(background gg.RGBA) (image.Image, error) {
	dc, err := c.Draw(background)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}
