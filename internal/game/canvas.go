package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/spirograph/internal/spiro"
)

// layerPen draws one curve onto its own offscreen layer so the curve can be
// cleared without touching the others.
type layerPen struct {
	canvas  *canvas
	layer   *ebiten.Image // created on first stroke
	pos     spiro.Point
	heading float64 // radians, canvas space
	color   color.RGBA
	visible bool
}

func (p *layerPen) MoveTo(pt spiro.Point, down bool) {
	if pt != p.pos {
		p.heading = math.Atan2(pt.Y-p.pos.Y, pt.X-p.pos.X)
	}
	if down {
		w, h := p.canvas.w, p.canvas.h
		x0, y0 := spiro.ToScreen(p.pos, w, h)
		x1, y1 := spiro.ToScreen(pt, w, h)
		vector.StrokeLine(p.img(), float32(x0), float32(y0), float32(x1), float32(y1), p.canvas.lineWidth, p.color, true)
	}
	p.pos = pt
}

func (p *layerPen) SetColor(c spiro.RGB) {
	p.color = c.RGBA()
}

func (p *layerPen) Clear() {
	if p.layer != nil {
		p.layer.Clear()
	}
}

func (p *layerPen) SetCursorVisible(v bool) { p.visible = v }
func (p *layerPen) CursorVisible() bool     { return p.visible }

func (p *layerPen) img() *ebiten.Image {
	if p.layer == nil {
		p.layer = ebiten.NewImage(p.canvas.w, p.canvas.h)
	}
	return p.layer
}

// drawCursor paints the turtle: a dot with a short nose along the heading.
func (p *layerPen) drawCursor(dst *ebiten.Image, size float32) {
	if !p.visible || size <= 0 {
		return
	}
	x, y := spiro.ToScreen(p.pos, p.canvas.w, p.canvas.h)
	nx := x + float64(size)*1.5*math.Cos(p.heading)
	ny := y - float64(size)*1.5*math.Sin(p.heading)

	vector.StrokeLine(dst, float32(x), float32(y), float32(nx), float32(ny), size/3, p.color, true)
	vector.DrawFilledCircle(dst, float32(x), float32(y), size/2, p.color, true)
	vector.StrokeCircle(dst, float32(x), float32(y), size/2, 1, cursorOutline, true)
}

var cursorOutline = color.RGBA{R: 40, G: 40, B: 40, A: 200}

// canvas implements spiro.Canvas on ebiten images.
type canvas struct {
	w, h      int
	lineWidth float32
	pens      []*layerPen
}

func newCanvas(w, h int, lineWidth float64) *canvas {
	return &canvas{w: w, h: h, lineWidth: float32(lineWidth)}
}

func (c *canvas) Pen(id int) spiro.Pen {
	for len(c.pens) <= id {
		c.pens = append(c.pens, &layerPen{canvas: c, visible: true})
	}
	return c.pens[id]
}

func (c *canvas) Size() (int, int) {
	return c.w, c.h
}

// drawLayers composes every pen layer onto dst in pen order.
func (c *canvas) drawLayers(dst *ebiten.Image) {
	for _, p := range c.pens {
		if p.layer != nil {
			dst.DrawImage(p.layer, nil)
		}
	}
}

func (c *canvas) drawCursors(dst *ebiten.Image, size int) {
	for _, p := range c.pens {
		p.drawCursor(dst, float32(size))
	}
}

// snapshot renders background and curves, without cursors, into memory.
func (c *canvas) snapshot(background color.Color) *image.RGBA {
	off := ebiten.NewImage(c.w, c.h)
	defer off.Deallocate()
	off.Fill(background)
	c.drawLayers(off)

	img := image.NewRGBA(image.Rect(0, 0, c.w, c.h))
	off.ReadPixels(img.Pix)
	return img
}
