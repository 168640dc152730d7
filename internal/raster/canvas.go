package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/grindlemire/go-lcd"
	"github.com/grindlemire/go-lcd/internal/debug"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Canvas draws onto an RGBA image.
type Canvas struct {
	img   *image.RGBA
	faces Faces
}

var _ lcd.Canvas = (*Canvas)(nil)

// NewCanvas returns a black width x height canvas. A nil face set uses
// DefaultFaces.
func NewCanvas(width, height int, faces Faces) *Canvas {
	if faces == nil {
		faces = DefaultFaces()
	}
	c := &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		faces: faces,
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return c
}

// Image returns the backing image. It is live: later draws show up in it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the canvas area as a Rect.
func (c *Canvas) Bounds() lcd.Rect {
	b := c.img.Bounds()
	return lcd.NewRect(b.Min.X, b.Min.Y, b.Dx(), b.Dy())
}

func toRectangle(r lcd.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

// ClearRect implements lcd.Canvas.
func (c *Canvas) ClearRect(r lcd.Rect, bg lcd.Color) {
	c.FillRect(r, bg)
}

// FillRect implements lcd.Canvas. An unset color draws nothing.
func (c *Canvas) FillRect(r lcd.Rect, col lcd.Color) {
	if col.IsDefault() || r.IsEmpty() {
		return
	}
	draw.Draw(c.img, toRectangle(r), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawRectBorder implements lcd.Canvas.
func (c *Canvas) DrawRectBorder(r lcd.Rect, col lcd.Color) {
	if r.IsEmpty() {
		return
	}
	c.FillRect(lcd.NewRect(r.X, r.Y, r.Width, 1), col)
	c.FillRect(lcd.NewRect(r.X, r.Bottom()-1, r.Width, 1), col)
	c.FillRect(lcd.NewRect(r.X, r.Y, 1, r.Height), col)
	c.FillRect(lcd.NewRect(r.Right()-1, r.Y, 1, r.Height), col)
}

// DrawPolygon implements lcd.Canvas. The outline is plotted through the
// vertex pixels themselves.
func (c *Canvas) DrawPolygon(points []lcd.Point, fill, outline lcd.Color) {
	if len(points) < 2 {
		return
	}
	if !fill.IsDefault() && len(points) > 2 {
		b := c.img.Bounds()
		z := vector.NewRasterizer(b.Dx(), b.Dy())
		z.MoveTo(float32(points[0].X), float32(points[0].Y))
		for _, p := range points[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
		z.Draw(c.img, b, image.NewUniform(fill), image.Point{})
	}
	if outline.IsDefault() {
		return
	}
	for i, p := range points {
		q := points[(i+1)%len(points)]
		c.line(p, q, outline)
	}
}

// line plots a Bresenham line from p to q inclusive.
func (c *Canvas) line(p, q lcd.Point, col color.Color) {
	dx := abs(q.X - p.X)
	dy := -abs(q.Y - p.Y)
	sx, sy := 1, 1
	if p.X > q.X {
		sx = -1
	}
	if p.Y > q.Y {
		sy = -1
	}
	e := dx + dy
	x, y := p.X, p.Y
	for {
		c.img.Set(x, y, col)
		if x == q.X && y == q.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawText implements lcd.Canvas. Unknown fonts are logged and skipped.
func (c *Canvas) DrawText(text string, x, y int, style lcd.TextStyle) {
	face, err := c.faces.face(style.Font)
	if err != nil {
		debug.Warn("raster: draw text", "err", err)
		return
	}
	if text == "" || style.Color.IsDefault() {
		return
	}

	m := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	h := m.Height.Ceil()
	if w <= 0 || h <= 0 {
		return
	}

	// Glyphs are rendered upright into a scratch image and turned afterwards.
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(style.Color),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(text)

	out := rotate(tmp, style.Rotation)
	dst := out.Bounds().Add(image.Pt(x, y))
	draw.Draw(c.img, dst, out, image.Point{}, draw.Over)
}

// DrawImage implements lcd.Canvas using nearest neighbor scaling.
func (c *Canvas) DrawImage(src image.Image, x, y int, scale float64, rotation lcd.Rotation) {
	sb := src.Bounds()
	w := int(float64(sb.Dx()) * scale)
	h := int(float64(sb.Dy()) * scale)
	if w <= 0 || h <= 0 {
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, sb, xdraw.Src, nil)

	out := rotate(scaled, rotation)
	dst := out.Bounds().Add(image.Pt(x, y))
	draw.Draw(c.img, dst, out, image.Point{}, draw.Over)
}
