package lcd

import (
	"fmt"
	"image"
	"strings"
)

// OpKind names a recorded canvas call.
type OpKind string

const (
	OpClearRect OpKind = "clear"
	OpFillRect  OpKind = "fill"
	OpBorder    OpKind = "border"
	OpPolygon   OpKind = "polygon"
	OpText      OpKind = "text"
	OpImage     OpKind = "image"
)

// Op is one recorded canvas call. Only the fields relevant to Kind are set.
type Op struct {
	Kind     OpKind
	Rect     Rect
	Color    Color
	Outline  Color
	Points   []Point
	Text     string
	At       Point
	Font     string
	Rotation Rotation
	Scale    float64
}

// String renders the op compactly for test failure output.
func (o Op) String() string {
	switch o.Kind {
	case OpClearRect, OpFillRect, OpBorder:
		return fmt.Sprintf("%s(%d,%d %dx%d %s)", o.Kind, o.Rect.X, o.Rect.Y, o.Rect.Width, o.Rect.Height, o.Color)
	case OpPolygon:
		return fmt.Sprintf("polygon(%d pts %s/%s)", len(o.Points), o.Color, o.Outline)
	case OpText:
		return fmt.Sprintf("text(%q @%d,%d %s)", o.Text, o.At.X, o.At.Y, o.Color)
	case OpImage:
		return fmt.Sprintf("image(@%d,%d x%g r%d)", o.At.X, o.At.Y, o.Scale, o.Rotation)
	}
	return string(o.Kind)
}

// RecordingCanvas is a Canvas for testing.
// It records every call in order instead of drawing.
type RecordingCanvas struct {
	ops []Op
}

// Ensure RecordingCanvas implements Canvas.
var _ Canvas = (*RecordingCanvas)(nil)

// NewRecordingCanvas creates an empty recording canvas.
func NewRecordingCanvas() *RecordingCanvas {
	return &RecordingCanvas{}
}

// ClearRect records a clear.
func (c *RecordingCanvas) ClearRect(r Rect, bg Color) {
	c.ops = append(c.ops, Op{Kind: OpClearRect, Rect: r, Color: bg})
}

// FillRect records a fill.
func (c *RecordingCanvas) FillRect(r Rect, col Color) {
	c.ops = append(c.ops, Op{Kind: OpFillRect, Rect: r, Color: col})
}

// DrawRectBorder records a border.
func (c *RecordingCanvas) DrawRectBorder(r Rect, col Color) {
	c.ops = append(c.ops, Op{Kind: OpBorder, Rect: r, Color: col})
}

// DrawPolygon records a polygon.
func (c *RecordingCanvas) DrawPolygon(points []Point, fill, outline Color) {
	pts := append([]Point(nil), points...)
	c.ops = append(c.ops, Op{Kind: OpPolygon, Points: pts, Color: fill, Outline: outline})
}

// DrawText records a text draw.
func (c *RecordingCanvas) DrawText(text string, x, y int, style TextStyle) {
	c.ops = append(c.ops, Op{
		Kind:     OpText,
		Text:     text,
		At:       Point{X: x, Y: y},
		Color:    style.Color,
		Font:     style.Font,
		Rotation: style.Rotation,
	})
}

// DrawImage records an image blit.
func (c *RecordingCanvas) DrawImage(_ image.Image, x, y int, scale float64, rotation Rotation) {
	c.ops = append(c.ops, Op{Kind: OpImage, At: Point{X: x, Y: y}, Scale: scale, Rotation: rotation})
}

// Ops returns the recorded calls.
func (c *RecordingCanvas) Ops() []Op {
	return c.ops
}

// OpsOf returns the recorded calls of one kind.
func (c *RecordingCanvas) OpsOf(kind OpKind) []Op {
	var out []Op
	for _, op := range c.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the strings passed to DrawText, in order.
func (c *RecordingCanvas) Texts() []string {
	var out []string
	for _, op := range c.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset forgets all recorded calls.
func (c *RecordingCanvas) Reset() {
	c.ops = nil
}

// String lists the recorded calls one per line.
func (c *RecordingCanvas) String() string {
	var sb strings.Builder
	for _, op := range c.ops {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
