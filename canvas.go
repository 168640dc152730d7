package lcd

import "image"

// Canvas is the set of drawing primitives the renderer needs from a display.
type Canvas interface {
	// ClearRect fills r with the background color bg.
	ClearRect(r Rect, bg Color)

	// FillRect fills r with c.
	FillRect(r Rect, c Color)

	// DrawRectBorder draws a one-pixel outline just inside r.
	DrawRectBorder(r Rect, c Color)

	// DrawPolygon fills the closed polygon and strokes its outline.
	// Either color may be unset to skip that step.
	DrawPolygon(points []Point, fill, outline Color)

	// DrawText draws a single line of text whose (rotated) bounding box has
	// its top-left corner at (x, y).
	DrawText(text string, x, y int, style TextStyle)

	// DrawImage blits src scaled and rotated so its bounding box has its
	// top-left corner at (x, y).
	DrawImage(src image.Image, x, y int, scale float64, rotation Rotation)
}

// TextStyle carries the per-call text attributes.
type TextStyle struct {
	Font     string
	Color    Color
	Rotation Rotation
}

// Theme holds the default colors of a screen.
// Fg/Bg color ordinary content, Fg2/Bg2 button faces and FgH/BgH highlighted
// (selected) elements.
type Theme struct {
	Fg, Bg   Color
	Fg2, Bg2 Color
	FgH, BgH Color
}

// DefaultTheme returns white-on-black with blue highlights.
func DefaultTheme() Theme {
	return Theme{
		Fg:  White,
		Bg:  Black,
		Fg2: White,
		Bg2: RGBColor(0x20, 0x20, 0x40),
		FgH: White,
		BgH: RGBColor(0x00, 0x5f, 0xd7),
	}
}

// paint is the foreground/background a node draws with after inheritance.
type paint struct {
	fg, bg Color
}

func (t Theme) paint() paint {
	return paint{fg: t.Fg, bg: t.Bg}
}

// paint resolves the node's colors against those inherited from its parent.
func (n *Node) paint(inherited paint) paint {
	return paint{fg: n.fg.Or(inherited.fg), bg: n.bg.Or(inherited.bg)}
}
