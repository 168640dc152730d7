package lcd

import "image"

// Option configures a Node at construction.
type Option func(*Node)

// Opts collects options for the container constructors.
//
//	lcd.HStack(lcd.Opts(lcd.WithFillX()), a, b)
func Opts(opts ...Option) []Option {
	return opts
}

// --- Identity ---

// WithTag names the node so the owning application can find it with Tree.Find.
func WithTag(tag string) Option {
	return func(n *Node) {
		n.tag = tag
	}
}

// --- Layout hints ---

// WithFillX lets the node absorb leftover horizontal space and be stretched horizontally.
func WithFillX() Option {
	return func(n *Node) {
		n.fillX = true
		n.fillXSet = true
	}
}

// WithFillY lets the node absorb leftover vertical space and be stretched vertically.
func WithFillY() Option {
	return func(n *Node) {
		n.fillY = true
		n.fillYSet = true
	}
}

// WithFill sets both fill flags.
func WithFill() Option {
	return func(n *Node) {
		WithFillX()(n)
		WithFillY()(n)
	}
}

// WithNoFillX pins a container's horizontal fill off so it is not inferred from its children.
func WithNoFillX() Option {
	return func(n *Node) {
		n.fillX = false
		n.fillXSet = true
	}
}

// WithNoFillY pins a container's vertical fill off so it is not inferred from its children.
func WithNoFillY() Option {
	return func(n *Node) {
		n.fillY = false
		n.fillYSet = true
	}
}

// WithPad sets padding in pixels on every side.
func WithPad(px int) Option {
	return func(n *Node) {
		n.pad = max(px, 0)
	}
}

// WithHAlign sets horizontal alignment used when the node does not fill.
func WithHAlign(a Align) Option {
	return func(n *Node) {
		n.halign = clampAlign(a)
	}
}

// WithVAlign sets vertical alignment used when the node does not fill.
func WithVAlign(a Align) Option {
	return func(n *Node) {
		n.valign = clampAlign(a)
	}
}

// WithWidth overrides the intrinsic width.
func WithWidth(px int) Option {
	return func(n *Node) {
		n.width = max(px, 0)
	}
}

// WithHeight overrides the intrinsic height.
func WithHeight(px int) Option {
	return func(n *Node) {
		n.height = max(px, 0)
	}
}

// WithSize overrides both intrinsic dimensions.
func WithSize(width, height int) Option {
	return func(n *Node) {
		WithWidth(width)(n)
		WithHeight(height)(n)
	}
}

// WithRotation rotates content by quarter turns.
func WithRotation(r Rotation) Option {
	return func(n *Node) {
		n.rotation = r % 4
	}
}

func clampAlign(a Align) Align {
	switch {
	case a < 0:
		return AlignStart
	case a > 0:
		return AlignEnd
	}
	return AlignCenter
}

// --- Content ---

// WithFont selects the font used to measure and draw the label.
func WithFont(font string) Option {
	return func(n *Node) {
		n.font = font
	}
}

// WithWrap wraps the label to the width the node is given during arrangement.
func WithWrap() Option {
	return func(n *Node) {
		n.wrap = true
	}
}

// WithSource sets the bitmap of an image or button.
func WithSource(src image.Image) Option {
	return func(n *Node) {
		n.source = src
	}
}

// WithSourceFunc sets a function producing the bitmap each time it is needed.
func WithSourceFunc(fn func() image.Image) Option {
	return func(n *Node) {
		n.sourceFn = fn
	}
}

// WithScale scales the source bitmap.
func WithScale(scale float64) Option {
	return func(n *Node) {
		if scale > 0 {
			n.scale = scale
		}
	}
}

// WithDraw sets the draw callback of a custom node.
func WithDraw(fn func(Canvas, *Node)) Option {
	return func(n *Node) {
		n.draw = fn
	}
}

// --- Styling ---

// WithFg sets the foreground color.
func WithFg(c Color) Option {
	return func(n *Node) {
		n.fg = c
	}
}

// WithBg sets the background color. The node's rect is cleared to it before drawing.
func WithBg(c Color) Option {
	return func(n *Node) {
		n.bg = c
	}
}

// WithBorderColor sets the border color of a button.
func WithBorderColor(c Color) Option {
	return func(n *Node) {
		n.border = c
	}
}

// WithSelected draws the node highlighted.
func WithSelected(selected bool) Option {
	return func(n *Node) {
		n.selected = selected
	}
}

// --- Interaction ---

// WithOnPress sets the callback for a short press or tap.
func WithOnPress(fn func(*Node)) Option {
	return func(n *Node) {
		n.onPress = fn
	}
}

// WithOnLongPress sets the callback used instead of OnPress for a long press.
func WithOnLongPress(fn func(*Node)) Option {
	return func(n *Node) {
		n.onLongPress = fn
	}
}

// WithOnTouch makes the whole node area receive taps at the touched point.
func WithOnTouch(fn func(*Node, Point)) Option {
	return func(n *Node) {
		n.onTouch = fn
	}
}

// WithNumber binds an editable numeric value. The node's label shows the formatted value.
func WithNumber(f *NumberField) Option {
	return func(n *Node) {
		n.number = f
	}
}
