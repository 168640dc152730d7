package lcd

import "image"

// Kind returns the node variant.
func (n *Node) Kind() Kind { return n.kind }

// ID returns the depth-first index assigned by NewTree, or -1 before that.
func (n *Node) ID() int { return n.id }

// Tag returns the tag set with WithTag.
func (n *Node) Tag() string { return n.tag }

// Parent returns the owning container, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the container's children.
func (n *Node) Children() []*Node { return n.children }

// Label returns the text of a text or button node.
func (n *Node) Label() string { return n.label }

// Font returns the font identifier.
func (n *Node) Font() string { return n.font }

// Pad returns padding in pixels.
func (n *Node) Pad() int { return n.pad }

// Rotation returns the quarter-turn rotation.
func (n *Node) Rotation() Rotation { return n.rotation }

// FillX reports whether the node fills horizontally, including fill inferred from children.
func (n *Node) FillX() bool { return n.fillX }

// FillY reports whether the node fills vertically, including fill inferred from children.
func (n *Node) FillY() bool { return n.fillY }

// Fg returns the node's own foreground color.
func (n *Node) Fg() Color { return n.fg }

// Bg returns the node's own background color.
func (n *Node) Bg() Color { return n.bg }

// Selected reports whether the node is highlighted.
func (n *Node) Selected() bool { return n.selected }

// Editing reports whether the node's numeric value is being edited.
func (n *Node) Editing() bool { return n.editing }

// Number returns the bound numeric field, or nil.
func (n *Node) Number() *NumberField { return n.number }

// State returns the node's position in the layout cycle.
func (n *Node) State() NodeState { return n.state }

// IntrinsicSize returns the measured size including padding and explicit overrides.
// Only meaningful once the node has been measured.
func (n *Node) IntrinsicSize() Size { return n.intrinsic }

// Rect returns the arranged absolute rectangle.
// Only meaningful once the node has been arranged.
func (n *Node) Rect() Rect { return n.rect }

// Lines returns the label lines computed for a wrapped text node during arrangement.
func (n *Node) Lines() []string { return n.lines }

// --- Mutators ---
// Content changes that can affect size reset the node and its ancestors to
// Unmeasured. Pure styling changes leave geometry valid; the lazy renderer
// picks them up through the node hash.

// SetLabel replaces the label.
func (n *Node) SetLabel(label string) {
	if n.label == label {
		return
	}
	n.label = label
	n.invalidateLayout()
}

// SetFont replaces the font.
func (n *Node) SetFont(font string) {
	if n.font == font {
		return
	}
	n.font = font
	n.invalidateLayout()
}

// SetSource replaces the bitmap of an image or button.
func (n *Node) SetSource(src image.Image) {
	n.source = src
	n.sourceFn = nil
	n.invalidateLayout()
}

// SetSize replaces the explicit size. Pass -1 to clear a dimension.
func (n *Node) SetSize(width, height int) {
	if width < 0 {
		width = unset
	}
	if height < 0 {
		height = unset
	}
	if n.width == width && n.height == height {
		return
	}
	n.width, n.height = width, height
	n.invalidateLayout()
}

// SetFg replaces the foreground color.
func (n *Node) SetFg(c Color) { n.fg = c }

// SetBg replaces the background color.
func (n *Node) SetBg(c Color) { n.bg = c }

// SetBorderColor replaces the button border color.
func (n *Node) SetBorderColor(c Color) { n.border = c }

// SetSelected toggles the highlight.
func (n *Node) SetSelected(selected bool) { n.selected = selected }

// Invalidate forces the lazy renderer to redraw the node, for content drawn
// by a callback that the engine cannot see.
func (n *Node) Invalidate() { n.revision++ }

// invalidateLayout marks this node and all ancestors as Unmeasured.
func (n *Node) invalidateLayout() {
	for node := n; node != nil && node.state != Unmeasured; node = node.parent {
		node.state = Unmeasured
	}
}
