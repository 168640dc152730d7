package lcd

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-lcd/internal/debug"
	"github.com/grindlemire/go-lcd/internal/layout"
)

// Measure computes intrinsic sizes bottom-up for every Unmeasured node under
// root and returns the root's size. Nodes that are already measured keep
// their cached size, so after a content change only the changed node and its
// ancestors are recomputed.
func Measure(root *Node, m Metrics) Size {
	if root == nil {
		return Size{}
	}
	measureNode(root, m)
	return root.intrinsic
}

func measureNode(n *Node, m Metrics) {
	// Invalidation propagates up, so a measured node guarantees a measured subtree
	if n.state != Unmeasured {
		return
	}

	var content Size
	switch n.kind {
	case KindEmpty:
	case KindText:
		if !n.wrap {
			content = textSize(n, m, n.label)
		}
		// Wrapped text is sized once arrangement knows its width.
		n.lines = nil
	case KindButton:
		content = buttonSize(n, m)
	case KindImage:
		content = imageSize(n)
	case KindCustom:
		if (n.width == unset && !n.fillX) || (n.height == unset && !n.fillY) {
			panic(fmt.Sprintf("lcd: measure: custom node %s needs an explicit size or fill on each axis", n))
		}
	case KindHStack, KindVStack:
		for _, child := range n.children {
			measureNode(child, m)
		}
		inferFill(n)
		content = stackSize(n)
	default:
		panic(fmt.Sprintf("lcd: measure: %s has unknown kind", n))
	}

	n.intrinsic = finishSize(n, content)
	n.state = Measured
}

// finishSize applies rotation, padding and explicit overrides to a content size.
func finishSize(n *Node, content Size) Size {
	if n.rotation.Odd() {
		content = content.Swap()
	}
	return Size{
		Width:  max(content.Width+2*n.pad, n.width),
		Height: max(content.Height+2*n.pad, n.height),
	}
}

// inferFill lets stretch intent propagate outward: a container the author did
// not pin fills along an axis if any child does.
func inferFill(n *Node) {
	var anyX, anyY bool
	for _, child := range n.children {
		anyX = anyX || child.fillX
		anyY = anyY || child.fillY
	}
	if !n.fillXSet {
		n.fillX = anyX
	}
	if !n.fillYSet {
		n.fillY = anyY
	}
}

// stackSize sums children along the main axis and takes the max across it.
func stackSize(n *Node) Size {
	axis := n.axis()
	main, cross := 0, 0
	for _, child := range n.children {
		main += axis.Main(child.intrinsic)
		cross = max(cross, axis.Cross(child.intrinsic))
	}
	return axis.Size(main, cross)
}

func (n *Node) axis() layout.Axis {
	if n.kind == KindVStack {
		return layout.Vertical
	}
	return layout.Horizontal
}

// textSize measures a possibly multi-line label. Unresolvable fonts and
// empty labels measure as zero.
func textSize(n *Node, m Metrics, text string) Size {
	if text == "" {
		return Size{}
	}
	var size Size
	for _, line := range strings.Split(text, "\n") {
		_, s, err := composeLine(m, n.font, line)
		if err != nil {
			debug.Warn("lcd: cannot measure text", "node", n.String(), "font", n.font, "err", err)
			return Size{}
		}
		size.Width = max(size.Width, s.Width)
		size.Height += s.Height
	}
	return size
}

func buttonSize(n *Node, m Metrics) Size {
	var content Size
	if n.source != nil || n.sourceFn != nil {
		content = imageSize(n)
	} else {
		content = textSize(n, m, n.label)
	}
	return Size{
		Width:  content.Width + 2*(ButtonBorder+ButtonPaddingX),
		Height: content.Height + 2*(ButtonBorder+ButtonPaddingY),
	}
}

// imageSize returns the source bitmap's native size times the node's scale.
func imageSize(n *Node) Size {
	img := n.image()
	if img == nil {
		debug.Warn("lcd: image source unavailable", "node", n.String())
		return Size{}
	}
	b := img.Bounds()
	return Size{
		Width:  int(float64(b.Dx()) * n.scale),
		Height: int(float64(b.Dy()) * n.scale),
	}
}

// glyph is one drawable piece of a composed line, x relative to the line start.
type glyph struct {
	text string
	x    int
}

// composeLine splits a line into glyphs honoring backspace composition: a
// glyph following '\b' is drawn over the previous glyph instead of after it.
// Lines without '\b' come back as a single glyph.
func composeLine(m Metrics, font, line string) ([]glyph, Size, error) {
	if !strings.ContainsRune(line, '\b') {
		s, err := m.Measure(font, line)
		if err != nil {
			return nil, Size{}, err
		}
		return []glyph{{text: line}}, s, nil
	}

	var (
		glyphs  []glyph
		size    Size
		cursor  int
		prevX   int
		overlap bool
	)
	for _, r := range line {
		if r == '\b' {
			overlap = true
			continue
		}
		s, err := m.Measure(font, string(r))
		if err != nil {
			return nil, Size{}, err
		}
		x := cursor
		if overlap {
			x = prevX
			overlap = false
		} else {
			prevX = cursor
			cursor += s.Width
		}
		glyphs = append(glyphs, glyph{text: string(r), x: x})
		size.Width = max(size.Width, cursor, x+s.Width)
		size.Height = max(size.Height, s.Height)
	}
	return glyphs, size, nil
}
