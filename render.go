package lcd

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-lcd/internal/debug"
	"github.com/grindlemire/go-lcd/internal/layout"
)

// RenderFull draws the arranged tree rooted at root depth-first.
// It panics if root has not been arranged since its last measurement.
func RenderFull(c Canvas, m Metrics, root *Node, theme Theme) {
	if root == nil {
		return
	}
	p := painter{c: c, m: m, theme: theme}
	p.render(root, theme.paint())
}

// painter dispatches draw calls per node kind.
type painter struct {
	c     Canvas
	m     Metrics
	theme Theme
}

// render draws n and its subtree. inherited is the paint of n's parent.
func (p painter) render(n *Node, inherited paint) {
	if n.state != Arranged {
		panic(fmt.Sprintf("lcd: render: %s is %s, not arranged", n, n.state))
	}

	pt := n.paint(inherited)
	if !n.bg.IsDefault() {
		p.c.ClearRect(n.rect, n.bg)
	}

	switch n.kind {
	case KindEmpty:
	case KindText:
		p.renderText(n, pt)
	case KindButton:
		p.renderButton(n, pt)
	case KindImage:
		p.renderImage(n, n.rect.Inset(n.pad))
	case KindCustom:
		if n.draw != nil {
			n.draw(p.c, n)
		}
	case KindHStack, KindVStack:
		for _, child := range n.children {
			p.render(child, pt)
		}
	default:
		panic(fmt.Sprintf("lcd: render: %s has unknown kind", n))
	}
}

func (p painter) renderText(n *Node, pt paint) {
	if n.label == "" {
		return
	}
	lines := n.lines
	if !n.wrap {
		lines = strings.Split(n.label, "\n")
	}
	p.drawLines(n, lines, n.rect.Inset(n.pad), TextStyle{
		Font:     n.font,
		Color:    pt.fg,
		Rotation: n.rotation,
	})
}

// drawLines lays lines out top to bottom in unrotated text space, aligns the
// block inside box, and maps every glyph through the node's rotation.
func (p painter) drawLines(n *Node, lines []string, box Rect, style TextStyle) {
	type placed struct {
		glyphs []glyph
		size   Size
	}
	block := Size{}
	rows := make([]placed, 0, len(lines))
	for _, line := range lines {
		glyphs, size, err := composeLine(p.m, n.font, line)
		if err != nil {
			debug.Warn("lcd: cannot draw text", "node", n.String(), "font", n.font, "err", err)
			return
		}
		rows = append(rows, placed{glyphs: glyphs, size: size})
		block.Width = max(block.Width, size.Width)
		block.Height += size.Height
	}

	screen := block
	if n.rotation.Odd() {
		screen = screen.Swap()
	}
	origin := Point{
		X: box.X + layout.AlignOffset(int(n.halign), box.Width-screen.Width),
		Y: box.Y + layout.AlignOffset(int(n.valign), box.Height-screen.Height),
	}

	y := 0
	for _, row := range rows {
		// Lines align within the block the same way the block aligns in the box.
		x := layout.AlignOffset(int(n.halign), block.Width-row.size.Width)
		for _, g := range row.glyphs {
			gs, err := p.m.Measure(n.font, g.text)
			if err != nil {
				continue
			}
			local := NewRect(x+g.x, y, gs.Width, row.size.Height)
			at := rotateRect(local, block, n.rotation).Translate(origin.X, origin.Y)
			p.c.DrawText(g.text, at.X, at.Y, style)
		}
		y += row.size.Height
	}
}

// rotateRect maps r, given in the unrotated coordinates of a block, to the
// coordinates of the block rotated clockwise by rot quarter turns.
func rotateRect(r Rect, block Size, rot Rotation) Rect {
	switch rot {
	case Rotate90:
		return NewRect(block.Height-r.Bottom(), r.X, r.Height, r.Width)
	case Rotate180:
		return NewRect(block.Width-r.Right(), block.Height-r.Bottom(), r.Width, r.Height)
	case Rotate270:
		return NewRect(r.Y, block.Width-r.Right(), r.Height, r.Width)
	}
	return r
}

func (p painter) renderButton(n *Node, pt paint) {
	face := p.theme.Bg2
	fg := n.fg.Or(p.theme.Fg2)
	if n.selected {
		face, fg = p.theme.BgH, p.theme.FgH
	}
	if n.editing {
		face, fg = fg, face
	}
	border := n.border.Or(fg)

	r := n.rect.Inset(n.pad)
	if cornerCut(r) == 0 {
		p.c.FillRect(r, face)
		p.c.DrawRectBorder(r, border)
	} else {
		p.c.DrawPolygon(roundedRect(r), face, border)
	}

	inner := r.Inset(ButtonBorder)
	if n.source != nil || n.sourceFn != nil {
		p.renderImage(n, inner)
		return
	}
	if n.label == "" {
		return
	}
	p.drawLines(n, strings.Split(n.label, "\n"), inner, TextStyle{
		Font:     n.font,
		Color:    fg,
		Rotation: n.rotation,
	})
}

// cornerCut is how far roundedRect cuts into each corner of r.
func cornerCut(r Rect) int {
	return min(4, r.Width/4, r.Height/4)
}

// roundedRect returns the outline of r with corners cut diagonally.
func roundedRect(r Rect) []Point {
	c := cornerCut(r)
	x1, y1 := r.X, r.Y
	x2, y2 := r.Right()-1, r.Bottom()-1
	return []Point{
		{X: x1 + c, Y: y1}, {X: x2 - c, Y: y1},
		{X: x2, Y: y1 + c}, {X: x2, Y: y2 - c},
		{X: x2 - c, Y: y2}, {X: x1 + c, Y: y2},
		{X: x1, Y: y2 - c}, {X: x1, Y: y1 + c},
	}
}

// renderImage draws the node's source aligned inside box.
func (p painter) renderImage(n *Node, box Rect) {
	img := n.image()
	if img == nil {
		return
	}
	b := img.Bounds()
	size := Size{Width: int(float64(b.Dx()) * n.scale), Height: int(float64(b.Dy()) * n.scale)}
	if n.rotation.Odd() {
		size = size.Swap()
	}
	x := box.X + layout.AlignOffset(int(n.halign), box.Width-size.Width)
	y := box.Y + layout.AlignOffset(int(n.valign), box.Height-size.Height)
	p.c.DrawImage(img, x, y, n.scale, n.rotation)
}
