package lcd

import (
	"fmt"

	"github.com/grindlemire/go-lcd/internal/debug"
	"github.com/grindlemire/go-lcd/internal/layout"
)

// Arrange assigns absolute rectangles top-down. The root receives r, which is
// normally the host's usable screen area. Every node must have been measured.
//
// Wrapped text learns its height only here. When that changes a container's
// required size, the smallest affected subtree is arranged once more; there
// is never more than one extra pass.
func Arrange(root *Node, r Rect, m Metrics) {
	if root == nil {
		return
	}
	a := arranger{m: m}
	a.arrange(root, r)
	if len(a.grown) > 0 {
		a.rearrange()
	}
}

type arranger struct {
	m      Metrics
	grown  []*Node // wrapped text whose size changed this pass
	second bool
}

func (a *arranger) arrange(n *Node, r Rect) {
	if n.state == Unmeasured {
		panic(fmt.Sprintf("lcd: arrange: %s not measured", n))
	}
	n.rect = r

	switch n.kind {
	case KindHStack, KindVStack:
		a.arrangeStack(n, r)
	case KindText:
		if n.wrap {
			a.wrapText(n)
		}
	}
	n.state = Arranged
}

// arrangeStack distributes the container's main axis among its children.
//
// Children take their intrinsic main size. Leftover space goes to fill
// children in equal shares with the remainder on the last fill child; with
// no fill child the content is centered instead. On the cross axis a fill
// child is stretched to the inner size and any other child is placed by its
// alignment.
func (a *arranger) arrangeStack(n *Node, r Rect) {
	axis := n.axis()
	horizontal := axis == layout.Horizontal

	containerMain := axis.Main(r.Size())
	innerCross := axis.Cross(r.Size()) - 2*n.pad
	mainPos, crossPos := axis.Origin(r.Inset(n.pad))

	fixed := 0
	fill := make([]bool, len(n.children))
	for i, child := range n.children {
		fixed += axis.Main(child.intrinsic)
		fill[i] = child.axisFill(horizontal)
	}
	slack := containerMain - fixed - 2*n.pad

	extra := layout.Distribute(slack, fill)
	if extra == nil {
		mainPos += layout.LeadingOffset(slack)
	}

	for i, child := range n.children {
		size := axis.Main(child.intrinsic)
		if extra != nil {
			size += extra[i]
		}

		cross := axis.Cross(child.intrinsic)
		if child.axisFill(!horizontal) {
			cross = innerCross
		}
		offset := layout.AlignOffset(int(child.axisAlign(!horizontal)), innerCross-cross)

		a.arrange(child, axis.Rect(mainPos, crossPos+offset, size, cross))
		mainPos += size
	}
}

// wrapText breaks the label against the arranged width and records the
// height it needs.
func (a *arranger) wrapText(n *Node) {
	width := n.rect.Width
	if n.rotation.Odd() {
		width = n.rect.Height
	}
	width -= 2 * n.pad

	n.lines = nil
	var content Size
	if n.label != "" {
		lines, err := a.m.Wrap(n.font, n.label, max(width, 0))
		if err == nil {
			var lh int
			lh, err = a.m.LineHeight(n.font)
			content.Height = len(lines) * lh
		}
		if err != nil {
			debug.Warn("lcd: cannot wrap text", "node", n.String(), "font", n.font, "err", err)
			content = Size{}
		} else {
			n.lines = lines
		}
	}

	need := finishSize(n, content)
	if need == n.intrinsic || a.second {
		return
	}
	n.intrinsic = need
	a.grown = append(a.grown, n)
}

// rearrange re-derives container sizes above each grown node and arranges
// the topmost affected subtrees again with their existing rects.
func (a *arranger) rearrange() {
	a.second = true

	var tops []*Node
	for _, n := range a.grown {
		top := n
		for p := n.parent; p != nil; p = p.parent {
			before := p.intrinsic
			p.intrinsic = finishSize(p, stackSize(p))
			top = p
			if p.intrinsic == before {
				break
			}
		}
		tops = appendTop(tops, top)
	}

	debug.Log("Arrange: wrapped text changed size, re-arranging %d subtree(s)", len(tops))
	for _, top := range tops {
		a.arrange(top, top.rect)
	}
}

// appendTop adds n unless it or an ancestor is already listed, and drops
// listed descendants of n.
func appendTop(tops []*Node, n *Node) []*Node {
	for _, t := range tops {
		if isAncestor(t, n) {
			return tops
		}
	}
	kept := tops[:0]
	for _, t := range tops {
		if !isAncestor(n, t) {
			kept = append(kept, t)
		}
	}
	return append(kept, n)
}

// isAncestor reports whether a is n or one of n's ancestors.
func isAncestor(a, n *Node) bool {
	for p := n; p != nil; p = p.parent {
		if p == a {
			return true
		}
	}
	return false
}
