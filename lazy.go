package lcd

import (
	"fmt"

	"github.com/grindlemire/go-lcd/internal/debug"
)

// RenderStats summarizes one lazy render.
type RenderStats struct {
	Drawn   int // nodes redrawn, each with its subtree
	Cleared int // stale regions cleared
	Skipped int // visual nodes left untouched
}

// LazyRenderer redraws only what changed since its previous render.
//
// Every node that paints something of its own (a leaf with content, or a
// container whose background differs from its parent's) is identified by a
// hash of its drawing-relevant state. A hash seen on the previous render
// means the node is already on screen. Regions recorded last time whose hash
// did not come back are cleared to the background they were drawn on, in
// reverse of the order they were drawn, and then every new node is drawn.
//
// Two nodes with identical drawing state at the same rect share a hash and
// are treated as one. Because the rect is hashed, that only happens for
// nodes that would paint the same pixels.
//
// A LazyRenderer belongs to a single view and is not safe for concurrent use.
type LazyRenderer struct {
	entries map[uint64]lazyEntry
	order   []uint64
}

type lazyEntry struct {
	rect Rect
	bg   Color
}

// lazyPass holds the working state of one Render call.
type lazyPass struct {
	prev    map[uint64]lazyEntry
	pending map[uint64]struct{}
	next    map[uint64]lazyEntry
	order   []uint64
	draw    []lazyDraw
	theme   Theme
	stats   RenderStats
}

type lazyDraw struct {
	n         *Node
	inherited paint
}

// NewLazyRenderer returns a renderer with an empty cache.
func NewLazyRenderer() *LazyRenderer {
	return &LazyRenderer{}
}

// Render brings the canvas up to date with the arranged tree under root.
// It panics if any node has not been arranged since its last measurement.
func (l *LazyRenderer) Render(c Canvas, m Metrics, root *Node, theme Theme) RenderStats {
	if root == nil {
		return RenderStats{}
	}

	p := &lazyPass{
		prev:    l.entries,
		pending: make(map[uint64]struct{}, len(l.entries)),
		next:    make(map[uint64]lazyEntry, len(l.entries)),
		theme:   theme,
	}
	for h := range l.entries {
		p.pending[h] = struct{}{}
	}

	p.walk(root, theme.paint(), false)

	// Uncover stale regions in the reverse of the order they were painted.
	for i := len(l.order) - 1; i >= 0; i-- {
		h := l.order[i]
		if _, stale := p.pending[h]; !stale {
			continue
		}
		e := l.entries[h]
		c.ClearRect(e.rect, e.bg)
		p.stats.Cleared++
	}

	painter := painter{c: c, m: m, theme: theme}
	for _, d := range p.draw {
		painter.render(d.n, d.inherited)
	}

	l.entries = p.next
	l.order = p.order
	debug.Log("LazyRenderer: drawn=%d cleared=%d skipped=%d", p.stats.Drawn, p.stats.Cleared, p.stats.Skipped)
	return p.stats
}

// Forget drops the cache so the next Render draws everything.
func (l *LazyRenderer) Forget() {
	l.entries = nil
	l.order = nil
}

// walk visits n with the paint of its parent. Inside a subtree that is
// already scheduled for drawing (forced), nodes are only recorded.
func (p *lazyPass) walk(n *Node, inherited paint, forced bool) {
	if n.state != Arranged {
		panic(fmt.Sprintf("lcd: lazy render: %s is %s, not arranged", n, n.state))
	}
	pt := n.paint(inherited)

	if paintsItself(n, inherited) {
		h := nodeHash(n, pt, p.theme)
		delete(p.pending, h)
		p.record(h, n.rect, inherited.bg)

		if !forced {
			if _, seen := p.prev[h]; seen {
				p.stats.Skipped++
			} else {
				p.draw = append(p.draw, lazyDraw{n: n, inherited: inherited})
				p.stats.Drawn++
				forced = true
			}
		}
	}

	for _, child := range n.children {
		p.walk(child, pt, forced)
	}
}

func (p *lazyPass) record(h uint64, r Rect, bg Color) {
	if _, dup := p.next[h]; dup {
		return
	}
	p.next[h] = lazyEntry{rect: r, bg: bg}
	p.order = append(p.order, h)
}

// paintsItself reports whether n draws anything apart from its children.
func paintsItself(n *Node, inherited paint) bool {
	switch n.kind {
	case KindText, KindButton, KindImage, KindCustom:
		return true
	}
	return !n.bg.IsDefault() && !n.bg.Equal(inherited.bg)
}
