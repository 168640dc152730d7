package lcd

import "github.com/grindlemire/go-lcd/internal/debug"

// FocusManager tracks which focusable node the physical buttons act on.
// Nodes are kept in registration order, which the view sets to depth-first
// tree order. Focus shows on screen as the node's selected flag.
//
// Nothing is focused until the first Next, Prev or SetFocus.
type FocusManager struct {
	nodes   []*Node
	current int // -1 = none
}

// NewFocusManager creates an empty FocusManager.
func NewFocusManager() *FocusManager {
	return &FocusManager{current: -1}
}

// Register appends n to the traversal order.
func (f *FocusManager) Register(n *Node) {
	f.nodes = append(f.nodes, n)
	debug.Log("FocusManager.Register: %s (total=%d)", n, len(f.nodes))
}

// Unregister removes n. If n was focused, focus moves to the node that took
// its place, wrapping to the first node.
func (f *FocusManager) Unregister(n *Node) {
	idx := f.indexOf(n)
	if idx == -1 {
		return
	}

	wasFocused := idx == f.current
	if wasFocused {
		n.selected = false
	}
	f.nodes = append(f.nodes[:idx], f.nodes[idx+1:]...)

	switch {
	case len(f.nodes) == 0:
		f.current = -1
	case wasFocused:
		f.current = idx % len(f.nodes)
		f.nodes[f.current].selected = true
	case idx < f.current:
		f.current--
	}
}

// Len returns the number of registered nodes.
func (f *FocusManager) Len() int {
	return len(f.nodes)
}

// Index returns the focused position in traversal order, or -1.
func (f *FocusManager) Index() int {
	return f.current
}

// Focused returns the focused node, or nil.
func (f *FocusManager) Focused() *Node {
	if f.current < 0 || f.current >= len(f.nodes) {
		return nil
	}
	return f.nodes[f.current]
}

// SetFocus focuses n. Does nothing if n is not registered.
func (f *FocusManager) SetFocus(n *Node) {
	idx := f.indexOf(n)
	if idx == -1 {
		return
	}
	f.focus(idx)
}

// Next moves focus forward, wrapping from the last node to the first.
func (f *FocusManager) Next() {
	f.Move(1)
}

// Prev moves focus backward, wrapping from the first node to the last.
func (f *FocusManager) Prev() {
	f.Move(-1)
}

// Move moves focus by delta positions with wraparound. With nothing focused,
// a forward move lands on the first node and a backward move on the last.
func (f *FocusManager) Move(delta int) {
	n := len(f.nodes)
	if n == 0 || delta == 0 {
		return
	}

	var idx int
	switch {
	case f.current < 0 && delta > 0:
		idx = (delta - 1) % n
	case f.current < 0:
		idx = n + (delta % n)
		idx %= n
	default:
		idx = ((f.current+delta)%n + n) % n
	}
	debug.Log("FocusManager.Move: delta=%d %d -> %d", delta, f.current, idx)
	f.focus(idx)
}

// Clear removes focus without moving it anywhere.
func (f *FocusManager) Clear() {
	if cur := f.Focused(); cur != nil {
		cur.selected = false
	}
	f.current = -1
}

func (f *FocusManager) focus(idx int) {
	if cur := f.Focused(); cur != nil && f.current != idx {
		cur.selected = false
	}
	f.current = idx
	f.nodes[idx].selected = true
}

func (f *FocusManager) indexOf(n *Node) int {
	for i, node := range f.nodes {
		if node == n {
			return i
		}
	}
	return -1
}
