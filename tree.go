package lcd

import (
	"fmt"
	"io"
	"strings"

	"github.com/grindlemire/go-lcd/internal/debug"
)

// Tree indexes a node tree: it assigns every node a stable depth-first ID
// and maps tags to nodes.
type Tree struct {
	root  *Node
	nodes []*Node
	tags  map[string]*Node
}

// NewTree takes ownership of the tree rooted at root.
// It panics if root already belongs to a tree, is not a root, or a tag is used twice.
func NewTree(root *Node) *Tree {
	if root == nil {
		panic("lcd: NewTree with nil root")
	}
	if root.parent != nil {
		panic(fmt.Sprintf("lcd: %s is not a root (parent %s)", root, root.parent))
	}
	t := &Tree{root: root, tags: make(map[string]*Node)}
	walk(root, func(n *Node) bool {
		if n.tree != nil {
			panic(fmt.Sprintf("lcd: %s already belongs to a tree", n))
		}
		n.tree = t
		n.id = len(t.nodes)
		t.nodes = append(t.nodes, n)
		if n.tag != "" {
			if prev, ok := t.tags[n.tag]; ok {
				panic(fmt.Sprintf("lcd: tag %q used by %s and %s", n.tag, prev, n))
			}
			t.tags[n.tag] = n
		}
		return true
	})
	debug.Log("Tree: indexed %d nodes, %d tags", len(t.nodes), len(t.tags))
	return t
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node with the given ID, or nil.
func (t *Tree) Node(id int) *Node {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Find returns the node with the given tag, or nil.
func (t *Tree) Find(tag string) *Node {
	return t.tags[tag]
}

// Walk visits nodes depth-first. Returning false skips the node's children.
func (t *Tree) Walk(fn func(*Node) bool) {
	walk(t.root, fn)
}

func walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		walk(child, fn)
	}
}

// HitTest returns the deepest interactive node containing p.
// It returns nil when nothing interactive is hit or the tree has not been
// arranged since its last measurement.
func (t *Tree) HitTest(p Point) *Node {
	if t.root.state != Arranged {
		debug.Warn("lcd: hit test on stale layout ignored", "state", t.root.state.String())
		return nil
	}
	return hitTest(t.root, p)
}

func hitTest(n *Node, p Point) *Node {
	if !p.In(n.rect) {
		return nil
	}
	// Later children paint over earlier ones.
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := hitTest(n.children[i], p); hit != nil {
			return hit
		}
	}
	if n.interactive() {
		return n
	}
	return nil
}

// Dump writes one line per node with its state, intrinsic size and rect.
func (t *Tree) Dump(w io.Writer) error {
	var err error
	var dump func(n *Node, depth int)
	dump = func(n *Node, depth int) {
		if err != nil {
			return
		}
		line := fmt.Sprintf("%s%s %s intrinsic=%dx%d rect=(%d,%d %dx%d)",
			strings.Repeat("  ", depth), n, n.state,
			n.intrinsic.Width, n.intrinsic.Height,
			n.rect.X, n.rect.Y, n.rect.Width, n.rect.Height)
		if n.label != "" {
			line += fmt.Sprintf(" label=%q", n.label)
		}
		_, err = fmt.Fprintln(w, line)
		for _, child := range n.children {
			dump(child, depth+1)
		}
	}
	dump(t.root, 0)
	return err
}
