package lcd

import (
	"fmt"
	"image"
)

// Kind identifies the variant of a Node.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindText
	KindButton
	KindImage
	KindCustom
	KindHStack
	KindVStack
)

var kindNames = [...]string{
	KindEmpty:  "empty",
	KindText:   "text",
	KindButton: "button",
	KindImage:  "image",
	KindCustom: "custom",
	KindHStack: "hstack",
	KindVStack: "vstack",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsContainer reports whether nodes of this kind hold children.
func (k Kind) IsContainer() bool {
	return k == KindHStack || k == KindVStack
}

// Align positions a node inside spare space: -1 start, 0 center, 1 end.
type Align int8

const (
	AlignStart  Align = -1
	AlignCenter Align = 0
	AlignEnd    Align = 1
)

// Rotation is a number of clockwise quarter turns.
type Rotation uint8

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// Odd reports whether the rotation swaps width and height.
func (r Rotation) Odd() bool {
	return r%2 == 1
}

// NodeState tracks where a node is in the layout cycle.
type NodeState uint8

const (
	// Unmeasured nodes have no valid intrinsic size or geometry.
	Unmeasured NodeState = iota
	// Measured nodes have a valid intrinsic size but stale geometry.
	Measured
	// Arranged nodes have valid geometry for the current measurement.
	Arranged
)

func (s NodeState) String() string {
	switch s {
	case Unmeasured:
		return "unmeasured"
	case Measured:
		return "measured"
	case Arranged:
		return "arranged"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Decorative margin around button content: border plus content padding.
const (
	ButtonBorder   = 1
	ButtonPaddingX = 9
	ButtonPaddingY = 5
)

const unset = -1

// Node is an element in the layout tree.
// Nodes are built with the kind constructors and are owned by exactly one parent.
type Node struct {
	kind     Kind
	id       int
	tag      string
	parent   *Node
	children []*Node
	tree     *Tree

	// Layout hints
	fillX, fillY       bool
	fillXSet, fillYSet bool
	pad                int
	halign, valign     Align
	width, height      int // explicit size, unset = -1
	rotation           Rotation

	// Content
	label    string
	font     string
	wrap     bool
	source   image.Image
	sourceFn func() image.Image
	scale    float64
	draw     func(Canvas, *Node)
	fg       Color
	bg       Color
	border   Color
	selected bool
	revision uint64

	// Interaction
	onPress     func(*Node)
	onLongPress func(*Node)
	onTouch     func(*Node, Point)
	number      *NumberField
	editing     bool

	// Computed
	state     NodeState
	intrinsic Size
	rect      Rect
	lines     []string
}

func newNode(kind Kind, opts []Option) *Node {
	n := &Node{
		kind:   kind,
		id:     unset,
		width:  unset,
		height: unset,
		scale:  1,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.number != nil {
		n.label = n.number.Label()
	}
	return n
}

// Empty creates a node that draws nothing. With a fill flag it acts as a spacer.
func Empty(opts ...Option) *Node {
	return newNode(KindEmpty, opts)
}

// Text creates a text label.
func Text(label string, opts ...Option) *Node {
	n := newNode(KindText, opts)
	if n.number == nil {
		n.label = label
	}
	return n
}

// Button creates a pressable button showing label (or an image set with WithSource).
func Button(label string, opts ...Option) *Node {
	n := newNode(KindButton, opts)
	if n.number == nil {
		n.label = label
	}
	return n
}

// Image creates a node that blits src.
func Image(src image.Image, opts ...Option) *Node {
	n := newNode(KindImage, opts)
	if src != nil {
		n.source = src
	}
	return n
}

// Custom creates a node drawn by fn. The node must be given an explicit size
// or a fill flag on each axis.
func Custom(fn func(Canvas, *Node), opts ...Option) *Node {
	n := newNode(KindCustom, opts)
	n.draw = fn
	return n
}

// HStack creates a row container.
func HStack(opts []Option, children ...*Node) *Node {
	n := newNode(KindHStack, opts)
	n.adopt(children)
	return n
}

// VStack creates a column container.
func VStack(opts []Option, children ...*Node) *Node {
	n := newNode(KindVStack, opts)
	n.adopt(children)
	return n
}

// adopt attaches children, refusing shared ownership and cycles.
func (n *Node) adopt(children []*Node) {
	for _, child := range children {
		if child == nil {
			continue
		}
		if child.parent != nil {
			panic(fmt.Sprintf("lcd: %s already has parent %s", child, child.parent))
		}
		for p := n; p != nil; p = p.parent {
			if p == child {
				panic(fmt.Sprintf("lcd: adding %s to %s would create a cycle", child, n))
			}
		}
		child.parent = n
		n.children = append(n.children, child)
	}
}

// String identifies the node in diagnostics, e.g. `#3 "title" (text)`.
func (n *Node) String() string {
	if n == nil {
		return "<nil node>"
	}
	if n.tag != "" {
		return fmt.Sprintf("#%d %q (%s)", n.id, n.tag, n.kind)
	}
	return fmt.Sprintf("#%d (%s)", n.id, n.kind)
}

func (n *Node) axisFill(horizontal bool) bool {
	if horizontal {
		return n.fillX
	}
	return n.fillY
}

func (n *Node) axisAlign(horizontal bool) Align {
	if horizontal {
		return n.halign
	}
	return n.valign
}

// interactive reports whether touch events may target this node.
func (n *Node) interactive() bool {
	return n.kind == KindButton || n.number != nil || n.onTouch != nil
}

// focusable reports whether buttons may move focus onto this node.
func (n *Node) focusable() bool {
	return n.kind == KindButton || n.number != nil
}

// image resolves the node's source bitmap, preferring the producing func.
func (n *Node) image() image.Image {
	if n.sourceFn != nil {
		return n.sourceFn()
	}
	return n.source
}
