package lcd

import (
	"fmt"

	"github.com/grindlemire/go-lcd/internal/debug"
)

// Host is the shell a view is shown in.
type Host interface {
	// UsableRect is the display area minus any status overlay the host keeps.
	UsableRect() Rect

	// RequestFullRedraw asks the host to repaint its own decorations.
	RequestFullRedraw()
}

// DefaultDragStep is the vertical drag distance per edit step.
const DefaultDragStep = 10

// View owns one screen: its tree, its input state and its redraw cache.
//
// A view is driven from a single goroutine. Every input call finishes its
// layout and render before returning, so the tree is never seen half-arranged.
type View struct {
	tree    *Tree
	host    Host
	canvas  Canvas
	metrics Metrics
	theme   Theme
	lazy    *LazyRenderer

	routerCfg RouterConfig
	dragStep  int
	onTouch   func(Point)
	onDrag    func(DragDelta)

	// input is nil until Activate and after Teardown.
	input *viewInput
	stats RenderStats
}

// viewInput is the input state attached while a view is active.
type viewInput struct {
	router  *Router
	focus   *FocusManager
	editing *Node
	dragAcc int
}

// NewView creates a view over the tree rooted at root. The view takes
// ownership of the tree; nothing is drawn until Activate.
func NewView(root *Node, host Host, canvas Canvas, metrics Metrics, opts ...ViewOption) (*View, error) {
	if root == nil {
		return nil, fmt.Errorf("view needs a root node")
	}
	if host == nil || canvas == nil || metrics == nil {
		return nil, fmt.Errorf("view needs a host, a canvas and metrics")
	}
	v := &View{
		tree:      NewTree(root),
		host:      host,
		canvas:    canvas,
		metrics:   metrics,
		theme:     DefaultTheme(),
		routerCfg: DefaultRouterConfig(),
		dragStep:  DefaultDragStep,
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Tree returns the view's tree, or nil after Teardown.
func (v *View) Tree() *Tree {
	return v.tree
}

// Active reports whether input handlers are attached.
func (v *View) Active() bool {
	return v.input != nil
}

// Focus returns the focus manager, or nil when the view is not active.
func (v *View) Focus() *FocusManager {
	if v.input == nil {
		return nil
	}
	return v.input.focus
}

// Editing returns the node whose number is being edited, or nil.
func (v *View) Editing() *Node {
	if v.input == nil {
		return nil
	}
	return v.input.editing
}

// Stats returns the statistics of the last lazy update.
func (v *View) Stats() RenderStats {
	return v.stats
}

// Activate attaches input handling, lays the tree out and paints the whole
// usable area. Activating an active view starts over with nothing focused.
func (v *View) Activate() {
	v.mustLive("activate")
	if v.input != nil {
		v.detach()
	}

	in := &viewInput{
		router: NewRouter(v.routerCfg),
		focus:  NewFocusManager(),
	}
	v.tree.Walk(func(n *Node) bool {
		if n.focusable() {
			in.focus.Register(n)
		}
		return true
	})
	v.input = in
	debug.Log("View.Activate: %d nodes, %d focusable", v.tree.Len(), in.focus.Len())

	v.host.RequestFullRedraw()
	v.Redraw()
}

// Teardown detaches input handling and releases the tree. The view cannot be
// used afterwards.
func (v *View) Teardown() {
	v.input = nil
	v.tree = nil
	if v.lazy != nil {
		v.lazy.Forget()
	}
	debug.Log("View.Teardown")
}

// Redraw lays out if needed and repaints the whole usable area.
func (v *View) Redraw() {
	v.mustLive("redraw")
	v.layout()

	v.canvas.ClearRect(v.host.UsableRect(), v.theme.Bg)
	if v.lazy != nil {
		v.lazy.Forget()
		v.stats = v.lazy.Render(v.canvas, v.metrics, v.tree.root, v.theme)
		return
	}
	RenderFull(v.canvas, v.metrics, v.tree.root, v.theme)
}

// Update lays out if anything changed size and brings the screen up to date.
// With lazy rendering only changed nodes are redrawn.
func (v *View) Update() RenderStats {
	v.mustLive("update")
	if v.lazy == nil {
		v.Redraw()
		return RenderStats{}
	}
	v.layout()
	v.stats = v.lazy.Render(v.canvas, v.metrics, v.tree.root, v.theme)
	return v.stats
}

// Handle routes a raw input event, applies the resulting command and updates
// the screen. It reports whether the event did anything.
func (v *View) Handle(ev Event) bool {
	if v.input == nil {
		debug.Log("View.Handle: %T on inactive view dropped", ev)
		return false
	}
	cmd, ok := v.input.router.Route(ev)
	if !ok {
		return false
	}
	return v.Apply(cmd)
}

// Apply performs a command on the tree and updates the screen.
// It reports whether the command did anything.
func (v *View) Apply(cmd Command) bool {
	if v.input == nil {
		debug.Log("View.Apply: %T on inactive view dropped", cmd)
		return false
	}

	var handled bool
	switch c := cmd.(type) {
	case FocusMove:
		handled = v.focusMove(c.Delta)
	case Activate:
		handled = v.activate(v.input.focus.Focused(), c.Long)
	case Tap:
		handled = v.tap(c.Point)
	case DragDelta:
		handled = v.drag(c)
	default:
		panic(fmt.Sprintf("lcd: unknown command %T", cmd))
	}

	// A callback may have torn the view down.
	if handled && v.tree != nil {
		v.Update()
	}
	return handled
}

func (v *View) focusMove(delta int) bool {
	in := v.input
	if in.editing != nil {
		v.adjust(in.editing, delta)
		return true
	}
	if in.focus.Len() == 0 {
		return false
	}
	in.focus.Move(delta)
	return true
}

// activate presses n. A node bound to a number toggles edit mode instead.
func (v *View) activate(n *Node, long bool) bool {
	if n == nil {
		return false
	}
	if n.number != nil {
		if v.input.editing == n {
			v.commit()
		} else {
			v.commit()
			if v.input == nil {
				return true
			}
			v.input.editing = n
			n.editing = true
			debug.Log("View: editing %s", n)
		}
		return true
	}

	if long && n.onLongPress != nil {
		n.onLongPress(n)
		return true
	}
	if n.onPress != nil {
		n.onPress(n)
		return true
	}
	return false
}

func (v *View) tap(p Point) bool {
	hit := v.tree.HitTest(p)
	if hit == nil {
		if v.onTouch != nil {
			v.onTouch(p)
			return true
		}
		return false
	}

	if hit.onTouch != nil {
		hit.onTouch(hit, p)
		return true
	}
	if hit.number != nil && v.input.focus.Focused() != hit {
		v.commit()
		if v.input != nil {
			v.input.focus.SetFocus(hit)
		}
		return true
	}
	if hit.number == nil {
		v.commit()
		if v.input == nil {
			return true
		}
	}
	return v.activate(hit, false)
}

func (v *View) drag(d DragDelta) bool {
	in := v.input
	if in.editing == nil {
		in.dragAcc = 0
		if v.onDrag != nil {
			v.onDrag(d)
			return true
		}
		return false
	}

	// Dragging up increases the value.
	in.dragAcc -= d.DY
	steps := in.dragAcc / v.dragStep
	in.dragAcc -= steps * v.dragStep
	if d.Done {
		in.dragAcc = 0
	}
	if steps == 0 {
		return false
	}
	v.adjust(in.editing, steps)
	return true
}

func (v *View) adjust(n *Node, steps int) {
	n.number.Adjust(steps)
	n.SetLabel(n.number.Label())
}

// commit leaves edit mode, reporting the value to the field's OnChange.
func (v *View) commit() {
	n := v.input.editing
	if n == nil {
		return
	}
	v.input.editing = nil
	n.editing = false
	debug.Log("View: committed %s = %d", n, n.number.Value)
	if n.number.OnChange != nil {
		n.number.OnChange(n.number.Value)
	}
}

// detach drops the selection and leaves edit mode without reporting a value.
func (v *View) detach() {
	in := v.input
	if in.editing != nil {
		in.editing.editing = false
	}
	in.focus.Clear()
	v.input = nil
}

// layout measures and arranges when a mutation invalidated the tree.
func (v *View) layout() {
	root := v.tree.root
	if root.state == Arranged {
		return
	}
	Measure(root, v.metrics)
	Arrange(root, v.host.UsableRect(), v.metrics)
}

func (v *View) mustLive(op string) {
	if v.tree == nil {
		panic(fmt.Sprintf("lcd: %s on a torn down view", op))
	}
}
