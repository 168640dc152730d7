package lcd

import (
	"fmt"
	"time"

	"github.com/grindlemire/go-lcd/internal/debug"
)

// Action is what a physical button does.
type Action uint8

const (
	ActionNone Action = iota
	ActionPrev
	ActionNext
	ActionActivate
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionPrev:
		return "prev"
	case ActionNext:
		return "next"
	case ActionActivate:
		return "activate"
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ParseAction parses the names returned by Action.String.
func ParseAction(s string) (Action, bool) {
	switch s {
	case "none":
		return ActionNone, true
	case "prev":
		return ActionPrev, true
	case "next":
		return ActionNext, true
	case "activate":
		return ActionActivate, true
	}
	return ActionNone, false
}

// DefaultLongPress is the hold time that turns a press into a long press.
const DefaultLongPress = 750 * time.Millisecond

// RouterConfig maps the physical input devices onto commands.
type RouterConfig struct {
	// Buttons maps button IDs to actions. Unmapped buttons are ignored.
	Buttons map[int]Action

	// LongPress is the minimum hold for a long press.
	LongPress time.Duration
}

// DefaultRouterConfig maps three buttons to previous, activate and next.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		Buttons: map[int]Action{
			1: ActionPrev,
			2: ActionActivate,
			3: ActionNext,
		},
		LongPress: DefaultLongPress,
	}
}

// Router turns raw events into commands.
//
// Focus movement fires on the press edge. Activation fires on release so the
// hold time can pick a long press; a release whose press was never seen is
// dropped. A touch produces a tap only on the press edge.
type Router struct {
	cfg      RouterConfig
	pressed  map[int]time.Time
	touching bool
}

// NewRouter creates a router. A zero LongPress uses DefaultLongPress.
func NewRouter(cfg RouterConfig) *Router {
	if cfg.LongPress <= 0 {
		cfg.LongPress = DefaultLongPress
	}
	if cfg.Buttons == nil {
		cfg.Buttons = DefaultRouterConfig().Buttons
	}
	return &Router{cfg: cfg, pressed: make(map[int]time.Time)}
}

// Route translates ev. The boolean is false when the event produces no command.
func (r *Router) Route(ev Event) (Command, bool) {
	switch e := ev.(type) {
	case ButtonEvent:
		return r.button(e)
	case TouchEvent:
		return r.touch(e)
	case DragEvent:
		return DragDelta{DX: e.DX, DY: e.DY, Done: !e.StillDown}, true
	}
	return nil, false
}

// Reset forgets held buttons and touches.
func (r *Router) Reset() {
	clear(r.pressed)
	r.touching = false
}

func (r *Router) button(e ButtonEvent) (Command, bool) {
	action := r.cfg.Buttons[e.ID]
	switch action {
	case ActionPrev, ActionNext:
		if !e.Pressed {
			return nil, false
		}
		if action == ActionPrev {
			return FocusMove{Delta: -1}, true
		}
		return FocusMove{Delta: 1}, true

	case ActionActivate:
		if e.Pressed {
			r.pressed[e.ID] = e.Time
			return nil, false
		}
		start, ok := r.pressed[e.ID]
		if !ok {
			debug.Log("Router: release of button %d without press ignored", e.ID)
			return nil, false
		}
		delete(r.pressed, e.ID)
		held := e.Time.Sub(start)
		return Activate{Long: held >= r.cfg.LongPress}, true
	}

	debug.Log("Router: button %d is not mapped", e.ID)
	return nil, false
}

func (r *Router) touch(e TouchEvent) (Command, bool) {
	edge := e.Pressed && !r.touching
	r.touching = e.Pressed
	if !edge {
		return nil, false
	}
	return Tap{Point: e.Point()}, true
}
