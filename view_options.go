package lcd

import "fmt"

// ViewOption is a functional option for configuring a View.
type ViewOption func(*View) error

// WithTheme sets the default colors.
func WithTheme(theme Theme) ViewOption {
	return func(v *View) error {
		v.theme = theme
		return nil
	}
}

// WithLazy selects lazy diff rendering for updates. Without it every update
// repaints the whole usable area.
func WithLazy(lazy bool) ViewOption {
	return func(v *View) error {
		if lazy {
			v.lazy = NewLazyRenderer()
		} else {
			v.lazy = nil
		}
		return nil
	}
}

// WithRouterConfig sets the button map and long-press threshold.
func WithRouterConfig(cfg RouterConfig) ViewOption {
	return func(v *View) error {
		if cfg.LongPress < 0 {
			return fmt.Errorf("long press threshold cannot be negative")
		}
		for id, action := range cfg.Buttons {
			if action > ActionActivate {
				return fmt.Errorf("button %d: unknown action %s", id, action)
			}
		}
		v.routerCfg = cfg
		return nil
	}
}

// WithDragStep sets how many pixels of vertical drag change an edited
// number by one step. Default is 10.
func WithDragStep(px int) ViewOption {
	return func(v *View) error {
		if px < 1 {
			return fmt.Errorf("drag step must be at least 1 pixel")
		}
		v.dragStep = px
		return nil
	}
}

// WithTouchFallback sets a handler for taps that hit no interactive node.
func WithTouchFallback(fn func(Point)) ViewOption {
	return func(v *View) error {
		v.onTouch = fn
		return nil
	}
}

// WithOnDrag sets a handler for drags while no number is being edited.
func WithOnDrag(fn func(DragDelta)) ViewOption {
	return func(v *View) error {
		v.onDrag = fn
		return nil
	}
}
