package lcd

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func press(id int, at time.Duration) ButtonEvent {
	return ButtonEvent{ID: id, Pressed: true, Time: t0.Add(at)}
}

func release(id int, at time.Duration) ButtonEvent {
	return ButtonEvent{ID: id, Pressed: false, Time: t0.Add(at)}
}

func TestRouter_Route(t *testing.T) {
	type tc struct {
		cfg    RouterConfig
		events []Event
		want   []Command
	}

	tests := map[string]tc{
		"prev and next fire on press": {
			cfg:    DefaultRouterConfig(),
			events: []Event{press(1, 0), release(1, 10*time.Millisecond), press(3, 0), release(3, 0)},
			want:   []Command{FocusMove{Delta: -1}, FocusMove{Delta: 1}},
		},
		"short press activates on release": {
			cfg:    DefaultRouterConfig(),
			events: []Event{press(2, 0), release(2, 100*time.Millisecond)},
			want:   []Command{Activate{Long: false}},
		},
		"long press": {
			cfg:    DefaultRouterConfig(),
			events: []Event{press(2, 0), release(2, 800*time.Millisecond)},
			want:   []Command{Activate{Long: true}},
		},
		"threshold is inclusive": {
			cfg:    DefaultRouterConfig(),
			events: []Event{press(2, 0), release(2, DefaultLongPress)},
			want:   []Command{Activate{Long: true}},
		},
		"release without press dropped": {
			cfg:    DefaultRouterConfig(),
			events: []Event{release(2, 0)},
			want:   nil,
		},
		"double release only activates once": {
			cfg:    DefaultRouterConfig(),
			events: []Event{press(2, 0), release(2, 0), release(2, time.Second)},
			want:   []Command{Activate{Long: false}},
		},
		"unmapped button ignored": {
			cfg:    DefaultRouterConfig(),
			events: []Event{press(9, 0), release(9, 0)},
			want:   nil,
		},
		"custom mapping and threshold": {
			cfg: RouterConfig{
				Buttons:   map[int]Action{7: ActionActivate, 8: ActionNext},
				LongPress: 200 * time.Millisecond,
			},
			events: []Event{press(8, 0), press(7, 0), release(7, 300*time.Millisecond), press(1, 0)},
			want:   []Command{FocusMove{Delta: 1}, Activate{Long: true}},
		},
		"tap on press edge only": {
			cfg: DefaultRouterConfig(),
			events: []Event{
				TouchEvent{X: 5, Y: 6, Pressed: true},
				TouchEvent{X: 7, Y: 6, Pressed: true},
				TouchEvent{X: 7, Y: 6, Pressed: false},
				TouchEvent{X: 1, Y: 2, Pressed: true},
			},
			want: []Command{Tap{Point: Pt(5, 6)}, Tap{Point: Pt(1, 2)}},
		},
		"drag deltas": {
			cfg: DefaultRouterConfig(),
			events: []Event{
				DragEvent{DX: 1, DY: -4, StillDown: true},
				DragEvent{DX: 0, DY: -2, StillDown: false},
			},
			want: []Command{DragDelta{DX: 1, DY: -4}, DragDelta{DY: -2, Done: true}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewRouter(tt.cfg)
			var got []Command
			for _, ev := range tt.events {
				if cmd, ok := r.Route(ev); ok {
					got = append(got, cmd)
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("commands mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRouter_ZeroConfigUsesDefaults(t *testing.T) {
	r := NewRouter(RouterConfig{})

	r.Route(press(2, 0))
	cmd, ok := r.Route(release(2, 700*time.Millisecond))

	if !ok || cmd != (Activate{Long: false}) {
		t.Errorf("Route() = %v, %v, want short activate", cmd, ok)
	}
}

func TestRouter_Reset(t *testing.T) {
	r := NewRouter(DefaultRouterConfig())
	r.Route(press(2, 0))
	r.Route(TouchEvent{Pressed: true})

	r.Reset()

	if _, ok := r.Route(release(2, time.Second)); ok {
		t.Error("release after Reset produced a command")
	}
	if _, ok := r.Route(TouchEvent{Pressed: true}); !ok {
		t.Error("touch after Reset did not tap")
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range []Action{ActionNone, ActionPrev, ActionNext, ActionActivate} {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseAction("jump"); ok {
		t.Error(`ParseAction("jump") succeeded`)
	}
}
