package lcd

import "time"

// Event is a raw input sample from the input transport.
// Use a type switch to handle specific event types.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// ButtonEvent is an edge on a physical button.
type ButtonEvent struct {
	// ID identifies the physical button.
	ID int

	// Pressed is true on the press edge and false on release.
	Pressed bool

	// Time is when the edge happened, as reported by the transport.
	Time time.Time
}

func (ButtonEvent) isEvent() {}

// TouchEvent is one sample of the touchscreen stream.
type TouchEvent struct {
	X, Y    int
	Pressed bool
}

func (TouchEvent) isEvent() {}

// Point returns the touched position.
func (e TouchEvent) Point() Point {
	return Point{X: e.X, Y: e.Y}
}

// DragEvent is a movement of a finger held on the touchscreen.
type DragEvent struct {
	DX, DY int

	// StillDown is false for the last sample of a drag.
	StillDown bool
}

func (DragEvent) isEvent() {}

// Command is what the Router turns events into. A View applies commands
// to its tree.
type Command interface {
	isCommand()
}

// FocusMove moves focus by Delta positions, or adjusts the edited value by
// Delta steps while a number is being edited.
type FocusMove struct {
	Delta int
}

func (FocusMove) isCommand() {}

// Activate presses the focused node. Long is set for a long press.
type Activate struct {
	Long bool
}

func (Activate) isCommand() {}

// Tap is a touch on the screen at Point.
type Tap struct {
	Point Point
}

func (Tap) isCommand() {}

// DragDelta is a drag movement. Done marks the end of the drag.
type DragDelta struct {
	DX, DY int
	Done   bool
}

func (DragDelta) isCommand() {}
