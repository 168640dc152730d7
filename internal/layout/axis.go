package layout

// Axis selects the main axis of a stack container.
type Axis uint8

const (
	Horizontal Axis = iota // Children laid out left-to-right
	Vertical               // Children laid out top-to-bottom
)

// Main returns the component of s along the axis.
func (a Axis) Main(s Size) int {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// Cross returns the component of s perpendicular to the axis.
func (a Axis) Cross(s Size) int {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

// Size builds a Size from main and cross components.
func (a Axis) Size(main, cross int) Size {
	if a == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// Rect builds a Rect from main/cross positions and sizes.
func (a Axis) Rect(mainPos, crossPos, main, cross int) Rect {
	if a == Horizontal {
		return Rect{X: mainPos, Y: crossPos, Width: main, Height: cross}
	}
	return Rect{X: crossPos, Y: mainPos, Width: cross, Height: main}
}

// Origin returns the main and cross coordinates of r's top-left corner.
func (a Axis) Origin(r Rect) (mainPos, crossPos int) {
	if a == Horizontal {
		return r.X, r.Y
	}
	return r.Y, r.X
}
