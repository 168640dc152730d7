// geometry.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package lcd

import "github.com/grindlemire/go-lcd/internal/layout"

// Rect represents a rectangle with position and dimensions in pixels.
type Rect = layout.Rect

// Point represents an x/y coordinate.
type Point = layout.Point

// Size represents a width/height pair.
type Size = layout.Size

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}
