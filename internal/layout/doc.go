// Package layout holds the integer geometry used by the lcd layout engine.
//
// It provides [Rect], [Point] and [Size], the [Axis] helpers that let stack
// containers treat rows and columns uniformly, and the space distribution
// primitives [Distribute] and [AlignOffset] used by the arrangement pass.
// Types are re-exported through the root lcd package for public consumption.
package layout
