// Package lcd arranges and draws a tree of visual nodes on a small bitmap
// display and routes physical-button and touchscreen input back onto it.
//
// A screen is described as a tree of [Node] values built with [Text],
// [Button], [Image], [Custom], [Empty], [HStack] and [VStack]. The tree goes
// through three passes:
//
//   - [Measure] computes each node's intrinsic size bottom-up.
//   - [Arrange] distributes the available rectangle top-down, giving fill
//     children the leftover main-axis space.
//   - [RenderFull] or a [LazyRenderer] issues draw calls on a [Canvas].
//
// Text metrics and drawing primitives are supplied by the caller through the
// [Metrics] and [Canvas] interfaces. A [View] owns a tree together with its
// focus state, input [Router] and lazy redraw cache, and re-runs the passes
// after each input event.
//
// The engine is single-threaded: a View must only be used from the goroutine
// that delivers its events.
package lcd
