// Package raster implements the lcd drawing and text metrics interfaces on
// top of an in-memory *image.RGBA.
//
// It stands in for real display hardware: the command line tools render
// screens into a [Canvas] and save them as PNG files, and the tests use it
// to check what actually lands on the pixels. Text is drawn with
// golang.org/x/image font faces, so [Metrics] and [Canvas] must share the
// same face set for measured and drawn text to agree.
package raster
