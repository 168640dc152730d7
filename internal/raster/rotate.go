package raster

import (
	"image"

	"github.com/grindlemire/go-lcd"
)

// rotate returns src turned clockwise by rot quarter turns.
// The result's bounds start at the origin.
func rotate(src *image.RGBA, rot lcd.Rotation) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if rot%4 == lcd.Rotate0 {
		return src
	}

	dw, dh := w, h
	if rot.Odd() {
		dw, dh = h, w
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var dx, dy int
			switch rot % 4 {
			case lcd.Rotate90:
				dx, dy = h-1-y, x
			case lcd.Rotate180:
				dx, dy = w-1-x, h-1-y
			case lcd.Rotate270:
				dx, dy = y, w-1-x
			}
			si := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			di := dst.PixOffset(dx, dy)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return dst
}
