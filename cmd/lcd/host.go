package main

import (
	"github.com/grindlemire/go-lcd"
	"github.com/grindlemire/go-lcd/internal/raster"
)

// statusColor fills the strip the host keeps above the screen.
var statusColor = lcd.RGBColor(0x30, 0x30, 0x30)

// host owns the whole panel and lends the area below its status bar to a
// view.
type host struct {
	canvas    *raster.Canvas
	statusBar int
	bg        lcd.Color

	// fullRedraws counts RequestFullRedraw calls.
	fullRedraws int
}

var _ lcd.Host = (*host)(nil)

func (h *host) UsableRect() lcd.Rect {
	b := h.canvas.Bounds()
	return lcd.NewRect(b.X, b.Y+h.statusBar, b.Width, b.Height-h.statusBar)
}

// RequestFullRedraw repaints the host's own chrome. The view paints the
// usable area itself right after.
func (h *host) RequestFullRedraw() {
	h.fullRedraws++
	b := h.canvas.Bounds()
	h.canvas.ClearRect(b, h.bg)
	if h.statusBar > 0 {
		h.canvas.FillRect(lcd.NewRect(b.X, b.Y, b.Width, h.statusBar), statusColor)
	}
}
