package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/grindlemire/go-lcd"
	"github.com/grindlemire/go-lcd/internal/config"
	"github.com/grindlemire/go-lcd/internal/debug"
	"github.com/grindlemire/go-lcd/internal/raster"
	"github.com/pkg/errors"
)

// screen is a loaded screen description bound to a raster display.
type screen struct {
	path   string
	config *config.Screen
	canvas *raster.Canvas
	host   *host
	view   *lcd.View
}

// openScreen loads path and builds a view on a fresh canvas. The view is
// not yet activated.
func openScreen(path string, hooks config.Hooks) (*screen, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	root, err := cfg.Build(hooks)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s", path)
	}
	opts, err := cfg.ViewOptions()
	if err != nil {
		return nil, err
	}
	theme, err := cfg.LcdTheme()
	if err != nil {
		return nil, err
	}

	canvas := raster.NewCanvas(cfg.Display.Width, cfg.Display.Height, nil)
	h := &host{canvas: canvas, statusBar: cfg.Display.StatusBar, bg: theme.Bg}
	view, err := lcd.NewView(root, h, canvas, raster.NewMetrics(nil), opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "creating view for %s", path)
	}
	debug.Log("opened %s: %dx%d, %d nodes", path, cfg.Display.Width, cfg.Display.Height, view.Tree().Len())

	return &screen{path: path, config: cfg, canvas: canvas, host: h, view: view}, nil
}

// writePNG saves the current frame.
func (s *screen) writePNG(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "creating output directory")
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating frame file")
	}
	if err := png.Encode(f, s.canvas.Image()); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}
	return errors.Wrapf(f.Close(), "writing %s", path)
}

// framePath is the PNG written for a screen file inside dir.
func framePath(dir, screenPath string) string {
	base := strings.TrimSuffix(filepath.Base(screenPath), filepath.Ext(screenPath))
	return filepath.Join(dir, base+".png")
}
