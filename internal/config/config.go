// Package config loads screen descriptions from TOML files.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/grindlemire/go-lcd"
	"github.com/pkg/errors"
)

// Screen is a complete screen description: the display it targets, how
// input and rendering behave and the node tree to show.
type Screen struct {
	Display Display `toml:"display"`
	Input   Input   `toml:"input"`
	Render  Render  `toml:"render"`
	Theme   Theme   `toml:"theme"`
	Root    Node    `toml:"root"`

	// Dir is the directory image paths are resolved against. Load sets it
	// to the directory holding the file.
	Dir string `toml:"-"`
}

// Display describes the panel.
type Display struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// StatusBar is the height of a strip along the top edge that the host
	// keeps for itself.
	StatusBar int `toml:"status_bar"`
}

// Usable returns the area left to the screen.
func (d Display) Usable() lcd.Rect {
	return lcd.NewRect(0, d.StatusBar, d.Width, d.Height-d.StatusBar)
}

// Input configures the event router.
type Input struct {
	LongPressMS int `toml:"long_press_ms"`
	DragStep    int `toml:"drag_step"`

	// Buttons maps button ids to action names ("prev", "next", "activate").
	Buttons map[string]string `toml:"buttons"`
}

// Render configures redraws.
type Render struct {
	Lazy bool `toml:"lazy"`
}

// Theme holds hex colors; empty entries keep the default theme's color.
type Theme struct {
	Fg  string `toml:"fg"`
	Bg  string `toml:"bg"`
	Fg2 string `toml:"fg2"`
	Bg2 string `toml:"bg2"`
	FgH string `toml:"fgh"`
	BgH string `toml:"bgh"`
}

// Load reads and validates the screen file at path.
func Load(path string) (*Screen, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading screen")
	}
	s, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

// Parse decodes a screen description. Unknown keys are an error.
func Parse(data string) (*Screen, error) {
	var s Screen
	md, err := toml.Decode(data, &s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding screen")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the display and input sections.
func (s *Screen) Validate() error {
	if s.Display.Width <= 0 || s.Display.Height <= 0 {
		return errors.Errorf("display: size %dx%d must be positive", s.Display.Width, s.Display.Height)
	}
	if s.Display.StatusBar < 0 || s.Display.StatusBar >= s.Display.Height {
		return errors.Errorf("display: status_bar %d must be within the display height", s.Display.StatusBar)
	}
	if s.Input.LongPressMS < 0 {
		return errors.Errorf("input: long_press_ms cannot be negative")
	}
	if s.Input.DragStep < 0 {
		return errors.Errorf("input: drag_step cannot be negative")
	}
	if _, err := s.RouterConfig(); err != nil {
		return err
	}
	if _, err := s.LcdTheme(); err != nil {
		return err
	}
	return nil
}

// RouterConfig returns the router settings, defaulting what is unset.
func (s *Screen) RouterConfig() (lcd.RouterConfig, error) {
	cfg := lcd.DefaultRouterConfig()
	if s.Input.LongPressMS > 0 {
		cfg.LongPress = time.Duration(s.Input.LongPressMS) * time.Millisecond
	}
	if len(s.Input.Buttons) == 0 {
		return cfg, nil
	}

	cfg.Buttons = make(map[int]lcd.Action, len(s.Input.Buttons))
	for key, name := range s.Input.Buttons {
		id, err := strconv.Atoi(key)
		if err != nil {
			return lcd.RouterConfig{}, errors.Errorf("input: button id %q is not a number", key)
		}
		action, ok := lcd.ParseAction(name)
		if !ok {
			return lcd.RouterConfig{}, errors.Errorf("input: button %d: unknown action %q", id, name)
		}
		cfg.Buttons[id] = action
	}
	return cfg, nil
}

// LcdTheme resolves the theme section over lcd.DefaultTheme.
func (s *Screen) LcdTheme() (lcd.Theme, error) {
	theme := lcd.DefaultTheme()
	fields := []struct {
		name string
		hex  string
		dst  *lcd.Color
	}{
		{"fg", s.Theme.Fg, &theme.Fg},
		{"bg", s.Theme.Bg, &theme.Bg},
		{"fg2", s.Theme.Fg2, &theme.Fg2},
		{"bg2", s.Theme.Bg2, &theme.Bg2},
		{"fgh", s.Theme.FgH, &theme.FgH},
		{"bgh", s.Theme.BgH, &theme.BgH},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := lcd.HexColor(f.hex)
		if err != nil {
			return lcd.Theme{}, errors.Wrapf(err, "theme.%s", f.name)
		}
		*f.dst = c
	}
	return theme, nil
}

// ViewOptions returns the lcd view options the screen asks for.
func (s *Screen) ViewOptions() ([]lcd.ViewOption, error) {
	cfg, err := s.RouterConfig()
	if err != nil {
		return nil, err
	}
	theme, err := s.LcdTheme()
	if err != nil {
		return nil, err
	}
	opts := []lcd.ViewOption{
		lcd.WithTheme(theme),
		lcd.WithLazy(s.Render.Lazy),
		lcd.WithRouterConfig(cfg),
	}
	if s.Input.DragStep > 0 {
		opts = append(opts, lcd.WithDragStep(s.Input.DragStep))
	}
	return opts, nil
}
