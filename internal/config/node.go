package config

import (
	"fmt"
	"image"
	_ "image/png" // register PNG decoding for image nodes
	"os"
	"path/filepath"

	"github.com/grindlemire/go-lcd"
	"github.com/pkg/errors"
)

// Node describes one node of the tree. Fields that do not apply to the
// kind are ignored.
type Node struct {
	Kind  string `toml:"kind"`
	Tag   string `toml:"tag"`
	Label string `toml:"label"`
	Font  string `toml:"font"`
	Wrap  bool   `toml:"wrap"`

	FillX bool `toml:"fill_x"`
	FillY bool `toml:"fill_y"`
	Pad   int  `toml:"pad"`

	HAlign string `toml:"halign"`
	VAlign string `toml:"valign"`

	// Width and Height are explicit pixel sizes; zero leaves the axis to
	// the content.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Rotation is in degrees and must be a multiple of 90.
	Rotation int `toml:"rotation"`

	Fg       string `toml:"fg"`
	Bg       string `toml:"bg"`
	Border   string `toml:"border"`
	Selected bool   `toml:"selected"`

	// Image is a PNG path, relative to the screen file.
	Image string  `toml:"image"`
	Scale float64 `toml:"scale"`

	Number *Number `toml:"number"`

	Children []Node `toml:"children"`
}

// Number binds an editable value to a text or button node.
type Number struct {
	Value int  `toml:"value"`
	Min   int  `toml:"min"`
	Max   int  `toml:"max"`
	Step  int  `toml:"step"`
	Wrap  bool `toml:"wrap"`

	// Format is a fmt verb string such as "%d%%".
	Format string `toml:"format"`
}

// Hooks are attached to the built nodes. Nil hooks are skipped.
type Hooks struct {
	// OnPress and OnLongPress are set on every button.
	OnPress     func(*lcd.Node)
	OnLongPress func(*lcd.Node)

	// OnChange reports committed edits of number nodes.
	OnChange func(n *lcd.Node, value int)
}

// Build turns the screen's node description into an lcd tree.
func (s *Screen) Build(h Hooks) (*lcd.Node, error) {
	return s.Root.build(s.Dir, "root", h)
}

func (n *Node) build(dir, path string, h Hooks) (*lcd.Node, error) {
	opts, err := n.options(dir)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	switch n.Kind {
	case "vstack", "hstack":
		children := make([]*lcd.Node, 0, len(n.Children))
		for i := range n.Children {
			child, err := n.Children[i].build(dir, fmt.Sprintf("%s.children[%d]", path, i), h)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		if n.Kind == "vstack" {
			return lcd.VStack(opts, children...), nil
		}
		return lcd.HStack(opts, children...), nil
	}

	if len(n.Children) > 0 {
		return nil, errors.Errorf("%s: %s nodes cannot have children", path, n.Kind)
	}
	var node *lcd.Node
	switch n.Kind {
	case "text":
		node = lcd.Text(n.Label, opts...)
	case "button":
		if h.OnPress != nil {
			opts = append(opts, lcd.WithOnPress(h.OnPress))
		}
		if h.OnLongPress != nil {
			opts = append(opts, lcd.WithOnLongPress(h.OnLongPress))
		}
		node = lcd.Button(n.Label, opts...)
	case "image":
		if n.Image == "" {
			return nil, errors.Errorf("%s: image node needs an image path", path)
		}
		node = lcd.Image(nil, opts...)
	case "empty", "":
		node = lcd.Empty(opts...)
	default:
		return nil, errors.Errorf("%s: unknown kind %q", path, n.Kind)
	}

	if f := node.Number(); f != nil && h.OnChange != nil {
		f.OnChange = func(v int) { h.OnChange(node, v) }
	}
	return node, nil
}

func (n *Node) options(dir string) ([]lcd.Option, error) {
	var opts []lcd.Option
	if n.Tag != "" {
		opts = append(opts, lcd.WithTag(n.Tag))
	}
	if n.Font != "" {
		opts = append(opts, lcd.WithFont(n.Font))
	}
	if n.Wrap {
		opts = append(opts, lcd.WithWrap())
	}
	if n.FillX {
		opts = append(opts, lcd.WithFillX())
	}
	if n.FillY {
		opts = append(opts, lcd.WithFillY())
	}
	if n.Pad < 0 {
		return nil, errors.Errorf("pad %d cannot be negative", n.Pad)
	}
	if n.Pad > 0 {
		opts = append(opts, lcd.WithPad(n.Pad))
	}

	for _, a := range []struct {
		value string
		opt   func(lcd.Align) lcd.Option
	}{
		{n.HAlign, lcd.WithHAlign},
		{n.VAlign, lcd.WithVAlign},
	} {
		if a.value == "" {
			continue
		}
		align, err := parseAlign(a.value)
		if err != nil {
			return nil, err
		}
		opts = append(opts, a.opt(align))
	}

	if n.Width < 0 || n.Height < 0 {
		return nil, errors.Errorf("size %dx%d cannot be negative", n.Width, n.Height)
	}
	if n.Width > 0 {
		opts = append(opts, lcd.WithWidth(n.Width))
	}
	if n.Height > 0 {
		opts = append(opts, lcd.WithHeight(n.Height))
	}

	if n.Rotation%90 != 0 {
		return nil, errors.Errorf("rotation %d is not a multiple of 90", n.Rotation)
	}
	if turns := ((n.Rotation/90)%4 + 4) % 4; turns != 0 {
		opts = append(opts, lcd.WithRotation(lcd.Rotation(turns)))
	}

	for _, c := range []struct {
		name string
		hex  string
		opt  func(lcd.Color) lcd.Option
	}{
		{"fg", n.Fg, lcd.WithFg},
		{"bg", n.Bg, lcd.WithBg},
		{"border", n.Border, lcd.WithBorderColor},
	} {
		if c.hex == "" {
			continue
		}
		col, err := lcd.HexColor(c.hex)
		if err != nil {
			return nil, errors.Wrap(err, c.name)
		}
		opts = append(opts, c.opt(col))
	}
	if n.Selected {
		opts = append(opts, lcd.WithSelected(true))
	}

	if n.Image != "" {
		img, err := loadImage(dir, n.Image)
		if err != nil {
			return nil, err
		}
		opts = append(opts, lcd.WithSource(img))
	}
	if n.Scale < 0 {
		return nil, errors.Errorf("scale %g cannot be negative", n.Scale)
	}
	if n.Scale > 0 {
		opts = append(opts, lcd.WithScale(n.Scale))
	}

	if n.Number != nil {
		opts = append(opts, lcd.WithNumber(n.Number.field()))
	}
	return opts, nil
}

func (num *Number) field() *lcd.NumberField {
	f := &lcd.NumberField{
		Value: num.Value,
		Min:   num.Min,
		Max:   num.Max,
		Step:  num.Step,
		Wrap:  num.Wrap,
	}
	if num.Format != "" {
		format := num.Format
		f.Format = func(v int) string { return fmt.Sprintf(format, v) }
	}
	return f
}

func parseAlign(s string) (lcd.Align, error) {
	switch s {
	case "start", "left", "top":
		return lcd.AlignStart, nil
	case "center":
		return lcd.AlignCenter, nil
	case "end", "right", "bottom":
		return lcd.AlignEnd, nil
	}
	return 0, errors.Errorf("unknown alignment %q", s)
}

func loadImage(dir, path string) (image.Image, error) {
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return img, nil
}
