package config

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grindlemire/go-lcd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const menuScreen = `
[display]
width = 240
height = 160
status_bar = 16

[input]
long_press_ms = 500
drag_step = 4
buttons = { "4" = "prev", "5" = "activate", "6" = "next" }

[render]
lazy = true

[theme]
bg = "#000"
bgh = "#ff8800"

[root]
kind = "vstack"
tag = "menu"
pad = 2

[[root.children]]
kind = "text"
label = "Settings"
halign = "left"
font = "12x20"

[[root.children]]
kind = "hstack"
fill_x = true

[[root.children.children]]
kind = "button"
tag = "volume"
fill_x = true
number = { value = 5, min = 0, max = 10, format = "vol %d" }

[[root.children.children]]
kind = "button"
tag = "back"
label = "Back"
rotation = 270
border = "#ffffff"

[[root.children]]
kind = "empty"
fill_y = true
`

func TestParse(t *testing.T) {
	s, err := Parse(menuScreen)
	require.NoError(t, err)

	assert.Equal(t, 240, s.Display.Width)
	assert.Equal(t, lcd.NewRect(0, 16, 240, 144), s.Display.Usable())
	assert.True(t, s.Render.Lazy)
	require.Len(t, s.Root.Children, 3)
	assert.Equal(t, "hstack", s.Root.Children[1].Kind)
	require.NotNil(t, s.Root.Children[1].Children[0].Number)
	assert.Equal(t, "vol %d", s.Root.Children[1].Children[0].Number.Format)
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		data string
		want string
	}

	tests := map[string]tc{
		"syntax": {
			data: "[display\nwidth = 1",
			want: "decoding screen",
		},
		"unknown key": {
			data: "[display]\nwidth = 10\nheight = 10\n[root]\nkind = \"text\"\ncolour = \"red\"",
			want: "colour",
		},
		"missing display": {
			data: "[root]\nkind = \"text\"",
			want: "display: size 0x0",
		},
		"status bar too tall": {
			data: "[display]\nwidth = 10\nheight = 10\nstatus_bar = 10",
			want: "status_bar 10",
		},
		"bad button id": {
			data: "[display]\nwidth = 10\nheight = 10\n[input]\nbuttons = { a = \"next\" }",
			want: `button id "a"`,
		},
		"bad action": {
			data: "[display]\nwidth = 10\nheight = 10\n[input]\nbuttons = { \"1\" = \"jump\" }",
			want: `unknown action "jump"`,
		},
		"bad theme color": {
			data: "[display]\nwidth = 10\nheight = 10\n[theme]\nfg = \"#12\"",
			want: "theme.fg",
		},
		"negative long press": {
			data: "[display]\nwidth = 10\nheight = 10\n[input]\nlong_press_ms = -1",
			want: "long_press_ms",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestScreen_RouterConfig(t *testing.T) {
	s, err := Parse(menuScreen)
	require.NoError(t, err)

	cfg, err := s.RouterConfig()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.LongPress)
	assert.Equal(t, map[int]lcd.Action{4: lcd.ActionPrev, 5: lcd.ActionActivate, 6: lcd.ActionNext}, cfg.Buttons)

	empty := &Screen{}
	cfg, err = empty.RouterConfig()
	require.NoError(t, err)
	assert.Equal(t, lcd.DefaultRouterConfig(), cfg)
}

func TestScreen_LcdTheme(t *testing.T) {
	s, err := Parse(menuScreen)
	require.NoError(t, err)

	theme, err := s.LcdTheme()
	require.NoError(t, err)

	want := lcd.DefaultTheme()
	want.Bg = lcd.Black
	want.BgH = lcd.RGBColor(0xff, 0x88, 0x00)
	assert.Equal(t, want, theme)
}

func TestScreen_Build(t *testing.T) {
	s, err := Parse(menuScreen)
	require.NoError(t, err)

	root, err := s.Build(Hooks{})
	require.NoError(t, err)
	tree := lcd.NewTree(root)

	assert.Equal(t, lcd.KindVStack, root.Kind())
	assert.Equal(t, 2, root.Pad())
	assert.Equal(t, 6, tree.Len())

	volume := tree.Find("volume")
	require.NotNil(t, volume)
	assert.Equal(t, lcd.KindButton, volume.Kind())
	assert.True(t, volume.FillX())
	assert.Equal(t, "vol 5", volume.Label())
	require.NotNil(t, volume.Number())
	assert.Equal(t, 10, volume.Number().Max)

	back := tree.Find("back")
	require.NotNil(t, back)
	assert.Equal(t, lcd.Rotate270, back.Rotation())
	assert.Equal(t, "Back", back.Label())

	spacer := root.Children()[2]
	assert.Equal(t, lcd.KindEmpty, spacer.Kind())
	assert.True(t, spacer.FillY())
}

func TestScreen_BuildErrors(t *testing.T) {
	type tc struct {
		root Node
		want string
	}

	tests := map[string]tc{
		"unknown kind": {
			root: Node{Kind: "slider"},
			want: `unknown kind "slider"`,
		},
		"leaf with children": {
			root: Node{Kind: "text", Children: []Node{{Kind: "text"}}},
			want: "text nodes cannot have children",
		},
		"nested path": {
			root: Node{Kind: "vstack", Children: []Node{{Kind: "text"}, {Kind: "text", HAlign: "middle"}}},
			want: "root.children[1]",
		},
		"odd rotation": {
			root: Node{Kind: "text", Rotation: 45},
			want: "rotation 45",
		},
		"bad color": {
			root: Node{Kind: "text", Bg: "blue"},
			want: "bg",
		},
		"image without path": {
			root: Node{Kind: "image"},
			want: "needs an image path",
		},
		"missing image": {
			root: Node{Kind: "image", Image: "missing.png"},
			want: "opening image",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := &Screen{Root: tt.root, Dir: t.TempDir()}
			_, err := s.Build(Hooks{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_ResolvesImages(t *testing.T) {
	dir := t.TempDir()

	icon := image.NewRGBA(image.Rect(0, 0, 8, 6))
	f, err := os.Create(filepath.Join(dir, "icon.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, icon))
	require.NoError(t, f.Close())

	screen := `
[display]
width = 64
height = 32

[root]
kind = "image"
tag = "icon"
image = "icon.png"
scale = 2.0
`
	path := filepath.Join(dir, "screen.toml")
	require.NoError(t, os.WriteFile(path, []byte(screen), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir)

	root, err := s.Build(Hooks{})
	require.NoError(t, err)

	size := lcd.Measure(root, lcd.NewMonoMetrics())
	assert.Equal(t, lcd.Size{Width: 16, Height: 12}, size)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading screen")
}

func TestScreen_ViewOptions(t *testing.T) {
	s, err := Parse(menuScreen)
	require.NoError(t, err)

	opts, err := s.ViewOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 4)

	s.Input.DragStep = 0
	opts, err = s.ViewOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}

type stubHost struct{ usable lcd.Rect }

func (h stubHost) UsableRect() lcd.Rect { return h.usable }
func (h stubHost) RequestFullRedraw() {}

func TestScreen_BuildHooks(t *testing.T) {
	s, err := Parse(menuScreen)
	require.NoError(t, err)

	var pressed []string
	var changed []int
	root, err := s.Build(Hooks{
		OnPress: func(n *lcd.Node) { pressed = append(pressed, n.Tag()) },
		OnChange: func(n *lcd.Node, v int) {
			assert.Equal(t, "volume", n.Tag())
			changed = append(changed, v)
		},
	})
	require.NoError(t, err)

	view, err := lcd.NewView(root, stubHost{usable: s.Display.Usable()}, lcd.NewRecordingCanvas(), lcd.NewMonoMetrics())
	require.NoError(t, err)
	view.Activate()

	// volume: enter edit, step up, commit.
	view.Apply(lcd.FocusMove{Delta: 1})
	view.Apply(lcd.Activate{})
	view.Apply(lcd.FocusMove{Delta: 1})
	view.Apply(lcd.Activate{})
	// back: press.
	view.Apply(lcd.FocusMove{Delta: 1})
	view.Apply(lcd.Activate{})

	assert.Equal(t, []int{6}, changed)
	assert.Equal(t, []string{"back"}, pressed)
}
