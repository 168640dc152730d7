package lcd

import (
	"image"
	"image/color"
	"testing"
)

func hashOf(n *Node) uint64 {
	theme := DefaultTheme()
	return nodeHash(n, n.paint(theme.paint()), theme)
}

func TestNodeHash_Deterministic(t *testing.T) {
	build := func() *Node {
		n := Text("hello", WithFont("6x8"), WithFg(Red), WithPad(1))
		layoutAt(n, 40, 10)
		return n
	}

	if hashOf(build()) != hashOf(build()) {
		t.Error("identical nodes hash differently")
	}
}

func TestNodeHash_OptionOrderIrrelevant(t *testing.T) {
	a := Text("x", WithFg(Red), WithBg(Blue), WithPad(2))
	b := Text("x", WithPad(2), WithBg(Blue), WithFg(Red))
	layoutAt(a, 20, 20)
	layoutAt(b, 20, 20)

	if hashOf(a) != hashOf(b) {
		t.Error("construction order changed the hash")
	}
}

func TestNodeHash_DrawingStateChangesHash(t *testing.T) {
	type tc struct {
		mutate func(n *Node)
	}

	tests := map[string]tc{
		"label":    {mutate: func(n *Node) { n.label = "other" }},
		"font":     {mutate: func(n *Node) { n.font = "4x6" }},
		"fg":       {mutate: func(n *Node) { n.SetFg(Green) }},
		"bg":       {mutate: func(n *Node) { n.SetBg(Green) }},
		"selected": {mutate: func(n *Node) { n.SetSelected(true) }},
		"editing":  {mutate: func(n *Node) { n.editing = true }},
		"revision": {mutate: func(n *Node) { n.Invalidate() }},
		"rotation": {mutate: func(n *Node) { n.rotation = Rotate180 }},
		"align":    {mutate: func(n *Node) { n.halign = AlignEnd }},
		"moved":    {mutate: func(n *Node) { n.rect = n.rect.Translate(1, 0) }},
		"resized":  {mutate: func(n *Node) { n.rect.Width++ }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := Text("label")
			layoutAt(n, 40, 10)
			before := hashOf(n)

			tt.mutate(n)

			if hashOf(n) == before {
				t.Error("hash unchanged")
			}
		})
	}
}

func TestNodeHash_ExcludesChildren(t *testing.T) {
	a := VStack(Opts(WithBg(Red)), Text("a"))
	b := VStack(Opts(WithBg(Red)), Text("b"), Text("c"))
	layoutAt(a, 30, 30)
	layoutAt(b, 30, 30)

	if hashOf(a) != hashOf(b) {
		t.Error("container hash depends on its children")
	}
}

func TestNodeHash_ImagePixels(t *testing.T) {
	type tc struct {
		img image.Image
		set func()
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 3, 3))
	gray := image.NewGray(image.Rect(0, 0, 3, 3))
	nrgba := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	pal := image.NewPaletted(image.Rect(0, 0, 3, 3), color.Palette{color.Black, color.White})
	cmyk := image.NewCMYK(image.Rect(0, 0, 3, 3))
	sub := image.NewRGBA(image.Rect(0, 0, 6, 6)).SubImage(image.Rect(2, 2, 5, 5)).(*image.RGBA)

	tests := map[string]tc{
		"rgba":      {img: rgba, set: func() { rgba.Set(1, 1, color.White) }},
		"gray":      {img: gray, set: func() { gray.SetGray(2, 0, color.Gray{Y: 7}) }},
		"nrgba":     {img: nrgba, set: func() { nrgba.Set(0, 2, color.White) }},
		"paletted":  {img: pal, set: func() { pal.SetColorIndex(1, 1, 1) }},
		"fallback":  {img: cmyk, set: func() { cmyk.Set(1, 1, color.Black) }},
		"sub image": {img: sub, set: func() { sub.Set(4, 4, color.White) }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := Image(tt.img)
			layoutAt(n, 3, 3)
			before := hashOf(n)

			tt.set()

			if hashOf(n) == before {
				t.Error("pixel change did not change the hash")
			}
		})
	}
}
