package lcd

import (
	"image"
	"testing"
)

func TestMeasure_Leaves(t *testing.T) {
	type tc struct {
		node *Node
		want Size
	}

	tests := map[string]tc{
		"text": {
			node: Text("abc"),
			want: Size{Width: 18, Height: 8},
		},
		"text with padding": {
			node: Text("abc", WithPad(2)),
			want: Size{Width: 22, Height: 12},
		},
		"explicit width wins when larger": {
			node: Text("abc", WithWidth(50)),
			want: Size{Width: 50, Height: 8},
		},
		"explicit width never shrinks content": {
			node: Text("abc", WithWidth(4)),
			want: Size{Width: 18, Height: 8},
		},
		"multi-line text": {
			node: Text("ab\nabcd"),
			want: Size{Width: 24, Height: 16},
		},
		"other font": {
			node: Text("ab", WithFont("12x20")),
			want: Size{Width: 24, Height: 20},
		},
		"wide runes take two cells": {
			node: Text("日本"),
			want: Size{Width: 24, Height: 8},
		},
		"backspace overlaps previous glyph": {
			node: Text("e\b'x"),
			want: Size{Width: 12, Height: 8},
		},
		"wrapped text defers": {
			node: Text("some long text", WithWrap()),
			want: Size{},
		},
		"wrapped text keeps padding": {
			node: Text("some long text", WithWrap(), WithPad(1)),
			want: Size{Width: 2, Height: 2},
		},
		"unknown font is zero": {
			node: Text("abc", WithFont("nope")),
			want: Size{},
		},
		"empty label is zero": {
			node: Text(""),
			want: Size{},
		},
		"button adds border and padding": {
			node: Button("OK"),
			want: Size{Width: 12 + 2*(ButtonBorder+ButtonPaddingX), Height: 8 + 2*(ButtonBorder+ButtonPaddingY)},
		},
		"image native size": {
			node: Image(image.NewRGBA(image.Rect(0, 0, 10, 5))),
			want: Size{Width: 10, Height: 5},
		},
		"image scaled": {
			node: Image(image.NewRGBA(image.Rect(0, 0, 10, 5)), WithScale(2)),
			want: Size{Width: 20, Height: 10},
		},
		"image from func": {
			node: Image(nil, WithSourceFunc(func() image.Image {
				return image.NewGray(image.Rect(0, 0, 3, 7))
			})),
			want: Size{Width: 3, Height: 7},
		},
		"missing image is zero": {
			node: Image(nil),
			want: Size{},
		},
		"button with image": {
			node: Button("", WithSource(image.NewRGBA(image.Rect(0, 0, 16, 16)))),
			want: Size{Width: 16 + 2*(ButtonBorder+ButtonPaddingX), Height: 16 + 2*(ButtonBorder+ButtonPaddingY)},
		},
		"custom with size": {
			node: Custom(nil, WithSize(30, 12)),
			want: Size{Width: 30, Height: 12},
		},
		"custom with fill": {
			node: Custom(nil, WithFill()),
			want: Size{},
		},
		"empty": {
			node: Empty(),
			want: Size{},
		},
		"number shows value": {
			node: Text("ignored", WithNumber(&NumberField{Value: 42, Max: 100})),
			want: Size{Width: 12, Height: 8},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Measure(tt.node, testMetrics)
			if got != tt.want {
				t.Errorf("Measure() = %+v, want %+v", got, tt.want)
			}
			if tt.node.State() != Measured {
				t.Errorf("State() = %s, want measured", tt.node.State())
			}
		})
	}
}

func TestMeasure_Stacks(t *testing.T) {
	type tc struct {
		node *Node
		want Size
	}

	tests := map[string]tc{
		"hstack sums width and maxes height": {
			node: HStack(nil, Text("ab"), Text("abcd", WithFont("6x15"))),
			want: Size{Width: 36, Height: 15},
		},
		"vstack sums height and maxes width": {
			node: VStack(nil, Text("ab"), Text("abcd")),
			want: Size{Width: 24, Height: 16},
		},
		"padding on container": {
			node: VStack(Opts(WithPad(3)), Text("ab")),
			want: Size{Width: 18, Height: 14},
		},
		"empty container": {
			node: HStack(nil),
			want: Size{},
		},
		"nested": {
			node: VStack(nil,
				HStack(nil, Text("a"), Text("b")),
				Text("abc"),
			),
			want: Size{Width: 18, Height: 16},
		},
		"rotated container swaps": {
			node: HStack(Opts(WithRotation(Rotate90)), Text("ab"), Text("ab")),
			want: Size{Width: 8, Height: 24},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Measure(tt.node, testMetrics)
			if got != tt.want {
				t.Errorf("Measure() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMeasure_Rotation(t *testing.T) {
	base := Measure(Text("abc"), testMetrics)

	for _, rot := range []Rotation{Rotate0, Rotate90, Rotate180, Rotate270} {
		got := Measure(Text("abc", WithRotation(rot)), testMetrics)
		want := base
		if rot.Odd() {
			want = base.Swap()
		}
		if got != want {
			t.Errorf("rotation %d: Measure() = %+v, want %+v", rot, got, want)
		}
	}
}

func TestMeasure_RotationBeforePadding(t *testing.T) {
	got := Measure(Text("abc", WithRotation(Rotate90), WithPad(1), WithWidth(20)), testMetrics)
	want := Size{Width: 20, Height: 20}
	if got != want {
		t.Errorf("Measure() = %+v, want %+v", got, want)
	}
}

func TestMeasure_FillInference(t *testing.T) {
	type tc struct {
		node         *Node
		fillX, fillY bool
	}

	tests := map[string]tc{
		"no fill": {
			node: HStack(nil, Text("a"), Text("b")),
		},
		"inherits fill x": {
			node:  HStack(nil, Text("a"), Empty(WithFillX())),
			fillX: true,
		},
		"inherits through nesting": {
			node:  VStack(nil, HStack(nil, Empty(WithFillY()))),
			fillY: true,
		},
		"author pin wins": {
			node: HStack(Opts(WithNoFillX()), Empty(WithFillX())),
		},
		"author set on container": {
			node:  HStack(Opts(WithFillX()), Text("a")),
			fillX: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			Measure(tt.node, testMetrics)
			if tt.node.FillX() != tt.fillX {
				t.Errorf("FillX() = %v, want %v", tt.node.FillX(), tt.fillX)
			}
			if tt.node.FillY() != tt.fillY {
				t.Errorf("FillY() = %v, want %v", tt.node.FillY(), tt.fillY)
			}
		})
	}
}

func TestMeasure_CustomWithoutSizePanics(t *testing.T) {
	mustPanic(t, func() {
		Measure(Custom(nil, WithWidth(10)), testMetrics)
	})
}

func TestMeasure_Incremental(t *testing.T) {
	changed := Text("ab")
	sibling := Text("abc")
	inner := HStack(nil, changed)
	root := VStack(nil, inner, sibling)
	layoutAt(root, 100, 100)

	changed.SetLabel("abcdef")

	for _, n := range []*Node{changed, inner, root} {
		if n.State() != Unmeasured {
			t.Errorf("%s: State() = %s, want unmeasured", n, n.State())
		}
	}
	if sibling.State() != Arranged {
		t.Errorf("sibling State() = %s, want arranged", sibling.State())
	}

	got := Measure(root, testMetrics)
	if want := (Size{Width: 36, Height: 16}); got != want {
		t.Errorf("Measure() = %+v, want %+v", got, want)
	}
	// The untouched sibling keeps its geometry until the next arrangement.
	if sibling.State() != Arranged {
		t.Errorf("sibling was re-measured: State() = %s", sibling.State())
	}
}

func TestMeasure_StyleChangeKeepsLayout(t *testing.T) {
	n := Text("ab")
	root := VStack(nil, n)
	layoutAt(root, 50, 50)

	n.SetFg(Red)
	n.SetSelected(true)
	n.Invalidate()
	n.SetLabel("ab")

	if root.State() != Arranged {
		t.Errorf("State() = %s, want arranged", root.State())
	}
}
