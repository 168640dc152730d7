package lcd

import (
	"encoding/binary"
	"image"
	"math"

	"github.com/cespare/xxhash/v2"
)

// nodeHash digests the drawing-relevant state of a single node. Children are
// never part of the digest, so a container's hash only covers what the
// container itself paints.
//
// Fields are written in a fixed order with length prefixes for strings, so
// the digest does not depend on how the node was constructed. The arranged
// rect is included: the same content at a new position is a different
// drawing.
func nodeHash(n *Node, pt paint, theme Theme) uint64 {
	h := hasher{d: xxhash.New()}

	h.u8(uint8(n.kind))
	h.rect(n.rect)
	h.color(pt.fg)
	h.color(pt.bg)
	h.color(n.border)
	h.bool(n.selected)
	h.bool(n.editing)
	h.u64(n.revision)
	h.u8(uint8(n.rotation))
	h.i64(int64(n.halign))
	h.i64(int64(n.valign))
	h.i64(int64(n.pad))

	switch n.kind {
	case KindText:
		h.str(n.font)
		h.str(n.label)
		h.bool(n.wrap)
		h.i64(int64(len(n.lines)))
		for _, line := range n.lines {
			h.str(line)
		}
	case KindButton:
		h.str(n.font)
		h.str(n.label)
		// The face depends on the theme rather than on inherited paint.
		h.color(theme.Bg2)
		h.color(theme.Fg2)
		h.color(theme.BgH)
		h.color(theme.FgH)
		h.u64(math.Float64bits(n.scale))
		h.image(n.image())
	case KindImage:
		h.u64(math.Float64bits(n.scale))
		h.image(n.image())
	}
	return h.d.Sum64()
}

type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (h *hasher) u8(v uint8) {
	h.buf[0] = v
	_, _ = h.d.Write(h.buf[:1])
}

func (h *hasher) u64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) i64(v int64) {
	h.u64(uint64(v))
}

func (h *hasher) bool(v bool) {
	if v {
		h.u8(1)
	} else {
		h.u8(0)
	}
}

func (h *hasher) str(s string) {
	h.u64(uint64(len(s)))
	_, _ = h.d.WriteString(s)
}

func (h *hasher) rect(r Rect) {
	h.i64(int64(r.X))
	h.i64(int64(r.Y))
	h.i64(int64(r.Width))
	h.i64(int64(r.Height))
}

func (h *hasher) color(c Color) {
	r, g, b := c.RGB()
	h.u8(uint8(c.Type()))
	h.u8(r)
	h.u8(g)
	h.u8(b)
}

// image hashes bounds and pixels. Common in-memory formats are hashed from
// their backing slices; anything else goes through At.
func (h *hasher) image(img image.Image) {
	if img == nil {
		h.u8(0)
		return
	}
	h.u8(1)
	b := img.Bounds()
	h.rect(Rect{X: b.Min.X, Y: b.Min.Y, Width: b.Dx(), Height: b.Dy()})

	switch src := img.(type) {
	case *image.RGBA:
		h.pixels(src.Pix, src.Stride, b.Dx()*4, b.Dy(), src.PixOffset(b.Min.X, b.Min.Y))
	case *image.NRGBA:
		h.pixels(src.Pix, src.Stride, b.Dx()*4, b.Dy(), src.PixOffset(b.Min.X, b.Min.Y))
	case *image.Gray:
		h.pixels(src.Pix, src.Stride, b.Dx(), b.Dy(), src.PixOffset(b.Min.X, b.Min.Y))
	case *image.Paletted:
		for _, c := range src.Palette {
			h.rgba(c.RGBA())
		}
		h.pixels(src.Pix, src.Stride, b.Dx(), b.Dy(), src.PixOffset(b.Min.X, b.Min.Y))
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				h.rgba(img.At(x, y).RGBA())
			}
		}
	}
}

func (h *hasher) pixels(pix []byte, stride, rowLen, rows, offset int) {
	for y := 0; y < rows; y++ {
		start := offset + y*stride
		_, _ = h.d.Write(pix[start : start+rowLen])
	}
}

func (h *hasher) rgba(r, g, b, a uint32) {
	h.u64(uint64(r)<<48 | uint64(g)<<32 | uint64(b)<<16 | uint64(a))
}
