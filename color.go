package lcd

import (
	"errors"
	"strings"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents an unset color; the node inherits from its parent or theme.
	ColorDefault ColorType = iota
	// ColorRGB represents a 24-bit RGB color.
	ColorRGB
)

// Color is a display color. The zero value is the unset (inherit) color.
//
// Color implements image/color.Color so canvases can hand it directly to
// the standard image packages. An unset color converts to transparent.
type Color struct {
	typ     ColorType
	r, g, b uint8
}

// DefaultColor returns the unset color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// RGBColor returns a 24-bit RGB Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses a hex color string and returns a Color.
// Supported formats: "#RRGGBB" and "#RGB".
func HexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 6:
		r, err := parseHexByte(hex[0:2])
		if err != nil {
			return Color{}, err
		}
		g, err := parseHexByte(hex[2:4])
		if err != nil {
			return Color{}, err
		}
		b, err := parseHexByte(hex[4:6])
		if err != nil {
			return Color{}, err
		}
		return RGBColor(r, g, b), nil
	case 3:
		r, err := parseHexNibble(hex[0])
		if err != nil {
			return Color{}, err
		}
		g, err := parseHexNibble(hex[1])
		if err != nil {
			return Color{}, err
		}
		b, err := parseHexNibble(hex[2])
		if err != nil {
			return Color{}, err
		}
		// Expand nibble to byte: 0xF -> 0xFF
		return RGBColor(r<<4|r, g<<4|g, b<<4|b), nil
	default:
		return Color{}, errors.New("invalid hex color format: expected #RGB or #RRGGBB")
	}
}

// parseHexByte parses a two-character hex string into a byte.
func parseHexByte(s string) (uint8, error) {
	if len(s) != 2 {
		return 0, errors.New("invalid hex byte")
	}
	high, err := parseHexNibble(s[0])
	if err != nil {
		return 0, err
	}
	low, err := parseHexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return high<<4 | low, nil
}

// parseHexNibble parses a single hex character into a nibble (0-15).
func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errors.New("invalid hex character")
	}
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if the color is unset.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// RGB returns the red, green, and blue components.
// An unset color reports black.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	if c.typ != other.typ {
		return false
	}
	if c.typ == ColorDefault {
		return true
	}
	return c.r == other.r && c.g == other.g && c.b == other.b
}

// Or returns c, or fallback when c is unset.
func (c Color) Or(fallback Color) Color {
	if c.IsDefault() {
		return fallback
	}
	return c
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c.typ == ColorDefault {
		return 0, 0, 0, 0
	}
	r = uint32(c.r)
	r |= r << 8
	g = uint32(c.g)
	g |= g << 8
	b = uint32(c.b)
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns the color as "#rrggbb", or "default" when unset.
func (c Color) String() string {
	if c.typ == ColorDefault {
		return "default"
	}
	const digits = "0123456789abcdef"
	buf := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range [3]uint8{c.r, c.g, c.b} {
		buf[1+2*i] = digits[v>>4]
		buf[2+2*i] = digits[v&0x0f]
	}
	return string(buf)
}

// Basic display colors.
var (
	Black   = RGBColor(0, 0, 0)
	White   = RGBColor(255, 255, 255)
	Red     = RGBColor(255, 0, 0)
	Green   = RGBColor(0, 255, 0)
	Blue    = RGBColor(0, 0, 255)
	Yellow  = RGBColor(255, 255, 0)
	Cyan    = RGBColor(0, 255, 255)
	Magenta = RGBColor(255, 0, 255)
	Gray    = RGBColor(128, 128, 128)
)
