package raster

import (
	"fmt"

	"github.com/grindlemire/go-lcd"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFont is the name the empty font resolves to.
const DefaultFont = "7x13"

// Faces maps font names to faces.
type Faces map[string]font.Face

// DefaultFaces returns the built-in face set.
func DefaultFaces() Faces {
	return Faces{DefaultFont: basicfont.Face7x13}
}

func (f Faces) face(name string) (font.Face, error) {
	if name == "" {
		name = DefaultFont
	}
	face, ok := f[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", lcd.ErrUnknownFont, name)
	}
	return face, nil
}

// Metrics measures text with font faces.
type Metrics struct {
	faces Faces
}

var _ lcd.Metrics = (*Metrics)(nil)

// NewMetrics returns metrics over faces. A nil set uses DefaultFaces.
func NewMetrics(faces Faces) *Metrics {
	if faces == nil {
		faces = DefaultFaces()
	}
	return &Metrics{faces: faces}
}

// Measure implements lcd.Metrics.
func (m *Metrics) Measure(name, text string) (lcd.Size, error) {
	face, err := m.faces.face(name)
	if err != nil {
		return lcd.Size{}, err
	}
	return lcd.Size{
		Width:  font.MeasureString(face, text).Ceil(),
		Height: face.Metrics().Height.Ceil(),
	}, nil
}

// Wrap implements lcd.Metrics.
func (m *Metrics) Wrap(name, text string, maxWidth int) ([]string, error) {
	face, err := m.faces.face(name)
	if err != nil {
		return nil, err
	}
	return lcd.WrapText(text, maxWidth, func(s string) int {
		return font.MeasureString(face, s).Ceil()
	}), nil
}

// LineHeight implements lcd.Metrics.
func (m *Metrics) LineHeight(name string) (int, error) {
	face, err := m.faces.face(name)
	if err != nil {
		return 0, err
	}
	return face.Metrics().Height.Ceil(), nil
}
