package lcd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrUnknownFont is returned by Metrics providers for fonts they cannot resolve.
var ErrUnknownFont = errors.New("unknown font")

// Metrics measures text for a font.
type Metrics interface {
	// Measure returns the size of a single line of text.
	Measure(font, text string) (Size, error)

	// Wrap breaks text into lines no wider than maxWidth where possible.
	Wrap(font, text string, maxWidth int) ([]string, error)

	// LineHeight returns the height of one line of text.
	LineHeight(font string) (int, error)
}

// MonoFont is a fixed-cell font.
type MonoFont struct {
	CellWidth  int
	CellHeight int
}

// MonoMetrics measures text in fixed-size cells. East Asian wide runes take
// two cells and control characters none, following go-runewidth.
type MonoMetrics struct {
	Fonts   map[string]MonoFont
	Default string
}

// NewMonoMetrics returns metrics for the common small bitmap fonts.
// The empty font name resolves to "6x8".
func NewMonoMetrics() *MonoMetrics {
	return &MonoMetrics{
		Fonts: map[string]MonoFont{
			"4x6":   {CellWidth: 4, CellHeight: 6},
			"6x8":   {CellWidth: 6, CellHeight: 8},
			"6x15":  {CellWidth: 6, CellHeight: 15},
			"12x20": {CellWidth: 12, CellHeight: 20},
		},
		Default: "6x8",
	}
}

func (m *MonoMetrics) font(name string) (MonoFont, error) {
	if name == "" {
		name = m.Default
	}
	f, ok := m.Fonts[name]
	if !ok {
		return MonoFont{}, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	return f, nil
}

// Measure implements Metrics.
func (m *MonoMetrics) Measure(font, text string) (Size, error) {
	f, err := m.font(font)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: runewidth.StringWidth(text) * f.CellWidth, Height: f.CellHeight}, nil
}

// Wrap implements Metrics.
func (m *MonoMetrics) Wrap(font, text string, maxWidth int) ([]string, error) {
	f, err := m.font(font)
	if err != nil {
		return nil, err
	}
	return WrapText(text, maxWidth, func(s string) int {
		return runewidth.StringWidth(s) * f.CellWidth
	}), nil
}

// LineHeight implements Metrics.
func (m *MonoMetrics) LineHeight(font string) (int, error) {
	f, err := m.font(font)
	if err != nil {
		return 0, err
	}
	return f.CellHeight, nil
}

// WrapText greedily breaks text into lines no wider than maxWidth as measured
// by width. Explicit newlines always break. Words wider than maxWidth are
// split between runes; every line holds at least one rune.
func WrapText(text string, maxWidth int, width func(string) int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, maxWidth, width)...)
	}
	return lines
}

func wrapParagraph(para string, maxWidth int, width func(string) int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := ""
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if width(candidate) <= maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
		if width(word) <= maxWidth {
			line = word
			continue
		}
		// Split an overlong word between runes.
		chunk := ""
		for _, r := range word {
			next := chunk + string(r)
			if chunk != "" && width(next) > maxWidth {
				lines = append(lines, chunk)
				next = string(r)
			}
			chunk = next
		}
		line = chunk
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
