// Package text measures text content so layout items can report an
// intrinsic minimum size without a full text-shaping engine.
package text

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/uikit/pkg/geometry"
)

// Measurer computes text extents with a fixed font face.
type Measurer struct {
	face   font.Face
	height float64
}

// NewMeasurer creates a measurer for the given face.
func NewMeasurer(face font.Face) *Measurer {
	return &Measurer{
		face:   face,
		height: fixedToFloat(face.Metrics().Height),
	}
}

// Default returns a measurer backed by the bundled bitmap face. Demo
// apps and tests use it; real hosts wire in their own font.Face.
func Default() *Measurer {
	return NewMeasurer(basicfont.Face7x13)
}

// LineHeight returns the height of a single text line.
func (m *Measurer) LineHeight() float64 {
	return m.height
}

// Measure returns the pixel extent of the text. Newlines break lines;
// the width is that of the longest line.
func (m *Measurer) Measure(s string) geometry.Size {
	if s == "" {
		return geometry.Size{Height: m.height}
	}
	lines := strings.Split(s, "\n")
	width := 0.0
	for _, line := range lines {
		w := fixedToFloat(font.MeasureString(m.face, line))
		if w > width {
			width = w
		}
	}
	return geometry.Size{
		Width:  width,
		Height: m.height * float64(len(lines)),
	}
}

// Intrinsic adapts Measure to the flex item intrinsic-size callback
// signature, ignoring the available space: unwrapped text wants its
// full extent.
func (m *Measurer) Intrinsic(s string) func(geometry.Size) geometry.Size {
	return func(geometry.Size) geometry.Size {
		return m.Measure(s)
	}
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
