package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font wraps a font face for widget text. The zero Font has no face and
// text drawing operations using it do nothing, matching a display with no
// default font configured.
type Font struct {
	Face font.Face
}

// NewFont wraps an existing face.
func NewFont(face font.Face) Font {
	return Font{Face: face}
}

// DefaultFont returns the built-in 7x13 bitmap face. Embedded targets that
// ship their own fonts register them through a Font value instead.
func DefaultFont() Font {
	return Font{Face: basicfont.Face7x13}
}

// IsZero reports whether the font has no face.
func (f Font) IsZero() bool {
	return f.Face == nil
}

// Measure returns the pixel width and height of s rendered in f.
// A zero font measures everything as empty.
func (f Font) Measure(s string) Size {
	if f.Face == nil || s == "" {
		return Size{}
	}
	w := font.MeasureString(f.Face, s)
	m := f.Face.Metrics()
	return Size{
		Width:  w.Ceil(),
		Height: (m.Ascent + m.Descent).Ceil(),
	}
}

// Ascent returns the pixel distance from the baseline to the top of the
// tallest glyph, or 0 for a zero font.
func (f Font) Ascent() int {
	if f.Face == nil {
		return 0
	}
	return f.Face.Metrics().Ascent.Ceil()
}

// Baseline converts a top coordinate to the fixed-point baseline dot
// position used by font.Drawer.
func (f Font) Baseline(x, top int) fixed.Point26_6 {
	return fixed.P(x, top+f.Ascent())
}
