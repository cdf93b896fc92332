package font

import "github.com/gogpu/textbox/layout"

// UnicodeRange represents a contiguous range of code points.
type UnicodeRange struct {
	Start rune
	End   rune
}

// Contains reports whether the rune is in the range.
func (ur UnicodeRange) Contains(r rune) bool {
	return r >= ur.Start && r <= ur.End
}

// Common Unicode ranges for filtering fonts.
var (
	RangeBasicLatin = UnicodeRange{0x0000, 0x007F} // ASCII
	RangeLatin1Sup  = UnicodeRange{0x0080, 0x00FF} // Latin-1 Supplement
	RangeLatinExtA  = UnicodeRange{0x0100, 0x017F} // Latin Extended-A
	RangeGreek      = UnicodeRange{0x0370, 0x03FF} // Greek and Coptic
	RangeCyrillic   = UnicodeRange{0x0400, 0x04FF}
)

// Glyphs is a font that can shape and rasterize glyphs. *Font and the
// result of Filter implement it.
type Glyphs interface {
	layout.Font
	Rasterize(key layout.RasterKey) (layout.GlyphMetrics, []byte)
}

// Filtered wraps a font and restricts the characters it reports as
// covered. Shaping, metrics and rasterization are delegated unchanged, so
// a filtered font shares glyph cache entries with the font it wraps.
//
// Filtered is mostly useful to build a fallback chain out of fonts whose
// coverage overlaps, for example to draw digits from a second font.
type Filtered struct {
	font   Glyphs
	ranges []UnicodeRange
}

// Filter returns f restricted to ranges.
// If no ranges are specified, all characters f covers remain available.
func Filter(f Glyphs, ranges ...UnicodeRange) *Filtered {
	return &Filtered{font: f, ranges: ranges}
}

// ID returns the wrapped font's ID.
func (f *Filtered) ID() uint64 {
	return f.font.ID()
}

// HasGlyph reports whether r is in the allowed ranges and the wrapped
// font has it.
func (f *Filtered) HasGlyph(r rune) bool {
	if !f.inRanges(r) {
		return false
	}
	return f.font.HasGlyph(r)
}

// LineMetrics implements layout.Font.
func (f *Filtered) LineMetrics(size float64) layout.LineMetrics {
	return f.font.LineMetrics(size)
}

// Shape implements layout.Font.
func (f *Filtered) Shape(text string, size float64, rtl bool) []layout.ShapedGlyph {
	return f.font.Shape(text, size, rtl)
}

// GlyphBounds implements layout.Font.
func (f *Filtered) GlyphBounds(key layout.RasterKey) layout.GlyphMetrics {
	return f.font.GlyphBounds(key)
}

// Rasterize delegates to the wrapped font.
func (f *Filtered) Rasterize(key layout.RasterKey) (layout.GlyphMetrics, []byte) {
	return f.font.Rasterize(key)
}

// inRanges reports whether the rune is in any of the allowed ranges.
func (f *Filtered) inRanges(r rune) bool {
	if len(f.ranges) == 0 {
		return true
	}
	for _, ur := range f.ranges {
		if ur.Contains(r) {
			return true
		}
	}
	return false
}

var (
	_ Glyphs = (*Font)(nil)
	_ Glyphs = (*Filtered)(nil)
)
