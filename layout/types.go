package layout

import "math"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// SubpixelSteps is the number of horizontal subpixel positions a glyph
// can be rasterized at.
const SubpixelSteps = 4

// HorizontalAlign specifies how lines are placed within the layout width.
type HorizontalAlign int

const (
	// AlignLeft places lines against the left edge.
	AlignLeft HorizontalAlign = iota
	// AlignCenter centers lines horizontally.
	AlignCenter
	// AlignRight places lines against the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a HorizontalAlign) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// Factor returns the share of leftover horizontal space placed before a
// line: 0 for left, 0.5 for center, 1 for right.
func (a HorizontalAlign) Factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// VerticalAlign specifies how the block of lines is placed within the
// layout height.
type VerticalAlign int

const (
	// AlignTop places the first line against the top edge.
	AlignTop VerticalAlign = iota
	// AlignMiddle centers the block vertically.
	AlignMiddle
	// AlignBottom places the last line against the bottom edge.
	AlignBottom
)

// String returns the string representation of the alignment.
func (a VerticalAlign) String() string {
	switch a {
	case AlignTop:
		return "Top"
	case AlignMiddle:
		return "Middle"
	case AlignBottom:
		return "Bottom"
	default:
		return unknownStr
	}
}

// Factor returns the share of leftover vertical space placed above the
// block: 0 for top, 0.5 for middle, 1 for bottom.
func (a VerticalAlign) Factor() float64 {
	switch a {
	case AlignMiddle:
		return 0.5
	case AlignBottom:
		return 1
	default:
		return 0
	}
}

// WrapMode specifies how lines are broken when they exceed MaxWidth.
type WrapMode uint8

const (
	// WrapWordChar breaks after whitespace first and falls back to
	// character boundaries for words longer than the line.
	WrapWordChar WrapMode = iota

	// WrapChar breaks at any character boundary.
	WrapChar

	// WrapNone never breaks; lines may exceed MaxWidth.
	WrapNone
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapWordChar:
		return "WordChar"
	case WrapChar:
		return "Char"
	case WrapNone:
		return "None"
	default:
		return unknownStr
	}
}

// Settings configures a layout pass.
type Settings struct {
	// X, Y is the top-left corner of the layout region.
	X, Y float64

	// MaxWidth is the width lines wrap at and align within.
	// If +Inf, lines never wrap and align against the widest line.
	// A zero width is a real bound: every line overflows it.
	MaxWidth float64

	// MaxHeight is the height the block of lines aligns within.
	// If +Inf, vertical alignment is ignored.
	MaxHeight float64

	// HAlign is the horizontal alignment of each line.
	HAlign HorizontalAlign

	// VAlign is the vertical alignment of the block of lines.
	VAlign VerticalAlign

	// LineHeight is a multiplier for the natural line height.
	LineHeight float64

	// Wrap selects the line breaking strategy.
	Wrap WrapMode

	// WrapHardBreaks makes '\n', '\r' and "\r\n" start a new line.
	WrapHardBreaks bool
}

// DefaultSettings returns the default layout settings: an unbounded
// region at the origin, left/top aligned, natural line height, word
// wrapping and hard breaks enabled.
func DefaultSettings() Settings {
	return Settings{
		MaxWidth:       math.Inf(1),
		MaxHeight:      math.Inf(1),
		HAlign:         AlignLeft,
		VAlign:         AlignTop,
		LineHeight:     1.0,
		Wrap:           WrapWordChar,
		WrapHardBreaks: true,
	}
}

// StyleRun is a piece of text laid out with a single font and size.
type StyleRun struct {
	Text      string
	Size      float64
	FontIndex int
}

// RasterKey identifies one rasterized glyph bitmap: a glyph of a font at a
// size and horizontal subpixel offset. It is comparable and can be used as
// a map key.
type RasterKey struct {
	// FontID identifies the font, see Font.ID.
	FontID uint64

	// GlyphID is the glyph index within the font.
	GlyphID uint16

	// Size is the font size in pixels per em.
	Size float64

	// SubpixelX is the horizontal offset in 1/SubpixelSteps pixels.
	SubpixelX uint8
}

// Offset returns the horizontal subpixel offset in pixels.
func (k RasterKey) Offset() float64 {
	return float64(k.SubpixelX) / SubpixelSteps
}

// GlyphMetrics describes the bitmap of a rasterized glyph.
type GlyphMetrics struct {
	// XMin, YMin is the top-left corner of the bitmap relative to the pen
	// position on the baseline (y down).
	XMin, YMin int

	// Width, Height is the bitmap size in pixels.
	// Both are 0 for glyphs without an outline, such as spaces.
	Width, Height int
}

// LineMetrics holds font-level vertical metrics at a specific size.
type LineMetrics struct {
	// Ascent is the distance from the baseline to the top (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom (positive).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// Height returns the line height (ascent + descent + line gap).
func (m LineMetrics) Height() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// ShapedGlyph is a glyph produced by shaping, positioned relative to the
// pen.
type ShapedGlyph struct {
	// GlyphID is the glyph index in the font.
	GlyphID uint16

	// Cluster is the byte offset of the glyph's source text in the
	// shaped string.
	Cluster int

	// XOffset, YOffset adjust the glyph relative to the pen (y up).
	XOffset, YOffset float64

	// Advance is how far the pen moves after this glyph.
	Advance float64
}

// GlyphPosition is a glyph placed by the layout.
type GlyphPosition struct {
	// FontIndex is the index of the glyph's font in the font list.
	FontIndex int

	// Key identifies the glyph bitmap.
	Key RasterKey

	// X, Y is the top-left corner of the glyph bitmap.
	X, Y float64

	// Width, Height is the bitmap size in pixels.
	Width, Height int

	// Char is the source character.
	Char rune

	// ByteOffset is the offset of Char in the concatenated run text.
	ByteOffset int
}

// LinePosition describes one laid out line.
type LinePosition struct {
	// Baseline is the y coordinate of the line's baseline.
	Baseline float64

	// Padding is the unused width of the line: MaxWidth minus the line
	// width, or the widest line minus the line width when MaxWidth is
	// unbounded. It is negative for lines overflowing MaxWidth.
	Padding float64

	// Height is the line height including line spacing.
	Height float64

	// GlyphStart and GlyphEnd delimit the line's glyphs in Glyphs().
	GlyphStart, GlyphEnd int
}

// Font is the font functionality a Layout needs.
type Font interface {
	// ID returns an identifier unique to the font's data.
	ID() uint64

	// HasGlyph reports whether the font maps r to a glyph.
	HasGlyph(r rune) bool

	// LineMetrics returns vertical metrics at size pixels per em.
	LineMetrics(size float64) LineMetrics

	// Shape converts text into glyphs in visual order.
	Shape(text string, size float64, rtl bool) []ShapedGlyph

	// GlyphBounds returns the bitmap metrics of the glyph key describes.
	GlyphBounds(key RasterKey) GlyphMetrics
}
