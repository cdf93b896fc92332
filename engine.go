package textbox

import "github.com/gogpu/textbox/layout"

// Engine lays out style runs. *layout.Layout implements it.
//
// A TextBox keeps using the engine it was built with, so the engine must
// not be reset while the TextBox is in use. Reset must change
// Generation; a TextBox whose engine generation changed reports
// ErrLayoutReleased.
type Engine interface {
	Reset(settings layout.Settings)
	Append(fonts []layout.Font, run layout.StyleRun)
	Lines() []layout.LinePosition
	Height() float64
	Glyphs() []layout.GlyphPosition
	Generation() uint64
}

// Font is a font that can be laid out and rasterized. *font.Font and
// *font.Filtered implement it.
//
// Rasterize returns the placement of the glyph described by key and its
// coverage mask, Width*Height bytes in row-major order.
type Font interface {
	layout.Font
	Rasterize(key layout.RasterKey) (layout.GlyphMetrics, []byte)
}

var _ Engine = (*layout.Layout)(nil)
