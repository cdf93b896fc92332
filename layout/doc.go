// Package layout positions shaped glyphs inside a rectangular region.
//
// A Layout is reset with Settings describing the region and alignment, then
// fed one StyleRun at a time. Each run names the font it must be shaped
// with by index into the font list passed to Append, so callers can resolve
// font fallback themselves and hand the engine pre-split runs:
//
//	l := layout.NewLayout()
//	s := layout.DefaultSettings()
//	s.MaxWidth, s.MaxHeight = 300, 100
//	l.Reset(s)
//	l.Append(fonts, layout.StyleRun{Text: "Hello, ", Size: 24, FontIndex: 0})
//	l.Append(fonts, layout.StyleRun{Text: "κόσμε", Size: 24, FontIndex: 1})
//
//	for _, g := range l.Glyphs() {
//	    // g.Key identifies the bitmap, g.X/g.Y its top-left corner.
//	}
//
// Positions use a y-down coordinate system. Glyph pen positions are
// snapped to 1/SubpixelSteps of a pixel horizontally and to whole pixels
// vertically; the horizontal fraction is recorded in RasterKey.SubpixelX.
//
// A Layout is not safe for concurrent use.
package layout
