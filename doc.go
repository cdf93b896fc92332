// Package textbox lays out a string inside a rectangle using a chain of
// fallback fonts, measures the tight bounds of the result and draws it
// onto a pixel buffer through a memoized glyph cache.
//
// # Quick Start
//
//	f, _ := font.Parse(goregular.TTF)
//	canvas, _ := textbox.NewPixmap(400, 100)
//	cache := textbox.NewGlyphCache()
//
//	tb, err := textbox.New(f, "Hello, World").
//	    Color(textbox.Black).
//	    Size(32).
//	    Build(layout.NewLayout(), 400, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = tb.Draw(canvas, cache)
//	_ = canvas.SavePNG("hello.png")
//
// # Bounds
//
// A Builder has no bounds. BoundsInner gives the region the text is laid
// out in; BoundsOuter gives the region including a margin of half the
// font size, removed again at Build. Builder.Build uses a whole canvas as
// outer bounds. Only an InnerBuilder can be built without an error check.
//
// # Fallback Fonts
//
// Fonts added with FallbackFont are tried in order for every character.
// A character none of them has is drawn with the primary font. Runs of
// characters resolving to the same font are laid out together.
//
// # Glyph Cache
//
// Draw tints each glyph's coverage mask with the text color, producing a
// premultiplied Pixmap, and stores it in a GlyphCache keyed by glyph and
// color. Redrawing the same text reuses every bitmap. The cache is never
// evicted; call Clear when it grows too large.
//
// # Collaborators
//
// The layout engine, fonts and canvas are interfaces: Engine, Font and
// Canvas. Package layout, package font, Pixmap and ImageCanvas provide
// the default implementations.
//
// # Coordinate System
//
// Origin (0,0) at top-left, x increases right, y increases down, units
// are pixels.
package textbox
