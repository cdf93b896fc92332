// Package font loads TrueType and OpenType fonts for text boxes.
//
// A Font is heavyweight: parse it once and share it. It provides
// everything a text box needs from a font: character coverage for
// fallback resolution, line metrics, HarfBuzz shaping through
// github.com/go-text/typesetting, and glyph rasterization through
// golang.org/x/image/vector.
//
//	f, err := font.ParseFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	glyphs := f.Shape("Hello", 24, false)
//
// Font is safe for concurrent use.
package font
