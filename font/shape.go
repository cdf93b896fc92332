package font

import (
	"unicode"
	"unicode/utf8"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/textbox/layout"
)

// Shape converts text into glyphs using HarfBuzz shaping via
// go-text/typesetting. Glyphs come out in visual order; for rtl text that
// is right to left. Cluster is the byte offset into text of the first
// character the glyph was shaped from.
//
// Results are memoized per (text, size, rtl) and the returned slice must
// not be modified.
func (f *Font) Shape(text string, size float64, rtl bool) []layout.ShapedGlyph {
	if text == "" || size <= 0 {
		return nil
	}
	return f.shapes.GetOrCreate(shapeKey{text: text, size: size, rtl: rtl}, func() []layout.ShapedGlyph {
		return f.shape(text, size, rtl)
	})
}

func (f *Font) shape(text string, size float64, rtl bool) []layout.ShapedGlyph {
	runes := []rune(text)

	dir := di.DirectionLTR
	if rtl {
		dir = di.DirectionRTL
	}

	// font.Face is not safe for concurrent use; each call gets its own.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      gtfont.NewFace(f.shapeFont),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(f.config.language),
	}

	hb := f.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	f.shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs, byteOffsets(runes))
}

// detectScript returns the script of the first non-space rune.
// Mixed-script text is shaped with that single script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// byteOffsets maps rune indices to byte offsets. The extra trailing entry
// is the total byte length.
func byteOffsets(runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	n := 0
	for i, r := range runes {
		offsets[i] = n
		n += utf8.RuneLen(r)
	}
	offsets[len(runes)] = n
	return offsets
}

// convertGlyphs converts go-text output glyphs to layout.ShapedGlyph.
func convertGlyphs(glyphs []shaping.Glyph, offsets []int) []layout.ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}
	result := make([]layout.ShapedGlyph, len(glyphs))
	for i, g := range glyphs {
		cluster := g.TextIndex()
		if cluster < 0 || cluster >= len(offsets) {
			cluster = len(offsets) - 1
		}
		result[i] = layout.ShapedGlyph{
			GlyphID: uint16(g.GlyphID), //nolint:gosec // sfnt glyph indices are 16-bit
			Cluster: offsets[cluster],
			XOffset: fromFixed(g.XOffset),
			YOffset: fromFixed(g.YOffset),
			Advance: fromFixed(g.Advance),
		}
	}
	return result
}
