package font

import (
	"image"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/textbox/layout"
)

// GlyphBounds returns the bitmap placement of the glyph described by key
// without rasterizing it. Results are memoized.
func (f *Font) GlyphBounds(key layout.RasterKey) layout.GlyphMetrics {
	return f.bounds.GetOrCreate(key, func() layout.GlyphMetrics {
		segments, ok := f.loadGlyph(key)
		if !ok {
			return layout.GlyphMetrics{}
		}
		m, _ := figureOutBounds(segments.Bounds(), key)
		return m
	})
}

// Rasterize renders the glyph described by key into a coverage mask.
// The mask is Width*Height bytes, row-major, one coverage byte per pixel.
// Empty glyphs (such as space) return zero metrics and a nil mask.
func (f *Font) Rasterize(key layout.RasterKey) (layout.GlyphMetrics, []byte) {
	segments, ok := f.loadGlyph(key)
	if !ok {
		return layout.GlyphMetrics{}, nil
	}
	m, norm := figureOutBounds(segments.Bounds(), key)
	if m.Width <= 0 || m.Height <= 0 {
		return layout.GlyphMetrics{}, nil
	}

	var z vector.Rasterizer
	z.Reset(m.Width, m.Height)
	z.DrawOp = draw.Src

	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X+norm.X) / 64, float32(p.Y+norm.Y) / 64
	}
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			z.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			z.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, m.Width, m.Height))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return m, mask.Pix
}

// loadGlyph loads the outline of key's glyph scaled to key's size.
// Coordinates are in 26.6 pixels with y pointing down.
func (f *Font) loadGlyph(key layout.RasterKey) (sfnt.Segments, bool) {
	if key.Size <= 0 || int(key.GlyphID) >= f.sfnt.NumGlyphs() {
		return nil, false
	}
	var buf sfnt.Buffer
	segments, err := f.sfnt.LoadGlyph(&buf, sfnt.GlyphIndex(key.GlyphID), toFixed(key.Size), nil)
	if err != nil || len(segments) == 0 {
		return nil, false
	}
	return segments, true
}

// figureOutBounds computes the integer mask placement of an outline drawn
// at the subpixel offset in key, and the offset that moves the outline
// into the mask's positive quadrant.
func figureOutBounds(bounds fixed.Rectangle26_6, key layout.RasterKey) (layout.GlyphMetrics, fixed.Point26_6) {
	fract := fixed.Int26_6(int(key.SubpixelX) * 64 / layout.SubpixelSteps)
	minX := (bounds.Min.X + fract).Floor()
	minY := bounds.Min.Y.Floor()

	norm := fixed.Point26_6{
		X: -fixed.I(minX) + fract,
		Y: -fixed.I(minY),
	}
	return layout.GlyphMetrics{
		XMin:   minX,
		YMin:   minY,
		Width:  (bounds.Max.X + norm.X).Ceil(),
		Height: (bounds.Max.Y + norm.Y).Ceil(),
	}, norm
}
