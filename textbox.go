package textbox

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/textbox/internal/blend"
	"github.com/gogpu/textbox/layout"
)

// TextBox is laid out text ready to be measured and drawn.
//
// A TextBox reads glyph and line positions from the engine it was built
// with. Once that engine is reset, every method returns
// ErrLayoutReleased.
type TextBox struct {
	fonts  []Font
	inner  Rect
	color  color.NRGBA
	size   float64
	halign layout.HorizontalAlign
	valign layout.VerticalAlign

	engine     Engine
	generation uint64
}

// Inner returns the inner bounds the text was laid out in.
func (tb *TextBox) Inner() Rect {
	return tb.inner
}

// Size returns the font size in pixels per em.
func (tb *TextBox) Size() float64 {
	return tb.size
}

// Color returns the text color.
func (tb *TextBox) Color() color.NRGBA {
	return tb.color
}

// released reports whether the engine was reset after the build.
func (tb *TextBox) released() bool {
	return tb.engine.Generation() != tb.generation
}

// RectInner returns the tight rectangle occupied by the laid out lines,
// aligned inside the inner bounds the same way the lines are.
//
// The width is that of the widest line and the height is the total line
// height. Text that overflows the inner bounds yields a rectangle that
// extends past them, possibly with an origin before the inner origin.
func (tb *TextBox) RectInner() (Rect, error) {
	if tb.released() {
		return Rect{}, ErrLayoutReleased
	}

	width := 0.0
	for _, line := range tb.engine.Lines() {
		w := tb.inner.Width - line.Padding
		if math.IsNaN(w) {
			continue
		}
		width = max(width, w)
	}
	height := tb.engine.Height()

	x := tb.inner.X + (tb.inner.Width-width)*tb.halign.Factor()
	y := tb.inner.Y + (tb.inner.Height-height)*tb.valign.Factor()

	r, ok := RectFromXYWH(x, y, width, height)
	if !ok {
		return Rect{}, fmt.Errorf("%w: measured %vx%v at (%v, %v)", ErrRect, width, height, x, y)
	}
	return r, nil
}

// RectOuter returns RectInner grown by half the font size on every side.
func (tb *TextBox) RectOuter() (Rect, error) {
	inner, err := tb.RectInner()
	if err != nil {
		return Rect{}, err
	}
	m := tb.size / 2
	r, ok := inner.Outset(m, m)
	if !ok {
		return Rect{}, fmt.Errorf("%w: %+v by %v", ErrOutset, inner, m)
	}
	return r, nil
}

// Draw composites every glyph onto c.
//
// Tinted glyph bitmaps are looked up in cache and rasterized on a miss;
// new bitmaps are added to cache. A nil cache rasterizes every glyph on
// every call. Glyphs already drawn when an error occurs stay drawn.
func (tb *TextBox) Draw(c Canvas, cache *GlyphCache) error {
	if tb.released() {
		return ErrLayoutReleased
	}

	tint := [4]uint8{tb.color.R, tb.color.G, tb.color.B, tb.color.A}
	var drawn, hits, misses int
	for _, g := range tb.engine.Glyphs() {
		if g.Width == 0 || g.Height == 0 {
			continue
		}
		key := GlyphKey{Raster: g.Key, Color: tint}

		if cache != nil {
			if pm, ok := cache.Get(key); ok {
				c.DrawPixmap(pm, g.X, g.Y)
				drawn++
				hits++
				continue
			}
		}
		misses++

		pm, err := tb.rasterize(g, tint)
		if err != nil {
			return err
		}
		c.DrawPixmap(pm, g.X, g.Y)
		drawn++
		if cache != nil {
			cache.insert(key, pm)
		}
	}

	Logger().Debug("textbox: draw",
		"glyphs", drawn,
		"hits", hits,
		"misses", misses)
	return nil
}

// rasterize renders g's glyph tinted with tint into a new premultiplied
// pixmap.
func (tb *TextBox) rasterize(g layout.GlyphPosition, tint [4]uint8) (*Pixmap, error) {
	f := tb.fonts[0]
	if g.FontIndex > 0 && g.FontIndex < len(tb.fonts) {
		f = tb.fonts[g.FontIndex]
	}

	m, coverage := f.Rasterize(g.Key)
	pm, err := NewPixmap(m.Width, m.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: glyph %d: %w", ErrGlyphPixmap, g.Key.GlyphID, err)
	}
	if len(coverage) != m.Width*m.Height {
		return nil, fmt.Errorf("%w: glyph %d: %d coverage bytes for %dx%d",
			ErrGlyphPixmap, g.Key.GlyphID, len(coverage), m.Width, m.Height)
	}

	data := pm.Data()
	for i, cov := range coverage {
		a := blend.ScaleAlpha(tint[3], cov)
		if a == 0 {
			continue
		}
		o := i * 4
		data[o], data[o+1], data[o+2], data[o+3] = blend.Premultiply(tint[0], tint[1], tint[2], a)
	}
	return pm, nil
}
