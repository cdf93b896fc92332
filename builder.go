package textbox

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/gogpu/textbox/layout"
)

// DefaultSize is the font size, in pixels per em, of a new Builder.
const DefaultSize = 24.0

// style is the part of a builder shared by all bounds states.
type style struct {
	text   string
	fonts  []Font
	color  color.NRGBA
	size   float64
	halign layout.HorizontalAlign
	valign layout.VerticalAlign
}

// withFont returns a copy of s with f appended to the fallback fonts.
// The slice is clipped first so two builders never share a backing array.
func (s style) withFont(f Font) style {
	s.fonts = append(slices.Clip(s.fonts), f)
	return s
}

// Builder configures a text box that has no bounds yet.
//
// Builders are values: every setter returns a modified copy. Bounds are
// set with BoundsInner or BoundsOuter, which return an InnerBuilder or
// OuterBuilder, or resolved against a canvas size by Build.
type Builder struct {
	style style
}

// New starts a text box drawing text with f as the primary font.
// Defaults: opaque white, DefaultSize, centered horizontally and
// vertically.
func New(f Font, text string) Builder {
	return Builder{style: style{
		text:   text,
		fonts:  []Font{f},
		color:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		size:   DefaultSize,
		halign: layout.AlignCenter,
		valign: layout.AlignMiddle,
	}}
}

// FallbackFont appends f to the fallback chain. Characters the earlier
// fonts lack are drawn with the first later font that has them.
func (b Builder) FallbackFont(f Font) Builder {
	b.style = b.style.withFont(f)
	return b
}

// Color sets the text color. Any color.Color is accepted and stored as
// 8-bit straight alpha.
func (b Builder) Color(c color.Color) Builder {
	b.style.color = toNRGBA(c)
	return b
}

// Size sets the font size in pixels per em.
func (b Builder) Size(size float64) Builder {
	b.style.size = size
	return b
}

// HAlign sets the horizontal alignment.
func (b Builder) HAlign(a layout.HorizontalAlign) Builder {
	b.style.halign = a
	return b
}

// VAlign sets the vertical alignment.
func (b Builder) VAlign(a layout.VerticalAlign) Builder {
	b.style.valign = a
	return b
}

// BoundsInner sets the region the text is laid out in.
func (b Builder) BoundsInner(r Rect) InnerBuilder {
	return InnerBuilder{style: b.style, inner: r}
}

// BoundsOuter sets the region the text box occupies including a margin
// of half the font size on every side.
func (b Builder) BoundsOuter(r Rect) OuterBuilder {
	return OuterBuilder{style: b.style, outer: r}
}

// Build lays out the text filling a canvas of the given size, less a
// margin of half the font size. It returns ErrRect if either dimension
// is not a positive finite number and ErrInset if the canvas is too
// small for the margin.
func (b Builder) Build(e Engine, canvasWidth, canvasHeight float64) (*TextBox, error) {
	if !(canvasWidth > 0) || !(canvasHeight > 0) {
		return nil, fmt.Errorf("%w: canvas %vx%v", ErrRect, canvasWidth, canvasHeight)
	}
	outer, ok := RectFromXYWH(0, 0, canvasWidth, canvasHeight)
	if !ok {
		return nil, fmt.Errorf("%w: canvas %vx%v", ErrRect, canvasWidth, canvasHeight)
	}
	return b.BoundsOuter(outer).Build(e)
}

// OuterBuilder configures a text box with outer bounds.
type OuterBuilder struct {
	style style
	outer Rect
}

// FallbackFont appends f to the fallback chain.
func (b OuterBuilder) FallbackFont(f Font) OuterBuilder {
	b.style = b.style.withFont(f)
	return b
}

// Color sets the text color.
func (b OuterBuilder) Color(c color.Color) OuterBuilder {
	b.style.color = toNRGBA(c)
	return b
}

// Size sets the font size in pixels per em.
func (b OuterBuilder) Size(size float64) OuterBuilder {
	b.style.size = size
	return b
}

// HAlign sets the horizontal alignment.
func (b OuterBuilder) HAlign(a layout.HorizontalAlign) OuterBuilder {
	b.style.halign = a
	return b
}

// VAlign sets the vertical alignment.
func (b OuterBuilder) VAlign(a layout.VerticalAlign) OuterBuilder {
	b.style.valign = a
	return b
}

// BoundsInner replaces the outer bounds with inner bounds.
func (b OuterBuilder) BoundsInner(r Rect) InnerBuilder {
	return InnerBuilder{style: b.style, inner: r}
}

// Build insets the outer bounds by half the font size and lays out the
// text in the result. It returns ErrInset if nothing valid is left.
func (b OuterBuilder) Build(e Engine) (*TextBox, error) {
	m := b.style.size / 2
	inner, ok := b.outer.Inset(m, m)
	if !ok {
		return nil, fmt.Errorf("%w: %+v by %v", ErrInset, b.outer, m)
	}
	return b.BoundsInner(inner).Build(e), nil
}

// InnerBuilder configures a text box with inner bounds. It is the only
// bounds state whose Build cannot fail.
type InnerBuilder struct {
	style style
	inner Rect
}

// FallbackFont appends f to the fallback chain.
func (b InnerBuilder) FallbackFont(f Font) InnerBuilder {
	b.style = b.style.withFont(f)
	return b
}

// Color sets the text color.
func (b InnerBuilder) Color(c color.Color) InnerBuilder {
	b.style.color = toNRGBA(c)
	return b
}

// Size sets the font size in pixels per em.
func (b InnerBuilder) Size(size float64) InnerBuilder {
	b.style.size = size
	return b
}

// HAlign sets the horizontal alignment.
func (b InnerBuilder) HAlign(a layout.HorizontalAlign) InnerBuilder {
	b.style.halign = a
	return b
}

// VAlign sets the vertical alignment.
func (b InnerBuilder) VAlign(a layout.VerticalAlign) InnerBuilder {
	b.style.valign = a
	return b
}

// Build resets e and lays out the text inside the inner bounds.
//
// Each character is drawn with the first font in the fallback chain that
// has it, or with the primary font if none does. Consecutive characters
// resolving to the same font are appended as one run.
//
// The returned TextBox reads its layout from e; resetting e afterwards,
// for example by building another TextBox with it, releases the TextBox.
func (b InnerBuilder) Build(e Engine) *TextBox {
	s := b.style

	settings := layout.DefaultSettings()
	settings.X = b.inner.X
	settings.Y = b.inner.Y
	settings.MaxWidth = b.inner.Width
	settings.MaxHeight = b.inner.Height
	settings.HAlign = s.halign
	settings.VAlign = s.valign
	e.Reset(settings)

	fonts := make([]layout.Font, len(s.fonts))
	for i, f := range s.fonts {
		fonts[i] = f
	}
	runs := fallbackRuns(s.text, s.fonts)
	for _, r := range runs {
		e.Append(fonts, layout.StyleRun{
			Text:      s.text[r.start:r.end],
			Size:      s.size,
			FontIndex: r.font,
		})
	}

	Logger().Debug("textbox: build",
		"runs", len(runs),
		"fonts", len(s.fonts),
		"inner", b.inner,
		"size", s.size)

	return &TextBox{
		fonts:      s.fonts,
		inner:      b.inner,
		color:      s.color,
		size:       s.size,
		halign:     s.halign,
		valign:     s.valign,
		engine:     e,
		generation: e.Generation(),
	}
}

// run is a byte range of text drawn with one font.
type run struct {
	start, end int
	font       int
}

// fallbackRuns splits text into maximal runs of characters that resolve
// to the same font.
func fallbackRuns(text string, fonts []Font) []run {
	var runs []run
	for i, r := range text {
		idx := fontFor(r, fonts)
		if n := len(runs); n > 0 && runs[n-1].font == idx {
			continue
		}
		if n := len(runs); n > 0 {
			runs[n-1].end = i
		}
		runs = append(runs, run{start: i, font: idx})
	}
	if n := len(runs); n > 0 {
		runs[n-1].end = len(text)
	}
	return runs
}

// fontFor returns the index of the first font that has r, or 0.
func fontFor(r rune, fonts []Font) int {
	for i, f := range fonts {
		if f.HasGlyph(r) {
			return i
		}
	}
	return 0
}
