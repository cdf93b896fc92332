package layout

import (
	"math"
	"unicode"
	"unicode/utf8"
)

// Layout lays out style runs and exposes the positioned glyphs and lines.
//
// Lines, Height and Glyphs are computed lazily on first use after an
// Append and cached until the next Reset or Append.
type Layout struct {
	settings   Settings
	generation uint64

	items   []item
	textLen int

	dirty  bool
	glyphs []GlyphPosition
	lines  []LinePosition
	height float64
}

// item is a shaped glyph or a hard line break waiting to be positioned.
type item struct {
	font       Font
	fontIndex  int
	size       float64
	glyph      ShapedGlyph
	metrics    LineMetrics
	char       rune
	byteOffset int
	hardBreak  bool
}

// lineSpan is a range of items forming one line.
type lineSpan struct {
	start, end int
	width      float64
	metrics    LineMetrics
}

// NewLayout creates a layout reset to DefaultSettings.
func NewLayout() *Layout {
	l := &Layout{}
	l.Reset(DefaultSettings())
	return l
}

// Reset clears all appended runs and applies settings.
// Every Reset advances Generation.
func (l *Layout) Reset(settings Settings) {
	if settings.LineHeight <= 0 {
		settings.LineHeight = 1.0
	}
	l.settings = settings
	l.generation++
	l.items = l.items[:0]
	l.textLen = 0
	l.glyphs = l.glyphs[:0]
	l.lines = l.lines[:0]
	l.height = 0
	l.dirty = false
}

// Settings returns the settings of the last Reset.
func (l *Layout) Settings() Settings {
	return l.settings
}

// Generation returns a counter that changes on every Reset.
// Holders of layout results use it to detect that the layout was reused.
func (l *Layout) Generation() uint64 {
	return l.generation
}

// Append shapes run with fonts[run.FontIndex] and adds it after the
// previously appended runs. An out of range FontIndex uses fonts[0].
// Append does nothing if fonts is empty.
func (l *Layout) Append(fonts []Font, run StyleRun) {
	if len(fonts) == 0 {
		return
	}
	fontIndex := run.FontIndex
	if fontIndex < 0 || fontIndex >= len(fonts) {
		fontIndex = 0
	}
	f := fonts[fontIndex]
	metrics := f.LineMetrics(run.Size)
	base := l.textLen
	l.textLen += len(run.Text)

	paras, offsets := []string{run.Text}, []int{0}
	if l.settings.WrapHardBreaks {
		paras, offsets = splitParagraphs(run.Text)
	}

	for p, para := range paras {
		if p > 0 {
			l.items = append(l.items, item{
				font:       f,
				fontIndex:  fontIndex,
				size:       run.Size,
				metrics:    metrics,
				char:       '\n',
				byteOffset: base + offsets[p] - 1,
				hardBreak:  true,
			})
		}
		for _, seg := range segmentDirections(para) {
			for _, g := range f.Shape(seg.text, run.Size, seg.rtl) {
				r := utf8.RuneError
				if g.Cluster >= 0 && g.Cluster < len(seg.text) {
					r, _ = utf8.DecodeRuneInString(seg.text[g.Cluster:])
				}
				l.items = append(l.items, item{
					font:       f,
					fontIndex:  fontIndex,
					size:       run.Size,
					glyph:      g,
					metrics:    metrics,
					char:       r,
					byteOffset: base + offsets[p] + seg.start + g.Cluster,
				})
			}
		}
	}
	l.dirty = true
}

// Lines returns the laid out lines in order, or nil if nothing was
// appended. The slice must not be modified.
func (l *Layout) Lines() []LinePosition {
	l.compute()
	if len(l.lines) == 0 {
		return nil
	}
	return l.lines
}

// Height returns the total height of all lines.
func (l *Layout) Height() float64 {
	l.compute()
	return l.height
}

// Glyphs returns the positioned glyphs in logical order.
// The slice must not be modified.
func (l *Layout) Glyphs() []GlyphPosition {
	l.compute()
	return l.glyphs
}

// compute breaks items into lines and positions every glyph.
func (l *Layout) compute() {
	if !l.dirty {
		return
	}
	l.dirty = false
	l.glyphs = l.glyphs[:0]
	l.lines = l.lines[:0]
	l.height = 0
	if len(l.items) == 0 {
		return
	}

	s := l.settings
	spans := l.breakLines()

	widest := 0.0
	for _, span := range spans {
		widest = max(widest, span.width)
		l.height += span.metrics.Height() * s.LineHeight
	}
	maxWidth := s.MaxWidth
	if math.IsInf(maxWidth, 1) {
		maxWidth = widest
	}

	y := s.Y
	if !math.IsInf(s.MaxHeight, 1) {
		y += (s.MaxHeight - l.height) * s.VAlign.Factor()
	}

	for _, span := range spans {
		lineHeight := span.metrics.Height() * s.LineHeight
		padding := maxWidth - span.width
		baseline := y + span.metrics.Ascent
		pen := s.X + padding*s.HAlign.Factor()

		line := LinePosition{
			Baseline:   baseline,
			Padding:    padding,
			Height:     lineHeight,
			GlyphStart: len(l.glyphs),
		}
		for i := span.start; i < span.end; i++ {
			it := &l.items[i]
			if it.hardBreak {
				continue
			}
			l.glyphs = append(l.glyphs, place(it, pen, baseline))
			pen += it.glyph.Advance
		}
		line.GlyphEnd = len(l.glyphs)
		l.lines = append(l.lines, line)
		y += lineHeight
	}
}

// breakLines splits items into lines according to the wrap settings.
func (l *Layout) breakLines() []lineSpan {
	s := l.settings
	wrap := !math.IsInf(s.MaxWidth, 1) && s.Wrap != WrapNone

	var spans []lineSpan
	start := 0
	x := 0.0
	lastSpace := -1

	for i := 0; i < len(l.items); i++ {
		it := &l.items[i]
		if it.hardBreak {
			spans = append(spans, l.span(start, i+1))
			start = i + 1
			x = 0
			lastSpace = -1
			continue
		}

		space := unicode.IsSpace(it.char)
		if wrap && !space && i > start && x+it.glyph.Advance > s.MaxWidth {
			end := i
			if s.Wrap == WrapWordChar && lastSpace >= start {
				end = lastSpace + 1
			}
			spans = append(spans, l.span(start, end))
			start = end
			lastSpace = -1
			x = 0
			for j := start; j < i; j++ {
				x += l.items[j].glyph.Advance
			}
		}
		if space {
			lastSpace = i
		}
		x += it.glyph.Advance
	}
	if start < len(l.items) || len(spans) == 0 {
		spans = append(spans, l.span(start, len(l.items)))
	} else if l.items[len(l.items)-1].hardBreak {
		// Text ending in a hard break still has an empty last line.
		last := l.items[len(l.items)-1]
		spans = append(spans, lineSpan{start: start, end: start, metrics: last.metrics})
	}
	return spans
}

// span measures items[start:end] as a line. Trailing whitespace and hard
// breaks do not count towards the width.
func (l *Layout) span(start, end int) lineSpan {
	ls := lineSpan{start: start, end: end}
	visibleEnd := end
	for visibleEnd > start {
		it := &l.items[visibleEnd-1]
		if !it.hardBreak && !unicode.IsSpace(it.char) {
			break
		}
		visibleEnd--
	}
	for i := start; i < end; i++ {
		it := &l.items[i]
		if i < visibleEnd {
			ls.width += it.glyph.Advance
		}
		ls.metrics.Ascent = max(ls.metrics.Ascent, it.metrics.Ascent)
		ls.metrics.Descent = max(ls.metrics.Descent, it.metrics.Descent)
		ls.metrics.LineGap = max(ls.metrics.LineGap, it.metrics.LineGap)
	}
	return ls
}

// place positions one glyph whose pen sits at (penX, baseline).
func place(it *item, penX, baseline float64) GlyphPosition {
	x := penX + it.glyph.XOffset
	ix := math.Floor(x)
	sub := int(math.Floor((x-ix)*SubpixelSteps + 0.5))
	if sub >= SubpixelSteps {
		sub = 0
		ix++
	}
	key := RasterKey{
		FontID:    it.font.ID(),
		GlyphID:   it.glyph.GlyphID,
		Size:      it.size,
		SubpixelX: uint8(sub), //nolint:gosec // sub is in [0, SubpixelSteps)
	}
	m := it.font.GlyphBounds(key)
	y := math.Round(baseline - it.glyph.YOffset)
	return GlyphPosition{
		FontIndex:  it.fontIndex,
		Key:        key,
		X:          ix + float64(m.XMin),
		Y:          y + float64(m.YMin),
		Width:      m.Width,
		Height:     m.Height,
		Char:       it.char,
		ByteOffset: it.byteOffset,
	}
}
