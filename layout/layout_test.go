package layout

import (
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
)

// monoFont is a fixed-advance font: every glyph advances size/2 and has a
// bitmap of size/2 x size, except whitespace which has no bitmap.
type monoFont struct {
	id      uint64
	missing map[rune]bool
}

func (f *monoFont) ID() uint64 { return f.id }

func (f *monoFont) HasGlyph(r rune) bool { return !f.missing[r] }

func (f *monoFont) LineMetrics(size float64) LineMetrics {
	return LineMetrics{Ascent: size * 0.8, Descent: size * 0.2}
}

func (f *monoFont) Shape(text string, size float64, rtl bool) []ShapedGlyph {
	var glyphs []ShapedGlyph
	for i, r := range text {
		glyphs = append(glyphs, ShapedGlyph{
			GlyphID: uint16(r),
			Cluster: i,
			Advance: size / 2,
		})
	}
	if rtl {
		for i, j := 0, len(glyphs)-1; i < j; i, j = i+1, j-1 {
			glyphs[i], glyphs[j] = glyphs[j], glyphs[i]
		}
	}
	return glyphs
}

func (f *monoFont) GlyphBounds(key RasterKey) GlyphMetrics {
	if unicode.IsSpace(rune(key.GlyphID)) {
		return GlyphMetrics{}
	}
	return GlyphMetrics{
		XMin:   0,
		YMin:   -int(key.Size * 0.8),
		Width:  int(key.Size / 2),
		Height: int(key.Size),
	}
}

func newTestLayout(s Settings, fonts []Font, runs ...StyleRun) *Layout {
	l := NewLayout()
	l.Reset(s)
	for _, r := range runs {
		l.Append(fonts, r)
	}
	return l
}

func TestLayoutEmpty(t *testing.T) {
	l := NewLayout()
	if lines := l.Lines(); lines != nil {
		t.Errorf("Lines() = %v, want nil", lines)
	}
	if h := l.Height(); h != 0 {
		t.Errorf("Height() = %v, want 0", h)
	}
	if g := l.Glyphs(); len(g) != 0 {
		t.Errorf("Glyphs() has %d entries, want 0", len(g))
	}
}

func TestLayoutSingleLine(t *testing.T) {
	fonts := []Font{&monoFont{id: 7}}
	s := DefaultSettings()
	s.X, s.Y = 10, 20
	s.MaxWidth = 100
	l := newTestLayout(s, fonts, StyleRun{Text: "abc", Size: 10})

	lines := l.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	want := LinePosition{Baseline: 28, Padding: 85, Height: 10, GlyphStart: 0, GlyphEnd: 3}
	if diff := cmp.Diff(want, lines[0]); diff != "" {
		t.Errorf("line mismatch (-want +got):\n%s", diff)
	}
	if h := l.Height(); h != 10 {
		t.Errorf("Height() = %v, want 10", h)
	}

	glyphs := l.Glyphs()
	wantX := []float64{10, 15, 20}
	for i, g := range glyphs {
		if g.X != wantX[i] {
			t.Errorf("glyph %d X = %v, want %v", i, g.X, wantX[i])
		}
		if g.Y != 20 {
			t.Errorf("glyph %d Y = %v, want 20", i, g.Y)
		}
		if g.Key.FontID != 7 || g.Key.Size != 10 || g.Key.SubpixelX != 0 {
			t.Errorf("glyph %d key = %+v", i, g.Key)
		}
		if g.ByteOffset != i {
			t.Errorf("glyph %d ByteOffset = %d, want %d", i, g.ByteOffset, i)
		}
	}
}

func TestLayoutAlignment(t *testing.T) {
	fonts := []Font{&monoFont{}}
	tests := []struct {
		name         string
		halign       HorizontalAlign
		valign       VerticalAlign
		wantX, wantY float64
	}{
		{"left top", AlignLeft, AlignTop, 0, 0},
		{"center middle", AlignCenter, AlignMiddle, 45, 45},
		{"right bottom", AlignRight, AlignBottom, 90, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			s.MaxWidth, s.MaxHeight = 100, 100
			s.HAlign, s.VAlign = tt.halign, tt.valign
			l := newTestLayout(s, fonts, StyleRun{Text: "ab", Size: 10})

			g := l.Glyphs()[0]
			if g.X != tt.wantX {
				t.Errorf("X = %v, want %v", g.X, tt.wantX)
			}
			if g.Y != tt.wantY {
				t.Errorf("Y = %v, want %v", g.Y, tt.wantY)
			}
			if p := l.Lines()[0].Padding; p != 90 {
				t.Errorf("Padding = %v, want 90", p)
			}
		})
	}
}

func TestLayoutZeroBounds(t *testing.T) {
	fonts := []Font{&monoFont{}}
	s := DefaultSettings()
	s.MaxWidth, s.MaxHeight = 0, 0
	s.HAlign, s.VAlign = AlignCenter, AlignMiddle
	s.Wrap = WrapNone
	l := newTestLayout(s, fonts, StyleRun{Text: "ab", Size: 10})

	if p := l.Lines()[0].Padding; p != -10 {
		t.Errorf("Padding = %v, want -10", p)
	}
	// The overflowing line and block are centered on the empty region.
	g := l.Glyphs()[0]
	if g.X != -5 || g.Y != -5 {
		t.Errorf("first glyph at (%v, %v), want (-5, -5)", g.X, g.Y)
	}

	s.Wrap = WrapWordChar
	l = newTestLayout(s, fonts, StyleRun{Text: "ab", Size: 10})
	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if line.Padding != -5 {
			t.Errorf("line %d Padding = %v, want -5", i, line.Padding)
		}
	}
}

func TestLayoutUnboundedByDefault(t *testing.T) {
	fonts := []Font{&monoFont{}}
	s := DefaultSettings()
	s.HAlign, s.VAlign = AlignRight, AlignBottom
	l := newTestLayout(s, fonts, StyleRun{Text: "abc\nd", Size: 10})

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Padding != 0 || lines[1].Padding != 10 {
		t.Errorf("paddings = %v, %v; want 0, 10", lines[0].Padding, lines[1].Padding)
	}
	if g := l.Glyphs()[0]; g.Y != 0 {
		t.Errorf("first glyph Y = %v, want 0", g.Y)
	}
}

func TestLayoutWordWrap(t *testing.T) {
	fonts := []Font{&monoFont{}}
	s := DefaultSettings()
	s.MaxWidth = 20
	l := newTestLayout(s, fonts, StyleRun{Text: "aaa bbb", Size: 10})

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	// Trailing space is not part of the first line's width.
	if lines[0].Padding != 5 || lines[1].Padding != 5 {
		t.Errorf("paddings = %v, %v; want 5, 5", lines[0].Padding, lines[1].Padding)
	}
	if lines[0].GlyphEnd != 4 || lines[1].GlyphStart != 4 {
		t.Errorf("line split at %d/%d, want 4", lines[0].GlyphEnd, lines[1].GlyphStart)
	}
	if h := l.Height(); h != 20 {
		t.Errorf("Height() = %v, want 20", h)
	}

	second := l.Glyphs()[4]
	if second.Char != 'b' || second.X != 0 || second.Y != 10 {
		t.Errorf("first glyph of line 2 = %+v", second)
	}
}

func TestLayoutCharWrap(t *testing.T) {
	fonts := []Font{&monoFont{}}
	s := DefaultSettings()
	s.MaxWidth = 12
	l := newTestLayout(s, fonts, StyleRun{Text: "abcde", Size: 10})

	lines := l.Lines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, want := range []int{2, 4, 5} {
		if lines[i].GlyphEnd != want {
			t.Errorf("line %d GlyphEnd = %d, want %d", i, lines[i].GlyphEnd, want)
		}
	}
}

func TestLayoutWrapNone(t *testing.T) {
	fonts := []Font{&monoFont{}}
	s := DefaultSettings()
	s.MaxWidth = 12
	s.Wrap = WrapNone
	l := newTestLayout(s, fonts, StyleRun{Text: "abcde", Size: 10})

	lines := l.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Padding != -13 {
		t.Errorf("Padding = %v, want -13", lines[0].Padding)
	}
}

func TestLayoutHardBreaks(t *testing.T) {
	fonts := []Font{&monoFont{}}
	tests := []struct {
		text      string
		wantLines int
	}{
		{"a\nb", 2},
		{"a\r\nb", 2},
		{"a\rb", 2},
		{"a\n\nb", 3},
		{"a\n", 2},
	}
	for _, tt := range tests {
		l := newTestLayout(DefaultSettings(), fonts, StyleRun{Text: tt.text, Size: 10})
		if got := len(l.Lines()); got != tt.wantLines {
			t.Errorf("%q: got %d lines, want %d", tt.text, got, tt.wantLines)
		}
		if got, want := l.Height(), float64(tt.wantLines*10); got != want {
			t.Errorf("%q: Height() = %v, want %v", tt.text, got, want)
		}
	}

	s := DefaultSettings()
	s.WrapHardBreaks = false
	l := newTestLayout(s, fonts, StyleRun{Text: "a\nb", Size: 10})
	if got := len(l.Lines()); got != 1 {
		t.Errorf("hard breaks disabled: got %d lines, want 1", got)
	}
}

func TestLayoutMultipleRunsAndFonts(t *testing.T) {
	fonts := []Font{&monoFont{id: 1}, &monoFont{id: 2}}
	l := newTestLayout(DefaultSettings(), fonts,
		StyleRun{Text: "ab", Size: 10, FontIndex: 0},
		StyleRun{Text: "c", Size: 20, FontIndex: 1},
		StyleRun{Text: "d", Size: 10, FontIndex: 5},
	)

	glyphs := l.Glyphs()
	if len(glyphs) != 4 {
		t.Fatalf("got %d glyphs, want 4", len(glyphs))
	}
	wantIdx := []int{0, 0, 1, 0}
	wantX := []float64{0, 5, 10, 20}
	for i, g := range glyphs {
		if g.FontIndex != wantIdx[i] {
			t.Errorf("glyph %d FontIndex = %d, want %d", i, g.FontIndex, wantIdx[i])
		}
		if g.X != wantX[i] {
			t.Errorf("glyph %d X = %v, want %v", i, g.X, wantX[i])
		}
		if g.ByteOffset != i {
			t.Errorf("glyph %d ByteOffset = %d, want %d", i, g.ByteOffset, i)
		}
	}
	if glyphs[2].Key.FontID != 2 {
		t.Errorf("glyph 2 FontID = %d, want 2", glyphs[2].Key.FontID)
	}
	// The tallest font on the line sets the line height.
	if h := l.Height(); h != 20 {
		t.Errorf("Height() = %v, want 20", h)
	}
}

func TestLayoutSubpixelPositions(t *testing.T) {
	fonts := []Font{&monoFont{}}
	s := DefaultSettings()
	s.X = 0.25
	l := newTestLayout(s, fonts, StyleRun{Text: "ab", Size: 3})

	// Pens at 0.25 and 1.75.
	glyphs := l.Glyphs()
	if glyphs[0].X != 0 || glyphs[0].Key.SubpixelX != 1 {
		t.Errorf("glyph 0 = X %v sub %d, want X 0 sub 1", glyphs[0].X, glyphs[0].Key.SubpixelX)
	}
	if glyphs[1].X != 1 || glyphs[1].Key.SubpixelX != 3 {
		t.Errorf("glyph 1 = X %v sub %d, want X 1 sub 3", glyphs[1].X, glyphs[1].Key.SubpixelX)
	}

	s.X = 0.9
	l = newTestLayout(s, fonts, StyleRun{Text: "a", Size: 3})
	if g := l.Glyphs()[0]; g.X != 1 || g.Key.SubpixelX != 0 {
		t.Errorf("pen 0.9 rounds to X %v sub %d, want X 1 sub 0", g.X, g.Key.SubpixelX)
	}
}

func TestLayoutResetAdvancesGeneration(t *testing.T) {
	fonts := []Font{&monoFont{}}
	l := NewLayout()
	gen := l.Generation()
	l.Append(fonts, StyleRun{Text: "abc", Size: 10})
	if l.Generation() != gen {
		t.Error("Append must not change Generation")
	}

	l.Reset(DefaultSettings())
	if l.Generation() == gen {
		t.Error("Reset must change Generation")
	}
	if len(l.Glyphs()) != 0 {
		t.Error("Reset must clear glyphs")
	}
}

func TestLayoutLineHeight(t *testing.T) {
	fonts := []Font{&monoFont{}}
	s := DefaultSettings()
	s.LineHeight = 1.5
	l := newTestLayout(s, fonts, StyleRun{Text: "a\nb", Size: 10})
	if h := l.Height(); h != 30 {
		t.Errorf("Height() = %v, want 30", h)
	}

	s.LineHeight = 0
	l.Reset(s)
	if got := l.Settings().LineHeight; got != 1 {
		t.Errorf("zero LineHeight should default to 1, got %v", got)
	}
}

func TestLayoutAppendWithoutFonts(t *testing.T) {
	l := NewLayout()
	l.Append(nil, StyleRun{Text: "abc", Size: 10})
	if len(l.Glyphs()) != 0 {
		t.Error("Append without fonts should add nothing")
	}
}

func TestAlignString(t *testing.T) {
	if AlignCenter.String() != "Center" || AlignBottom.String() != "Bottom" {
		t.Error("unexpected alignment strings")
	}
	if HorizontalAlign(99).String() != unknownStr || VerticalAlign(99).String() != unknownStr {
		t.Error("unknown alignments should stringify as Unknown")
	}
	if WrapChar.String() != "Char" {
		t.Errorf("WrapChar.String() = %q", WrapChar.String())
	}
}
