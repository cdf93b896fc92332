package textbox

import (
	"strings"

	"github.com/gogpu/textbox/layout"
)

// fakeFont is a fixed-pitch font: every character advances size/2 and,
// except for spaces, rasterizes to a size/2 x size block of constant
// coverage sitting on the baseline.
type fakeFont struct {
	id       uint64
	chars    string // covered characters; empty means all
	coverage byte

	// badCoverage makes Rasterize return one byte too few.
	badCoverage bool
	// emptyRaster makes Rasterize return zero metrics for every glyph.
	emptyRaster bool

	rasterCalls int
}

func newFakeFont(id uint64, chars string) *fakeFont {
	return &fakeFont{id: id, chars: chars, coverage: 255}
}

func (f *fakeFont) ID() uint64 { return f.id }

func (f *fakeFont) HasGlyph(r rune) bool {
	return f.chars == "" || strings.ContainsRune(f.chars, r)
}

func (f *fakeFont) LineMetrics(size float64) layout.LineMetrics {
	return layout.LineMetrics{Ascent: 0.75 * size, Descent: 0.25 * size}
}

func (f *fakeFont) Shape(text string, size float64, _ bool) []layout.ShapedGlyph {
	var glyphs []layout.ShapedGlyph
	for i, r := range text {
		glyphs = append(glyphs, layout.ShapedGlyph{
			GlyphID: uint16(r), //nolint:gosec // test text is ASCII
			Cluster: i,
			Advance: size / 2,
		})
	}
	return glyphs
}

func (f *fakeFont) GlyphBounds(key layout.RasterKey) layout.GlyphMetrics {
	if key.GlyphID == ' ' {
		return layout.GlyphMetrics{}
	}
	return layout.GlyphMetrics{
		YMin:   -int(0.75 * key.Size),
		Width:  int(key.Size / 2),
		Height: int(key.Size),
	}
}

func (f *fakeFont) Rasterize(key layout.RasterKey) (layout.GlyphMetrics, []byte) {
	f.rasterCalls++
	if f.emptyRaster {
		return layout.GlyphMetrics{}, nil
	}
	m := f.GlyphBounds(key)
	n := m.Width * m.Height
	if f.badCoverage && n > 0 {
		n--
	}
	coverage := make([]byte, n)
	for i := range coverage {
		coverage[i] = f.coverage
	}
	return m, coverage
}

// recordingEngine is a layout.Layout that remembers appended runs.
type recordingEngine struct {
	*layout.Layout
	runs []layout.StyleRun
}

func newRecordingEngine() *recordingEngine {
	return &recordingEngine{Layout: layout.NewLayout()}
}

func (e *recordingEngine) Reset(s layout.Settings) {
	e.runs = nil
	e.Layout.Reset(s)
}

func (e *recordingEngine) Append(fonts []layout.Font, run layout.StyleRun) {
	e.runs = append(e.runs, run)
	e.Layout.Append(fonts, run)
}

// mustRect builds a Rect or panics.
func mustRect(x, y, w, h float64) Rect {
	r, ok := RectFromXYWH(x, y, w, h)
	if !ok {
		panic("invalid test rect")
	}
	return r
}
