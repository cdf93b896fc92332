package font

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"os"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textbox/internal/cache"
	"github.com/gogpu/textbox/layout"
)

// Font is a parsed TrueType or OpenType font.
//
// Font must not be copied after creation.
type Font struct {
	id   uint64
	name string
	data []byte

	// sfnt serves cmap lookups, metrics and outlines.
	sfnt *sfnt.Font

	// shapeFont is the go-text view of the same data used for shaping.
	// It is read-only and safe for concurrent use; faces built from it
	// are not.
	shapeFont  *gtfont.Font
	shaperPool sync.Pool

	glyphs *runeMap
	shapes *cache.Cache[shapeKey, []layout.ShapedGlyph]
	bounds *cache.Cache[layout.RasterKey, layout.GlyphMetrics]

	config config
}

// shapeKey identifies a memoized shaping result.
type shapeKey struct {
	text string
	size float64
	rtl  bool
}

// Parse parses font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func Parse(data []byte, opts ...Option) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	sf, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font for shaping: %w", err)
	}

	h := fnv.New64a()
	_, _ = h.Write(dataCopy) // fnv.Write never returns an error

	f := &Font{
		id:        h.Sum64(),
		data:      dataCopy,
		sfnt:      sf,
		shapeFont: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		glyphs: newRuneMap(),
		shapes: cache.New[shapeKey, []layout.ShapedGlyph](cfg.shapeCacheLimit),
		bounds: cache.New[layout.RasterKey, layout.GlyphMetrics](cfg.boundsLimit),
		config: cfg,
	}
	f.name = f.readName()
	return f, nil
}

// ParseFile loads a font from a file path.
func ParseFile(path string, opts ...Option) (*Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return Parse(data, opts...)
}

// ID returns the FNV-1a hash of the font data. Two fonts parsed from the
// same bytes share an ID and therefore share glyph cache entries.
func (f *Font) ID() uint64 {
	return f.id
}

// Name returns the font family name, the full name if the family is
// missing, or "Unknown Font".
func (f *Font) Name() string {
	return f.name
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.sfnt.NumGlyphs()
}

// HasGlyph reports whether the font's cmap maps r to a glyph other than
// the missing glyph.
func (f *Font) HasGlyph(r rune) bool {
	if present, checked := f.glyphs.get(r); checked {
		return present
	}
	var buf sfnt.Buffer
	gid, err := f.sfnt.GlyphIndex(&buf, r)
	present := err == nil && gid != 0
	f.glyphs.set(r, present)
	return present
}

// LineMetrics returns the vertical metrics at size pixels per em.
func (f *Font) LineMetrics(size float64) layout.LineMetrics {
	var buf sfnt.Buffer
	m, err := f.sfnt.Metrics(&buf, toFixed(size), f.config.hinting)
	if err != nil {
		return layout.LineMetrics{}
	}
	ascent := fromFixed(m.Ascent)
	descent := fromFixed(m.Descent)
	if descent < 0 {
		descent = -descent
	}
	return layout.LineMetrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: max(0, fromFixed(m.Height)-ascent-descent),
	}
}

// readName extracts the family name from the name table.
func (f *Font) readName() string {
	var buf sfnt.Buffer
	if name, err := f.sfnt.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.sfnt.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}

// toFixed converts a float64 to fixed.Int26_6.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fromFixed converts fixed.Int26_6 to float64.
func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

var _ layout.Font = (*Font)(nil)
