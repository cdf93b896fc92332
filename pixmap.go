package textbox

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/gogpu/textbox/internal/blend"
)

// maxPixmapBytes bounds the size of a single Pixmap allocation.
const maxPixmapBytes = math.MaxInt32

// Pixmap is a rectangular buffer of premultiplied RGBA pixels, 4 bytes per
// pixel, rows top to bottom.
//
// Pixmap is both a glyph bitmap held by GlyphCache and a Canvas that
// glyph bitmaps can be drawn onto.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a transparent pixmap. Both dimensions must be
// positive.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 || width > maxPixmapBytes/4/height {
		return nil, fmt.Errorf("textbox: invalid pixmap size %dx%d", width, height)
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw premultiplied RGBA pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// PixelAt returns the premultiplied color of a pixel, or transparent
// outside the pixmap.
func (p *Pixmap) PixelAt(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// SetPixel replaces a single pixel. Coordinates outside the pixmap are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	pc := premultiplied(c)
	i := (y*p.width + x) * 4
	p.data[i+0] = pc.R
	p.data[i+1] = pc.G
	p.data[i+2] = pc.B
	p.data[i+3] = pc.A
}

// Fill replaces every pixel with c.
func (p *Pixmap) Fill(c color.Color) {
	pc := premultiplied(c)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = pc.R
		p.data[i+1] = pc.G
		p.data[i+2] = pc.B
		p.data[i+3] = pc.A
	}
}

// DrawPixmap composites src over p with its top-left corner at (x, y),
// sampling the nearest source pixel. Pixels outside p are clipped.
func (p *Pixmap) DrawPixmap(src *Pixmap, x, y float64) {
	if src == nil || !isFinite(x) || !isFinite(y) {
		return
	}
	// Destination pixel d samples source pixel floor(d + 0.5 - x), so the
	// source's first column lands on ceil(x - 0.5).
	ox := int(math.Ceil(x - 0.5))
	oy := int(math.Ceil(y - 0.5))

	x0, x1 := max(ox, 0), min(ox+src.width, p.width)
	y0, y1 := max(oy, 0), min(oy+src.height, p.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	n := (x1 - x0) * 4
	for dy := y0; dy < y1; dy++ {
		so := ((dy-oy)*src.width + (x0 - ox)) * 4
		do := (dy*p.width + x0) * 4
		blend.SourceOverSpan(p.data[do:do+n], src.data[so:so+n])
	}
}

// Image returns an *image.RGBA sharing the pixmap's memory.
func (p *Pixmap) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.Image()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.PixelAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// premultiplied converts c to 8-bit premultiplied RGBA using the same
// rounding as glyph bitmaps.
func premultiplied(c color.Color) color.RGBA {
	n := toNRGBA(c)
	r, g, b, a := blend.Premultiply(n.R, n.G, n.B, n.A)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

var (
	_ image.Image = (*Pixmap)(nil)
	_ Canvas      = (*Pixmap)(nil)
)
