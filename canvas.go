package textbox

import (
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Canvas is a raster target glyph bitmaps are composited onto.
//
// DrawPixmap draws src with its top-left corner at (x, y), source-over,
// without any other transform.
type Canvas interface {
	DrawPixmap(src *Pixmap, x, y float64)
}

// ImageCanvas adapts any draw.Image to Canvas.
//
// Glyph bitmaps are premultiplied, so Dst receives them through the
// image/draw Over operator with nearest-neighbor sampling.
type ImageCanvas struct {
	Dst draw.Image
}

// DrawPixmap implements Canvas.
func (c ImageCanvas) DrawPixmap(src *Pixmap, x, y float64) {
	if c.Dst == nil || src == nil {
		return
	}
	s2d := f64.Aff3{
		1, 0, x,
		0, 1, y,
	}
	xdraw.NearestNeighbor.Transform(c.Dst, s2d, src.Image(), src.Bounds(), xdraw.Over, nil)
}

var _ Canvas = ImageCanvas{}
