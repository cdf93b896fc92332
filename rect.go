package textbox

import "math"

// Rect is an axis-aligned rectangle in canvas space (y down).
//
// A valid Rect has finite coordinates and non-negative width and height.
// The zero Rect is valid and empty.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromXYWH returns the rectangle at (x, y) with the given extent.
// ok is false if any value is not finite or the extent is negative.
func RectFromXYWH(x, y, width, height float64) (r Rect, ok bool) {
	r = Rect{X: x, Y: y, Width: width, Height: height}
	return r, r.Valid()
}

// Valid reports whether r has finite coordinates and a non-negative extent.
func (r Rect) Valid() bool {
	return isFinite(r.X) && isFinite(r.Y) &&
		isFinite(r.Width) && isFinite(r.Height) &&
		r.Width >= 0 && r.Height >= 0 &&
		isFinite(r.X+r.Width) && isFinite(r.Y+r.Height)
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Inset shrinks r by dx on the left and right and by dy on the top and
// bottom. ok is false if the result is not a valid Rect.
func (r Rect) Inset(dx, dy float64) (Rect, bool) {
	return RectFromXYWH(r.X+dx, r.Y+dy, r.Width-2*dx, r.Height-2*dy)
}

// Outset grows r by dx on the left and right and by dy on the top and
// bottom. ok is false if the result is not a valid Rect.
func (r Rect) Outset(dx, dy float64) (Rect, bool) {
	return r.Inset(-dx, -dy)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
