// Package blend implements the premultiplied-alpha arithmetic used to build
// and composite glyph bitmaps.
//
// All values are 8-bit channels in the range 0-255. Colors passed to the
// compositing functions must already be premultiplied.
package blend

// div255 divides x by 255, rounding to nearest.
//
// Formula: t = x + 128; (t + (t >> 8)) >> 8
//
// This is Alvy Ray Smith's formula and is exact for every product of two
// bytes, which keeps glyph bitmaps identical across platforms.
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// MulDiv255 returns a*b/255 rounded to nearest.
func MulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// ScaleAlpha returns a*coverage/255 rounded down.
// This is the alpha a tinted glyph pixel gets for a given coverage byte.
func ScaleAlpha(a, coverage byte) byte {
	return byte(uint32(a) * uint32(coverage) / 255)
}

// Premultiply scales the color channels of a straight-alpha pixel by its
// alpha.
func Premultiply(r, g, b, a byte) (pr, pg, pb, pa byte) {
	if a == 255 {
		return r, g, b, a
	}
	return MulDiv255(r, a), MulDiv255(g, a), MulDiv255(b, a), a
}

// addClamp adds two bytes, saturating at 255.
func addClamp(a, b byte) byte {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return byte(s)
}
