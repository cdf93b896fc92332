package font

import "errors"

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("font: empty font data")
