package textbox

import "errors"

// Errors returned by TextBox construction, measurement and drawing.
// Check them with errors.Is; returned errors may wrap them with detail.
var (
	// ErrRect is returned when a rectangle would be invalid: non-finite
	// values or a negative extent. Builder.Build also returns it for a
	// non-positive canvas size.
	ErrRect = errors.New("textbox: invalid rectangle")

	// ErrInset is returned when insetting outer bounds by half the font
	// size leaves no valid inner rectangle.
	ErrInset = errors.New("textbox: outer bounds too small to inset")

	// ErrOutset is returned when outsetting the measured inner rectangle
	// fails.
	ErrOutset = errors.New("textbox: cannot outset rectangle")

	// ErrGlyphPixmap is returned when a glyph bitmap cannot be allocated
	// or the rasterizer returned coverage of the wrong size.
	ErrGlyphPixmap = errors.New("textbox: cannot create glyph pixmap")

	// ErrLayoutReleased is returned when the engine a TextBox was built
	// with has been reset since, for example by building another TextBox.
	ErrLayoutReleased = errors.New("textbox: layout released by a later build")
)
