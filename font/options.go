package font

import xfont "golang.org/x/image/font"

// Option configures Font creation.
type Option func(*config)

// config holds configuration for Font.
type config struct {
	hinting         xfont.Hinting
	shapeCacheLimit int
	boundsLimit     int
	language        string
}

// defaultConfig returns the default font configuration.
func defaultConfig() config {
	return config{
		hinting:         xfont.HintingNone,
		shapeCacheLimit: 512,
		boundsLimit:     4096,
		language:        "en",
	}
}

// WithHinting sets the hinting mode used for line metrics.
// The default is no hinting, which keeps metrics proportional to size.
func WithHinting(h xfont.Hinting) Option {
	return func(c *config) {
		c.hinting = h
	}
}

// WithShapeCacheLimit sets the maximum number of memoized shaping results.
// A value of 0 disables the limit.
func WithShapeCacheLimit(n int) Option {
	return func(c *config) {
		c.shapeCacheLimit = n
	}
}

// WithLanguage sets the language tag passed to the shaper (e.g. "en",
// "tr", "ar").
func WithLanguage(lang string) Option {
	return func(c *config) {
		c.language = lang
	}
}
