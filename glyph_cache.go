package textbox

import "github.com/gogpu/textbox/layout"

// GlyphKey identifies one tinted glyph bitmap.
//
// The tint is part of the key: the same glyph drawn in two colors is
// stored twice.
type GlyphKey struct {
	Raster layout.RasterKey
	// Color is the straight-alpha tint as R, G, B, A.
	Color [4]uint8
}

// GlyphCache memoizes tinted, premultiplied glyph bitmaps across draws.
//
// Entries are never evicted or replaced; Clear drops all of them.
// The zero value is ready to use. GlyphCache is not safe for concurrent
// use; callers sharing one must synchronize.
type GlyphCache struct {
	entries map[GlyphKey]*Pixmap
	stats   GlyphCacheStats
}

// GlyphCacheStats holds glyph cache counters.
type GlyphCacheStats struct {
	Hits       uint64
	Misses     uint64
	Insertions uint64
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s GlyphCacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// NewGlyphCache creates an empty glyph cache.
func NewGlyphCache() *GlyphCache {
	return &GlyphCache{entries: make(map[GlyphKey]*Pixmap)}
}

// Get returns the bitmap stored for key. The bitmap must not be modified.
func (c *GlyphCache) Get(key GlyphKey) (*Pixmap, bool) {
	pm, ok := c.entries[key]
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return pm, ok
}

// Len returns the number of stored bitmaps.
func (c *GlyphCache) Len() int {
	return len(c.entries)
}

// Stats returns the cache counters.
func (c *GlyphCache) Stats() GlyphCacheStats {
	return c.stats
}

// Clear removes all entries and resets the counters.
func (c *GlyphCache) Clear() {
	c.entries = nil
	c.stats = GlyphCacheStats{}
}

// insert stores pm under key unless key is already present.
func (c *GlyphCache) insert(key GlyphKey, pm *Pixmap) {
	if c.entries == nil {
		c.entries = make(map[GlyphKey]*Pixmap)
	}
	if _, ok := c.entries[key]; ok {
		return
	}
	c.entries[key] = pm
	c.stats.Insertions++
}
