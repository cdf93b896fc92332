// Package cache provides a small generic LRU cache used to memoize
// per-font work such as shaping and glyph bounds.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
