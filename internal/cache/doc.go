// Package cache provides a generic LRU cache with a soft size limit.
//
//	c := cache.New[string, []float32](256)
//	c.Set("key", verts)
//	v, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
