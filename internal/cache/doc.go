// Package cache provides a small generic LRU cache.
//
//	c := cache.New[stampKey, *paintcore.Mask](32)
//	m := c.GetOrCreate(key, func() *paintcore.Mask { return render(key) })
//
// LRU is safe for concurrent use and must not be copied after creation.
package cache
