// Package cache provides a small generic LRU cache with a soft limit.
//
// Tools use it to memoize brush footprints by diameter:
//
//	masks := cache.New[int, sprite.CircleMask](64)
//	m := masks.GetOrCreate(5, func() sprite.CircleMask { return sprite.NewCircleMask(5) })
//
// When the soft limit is exceeded a quarter of the entries, least recently
// used first, are evicted. Cache is safe for concurrent use.
package cache
