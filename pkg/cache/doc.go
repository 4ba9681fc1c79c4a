// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry expiry.
//
// It backs the lookup memoization of existence checks: answers from a
// database or Redis are kept for a short time so repeated validations of the
// same reference value do not hit the store again.
//
//	c := cache.NewLRUCache[string, bool](1024, cache.WithTTL(30*time.Second))
//	c.Put("DE", true)
//	ok, found := c.Get("DE")
//
// Entries expire ttl after their last Put. Expired entries are dropped lazily
// on Get and count as misses in Stats. The eviction callback fires for every
// entry that leaves the cache.
package cache
