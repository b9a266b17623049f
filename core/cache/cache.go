// Package cache provides a small LRU used for memoizing pure lookups, such
// as the messenger's name-to-selector resolutions.
package cache

// Cache is a bounded key-value store with eviction.
type Cache[V any] interface {
	Get(key string) (V, bool)
	Put(key string, val V)
}
