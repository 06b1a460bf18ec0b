package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// GoCache simple in-memory cache implementation using go-cache
type GoCache struct {
	cache *cache.Cache
	locks *keyLocks
}

// NewGoCache creates a new GoCache instance
// defaultExpiration: default expiration time for items
// cleanupInterval: interval for cleaning up expired items
func NewGoCache(defaultExpiration, cleanupInterval time.Duration) *GoCache {
	return &GoCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
		locks: newKeyLocks(),
	}
}

// Get retrieves the value for the given key
func (gc *GoCache) Get(key string) ([]byte, bool) {
	value, found := gc.cache.Get(key)
	if !found {
		return nil, false
	}
	data, ok := value.([]byte)
	if !ok {
		// Stored value is not []byte, treat as missing
		return nil, false
	}
	return data, true
}

// Set stores data under key with the specified timeout
// If ttl is 0, uses cache's default expiration
func (gc *GoCache) Set(key string, data []byte, ttl time.Duration) {
	gc.cache.Set(key, data, ttl)
}

// GetOrLoad retrieves the value for key or loads and caches it.
// Only one loader runs per key at a time
func (gc *GoCache) GetOrLoad(key string, loader LoaderFunc) ([]byte, error) {
	if data, found := gc.Get(key); found {
		return data, nil
	}

	lock := gc.locks.acquire(key)
	defer gc.locks.release(key, lock)

	// Another caller may have populated the entry while we waited
	if data, found := gc.Get(key); found {
		return data, nil
	}

	data, ttl, err := loader()
	if err != nil {
		return nil, err
	}

	gc.cache.Set(key, data, ttl)
	return data, nil
}

// Delete removes the item stored under key
func (gc *GoCache) Delete(key string) {
	gc.cache.Delete(key)
}

// Clear removes all items from cache
func (gc *GoCache) Clear() {
	gc.cache.Flush()
}

// ItemCount returns the number of items in cache
func (gc *GoCache) ItemCount() int {
	return gc.cache.ItemCount()
}
