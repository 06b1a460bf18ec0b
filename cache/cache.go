package cache

import "time"

// LoaderFunc loads the value for a key missing from the cache.
// It returns the data together with the TTL it should be cached with;
// a ttl of 0 means the store's default expiration
type LoaderFunc func() (data []byte, ttl time.Duration, err error)

// Cache interface for a key/value store with per-entry expiration
type Cache interface {
	// Get retrieves the data stored under key.
	// Returns false if the key is missing or expired
	Get(key string) ([]byte, bool)

	// Set stores data under key with the given TTL.
	// If ttl is 0, the store's default expiration is used
	Set(key string, data []byte, ttl time.Duration)

	// GetOrLoad returns the cached data for key, or runs loader to
	// produce it and caches the result with the loader's TTL.
	//
	// For a given key at most one loader runs at a time: concurrent
	// callers missing on the same key wait for the first loader instead
	// of issuing duplicate upstream calls. Loader errors are returned
	// to the caller and nothing is cached.
	GetOrLoad(key string, loader LoaderFunc) ([]byte, error)

	// Delete removes the entry stored under key
	Delete(key string)
}

// WithTTL wraps a plain loader function with a fixed TTL
func WithTTL(ttl time.Duration, load func() ([]byte, error)) LoaderFunc {
	return func() ([]byte, time.Duration, error) {
		data, err := load()
		return data, ttl, err
	}
}
