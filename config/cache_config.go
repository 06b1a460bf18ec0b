package config

import "time"

// CacheConfig represents cache configuration
type CacheConfig struct {
	// GoCache configuration for the in-memory backend
	GoCache GoCacheConfig `yaml:"go_cache"`

	// Redis configuration for the optional distributed backend
	Redis RedisConfig `yaml:"redis"`
}

// GoCacheConfig configuration for in-memory go-cache
type GoCacheConfig struct {
	// DefaultExpiration default expiration time for cache items
	// If 0, items never expire by default
	DefaultExpiration time.Duration `yaml:"default_expiration"`

	// CleanupInterval interval for cleaning up expired items
	// Should be less than DefaultExpiration
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// RedisConfig configuration for the redis-backed cache
type RedisConfig struct {
	// Enabled whether the redis backend is used instead of go-cache
	Enabled bool `yaml:"enabled"`

	// Addr is the redis host:port
	Addr string `yaml:"addr"`

	// Password for redis AUTH, empty if none
	Password string `yaml:"password"`

	// DB is the redis database number
	DB int `yaml:"db"`

	// KeyPrefix prepended to every cache key, keeps entries of several
	// clients apart on a shared instance
	KeyPrefix string `yaml:"key_prefix"`
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		GoCache: GoCacheConfig{
			DefaultExpiration: 5 * time.Minute,
			CleanupInterval:   10 * time.Minute,
		},
	}
}
