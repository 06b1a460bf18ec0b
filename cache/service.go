package cache

import (
	"github.com/trakx/coingecko-go/config"
)

// NewService creates a cache from configuration: the redis backend when
// enabled, the in-memory go-cache backend otherwise
func NewService(cfg config.CacheConfig) Cache {
	if cfg.Redis.Enabled {
		return NewRedisCache(cfg.Redis, cfg.GoCache.DefaultExpiration)
	}
	return NewGoCache(cfg.GoCache.DefaultExpiration, cfg.GoCache.CleanupInterval)
}
