package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/trakx/coingecko-go/config"
)

// Default timeout for a single redis operation
const redisOpTimeout = 2 * time.Second

// RedisCache distributed cache implementation backed by redis.
// Redis failures are never surfaced to callers: a failed read is a cache
// miss and a failed write is dropped, so a broken cache degrades to live
// fetching instead of failing requests.
type RedisCache struct {
	client            *redis.Client
	keyPrefix         string
	defaultExpiration time.Duration
	locks             *keyLocks
}

// NewRedisCache creates a redis-backed cache from configuration
func NewRedisCache(cfg config.RedisConfig, defaultExpiration time.Duration) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisCache{
		client:            client,
		keyPrefix:         cfg.KeyPrefix,
		defaultExpiration: defaultExpiration,
		locks:             newKeyLocks(),
	}
}

func (rc *RedisCache) prefixed(key string) string {
	return rc.keyPrefix + key
}

// Get retrieves the value for the given key
func (rc *RedisCache) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := rc.client.Get(ctx, rc.prefixed(key)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("RedisCache: get error for %s: %v", key, err)
		return nil, false
	}
	return data, true
}

// Set stores data under key with the specified TTL
func (rc *RedisCache) Set(key string, data []byte, ttl time.Duration) {
	if ttl == 0 {
		ttl = rc.defaultExpiration
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := rc.client.Set(ctx, rc.prefixed(key), data, ttl).Err(); err != nil {
		log.Printf("RedisCache: set error for %s: %v", key, err)
	}
}

// GetOrLoad retrieves the value for key or loads and caches it.
// The single-loader guarantee is process-local: distributed locking is
// deliberately out of scope, duplicate loads across processes are accepted
func (rc *RedisCache) GetOrLoad(key string, loader LoaderFunc) ([]byte, error) {
	if data, found := rc.Get(key); found {
		return data, nil
	}

	lock := rc.locks.acquire(key)
	defer rc.locks.release(key, lock)

	if data, found := rc.Get(key); found {
		return data, nil
	}

	data, ttl, err := loader()
	if err != nil {
		return nil, err
	}

	rc.Set(key, data, ttl)
	return data, nil
}

// Delete removes the entry stored under key
func (rc *RedisCache) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := rc.client.Del(ctx, rc.prefixed(key)).Err(); err != nil {
		log.Printf("RedisCache: delete error for %s: %v", key, err)
	}
}

// Close releases the underlying redis connection
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}
