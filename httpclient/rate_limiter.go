package httpclient

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/trakx/coingecko-go/config"
)

// KeyType defines the API key type
type KeyType int

const (
	// NoKey means no API key is available
	NoKey KeyType = iota
	// ProKey means using a Pro API key
	ProKey
	// DemoKey means using a demo API key
	DemoKey
)

// Defaults in requests per minute, used when config is not provided
const (
	defaultProRPM   = 500
	defaultDemoRPM  = 30
	defaultNoKeyRPM = 30
)

// proKeyHeader is the header carrying the Pro API key
const proKeyHeader = "X-Cg-Pro-Api-Key"

// RateLimiterManager manages per-key rate limiters using APIKeyConfig.
// Instances are injected into executors, there is no process-wide state.
type RateLimiterManager struct {
	mu           sync.RWMutex
	keyToLimiter map[string]*rate.Limiter
	config       config.APIKeyConfig
}

// NewRateLimiterManager creates a rate limiter manager with the given limits
func NewRateLimiterManager(cfg config.APIKeyConfig) *RateLimiterManager {
	return &RateLimiterManager{
		keyToLimiter: make(map[string]*rate.Limiter),
		config:       cfg,
	}
}

// GetLimiterForRequest inspects the request to determine the key and its
// type and returns the appropriate limiter, or nil for unrelated hosts
func (m *RateLimiterManager) GetLimiterForRequest(req *http.Request) *rate.Limiter {
	if m == nil || req == nil || req.URL == nil {
		return nil
	}

	if v := req.Header.Get(proKeyHeader); v != "" {
		return m.getLimiterForKey(v, ProKey)
	}

	query := req.URL.Query()
	if v := query.Get("x_cg_pro_api_key"); v != "" {
		return m.getLimiterForKey(v, ProKey)
	}
	if v := query.Get("x_cg_demo_api_key"); v != "" {
		return m.getLimiterForKey(v, DemoKey)
	}

	// Apply the public limiter only for known CoinGecko hosts
	host := req.URL.Hostname()
	if host == "api.coingecko.com" || host == "pro-api.coingecko.com" {
		return m.getLimiterForKey("", NoKey)
	}

	return nil
}

// getLimiterForKey returns a limiter for a given api key and type, creating it if missing
func (m *RateLimiterManager) getLimiterForKey(key string, keyType KeyType) *rate.Limiter {
	mapKey := limiterMapKey(key, keyType)

	m.mu.RLock()
	if lim, ok := m.keyToLimiter[mapKey]; ok {
		m.mu.RUnlock()
		return lim
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if lim, ok := m.keyToLimiter[mapKey]; ok {
		return lim
	}

	limit := m.limitForType(keyType)
	lim := rate.NewLimiter(limit, m.burstForType(keyType, limit))
	m.keyToLimiter[mapKey] = lim
	return lim
}

// limitForType converts the configured requests-per-minute into a rate.Limit
func (m *RateLimiterManager) limitForType(keyType KeyType) rate.Limit {
	rpm := 0
	switch keyType {
	case ProKey:
		rpm = m.config.Pro.RateLimitPerMinute
	case DemoKey:
		rpm = m.config.Demo.RateLimitPerMinute
	case NoKey:
		rpm = m.config.NoKey.RateLimitPerMinute
	}
	if rpm <= 0 {
		switch keyType {
		case ProKey:
			rpm = defaultProRPM
		case DemoKey:
			rpm = defaultDemoRPM
		default:
			rpm = defaultNoKeyRPM
		}
	}
	return rate.Limit(float64(rpm) / 60.0)
}

// burstForType returns the configured burst, or a burst derived from the limit
func (m *RateLimiterManager) burstForType(keyType KeyType, limit rate.Limit) int {
	burst := 0
	switch keyType {
	case ProKey:
		burst = m.config.Pro.Burst
	case DemoKey:
		burst = m.config.Demo.Burst
	case NoKey:
		burst = m.config.NoKey.Burst
	}
	if burst > 0 {
		return burst
	}
	if limit >= 1 {
		return int(limit)
	}
	return 1
}

func limiterMapKey(key string, keyType KeyType) string {
	switch keyType {
	case ProKey:
		return "pro:" + key
	case DemoKey:
		return "demo:" + key
	default:
		return "nokey"
	}
}
