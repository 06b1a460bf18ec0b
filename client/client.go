package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/trakx/coingecko-go/cache"
	"github.com/trakx/coingecko-go/coingecko"
	"github.com/trakx/coingecko-go/config"
	"github.com/trakx/coingecko-go/httpclient"
	"github.com/trakx/coingecko-go/metrics"
)

const (
	// MainQuoteCurrency is the quote currency every price call falls back to
	MainQuoteCurrency = "usd"

	// DefaultQuoteCurrencyID is the coin id used as quote currency when the
	// caller does not name one
	DefaultQuoteCurrencyID = "usd-coin"

	// MarketRankDefaultLimit is the list size cached for market rank queries
	MarketRankDefaultLimit = 1000

	// resultCacheTTL is how long composed results stay cached. Historical
	// data for a past date never changes, so a day is a safe window.
	resultCacheTTL = 24 * time.Hour
)

// CoinGeckoClient composes the raw endpoint clients into higher level
// price and market data operations, with its own result cache on top of
// the HTTP response cache
type CoinGeckoClient struct {
	coins  CoinsAPI
	simple SimpleAPI
	cache  cache.Cache
	now    func() time.Time
}

// New builds a fully wired client: rate limited, retrying, metric emitting
// HTTP layer underneath the endpoint clients, plus a separate result cache
func New(cfg *config.Config) *CoinGeckoClient {
	writer := metrics.NewMetricsWriter("coingecko")
	limiters := httpclient.NewRateLimiterManager(cfg.RateLimits)
	executor := httpclient.NewExecutor(retryOptions(cfg), writer, limiters)

	store := cache.NewService(cfg.Cache)
	transport := httpclient.NewCachingTransport(executor, store, cfg.CacheDuration)

	results := cache.NewGoCache(resultCacheTTL, time.Hour)

	return NewWithClients(
		coingecko.NewCoinsClient(cfg, transport),
		coingecko.NewSimpleClient(cfg, transport),
		results,
	)
}

// NewWithClients builds a client over already constructed endpoint clients
// and result cache
func NewWithClients(coins CoinsAPI, simple SimpleAPI, results cache.Cache) *CoinGeckoClient {
	return &CoinGeckoClient{
		coins:  coins,
		simple: simple,
		cache:  results,
		now:    time.Now,
	}
}

func retryOptions(cfg *config.Config) httpclient.RetryOptions {
	opts := httpclient.DefaultRetryOptions()
	if cfg.MaxRetries > 0 {
		opts.MaxRetries = cfg.MaxRetries
	}
	if cfg.InitialRetryDelay > 0 {
		opts.InitialDelay = cfg.InitialRetryDelay
	}
	if cfg.ConnectionTimeout > 0 {
		opts.ConnectionTimeout = cfg.ConnectionTimeout
	}
	if cfg.RequestTimeout > 0 {
		opts.RequestTimeout = cfg.RequestTimeout
	}
	return opts
}

// getOrLoad serves a composed result from the cache, or produces it with
// load and caches the JSON encoding for a day
func getOrLoad[T any](c cache.Cache, key string, load func() (T, error)) (T, error) {
	var out T

	data, err := c.GetOrLoad(key, func() ([]byte, time.Duration, error) {
		value, err := load()
		if err != nil {
			return nil, 0, err
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, 0, fmt.Errorf("error encoding cached result for %s: %w", key, err)
		}
		return encoded, resultCacheTTL, nil
	})
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("error decoding cached result for %s: %w", key, err)
	}
	return out, nil
}
