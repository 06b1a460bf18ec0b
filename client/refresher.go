package client

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/trakx/coingecko-go/coingecko"
	"github.com/trakx/coingecko-go/scheduler"
)

// CacheRefresher keeps the slow moving facade caches warm by re-fetching
// the coin list, the supported quote currencies and the market rank list
// on a fixed interval, so interactive calls rarely pay the refresh cost
type CacheRefresher struct {
	client    *CoinGeckoClient
	scheduler *scheduler.Scheduler
}

// StartCacheRefresher creates and starts a refresher for this client.
// Stop it to end the background runs.
func (c *CoinGeckoClient) StartCacheRefresher(ctx context.Context, interval time.Duration) *CacheRefresher {
	r := NewCacheRefresher(c, interval)
	r.Start(ctx)
	return r
}

// NewCacheRefresher creates a refresher for the given client. A zero
// interval defaults to the result cache lifetime.
func NewCacheRefresher(client *CoinGeckoClient, interval time.Duration) *CacheRefresher {
	if interval <= 0 {
		interval = resultCacheTTL
	}

	r := &CacheRefresher{client: client}
	r.scheduler = scheduler.New(interval, r.refresh)
	return r
}

// Start begins periodic refreshing, with an immediate first run
func (r *CacheRefresher) Start(ctx context.Context) {
	r.scheduler.Start(ctx)
}

// Stop halts periodic refreshing
func (r *CacheRefresher) Stop() {
	r.scheduler.Stop()
}

func (r *CacheRefresher) refresh(ctx context.Context) {
	marketRankKeys := []string{fmt.Sprintf("market-rank|%d", MarketRankDefaultLimit)}
	for page := 1; page*coingecko.MaxPerPage <= MarketRankDefaultLimit; page++ {
		marketRankKeys = append(marketRankKeys,
			fmt.Sprintf("search|%s|%d|%d", MainQuoteCurrency, page, coingecko.MaxPerPage))
	}

	for _, step := range []struct {
		name string
		keys []string
		run  func(context.Context) error
	}{
		{"coin list", []string{"coin-list"}, func(ctx context.Context) error {
			_, err := r.client.GetCoinList(ctx)
			return err
		}},
		{"supported quote currencies", []string{"supported-vs-currencies"}, func(ctx context.Context) error {
			_, err := r.client.GetSupportedQuoteCurrencies(ctx)
			return err
		}},
		{"market rank", marketRankKeys, func(ctx context.Context) error {
			_, err := r.client.GetMarketRank(ctx, MarketRankDefaultLimit)
			return err
		}},
	} {
		if ctx.Err() != nil {
			return
		}

		// drop the stale entries so the fetch below repopulates them
		for _, key := range step.keys {
			r.client.cache.Delete(key)
		}

		if err := step.run(ctx); err != nil {
			log.Printf("Refresher: error refreshing %s: %v", step.name, err)
		}
	}
}
