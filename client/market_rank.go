package client

import (
	"context"
	"fmt"

	"github.com/trakx/coingecko-go/coingecko"
)

// Search returns one page of coins ordered by market cap, converted to
// market data snapshots and cached for a day
func (c *CoinGeckoClient) Search(ctx context.Context, vsCurrency string, page, perPage int) ([]MarketData, error) {
	if vsCurrency == "" {
		vsCurrency = MainQuoteCurrency
	}

	cacheKey := fmt.Sprintf("search|%s|%d|%d", vsCurrency, page, perPage)
	return getOrLoad(c.cache, cacheKey, func() ([]MarketData, error) {
		markets, err := c.coins.Markets(ctx, vsCurrency, page, perPage)
		if err != nil {
			return nil, err
		}

		result := make([]MarketData, 0, len(markets))
		for _, market := range markets {
			result = append(result, MarketData{
				AsOf:              c.now(),
				CoinId:            market.Id,
				CoinSymbol:        market.Symbol,
				Name:              market.Name,
				QuoteCurrency:     vsCurrency,
				Price:             market.CurrentPrice,
				MarketCap:         market.MarketCap,
				Volume:            market.TotalVolume,
				CirculatingSupply: market.CirculatingSupply,
				MarketCapRank:     market.MarketCapRank,
			})
		}
		return result, nil
	})
}

// GetMarketRank returns the top limit coins by market cap. The list is
// fetched and cached at the default size so smaller limits are served by
// truncating the cached list instead of hitting the API again; limits over
// the default are fetched and cached on their own.
func (c *CoinGeckoClient) GetMarketRank(ctx context.Context, limit int) ([]MarketData, error) {
	if limit <= 0 {
		limit = MarketRankDefaultLimit
	}

	fetchLimit := limit
	if fetchLimit < MarketRankDefaultLimit {
		fetchLimit = MarketRankDefaultLimit
	}

	cacheKey := fmt.Sprintf("market-rank|%d", fetchLimit)
	list, err := getOrLoad(c.cache, cacheKey, func() ([]MarketData, error) {
		return c.marketRank(ctx, fetchLimit)
	})
	if err != nil {
		return nil, err
	}

	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// marketRank paginates the markets endpoint until limit entries are
// collected or the API runs out of coins
func (c *CoinGeckoClient) marketRank(ctx context.Context, limit int) ([]MarketData, error) {
	pageSize := coingecko.MaxPerPage
	if limit < pageSize {
		pageSize = limit
	}
	pageCount := (limit + pageSize - 1) / pageSize

	var result []MarketData
	for page := 1; page <= pageCount; page++ {
		partial, err := c.Search(ctx, MainQuoteCurrency, page, pageSize)
		if err != nil {
			return nil, err
		}
		if len(partial) == 0 {
			break
		}
		result = append(result, partial...)
	}

	return result, nil
}
