package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/trakx/coingecko-go/coingecko"
)

// GetCoinList returns every coin known to the API, cached for a day
func (c *CoinGeckoClient) GetCoinList(ctx context.Context) ([]coingecko.CoinListItem, error) {
	return getOrLoad(c.cache, "coin-list", func() ([]coingecko.CoinListItem, error) {
		return c.coins.List(ctx)
	})
}

// GetSupportedQuoteCurrencies returns the quote currencies the API accepts
// on price calls, cached for a day
func (c *CoinGeckoClient) GetSupportedQuoteCurrencies(ctx context.Context) ([]string, error) {
	return getOrLoad(c.cache, "supported-vs-currencies", func() ([]string, error) {
		return c.simple.SupportedVsCurrencies(ctx)
	})
}

// GetCoinGeckoIdFromSymbol resolves a ticker symbol to a coin id.
// A symbol claimed by several coins is disambiguated by market cap rank;
// when no candidate is ranked the result is empty, not an error.
func (c *CoinGeckoClient) GetCoinGeckoIdFromSymbol(ctx context.Context, symbol string) (string, error) {
	cacheKey := fmt.Sprintf("coingeckoid-from|%s", strings.ToLower(symbol))
	return getOrLoad(c.cache, cacheKey, func() (string, error) {
		return c.coinGeckoIdFromSymbol(ctx, symbol)
	})
}

func (c *CoinGeckoClient) coinGeckoIdFromSymbol(ctx context.Context, symbol string) (string, error) {
	coinList, err := c.GetCoinList(ctx)
	if err != nil {
		return "", err
	}

	var candidates []coingecko.CoinListItem
	for _, coin := range coinList {
		if strings.EqualFold(coin.Symbol, symbol) {
			candidates = append(candidates, coin)
		}
	}

	if len(candidates) == 0 {
		return "", nil
	}
	if len(candidates) == 1 {
		return candidates[0].Id, nil
	}

	// multiple coins claim the symbol, pick the best ranked one
	ranked, err := c.GetMarketRank(ctx, MarketRankDefaultLimit)
	if err != nil {
		return "", err
	}

	best := ""
	bestRank := 0
	for _, entry := range ranked {
		if !strings.EqualFold(entry.CoinSymbol, symbol) || entry.MarketCapRank <= 0 {
			continue
		}
		if best == "" || entry.MarketCapRank < bestRank {
			best = entry.CoinId
			bestRank = entry.MarketCapRank
		}
	}

	return best, nil
}
