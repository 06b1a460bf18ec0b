package client

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ExtendedPrice is one coin's price in one quote currency together with the
// market cap and daily volume in that currency, when the API reported them
type ExtendedPrice struct {
	CoinGeckoId string          `json:"coingecko_id"`
	Currency    string          `json:"currency"`
	Price       decimal.Decimal `json:"price"`
	MarketCap   decimal.Decimal `json:"market_cap"`
	DailyVolume decimal.Decimal `json:"daily_volume"`
}

// GetLatestPrice returns the current price of coinGeckoId expressed in
// quoteCurrencyId. Zero means the price could not be resolved.
func (c *CoinGeckoClient) GetLatestPrice(ctx context.Context, coinGeckoId, quoteCurrencyId string) (decimal.Decimal, error) {
	if quoteCurrencyId == "" {
		quoteCurrencyId = DefaultQuoteCurrencyID
	}

	prices, err := c.GetAllPrices(ctx, []string{coinGeckoId}, []string{quoteCurrencyId})
	if err != nil {
		return decimal.Zero, err
	}

	return prices.GetPrice(coinGeckoId, quoteCurrencyId), nil
}

// GetAllPrices fetches current prices for ids in vsCurrencies with a single
// batched call. Quote currencies the API does not support as "vs" ids are
// queried as base coins instead, so their prices can still be derived by
// conversion through a supported quote currency.
func (c *CoinGeckoClient) GetAllPrices(ctx context.Context, ids, vsCurrencies []string) (*MultiplePrices, error) {
	baseIds, quoteIds, err := c.idsForPriceQuery(ctx, ids, vsCurrencies)
	if err != nil {
		return nil, err
	}

	prices, err := c.simple.Price(ctx, baseIds, quoteIds)
	if err != nil {
		return nil, err
	}

	return NewMultiplePrices(prices), nil
}

// GetAllPricesExtended fetches current prices plus market cap and daily
// volume, flattened to one entry per coin and requested quote currency
func (c *CoinGeckoClient) GetAllPricesExtended(ctx context.Context, ids, vsCurrencies []string) ([]ExtendedPrice, error) {
	if len(vsCurrencies) == 0 {
		vsCurrencies = []string{MainQuoteCurrency}
	}

	baseIds, quoteIds, err := c.idsForPriceQuery(ctx, ids, vsCurrencies)
	if err != nil {
		return nil, err
	}

	prices, err := c.simple.PriceWithExtras(ctx, baseIds, quoteIds)
	if err != nil {
		return nil, err
	}

	coinIds := make([]string, 0, len(prices))
	for coinId := range prices {
		coinIds = append(coinIds, coinId)
	}
	sort.Strings(coinIds)

	var result []ExtendedPrice
	for _, coinId := range coinIds {
		values := prices[coinId]
		for _, currency := range vsCurrencies {
			currency = strings.ToLower(currency)
			price, ok := values[currency]
			if !ok {
				continue
			}

			result = append(result, ExtendedPrice{
				CoinGeckoId: coinId,
				Currency:    currency,
				Price:       price,
				MarketCap:   values[currency+"_market_cap"],
				DailyVolume: values[currency+"_24h_vol"],
			})
		}
	}

	return result, nil
}

// idsForPriceQuery splits the requested ids between the "base" and "vs"
// sides of a simple price call. Unsupported quote currencies move to the
// base side, and the quote side always keeps at least the main quote
// currency so every base coin gets a price to convert through.
func (c *CoinGeckoClient) idsForPriceQuery(ctx context.Context, ids, vsCurrencies []string) (baseIds, quoteIds []string, err error) {
	supported, err := c.GetSupportedQuoteCurrencies(ctx)
	if err != nil {
		return nil, nil, err
	}

	supportedSet := make(map[string]struct{}, len(supported))
	for _, currency := range supported {
		supportedSet[strings.ToLower(currency)] = struct{}{}
	}

	seenBase := make(map[string]struct{})
	seenQuote := make(map[string]struct{})
	appendDistinct := func(list []string, seen map[string]struct{}, id string) []string {
		id = strings.ToLower(id)
		if _, dup := seen[id]; dup {
			return list
		}
		seen[id] = struct{}{}
		return append(list, id)
	}

	for _, id := range ids {
		baseIds = appendDistinct(baseIds, seenBase, id)
	}

	for _, currency := range vsCurrencies {
		if _, ok := supportedSet[strings.ToLower(currency)]; ok {
			quoteIds = appendDistinct(quoteIds, seenQuote, currency)
		} else {
			baseIds = appendDistinct(baseIds, seenBase, currency)
		}
	}

	if len(quoteIds) == 0 {
		quoteIds = append(quoteIds, MainQuoteCurrency)
	}

	return baseIds, quoteIds, nil
}
