package client

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trakx/coingecko-go/coingecko"
)

// MarketData is a snapshot of one coin's market state at one instant in
// one quote currency
type MarketData struct {
	AsOf              time.Time       `json:"as_of"`
	CoinId            string          `json:"coin_id"`
	CoinSymbol        string          `json:"coin_symbol"`
	Name              string          `json:"name,omitempty"`
	QuoteCurrency     string          `json:"quote_currency"`
	Price             decimal.Decimal `json:"price"`
	MarketCap         decimal.Decimal `json:"market_cap"`
	Volume            decimal.Decimal `json:"volume"`
	CirculatingSupply decimal.Decimal `json:"circulating_supply,omitempty"`
	MarketCapRank     int             `json:"market_cap_rank,omitempty"`
}

// GetMarketDataAsOfFromId returns price, volume and market cap of id at
// asOf, re-expressed in quoteCurrencyId via its USD rate on the same date.
// Returns nil without error when the API has no snapshot for the date.
func (c *CoinGeckoClient) GetMarketDataAsOfFromId(ctx context.Context, id string, asOf time.Time, quoteCurrencyId string) (*MarketData, error) {
	if quoteCurrencyId == "" {
		quoteCurrencyId = DefaultQuoteCurrencyID
	}

	date := asOf.Format(coingecko.HistoryDateFormat)
	cacheKey := fmt.Sprintf("market-data|%s|%s|%s", id, quoteCurrencyId, date)

	return getOrLoad(c.cache, cacheKey, func() (*MarketData, error) {
		return c.marketDataAsOf(ctx, id, asOf, quoteCurrencyId, date)
	})
}

func (c *CoinGeckoClient) marketDataAsOf(ctx context.Context, id string, asOf time.Time, quoteCurrencyId, date string) (*MarketData, error) {
	fullData, err := c.coins.History(ctx, id, asOf)
	if err != nil {
		return nil, err
	}

	data := fullData.MarketData
	if data == nil {
		return nil, nil
	}

	fxRate, err := c.getUsdFxRate(ctx, quoteCurrencyId, asOf, date)
	if err != nil {
		return nil, err
	}

	return &MarketData{
		AsOf:          asOf,
		CoinId:        fullData.Id,
		CoinSymbol:    fullData.Symbol,
		QuoteCurrency: quoteCurrencyId,
		Price:         data.CurrentPrice[MainQuoteCurrency].Div(fxRate),
		MarketCap:     data.MarketCap[MainQuoteCurrency].Div(fxRate),
		Volume:        data.TotalVolume[MainQuoteCurrency].Div(fxRate),
	}, nil
}

// getUsdFxRate returns the USD price of quoteCurrencyId on the given date.
// The rate is required; a missing or zero rate is a domain error, not an
// absence.
func (c *CoinGeckoClient) getUsdFxRate(ctx context.Context, quoteCurrencyId string, asOf time.Time, date string) (decimal.Decimal, error) {
	cacheKey := fmt.Sprintf("usd-fx-rate|%s|%s", quoteCurrencyId, date)
	return getOrLoad(c.cache, cacheKey, func() (decimal.Decimal, error) {
		history, err := c.coins.History(ctx, quoteCurrencyId, asOf)
		if err != nil {
			return decimal.Zero, err
		}

		if history.MarketData != nil {
			if fxRate, ok := history.MarketData.CurrentPrice[MainQuoteCurrency]; ok && !fxRate.IsZero() {
				return fxRate, nil
			}
		}

		return decimal.Zero, &FailedToRetrievePriceError{QuoteCurrencyID: quoteCurrencyId, Date: date}
	})
}

// GetMarketDataForDateRange returns daily market data points between start
// and end, keyed by timestamp. Windows ending today or yesterday are still
// moving, so those skip the result cache.
func (c *CoinGeckoClient) GetMarketDataForDateRange(ctx context.Context, id, vsCurrency string, start, end time.Time) (map[time.Time]MarketData, error) {
	if daysAgo(c.now(), end) <= 1 {
		return c.marketDataForDateRange(ctx, id, vsCurrency, start, end)
	}

	cacheKey := fmt.Sprintf("range|%s|%s|%d|%d", id, vsCurrency, start.Unix(), end.Unix())
	return getOrLoad(c.cache, cacheKey, func() (map[time.Time]MarketData, error) {
		return c.marketDataForDateRange(ctx, id, vsCurrency, start, end)
	})
}

func (c *CoinGeckoClient) marketDataForDateRange(ctx context.Context, id, vsCurrency string, start, end time.Time) (map[time.Time]MarketData, error) {
	chart, err := c.coins.MarketChartRange(ctx, id, vsCurrency, start, end)
	if err != nil {
		return nil, err
	}
	return buildMarketData(id, vsCurrency, chart), nil
}

// GetMarketData returns daily market data points covering the last days
// days. Single day windows skip the result cache.
func (c *CoinGeckoClient) GetMarketData(ctx context.Context, id, vsCurrency string, days int) (map[time.Time]MarketData, error) {
	if days <= 1 {
		return c.marketData(ctx, id, vsCurrency, days)
	}

	cacheKey := fmt.Sprintf("chart|%s|%s|%d", id, vsCurrency, days)
	return getOrLoad(c.cache, cacheKey, func() (map[time.Time]MarketData, error) {
		return c.marketData(ctx, id, vsCurrency, days)
	})
}

func (c *CoinGeckoClient) marketData(ctx context.Context, id, vsCurrency string, days int) (map[time.Time]MarketData, error) {
	chart, err := c.coins.MarketChart(ctx, id, vsCurrency, days)
	if err != nil {
		return nil, err
	}
	return buildMarketData(id, vsCurrency, chart), nil
}

// buildMarketData converts a chart of [timestamp, value] pairs into per
// timestamp snapshots
func buildMarketData(id, vsCurrency string, chart *coingecko.MarketChart) map[time.Time]MarketData {
	result := make(map[time.Time]MarketData, len(chart.Prices))

	for i, point := range chart.Prices {
		if len(point) < 2 {
			continue
		}
		asOf := time.UnixMilli(point[0].IntPart()).UTC()

		entry := MarketData{
			AsOf:          asOf,
			CoinId:        id,
			QuoteCurrency: vsCurrency,
			Price:         point[1],
		}
		if i < len(chart.MarketCaps) && len(chart.MarketCaps[i]) >= 2 {
			entry.MarketCap = chart.MarketCaps[i][1]
		}
		if i < len(chart.TotalVolumes) && len(chart.TotalVolumes[i]) >= 2 {
			entry.Volume = chart.TotalVolumes[i][1]
		}

		result[asOf] = entry
	}

	return result
}

// daysAgo returns how many whole calendar days separate t from now in UTC
func daysAgo(now, t time.Time) int {
	nowDate := now.UTC().Truncate(24 * time.Hour)
	tDate := t.UTC().Truncate(24 * time.Hour)
	return int(nowDate.Sub(tDate).Hours() / 24)
}
