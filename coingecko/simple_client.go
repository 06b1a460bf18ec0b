package coingecko

import (
	"context"
	"strings"

	"github.com/trakx/coingecko-go/config"
	"github.com/trakx/coingecko-go/httpclient"
)

// SimpleClient wraps the /simple and /ping endpoints
type SimpleClient struct {
	baseClient
}

// NewSimpleClient creates a client for the simple price endpoints
func NewSimpleClient(cfg *config.Config, doer httpclient.Doer) *SimpleClient {
	return &SimpleClient{newBaseClient(cfg, doer)}
}

// Price fetches current prices for ids quoted in vsCurrencies
func (c *SimpleClient) Price(ctx context.Context, ids, vsCurrencies []string) (SimplePrices, error) {
	return c.price(ctx, ids, vsCurrencies, false)
}

// PriceWithExtras fetches current prices plus market cap, 24h volume and
// 24h change for every requested quote currency
func (c *SimpleClient) PriceWithExtras(ctx context.Context, ids, vsCurrencies []string) (SimplePrices, error) {
	return c.price(ctx, ids, vsCurrencies, true)
}

func (c *SimpleClient) price(ctx context.Context, ids, vsCurrencies []string, extras bool) (SimplePrices, error) {
	rb := c.newBuilder("/simple/price").
		With("ids", strings.Join(ids, ",")).
		With("vs_currencies", strings.Join(vsCurrencies, ","))

	if extras {
		rb.With("include_market_cap", "true").
			With("include_24hr_vol", "true").
			With("include_24hr_change", "true")
	}

	var prices SimplePrices
	if err := c.getJSON(ctx, rb, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// SupportedVsCurrencies fetches the list of quote currencies the API supports
func (c *SimpleClient) SupportedVsCurrencies(ctx context.Context) ([]string, error) {
	var currencies []string
	if err := c.getJSON(ctx, c.newBuilder("/simple/supported_vs_currencies"), &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

// Ping checks API server availability
func (c *SimpleClient) Ping(ctx context.Context) (*PingResponse, error) {
	var ping PingResponse
	if err := c.getJSON(ctx, c.newBuilder("/ping"), &ping); err != nil {
		return nil, err
	}
	return &ping, nil
}
