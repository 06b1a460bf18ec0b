package coingecko

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/trakx/coingecko-go/config"
	"github.com/trakx/coingecko-go/httpclient"
)

const (
	// HistoryDateFormat is the dd-MM-yyyy layout /coins/{id}/history expects
	HistoryDateFormat = "02-01-2006"

	// MaxPerPage is CoinGecko's per_page ceiling on /coins/markets
	MaxPerPage = 250
)

// CoinsClient wraps the /coins endpoints
type CoinsClient struct {
	baseClient
}

// NewCoinsClient creates a client for the coin data endpoints
func NewCoinsClient(cfg *config.Config, doer httpclient.Doer) *CoinsClient {
	return &CoinsClient{newBaseClient(cfg, doer)}
}

// List fetches all coins known to CoinGecko with their ids, symbols and names
func (c *CoinsClient) List(ctx context.Context) ([]CoinListItem, error) {
	var coins []CoinListItem
	if err := c.getJSON(ctx, c.newBuilder("/coins/list"), &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

// History fetches the market snapshot for a coin at the given date.
// The response carries prices in every quote currency at once.
func (c *CoinsClient) History(ctx context.Context, id string, date time.Time) (*CoinHistory, error) {
	rb := c.newBuilder(fmt.Sprintf("/coins/%s/history", id)).
		With("date", date.Format(HistoryDateFormat)).
		With("localization", "false")

	var history CoinHistory
	if err := c.getJSON(ctx, rb, &history); err != nil {
		return nil, err
	}
	return &history, nil
}

// MarketChart fetches daily price, market cap and volume points covering
// the last days days
func (c *CoinsClient) MarketChart(ctx context.Context, id, vsCurrency string, days int) (*MarketChart, error) {
	rb := c.newBuilder(fmt.Sprintf("/coins/%s/market_chart", id)).
		WithCurrency(vsCurrency).
		With("days", strconv.Itoa(days)).
		With("interval", "daily")

	var chart MarketChart
	if err := c.getJSON(ctx, rb, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

// MarketChartRange fetches price, market cap and volume points between
// from and to
func (c *CoinsClient) MarketChartRange(ctx context.Context, id, vsCurrency string, from, to time.Time) (*MarketChart, error) {
	rb := c.newBuilder(fmt.Sprintf("/coins/%s/market_chart/range", id)).
		WithCurrency(vsCurrency).
		With("from", strconv.FormatInt(from.Unix(), 10)).
		With("to", strconv.FormatInt(to.Unix(), 10))

	var chart MarketChart
	if err := c.getJSON(ctx, rb, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

// Markets fetches one page of coins ordered by market cap descending
func (c *CoinsClient) Markets(ctx context.Context, vsCurrency string, page, perPage int) ([]Market, error) {
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	rb := c.newBuilder("/coins/markets").
		WithCurrency(vsCurrency).
		With("order", "market_cap_desc").
		With("page", strconv.Itoa(page)).
		With("per_page", strconv.Itoa(perPage))

	var markets []Market
	if err := c.getJSON(ctx, rb, &markets); err != nil {
		return nil, err
	}
	return markets, nil
}
