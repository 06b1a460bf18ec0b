package client

import (
	"context"
	"time"

	"github.com/trakx/coingecko-go/coingecko"
)

//go:generate mockgen -destination=mocks/api.go -package=mocks . CoinsAPI,SimpleAPI

// CoinsAPI is the subset of the /coins endpoints the aggregator composes
type CoinsAPI interface {
	List(ctx context.Context) ([]coingecko.CoinListItem, error)
	History(ctx context.Context, id string, date time.Time) (*coingecko.CoinHistory, error)
	MarketChart(ctx context.Context, id, vsCurrency string, days int) (*coingecko.MarketChart, error)
	MarketChartRange(ctx context.Context, id, vsCurrency string, from, to time.Time) (*coingecko.MarketChart, error)
	Markets(ctx context.Context, vsCurrency string, page, perPage int) ([]coingecko.Market, error)
}

// SimpleAPI is the subset of the /simple endpoints the aggregator composes
type SimpleAPI interface {
	Price(ctx context.Context, ids, vsCurrencies []string) (coingecko.SimplePrices, error)
	PriceWithExtras(ctx context.Context, ids, vsCurrencies []string) (coingecko.SimplePrices, error)
	SupportedVsCurrencies(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) (*coingecko.PingResponse, error)
}
