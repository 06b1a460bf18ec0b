package coingecko

import "github.com/shopspring/decimal"

// SimplePrices is the decoded payload of /simple/price: coin id to
// quote currency (or extended field like "usd_market_cap") to value.
type SimplePrices map[string]map[string]decimal.Decimal

// CoinListItem is one entry of /coins/list
type CoinListItem struct {
	Id     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// HistoryMarketData holds the market_data block of a historical snapshot
type HistoryMarketData struct {
	CurrentPrice map[string]decimal.Decimal `json:"current_price"`
	MarketCap    map[string]decimal.Decimal `json:"market_cap"`
	TotalVolume  map[string]decimal.Decimal `json:"total_volume"`
}

// CoinHistory is the decoded payload of /coins/{id}/history.
// MarketData is nil when CoinGecko has no snapshot for the date.
type CoinHistory struct {
	Id         string             `json:"id"`
	Symbol     string             `json:"symbol"`
	Name       string             `json:"name"`
	MarketData *HistoryMarketData `json:"market_data,omitempty"`
}

// MarketChart is the decoded payload of /coins/{id}/market_chart and
// /coins/{id}/market_chart/range. Each inner slice is a pair of
// [timestamp in ms, value].
type MarketChart struct {
	Prices       [][]decimal.Decimal `json:"prices"`
	MarketCaps   [][]decimal.Decimal `json:"market_caps"`
	TotalVolumes [][]decimal.Decimal `json:"total_volumes"`
}

// Market is one entry of /coins/markets
type Market struct {
	Id                       string          `json:"id"`
	Symbol                   string          `json:"symbol"`
	Name                     string          `json:"name"`
	Image                    string          `json:"image"`
	CurrentPrice             decimal.Decimal `json:"current_price"`
	MarketCap                decimal.Decimal `json:"market_cap"`
	MarketCapRank            int             `json:"market_cap_rank"`
	TotalVolume              decimal.Decimal `json:"total_volume"`
	CirculatingSupply        decimal.Decimal `json:"circulating_supply"`
	PriceChangePercentage24h decimal.Decimal `json:"price_change_percentage_24h"`
	LastUpdated              string          `json:"last_updated"`
}

// PingResponse is the decoded payload of /ping
type PingResponse struct {
	GeckoSays string `json:"gecko_says"`
}
