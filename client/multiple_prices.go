package client

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/trakx/coingecko-go/coingecko"
)

// MultiplePrices wraps a coin id to quote currency price table and resolves
// pairs the table does not hold directly by triangulating through a common
// quote currency
type MultiplePrices struct {
	source coingecko.SimplePrices
}

// NewMultiplePrices wraps a price table returned by the simple price endpoint
func NewMultiplePrices(source coingecko.SimplePrices) *MultiplePrices {
	return &MultiplePrices{source: source}
}

// TotalPriceCount returns how many individual prices the table holds
func (p *MultiplePrices) TotalPriceCount() int {
	count := 0
	for _, prices := range p.source {
		count += len(prices)
	}
	return count
}

// GetPrice resolves the price of coinID expressed in quoteCurrencyID.
// A direct entry wins; otherwise every quote currency present in the table
// is tried as a conversion leg, in sorted order so the result is stable.
// Returns zero when no path exists.
func (p *MultiplePrices) GetPrice(coinID, quoteCurrencyID string) decimal.Decimal {
	direct := p.tryGetPrice(coinID, quoteCurrencyID)
	if !direct.IsZero() {
		return direct
	}

	for _, quote := range p.quoteCurrencies() {
		conversionRate := p.tryGetPrice(quoteCurrencyID, quote)
		if conversionRate.IsZero() {
			continue
		}

		price := p.tryGetPrice(coinID, quote)
		if price.IsZero() {
			continue
		}

		return price.Div(conversionRate)
	}

	return decimal.Zero
}

// quoteCurrencies returns every quote currency seen anywhere in the table
func (p *MultiplePrices) quoteCurrencies() []string {
	seen := make(map[string]struct{})
	for _, prices := range p.source {
		for quote := range prices {
			seen[quote] = struct{}{}
		}
	}

	quotes := make([]string, 0, len(seen))
	for quote := range seen {
		quotes = append(quotes, quote)
	}
	sort.Strings(quotes)

	return quotes
}

func (p *MultiplePrices) tryGetPrice(coinID, quoteCurrencyID string) decimal.Decimal {
	prices, ok := p.source[coinID]
	if !ok {
		return decimal.Zero
	}
	return prices[quoteCurrencyID]
}
