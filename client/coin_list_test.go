package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trakx/coingecko-go/coingecko"
)

func TestGetCoinList_Cached(t *testing.T) {
	client, coins, _ := newTestClient(t)

	coins.EXPECT().List(gomock.Any()).Return([]coingecko.CoinListItem{
		{Id: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
	}, nil).Times(1)

	first, err := client.GetCoinList(context.Background())
	require.NoError(t, err)
	second, err := client.GetCoinList(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first, 1)
	assert.Equal(t, "bitcoin", first[0].Id)
}

func TestGetCoinGeckoIdFromSymbol_SingleMatch(t *testing.T) {
	client, coins, _ := newTestClient(t)

	coins.EXPECT().List(gomock.Any()).Return([]coingecko.CoinListItem{
		{Id: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
		{Id: "ethereum", Symbol: "eth", Name: "Ethereum"},
	}, nil)

	id, err := client.GetCoinGeckoIdFromSymbol(context.Background(), "BTC")
	require.NoError(t, err)
	assert.Equal(t, "bitcoin", id)
}

func TestGetCoinGeckoIdFromSymbol_NoMatch(t *testing.T) {
	client, coins, _ := newTestClient(t)

	coins.EXPECT().List(gomock.Any()).Return([]coingecko.CoinListItem{
		{Id: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
	}, nil)

	id, err := client.GetCoinGeckoIdFromSymbol(context.Background(), "xyz")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestGetCoinGeckoIdFromSymbol_AmbiguousResolvedByRank(t *testing.T) {
	client, coins, _ := newTestClient(t)

	coins.EXPECT().List(gomock.Any()).Return([]coingecko.CoinListItem{
		{Id: "uniswap", Symbol: "uni", Name: "Uniswap"},
		{Id: "uni-token", Symbol: "uni", Name: "UNI Token"},
	}, nil)

	// one page of ranked markets, second page empty ends the pagination
	coins.EXPECT().Markets(gomock.Any(), "usd", 1, 250).Return([]coingecko.Market{
		{Id: "uni-token", Symbol: "uni", MarketCapRank: 900},
		{Id: "uniswap", Symbol: "uni", MarketCapRank: 20},
	}, nil)
	coins.EXPECT().Markets(gomock.Any(), "usd", 2, 250).Return(nil, nil)

	id, err := client.GetCoinGeckoIdFromSymbol(context.Background(), "uni")
	require.NoError(t, err)
	assert.Equal(t, "uniswap", id)
}

func TestGetCoinGeckoIdFromSymbol_AmbiguousWithoutRankIsEmpty(t *testing.T) {
	client, coins, _ := newTestClient(t)

	coins.EXPECT().List(gomock.Any()).Return([]coingecko.CoinListItem{
		{Id: "uniswap", Symbol: "uni", Name: "Uniswap"},
		{Id: "uni-token", Symbol: "uni", Name: "UNI Token"},
	}, nil)

	coins.EXPECT().Markets(gomock.Any(), "usd", 1, 250).Return([]coingecko.Market{
		{Id: "bitcoin", Symbol: "btc", MarketCapRank: 1},
	}, nil)
	coins.EXPECT().Markets(gomock.Any(), "usd", 2, 250).Return(nil, nil)

	id, err := client.GetCoinGeckoIdFromSymbol(context.Background(), "uni")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestGetCoinGeckoIdFromSymbol_ResultIsCached(t *testing.T) {
	client, coins, _ := newTestClient(t)

	coins.EXPECT().List(gomock.Any()).Return([]coingecko.CoinListItem{
		{Id: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
	}, nil).Times(1)

	for i := 0; i < 3; i++ {
		id, err := client.GetCoinGeckoIdFromSymbol(context.Background(), "btc")
		require.NoError(t, err)
		assert.Equal(t, "bitcoin", id)
	}
}
