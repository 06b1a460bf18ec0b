package coingecko

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trakx/coingecko-go/config"
	"github.com/trakx/coingecko-go/httpclient"
)

// plainDoer issues requests directly without retries or caching
type plainDoer struct {
	client *http.Client
}

func (d *plainDoer) Do(req *http.Request) (*httpclient.Response, error) {
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &httpclient.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *config.Config, httpclient.Doer) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.DefaultConfig()
	cfg.BaseURL = server.URL

	return server, cfg, &plainDoer{client: server.Client()}
}

func TestSimpleClient_Price(t *testing.T) {
	_, cfg, doer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin,ethereum", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd,eur", r.URL.Query().Get("vs_currencies"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bitcoin":{"usd":30000,"eur":27500.5},"ethereum":{"usd":1800,"eur":1650}}`))
	})

	client := NewSimpleClient(cfg, doer)
	prices, err := client.Price(context.Background(), []string{"bitcoin", "ethereum"}, []string{"usd", "eur"})
	require.NoError(t, err)

	require.Len(t, prices, 2)
	assert.True(t, prices["bitcoin"]["usd"].Equal(decimal.NewFromInt(30000)))
	assert.True(t, prices["bitcoin"]["eur"].Equal(decimal.NewFromFloat(27500.5)))
}

func TestSimpleClient_PriceWithExtras(t *testing.T) {
	_, cfg, doer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("include_market_cap"))
		assert.Equal(t, "true", r.URL.Query().Get("include_24hr_vol"))
		assert.Equal(t, "true", r.URL.Query().Get("include_24hr_change"))

		w.Write([]byte(`{"bitcoin":{"usd":30000,"usd_market_cap":584000000000,"usd_24h_vol":12000000000,"usd_24h_change":1.5}}`))
	})

	client := NewSimpleClient(cfg, doer)
	prices, err := client.PriceWithExtras(context.Background(), []string{"bitcoin"}, []string{"usd"})
	require.NoError(t, err)

	assert.True(t, prices["bitcoin"]["usd_market_cap"].Equal(decimal.NewFromInt(584000000000)))
}

func TestSimpleClient_SupportedVsCurrencies(t *testing.T) {
	_, cfg, doer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/supported_vs_currencies", r.URL.Path)
		w.Write([]byte(`["btc","eth","usd","eur","gbp"]`))
	})

	client := NewSimpleClient(cfg, doer)
	currencies, err := client.SupportedVsCurrencies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"btc", "eth", "usd", "eur", "gbp"}, currencies)
}

func TestSimpleClient_Ping(t *testing.T) {
	_, cfg, doer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		w.Write([]byte(`{"gecko_says":"(V3) To the Moon!"}`))
	})

	client := NewSimpleClient(cfg, doer)
	ping, err := client.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "(V3) To the Moon!", ping.GeckoSays)
}

func TestCoinsClient_List(t *testing.T) {
	_, cfg, doer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/list", r.URL.Path)
		w.Write([]byte(`[{"id":"bitcoin","symbol":"btc","name":"Bitcoin"},{"id":"ethereum","symbol":"eth","name":"Ethereum"}]`))
	})

	client := NewCoinsClient(cfg, doer)
	coins, err := client.List(context.Background())
	require.NoError(t, err)

	require.Len(t, coins, 2)
	assert.Equal(t, CoinListItem{Id: "bitcoin", Symbol: "btc", Name: "Bitcoin"}, coins[0])
}

func TestCoinsClient_History(t *testing.T) {
	_, cfg, doer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/bitcoin/history", r.URL.Path)
		assert.Equal(t, "15-03-2023", r.URL.Query().Get("date"))
		assert.Equal(t, "false", r.URL.Query().Get("localization"))

		w.Write([]byte(`{"id":"bitcoin","symbol":"btc","name":"Bitcoin",
			"market_data":{"current_price":{"usd":24500,"eur":22800},
			"market_cap":{"usd":470000000000},"total_volume":{"usd":35000000000}}}`))
	})

	client := NewCoinsClient(cfg, doer)
	date := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)
	history, err := client.History(context.Background(), "bitcoin", date)
	require.NoError(t, err)

	require.NotNil(t, history.MarketData)
	assert.True(t, history.MarketData.CurrentPrice["usd"].Equal(decimal.NewFromInt(24500)))
}

func TestCoinsClient_History_NoSnapshot(t *testing.T) {
	_, cfg, doer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"bitcoin","symbol":"btc","name":"Bitcoin"}`))
	})

	client := NewCoinsClient(cfg, doer)
	history, err := client.History(context.Background(), "bitcoin", time.Now())
	require.NoError(t, err)
	assert.Nil(t, history.MarketData)
}

func TestCoinsClient_MarketChart(t *testing.T) {
	_, cfg, doer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/bitcoin/market_chart", r.URL.Path)
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
		assert.Equal(t, "30", r.URL.Query().Get("days"))
		assert.Equal(t, "daily", r.URL.Query().Get("interval"))

		w.Write([]byte(`{"prices":[[1678838400000,24500]],"market_caps":[[1678838400000,470000000000]],"total_volumes":[[1678838400000,35000000000]]}`))
	})

	client := NewCoinsClient(cfg, doer)
	chart, err := client.MarketChart(context.Background(), "bitcoin", "usd", 30)
	require.NoError(t, err)

	require.Len(t, chart.Prices, 1)
	require.Len(t, chart.Prices[0], 2)
	assert.True(t, chart.Prices[0][1].Equal(decimal.NewFromInt(24500)))
}

func TestCoinsClient_MarketChartRange(t *testing.T) {
	from := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)

	_, cfg, doer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/bitcoin/market_chart/range", r.URL.Path)
		assert.Equal(t, "1677628800", r.URL.Query().Get("from"))
		assert.Equal(t, "1678838400", r.URL.Query().Get("to"))

		w.Write([]byte(`{"prices":[],"market_caps":[],"total_volumes":[]}`))
	})

	client := NewCoinsClient(cfg, doer)
	_, err := client.MarketChartRange(context.Background(), "bitcoin", "usd", from, to)
	require.NoError(t, err)
}

func TestCoinsClient_Markets(t *testing.T) {
	_, cfg, doer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/markets", r.URL.Path)
		assert.Equal(t, "market_cap_desc", r.URL.Query().Get("order"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "250", r.URL.Query().Get("per_page"))

		w.Write([]byte(`[{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":30000,"market_cap_rank":1,"circulating_supply":19500000}]`))
	})

	client := NewCoinsClient(cfg, doer)
	markets, err := client.Markets(context.Background(), "usd", 2, 500)
	require.NoError(t, err)

	require.Len(t, markets, 1)
	assert.Equal(t, "bitcoin", markets[0].Id)
	assert.Equal(t, 1, markets[0].MarketCapRank)
}

func TestClient_NonSuccessBecomesAPIError(t *testing.T) {
	_, cfg, doer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"coin not found"}`))
	})

	client := NewCoinsClient(cfg, doer)
	_, err := client.List(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.True(t, apiErr.IsNotFound())
	assert.Contains(t, apiErr.Error(), "coin not found")
}

func TestClient_DemoKeyReachesServer(t *testing.T) {
	_, cfg, doer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "CG-demokey", r.URL.Query().Get("x_cg_demo_api_key"))
		w.Write([]byte(`{"gecko_says":"ok"}`))
	})
	cfg.APIKey = "CG-demokey"

	client := NewSimpleClient(cfg, doer)
	_, err := client.Ping(context.Background())
	require.NoError(t, err)
}

func TestClient_ConfiguredUserAgentReachesServer(t *testing.T) {
	_, cfg, doer := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trakx-bot/1.0", r.Header.Get("User-Agent"))
		w.Write([]byte(`{"gecko_says":"ok"}`))
	})
	cfg.UserAgent = "trakx-bot/1.0"

	client := NewSimpleClient(cfg, doer)
	_, err := client.Ping(context.Background())
	require.NoError(t, err)
}
