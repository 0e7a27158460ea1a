package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoinGeckoClient_CoinsMarkets_Success(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[
            {"id": "bitcoin", "symbol": "btc", "name": "Bitcoin"},
            {"id": "ethereum", "symbol": "eth", "name": "Ethereum"}
        ]`))
	}))
	t.Cleanup(srv.Close)

	c := NewCoinGeckoClient(srv.Client(), srv.URL)

	records, err := c.CoinsMarkets(context.Background(), 3, 250)
	require.NoError(t, err)
	require.Equal(t, "/coins/markets", gotPath)
	require.Equal(t, "usd", gotQuery.Get("vs_currency"))
	require.Equal(t, "market_cap_desc", gotQuery.Get("order"))
	require.Equal(t, "250", gotQuery.Get("per_page"))
	require.Equal(t, "3", gotQuery.Get("page"))
	require.Len(t, records, 2)
	require.Equal(t, "bitcoin", records[0].ID)
	require.Equal(t, "eth", records[1].Symbol)
}

func TestCoinGeckoClient_CoinsMarkets_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	c := NewCoinGeckoClient(srv.Client(), srv.URL)

	_, err := c.CoinsMarkets(context.Background(), 2, 250)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status 429")
	require.Contains(t, err.Error(), "page 2")
}

func TestCoinGeckoClient_CoinsMarkets_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("[")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	c := NewCoinGeckoClient(srv.Client(), srv.URL)

	_, err := c.CoinsMarkets(context.Background(), 1, 250)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode markets page 1")
}

func TestCoinGeckoClient_SimplePrice_Success(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"bitcoin": {"usd": 66950.0}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewCoinGeckoClient(srv.Client(), srv.URL)

	price, err := c.SimplePrice(context.Background(), "bitcoin")
	require.NoError(t, err)
	require.Equal(t, "bitcoin", gotQuery.Get("ids"))
	require.Equal(t, "usd", gotQuery.Get("vs_currencies"))
	require.InDelta(t, 66950.0, price, 1e-9)
}

func TestCoinGeckoClient_SimplePrice_MissingQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`)) // unknown id yields an empty object
	}))
	t.Cleanup(srv.Close)

	c := NewCoinGeckoClient(srv.Client(), srv.URL)

	_, err := c.SimplePrice(context.Background(), "no-such-coin")
	require.Error(t, err)
	require.Contains(t, err.Error(), `no usd price for "no-such-coin"`)
}

func TestCoinGeckoClient_SimplePrice_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewCoinGeckoClient(srv.Client(), srv.URL)

	_, err := c.SimplePrice(context.Background(), "bitcoin")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status 503")
}
