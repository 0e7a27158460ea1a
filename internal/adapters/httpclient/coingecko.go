package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/GuillaumeBer/cryptoTrack/internal/domain"
)

// CoinGeckoClient queries the market-data source. The catalog listing is
// ranked by descending market capitalization on the source side.
type CoinGeckoClient struct {
	http    *http.Client
	baseURL string
}

func NewCoinGeckoClient(httpClient *http.Client, baseURL string) *CoinGeckoClient {
	return &CoinGeckoClient{http: httpClient, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (c *CoinGeckoClient) CoinsMarkets(ctx context.Context, page, perPage int) ([]domain.MarketRecord, error) {
	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))

	u := c.baseURL + "/coins/markets?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create markets request for page %d: %w", page, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute markets request for page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for markets page %d: %s", resp.StatusCode, page, resp.Status)
	}

	var records []domain.MarketRecord
	if err = json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode markets page %d: %w", page, err)
	}
	return records, nil
}

func (c *CoinGeckoClient) SimplePrice(ctx context.Context, coinID string) (float64, error) {
	q := url.Values{}
	q.Set("ids", coinID)
	q.Set("vs_currencies", "usd")

	u := c.baseURL + "/simple/price?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create price request for %q: %w", coinID, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute price request for %q: %w", coinID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("unexpected status %d for price of %q: %s", resp.StatusCode, coinID, resp.Status)
	}

	// Response shape: {"bitcoin": {"usd": 67000.0}}
	var body map[string]map[string]float64
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode price response for %q: %w", coinID, err)
	}

	price, ok := body[coinID]["usd"]
	if !ok {
		return 0, fmt.Errorf("no usd price for %q in response", coinID)
	}
	return price, nil
}
