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

// BinanceClient queries the reference exchange over its public REST API.
// API keys are optional; all endpoints used here are unauthenticated.
type BinanceClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

func NewBinanceClient(httpClient *http.Client, baseURL, apiKey string) *BinanceClient {
	return &BinanceClient{
		http:    httpClient,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type exchangeInfoResponse struct {
	Symbols []domain.Instrument `json:"symbols"`
}

func (c *BinanceClient) ExchangeInfo(ctx context.Context) ([]domain.Instrument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v3/exchangeInfo", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange info request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-MBX-APIKEY", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute exchange info request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d from exchange info: %s", resp.StatusCode, resp.Status)
	}

	var body exchangeInfoResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode exchange info response: %w", err)
	}
	return body.Symbols, nil
}

type tickerPriceResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

func (c *BinanceClient) TickerPrice(ctx context.Context, symbol string) (float64, error) {
	u := c.baseURL + "/api/v3/ticker/price?symbol=" + url.QueryEscape(symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create ticker request for %q: %w", symbol, err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-MBX-APIKEY", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute ticker request for %q: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("unexpected status %d for ticker %q: %s", resp.StatusCode, symbol, resp.Status)
	}

	var body tickerPriceResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode ticker response for %q: %w", symbol, err)
	}

	// The exchange returns the price as a stringified number.
	price, err := strconv.ParseFloat(body.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse ticker price %q for %q: %w", body.Price, symbol, err)
	}
	return price, nil
}
