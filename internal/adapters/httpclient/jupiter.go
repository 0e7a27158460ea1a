package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/GuillaumeBer/cryptoTrack/internal/domain"
)

// JupiterClient fetches lending positions for a wallet. The provider is a
// black box here: its payload is decoded and passed through untouched.
type JupiterClient struct {
	http    *http.Client
	baseURL string
}

func NewJupiterClient(httpClient *http.Client, baseURL string) *JupiterClient {
	return &JupiterClient{http: httpClient, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (c *JupiterClient) Positions(ctx context.Context, wallet string) ([]domain.LendPosition, error) {
	u := c.baseURL + "/lend/positions/" + url.PathEscape(wallet)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create positions request for %q: %w", wallet, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute positions request for %q: %w", wallet, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for positions of %q: %s", resp.StatusCode, wallet, resp.Status)
	}

	var positions []domain.LendPosition
	if err = json.NewDecoder(resp.Body).Decode(&positions); err != nil {
		return nil, fmt.Errorf("failed to decode positions for %q: %w", wallet, err)
	}
	return positions, nil
}
