package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/GuillaumeBer/cryptoTrack/internal/adapters"
	"github.com/GuillaumeBer/cryptoTrack/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const defaultPageSize = 250

// PageFunc receives pagination progress while a catalog fetch is running.
type PageFunc func(page, totalPages int)

// MarketCatalogFetcher paginates the market-data source. All page requests
// share one blocking rate limiter, sized for the source's public quota.
type MarketCatalogFetcher struct {
	client   adapters.MarketDataClient
	limiter  *rate.Limiter
	pageSize int
}

func NewMarketCatalogFetcher(client adapters.MarketDataClient, pageSize, callsPerMinute int) *MarketCatalogFetcher {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if callsPerMinute <= 0 {
		callsPerMinute = 10
	}
	// One token every minute/n keeps at most n calls in any rolling minute.
	interval := time.Minute / time.Duration(callsPerMinute)
	return &MarketCatalogFetcher{
		client:   client,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		pageSize: pageSize,
	}
}

// FetchTopN collects up to n records ordered by descending market cap. A page
// returning fewer records than requested signals the end of upstream data. On
// a page error the records accumulated so far are returned alongside it.
func (f *MarketCatalogFetcher) FetchTopN(ctx context.Context, n int, onPage PageFunc) ([]domain.MarketRecord, error) {
	if n <= 0 {
		return nil, nil
	}

	totalPages := (n + f.pageSize - 1) / f.pageSize
	records := make([]domain.MarketRecord, 0, n)

	for page := 1; page <= totalPages; page++ {
		if onPage != nil {
			onPage(page, totalPages)
		}

		// Blocks until a call slot frees up. Rate-limited calls wait, they
		// never fail.
		if err := f.limiter.Wait(ctx); err != nil {
			return records, fmt.Errorf("rate limiter interrupted on page %d: %w", page, err)
		}

		pageRecords, err := f.client.CoinsMarkets(ctx, page, f.pageSize)
		if err != nil {
			return records, fmt.Errorf("failed to fetch market page %d/%d: %w", page, totalPages, err)
		}

		records = append(records, pageRecords...)
		if len(pageRecords) < f.pageSize {
			logrus.Infof("Market source exhausted on page %d/%d, stopping", page, totalPages)
			break
		}
	}

	if len(records) > n {
		records = records[:n]
	}
	return records, nil
}
