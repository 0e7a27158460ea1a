package adapters

import (
	"context"

	"github.com/GuillaumeBer/cryptoTrack/internal/domain"
)

// ExchangeClient talks to the reference exchange.
type ExchangeClient interface {
	ExchangeInfo(ctx context.Context) ([]domain.Instrument, error)
	TickerPrice(ctx context.Context, symbol string) (float64, error)
}

// MarketDataClient talks to the market-data source.
type MarketDataClient interface {
	CoinsMarkets(ctx context.Context, page, perPage int) ([]domain.MarketRecord, error)
	SimplePrice(ctx context.Context, coinID string) (float64, error)
}

// LendingClient talks to the loan-position provider.
type LendingClient interface {
	Positions(ctx context.Context, wallet string) ([]domain.LendPosition, error)
}

// SnapshotStore persists and reloads the catalog snapshot.
type SnapshotStore interface {
	Write(snapshot domain.Snapshot) error
	Read() (domain.Snapshot, error)
}

// CatalogCache memoizes the last-loaded snapshot entries.
type CatalogCache interface {
	Entries(ctx context.Context) ([]domain.Coin, error)
	Invalidate()
}

// RefreshHistoryRepository keeps the audit log of finished refresh runs.
type RefreshHistoryRepository interface {
	Record(ctx context.Context, record domain.RefreshRecord) error
	Latest(ctx context.Context, limit int) ([]domain.RefreshRecord, error)
}
