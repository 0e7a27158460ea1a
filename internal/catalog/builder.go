package catalog

import (
	"strings"
	"time"

	"github.com/GuillaumeBer/cryptoTrack/internal/adapters"
	"github.com/GuillaumeBer/cryptoTrack/internal/domain"
)

// SnapshotBuilder joins raw market records with the tradable pair set and
// persists the result through the snapshot store.
type SnapshotBuilder struct {
	store       adapters.SnapshotStore
	quoteSuffix string
}

func NewSnapshotBuilder(store adapters.SnapshotStore, quoteSuffix string) *SnapshotBuilder {
	return &SnapshotBuilder{store: store, quoteSuffix: quoteSuffix}
}

// Build derives one Coin per complete record, preserving input order. Records
// missing id, name or symbol are dropped. A coin is tradable iff its upper
// symbol plus the quote suffix is a member of pairs.
func (b *SnapshotBuilder) Build(records []domain.MarketRecord, pairs domain.PairSet) domain.Snapshot {
	coins := make([]domain.Coin, 0, len(records))
	for _, rec := range records {
		symbol := strings.ToUpper(rec.Symbol)
		if rec.ID == "" || rec.Name == "" || symbol == "" {
			continue
		}
		coins = append(coins, domain.Coin{
			ID:         rec.ID,
			Name:       rec.Name,
			Symbol:     symbol,
			IsTradable: pairs.Contains(symbol + b.quoteSuffix),
		})
	}

	return domain.Snapshot{
		TimestampUTC: time.Now().UTC(),
		Count:        len(coins),
		Coins:        coins,
	}
}

// Persist atomically replaces the previous snapshot. Failures surface as
// domain.ErrSnapshotPersist and leave the previous snapshot readable.
func (b *SnapshotBuilder) Persist(snapshot domain.Snapshot) error {
	return b.store.Write(snapshot)
}
