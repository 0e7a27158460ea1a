package cache

import (
	"context"
	"fmt"

	"github.com/GuillaumeBer/cryptoTrack/internal/adapters"
	"github.com/GuillaumeBer/cryptoTrack/internal/domain"

	"github.com/dgraph-io/ristretto"
)

const snapshotKey = "catalog:snapshot"

// RistrettoSnapshotCache serves the last-loaded snapshot entries from memory
// and falls back to the snapshot store on a miss. Invalidate forces the next
// read to hit the store again.
type RistrettoSnapshotCache struct {
	cache *ristretto.Cache
	store adapters.SnapshotStore
}

func NewSnapshotCache(store adapters.SnapshotStore) (*RistrettoSnapshotCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 64,
		MaxCost:     8,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create snapshot cache failed: %w", err)
	}
	return &RistrettoSnapshotCache{cache: c, store: store}, nil
}

func (c *RistrettoSnapshotCache) Entries(_ context.Context) ([]domain.Coin, error) {
	if v, ok := c.cache.Get(snapshotKey); ok {
		if coins, ok := v.([]domain.Coin); ok {
			return coins, nil
		}
	}

	snapshot, err := c.store.Read()
	if err != nil {
		return nil, err
	}
	c.cache.Set(snapshotKey, snapshot.Coins, 1)
	return snapshot.Coins, nil
}

func (c *RistrettoSnapshotCache) Invalidate() { c.cache.Del(snapshotKey) }

func (c *RistrettoSnapshotCache) Close() { c.cache.Close() }
