package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/GuillaumeBer/cryptoTrack/internal/adapters"
	"github.com/GuillaumeBer/cryptoTrack/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	stageFetchingPairs = "fetching exchange trading pairs"
	stageProcessing    = "processing and saving data"
	stageDone          = "done"
	stageNoData        = "no data fetched"
)

// RefreshCoordinator owns the refresh lifecycle: at most one refresh at a
// time, staged progress, error capture and cache invalidation.
type RefreshCoordinator struct {
	registry *PairRegistry
	fetcher  *MarketCatalogFetcher
	builder  *SnapshotBuilder
	cache    adapters.CatalogCache
	history  adapters.RefreshHistoryRepository
	tracker  *ProgressTracker
	topN     int
}

func NewRefreshCoordinator(
	registry *PairRegistry,
	fetcher *MarketCatalogFetcher,
	builder *SnapshotBuilder,
	cache adapters.CatalogCache,
	history adapters.RefreshHistoryRepository,
	topN int,
) *RefreshCoordinator {
	return &RefreshCoordinator{
		registry: registry,
		fetcher:  fetcher,
		builder:  builder,
		cache:    cache,
		history:  history,
		tracker:  NewProgressTracker(),
		topN:     topN,
	}
}

// TryStart launches a refresh on a background goroutine. It returns
// domain.ErrRefreshInProgress when one is already running; the running
// refresh is not disturbed. The outcome of the launched refresh is observable
// only through Progress; a refresh runs to completion or failure, there is
// no mid-flight cancellation.
func (c *RefreshCoordinator) TryStart() error {
	if !c.tracker.Begin() {
		return domain.ErrRefreshInProgress
	}

	execID := uuid.New()
	logrus.Infof("Catalog refresh %s started", execID)
	go c.run(context.Background(), execID)
	return nil
}

// Progress returns a copy of the current refresh state.
func (c *RefreshCoordinator) Progress() domain.RefreshProgress {
	return c.tracker.View()
}

func (c *RefreshCoordinator) run(ctx context.Context, execID uuid.UUID) {
	startedAt := time.Now().UTC()
	coinCount := 0

	defer func() {
		c.record(ctx, execID, startedAt, coinCount)
	}()

	c.tracker.SetStage(stageFetchingPairs)
	pairs, degraded := c.registry.FetchTradablePairs(ctx)
	if degraded {
		c.tracker.MarkDegraded()
	}

	records, err := c.fetcher.FetchTopN(ctx, c.topN, func(page, totalPages int) {
		c.tracker.SetStage(fmt.Sprintf("fetching market page %d/%d", page, totalPages))
		c.tracker.SetCounts(page, totalPages)
	})
	if err != nil {
		logrus.WithError(err).Errorf("Catalog refresh %s failed fetching market data", execID)
		c.tracker.Fail(err.Error())
		return
	}

	// Absence of upstream data is not a coordinator fault.
	if len(records) == 0 {
		logrus.Warnf("Catalog refresh %s fetched no records", execID)
		c.tracker.Complete(stageNoData)
		return
	}

	c.tracker.SetStage(stageProcessing)
	c.tracker.SetCounts(0, len(records))

	snapshot := c.builder.Build(records, pairs)
	coinCount = snapshot.Count
	c.tracker.SetCounts(snapshot.Count, len(records))

	if err = c.builder.Persist(snapshot); err != nil {
		logrus.WithError(err).Errorf("Catalog refresh %s failed persisting snapshot", execID)
		c.tracker.Fail(err.Error())
		return
	}

	// New snapshot is on disk: drop the memoized one so reads see fresh data.
	c.cache.Invalidate()

	logrus.Infof("Catalog refresh %s complete: %d coins, degraded=%t", execID, snapshot.Count, degraded)
	c.tracker.Complete(stageDone)
}

func (c *RefreshCoordinator) record(ctx context.Context, execID uuid.UUID, startedAt time.Time, coinCount int) {
	if c.history == nil {
		return
	}
	p := c.tracker.View()
	rec := domain.RefreshRecord{
		ExecID:       execID,
		StartedAt:    startedAt,
		FinishedAt:   time.Now().UTC(),
		Status:       p.Status,
		Stage:        p.Stage,
		CoinCount:    coinCount,
		Degraded:     p.Degraded,
		ErrorMessage: p.ErrorMessage,
	}
	if err := c.history.Record(ctx, rec); err != nil {
		logrus.WithError(err).Warnf("Could not record refresh %s in history", execID)
	}
}
