package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GuillaumeBer/cryptoTrack/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Testify mocks ---

type MockExchangeClient struct{ mock.Mock }

func (m *MockExchangeClient) ExchangeInfo(ctx context.Context) ([]domain.Instrument, error) {
	args := m.Called(ctx)
	instruments, _ := args.Get(0).([]domain.Instrument)
	return instruments, args.Error(1)
}

func (m *MockExchangeClient) TickerPrice(ctx context.Context, symbol string) (float64, error) {
	args := m.Called(ctx, symbol)
	price, _ := args.Get(0).(float64)
	return price, args.Error(1)
}

type MockMarketDataClient struct{ mock.Mock }

func (m *MockMarketDataClient) CoinsMarkets(ctx context.Context, page, perPage int) ([]domain.MarketRecord, error) {
	args := m.Called(ctx, page, perPage)
	records, _ := args.Get(0).([]domain.MarketRecord)
	return records, args.Error(1)
}

func (m *MockMarketDataClient) SimplePrice(ctx context.Context, coinID string) (float64, error) {
	args := m.Called(ctx, coinID)
	price, _ := args.Get(0).(float64)
	return price, args.Error(1)
}

type MockSnapshotStore struct{ mock.Mock }

func (m *MockSnapshotStore) Write(snapshot domain.Snapshot) error {
	args := m.Called(snapshot)
	return args.Error(0)
}

func (m *MockSnapshotStore) Read() (domain.Snapshot, error) {
	args := m.Called()
	snapshot, _ := args.Get(0).(domain.Snapshot)
	return snapshot, args.Error(1)
}

type MockCatalogCache struct{ mock.Mock }

func (m *MockCatalogCache) Entries(ctx context.Context) ([]domain.Coin, error) {
	args := m.Called(ctx)
	coins, _ := args.Get(0).([]domain.Coin)
	return coins, args.Error(1)
}

func (m *MockCatalogCache) Invalidate() {
	m.Called()
}

type MockRefreshHistory struct{ mock.Mock }

func (m *MockRefreshHistory) Record(ctx context.Context, record domain.RefreshRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRefreshHistory) Latest(ctx context.Context, limit int) ([]domain.RefreshRecord, error) {
	args := m.Called(ctx, limit)
	records, _ := args.Get(0).([]domain.RefreshRecord)
	return records, args.Error(1)
}

// --- helpers ---

func newTestCoordinator(exchange *MockExchangeClient, market *MockMarketDataClient, store *MockSnapshotStore, cache *MockCatalogCache, history *MockRefreshHistory, topN int) *RefreshCoordinator {
	registry := NewPairRegistry(exchange, "USDC")
	fetcher := NewMarketCatalogFetcher(market, 250, 10)
	builder := NewSnapshotBuilder(store, "USDC")
	return NewRefreshCoordinator(registry, fetcher, builder, cache, history, topN)
}

func waitForRefresh(t *testing.T, c *RefreshCoordinator) domain.RefreshProgress {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if p := c.Progress(); p.Status != domain.RefreshRunning {
			return p
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("refresh did not finish in time")
	return domain.RefreshProgress{}
}

// --- tests ---

func TestRefreshCoordinator_SuccessfulRefresh(t *testing.T) {
	exchange := new(MockExchangeClient)
	market := new(MockMarketDataClient)
	store := new(MockSnapshotStore)
	cache := new(MockCatalogCache)
	history := new(MockRefreshHistory)

	exchange.On("ExchangeInfo", mock.Anything).Return([]domain.Instrument{
		{Symbol: "BTCUSDC", QuoteAsset: "USDC", Status: "TRADING"},
		{Symbol: "ETHUSDC", QuoteAsset: "USDC", Status: "TRADING"},
	}, nil).Once()
	market.On("CoinsMarkets", mock.Anything, 1, 250).Return([]domain.MarketRecord{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
		{ID: "ripple", Symbol: "xrp", Name: "XRP"},
	}, nil).Once()
	store.On("Write", mock.MatchedBy(func(s domain.Snapshot) bool {
		return s.Count == 2 && len(s.Coins) == 2 &&
			s.Coins[0].IsTradable && !s.Coins[1].IsTradable
	})).Return(nil).Once()
	cache.On("Invalidate").Return().Once()
	history.On("Record", mock.Anything, mock.MatchedBy(func(r domain.RefreshRecord) bool {
		return r.Status == domain.RefreshComplete && r.CoinCount == 2 && !r.Degraded
	})).Return(nil).Once()

	c := newTestCoordinator(exchange, market, store, cache, history, 250)
	require.NoError(t, c.TryStart())

	p := waitForRefresh(t, c)
	require.Equal(t, domain.RefreshComplete, p.Status)
	require.Equal(t, "done", p.Stage)
	require.False(t, p.Degraded)
	require.Empty(t, p.ErrorMessage)

	exchange.AssertExpectations(t)
	market.AssertExpectations(t)
	store.AssertExpectations(t)
	cache.AssertExpectations(t)
	history.AssertExpectations(t)
}

func TestRefreshCoordinator_ConflictWhileRunning(t *testing.T) {
	exchange := new(MockExchangeClient)
	market := new(MockMarketDataClient)
	store := new(MockSnapshotStore)
	cache := new(MockCatalogCache)
	history := new(MockRefreshHistory)

	release := make(chan struct{})
	exchange.On("ExchangeInfo", mock.Anything).Run(func(mock.Arguments) {
		<-release
	}).Return(nil, errors.New("unreachable")).Once()
	market.On("CoinsMarkets", mock.Anything, 1, 250).Return([]domain.MarketRecord{}, nil).Once()
	history.On("Record", mock.Anything, mock.Anything).Return(nil).Once()

	c := newTestCoordinator(exchange, market, store, cache, history, 250)
	require.NoError(t, c.TryStart())

	// The first refresh is parked inside the pair fetch; a second attempt
	// must be rejected and must not disturb the running one.
	err := c.TryStart()
	require.ErrorIs(t, err, domain.ErrRefreshInProgress)
	require.Equal(t, domain.RefreshRunning, c.Progress().Status)

	close(release)
	p := waitForRefresh(t, c)
	require.Equal(t, domain.RefreshComplete, p.Status)
	require.True(t, p.Degraded, "pair fetch failure degrades, it does not fail the refresh")
}

func TestRefreshCoordinator_NoRecords_CompletesWithNoDataStage(t *testing.T) {
	exchange := new(MockExchangeClient)
	market := new(MockMarketDataClient)
	store := new(MockSnapshotStore)
	cache := new(MockCatalogCache)
	history := new(MockRefreshHistory)

	exchange.On("ExchangeInfo", mock.Anything).Return([]domain.Instrument{}, nil).Once()
	market.On("CoinsMarkets", mock.Anything, 1, 250).Return([]domain.MarketRecord{}, nil).Once()
	history.On("Record", mock.Anything, mock.MatchedBy(func(r domain.RefreshRecord) bool {
		return r.Status == domain.RefreshComplete && r.CoinCount == 0
	})).Return(nil).Once()

	c := newTestCoordinator(exchange, market, store, cache, history, 250)
	require.NoError(t, c.TryStart())

	p := waitForRefresh(t, c)
	require.Equal(t, domain.RefreshComplete, p.Status)
	require.Equal(t, "no data fetched", p.Stage)

	store.AssertNotCalled(t, "Write", mock.Anything)
	cache.AssertNotCalled(t, "Invalidate")
}

func TestRefreshCoordinator_FetchError_TransitionsToError(t *testing.T) {
	exchange := new(MockExchangeClient)
	market := new(MockMarketDataClient)
	store := new(MockSnapshotStore)
	cache := new(MockCatalogCache)
	history := new(MockRefreshHistory)

	exchange.On("ExchangeInfo", mock.Anything).Return([]domain.Instrument{}, nil).Once()
	market.On("CoinsMarkets", mock.Anything, 1, 250).Return(nil, errors.New("upstream 502")).Once()
	history.On("Record", mock.Anything, mock.MatchedBy(func(r domain.RefreshRecord) bool {
		return r.Status == domain.RefreshError
	})).Return(nil).Once()

	c := newTestCoordinator(exchange, market, store, cache, history, 250)
	require.NoError(t, c.TryStart())

	p := waitForRefresh(t, c)
	require.Equal(t, domain.RefreshError, p.Status)
	require.Contains(t, p.ErrorMessage, "upstream 502")

	store.AssertNotCalled(t, "Write", mock.Anything)
	cache.AssertNotCalled(t, "Invalidate")
}

func TestRefreshCoordinator_PersistError_TransitionsToError(t *testing.T) {
	exchange := new(MockExchangeClient)
	market := new(MockMarketDataClient)
	store := new(MockSnapshotStore)
	cache := new(MockCatalogCache)
	history := new(MockRefreshHistory)

	exchange.On("ExchangeInfo", mock.Anything).Return([]domain.Instrument{}, nil).Once()
	market.On("CoinsMarkets", mock.Anything, 1, 250).Return([]domain.MarketRecord{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
	}, nil).Once()
	store.On("Write", mock.Anything).Return(domain.ErrSnapshotPersist).Once()
	history.On("Record", mock.Anything, mock.Anything).Return(nil).Once()

	c := newTestCoordinator(exchange, market, store, cache, history, 250)
	require.NoError(t, c.TryStart())

	p := waitForRefresh(t, c)
	require.Equal(t, domain.RefreshError, p.Status)
	require.Contains(t, p.ErrorMessage, "snapshot persist failed")

	cache.AssertNotCalled(t, "Invalidate")
}

func TestRefreshCoordinator_HistoryFailure_DoesNotAffectOutcome(t *testing.T) {
	exchange := new(MockExchangeClient)
	market := new(MockMarketDataClient)
	store := new(MockSnapshotStore)
	cache := new(MockCatalogCache)
	history := new(MockRefreshHistory)

	exchange.On("ExchangeInfo", mock.Anything).Return([]domain.Instrument{}, nil).Once()
	market.On("CoinsMarkets", mock.Anything, 1, 250).Return([]domain.MarketRecord{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
	}, nil).Once()
	store.On("Write", mock.Anything).Return(nil).Once()
	cache.On("Invalidate").Return().Once()
	history.On("Record", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	c := newTestCoordinator(exchange, market, store, cache, history, 250)
	require.NoError(t, c.TryStart())

	p := waitForRefresh(t, c)
	require.Equal(t, domain.RefreshComplete, p.Status)
	history.AssertExpectations(t)
}
