package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GuillaumeBer/cryptoTrack/internal/adapters"
	"github.com/GuillaumeBer/cryptoTrack/internal/adapters/cache"
	"github.com/GuillaumeBer/cryptoTrack/internal/adapters/httpclient"
	"github.com/GuillaumeBer/cryptoTrack/internal/adapters/postgres"
	"github.com/GuillaumeBer/cryptoTrack/internal/adapters/snapshotfile"
	"github.com/GuillaumeBer/cryptoTrack/internal/api"
	"github.com/GuillaumeBer/cryptoTrack/internal/catalog"
	"github.com/GuillaumeBer/cryptoTrack/internal/catalog/handler"
	"github.com/GuillaumeBer/cryptoTrack/internal/config"
	"github.com/GuillaumeBer/cryptoTrack/internal/domain"
	"github.com/GuillaumeBer/cryptoTrack/internal/lending"
	"github.com/GuillaumeBer/cryptoTrack/internal/platform/db"
	httpserver "github.com/GuillaumeBer/cryptoTrack/internal/platform/http"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and the optional
// refresh scheduler.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Refresh history is optional: without a configured DB the pipeline runs
	// identically and history reads come back empty.
	var history adapters.RefreshHistoryRepository = noopRefreshHistory{}
	if appCfg.DbServer.Enabled() {
		if err = db.Migrate(startupCtx, appCfg.DbServer); err != nil {
			logrus.WithError(err).Error("Error applying migrations")
			return err
		}
		pool, poolErr := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
		if poolErr != nil {
			logrus.WithError(poolErr).Error("Error connecting to db")
			return poolErr
		}
		defer pool.Close()
		history = postgres.NewRefreshHistoryRepository(pool)
		logrus.Info("✅ Postgres connection successful")
	} else {
		logrus.Info("No database configured, refresh history disabled")
	}

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External clients
	binanceClient := httpclient.NewBinanceClient(baseHTTPClient, appCfg.Binance.BaseURL, appCfg.Binance.APIKey)
	coingeckoClient := httpclient.NewCoinGeckoClient(baseHTTPClient, appCfg.CoinGecko.BaseURL)
	jupiterClient := httpclient.NewJupiterClient(baseHTTPClient, appCfg.Jupiter.BaseURL)

	// Snapshot storage and cache
	snapshotStore := snapshotfile.NewStore(appCfg.Snapshot.Path)
	snapshotCache, err := cache.NewSnapshotCache(snapshotStore)
	if err != nil {
		logrus.WithError(err).Error("Failed to create snapshot cache")
		return err
	}
	defer snapshotCache.Close()

	// Refresh pipeline
	registry := catalog.NewPairRegistry(binanceClient, appCfg.Refresh.QuoteAsset)
	fetcher := catalog.NewMarketCatalogFetcher(coingeckoClient, appCfg.Refresh.PageSize, appCfg.Refresh.CallsPerMinute)
	builder := catalog.NewSnapshotBuilder(snapshotStore, appCfg.Refresh.QuoteAsset)
	coordinator := catalog.NewRefreshCoordinator(registry, fetcher, builder, snapshotCache, history, appCfg.Refresh.TopN)

	// Optional periodic refresh
	if appCfg.Refresh.AutoIntervalSec > 0 {
		scheduler := catalog.NewScheduler(coordinator, time.Duration(appCfg.Refresh.AutoIntervalSec)*time.Second)
		defer func() {
			if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := scheduler.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start scheduler")
			return startErr
		}
		logrus.Info("✅ Scheduler activation successful")
	}

	// Query-time services
	catalogService := catalog.NewService(snapshotCache)
	resolver := catalog.NewPriceResolver(binanceClient, coingeckoClient, appCfg.Refresh.QuoteAsset)
	lendingService := lending.NewService(jupiterClient)

	// Handlers and router
	catalogHandler := handler.NewCatalogHandler(
		catalogService, coordinator, history, resolver, lendingService,
		appCfg.Refresh.HistoryQueryLimit,
	)
	router := api.NewRouter(catalogHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

type noopRefreshHistory struct{}

func (noopRefreshHistory) Record(context.Context, domain.RefreshRecord) error { return nil }

func (noopRefreshHistory) Latest(context.Context, int) ([]domain.RefreshRecord, error) {
	return []domain.RefreshRecord{}, nil
}
