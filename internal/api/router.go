package api

import (
	_ "github.com/GuillaumeBer/cryptoTrack/docs"
	"github.com/GuillaumeBer/cryptoTrack/internal/catalog/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(catalogHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/api/v1/coins", catalogHandler.ListCoins)
	router.Post("/api/v1/coins/refresh", catalogHandler.TriggerRefresh)
	router.Get("/api/v1/coins/refresh/status", catalogHandler.RefreshStatus)
	router.Get("/api/v1/coins/refresh/history", catalogHandler.ListRefreshHistory)
	router.Get("/api/v1/prices/{symbol:[A-Za-z0-9]+}", catalogHandler.ResolvePrice)
	router.Get("/api/v1/lend/positions/{wallet}", catalogHandler.LendPositions)
	return router
}
