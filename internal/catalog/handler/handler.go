package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GuillaumeBer/cryptoTrack/internal/domain"
)

type CatalogService interface {
	Coins(ctx context.Context, search string) ([]domain.Coin, error)
}

type RefreshCoordinator interface {
	TryStart() error
	Progress() domain.RefreshProgress
}

type RefreshHistory interface {
	Latest(ctx context.Context, limit int) ([]domain.RefreshRecord, error)
}

type PriceResolver interface {
	Resolve(ctx context.Context, symbol, coinID string, isTradable bool) (domain.PriceQuote, error)
}

type LendingService interface {
	Positions(ctx context.Context, wallet string) ([]domain.LendPosition, error)
}

type Handler struct {
	catalog      CatalogService
	coordinator  RefreshCoordinator
	history      RefreshHistory
	resolver     PriceResolver
	lending      LendingService
	historyLimit int
}

func NewCatalogHandler(
	catalog CatalogService,
	coordinator RefreshCoordinator,
	history RefreshHistory,
	resolver PriceResolver,
	lending LendingService,
	historyLimit int,
) *Handler {
	if historyLimit <= 0 {
		historyLimit = 50
	}
	return &Handler{
		catalog:      catalog,
		coordinator:  coordinator,
		history:      history,
		resolver:     resolver,
		lending:      lending,
		historyLimit: historyLimit,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
