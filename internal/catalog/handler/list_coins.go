package handler

import (
	"errors"
	"net/http"

	"github.com/GuillaumeBer/cryptoTrack/internal/domain"

	"github.com/sirupsen/logrus"
)

type ListCoinsResponse struct {
	Count int           `json:"count"`
	Coins []domain.Coin `json:"coins"`
}

// ListCoins godoc
// @Summary List catalog entries
// @Description List all cataloged coins, optionally filtered by a case-insensitive prefix on name or symbol
// @Tags Coins
// @Produce json
// @Param search query string false "Prefix to match against name or symbol"
// @Success 200 {object} ListCoinsResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /coins [get]
func (h *Handler) ListCoins(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	coins, err := h.catalog.Coins(r.Context(), search)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSnapshotNotFound):
			writeError(w, http.StatusNotFound, "no snapshot available yet, trigger a refresh first")
		case errors.Is(err, domain.ErrNoMatchingCoins):
			writeError(w, http.StatusNotFound, "no coins match the search")
		case errors.Is(err, domain.ErrSnapshotCorrupt):
			msg := "stored snapshot is corrupted"
			logrus.WithError(err).WithField("handler", "ListCoins").Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		default:
			msg := "ups, couldn't list coins this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListCoins", "search": search}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeJSON(w, http.StatusOK, ListCoinsResponse{Count: len(coins), Coins: coins})
}
