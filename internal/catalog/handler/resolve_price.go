package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/GuillaumeBer/cryptoTrack/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// ResolvePrice godoc
// @Summary Resolve a price quote
// @Description Resolve a USD price for a coin, preferring the reference exchange for tradable assets
// @Tags Prices
// @Produce json
// @Param symbol path string true "Ticker symbol, e.g. BTC"
// @Param coin_id query string true "Market-data source coin id, e.g. bitcoin"
// @Param tradable query bool false "Whether the asset is tradable on the reference exchange"
// @Success 200 {object} domain.PriceQuote
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "no source yielded a usable price"
// @Router /prices/{symbol} [get]
func (h *Handler) ResolvePrice(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "symbol")))
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	coinID := strings.TrimSpace(r.URL.Query().Get("coin_id"))
	if coinID == "" {
		writeError(w, http.StatusBadRequest, "coin_id is required")
		return
	}

	isTradable := false
	if raw := r.URL.Query().Get("tradable"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "tradable must be a boolean")
			return
		}
		isTradable = parsed
	}

	quote, err := h.resolver.Resolve(r.Context(), symbol, coinID, isTradable)
	if err != nil {
		if errors.Is(err, domain.ErrPriceNotFound) {
			writeError(w, http.StatusNotFound, "no price available for "+symbol)
			return
		}
		msg := "ups, couldn't resolve a price this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ResolvePrice", "symbol": symbol, "coin_id": coinID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, quote)
}
