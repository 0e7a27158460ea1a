package handler

import (
	"net/http"
	"strings"

	"github.com/GuillaumeBer/cryptoTrack/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type LendPositionsResponse struct {
	Wallet    string                `json:"wallet"`
	Positions []domain.LendPosition `json:"positions"`
}

func (h *Handler) LendPositions(w http.ResponseWriter, r *http.Request) {
	wallet := strings.TrimSpace(chi.URLParam(r, "wallet"))
	if wallet == "" {
		writeError(w, http.StatusBadRequest, "wallet is required")
		return
	}

	positions, err := h.lending.Positions(r.Context(), wallet)
	if err != nil {
		msg := "lending provider unavailable"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "LendPositions", "wallet": wallet}).Error(msg)
		writeError(w, http.StatusBadGateway, msg)
		return
	}

	writeJSON(w, http.StatusOK, LendPositionsResponse{Wallet: wallet, Positions: positions})
}
