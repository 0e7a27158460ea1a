package handler

import (
	"net/http"
	"strconv"

	"github.com/GuillaumeBer/cryptoTrack/internal/domain"

	"github.com/sirupsen/logrus"
)

type RefreshHistoryResponse struct {
	Records []domain.RefreshRecord `json:"records"`
}

func (h *Handler) ListRefreshHistory(w http.ResponseWriter, r *http.Request) {
	limit := h.historyLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	records, err := h.history.Latest(r.Context(), limit)
	if err != nil {
		msg := "ups, couldn't read refresh history this time"
		logrus.WithError(err).WithField("handler", "ListRefreshHistory").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, RefreshHistoryResponse{Records: records})
}
