package handler

import (
	"errors"
	"net/http"

	"github.com/GuillaumeBer/cryptoTrack/internal/domain"

	"github.com/sirupsen/logrus"
)

type TriggerRefreshResponse struct {
	Status string `json:"status"`
}

// TriggerRefresh godoc
// @Summary Trigger a catalog refresh
// @Description Start a background refresh of the catalog snapshot
// @Tags Refresh
// @Produce json
// @Success 202 {object} TriggerRefreshResponse
// @Failure 409 {object} errorResponse "refresh already running"
// @Router /coins/refresh [post]
func (h *Handler) TriggerRefresh(w http.ResponseWriter, _ *http.Request) {
	if err := h.coordinator.TryStart(); err != nil {
		if errors.Is(err, domain.ErrRefreshInProgress) {
			writeError(w, http.StatusConflict, "a refresh is already running")
			return
		}
		msg := "failed to start refresh"
		logrus.WithError(err).WithField("handler", "TriggerRefresh").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusAccepted, TriggerRefreshResponse{Status: "started"})
}
