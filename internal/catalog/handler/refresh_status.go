package handler

import (
	"net/http"
)

// RefreshStatus godoc
// @Summary Get refresh progress
// @Description Current status, stage and counters of the refresh pipeline
// @Tags Refresh
// @Produce json
// @Success 200 {object} domain.RefreshProgress
// @Router /coins/refresh/status [get]
func (h *Handler) RefreshStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.coordinator.Progress())
}
