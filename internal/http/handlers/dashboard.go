package handlers

import (
	"errors"
	"net/http"

	"truckhub/internal/apperr"
	"truckhub/internal/logx"
)

// DashboardHandler serves the truck owner dashboard endpoint.
type DashboardHandler struct {
	usecase dashboardUsecase
	logger  logx.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(logger logx.Logger, uc dashboardUsecase) *DashboardHandler {
	return &DashboardHandler{usecase: uc, logger: logger}
}

// Get handles GET /api/truck-owners/dashboard/stats.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}

	stats, err := h.usecase.OwnerStats(r.Context(), ownerID)
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, statsToResponse(stats))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "profile not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
