package handlers

import (
	"errors"
	"net/http"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
	"truckhub/internal/logx"
)

// TripHandler serves HTTP endpoints for trip assignment and lifecycle.
type TripHandler struct {
	usecase tripUsecase
	logger  logx.Logger
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(logger logx.Logger, uc tripUsecase) *TripHandler {
	return &TripHandler{usecase: uc, logger: logger}
}

// List handles GET /api/truck-owners/trips.
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}

	list, err := h.usecase.List(r.Context(), ownerID)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeData(h.logger, w, r, http.StatusOK, tripsToResponse(list))
}

// Assign handles POST /api/truck-owners/trips.
func (h *TripHandler) Assign(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}
	var req assignTripRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	trip, err := h.usecase.Assign(r.Context(), ownerID, req.toInput())
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusCreated, tripToResponse(*trip))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order, driver or truck not found")
	default:
		if msg, ok := transitionMessage(err); ok {
			writeError(h.logger, w, r, http.StatusConflict, msg)
			return
		}
		if errors.Is(err, apperr.ErrConflict) {
			writeError(h.logger, w, r, http.StatusConflict, "driver or truck not available")
			return
		}
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// UpdateStatus handles PUT /api/truck-owners/trips/{id}/status.
func (h *TripHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateTripStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	trip, err := h.usecase.Transition(r.Context(), ownerID, id, domain.TripStatus(req.Status))
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, tripToResponse(*trip))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "trip not found")
	default:
		if msg, ok := transitionMessage(err); ok {
			writeError(h.logger, w, r, http.StatusConflict, msg)
			return
		}
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
