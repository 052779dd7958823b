package handlers

import (
	"errors"
	"net/http"

	"truckhub/internal/apperr"
	"truckhub/internal/logx"
)

// TruckHandler serves HTTP endpoints for the owner's trucks.
type TruckHandler struct {
	usecase fleetUsecase
	logger  logx.Logger
}

// NewTruckHandler creates a new TruckHandler.
func NewTruckHandler(logger logx.Logger, uc fleetUsecase) *TruckHandler {
	return &TruckHandler{usecase: uc, logger: logger}
}

// List handles GET /api/truck-owners/trucks.
func (h *TruckHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}

	list, err := h.usecase.ListTrucks(r.Context(), ownerID)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeData(h.logger, w, r, http.StatusOK, trucksToResponse(list))
}

// Create handles POST /api/truck-owners/trucks.
func (h *TruckHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}
	var req createTruckRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	t := req.toModel()
	id, err := h.usecase.CreateTruck(r.Context(), ownerID, t)
	switch {
	case err == nil:
		t.ID = id
		writeData(h.logger, w, r, http.StatusCreated, truckToResponse(*t))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "truck number already registered")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PUT /api/truck-owners/trucks/{id}.
func (h *TruckHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateTruckRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err = h.usecase.UpdateTruck(r.Context(), ownerID, req.toModel(id))
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, idResponse{ID: id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "truck not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "truck number already registered")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Delete handles DELETE /api/truck-owners/trucks/{id}.
func (h *TruckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.usecase.DeleteTruck(r.Context(), ownerID, id)
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, idResponse{ID: id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "truck not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "truck has active trips")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
