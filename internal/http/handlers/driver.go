package handlers

import (
	"errors"
	"net/http"

	"truckhub/internal/apperr"
	"truckhub/internal/logx"
)

// DriverHandler serves HTTP endpoints for the owner's drivers.
type DriverHandler struct {
	usecase fleetUsecase
	logger  logx.Logger
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(logger logx.Logger, uc fleetUsecase) *DriverHandler {
	return &DriverHandler{usecase: uc, logger: logger}
}

// List handles GET /api/truck-owners/drivers.
func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}

	list, err := h.usecase.ListDrivers(r.Context(), ownerID)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeData(h.logger, w, r, http.StatusOK, driversToResponse(list))
}

// Create handles POST /api/truck-owners/drivers.
func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}
	var req createDriverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	d := req.toModel()
	id, err := h.usecase.CreateDriver(r.Context(), ownerID, d)
	switch {
	case err == nil:
		d.ID = id
		writeData(h.logger, w, r, http.StatusCreated, driverToResponse(*d))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "driver already registered")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PUT /api/truck-owners/drivers/{id}.
func (h *DriverHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateDriverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err = h.usecase.UpdateDriver(r.Context(), ownerID, req.toModel(id))
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, idResponse{ID: id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "driver not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "driver already registered")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Delete handles DELETE /api/truck-owners/drivers/{id}.
func (h *DriverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.usecase.DeleteDriver(r.Context(), ownerID, id)
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, idResponse{ID: id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "driver not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "driver has active trips")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
