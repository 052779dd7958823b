package handlers

import (
	"errors"
	"net/http"

	"truckhub/internal/apperr"
	"truckhub/internal/logx"
)

// ProfileHandler serves the truck owner profile endpoints.
type ProfileHandler struct {
	usecase accountUsecase
	logger  logx.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(logger logx.Logger, uc accountUsecase) *ProfileHandler {
	return &ProfileHandler{usecase: uc, logger: logger}
}

// Get handles GET /api/truck-owners/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}

	o, err := h.usecase.Profile(r.Context(), ownerID)
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, ownerToResponse(o))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "profile not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PUT /api/truck-owners/profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}
	var req updateOwnerRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err := h.usecase.UpdateProfile(r.Context(), req.toModel(ownerID))
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, idResponse{ID: ownerID})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "profile not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "phone or email already in use")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
