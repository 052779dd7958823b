package handlers

import (
	"errors"
	"net/http"

	"truckhub/internal/apperr"
	"truckhub/internal/logx"
)

// AuthHandler serves login and account provisioning endpoints.
type AuthHandler struct {
	usecase accountUsecase
	logger  logx.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(logger logx.Logger, uc accountUsecase) *AuthHandler {
	return &AuthHandler{usecase: uc, logger: logger}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.usecase.Login(r.Context(), req.Phone, req.Password)
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, loginResultToResponse(res))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrUnauthorized):
		writeError(h.logger, w, r, http.StatusUnauthorized, "invalid credentials")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// RegisterTruckOwner handles POST /api/auth/register/truck-owner.
func (h *AuthHandler) RegisterTruckOwner(w http.ResponseWriter, r *http.Request) {
	var req registerOwnerRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	id, err := h.usecase.ProvisionTruckOwner(r.Context(), req.toInput())
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusCreated, idResponse{ID: id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "account already exists")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// RegisterManufacturer handles POST /api/auth/register/manufacturer.
func (h *AuthHandler) RegisterManufacturer(w http.ResponseWriter, r *http.Request) {
	var req registerManufacturerRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	id, err := h.usecase.ProvisionManufacturer(r.Context(), req.toInput())
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusCreated, idResponse{ID: id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "account already exists")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
