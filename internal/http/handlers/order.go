package handlers

import (
	"errors"
	"net/http"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
	"truckhub/internal/logx"

	"github.com/go-chi/chi/v5"
)

// OrderHandler serves HTTP endpoints for orders assigned to a truck owner.
type OrderHandler struct {
	usecase orderUsecase
	logger  logx.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(logger logx.Logger, uc orderUsecase) *OrderHandler {
	return &OrderHandler{usecase: uc, logger: logger}
}

// List handles GET /api/truck-owners/orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}

	list, err := h.usecase.List(r.Context(), ownerID)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeData(h.logger, w, r, http.StatusOK, ordersToResponse(list))
}

// UpdateStatus handles PUT /api/truck-owners/orders/{id}/status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "id")

	var req updateOrderStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	o, err := h.usecase.UpdateStatus(r.Context(), ownerID, orderID, domain.OrderStatus(req.Status))
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, orderToResponse(*o))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order not found")
	default:
		if msg, ok := transitionMessage(err); ok {
			writeError(h.logger, w, r, http.StatusConflict, msg)
			return
		}
		if errors.Is(err, apperr.ErrConflict) {
			writeError(h.logger, w, r, http.StatusConflict, "order changed concurrently")
			return
		}
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
