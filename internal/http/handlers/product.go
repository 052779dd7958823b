package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
	"truckhub/internal/logx"
)

// ProductHandler serves HTTP endpoints for a manufacturer's product catalog.
type ProductHandler struct {
	usecase catalogUsecase
	logger  logx.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(logger logx.Logger, uc catalogUsecase) *ProductHandler {
	return &ProductHandler{usecase: uc, logger: logger}
}

// List handles GET /api/manufacturer-products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	mID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}

	list, err := h.usecase.List(r.Context(), mID)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeData(h.logger, w, r, http.StatusOK, productsToResponse(list))
}

// Search handles GET /api/manufacturer-products/search.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	mID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	f := domain.ProductFilter{
		Name:     q.Get("name"),
		Category: q.Get("category"),
	}
	if s := q.Get("min_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid min_price")
			return
		}
		f.MinPrice = &v
	}
	if s := q.Get("max_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid max_price")
			return
		}
		f.MaxPrice = &v
	}

	list, err := h.usecase.Search(r.Context(), mID, f)
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, productsToResponse(list))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid price range")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Get handles GET /api/manufacturer-products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	mID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := h.usecase.Get(r.Context(), mID, id)
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, productToResponse(*p))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "product not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Create handles POST /api/manufacturer-products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	mID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}
	var req createProductRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	p := req.toModel()
	id, err := h.usecase.Create(r.Context(), mID, p)
	switch {
	case err == nil:
		p.ID = id
		writeData(h.logger, w, r, http.StatusCreated, productToResponse(*p))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "manufacturer not provisioned")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PUT /api/manufacturer-products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	mID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateProductRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err = h.usecase.Update(r.Context(), mID, req.toModel(id))
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, idResponse{ID: id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "product not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Delete handles DELETE /api/manufacturer-products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	mID, ok := profileID(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.usecase.Delete(r.Context(), mID, id)
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, idResponse{ID: id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "product not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
