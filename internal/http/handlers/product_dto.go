package handlers

import "truckhub/internal/domain"

type productDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	Description   string  `json:"description,omitempty"`
	IsActive      bool    `json:"is_active"`
}

type createProductRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	Description   string  `json:"description"`
}

type updateProductRequest struct {
	Name          *string  `json:"name,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	StockQuantity *int     `json:"stock_quantity,omitempty"`
	Description   *string  `json:"description,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

func (r createProductRequest) toModel() *domain.Product {
	return &domain.Product{
		Name:          r.Name,
		Category:      r.Category,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		Description:   r.Description,
	}
}

func (r updateProductRequest) toModel(id int64) domain.PartialProductUpdate {
	return domain.PartialProductUpdate{
		ID:            id,
		Name:          r.Name,
		Category:      r.Category,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		Description:   r.Description,
		IsActive:      r.IsActive,
	}
}

func productToResponse(p domain.Product) productDTO {
	return productDTO{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Description:   p.Description,
		IsActive:      p.IsActive,
	}
}

func productsToResponse(list []domain.Product) []productDTO {
	out := make([]productDTO, 0, len(list))
	for _, p := range list {
		out = append(out, productToResponse(p))
	}
	return out
}
