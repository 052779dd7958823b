package domain

import "time"

// Product is a catalog item owned by a manufacturer account.
type Product struct {
	ID             int64
	ManufacturerID int64
	Name           string
	Category       string
	Price          float64
	StockQuantity  int
	Description    string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PartialProductUpdate carries optional fields to update a product.
// A nil field means “do not change” that attribute.
type PartialProductUpdate struct {
	ID            int64
	Name          *string
	Category      *string
	Price         *float64
	StockQuantity *int
	Description   *string
	IsActive      *bool
}

// ProductFilter narrows a product search. Zero values mean "no constraint".
type ProductFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}
