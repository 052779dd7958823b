package catalog

import (
	"context"

	"truckhub/internal/domain"
)

// productRepository defines storage operations required for catalog management.
type productRepository interface {
	Get(ctx context.Context, id, manufacturerID int64) (*domain.Product, error)
	List(ctx context.Context, manufacturerID int64) ([]domain.Product, error)
	Search(ctx context.Context, manufacturerID int64, f domain.ProductFilter) ([]domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (int64, error)
	UpdatePartial(ctx context.Context, manufacturerID int64, u domain.PartialProductUpdate) (bool, error)
	Delete(ctx context.Context, id, manufacturerID int64) (bool, error)
}

// manufacturerReader resolves manufacturer profiles.
type manufacturerReader interface {
	GetManufacturerByID(ctx context.Context, id int64) (*domain.Manufacturer, error)
}
