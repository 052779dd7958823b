package catalog

import (
	"context"
	"strings"
	"time"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
)

// Service coordinates manufacturer product catalog management. Accounts are
// provisioned explicitly at approval time; a write for an unknown
// manufacturer is a not-found error, never a lazy profile create.
type Service struct {
	products         productRepository
	manufacturers    manufacturerReader
	operationTimeout time.Duration
}

// NewService creates a catalog Service.
func NewService(products productRepository, manufacturers manufacturerReader, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{products: products, manufacturers: manufacturers, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) requireManufacturer(ctx context.Context, id int64) error {
	m, err := s.manufacturers.GetManufacturerByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return apperr.ErrNotFound
	}
	return nil
}

func validateCreate(p *domain.Product) error {
	if p == nil || strings.TrimSpace(p.Name) == "" {
		return apperr.ErrInvalid
	}
	if p.Price < 0 || p.StockQuantity < 0 {
		return apperr.ErrInvalid
	}
	if p.Category == "" {
		p.Category = "General"
	}
	return nil
}

func validateUpdate(u *domain.PartialProductUpdate) error {
	if u.ID <= 0 {
		return apperr.ErrInvalid
	}
	if u.Name == nil && u.Category == nil && u.Price == nil &&
		u.StockQuantity == nil && u.Description == nil && u.IsActive == nil {
		return apperr.ErrInvalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.ErrInvalid
	}
	if u.Price != nil && *u.Price < 0 {
		return apperr.ErrInvalid
	}
	if u.StockQuantity != nil && *u.StockQuantity < 0 {
		return apperr.ErrInvalid
	}
	return nil
}

// Get retrieves one owned product.
func (s *Service) Get(ctx context.Context, manufacturerID, productID int64) (*domain.Product, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	p, err := s.products.Get(ctx, productID, manufacturerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

// List returns the manufacturer's products.
func (s *Service) List(ctx context.Context, manufacturerID int64) ([]domain.Product, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.products.List(ctx, manufacturerID)
}

// Search filters the manufacturer's products.
func (s *Service) Search(ctx context.Context, manufacturerID int64, f domain.ProductFilter) ([]domain.Product, error) {
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.products.Search(ctx, manufacturerID, f)
}

// Create persists a new product for a provisioned manufacturer.
func (s *Service) Create(ctx context.Context, manufacturerID int64, p *domain.Product) (int64, error) {
	if err := validateCreate(p); err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.requireManufacturer(ctx, manufacturerID); err != nil {
		return 0, err
	}
	p.ManufacturerID = manufacturerID
	p.IsActive = true
	return s.products.Create(ctx, p)
}

// Update applies a partial update to an owned product.
func (s *Service) Update(ctx context.Context, manufacturerID int64, u domain.PartialProductUpdate) error {
	if err := validateUpdate(&u); err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.products.UpdatePartial(ctx, manufacturerID, u)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// Delete removes an owned product.
func (s *Service) Delete(ctx context.Context, manufacturerID, productID int64) error {
	if productID <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.products.Delete(ctx, productID, manufacturerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}
