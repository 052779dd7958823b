package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
)

// ProductRepo represents manufacturer product repository.
type ProductRepo struct{ db *pgxpool.Pool }

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(db *pgxpool.Pool) *ProductRepo { return &ProductRepo{db: db} }

const productColumns = `id, manufacturer_id, name, category, price,
		stock_quantity, description, is_active, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }, p *domain.Product) error {
	return row.Scan(&p.ID, &p.ManufacturerID, &p.Name, &p.Category, &p.Price,
		&p.StockQuantity, &p.Description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
}

// Get returns a product by id, scoped to its manufacturer.
func (r *ProductRepo) Get(ctx context.Context, id, manufacturerID int64) (*domain.Product, error) {
	var p domain.Product
	err := scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id=$1 AND manufacturer_id=$2`,
		id, manufacturerID), &p)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &p, nil
}

// List returns the manufacturer's products, newest first.
func (r *ProductRepo) List(ctx context.Context, manufacturerID int64) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE manufacturer_id=$1 ORDER BY created_at DESC`,
		manufacturerID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// Search filters the manufacturer's products by name/category substring and
// price bounds.
func (r *ProductRepo) Search(ctx context.Context, manufacturerID int64, f domain.ProductFilter) ([]domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products WHERE manufacturer_id=$1`
	args := []any{manufacturerID}

	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		q += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, "%"+f.Category+"%")
		q += fmt.Sprintf(" AND category ILIKE $%d", len(args))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		q += fmt.Sprintf(" AND price >= $%d", len(args))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		q += fmt.Sprintf(" AND price <= $%d", len(args))
	}
	q += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

func collectProducts(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]domain.Product, error) {
	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Create inserts a new product.
func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO products (manufacturer_id, name, category, price,
                              stock_quantity, description, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id
    `, p.ManufacturerID, p.Name, p.Category, p.Price, p.StockQuantity,
		p.Description, p.IsActive).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create product: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update and returns true if a row was affected.
func (r *ProductRepo) UpdatePartial(ctx context.Context, manufacturerID int64, u domain.PartialProductUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE products
        SET
            name           = COALESCE($3, name),
            category       = COALESCE($4, category),
            price          = COALESCE($5, price),
            stock_quantity = COALESCE($6, stock_quantity),
            description    = COALESCE($7, description),
            is_active      = COALESCE($8, is_active),
            updated_at     = now()
        WHERE id = $1 AND manufacturer_id = $2
    `, u.ID, manufacturerID, u.Name, u.Category, u.Price, u.StockQuantity,
		u.Description, u.IsActive)
	if err != nil {
		return false, fmt.Errorf("update product %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes a product and returns true if a row was affected.
func (r *ProductRepo) Delete(ctx context.Context, id, manufacturerID int64) (bool, error) {
	ct, err := r.db.Exec(ctx,
		`DELETE FROM products WHERE id=$1 AND manufacturer_id=$2`, id, manufacturerID)
	if err != nil {
		return false, fmt.Errorf("delete product %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
