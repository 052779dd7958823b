package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
)

// DriverRepo represents driver repository.
type DriverRepo struct{ db *pgxpool.Pool }

// NewDriverRepo creates a new DriverRepo.
func NewDriverRepo(db *pgxpool.Pool) *DriverRepo { return &DriverRepo{db: db} }

const driverColumns = `id, owner_id, name, phone, license_no, status`

func scanDriver(row interface{ Scan(...any) error }, d *domain.Driver) error {
	return row.Scan(&d.ID, &d.OwnerID, &d.Name, &d.Phone, &d.LicenseNo, &d.Status)
}

// Get returns a driver by id, scoped to its owner.
func (r *DriverRepo) Get(ctx context.Context, id, ownerID int64) (*domain.Driver, error) {
	var d domain.Driver
	err := scanDriver(r.db.QueryRow(ctx,
		`SELECT `+driverColumns+` FROM drivers WHERE id=$1 AND owner_id=$2`, id, ownerID), &d)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %d: %w", id, err)
	}
	return &d, nil
}

// List returns the owner's drivers, newest first.
func (r *DriverRepo) List(ctx context.Context, ownerID int64) ([]domain.Driver, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+driverColumns+` FROM drivers WHERE owner_id=$1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	var out []domain.Driver
	for rows.Next() {
		var d domain.Driver
		if err := scanDriver(rows, &d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Create inserts a new driver.
func (r *DriverRepo) Create(ctx context.Context, d *domain.Driver) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO drivers(owner_id, name, phone, license_no, status)
        VALUES($1,$2,$3,$4,$5)
        RETURNING id
    `, d.OwnerID, d.Name, d.Phone, d.LicenseNo, d.Status).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create driver: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update and returns true if a row was affected.
func (r *DriverRepo) UpdatePartial(ctx context.Context, ownerID int64, u domain.PartialDriverUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE drivers
        SET
            name       = COALESCE($3, name),
            phone      = COALESCE($4, phone),
            license_no = COALESCE($5, license_no),
            status     = COALESCE($6, status),
            updated_at = now()
        WHERE id = $1 AND owner_id = $2
    `, u.ID, ownerID, u.Name, u.Phone, u.LicenseNo, u.Status)
	if err != nil {
		if IsDuplicate(err) {
			return false, apperr.ErrConflict
		}
		return false, fmt.Errorf("update driver %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes a driver and returns true if a row was affected.
// The active-trip delete guard lives in the fleet service.
func (r *DriverRepo) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	ct, err := r.db.Exec(ctx,
		`DELETE FROM drivers WHERE id=$1 AND owner_id=$2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete driver %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
