package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
)

// TruckRepo represents truck repository.
type TruckRepo struct{ db *pgxpool.Pool }

// NewTruckRepo creates a new TruckRepo.
func NewTruckRepo(db *pgxpool.Pool) *TruckRepo { return &TruckRepo{db: db} }

const truckColumns = `id, owner_id, truck_no, truck_type, capacity_tonnes, fuel_type, status`

func scanTruck(row interface{ Scan(...any) error }, t *domain.Truck) error {
	return row.Scan(&t.ID, &t.OwnerID, &t.TruckNo, &t.TruckType,
		&t.CapacityTonnes, &t.FuelType, &t.Status)
}

// Get returns a truck by id, scoped to its owner.
func (r *TruckRepo) Get(ctx context.Context, id, ownerID int64) (*domain.Truck, error) {
	var t domain.Truck
	err := scanTruck(r.db.QueryRow(ctx,
		`SELECT `+truckColumns+` FROM trucks WHERE id=$1 AND owner_id=$2`, id, ownerID), &t)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get truck %d: %w", id, err)
	}
	return &t, nil
}

// List returns the owner's trucks, newest first.
func (r *TruckRepo) List(ctx context.Context, ownerID int64) ([]domain.Truck, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+truckColumns+` FROM trucks WHERE owner_id=$1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list trucks: %w", err)
	}
	defer rows.Close()

	var out []domain.Truck
	for rows.Next() {
		var t domain.Truck
		if err := scanTruck(rows, &t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Create inserts a new truck. A duplicate registration number maps to
// apperr.ErrConflict and leaves the existing row untouched.
func (r *TruckRepo) Create(ctx context.Context, t *domain.Truck) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO trucks(owner_id, truck_no, truck_type, capacity_tonnes, fuel_type, status)
        VALUES($1,$2,$3,$4,$5,$6)
        RETURNING id
    `, t.OwnerID, t.TruckNo, t.TruckType, t.CapacityTonnes, t.FuelType, t.Status).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create truck: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update and returns true if a row was affected.
func (r *TruckRepo) UpdatePartial(ctx context.Context, ownerID int64, u domain.PartialTruckUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE trucks
        SET
            truck_no        = COALESCE($3, truck_no),
            truck_type      = COALESCE($4, truck_type),
            capacity_tonnes = COALESCE($5, capacity_tonnes),
            fuel_type       = COALESCE($6, fuel_type),
            status          = COALESCE($7, status),
            updated_at      = now()
        WHERE id = $1 AND owner_id = $2
    `, u.ID, ownerID, u.TruckNo, u.TruckType, u.CapacityTonnes, u.FuelType, u.Status)
	if err != nil {
		if IsDuplicate(err) {
			return false, apperr.ErrConflict
		}
		return false, fmt.Errorf("update truck %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes a truck and returns true if a row was affected.
// The active-trip delete guard lives in the fleet service.
func (r *TruckRepo) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	ct, err := r.db.Exec(ctx,
		`DELETE FROM trucks WHERE id=$1 AND owner_id=$2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete truck %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
