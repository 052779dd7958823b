package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"truckhub/internal/domain"
	"truckhub/internal/ports/triptx"
)

// TripRepo represents trip repository. It also owns the transaction runner
// for the assignment workflow, which spans trips, orders and drivers.
type TripRepo struct {
	db *pgxpool.Pool
}

// NewTripRepo creates a new TripRepo.
func NewTripRepo(db *pgxpool.Pool) *TripRepo {
	return &TripRepo{db: db}
}

// WithTx opens a transaction and executes fn within it. The transaction is
// rolled back on error or panic, committed otherwise.
func (r *TripRepo) WithTx(ctx context.Context, fn func(tx triptx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				panic(rbErr)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

const tripColumns = `id, order_id, driver_id, truck_id, owner_id, from_location,
		to_location, cargo, status, estimated_delivery_date, actual_delivery_date,
		special_instructions, created_at, updated_at`

func scanTrip(row interface{ Scan(...any) error }, t *domain.Trip) error {
	return row.Scan(&t.ID, &t.OrderID, &t.DriverID, &t.TruckID, &t.OwnerID,
		&t.FromLocation, &t.ToLocation, &t.Cargo, &t.Status,
		&t.EstimatedDeliveryDate, &t.ActualDeliveryDate,
		&t.SpecialInstructions, &t.CreatedAt, &t.UpdatedAt)
}

// List returns the owner's trips, newest first.
func (r *TripRepo) List(ctx context.Context, ownerID int64) ([]domain.Trip, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE owner_id=$1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	var out []domain.Trip
	for rows.Next() {
		var t domain.Trip
		if err := scanTrip(rows, &t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// activeTripCount is the shared delete-guard predicate: trips in UPCOMING or
// RUNNING state block deletion of the referenced truck or driver.
func (r *TripRepo) activeTripCount(ctx context.Context, column string, id int64) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM trips WHERE `+column+` = $1 AND status IN ($2, $3)`,
		id, domain.TripUpcoming, domain.TripRunning).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active trips by %s %d: %w", column, id, err)
	}
	return n, nil
}

// ActiveTripsForDriver counts the driver's trips in UPCOMING/RUNNING state.
func (r *TripRepo) ActiveTripsForDriver(ctx context.Context, driverID int64) (int64, error) {
	return r.activeTripCount(ctx, "driver_id", driverID)
}

// ActiveTripsForTruck counts the truck's trips in UPCOMING/RUNNING state.
func (r *TripRepo) ActiveTripsForTruck(ctx context.Context, truckID int64) (int64, error) {
	return r.activeTripCount(ctx, "truck_id", truckID)
}

// HasLiveTrip reports whether the order has a trip in UPCOMING/RUNNING state.
func (r *TripRepo) HasLiveTrip(ctx context.Context, orderID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM trips WHERE order_id = $1 AND status IN ($2, $3))`,
		orderID, domain.TripUpcoming, domain.TripRunning).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check live trip for order %q: %w", orderID, err)
	}
	return exists, nil
}

// TxRepo is the transaction-scoped implementation of triptx.Repository.
type TxRepo struct {
	tx pgx.Tx
}

// GetOrderForUpdate locks the order row, scoped to the assigned truck owner.
func (r *TxRepo) GetOrderForUpdate(ctx context.Context, orderID string, ownerID int64) (*domain.Order, error) {
	row := r.tx.QueryRow(ctx, `
        SELECT id, manufacturer_id, assigned_owner_id, status, delivery_address,
               order_date, created_at, updated_at
        FROM orders
        WHERE id = $1 AND assigned_owner_id = $2
        FOR UPDATE
    `, orderID, ownerID)

	var o domain.Order
	err := row.Scan(&o.ID, &o.ManufacturerID, &o.AssignedOwnerID, &o.Status,
		&o.DeliveryAddress, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock order %q: %w", orderID, err)
	}
	return &o, nil
}

// LockDriver locks the driver row so a concurrent assignment serializes on it.
func (r *TxRepo) LockDriver(ctx context.Context, driverID, ownerID int64) (*domain.Driver, error) {
	row := r.tx.QueryRow(ctx,
		`SELECT `+driverColumns+` FROM drivers WHERE id=$1 AND owner_id=$2 FOR UPDATE`,
		driverID, ownerID)

	var d domain.Driver
	if err := scanDriver(row, &d); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock driver %d: %w", driverID, err)
	}
	return &d, nil
}

// LockTruck locks the truck row so a concurrent assignment serializes on it.
func (r *TxRepo) LockTruck(ctx context.Context, truckID, ownerID int64) (*domain.Truck, error) {
	row := r.tx.QueryRow(ctx,
		`SELECT `+truckColumns+` FROM trucks WHERE id=$1 AND owner_id=$2 FOR UPDATE`,
		truckID, ownerID)

	var t domain.Truck
	if err := scanTruck(row, &t); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock truck %d: %w", truckID, err)
	}
	return &t, nil
}

// GetTripForUpdate locks the trip row, scoped to its owner.
func (r *TxRepo) GetTripForUpdate(ctx context.Context, tripID, ownerID int64) (*domain.Trip, error) {
	row := r.tx.QueryRow(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE id=$1 AND owner_id=$2 FOR UPDATE`,
		tripID, ownerID)

	var t domain.Trip
	if err := scanTrip(row, &t); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock trip %d: %w", tripID, err)
	}
	return &t, nil
}

// InsertTrip inserts a new trip and fills in its generated id.
func (r *TxRepo) InsertTrip(ctx context.Context, t *domain.Trip) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO trips (order_id, driver_id, truck_id, owner_id, from_location,
                           to_location, cargo, status, estimated_delivery_date,
                           special_instructions)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at
    `, t.OrderID, t.DriverID, t.TruckID, t.OwnerID, t.FromLocation, t.ToLocation,
		t.Cargo, t.Status, t.EstimatedDeliveryDate, t.SpecialInstructions).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert trip: %w", err)
	}
	return nil
}

// UpdateTripStatus updates the trip status, stamping the actual delivery time
// when provided.
func (r *TxRepo) UpdateTripStatus(ctx context.Context, tripID int64, status domain.TripStatus, actualDelivery *time.Time) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE trips
        SET status = $2,
            actual_delivery_date = COALESCE($3, actual_delivery_date),
            updated_at = now()
        WHERE id = $1
    `, tripID, string(status), actualDelivery)
	if err != nil {
		return fmt.Errorf("update trip status %d: %w", tripID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("trip %d not found", tripID)
	}
	return nil
}

// UpdateOrderStatus updates the order status.
func (r *TxRepo) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE orders SET status = $2, updated_at = now() WHERE id = $1
    `, orderID, string(status))
	if err != nil {
		return fmt.Errorf("update order status %q: %w", orderID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("order %q not found", orderID)
	}
	return nil
}

// UpdateDriverStatus updates the driver status.
func (r *TxRepo) UpdateDriverStatus(ctx context.Context, driverID int64, status domain.DriverStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE drivers SET status = $2, updated_at = now() WHERE id = $1
    `, driverID, string(status))
	if err != nil {
		return fmt.Errorf("update driver status %d: %w", driverID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("driver %d not found", driverID)
	}
	return nil
}
