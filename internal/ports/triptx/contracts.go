package triptx

import (
	"context"
	"time"

	"truckhub/internal/domain"
)

// Repository is the transaction-scoped storage surface of the assignment and
// trip lifecycle workflow. Lock methods take row locks (SELECT ... FOR UPDATE)
// so concurrent assignments of the same driver or truck serialize; exactly one
// wins.
type Repository interface {
	GetOrderForUpdate(ctx context.Context, orderID string, ownerID int64) (*domain.Order, error)
	LockDriver(ctx context.Context, driverID, ownerID int64) (*domain.Driver, error)
	LockTruck(ctx context.Context, truckID, ownerID int64) (*domain.Truck, error)
	GetTripForUpdate(ctx context.Context, tripID, ownerID int64) (*domain.Trip, error)
	InsertTrip(ctx context.Context, t *domain.Trip) error
	UpdateTripStatus(ctx context.Context, tripID int64, status domain.TripStatus, actualDelivery *time.Time) error
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	UpdateDriverStatus(ctx context.Context, driverID int64, status domain.DriverStatus) error
}

// Runner executes fn inside a single database transaction.
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
