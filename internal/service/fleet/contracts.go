package fleet

import (
	"context"

	"truckhub/internal/domain"
)

// truckRepository defines storage operations required for truck management.
type truckRepository interface {
	Get(ctx context.Context, id, ownerID int64) (*domain.Truck, error)
	List(ctx context.Context, ownerID int64) ([]domain.Truck, error)
	Create(ctx context.Context, t *domain.Truck) (int64, error)
	UpdatePartial(ctx context.Context, ownerID int64, u domain.PartialTruckUpdate) (bool, error)
	Delete(ctx context.Context, id, ownerID int64) (bool, error)
}

// driverRepository defines storage operations required for driver management.
type driverRepository interface {
	Get(ctx context.Context, id, ownerID int64) (*domain.Driver, error)
	List(ctx context.Context, ownerID int64) ([]domain.Driver, error)
	Create(ctx context.Context, d *domain.Driver) (int64, error)
	UpdatePartial(ctx context.Context, ownerID int64, u domain.PartialDriverUpdate) (bool, error)
	Delete(ctx context.Context, id, ownerID int64) (bool, error)
}

// activeTripCounter is the shared delete-guard predicate source.
type activeTripCounter interface {
	ActiveTripsForDriver(ctx context.Context, driverID int64) (int64, error)
	ActiveTripsForTruck(ctx context.Context, truckID int64) (int64, error)
}
