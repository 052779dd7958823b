package fleet_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
	"truckhub/internal/service/fleet"
)

type stubTrucks struct {
	getFn    func(ctx context.Context, id, ownerID int64) (*domain.Truck, error)
	listFn   func(ctx context.Context, ownerID int64) ([]domain.Truck, error)
	createFn func(ctx context.Context, t *domain.Truck) (int64, error)
	updateFn func(ctx context.Context, ownerID int64, u domain.PartialTruckUpdate) (bool, error)
	deleteFn func(ctx context.Context, id, ownerID int64) (bool, error)
}

func (s *stubTrucks) Get(ctx context.Context, id, ownerID int64) (*domain.Truck, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id, ownerID)
}

func (s *stubTrucks) List(ctx context.Context, ownerID int64) ([]domain.Truck, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, ownerID)
}

func (s *stubTrucks) Create(ctx context.Context, t *domain.Truck) (int64, error) {
	if s.createFn == nil {
		return 0, nil
	}
	return s.createFn(ctx, t)
}

func (s *stubTrucks) UpdatePartial(ctx context.Context, ownerID int64, u domain.PartialTruckUpdate) (bool, error) {
	if s.updateFn == nil {
		return false, nil
	}
	return s.updateFn(ctx, ownerID, u)
}

func (s *stubTrucks) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id, ownerID)
}

type stubDrivers struct {
	getFn    func(ctx context.Context, id, ownerID int64) (*domain.Driver, error)
	listFn   func(ctx context.Context, ownerID int64) ([]domain.Driver, error)
	createFn func(ctx context.Context, d *domain.Driver) (int64, error)
	updateFn func(ctx context.Context, ownerID int64, u domain.PartialDriverUpdate) (bool, error)
	deleteFn func(ctx context.Context, id, ownerID int64) (bool, error)
}

func (s *stubDrivers) Get(ctx context.Context, id, ownerID int64) (*domain.Driver, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id, ownerID)
}

func (s *stubDrivers) List(ctx context.Context, ownerID int64) ([]domain.Driver, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, ownerID)
}

func (s *stubDrivers) Create(ctx context.Context, d *domain.Driver) (int64, error) {
	if s.createFn == nil {
		return 0, nil
	}
	return s.createFn(ctx, d)
}

func (s *stubDrivers) UpdatePartial(ctx context.Context, ownerID int64, u domain.PartialDriverUpdate) (bool, error) {
	if s.updateFn == nil {
		return false, nil
	}
	return s.updateFn(ctx, ownerID, u)
}

func (s *stubDrivers) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id, ownerID)
}

type stubTripCounter struct {
	forDriver int64
	forTruck  int64
	err       error
}

func (s *stubTripCounter) ActiveTripsForDriver(context.Context, int64) (int64, error) {
	return s.forDriver, s.err
}

func (s *stubTripCounter) ActiveTripsForTruck(context.Context, int64) (int64, error) {
	return s.forTruck, s.err
}

func newFleet(trucks *stubTrucks, drivers *stubDrivers, counter *stubTripCounter) *fleet.Service {
	if trucks == nil {
		trucks = &stubTrucks{}
	}
	if drivers == nil {
		drivers = &stubDrivers{}
	}
	if counter == nil {
		counter = &stubTripCounter{}
	}
	return fleet.NewService(trucks, drivers, counter, 3*time.Second)
}

func TestCreateTruck(t *testing.T) {
	t.Parallel()

	var created *domain.Truck
	trucks := &stubTrucks{
		createFn: func(_ context.Context, tr *domain.Truck) (int64, error) {
			created = tr
			return 10, nil
		},
	}
	svc := newFleet(trucks, nil, nil)

	id, err := svc.CreateTruck(context.Background(), 42, &domain.Truck{TruckNo: "MH12AB1234", CapacityTonnes: 9})
	require.NoError(t, err)
	require.Equal(t, int64(10), id)
	require.Equal(t, int64(42), created.OwnerID)
	require.Equal(t, domain.TruckActive, created.Status)
}

func TestCreateTruck_Invalid(t *testing.T) {
	t.Parallel()

	svc := newFleet(nil, nil, nil)

	_, err := svc.CreateTruck(context.Background(), 42, &domain.Truck{TruckNo: "  "})
	require.ErrorIs(t, err, apperr.ErrInvalid)

	_, err = svc.CreateTruck(context.Background(), 42, &domain.Truck{TruckNo: "MH12AB1234", CapacityTonnes: -1})
	require.ErrorIs(t, err, apperr.ErrInvalid)

	_, err = svc.CreateTruck(context.Background(), 42, &domain.Truck{TruckNo: "MH12AB1234", Status: "BROKEN"})
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestUpdateTruck(t *testing.T) {
	t.Parallel()

	no := "KA01CD5678"
	trucks := &stubTrucks{
		updateFn: func(_ context.Context, ownerID int64, u domain.PartialTruckUpdate) (bool, error) {
			require.Equal(t, int64(42), ownerID)
			require.Equal(t, int64(5), u.ID)
			return true, nil
		},
	}
	svc := newFleet(trucks, nil, nil)

	err := svc.UpdateTruck(context.Background(), 42, domain.PartialTruckUpdate{ID: 5, TruckNo: &no})
	require.NoError(t, err)
}

func TestUpdateTruck_NoFields(t *testing.T) {
	t.Parallel()

	svc := newFleet(nil, nil, nil)
	err := svc.UpdateTruck(context.Background(), 42, domain.PartialTruckUpdate{ID: 5})
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestUpdateTruck_NotFound(t *testing.T) {
	t.Parallel()

	no := "KA01CD5678"
	trucks := &stubTrucks{
		updateFn: func(context.Context, int64, domain.PartialTruckUpdate) (bool, error) {
			return false, nil
		},
	}
	svc := newFleet(trucks, nil, nil)

	err := svc.UpdateTruck(context.Background(), 42, domain.PartialTruckUpdate{ID: 5, TruckNo: &no})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteTruck(t *testing.T) {
	t.Parallel()

	trucks := &stubTrucks{
		getFn: func(_ context.Context, id, _ int64) (*domain.Truck, error) {
			return &domain.Truck{ID: id}, nil
		},
		deleteFn: func(context.Context, int64, int64) (bool, error) { return true, nil },
	}
	svc := newFleet(trucks, nil, nil)

	require.NoError(t, svc.DeleteTruck(context.Background(), 42, 5))
}

func TestDeleteTruck_ActiveTrips(t *testing.T) {
	t.Parallel()

	trucks := &stubTrucks{
		getFn: func(_ context.Context, id, _ int64) (*domain.Truck, error) {
			return &domain.Truck{ID: id}, nil
		},
	}
	svc := newFleet(trucks, nil, &stubTripCounter{forTruck: 2})

	err := svc.DeleteTruck(context.Background(), 42, 5)
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestDeleteTruck_NotFound(t *testing.T) {
	t.Parallel()

	svc := newFleet(nil, nil, nil)
	err := svc.DeleteTruck(context.Background(), 42, 5)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateDriver(t *testing.T) {
	t.Parallel()

	var created *domain.Driver
	drivers := &stubDrivers{
		createFn: func(_ context.Context, d *domain.Driver) (int64, error) {
			created = d
			return 7, nil
		},
	}
	svc := newFleet(nil, drivers, nil)

	id, err := svc.CreateDriver(context.Background(), 42, &domain.Driver{Name: "Ravi", Phone: "+919876543210"})
	require.NoError(t, err)
	require.Equal(t, int64(7), id)
	require.Equal(t, int64(42), created.OwnerID)
	require.Equal(t, domain.DriverAvailable, created.Status)
}

func TestCreateDriver_BadPhone(t *testing.T) {
	t.Parallel()

	svc := newFleet(nil, nil, nil)
	_, err := svc.CreateDriver(context.Background(), 42, &domain.Driver{Name: "Ravi", Phone: "12345"})
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestDeleteDriver_ActiveTrips(t *testing.T) {
	t.Parallel()

	drivers := &stubDrivers{
		getFn: func(_ context.Context, id, _ int64) (*domain.Driver, error) {
			return &domain.Driver{ID: id}, nil
		},
	}
	svc := newFleet(nil, drivers, &stubTripCounter{forDriver: 1})

	err := svc.DeleteDriver(context.Background(), 42, 7)
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestDeleteDriver(t *testing.T) {
	t.Parallel()

	drivers := &stubDrivers{
		getFn: func(_ context.Context, id, _ int64) (*domain.Driver, error) {
			return &domain.Driver{ID: id}, nil
		},
		deleteFn: func(context.Context, int64, int64) (bool, error) { return true, nil },
	}
	svc := newFleet(nil, drivers, nil)

	require.NoError(t, svc.DeleteDriver(context.Background(), 42, 7))
}

func TestListTrucks(t *testing.T) {
	t.Parallel()

	trucks := &stubTrucks{
		listFn: func(_ context.Context, ownerID int64) ([]domain.Truck, error) {
			require.Equal(t, int64(42), ownerID)
			return []domain.Truck{{ID: 1}, {ID: 2}}, nil
		},
	}
	svc := newFleet(trucks, nil, nil)

	got, err := svc.ListTrucks(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, got, 2)
}
