package fleet

import (
	"context"
	"strings"
	"time"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
)

// Service coordinates truck and driver management for a truck owner.
type Service struct {
	trucks           truckRepository
	drivers          driverRepository
	trips            activeTripCounter
	operationTimeout time.Duration
}

// NewService creates and configures a fleet Service.
func NewService(trucks truckRepository, drivers driverRepository, trips activeTripCounter, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{trucks: trucks, drivers: drivers, trips: trips, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// guardNoActiveTrips refuses deletion while the entity has trips in
// UPCOMING/RUNNING state. One predicate serves trucks and drivers.
func guardNoActiveTrips(count int64, err error) error {
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.ErrConflict
	}
	return nil
}

func validateTruckCreate(t *domain.Truck) error {
	if t == nil || strings.TrimSpace(t.TruckNo) == "" {
		return apperr.ErrInvalid
	}
	if t.CapacityTonnes < 0 {
		return apperr.ErrInvalid
	}
	if t.Status == "" {
		t.Status = domain.TruckActive
	}
	if !t.Status.Valid() {
		return apperr.ErrInvalid
	}
	return nil
}

func validateTruckUpdate(u *domain.PartialTruckUpdate) error {
	if u.ID <= 0 {
		return apperr.ErrInvalid
	}
	if u.TruckNo == nil && u.TruckType == nil && u.CapacityTonnes == nil &&
		u.FuelType == nil && u.Status == nil {
		return apperr.ErrInvalid
	}
	if u.TruckNo != nil && strings.TrimSpace(*u.TruckNo) == "" {
		return apperr.ErrInvalid
	}
	if u.Status != nil && !u.Status.Valid() {
		return apperr.ErrInvalid
	}
	return nil
}

func validateDriverCreate(d *domain.Driver) error {
	if d == nil || strings.TrimSpace(d.Name) == "" {
		return apperr.ErrInvalid
	}
	if !domain.ValidatePhone(d.Phone) {
		return apperr.ErrInvalid
	}
	if d.Status == "" {
		d.Status = domain.DriverAvailable
	}
	if !d.Status.Valid() {
		return apperr.ErrInvalid
	}
	return nil
}

func validateDriverUpdate(u *domain.PartialDriverUpdate) error {
	if u.ID <= 0 {
		return apperr.ErrInvalid
	}
	if u.Name == nil && u.Phone == nil && u.LicenseNo == nil && u.Status == nil {
		return apperr.ErrInvalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.ErrInvalid
	}
	if u.Phone != nil && !domain.ValidatePhone(*u.Phone) {
		return apperr.ErrInvalid
	}
	if u.Status != nil && !u.Status.Valid() {
		return apperr.ErrInvalid
	}
	return nil
}

// ListTrucks returns the owner's trucks.
func (s *Service) ListTrucks(ctx context.Context, ownerID int64) ([]domain.Truck, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.trucks.List(ctx, ownerID)
}

// CreateTruck persists a new truck and returns its generated ID.
func (s *Service) CreateTruck(ctx context.Context, ownerID int64, t *domain.Truck) (int64, error) {
	if err := validateTruckCreate(t); err != nil {
		return 0, err
	}
	t.OwnerID = ownerID
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.trucks.Create(ctx, t)
}

// UpdateTruck applies a partial update to an owned truck.
func (s *Service) UpdateTruck(ctx context.Context, ownerID int64, u domain.PartialTruckUpdate) error {
	if err := validateTruckUpdate(&u); err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.trucks.UpdatePartial(ctx, ownerID, u)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// DeleteTruck removes an owned truck unless it has trips in UPCOMING/RUNNING state.
func (s *Service) DeleteTruck(ctx context.Context, ownerID, truckID int64) error {
	if truckID <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	t, err := s.trucks.Get(ctx, truckID, ownerID)
	if err != nil {
		return err
	}
	if t == nil {
		return apperr.ErrNotFound
	}
	if err := guardNoActiveTrips(s.trips.ActiveTripsForTruck(ctx, truckID)); err != nil {
		return err
	}

	ok, err := s.trucks.Delete(ctx, truckID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// ListDrivers returns the owner's drivers.
func (s *Service) ListDrivers(ctx context.Context, ownerID int64) ([]domain.Driver, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.drivers.List(ctx, ownerID)
}

// CreateDriver persists a new driver and returns its generated ID.
func (s *Service) CreateDriver(ctx context.Context, ownerID int64, d *domain.Driver) (int64, error) {
	if err := validateDriverCreate(d); err != nil {
		return 0, err
	}
	d.OwnerID = ownerID
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.drivers.Create(ctx, d)
}

// UpdateDriver applies a partial update to an owned driver.
func (s *Service) UpdateDriver(ctx context.Context, ownerID int64, u domain.PartialDriverUpdate) error {
	if err := validateDriverUpdate(&u); err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.drivers.UpdatePartial(ctx, ownerID, u)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// DeleteDriver removes an owned driver unless it has trips in UPCOMING/RUNNING state.
func (s *Service) DeleteDriver(ctx context.Context, ownerID, driverID int64) error {
	if driverID <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.drivers.Get(ctx, driverID, ownerID)
	if err != nil {
		return err
	}
	if d == nil {
		return apperr.ErrNotFound
	}
	if err := guardNoActiveTrips(s.trips.ActiveTripsForDriver(ctx, driverID)); err != nil {
		return err
	}

	ok, err := s.drivers.Delete(ctx, driverID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}
