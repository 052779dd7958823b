//go:build integration

package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
	"truckhub/internal/logx"
	"truckhub/internal/ports/triptx"
	"truckhub/internal/repository"
	"truckhub/internal/service/trips"
)

func newTripService() (*trips.Service, *repository.TripRepo) {
	repo := repository.NewTripRepo(tcPool)
	return trips.NewService(repo, nil, 5*time.Second, logx.Nop()), repo
}

func orderStatus(t *testing.T, orderID string) domain.OrderStatus {
	t.Helper()
	var s domain.OrderStatus
	err := tcPool.QueryRow(context.Background(),
		`SELECT status FROM orders WHERE id=$1`, orderID).Scan(&s)
	require.NoError(t, err)
	return s
}

func driverStatus(t *testing.T, driverID int64) domain.DriverStatus {
	t.Helper()
	var s domain.DriverStatus
	err := tcPool.QueryRow(context.Background(),
		`SELECT status FROM drivers WHERE id=$1`, driverID).Scan(&s)
	require.NoError(t, err)
	return s
}

func tripCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	err := tcPool.QueryRow(context.Background(), `SELECT COUNT(*) FROM trips`).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestAssign_CommitsAllEffects(t *testing.T) {
	truncateAll(t)

	ownerID := seedOwner(t, "Sharma Transport")
	driverID := seedDriver(t, ownerID, domain.DriverAvailable)
	truckID := seedTruck(t, ownerID, "MH12AB1234", domain.TruckActive)
	seedOrder(t, "order-1", ownerID, domain.OrderConfirmed)

	svc, _ := newTripService()
	trip, err := svc.Assign(context.Background(), ownerID, trips.AssignInput{
		OrderID:      "order-1",
		DriverID:     driverID,
		TruckID:      truckID,
		FromLocation: "Pune",
		ToLocation:   "Mumbai",
		Cargo:        "steel coils",
	})
	require.NoError(t, err)
	require.NotZero(t, trip.ID)
	require.Equal(t, domain.TripUpcoming, trip.Status)

	require.Equal(t, domain.OrderInProgress, orderStatus(t, "order-1"))
	require.Equal(t, domain.DriverUnavailable, driverStatus(t, driverID))
}

func TestAssign_RollsBackOnConflict(t *testing.T) {
	truncateAll(t)

	ownerID := seedOwner(t, "Sharma Transport")
	driverID := seedDriver(t, ownerID, domain.DriverUnavailable)
	truckID := seedTruck(t, ownerID, "MH12AB1234", domain.TruckActive)
	seedOrder(t, "order-1", ownerID, domain.OrderConfirmed)

	svc, _ := newTripService()
	_, err := svc.Assign(context.Background(), ownerID, trips.AssignInput{
		OrderID:      "order-1",
		DriverID:     driverID,
		TruckID:      truckID,
		FromLocation: "Pune",
		ToLocation:   "Mumbai",
	})
	require.ErrorIs(t, err, apperr.ErrConflict)

	// nothing committed
	require.Zero(t, tripCount(t))
	require.Equal(t, domain.OrderConfirmed, orderStatus(t, "order-1"))
}

func TestAssign_ConcurrentSameDriver(t *testing.T) {
	truncateAll(t)

	ownerID := seedOwner(t, "Sharma Transport")
	driverID := seedDriver(t, ownerID, domain.DriverAvailable)
	truckA := seedTruck(t, ownerID, "MH12AB1234", domain.TruckActive)
	truckB := seedTruck(t, ownerID, "KA01CD5678", domain.TruckActive)
	seedOrder(t, "order-1", ownerID, domain.OrderConfirmed)
	seedOrder(t, "order-2", ownerID, domain.OrderConfirmed)

	svc, _ := newTripService()

	assign := func(orderID string, truckID int64) error {
		_, err := svc.Assign(context.Background(), ownerID, trips.AssignInput{
			OrderID:      orderID,
			DriverID:     driverID,
			TruckID:      truckID,
			FromLocation: "Pune",
			ToLocation:   "Mumbai",
		})
		return err
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() { defer wg.Done(); errs[0] = assign("order-1", truckA) }()
	go func() { defer wg.Done(); errs[1] = assign("order-2", truckB) }()
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		if err == nil {
			won++
		} else if errors.Is(err, apperr.ErrConflict) {
			lost++
		}
	}
	require.Equal(t, 1, won, "exactly one assignment must win the driver")
	require.Equal(t, 1, lost)
	require.Equal(t, int64(1), tripCount(t))
	require.Equal(t, domain.DriverUnavailable, driverStatus(t, driverID))
}

func TestTransition_CompletedReleasesDriver(t *testing.T) {
	truncateAll(t)

	ownerID := seedOwner(t, "Sharma Transport")
	driverID := seedDriver(t, ownerID, domain.DriverAvailable)
	truckID := seedTruck(t, ownerID, "MH12AB1234", domain.TruckActive)
	seedOrder(t, "order-1", ownerID, domain.OrderConfirmed)

	svc, _ := newTripService()
	trip, err := svc.Assign(context.Background(), ownerID, trips.AssignInput{
		OrderID:      "order-1",
		DriverID:     driverID,
		TruckID:      truckID,
		FromLocation: "Pune",
		ToLocation:   "Mumbai",
	})
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), ownerID, trip.ID, domain.TripRunning)
	require.NoError(t, err)

	done, err := svc.Transition(context.Background(), ownerID, trip.ID, domain.TripCompleted)
	require.NoError(t, err)
	require.NotNil(t, done.ActualDeliveryDate)

	require.Equal(t, domain.OrderCompleted, orderStatus(t, "order-1"))
	require.Equal(t, domain.DriverAvailable, driverStatus(t, driverID))
}

func TestTransition_CancelledFreesOrderForReassignment(t *testing.T) {
	truncateAll(t)

	ownerID := seedOwner(t, "Sharma Transport")
	driverID := seedDriver(t, ownerID, domain.DriverAvailable)
	truckID := seedTruck(t, ownerID, "MH12AB1234", domain.TruckActive)
	seedOrder(t, "order-1", ownerID, domain.OrderConfirmed)

	svc, _ := newTripService()
	trip, err := svc.Assign(context.Background(), ownerID, trips.AssignInput{
		OrderID:      "order-1",
		DriverID:     driverID,
		TruckID:      truckID,
		FromLocation: "Pune",
		ToLocation:   "Mumbai",
	})
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), ownerID, trip.ID, domain.TripCancelled)
	require.NoError(t, err)

	require.Equal(t, domain.OrderConfirmed, orderStatus(t, "order-1"))
	require.Equal(t, domain.DriverAvailable, driverStatus(t, driverID))

	// the same order can be assigned again
	_, err = svc.Assign(context.Background(), ownerID, trips.AssignInput{
		OrderID:      "order-1",
		DriverID:     driverID,
		TruckID:      truckID,
		FromLocation: "Pune",
		ToLocation:   "Mumbai",
	})
	require.NoError(t, err)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	truncateAll(t)

	ownerID := seedOwner(t, "Sharma Transport")
	seedOrder(t, "order-1", ownerID, domain.OrderConfirmed)

	repo := repository.NewTripRepo(tcPool)
	sentinel := errors.New("abort")

	err := repo.WithTx(context.Background(), func(tx triptx.Repository) error {
		if err := tx.UpdateOrderStatus(context.Background(), "order-1", domain.OrderCancelled); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, domain.OrderConfirmed, orderStatus(t, "order-1"))
}

func TestActiveTripCounts(t *testing.T) {
	truncateAll(t)

	ownerID := seedOwner(t, "Sharma Transport")
	driverID := seedDriver(t, ownerID, domain.DriverAvailable)
	truckID := seedTruck(t, ownerID, "MH12AB1234", domain.TruckActive)
	seedOrder(t, "order-1", ownerID, domain.OrderConfirmed)

	svc, repo := newTripService()
	trip, err := svc.Assign(context.Background(), ownerID, trips.AssignInput{
		OrderID:      "order-1",
		DriverID:     driverID,
		TruckID:      truckID,
		FromLocation: "Pune",
		ToLocation:   "Mumbai",
	})
	require.NoError(t, err)

	n, err := repo.ActiveTripsForDriver(context.Background(), driverID)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = repo.ActiveTripsForTruck(context.Background(), truckID)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	live, err := repo.HasLiveTrip(context.Background(), "order-1")
	require.NoError(t, err)
	require.True(t, live)

	_, err = svc.Transition(context.Background(), ownerID, trip.ID, domain.TripCancelled)
	require.NoError(t, err)

	n, err = repo.ActiveTripsForDriver(context.Background(), driverID)
	require.NoError(t, err)
	require.Zero(t, n)

	live, err = repo.HasLiveTrip(context.Background(), "order-1")
	require.NoError(t, err)
	require.False(t, live)
}
