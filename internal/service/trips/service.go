package trips

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
	"truckhub/internal/logx"
	"truckhub/internal/ports/triptx"
)

// AssignInput carries the fields of an assignment request.
type AssignInput struct {
	OrderID               string
	DriverID              int64
	TruckID               int64
	FromLocation          string
	ToLocation            string
	Cargo                 string
	EstimatedDeliveryDate *time.Time
	SpecialInstructions   string
}

// Service converts assigned orders into actively-worked deliveries and owns
// the single transition entry point for trips.
type Service struct {
	repo             tripRepository
	assignments      *prometheus.CounterVec
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates a trip Service.
func NewService(r tripRepository, assignments *prometheus.CounterVec, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		assignments:      assignments,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) countAssignment(outcome string) {
	if s.assignments != nil {
		s.assignments.WithLabelValues(outcome).Inc()
	}
}

func validateAssign(in *AssignInput) error {
	in.OrderID = strings.TrimSpace(in.OrderID)
	if in.OrderID == "" || in.DriverID <= 0 || in.TruckID <= 0 {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(in.FromLocation) == "" || strings.TrimSpace(in.ToLocation) == "" {
		return apperr.ErrInvalid
	}
	return nil
}

// List returns the owner's trips.
func (s *Service) List(ctx context.Context, ownerID int64) ([]domain.Trip, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, ownerID)
}

// Assign binds an order to one driver and one truck. All effects — the trip
// insert, the order status flip and the driver booking — commit in one
// transaction or not at all. Row locks on the driver and truck mean two
// concurrent assignments of the same resource yield exactly one success.
func (s *Service) Assign(ctx context.Context, ownerID int64, in AssignInput) (*domain.Trip, error) {
	if err := validateAssign(&in); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var trip *domain.Trip

	err := s.repo.WithTx(ctx, func(tx triptx.Repository) error {
		order, err := tx.GetOrderForUpdate(ctx, in.OrderID, ownerID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperr.ErrNotFound
		}
		if !order.Status.Assignable() {
			return domain.NewOrderTransitionError(order.Status, domain.OrderInProgress)
		}

		driver, err := tx.LockDriver(ctx, in.DriverID, ownerID)
		if err != nil {
			return err
		}
		if driver == nil {
			return apperr.ErrNotFound
		}
		if driver.Status != domain.DriverAvailable {
			return apperr.ErrConflict
		}

		truck, err := tx.LockTruck(ctx, in.TruckID, ownerID)
		if err != nil {
			return err
		}
		if truck == nil {
			return apperr.ErrNotFound
		}
		if truck.Status != domain.TruckActive {
			return apperr.ErrConflict
		}

		t := &domain.Trip{
			OrderID:               order.ID,
			DriverID:              driver.ID,
			TruckID:               truck.ID,
			OwnerID:               ownerID,
			FromLocation:          in.FromLocation,
			ToLocation:            in.ToLocation,
			Cargo:                 in.Cargo,
			Status:                domain.TripUpcoming,
			EstimatedDeliveryDate: in.EstimatedDeliveryDate,
			SpecialInstructions:   in.SpecialInstructions,
		}
		if err := tx.InsertTrip(ctx, t); err != nil {
			return err
		}
		if err := tx.UpdateOrderStatus(ctx, order.ID, domain.OrderInProgress); err != nil {
			return err
		}
		if err := tx.UpdateDriverStatus(ctx, driver.ID, domain.DriverUnavailable); err != nil {
			return err
		}

		trip = t
		return nil
	})
	if err != nil {
		s.countAssignment("rejected")
		return nil, err
	}

	s.countAssignment("assigned")
	s.logger.Info("trip assigned",
		logx.String("event", "trip_assigned"),
		logx.String("order_id", trip.OrderID),
		logx.Int64("trip_id", trip.ID),
		logx.Int64("driver_id", trip.DriverID),
		logx.Int64("truck_id", trip.TruckID),
	)

	return trip, nil
}

// Transition moves a trip to next. Trip status is authoritative: the parent
// order's status is derived from it inside the same transaction, and the
// driver is released when the trip reaches a terminal state.
func (s *Service) Transition(ctx context.Context, ownerID, tripID int64, next domain.TripStatus) (*domain.Trip, error) {
	if tripID <= 0 || !next.Valid() {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var updated *domain.Trip

	err := s.repo.WithTx(ctx, func(tx triptx.Repository) error {
		trip, err := tx.GetTripForUpdate(ctx, tripID, ownerID)
		if err != nil {
			return err
		}
		if trip == nil {
			return apperr.ErrNotFound
		}
		if !trip.Status.CanTransition(next) {
			return domain.NewTripTransitionError(trip.Status, next)
		}

		order, err := tx.GetOrderForUpdate(ctx, trip.OrderID, ownerID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperr.ErrNotFound
		}

		var actual *time.Time
		if next == domain.TripCompleted {
			now := s.now()
			actual = &now
		}
		if err := tx.UpdateTripStatus(ctx, trip.ID, next, actual); err != nil {
			return err
		}

		// the derived order write goes through the same transition table as
		// direct updates; a terminal order stays put while the trip record
		// still closes out
		derived := next.OrderStatusFor()
		switch {
		case order.Status == derived:
		case order.Status.Terminal():
			s.logger.Warn("order already terminal, leaving status",
				logx.String("order_id", order.ID),
				logx.String("order_status", string(order.Status)),
				logx.String("trip_status", string(next)),
			)
		case !order.Status.CanTransition(derived):
			return domain.NewOrderTransitionError(order.Status, derived)
		default:
			if err := tx.UpdateOrderStatus(ctx, trip.OrderID, derived); err != nil {
				return err
			}
		}
		if next.Terminal() {
			if err := tx.UpdateDriverStatus(ctx, trip.DriverID, domain.DriverAvailable); err != nil {
				return err
			}
		}

		trip.Status = next
		trip.ActualDeliveryDate = actual
		updated = trip
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("trip status updated",
		logx.String("event", "trip_transition"),
		logx.Int64("trip_id", updated.ID),
		logx.String("order_id", updated.OrderID),
		logx.String("status", string(updated.Status)),
	)

	return updated, nil
}
