package orders

import (
	"context"
	"strings"
	"time"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
	"truckhub/internal/logx"
)

// Service is the single transition entry point for orders. While an order has
// a live trip its status follows the trip, so direct updates are refused.
type Service struct {
	repo             orderRepository
	trips            liveTripChecker
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates an order Service.
func NewService(r orderRepository, trips liveTripChecker, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, trips: trips, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// List returns orders assigned to the truck owner.
func (s *Service) List(ctx context.Context, ownerID int64) ([]domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListAssigned(ctx, ownerID)
}

// UpdateStatus validates and applies a direct order status change. The flip
// is conditional on the current status in the same statement, so a concurrent
// transition cannot slip through between read and write.
func (s *Service) UpdateStatus(ctx context.Context, ownerID int64, orderID string, next domain.OrderStatus) (*domain.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" || !next.Valid() {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	order, err := s.repo.Get(ctx, orderID, ownerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.ErrNotFound
	}
	if !order.Status.CanTransition(next) {
		return nil, domain.NewOrderTransitionError(order.Status, next)
	}

	live, err := s.trips.HasLiveTrip(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if live {
		// the trip transition endpoint owns this order now
		return nil, domain.NewOrderTransitionError(order.Status, next)
	}

	ok, err := s.repo.UpdateStatusWhere(ctx, orderID, ownerID, next,
		[]domain.OrderStatus{order.Status})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrConflict
	}

	s.logger.Info("order status updated",
		logx.String("event", "order_transition"),
		logx.String("order_id", orderID),
		logx.String("status", string(next)),
	)

	order.Status = next
	return order, nil
}
