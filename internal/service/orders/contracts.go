package orders

import (
	"context"

	"truckhub/internal/domain"
)

// orderRepository defines storage operations required by the order workflow.
type orderRepository interface {
	Get(ctx context.Context, orderID string, ownerID int64) (*domain.Order, error)
	ListAssigned(ctx context.Context, ownerID int64) ([]domain.Order, error)
	UpdateStatusWhere(ctx context.Context, orderID string, ownerID int64,
		status domain.OrderStatus, allowedFrom []domain.OrderStatus) (bool, error)
}

// liveTripChecker reports whether an order currently has a live trip.
type liveTripChecker interface {
	HasLiveTrip(ctx context.Context, orderID string) (bool, error)
}
