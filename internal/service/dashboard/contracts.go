package dashboard

import (
	"context"

	"truckhub/internal/domain"
	"truckhub/internal/repository"
)

// statsRepository provides the aggregated dashboard counters.
type statsRepository interface {
	OwnerCounts(ctx context.Context, ownerID int64) (repository.OwnerCounts, error)
	RecentOrders(ctx context.Context, ownerID int64, limit int) ([]domain.Order, error)
}

// ownerReader resolves truck owner profiles.
type ownerReader interface {
	GetOwner(ctx context.Context, id int64) (*domain.TruckOwner, error)
}
