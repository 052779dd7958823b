//go:generate mockgen -source=contracts.go -destination=trips_mocks_test.go -package=trips_test

package trips

import (
	"context"

	"truckhub/internal/domain"
	"truckhub/internal/ports/triptx"
)

// tripRepository defines storage operations required by the trip workflow.
type tripRepository interface {
	WithTx(ctx context.Context, fn func(tx triptx.Repository) error) error
	List(ctx context.Context, ownerID int64) ([]domain.Trip, error)
}
