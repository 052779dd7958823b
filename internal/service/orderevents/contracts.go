//go:generate mockgen -source=contracts.go -destination=orderevents_mocks_test.go -package=orderevents_test

package orderevents

import (
	"context"

	"truckhub/internal/domain"
)

// OrderWriter abstracts the subset of order storage needed by the Processor
// when handling order events.
type OrderWriter interface {
	Insert(ctx context.Context, o *domain.Order) error
	CancelUnassigned(ctx context.Context, orderID string) (bool, error)
}
