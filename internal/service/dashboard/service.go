package dashboard

import (
	"context"
	"math"
	"time"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
)

const recentOrdersLimit = 5

// Stats is the truck owner dashboard snapshot. CompletionRate is a percentage
// of completed orders over all assigned orders, 0 when nothing is assigned.
type Stats struct {
	Owner            *domain.TruckOwner
	TotalOrders      int64
	CompletedOrders  int64
	PendingOrders    int64
	InProgressOrders int64
	TotalTrucks      int64
	TotalDrivers     int64
	TotalTrips       int64
	RunningTrips     int64
	UpcomingTrips    int64
	CompletedTrips   int64
	CompletionRate   float64
	RecentOrders     []domain.Order
}

// Service assembles the truck owner dashboard. All counting happens in the
// database; the service only derives the completion rate.
type Service struct {
	stats            statsRepository
	owners           ownerReader
	operationTimeout time.Duration
}

// NewService creates a dashboard Service.
func NewService(stats statsRepository, owners ownerReader, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{stats: stats, owners: owners, operationTimeout: timeout}
}

// OwnerStats builds the dashboard for one truck owner.
func (s *Service) OwnerStats(ctx context.Context, ownerID int64) (*Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	owner, err := s.owners.GetOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperr.ErrNotFound
	}

	c, err := s.stats.OwnerCounts(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	recent, err := s.stats.RecentOrders(ctx, ownerID, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Owner:            owner,
		TotalOrders:      c.TotalOrders,
		CompletedOrders:  c.CompletedOrders,
		PendingOrders:    c.PendingOrders,
		InProgressOrders: c.InProgressOrders,
		TotalTrucks:      c.TotalTrucks,
		TotalDrivers:     c.TotalDrivers,
		TotalTrips:       c.TotalTrips,
		RunningTrips:     c.RunningTrips,
		UpcomingTrips:    c.UpcomingTrips,
		CompletedTrips:   c.CompletedTrips,
		CompletionRate:   completionRate(c.CompletedOrders, c.TotalOrders),
		RecentOrders:     recent,
	}, nil
}

func completionRate(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(completed) / float64(total) * 100
	return math.Round(rate*100) / 100
}
