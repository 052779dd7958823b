package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"truckhub/internal/domain"
)

// StatsRepo aggregates the truck owner dashboard counters in the database
// instead of filtering in memory.
type StatsRepo struct{ db *pgxpool.Pool }

// NewStatsRepo creates a new StatsRepo.
func NewStatsRepo(db *pgxpool.Pool) *StatsRepo { return &StatsRepo{db: db} }

// OwnerCounts holds raw dashboard counters for one truck owner.
type OwnerCounts struct {
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
}

// OwnerCounts computes all dashboard counters with filtered aggregates.
func (r *StatsRepo) OwnerCounts(ctx context.Context, ownerID int64) (OwnerCounts, error) {
	var c OwnerCounts

	err := r.db.QueryRow(ctx, `
        SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status = $2),
            COUNT(*) FILTER (WHERE status = $3),
            COUNT(*) FILTER (WHERE status = $4)
        FROM orders WHERE assigned_owner_id = $1
    `, ownerID, domain.OrderCompleted, domain.OrderPending, domain.OrderInProgress).
		Scan(&c.TotalOrders, &c.CompletedOrders, &c.PendingOrders, &c.InProgressOrders)
	if err != nil {
		return OwnerCounts{}, fmt.Errorf("order counts: %w", err)
	}

	err = r.db.QueryRow(ctx, `
        SELECT
            (SELECT COUNT(*) FROM trucks WHERE owner_id = $1),
            (SELECT COUNT(*) FROM drivers WHERE owner_id = $1)
    `, ownerID).Scan(&c.TotalTrucks, &c.TotalDrivers)
	if err != nil {
		return OwnerCounts{}, fmt.Errorf("fleet counts: %w", err)
	}

	err = r.db.QueryRow(ctx, `
        SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status = $2),
            COUNT(*) FILTER (WHERE status = $3),
            COUNT(*) FILTER (WHERE status = $4)
        FROM trips WHERE owner_id = $1
    `, ownerID, domain.TripRunning, domain.TripUpcoming, domain.TripCompleted).
		Scan(&c.TotalTrips, &c.RunningTrips, &c.UpcomingTrips, &c.CompletedTrips)
	if err != nil {
		return OwnerCounts{}, fmt.Errorf("trip counts: %w", err)
	}

	return c, nil
}

// RecentOrders returns the owner's latest orders.
func (r *StatsRepo) RecentOrders(ctx context.Context, ownerID int64, limit int) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
         WHERE assigned_owner_id=$1 ORDER BY order_date DESC LIMIT $2`,
		ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
