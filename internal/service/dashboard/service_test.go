package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
	"truckhub/internal/repository"
	"truckhub/internal/service/dashboard"
)

type stubStats struct {
	counts repository.OwnerCounts
	recent []domain.Order
	err    error
}

func (s *stubStats) OwnerCounts(context.Context, int64) (repository.OwnerCounts, error) {
	return s.counts, s.err
}

func (s *stubStats) RecentOrders(_ context.Context, _ int64, limit int) ([]domain.Order, error) {
	if len(s.recent) > limit {
		return s.recent[:limit], s.err
	}
	return s.recent, s.err
}

type stubOwners struct {
	owner *domain.TruckOwner
}

func (s *stubOwners) GetOwner(context.Context, int64) (*domain.TruckOwner, error) {
	return s.owner, nil
}

func TestOwnerStats(t *testing.T) {
	t.Parallel()

	stats := &stubStats{
		counts: repository.OwnerCounts{
			TotalOrders:     8,
			CompletedOrders: 3,
			TotalTrucks:     4,
			TotalDrivers:    6,
			TotalTrips:      5,
			RunningTrips:    1,
		},
		recent: []domain.Order{{ID: "a"}, {ID: "b"}},
	}
	svc := dashboard.NewService(stats, &stubOwners{owner: &domain.TruckOwner{ID: 10, Name: "Sharma Transport"}}, 3*time.Second)

	got, err := svc.OwnerStats(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, int64(8), got.TotalOrders)
	require.Equal(t, int64(4), got.TotalTrucks)
	require.Equal(t, int64(1), got.RunningTrips)
	require.InDelta(t, 37.5, got.CompletionRate, 0.001)
	require.Len(t, got.RecentOrders, 2)
	require.Equal(t, "Sharma Transport", got.Owner.Name)
}

func TestOwnerStats_RateRounded(t *testing.T) {
	t.Parallel()

	stats := &stubStats{
		counts: repository.OwnerCounts{TotalOrders: 3, CompletedOrders: 1},
	}
	svc := dashboard.NewService(stats, &stubOwners{owner: &domain.TruckOwner{ID: 10}}, 3*time.Second)

	got, err := svc.OwnerStats(context.Background(), 10)
	require.NoError(t, err)
	require.InDelta(t, 33.33, got.CompletionRate, 0.001)
}

func TestOwnerStats_ZeroOrders(t *testing.T) {
	t.Parallel()

	svc := dashboard.NewService(&stubStats{}, &stubOwners{owner: &domain.TruckOwner{ID: 10}}, 3*time.Second)

	got, err := svc.OwnerStats(context.Background(), 10)
	require.NoError(t, err)
	require.Zero(t, got.CompletionRate)
	require.Empty(t, got.RecentOrders)
}

func TestOwnerStats_UnknownOwner(t *testing.T) {
	t.Parallel()

	svc := dashboard.NewService(&stubStats{}, &stubOwners{}, 3*time.Second)

	_, err := svc.OwnerStats(context.Background(), 10)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
