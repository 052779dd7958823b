package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"truckhub/internal/domain"
)

func TestTripStatus_CanTransition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to domain.TripStatus
		want     bool
	}{
		{domain.TripUpcoming, domain.TripRunning, true},
		{domain.TripUpcoming, domain.TripCancelled, true},
		{domain.TripUpcoming, domain.TripCompleted, false},
		{domain.TripRunning, domain.TripCompleted, true},
		{domain.TripRunning, domain.TripCancelled, true},
		{domain.TripRunning, domain.TripUpcoming, false},
		{domain.TripCompleted, domain.TripRunning, false},
		{domain.TripCancelled, domain.TripUpcoming, false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.from.CanTransition(c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestTripStatus_OrderStatusFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, domain.OrderInProgress, domain.TripUpcoming.OrderStatusFor())
	require.Equal(t, domain.OrderInProgress, domain.TripRunning.OrderStatusFor())
	require.Equal(t, domain.OrderCompleted, domain.TripCompleted.OrderStatusFor())
	// cancelled trips free the order for reassignment
	require.Equal(t, domain.OrderConfirmed, domain.TripCancelled.OrderStatusFor())
}

func TestTripStatus_Terminal(t *testing.T) {
	t.Parallel()

	require.True(t, domain.TripCompleted.Terminal())
	require.True(t, domain.TripCancelled.Terminal())
	require.False(t, domain.TripUpcoming.Terminal())
	require.False(t, domain.TripRunning.Terminal())
}

func TestTransitionError_Message(t *testing.T) {
	t.Parallel()

	err := domain.NewTripTransitionError(domain.TripCompleted, domain.TripRunning)
	require.EqualError(t, err, "trip: illegal transition COMPLETED -> RUNNING")

	err = domain.NewOrderTransitionError(domain.OrderCancelled, domain.OrderPending)
	require.EqualError(t, err, "order: illegal transition CANCELLED -> PENDING")
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	require.True(t, domain.ValidatePhone("+79991234567"))
	require.True(t, domain.ValidatePhone("+919876543210"))
	require.False(t, domain.ValidatePhone("79991234567"))
	require.False(t, domain.ValidatePhone("+7999"))
	require.False(t, domain.ValidatePhone("+7999123456789012345"))
	require.False(t, domain.ValidatePhone(""))
}
