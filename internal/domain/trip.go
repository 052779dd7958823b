package domain

import "time"

// TripStatus represents the status of a trip.
type TripStatus string

// List of possible trip statuses
const (
	TripUpcoming  TripStatus = "UPCOMING"
	TripRunning   TripStatus = "RUNNING"
	TripCompleted TripStatus = "COMPLETED"
	TripCancelled TripStatus = "CANCELLED"
)

// Trip is the operational binding of one order to one driver+truck pair
// for a single delivery run.
type Trip struct {
	ID                    int64
	OrderID               string
	DriverID              int64
	TruckID               int64
	OwnerID               int64
	FromLocation          string
	ToLocation            string
	Cargo                 string
	Status                TripStatus
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	SpecialInstructions   string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

var allowedTripStatuses = [...]TripStatus{
	TripUpcoming, TripRunning, TripCompleted, TripCancelled,
}

// Valid checks if the TripStatus is a known status.
func (s TripStatus) Valid() bool {
	for _, v := range allowedTripStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the status ends the trip lifecycle.
func (s TripStatus) Terminal() bool {
	return s == TripCompleted || s == TripCancelled
}

var tripTransitions = map[TripStatus][]TripStatus{
	TripUpcoming: {TripRunning, TripCancelled},
	TripRunning:  {TripCompleted, TripCancelled},
}

// CanTransition reports whether s may move to next.
func (s TripStatus) CanTransition(next TripStatus) bool {
	for _, v := range tripTransitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

// OrderStatusFor derives the order status implied by a trip status.
// Once a trip exists its status is authoritative; the parent order follows.
// A cancelled trip returns the order to CONFIRMED so it can be reassigned.
func (s TripStatus) OrderStatusFor() OrderStatus {
	switch s {
	case TripCompleted:
		return OrderCompleted
	case TripCancelled:
		return OrderConfirmed
	default:
		return OrderInProgress
	}
}
