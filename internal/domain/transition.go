package domain

import "fmt"

// TransitionError reports an illegal status transition attempt.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: illegal transition %s -> %s", e.Entity, e.From, e.To)
}

// NewOrderTransitionError builds a TransitionError for an order.
func NewOrderTransitionError(from, to OrderStatus) *TransitionError {
	return &TransitionError{Entity: "order", From: string(from), To: string(to)}
}

// NewTripTransitionError builds a TransitionError for a trip.
func NewTripTransitionError(from, to TripStatus) *TransitionError {
	return &TransitionError{Entity: "trip", From: string(from), To: string(to)}
}
