package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a counter for HTTP requests rejected by rate limiting.
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewTripAssignmentsTotal returns a counter vector for trip assignment attempts by outcome.
func NewTripAssignmentsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trip_assignments_total",
		Help: "Total number of order-to-trip assignment attempts",
	}, []string{"outcome"})
}

// NewOrderEventsTotal returns a counter vector for consumed order events by status.
func NewOrderEventsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_events_total",
		Help: "Total number of order events consumed from kafka",
	}, []string{"status"})
}
