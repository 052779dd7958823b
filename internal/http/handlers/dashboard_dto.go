package handlers

import "truckhub/internal/service/dashboard"

type dashboardDTO struct {
	Owner            ownerDTO   `json:"owner"`
	TotalOrders      int64      `json:"total_orders"`
	CompletedOrders  int64      `json:"completed_orders"`
	PendingOrders    int64      `json:"pending_orders"`
	InProgressOrders int64      `json:"in_progress_orders"`
	TotalTrucks      int64      `json:"total_trucks"`
	TotalDrivers     int64      `json:"total_drivers"`
	TotalTrips       int64      `json:"total_trips"`
	RunningTrips     int64      `json:"running_trips"`
	UpcomingTrips    int64      `json:"upcoming_trips"`
	CompletedTrips   int64      `json:"completed_trips"`
	CompletionRate   float64    `json:"completion_rate"`
	RecentOrders     []orderDTO `json:"recent_orders"`
}

func statsToResponse(s *dashboard.Stats) dashboardDTO {
	return dashboardDTO{
		Owner:            ownerToResponse(s.Owner),
		TotalOrders:      s.TotalOrders,
		CompletedOrders:  s.CompletedOrders,
		PendingOrders:    s.PendingOrders,
		InProgressOrders: s.InProgressOrders,
		TotalTrucks:      s.TotalTrucks,
		TotalDrivers:     s.TotalDrivers,
		TotalTrips:       s.TotalTrips,
		RunningTrips:     s.RunningTrips,
		UpcomingTrips:    s.UpcomingTrips,
		CompletedTrips:   s.CompletedTrips,
		CompletionRate:   s.CompletionRate,
		RecentOrders:     ordersToResponse(s.RecentOrders),
	}
}
