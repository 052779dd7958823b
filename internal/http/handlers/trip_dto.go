package handlers

import (
	"time"

	"truckhub/internal/domain"
	"truckhub/internal/service/trips"
)

type tripDTO struct {
	ID                    int64             `json:"id"`
	OrderID               string            `json:"order_id"`
	DriverID              int64             `json:"driver_id"`
	TruckID               int64             `json:"truck_id"`
	FromLocation          string            `json:"from_location"`
	ToLocation            string            `json:"to_location"`
	Cargo                 string            `json:"cargo,omitempty"`
	Status                domain.TripStatus `json:"status"`
	EstimatedDeliveryDate *time.Time        `json:"estimated_delivery_date,omitempty"`
	ActualDeliveryDate    *time.Time        `json:"actual_delivery_date,omitempty"`
	SpecialInstructions   string            `json:"special_instructions,omitempty"`
}

type assignTripRequest struct {
	OrderID               string     `json:"order_id"`
	DriverID              int64      `json:"driver_id"`
	TruckID               int64      `json:"truck_id"`
	FromLocation          string     `json:"from_location"`
	ToLocation            string     `json:"to_location"`
	Cargo                 string     `json:"cargo"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`
	SpecialInstructions   string     `json:"special_instructions"`
}

type updateTripStatusRequest struct {
	Status string `json:"status"`
}

func (r assignTripRequest) toInput() trips.AssignInput {
	return trips.AssignInput{
		OrderID:               r.OrderID,
		DriverID:              r.DriverID,
		TruckID:               r.TruckID,
		FromLocation:          r.FromLocation,
		ToLocation:            r.ToLocation,
		Cargo:                 r.Cargo,
		EstimatedDeliveryDate: r.EstimatedDeliveryDate,
		SpecialInstructions:   r.SpecialInstructions,
	}
}

func tripToResponse(t domain.Trip) tripDTO {
	return tripDTO{
		ID:                    t.ID,
		OrderID:               t.OrderID,
		DriverID:              t.DriverID,
		TruckID:               t.TruckID,
		FromLocation:          t.FromLocation,
		ToLocation:            t.ToLocation,
		Cargo:                 t.Cargo,
		Status:                t.Status,
		EstimatedDeliveryDate: t.EstimatedDeliveryDate,
		ActualDeliveryDate:    t.ActualDeliveryDate,
		SpecialInstructions:   t.SpecialInstructions,
	}
}

func tripsToResponse(list []domain.Trip) []tripDTO {
	out := make([]tripDTO, 0, len(list))
	for _, t := range list {
		out = append(out, tripToResponse(t))
	}
	return out
}
