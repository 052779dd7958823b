package handlers

import "truckhub/internal/domain"

type truckDTO struct {
	ID             int64              `json:"id"`
	TruckNo        string             `json:"truck_no"`
	TruckType      string             `json:"truck_type"`
	CapacityTonnes float64            `json:"capacity_tonnes"`
	FuelType       string             `json:"fuel_type"`
	Status         domain.TruckStatus `json:"status"`
}

type createTruckRequest struct {
	TruckNo        string             `json:"truck_no"`
	TruckType      string             `json:"truck_type"`
	CapacityTonnes float64            `json:"capacity_tonnes"`
	FuelType       string             `json:"fuel_type"`
	Status         domain.TruckStatus `json:"status"`
}

type updateTruckRequest struct {
	TruckNo        *string             `json:"truck_no,omitempty"`
	TruckType      *string             `json:"truck_type,omitempty"`
	CapacityTonnes *float64            `json:"capacity_tonnes,omitempty"`
	FuelType       *string             `json:"fuel_type,omitempty"`
	Status         *domain.TruckStatus `json:"status,omitempty"`
}

func (r createTruckRequest) toModel() *domain.Truck {
	return &domain.Truck{
		TruckNo:        r.TruckNo,
		TruckType:      r.TruckType,
		CapacityTonnes: r.CapacityTonnes,
		FuelType:       r.FuelType,
		Status:         r.Status,
	}
}

func (r updateTruckRequest) toModel(id int64) domain.PartialTruckUpdate {
	return domain.PartialTruckUpdate{
		ID:             id,
		TruckNo:        r.TruckNo,
		TruckType:      r.TruckType,
		CapacityTonnes: r.CapacityTonnes,
		FuelType:       r.FuelType,
		Status:         r.Status,
	}
}

func truckToResponse(t domain.Truck) truckDTO {
	return truckDTO{
		ID:             t.ID,
		TruckNo:        t.TruckNo,
		TruckType:      t.TruckType,
		CapacityTonnes: t.CapacityTonnes,
		FuelType:       t.FuelType,
		Status:         t.Status,
	}
}

func trucksToResponse(list []domain.Truck) []truckDTO {
	out := make([]truckDTO, 0, len(list))
	for _, t := range list {
		out = append(out, truckToResponse(t))
	}
	return out
}
