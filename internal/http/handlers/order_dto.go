package handlers

import (
	"time"

	"truckhub/internal/domain"
)

type orderItemDTO struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type orderDTO struct {
	ID              string             `json:"id"`
	ManufacturerID  int64              `json:"manufacturer_id"`
	AssignedOwnerID *int64             `json:"assigned_owner_id,omitempty"`
	Status          domain.OrderStatus `json:"status"`
	DeliveryAddress string             `json:"delivery_address"`
	Items           []orderItemDTO     `json:"items,omitempty"`
	OrderDate       time.Time          `json:"order_date"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func orderToResponse(o domain.Order) orderDTO {
	dto := orderDTO{
		ID:              o.ID,
		ManufacturerID:  o.ManufacturerID,
		AssignedOwnerID: o.AssignedOwnerID,
		Status:          o.Status,
		DeliveryAddress: o.DeliveryAddress,
		OrderDate:       o.OrderDate,
	}
	for _, it := range o.Items {
		dto.Items = append(dto.Items, orderItemDTO{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return dto
}

func ordersToResponse(list []domain.Order) []orderDTO {
	out := make([]orderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, orderToResponse(o))
	}
	return out
}
