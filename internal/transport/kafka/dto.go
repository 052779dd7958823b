package kafka

import (
	"strings"
	"time"

	"truckhub/internal/service/orderevents"
)

// EventDTO is the wire form of an order event.
type EventDTO struct {
	OrderID         string         `json:"order_id"`
	Status          string         `json:"status"`
	ManufacturerID  int64          `json:"manufacturer_id"`
	AssignedOwnerID *int64         `json:"assigned_owner_id,omitempty"`
	DeliveryAddress string         `json:"delivery_address"`
	Items           []EventItemDTO `json:"items,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// EventItemDTO is one product line in an EventDTO.
type EventItemDTO struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// ToDomain converts EventDTO to orderevents.Event.
func ToDomain(dto EventDTO) orderevents.Event {
	ev := orderevents.Event{
		OrderID:         strings.TrimSpace(dto.OrderID),
		Status:          strings.TrimSpace(dto.Status),
		ManufacturerID:  dto.ManufacturerID,
		AssignedOwnerID: dto.AssignedOwnerID,
		DeliveryAddress: strings.TrimSpace(dto.DeliveryAddress),
		CreatedAt:       dto.CreatedAt,
	}
	for _, it := range dto.Items {
		ev.Items = append(ev.Items, orderevents.EventItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return ev
}
