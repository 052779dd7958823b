package orderevents

import (
	"time"
)

// Event is a single order lifecycle event from the marketplace stream.
type Event struct {
	OrderID         string      `json:"order_id"`
	Status          string      `json:"status"`
	ManufacturerID  int64       `json:"manufacturer_id"`
	AssignedOwnerID *int64      `json:"assigned_owner_id,omitempty"`
	DeliveryAddress string      `json:"delivery_address"`
	Items           []EventItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// EventItem is one product line carried by a "created" event.
type EventItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}
