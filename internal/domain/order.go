package domain

import "time"

// OrderStatus represents the status of an order.
type OrderStatus string

// List of possible order statuses
const (
	OrderPending    OrderStatus = "PENDING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderAssigned   OrderStatus = "ASSIGNED"
	OrderInProgress OrderStatus = "IN_PROGRESS"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// Order represents a buyer order assigned to a truck owner for fulfillment.
// Orders are never hard-deleted; terminal states end the lifecycle.
type Order struct {
	ID              string
	ManufacturerID  int64
	AssignedOwnerID *int64
	Status          OrderStatus
	DeliveryAddress string
	Items           []OrderItem
	OrderDate       time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is a single product line of an order.
type OrderItem struct {
	ID        int64
	OrderID   string
	ProductID int64
	Quantity  int
	UnitPrice float64
}

var allowedOrderStatuses = [...]OrderStatus{
	OrderPending, OrderConfirmed, OrderAssigned,
	OrderInProgress, OrderCompleted, OrderCancelled,
}

// Valid checks if the OrderStatus is a known status.
func (s OrderStatus) Valid() bool {
	for _, v := range allowedOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the status ends the order lifecycle.
func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// orderTransitions is the single source of truth for legal order status
// changes. IN_PROGRESS and COMPLETED are reachable only through the trip
// lifecycle; CanTransition still lists them so trip-driven updates go
// through the same table.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderConfirmed, OrderCancelled},
	OrderConfirmed:  {OrderAssigned, OrderInProgress, OrderCancelled},
	OrderAssigned:   {OrderInProgress, OrderCancelled},
	OrderInProgress: {OrderCompleted, OrderConfirmed, OrderCancelled},
}

// CanTransition reports whether s may move to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, v := range orderTransitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

// Assignable reports whether an order in this status may be bound to a trip.
func (s OrderStatus) Assignable() bool {
	return s == OrderPending || s == OrderConfirmed || s == OrderAssigned
}
