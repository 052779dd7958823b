package domain

// TruckStatus represents the operational status of a truck.
type TruckStatus string

// List of possible truck statuses
const (
	TruckActive      TruckStatus = "ACTIVE"
	TruckInactive    TruckStatus = "INACTIVE"
	TruckMaintenance TruckStatus = "MAINTENANCE"
)

// Truck represents a vehicle owned by a truck owner.
type Truck struct {
	ID             int64
	OwnerID        int64
	TruckNo        string
	TruckType      string
	CapacityTonnes float64
	FuelType       string
	Status         TruckStatus
}

// PartialTruckUpdate carries optional fields to update a truck.
// A nil field means “do not change” that attribute.
type PartialTruckUpdate struct {
	ID             int64
	TruckNo        *string
	TruckType      *string
	CapacityTonnes *float64
	FuelType       *string
	Status         *TruckStatus
}

var allowedTruckStatuses = [...]TruckStatus{
	TruckActive, TruckInactive, TruckMaintenance,
}

// Valid checks if the TruckStatus is valid.
func (s TruckStatus) Valid() bool {
	for _, v := range allowedTruckStatuses {
		if s == v {
			return true
		}
	}
	return false
}
