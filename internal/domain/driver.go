package domain

import "regexp"

// DriverStatus represents the availability of a driver.
type DriverStatus string

// List of possible driver statuses
const (
	DriverAvailable   DriverStatus = "AVAILABLE"
	DriverUnavailable DriverStatus = "UNAVAILABLE"
)

// Driver represents a delivery driver employed by a truck owner.
type Driver struct {
	ID        int64
	OwnerID   int64
	Name      string
	Phone     string
	LicenseNo string
	Status    DriverStatus
}

// PartialDriverUpdate carries optional fields to update a driver.
// A nil field means “do not change” that attribute.
type PartialDriverUpdate struct {
	ID        int64
	Name      *string
	Phone     *string
	LicenseNo *string
	Status    *DriverStatus
}

var allowedDriverStatuses = [...]DriverStatus{
	DriverAvailable, DriverUnavailable,
}

// Valid checks if the DriverStatus is valid.
func (s DriverStatus) Valid() bool {
	for _, v := range allowedDriverStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+[0-9]{10,14}$`)

// ValidatePhone validates the phone number format.
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
