package domain

import "time"

// Role names a platform role carried in auth claims.
type Role string

// List of platform roles
const (
	RoleManufacturer Role = "manufacturer"
	RoleTruckOwner   Role = "truck_owner"
	RoleDriver       Role = "driver"
	RoleSuperAdmin   Role = "super_admin"
)

// User is a platform account. The password hash never leaves the backend.
type User struct {
	ID           int64
	Phone        string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}

// Manufacturer is the catalog-owning profile of a manufacturer account.
type Manufacturer struct {
	ID           int64
	UserID       int64
	CompanyName  string
	BusinessType string
	Rating       float64
}

// TruckOwner is the fleet-owner profile (acting labour) that owns trucks,
// drivers and receives assigned orders.
type TruckOwner struct {
	ID         int64
	UserID     int64
	Name       string
	Phone      string
	Email      string
	Location   string
	Status     string
	Experience int
	Rating     float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PartialOwnerUpdate carries optional truck owner profile fields.
// A nil field means “do not change” that attribute.
type PartialOwnerUpdate struct {
	ID         int64
	Name       *string
	Phone      *string
	Email      *string
	Location   *string
	Experience *int
}

var allowedRoles = [...]Role{
	RoleManufacturer, RoleTruckOwner, RoleDriver, RoleSuperAdmin,
}

// Valid checks if the Role is a known role.
func (r Role) Valid() bool {
	for _, v := range allowedRoles {
		if r == v {
			return true
		}
	}
	return false
}
