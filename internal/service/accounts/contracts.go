package accounts

import (
	"context"

	"truckhub/internal/auth"
	"truckhub/internal/domain"
)

// accountRepository defines storage operations for users and role profiles.
type accountRepository interface {
	GetUserByPhone(ctx context.Context, phone string) (*domain.User, error)
	ProfileIDForUser(ctx context.Context, userID int64, role domain.Role) (int64, error)
	ProvisionTruckOwner(ctx context.Context, u *domain.User, o *domain.TruckOwner) error
	ProvisionManufacturer(ctx context.Context, u *domain.User, m *domain.Manufacturer) error
	GetOwner(ctx context.Context, id int64) (*domain.TruckOwner, error)
	UpdateOwnerPartial(ctx context.Context, u domain.PartialOwnerUpdate) (bool, error)
}

// tokenIssuer hashes credentials and issues signed tokens.
type tokenIssuer interface {
	HashPassword(password string) (string, error)
	CheckPassword(password, hash string) bool
	GenerateToken(c auth.Claims) (string, error)
}
