package accounts

import (
	"context"
	"errors"
	"strings"
	"time"

	"truckhub/internal/apperr"
	"truckhub/internal/auth"
	"truckhub/internal/domain"
	"truckhub/internal/logx"
)

const minPasswordLen = 8

// ProvisionOwnerInput carries the fields needed to open a truck owner account.
type ProvisionOwnerInput struct {
	Phone      string
	Email      string
	Password   string
	Name       string
	Location   string
	Experience int
}

// ProvisionManufacturerInput carries the fields needed to open a manufacturer
// account.
type ProvisionManufacturerInput struct {
	Phone        string
	Email        string
	Password     string
	CompanyName  string
	BusinessType string
}

// LoginResult is the issued token plus the identity it encodes.
type LoginResult struct {
	Token     string
	UserID    int64
	Role      domain.Role
	ProfileID int64
}

// Service provisions accounts and authenticates users. Accounts are created
// explicitly, with the user row and the role profile written in one
// transaction; a half-provisioned account cannot exist.
type Service struct {
	repo             accountRepository
	tokens           tokenIssuer
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates an accounts Service.
func NewService(repo accountRepository, tokens tokenIssuer, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: repo, tokens: tokens, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateCredentials(phone, password string) error {
	if !domain.ValidatePhone(phone) {
		return apperr.ErrInvalid
	}
	if len(password) < minPasswordLen {
		return apperr.ErrInvalid
	}
	return nil
}

// ProvisionTruckOwner creates a truck owner account and returns its profile id.
func (s *Service) ProvisionTruckOwner(ctx context.Context, in ProvisionOwnerInput) (int64, error) {
	if err := validateCredentials(in.Phone, in.Password); err != nil {
		return 0, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return 0, apperr.ErrInvalid
	}

	hash, err := s.tokens.HashPassword(in.Password)
	if err != nil {
		return 0, err
	}

	u := &domain.User{
		Phone:        in.Phone,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleTruckOwner,
		IsActive:     true,
	}
	o := &domain.TruckOwner{
		Name:       in.Name,
		Phone:      in.Phone,
		Email:      in.Email,
		Location:   in.Location,
		Status:     "active",
		Experience: in.Experience,
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.ProvisionTruckOwner(ctx, u, o); err != nil {
		return 0, err
	}

	s.logger.Info("truck owner provisioned",
		logx.String("event", "account_provisioned"),
		logx.Int64("user_id", u.ID),
		logx.Int64("profile_id", o.ID),
	)
	return o.ID, nil
}

// ProvisionManufacturer creates a manufacturer account and returns its
// profile id.
func (s *Service) ProvisionManufacturer(ctx context.Context, in ProvisionManufacturerInput) (int64, error) {
	if err := validateCredentials(in.Phone, in.Password); err != nil {
		return 0, err
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		return 0, apperr.ErrInvalid
	}

	hash, err := s.tokens.HashPassword(in.Password)
	if err != nil {
		return 0, err
	}

	u := &domain.User{
		Phone:        in.Phone,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleManufacturer,
		IsActive:     true,
	}
	m := &domain.Manufacturer{
		CompanyName:  in.CompanyName,
		BusinessType: in.BusinessType,
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.ProvisionManufacturer(ctx, u, m); err != nil {
		return 0, err
	}

	s.logger.Info("manufacturer provisioned",
		logx.String("event", "account_provisioned"),
		logx.Int64("user_id", u.ID),
		logx.Int64("profile_id", m.ID),
	)
	return m.ID, nil
}

// Login verifies credentials and issues a token carrying the user's role and
// profile id. Unknown phone and wrong password are indistinguishable to the
// caller.
func (s *Service) Login(ctx context.Context, phone, password string) (*LoginResult, error) {
	if phone == "" || password == "" {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := s.repo.GetUserByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive || !s.tokens.CheckPassword(password, u.PasswordHash) {
		return nil, apperr.ErrUnauthorized
	}

	profileID, err := s.repo.ProfileIDForUser(ctx, u.ID, u.Role)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrUnauthorized
		}
		return nil, err
	}

	claims := auth.Claims{UserID: u.ID, Role: u.Role, ProfileID: profileID}
	token, err := s.tokens.GenerateToken(claims)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in",
		logx.String("event", "login"),
		logx.Int64("user_id", u.ID),
		logx.String("role", string(u.Role)),
	)
	return &LoginResult{Token: token, UserID: u.ID, Role: u.Role, ProfileID: profileID}, nil
}

// Profile returns the truck owner profile.
func (s *Service) Profile(ctx context.Context, ownerID int64) (*domain.TruckOwner, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	o, err := s.repo.GetOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.ErrNotFound
	}
	return o, nil
}

// UpdateProfile applies a partial update to the truck owner profile.
func (s *Service) UpdateProfile(ctx context.Context, u domain.PartialOwnerUpdate) error {
	if u.ID <= 0 {
		return apperr.ErrInvalid
	}
	if u.Name == nil && u.Phone == nil && u.Email == nil &&
		u.Location == nil && u.Experience == nil {
		return apperr.ErrInvalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.ErrInvalid
	}
	if u.Phone != nil && !domain.ValidatePhone(*u.Phone) {
		return apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdateOwnerPartial(ctx, u)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}
