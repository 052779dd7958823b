package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
)

// AccountRepo stores users and their role profiles. Provisioning writes the
// user row and its profile row in one transaction: an account either exists
// fully or not at all.
type AccountRepo struct{ db *pgxpool.Pool }

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(db *pgxpool.Pool) *AccountRepo { return &AccountRepo{db: db} }

// GetUserByPhone returns a user by phone number.
func (r *AccountRepo) GetUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, `
        SELECT id, phone, email, password_hash, role, is_active, created_at
        FROM users WHERE phone = $1
    `, phone).Scan(&u.ID, &u.Phone, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by phone: %w", err)
	}
	return &u, nil
}

// ProfileIDForUser resolves the role profile row id of a user.
func (r *AccountRepo) ProfileIDForUser(ctx context.Context, userID int64, role domain.Role) (int64, error) {
	var table string
	switch role {
	case domain.RoleManufacturer:
		table = "manufacturers"
	case domain.RoleTruckOwner:
		table = "truck_owners"
	default:
		return 0, apperr.ErrNotFound
	}

	var id int64
	err := r.db.QueryRow(ctx,
		`SELECT id FROM `+table+` WHERE user_id = $1`, userID).Scan(&id)
	if err != nil {
		if IsNotFound(err) {
			return 0, apperr.ErrNotFound
		}
		return 0, fmt.Errorf("profile id for user %d: %w", userID, err)
	}
	return id, nil
}

func (r *AccountRepo) insertUser(ctx context.Context, tx pgx.Tx, u *domain.User) error {
	err := tx.QueryRow(ctx, `
        INSERT INTO users (phone, email, password_hash, role, is_active)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at
    `, u.Phone, u.Email, u.PasswordHash, u.Role, u.IsActive).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// ProvisionTruckOwner creates the user row and truck owner profile atomically.
func (r *AccountRepo) ProvisionTruckOwner(ctx context.Context, u *domain.User, o *domain.TruckOwner) error {
	return r.provision(ctx, u, func(ctx context.Context, tx pgx.Tx) error {
		o.UserID = u.ID
		err := tx.QueryRow(ctx, `
            INSERT INTO truck_owners (user_id, name, phone, email, location, status, experience, rating)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
            RETURNING id, created_at, updated_at
        `, o.UserID, o.Name, o.Phone, o.Email, o.Location, o.Status, o.Experience, o.Rating).
			Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			if IsDuplicate(err) {
				return apperr.ErrConflict
			}
			return fmt.Errorf("insert truck owner profile: %w", err)
		}
		return nil
	})
}

// ProvisionManufacturer creates the user row and manufacturer profile atomically.
func (r *AccountRepo) ProvisionManufacturer(ctx context.Context, u *domain.User, m *domain.Manufacturer) error {
	return r.provision(ctx, u, func(ctx context.Context, tx pgx.Tx) error {
		m.UserID = u.ID
		err := tx.QueryRow(ctx, `
            INSERT INTO manufacturers (user_id, company_name, business_type, rating)
            VALUES ($1,$2,$3,$4)
            RETURNING id
        `, m.UserID, m.CompanyName, m.BusinessType, m.Rating).Scan(&m.ID)
		if err != nil {
			if IsDuplicate(err) {
				return apperr.ErrConflict
			}
			return fmt.Errorf("insert manufacturer profile: %w", err)
		}
		return nil
	})
}

func (r *AccountRepo) provision(ctx context.Context, u *domain.User,
	insertProfile func(context.Context, pgx.Tx) error) (err error) {

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := r.insertUser(ctx, tx, u); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := insertProfile(ctx, tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetOwner returns a truck owner profile by id.
func (r *AccountRepo) GetOwner(ctx context.Context, id int64) (*domain.TruckOwner, error) {
	var o domain.TruckOwner
	err := r.db.QueryRow(ctx, `
        SELECT id, user_id, name, phone, email, location, status, experience,
               rating, created_at, updated_at
        FROM truck_owners WHERE id = $1
    `, id).Scan(&o.ID, &o.UserID, &o.Name, &o.Phone, &o.Email, &o.Location,
		&o.Status, &o.Experience, &o.Rating, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get truck owner %d: %w", id, err)
	}
	return &o, nil
}

// UpdateOwnerPartial applies a partial profile update, returns true if a row
// was affected.
func (r *AccountRepo) UpdateOwnerPartial(ctx context.Context, u domain.PartialOwnerUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE truck_owners
        SET
            name       = COALESCE($2, name),
            phone      = COALESCE($3, phone),
            email      = COALESCE($4, email),
            location   = COALESCE($5, location),
            experience = COALESCE($6, experience),
            updated_at = now()
        WHERE id = $1
    `, u.ID, u.Name, u.Phone, u.Email, u.Location, u.Experience)
	if err != nil {
		if IsDuplicate(err) {
			return false, apperr.ErrConflict
		}
		return false, fmt.Errorf("update truck owner %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// GetManufacturerByID returns a manufacturer profile by id.
func (r *AccountRepo) GetManufacturerByID(ctx context.Context, id int64) (*domain.Manufacturer, error) {
	var m domain.Manufacturer
	err := r.db.QueryRow(ctx, `
        SELECT id, user_id, company_name, business_type, rating
        FROM manufacturers WHERE id = $1
    `, id).Scan(&m.ID, &m.UserID, &m.CompanyName, &m.BusinessType, &m.Rating)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manufacturer %d: %w", id, err)
	}
	return &m, nil
}
