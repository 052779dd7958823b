//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
	"truckhub/internal/repository"
)

func countRows(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	err := tcPool.QueryRow(context.Background(), `SELECT COUNT(*) FROM `+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestProvisionTruckOwner_Atomic(t *testing.T) {
	truncateAll(t)

	repo := repository.NewAccountRepo(tcPool)

	u := &domain.User{
		Phone:        "+919876543210",
		PasswordHash: "hash",
		Role:         domain.RoleTruckOwner,
		IsActive:     true,
	}
	o := &domain.TruckOwner{Name: "Sharma Transport", Phone: u.Phone, Status: "active"}

	require.NoError(t, repo.ProvisionTruckOwner(context.Background(), u, o))
	require.NotZero(t, u.ID)
	require.NotZero(t, o.ID)
	require.Equal(t, u.ID, o.UserID)

	// duplicate phone aborts the whole provision
	u2 := &domain.User{Phone: "+919876543210", PasswordHash: "hash", Role: domain.RoleTruckOwner, IsActive: true}
	o2 := &domain.TruckOwner{Name: "Other Transport", Status: "active"}
	err := repo.ProvisionTruckOwner(context.Background(), u2, o2)
	require.ErrorIs(t, err, apperr.ErrConflict)

	require.Equal(t, int64(1), countRows(t, "users"))
	require.Equal(t, int64(1), countRows(t, "truck_owners"))
}

func TestProvisionManufacturer_AndLookup(t *testing.T) {
	truncateAll(t)

	repo := repository.NewAccountRepo(tcPool)

	u := &domain.User{
		Phone:        "+919812345678",
		PasswordHash: "hash",
		Role:         domain.RoleManufacturer,
		IsActive:     true,
	}
	m := &domain.Manufacturer{CompanyName: "Tata Steel", BusinessType: "metals"}
	require.NoError(t, repo.ProvisionManufacturer(context.Background(), u, m))

	got, err := repo.GetUserByPhone(context.Background(), "+919812345678")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, domain.RoleManufacturer, got.Role)

	profileID, err := repo.ProfileIDForUser(context.Background(), u.ID, domain.RoleManufacturer)
	require.NoError(t, err)
	require.Equal(t, m.ID, profileID)

	prof, err := repo.GetManufacturerByID(context.Background(), m.ID)
	require.NoError(t, err)
	require.Equal(t, "Tata Steel", prof.CompanyName)

	prof, err = repo.GetManufacturerByID(context.Background(), m.ID+100)
	require.NoError(t, err)
	require.Nil(t, prof)
}

func TestProfileIDForUser_UnknownRole(t *testing.T) {
	truncateAll(t)

	repo := repository.NewAccountRepo(tcPool)
	_, err := repo.ProfileIDForUser(context.Background(), 1, domain.RoleDriver)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateOwnerPartial(t *testing.T) {
	truncateAll(t)

	ownerID := seedOwner(t, "Sharma Transport")
	repo := repository.NewAccountRepo(tcPool)

	loc := "Nagpur"
	exp := 7
	ok, err := repo.UpdateOwnerPartial(context.Background(),
		domain.PartialOwnerUpdate{ID: ownerID, Location: &loc, Experience: &exp})
	require.NoError(t, err)
	require.True(t, ok)

	got, err := repo.GetOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Equal(t, "Nagpur", got.Location)
	require.Equal(t, 7, got.Experience)
	require.Equal(t, "Sharma Transport", got.Name)

	ok, err = repo.UpdateOwnerPartial(context.Background(),
		domain.PartialOwnerUpdate{ID: ownerID + 100, Location: &loc})
	require.NoError(t, err)
	require.False(t, ok)
}
