package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"truckhub/internal/apperr"
	"truckhub/internal/auth"
	"truckhub/internal/domain"
)

func TestToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := auth.NewService("test-secret", time.Hour)

	token, err := svc.GenerateToken(auth.Claims{
		UserID:    1,
		Role:      domain.RoleTruckOwner,
		ProfileID: 42,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, int64(1), claims.UserID)
	require.Equal(t, domain.RoleTruckOwner, claims.Role)
	require.Equal(t, int64(42), claims.ProfileID)
}

func TestToken_BearerPrefix(t *testing.T) {
	t.Parallel()

	svc := auth.NewService("test-secret", time.Hour)

	token, err := svc.GenerateToken(auth.Claims{UserID: 1, Role: domain.RoleManufacturer, ProfileID: 5})
	require.NoError(t, err)

	claims, err := svc.ValidateToken("Bearer " + token)
	require.NoError(t, err)
	require.Equal(t, domain.RoleManufacturer, claims.Role)
}

func TestToken_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := auth.NewService("secret-a", time.Hour)
	verifier := auth.NewService("secret-b", time.Hour)

	token, err := issuer.GenerateToken(auth.Claims{UserID: 1, Role: domain.RoleTruckOwner, ProfileID: 42})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestToken_Tampered(t *testing.T) {
	t.Parallel()

	svc := auth.NewService("test-secret", time.Hour)

	token, err := svc.GenerateToken(auth.Claims{UserID: 1, Role: domain.RoleTruckOwner, ProfileID: 42})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestToken_Empty(t *testing.T) {
	t.Parallel()

	svc := auth.NewService("test-secret", time.Hour)

	_, err := svc.ValidateToken("")
	require.ErrorIs(t, err, apperr.ErrUnauthorized)

	_, err = svc.ValidateToken("Bearer   ")
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestPassword_HashAndCheck(t *testing.T) {
	t.Parallel()

	svc := auth.NewService("test-secret", time.Hour)

	hash, err := svc.HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.True(t, svc.CheckPassword("s3cret-pass", hash))
	require.False(t, svc.CheckPassword("wrong-pass", hash))
}
