package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"truckhub/internal/apperr"
	"truckhub/internal/domain"
)

// Claims carries the authenticated identity extracted from a token.
// ProfileID is the role profile row id (truck owner or manufacturer).
type Claims struct {
	UserID    int64
	Role      domain.Role
	ProfileID int64
}

// Service issues and validates HS256 tokens and hashes passwords.
type Service struct {
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

// NewService creates an auth Service.
func NewService(secret string, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Service{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// HashPassword hashes a password with bcrypt.
func (s *Service) HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// CheckPassword reports whether password matches hash.
func (s *Service) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken issues a signed token for the given identity.
func (s *Service) GenerateToken(c Claims) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    c.UserID,
		"role":       string(c.Role),
		"profile_id": c.ProfileID,
		"iat":        now.Unix(),
		"exp":        now.Add(s.tokenTTL).Unix(),
	})
	return token.SignedString(s.secret)
}

// ValidateToken parses a raw or "Bearer "-prefixed token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return nil, apperr.ErrUnauthorized
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.ErrUnauthorized
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.ErrUnauthorized
	}

	userID, ok := claimInt64(mc, "user_id")
	if !ok {
		return nil, apperr.ErrUnauthorized
	}
	roleStr, ok := mc["role"].(string)
	if !ok || !domain.Role(roleStr).Valid() {
		return nil, apperr.ErrUnauthorized
	}
	profileID, ok := claimInt64(mc, "profile_id")
	if !ok {
		return nil, apperr.ErrUnauthorized
	}

	return &Claims{
		UserID:    userID,
		Role:      domain.Role(roleStr),
		ProfileID: profileID,
	}, nil
}

// claimInt64 reads a numeric claim; json decoding yields float64.
func claimInt64(mc jwt.MapClaims, key string) (int64, bool) {
	switch v := mc[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}
