package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"truckhub/internal/auth"
	"truckhub/internal/domain"
)

type claimsKey struct{}

// TokenValidator parses a bearer token into identity claims.
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// ClaimsFromContext returns the authenticated identity set by Auth.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

func denyJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": msg})
}

// Auth validates the Authorization header and stores the claims in the
// request context. Identity comes only from the signed token, never from
// spoofable headers.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := validator.ValidateToken(r.Header.Get("Authorization"))
			if err != nil {
				denyJSON(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated requests whose role does not match.
func RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				denyJSON(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if claims.Role != role && claims.Role != domain.RoleSuperAdmin {
				denyJSON(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
