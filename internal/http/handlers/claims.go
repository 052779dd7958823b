package handlers

import (
	"errors"
	"net/http"

	"truckhub/internal/domain"
	mw "truckhub/internal/http/middleware"
	"truckhub/internal/logx"
)

// profileID extracts the role profile id from the request's auth claims.
// A missing claim means the route was mounted without the auth middleware.
func profileID(logger logx.Logger, w http.ResponseWriter, r *http.Request) (int64, bool) {
	claims, ok := mw.ClaimsFromContext(r.Context())
	if !ok {
		writeError(logger, w, r, http.StatusUnauthorized, "unauthorized")
		return 0, false
	}
	return claims.ProfileID, true
}

// transitionMessage extracts the human-readable reason from a TransitionError.
func transitionMessage(err error) (string, bool) {
	var te *domain.TransitionError
	if errors.As(err, &te) {
		return te.Error(), true
	}
	return "", false
}
