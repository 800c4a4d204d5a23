package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const sessionContextKey contextKey = "session"

const (
	// SessionCookieName carries the opaque bearer token correlating requests
	// to one visitor's cart. There is no server-side registry or revocation:
	// the token's unguessability is the only boundary.
	SessionCookieName = "sessionId"

	// CartCountCookieName carries a display-only item count so page scripts
	// can render a badge without an extra round trip. Deliberately not
	// HttpOnly.
	CartCountCookieName = "cartCount"
)

// Session extracts the session token from the request cookie, if any, and
// stores it in the request context. It never mints a token; handlers that
// allow first-time visitors do that themselves.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			ctx := context.WithValue(r.Context(), sessionContextKey, cookie.Value)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// GetSessionFromContext returns the session token resolved by Session, or ""
// when the request carried no token.
func GetSessionFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionContextKey).(string); ok {
		return sessionID
	}
	return ""
}

// MintSessionID generates a new session token. Version 4 UUIDs carry 122
// random bits, so collisions with previously issued tokens are treated as
// operationally impossible and never checked.
func MintSessionID() string {
	return uuid.NewString()
}
