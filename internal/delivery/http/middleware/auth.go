package middleware

import (
	"context"
	"log/slog"
	"net/http"

	h "orgevents/internal/delivery/http/helpers"
	"orgevents/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// RequireAuth returns a wrapper that authenticates the Authorization header and sets the
// user ID in the request context. A missing header answers 401 unauthorized; an expired
// token answers token_expired and any other bad token token_invalid. next is not called.
func RequireAuth(authn domain.Authenticator, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			userID, err := authn.Authenticate(r.Header.Get("Authorization"))
			if err != nil {
				logger.DebugContext(r.Context(), "authentication failed", "path", r.URL.Path, "err", err)
				h.WriteDomainError(w, err)
				return
			}
			r = r.WithContext(SetUserID(r.Context(), userID))
			next(w, r)
		}
	}
}
