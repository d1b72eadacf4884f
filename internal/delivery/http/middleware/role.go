package middleware

import (
	"log/slog"
	"net/http"

	h "orgevents/internal/delivery/http/helpers"
	"orgevents/internal/domain"
)

// RequireRole returns a wrapper that lets the request through only if the authenticated
// user holds at least one of roles. It must run inside RequireAuth.
func RequireRole(authz domain.Authorizer, logger *slog.Logger, roles ...string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
				return
			}
			if err := authz.RequireRole(r.Context(), userID, roles...); err != nil {
				if status := h.WriteDomainError(w, err); status == http.StatusInternalServerError {
					logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
				}
				return
			}
			next(w, r)
		}
	}
}
