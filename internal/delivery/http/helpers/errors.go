package helpers

import (
	"errors"
	"net/http"

	"orgevents/internal/domain"
)

// StatusForError maps an error from the domain taxonomy to an HTTP status and error code.
// Errors outside the taxonomy map to 500 internal_error.
func StatusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, ErrCodeTokenExpired
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, ErrCodeTokenInvalid
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrCodeUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrCodeForbidden
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, domain.ErrInvalidReference):
		return http.StatusBadRequest, ErrCodeInvalidReference
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrCodeBadRequest
	case errors.Is(err, domain.ErrDuplicateEmail), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ErrCodeConflict
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}

// WriteDomainError writes the error envelope for err and returns the status written.
// The message of a 500 is generic; callers log the underlying error.
func WriteDomainError(w http.ResponseWriter, err error) int {
	status, code := StatusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	WriteJSONError(w, status, code, message)
	return status
}
