package controllers

import (
	"log/slog"
	"net/http"

	"orgevents/internal/delivery/http/helpers"
)

// writeError writes the envelope for err and logs it when it is not part of the
// domain error taxonomy.
func writeError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	if status := helpers.WriteDomainError(w, err); status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
}

// DeleteResponse is the data of a successful DELETE.
type DeleteResponse struct {
	ID string `json:"id"`
}

// DeleteSuccessResponse is the success response envelope for DELETE endpoints (200).
type DeleteSuccessResponse struct {
	Data  DeleteResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}
