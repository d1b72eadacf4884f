package controllers

import (
	"log/slog"
	"net/http"

	"orgevents/internal/delivery/http/helpers"
	"orgevents/internal/delivery/http/middleware"
	"orgevents/internal/domain"
)

// RegistrationSuccessResponse is the success response envelope for POST /event/{eventID}/.
type RegistrationSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// RegistrationController handles registering users to events and the derived listings.
type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

// NewRegistrationController creates a RegistrationController with the given logger and service.
func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *RegistrationController) currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
	}
	return userID, ok
}

// Register godoc
// @Summary Register for an event
// @Description Registers the authenticated user for the event. Idempotent: returns 201 when the registration is created and 200 with the existing registration if the user was already registered.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 201 {object} controllers.RegistrationSuccessResponse "data contains the new registration"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains the existing registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized, token_expired or token_invalid"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /event/{eventID}/ [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathUUID(w, r, "eventID")
	if !ok {
		return
	}
	userID, ok := c.currentUser(w, r)
	if !ok {
		return
	}
	reg, created, err := c.Service.Register(r.Context(), userID, eventID)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, reg)
}

// Unregister godoc
// @Summary Cancel a registration
// @Description Removes the authenticated user's registration for the event.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.DeleteSuccessResponse "data contains the event id"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized, token_expired or token_invalid"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /event/{eventID}/registration [delete]
func (c *RegistrationController) Unregister(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathUUID(w, r, "eventID")
	if !ok {
		return
	}
	userID, ok := c.currentUser(w, r)
	if !ok {
		return
	}
	if err := c.Service.Unregister(r.Context(), userID, eventID); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{ID: eventID})
}

// ListMine godoc
// @Summary List my registered events
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events the user is registered for"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized, token_expired or token_invalid"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /eventsRegistered [get]
func (c *RegistrationController) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.currentUser(w, r)
	if !ok {
		return
	}
	events, err := c.Service.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// ListAttendees godoc
// @Summary List attendees of an event
// @Description Organizer only. Each registered user appears once.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.UserListSuccessResponse "data contains the registered users"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized, token_expired or token_invalid"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /eventAttendees/{eventID} [get]
func (c *RegistrationController) ListAttendees(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathUUID(w, r, "eventID")
	if !ok {
		return
	}
	users, err := c.Service.ListAttendees(r.Context(), eventID)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, users)
}
