package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"orgevents/internal/delivery/http/controllers"
	"orgevents/internal/delivery/http/middleware"
	"orgevents/internal/domain"
)

// RouterDeps are the collaborators NewRouter wires into routes.
type RouterDeps struct {
	Logger        *slog.Logger
	Authenticator domain.Authenticator
	Authorizer    domain.Authorizer
	Users         *controllers.UserController
	Events        *controllers.EventController
	Registrations *controllers.RegistrationController
	Health        *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(d RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(d.Authenticator, d.Logger)
	organizer := func(next http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.RequireRole(d.Authorizer, d.Logger, domain.RoleOrganizer)(next))
	}

	// Users
	mux.HandleFunc("POST /users", d.Users.SignUp)
	mux.HandleFunc("GET /users", auth(d.Users.List))
	mux.HandleFunc("GET /users/profile", auth(d.Users.Profile))
	mux.HandleFunc("GET /users/{id}", auth(d.Users.GetByID))
	mux.HandleFunc("PUT /users/{id}", auth(d.Users.Update))
	mux.HandleFunc("DELETE /users/{id}", organizer(d.Users.Delete))
	mux.HandleFunc("POST /login", d.Users.Login)

	// Events
	mux.HandleFunc("POST /event", organizer(d.Events.Create))
	mux.HandleFunc("GET /event", d.Events.List)
	mux.HandleFunc("GET /event/{id}", d.Events.GetByID)
	mux.HandleFunc("PUT /event/{id}", auth(d.Events.Update))
	mux.HandleFunc("DELETE /event/{id}", auth(d.Events.Delete))

	// Registrations
	mux.HandleFunc("POST /event/{eventID}/{$}", auth(d.Registrations.Register))
	mux.HandleFunc("DELETE /event/{eventID}/registration", auth(d.Registrations.Unregister))
	mux.HandleFunc("GET /eventsRegistered", auth(d.Registrations.ListMine))
	mux.HandleFunc("GET /eventAttendees/{eventID}", organizer(d.Registrations.ListAttendees))

	mux.HandleFunc("GET /healthz", d.Health.Healthz)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
