package domain

import (
	"context"
	"time"
)

// Registration links one user to one event they attend.
// swagger:model Registration
type Registration struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRegistration creates a new Registration. ID is typically set by the repository on create.
func NewRegistration(userID, eventID string, createdAt time.Time) *Registration {
	return &Registration{
		UserID:    userID,
		EventID:   eventID,
		CreatedAt: createdAt,
	}
}

// RegistrationRepository defines storage operations for registrations.
// Create returns ErrConflict if the (user, event) pair already exists.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByUserAndEvent(ctx context.Context, userID, eventID string) (*Registration, error)
	ListByUserID(ctx context.Context, userID string) ([]*Registration, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Registration, error)
	Delete(ctx context.Context, userID, eventID string) error
}

// RegistrationService defines the registration workflow.
type RegistrationService interface {
	// Register registers the user for the event. created is false if the user was already registered.
	Register(ctx context.Context, userID, eventID string) (reg *Registration, created bool, err error)
	Unregister(ctx context.Context, userID, eventID string) error
	ListForUser(ctx context.Context, userID string) ([]*Event, error)
	ListAttendees(ctx context.Context, eventID string) ([]*User, error)
}

// Seeder populates reference data (roles, event types).
type Seeder interface {
	Seed(ctx context.Context) error
}
