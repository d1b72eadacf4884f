package domain

import (
	"context"
	"time"
)

// Event type names known to the system.
const (
	EventTypeConference = "conference"
	EventTypeSeminar    = "seminar"
	EventTypeCongress   = "congress"
)

// DefaultEventTypes is the fixed set of event types seeded at startup.
var DefaultEventTypes = []string{EventTypeConference, EventTypeSeminar, EventTypeCongress}

// Event represents an organizational event. CreatedBy is set once on create.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	EventTypeID string    `json:"event_type_id"`
	EventType   string    `json:"event_type"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(title, description, date, eventTime, location, createdBy string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Date:        date,
		Time:        eventTime,
		Location:    location,
		CreatedBy:   createdBy,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventType categorizes an event (conference, seminar, congress).
type EventType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EventInput is the data needed to create an event. EventType is a type name.
type EventInput struct {
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
	EventType   string
}

// EventPatch holds optional event changes. Nil fields are left unchanged.
// EventType is a type name and is resolved before the update.
type EventPatch struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Location    *string
	EventType   *string
}

// EventFilter is a conjunction over the set fields; empty fields are unconstrained.
type EventFilter struct {
	Date        string
	Location    string
	EventType   string
	EventTypeID string
}

// EventUpdate is the resolved form of EventPatch handed to the repository.
type EventUpdate struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Location    *string
	EventTypeID *string
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Event, error)
	CountByCreator(ctx context.Context, userID string) (int, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventTypeRepository defines the interface for event type storage.
type EventTypeRepository interface {
	GetByName(ctx context.Context, name string) (*EventType, error)
	EnsureNames(ctx context.Context, names []string) (inserted int, err error)
	Count(ctx context.Context) (int64, error)
}

// EventService defines event registry operations.
type EventService interface {
	CreateEvent(ctx context.Context, input EventInput, creatorID string) (*Event, error)
	ListEvents(ctx context.Context, filter EventFilter) ([]*Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	UpdateEvent(ctx context.Context, id string, patch EventPatch, actorID string) (*Event, error)
	DeleteEvent(ctx context.Context, id, actorID string) error
}
