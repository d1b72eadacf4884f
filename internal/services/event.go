package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"orgevents/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	eventTypeRepo  domain.EventTypeRepository
	authorizer     domain.Authorizer
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	eventTypeRepo domain.EventTypeRepository,
	authorizer domain.Authorizer,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		eventTypeRepo:  eventTypeRepo,
		authorizer:     authorizer,
		contextTimeout: timeout,
	}
}

func (s *eventService) resolveType(ctx context.Context, name string) (*domain.EventType, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	et, err := s.eventTypeRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown event type %q", domain.ErrInvalidReference, name)
		}
		return nil, fmt.Errorf("get event type: %w", err)
	}
	return et, nil
}

func (s *eventService) CreateEvent(ctx context.Context, input domain.EventInput, creatorID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if creatorID == "" {
		return nil, fmt.Errorf("event creator is required")
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, invalidInput("title is required")
	}
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	if err := validateTime(input.Time); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.EventType) == "" {
		return nil, invalidInput("event_type is required")
	}
	et, err := s.resolveType(ctx, input.EventType)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	event := domain.NewEvent(title, strings.TrimSpace(input.Description), input.Date, input.Time,
		strings.TrimSpace(input.Location), creatorID, now, now)
	event.EventTypeID = et.ID
	event.EventType = et.Name

	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrInvalidReference) {
			return nil, err
		}
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if filter.Date != "" {
		if err := validateDate(filter.Date); err != nil {
			return nil, err
		}
	}
	if filter.EventType != "" {
		et, err := s.resolveType(ctx, filter.EventType)
		if err != nil {
			return nil, err
		}
		filter.EventTypeID = et.ID
	}

	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// getOwned loads the event and checks that actorID created it.
func (s *eventService) getOwned(ctx context.Context, eventID, actorID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if err := s.authorizer.RequireOwnership(actorID, event.CreatedBy); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, patch domain.EventPatch, actorID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.getOwned(ctx, eventID, actorID); err != nil {
		return nil, err
	}

	upd := domain.EventUpdate{
		Description: patch.Description,
		Location:    patch.Location,
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, invalidInput("title cannot be empty")
		}
		upd.Title = &title
	}
	if patch.Date != nil {
		if err := validateDate(*patch.Date); err != nil {
			return nil, err
		}
		upd.Date = patch.Date
	}
	if patch.Time != nil {
		if err := validateTime(*patch.Time); err != nil {
			return nil, err
		}
		upd.Time = patch.Time
	}
	if patch.EventType != nil {
		et, err := s.resolveType(ctx, *patch.EventType)
		if err != nil {
			return nil, err
		}
		upd.EventTypeID = &et.ID
	}

	updated, err := s.eventRepo.Update(ctx, eventID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidReference) {
			return nil, err
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

// DeleteEvent removes the event; its registrations are removed with it.
func (s *eventService) DeleteEvent(ctx context.Context, eventID, actorID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.getOwned(ctx, eventID, actorID); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
