package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"orgevents/internal/delivery/http/helpers"
	"orgevents/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	testUUID  = "7a1c4a52-6c0e-4f0b-9a57-2f7b6f4f8f10"
	otherUUID = "b1f6e3a0-2d4c-4e8b-8f1a-9c0d2e3f4a5b"
)

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) (helpers.APIResponse, json.RawMessage) {
	t.Helper()
	var raw struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
	return helpers.APIResponse{Error: raw.Error}, raw.Data
}

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	user      *domain.User
	users     []*domain.User
	token     string
	err       error
	calls     int
	lastName  string
	lastEmail string
	lastPass  string
	lastRoles []string
	lastActor string
	lastID    string
	lastPatch domain.UserPatch
}

func (f *fakeUserService) SignUp(ctx context.Context, name, email, password string, roles []string) (*domain.User, error) {
	f.calls++
	f.lastName, f.lastEmail, f.lastPass, f.lastRoles = name, email, password, roles
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	f.calls++
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.user, nil
}

func (f *fakeUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	f.calls++
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserService) List(ctx context.Context) ([]*domain.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func (f *fakeUserService) Update(ctx context.Context, actorID, id string, patch domain.UserPatch) (*domain.User, error) {
	f.calls++
	f.lastActor, f.lastID, f.lastPatch = actorID, id, patch
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserService) Delete(ctx context.Context, id string) error {
	f.calls++
	f.lastID = id
	return f.err
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	event      *domain.Event
	events     []*domain.Event
	err        error
	calls      int
	lastInput  domain.EventInput
	lastFilter domain.EventFilter
	lastPatch  domain.EventPatch
	lastActor  string
	lastID     string
}

func (f *fakeEventService) CreateEvent(ctx context.Context, input domain.EventInput, creatorID string) (*domain.Event, error) {
	f.calls++
	f.lastInput, f.lastActor = input, creatorID
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func (f *fakeEventService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	f.calls++
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeEventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	f.calls++
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, id string, patch domain.EventPatch, actorID string) (*domain.Event, error) {
	f.calls++
	f.lastID, f.lastPatch, f.lastActor = id, patch, actorID
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id, actorID string) error {
	f.calls++
	f.lastID, f.lastActor = id, actorID
	return f.err
}

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	reg       *domain.Registration
	created   bool
	events    []*domain.Event
	users     []*domain.User
	err       error
	calls     int
	lastUser  string
	lastEvent string
}

func (f *fakeRegistrationService) Register(ctx context.Context, userID, eventID string) (*domain.Registration, bool, error) {
	f.calls++
	f.lastUser, f.lastEvent = userID, eventID
	if f.err != nil {
		return nil, false, f.err
	}
	return f.reg, f.created, nil
}

func (f *fakeRegistrationService) Unregister(ctx context.Context, userID, eventID string) error {
	f.calls++
	f.lastUser, f.lastEvent = userID, eventID
	return f.err
}

func (f *fakeRegistrationService) ListForUser(ctx context.Context, userID string) ([]*domain.Event, error) {
	f.calls++
	f.lastUser = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeRegistrationService) ListAttendees(ctx context.Context, eventID string) ([]*domain.User, error) {
	f.calls++
	f.lastEvent = eventID
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}
