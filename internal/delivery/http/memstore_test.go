package http

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"orgevents/internal/domain"
)

// memStore backs the in-memory repositories used by the router tests.
type memStore struct {
	mu         sync.Mutex
	users      map[string]*domain.User
	userRoles  map[string][]string
	roles      map[string]string // name -> id
	eventTypes map[string]string // name -> id
	events     map[string]*domain.Event
	regs       []*domain.Registration
}

func newMemStore() *memStore {
	return &memStore{
		users:      make(map[string]*domain.User),
		userRoles:  make(map[string][]string),
		roles:      make(map[string]string),
		eventTypes: make(map[string]string),
		events:     make(map[string]*domain.Event),
	}
}

func (s *memStore) userCopy(u *domain.User) *domain.User {
	cp := *u
	cp.Roles = append([]string(nil), s.userRoles[u.ID]...)
	sort.Strings(cp.Roles)
	return &cp
}

func ensureNames(m map[string]string, names []string) int {
	inserted := 0
	for _, n := range names {
		if _, ok := m[n]; !ok {
			m[n] = uuid.NewString()
			inserted++
		}
	}
	return inserted
}

type memUsers struct{ *memStore }

func (s memUsers) Create(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s memUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return s.userCopy(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s memUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.userCopy(u), nil
}

func (s memUsers) List(ctx context.Context) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, s.userCopy(u))
	}
	return out, nil
}

func (s memUsers) ListByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, s.userCopy(u))
		}
	}
	return out, nil
}

func (s memUsers) Update(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for id, existing := range s.users {
		if id != u.ID && existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	cp := *u
	cp.Roles = nil
	s.users[u.ID] = &cp
	return nil
}

func (s memUsers) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, id)
	delete(s.userRoles, id)
	kept := s.regs[:0]
	for _, r := range s.regs {
		if r.UserID != id {
			kept = append(kept, r)
		}
	}
	s.regs = kept
	return nil
}

func (s memUsers) AssignRole(ctx context.Context, userID, roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, id := range s.roles {
		if id == roleID {
			s.userRoles[userID] = append(s.userRoles[userID], name)
			return nil
		}
	}
	return domain.ErrInvalidReference
}

type memRoles struct{ *memStore }

func (s memRoles) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.roles[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return domain.NewRole(id, name), nil
}

func (s memRoles) ListByNames(ctx context.Context, names []string) ([]*domain.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Role
	for _, n := range names {
		if id, ok := s.roles[n]; ok {
			out = append(out, domain.NewRole(id, n))
		}
	}
	return out, nil
}

func (s memRoles) ListByUserID(ctx context.Context, userID string) ([]*domain.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Role
	for _, n := range s.userRoles[userID] {
		out = append(out, domain.NewRole(s.roles[n], n))
	}
	return out, nil
}

func (s memRoles) EnsureNames(ctx context.Context, names []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ensureNames(s.roles, names), nil
}

func (s memRoles) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.roles)), nil
}

type memEventTypes struct{ *memStore }

func (s memEventTypes) GetByName(ctx context.Context, name string) (*domain.EventType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.eventTypes[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.EventType{ID: id, Name: name}, nil
}

func (s memEventTypes) EnsureNames(ctx context.Context, names []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ensureNames(s.eventTypes, names), nil
}

func (s memEventTypes) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.eventTypes)), nil
}

type memEvents struct{ *memStore }

func (s memEvents) Create(ctx context.Context, e *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = uuid.NewString()
	cp := *e
	s.events[e.ID] = &cp
	return nil
}

func (s memEvents) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (s memEvents) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Event
	for _, e := range s.events {
		if f.Date != "" && e.Date != f.Date {
			continue
		}
		if f.Location != "" && e.Location != f.Location {
			continue
		}
		if f.EventTypeID != "" && e.EventTypeID != f.EventTypeID {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (s memEvents) ListByIDs(ctx context.Context, ids []string) ([]*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Event
	for _, id := range ids {
		if e, ok := s.events[id]; ok {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s memEvents) CountByCreator(ctx context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.events {
		if e.CreatedBy == userID {
			n++
		}
	}
	return n, nil
}

func (s memEvents) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&e.Title, upd.Title)
	set(&e.Description, upd.Description)
	set(&e.Date, upd.Date)
	set(&e.Time, upd.Time)
	set(&e.Location, upd.Location)
	if upd.EventTypeID != nil {
		e.EventTypeID = *upd.EventTypeID
		for name, typeID := range s.eventTypes {
			if typeID == e.EventTypeID {
				e.EventType = name
			}
		}
	}
	cp := *e
	return &cp, nil
}

func (s memEvents) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.events, id)
	kept := s.regs[:0]
	for _, r := range s.regs {
		if r.EventID != id {
			kept = append(kept, r)
		}
	}
	s.regs = kept
	return nil
}

type memRegistrations struct{ *memStore }

func (s memRegistrations) Create(ctx context.Context, reg *domain.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.regs {
		if r.UserID == reg.UserID && r.EventID == reg.EventID {
			return domain.ErrConflict
		}
	}
	reg.ID = uuid.NewString()
	cp := *reg
	s.regs = append(s.regs, &cp)
	return nil
}

func (s memRegistrations) GetByUserAndEvent(ctx context.Context, userID, eventID string) (*domain.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.regs {
		if r.UserID == userID && r.EventID == eventID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s memRegistrations) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Registration
	for _, r := range s.regs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s memRegistrations) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Registration
	for _, r := range s.regs {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s memRegistrations) Delete(ctx context.Context, userID, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.regs {
		if r.UserID == userID && r.EventID == eventID {
			s.regs = append(s.regs[:i], s.regs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
