package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"orgevents/internal/domain"
)

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	byID        map[string]*domain.User
	nextID      int
	getErr      error
	assignErr   error
	updateCalls int
	deleteCalls int
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: make(map[string]*domain.User), nextID: 1}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.nextID++
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) ListByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	f.updateCalls++
	if _, ok := f.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for _, existing := range f.byID {
		if existing.ID != u.ID && existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	f.deleteCalls++
	if _, ok := f.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) AssignRole(ctx context.Context, userID, roleID string) error {
	if f.assignErr != nil {
		return f.assignErr
	}
	return nil
}

// fakeRoleRepo implements domain.RoleRepository for tests.
type fakeRoleRepo struct {
	byName    map[string]*domain.Role
	listByUID map[string][]*domain.Role
	countErr  error
}

func newFakeRoleRepo(names ...string) *fakeRoleRepo {
	f := &fakeRoleRepo{
		byName:    make(map[string]*domain.Role),
		listByUID: make(map[string][]*domain.Role),
	}
	for _, n := range names {
		f.byName[n] = domain.NewRole("role-"+n, n)
	}
	return f
}

func (f *fakeRoleRepo) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	if r, ok := f.byName[name]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRoleRepo) ListByNames(ctx context.Context, names []string) ([]*domain.Role, error) {
	var out []*domain.Role
	for _, n := range names {
		if r, ok := f.byName[n]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoleRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Role, error) {
	return f.listByUID[userID], nil
}

func (f *fakeRoleRepo) EnsureNames(ctx context.Context, names []string) (int, error) {
	inserted := 0
	for _, n := range names {
		if _, ok := f.byName[n]; !ok {
			f.byName[n] = domain.NewRole("role-"+n, n)
			inserted++
		}
	}
	return inserted, nil
}

func (f *fakeRoleRepo) Count(ctx context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.byName)), nil
}

// fakeEventTypeRepo implements domain.EventTypeRepository for tests.
type fakeEventTypeRepo struct {
	byName map[string]*domain.EventType
}

func newFakeEventTypeRepo(names ...string) *fakeEventTypeRepo {
	f := &fakeEventTypeRepo{byName: make(map[string]*domain.EventType)}
	for _, n := range names {
		f.byName[n] = &domain.EventType{ID: "type-" + n, Name: n}
	}
	return f
}

func (f *fakeEventTypeRepo) GetByName(ctx context.Context, name string) (*domain.EventType, error) {
	if et, ok := f.byName[name]; ok {
		return et, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventTypeRepo) EnsureNames(ctx context.Context, names []string) (int, error) {
	inserted := 0
	for _, n := range names {
		if _, ok := f.byName[n]; !ok {
			f.byName[n] = &domain.EventType{ID: "type-" + n, Name: n}
			inserted++
		}
	}
	return inserted, nil
}

func (f *fakeEventTypeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byName)), nil
}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID        map[string]*domain.Event
	nextID      int
	err         error // if set, Create returns this error
	lastFilter  domain.EventFilter
	updateCalls int
	deleteCalls int
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{byID: make(map[string]*domain.Event), nextID: 1}
	for _, e := range events {
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	f.lastFilter = filter
	var out []*domain.Event
	for _, e := range f.byID {
		if filter.Date != "" && e.Date != filter.Date {
			continue
		}
		if filter.Location != "" && e.Location != filter.Location {
			continue
		}
		if filter.EventTypeID != "" && e.EventTypeID != filter.EventTypeID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventRepo) ListByIDs(ctx context.Context, ids []string) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(ids))
	for _, id := range ids {
		if e, ok := f.byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) CountByCreator(ctx context.Context, userID string) (int, error) {
	n := 0
	for _, e := range f.byID {
		if e.CreatedBy == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	f.updateCalls++
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.Date != nil {
		e.Date = *upd.Date
	}
	if upd.Time != nil {
		e.Time = *upd.Time
	}
	if upd.Location != nil {
		e.Location = *upd.Location
	}
	if upd.EventTypeID != nil {
		e.EventTypeID = *upd.EventTypeID
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	f.deleteCalls++
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeRegistrationRepo is an in-memory RegistrationRepository that enforces
// uniqueness on (user, event) the way the database does.
type fakeRegistrationRepo struct {
	regs        []*domain.Registration
	nextID      int
	createCalls int
	// raceWinner, if set, is stored just before Create runs to simulate a concurrent insert.
	raceWinner *domain.Registration
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{nextID: 1}
}

func (f *fakeRegistrationRepo) find(userID, eventID string) *domain.Registration {
	for _, r := range f.regs {
		if r.UserID == userID && r.EventID == eventID {
			return r
		}
	}
	return nil
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	f.createCalls++
	if f.raceWinner != nil {
		f.regs = append(f.regs, f.raceWinner)
		f.raceWinner = nil
	}
	if f.find(reg.UserID, reg.EventID) != nil {
		return domain.ErrConflict
	}
	reg.ID = fmt.Sprintf("reg-%d", f.nextID)
	f.nextID++
	f.regs = append(f.regs, reg)
	return nil
}

func (f *fakeRegistrationRepo) GetByUserAndEvent(ctx context.Context, userID, eventID string) (*domain.Registration, error) {
	if r := f.find(userID, eventID); r != nil {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRegistrationRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	out := []*domain.Registration{}
	for _, r := range f.regs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRegistrationRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	out := []*domain.Registration{}
	for _, r := range f.regs {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRegistrationRepo) Delete(ctx context.Context, userID, eventID string) error {
	for i, r := range f.regs {
		if r.UserID == userID && r.EventID == eventID {
			f.regs = append(f.regs[:i], f.regs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct{}

func (fakePasswordHasher) Hash(password string) (string, error) { return "hash-" + password, nil }

func (fakePasswordHasher) Compare(hash, password string) error {
	if hash != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err       error
	lastRoles []string
}

func (f *fakeTokenIssuer) Issue(userID, email string, roles []string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastRoles = roles
	return "token-" + userID, nil
}
