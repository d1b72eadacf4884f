package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// Role names known to the system.
const (
	RoleOrganizer = "organizer"
	RoleAssistant = "assistant"
)

// DefaultRoles is the fixed set of roles seeded at startup.
var DefaultRoles = []string{RoleAssistant, RoleOrganizer}

// User represents a registered user. PasswordHash is never serialized.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(name, email, passwordHash string, createdAt, updatedAt time.Time) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// Role represents an application role (organizer, assistant).
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewRole returns a new Role with the given id and name.
func NewRole(id, name string) *Role {
	return &Role{ID: id, Name: name}
}

// UserPatch holds optional profile changes. Nil fields are left unchanged.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
}

// PasswordHasher hashes and verifies passwords.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (hash string, err error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, roles []string) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
// Implementations return ErrTokenExpired or ErrTokenInvalid.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	ListByIDs(ctx context.Context, ids []string) ([]*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
	AssignRole(ctx context.Context, userID, roleID string) error
}

// RoleRepository defines the interface for role storage.
type RoleRepository interface {
	GetByName(ctx context.Context, name string) (*Role, error)
	ListByNames(ctx context.Context, names []string) ([]*Role, error)
	ListByUserID(ctx context.Context, userID string) ([]*Role, error)
	EnsureNames(ctx context.Context, names []string) (inserted int, err error)
	Count(ctx context.Context) (int64, error)
}

// UserService defines the business logic for accounts and authentication.
type UserService interface {
	SignUp(ctx context.Context, name, email, password string, roles []string) (*User, error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, actorID, id string, patch UserPatch) (*User, error)
	Delete(ctx context.Context, id string) error
}

// Authenticator turns an Authorization header into the acting user's ID.
type Authenticator interface {
	Authenticate(authorizationHeader string) (userID string, err error)
}

// Authorizer decides whether an authenticated user may perform an action.
type Authorizer interface {
	// RequireRole returns nil if the user holds any of the roles, ErrUserNotFound if
	// the user no longer exists, and ErrForbidden otherwise.
	RequireRole(ctx context.Context, userID string, roles ...string) error
	// RequireOwnership returns nil if userID created the resource, ErrForbidden otherwise.
	RequireOwnership(userID, createdBy string) error
}
