package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	// GetByIdentifier matches identifier against email or username.
	GetByIdentifier(ctx context.Context, identifier string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id int64) error
}

// User represents a stored user with authentication material.
// GUID is the public identifier exposed by the API; the numeric ID is
// used internally for ownership scoping.
type User struct {
	ID           int64
	GUID         uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sanitized returns a copy of the user with the password hash removed.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// CreateUserParams contains parameters to register a user.
type CreateUserParams struct {
	Username string
	Email    string
	Password string
}

// UpdateUserParams contains optional profile changes. Nil fields are
// left untouched.
type UpdateUserParams struct {
	UserID   int64
	Username *string
	Email    *string
}

// PasswordHasher produces and verifies salted one-way password digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches digest. A missing or
	// malformed digest verifies as false, never as an error.
	Verify(password, digest string) bool
}
