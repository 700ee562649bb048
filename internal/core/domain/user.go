package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// UserRole is the closed set of roles a user can hold.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)

// IsValid reports whether r is one of the three known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

func (r UserRole) String() string {
	return string(r)
}

// Reference constants surfaced to callers (startup log, health endpoint).
// Neither is enforced by the core.
const (
	MaxUsers   = 1000
	APIVersion = "v2"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidUser = errors.New("invalid user data")
var ErrInvalidAdminKey = errors.New("invalid admin key")

// User is an immutable identity record. No field is reassigned after
// construction; callers treat values as read-only.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// DisplayName returns the user's name followed by its role tag,
// e.g. "Guest (guest)".
func (u User) DisplayName() string {
	return fmt.Sprintf("%s (%s)", u.Name, u.Role)
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NewID returns a fresh opaque user identifier.
func NewID() string {
	return uuid.NewString()
}

// NewGuest builds a guest user with a freshly generated identifier and
// fixed guest attributes.
func NewGuest() User {
	return User{
		ID:    NewID(),
		Name:  "Guest",
		Email: "guest@example.com",
		Role:  RoleGuest,
	}
}
