package ports

import (
	"context"

	"github.com/identity-hub/identity-api/internal/core/domain"
)

// CreateUserInput carries all data needed to create a new user.
type CreateUserInput struct {
	Name  string
	Email string
	// Role is the requested role tag; empty means "user".
	Role string
	// AdminKey must accompany a request for the admin role.
	AdminKey string
	// Config optionally seeds the user's preferences at creation time.
	Config *domain.UserConfig
}

// ListUsersInput carries the parameters for the list endpoint.
type ListUsersInput struct {
	Role  string
	Page  int
	Limit int
}

// ListUsersResult is a single page of users plus the total match count.
type ListUsersResult struct {
	Users []*domain.User
	Total int64
	Page  int
	Limit int
}

// UserService defines use-case operations on user records.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	CreateGuest(ctx context.Context) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersResult, error)

	GetConfig(ctx context.Context, userID string) (*domain.UserConfig, error)
	SaveConfig(ctx context.Context, userID string, cfg domain.UserConfig) error

	// Validate yields the accept/reject verdict for an untyped candidate
	// mapping. Pure: no side effects beyond a metrics counter.
	Validate(data map[string]any) bool
}
