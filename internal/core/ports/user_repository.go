package ports

import (
	"context"

	"github.com/identity-hub/identity-api/internal/core/domain"
)

// ListUsersFilter carries the query parameters for listing users.
type ListUsersFilter struct {
	Role  string // optional: filter by role tag
	Page  int    // 1-based
	Limit int    // max rows per page (capped by the service)
}

// UserRepository defines persistence operations for user records and their
// per-user configuration.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns a page of users matching filter and the total count.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)

	SaveConfig(ctx context.Context, userID string, cfg domain.UserConfig) error
	FindConfig(ctx context.Context, userID string) (*domain.UserConfig, error)
}
