package ports

import (
	"context"

	"github.com/identity-hub/identity-api/internal/core/domain"
)

// TokenService mints informational identity assertions for existing users.
// Nothing in this service enforces the tokens: the role claim is carried as
// data, not as an access-control decision.
type TokenService interface {
	Issue(ctx context.Context, userID string) (string, *domain.User, error)
}
