package ports

import (
	"context"

	"github.com/identity-hub/identity-api/internal/core/domain"
)

// ProfileFetcher abstracts the remote user-data client. Implementations
// return domain.ErrUserNotFound to signal absence, which is distinct from a
// transport failure.
type ProfileFetcher interface {
	Fetch(ctx context.Context, userID string) (*domain.Profile, error)
}

// ProfileService serves profile lookups, typically with a cache in front of
// the remote fetcher.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}
