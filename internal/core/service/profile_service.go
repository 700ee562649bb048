package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/identity-hub/identity-api/internal/api/metrics"
	"github.com/identity-hub/identity-api/internal/core/domain"
	"github.com/identity-hub/identity-api/internal/core/ports"
)

// ProfileCache abstracts the cache in front of the remote fetcher (Redis).
// Get returns (nil, nil) on a cache miss.
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Set(ctx context.Context, userID string, profile *domain.Profile) error
}

type profileService struct {
	fetcher ports.ProfileFetcher
	cache   ProfileCache
	log     zerolog.Logger
}

// NewProfileService returns a cache-aside ProfileService. cache may be nil,
// in which case every lookup goes to the remote fetcher.
func NewProfileService(fetcher ports.ProfileFetcher, cache ProfileCache, log zerolog.Logger) ports.ProfileService {
	return &profileService{fetcher: fetcher, cache: cache, log: log}
}

// GetProfile serves the profile from cache when possible, falling back to the
// remote fetcher. Absence is never cached: a user created after a miss must
// become visible on the next lookup.
func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("user_id", userID).Msg("profile cache read failed, fetching anyway")
		case cached != nil:
			metrics.ProfileCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.ProfileCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	start := time.Now()
	profile, err := s.fetcher.Fetch(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.ProfileFetchDuration.WithLabelValues("absent").Observe(time.Since(start).Seconds())
			return nil, err
		}
		metrics.ProfileFetchDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	metrics.ProfileFetchDuration.WithLabelValues("found").Observe(time.Since(start).Seconds())

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, profile); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to cache profile")
		}
	}

	return profile, nil
}
