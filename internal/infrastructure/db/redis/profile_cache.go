package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/identity-hub/identity-api/internal/core/domain"
)

const profileTTL = 5 * time.Minute

// ProfileCache caches remote profile records in Redis as JSON.
// Key format: profile:<user_id>
type ProfileCache struct {
	client *redis.Client
}

// NewProfileCache creates a ProfileCache wrapping the given Redis client.
func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

// Get returns the cached profile, or (nil, nil) on a miss.
func (c *ProfileCache) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("profile cache get: %w", err)
	}

	var profile domain.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("profile cache decode: %w", err)
	}
	return &profile, nil
}

// Set stores the profile with a fixed TTL.
func (c *ProfileCache) Set(ctx context.Context, userID string, profile *domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("profile cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(userID), raw, profileTTL).Err()
}

func (c *ProfileCache) key(userID string) string {
	return "profile:" + userID
}
