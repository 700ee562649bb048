// Package client contains outbound collaborator clients. The profile client
// here is the test double for the real remote user-data service: it keeps the
// boundary contract (delay, absence sentinel, populated record) without any
// network dependency.
package client

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/identity-hub/identity-api/internal/core/domain"
)

const defaultFetchDelay = 100 * time.Millisecond

// SentinelInvalid is the only identifier guaranteed to resolve to absence.
const SentinelInvalid = "invalid"

// ProfileClient simulates the remote user-data lookup. The caller suspends
// for the configured delay (honouring ctx), then receives either a populated
// record echoing the requested id or domain.ErrUserNotFound for the sentinel.
type ProfileClient struct {
	delay time.Duration
	log   zerolog.Logger
}

// NewProfileClient creates a ProfileClient. delay <= 0 selects the default
// simulated network delay.
func NewProfileClient(delay time.Duration, log zerolog.Logger) *ProfileClient {
	if delay <= 0 {
		delay = defaultFetchDelay
	}
	return &ProfileClient{delay: delay, log: log}
}

// Fetch implements ports.ProfileFetcher.
func (c *ProfileClient) Fetch(ctx context.Context, userID string) (*domain.Profile, error) {
	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	if userID == SentinelInvalid {
		c.log.Debug().Str("user_id", userID).Msg("remote profile absent")
		return nil, domain.ErrUserNotFound
	}

	return &domain.Profile{
		ID:    userID,
		Name:  "Test User",
		Email: "test@example.com",
	}, nil
}
