package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/identity-hub/identity-api/internal/api/metrics"
	"github.com/identity-hub/identity-api/internal/core/domain"
	"github.com/identity-hub/identity-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService persisting events to repo.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record persists a single lifecycle event to the audit trail.
func (s *auditService) Record(ctx context.Context, in ports.AuditEventInput) error {
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	event := &domain.AuditEvent{
		UserID:    in.UserID,
		Action:    in.Action,
		Actor:     in.Actor,
		Timestamp: ts,
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}

	metrics.AuditEventsTotal.WithLabelValues(in.Action).Inc()
	s.log.Debug().
		Str("user_id", in.UserID).
		Str("action", in.Action).
		Msg("audit event recorded")

	return nil
}

// History returns the most recent events for a user, newest first.
func (s *auditService) History(ctx context.Context, userID string, limit int) ([]*domain.AuditEvent, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}
