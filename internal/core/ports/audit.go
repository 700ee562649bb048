package ports

import (
	"context"
	"time"

	"github.com/identity-hub/identity-api/internal/core/domain"
)

// AuditEventInput is the DTO handed from services to the audit pipeline.
type AuditEventInput struct {
	UserID    string
	Action    string
	Actor     string
	Timestamp time.Time
}

// AuditService persists and serves user lifecycle events.
type AuditService interface {
	Record(ctx context.Context, event AuditEventInput) error
	// History returns the most recent events for a user, newest first.
	History(ctx context.Context, userID string, limit int) ([]*domain.AuditEvent, error)
}

// AuditRepository defines persistence for the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	// ListByUser returns the most recent events for a user, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.AuditEvent, error)
}
