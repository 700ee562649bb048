package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/identity-hub/identity-api/internal/core/domain"
	"github.com/identity-hub/identity-api/internal/core/ports"
)

type stubAuditRepo struct {
	events    []*domain.AuditEvent
	insertErr error
}

func (r *stubAuditRepo) Insert(_ context.Context, event *domain.AuditEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.events = append(r.events, event)
	return nil
}

func (r *stubAuditRepo) ListByUser(_ context.Context, userID string, limit int) ([]*domain.AuditEvent, error) {
	var matched []*domain.AuditEvent
	for _, e := range r.events {
		if e.UserID == userID {
			matched = append(matched, e)
		}
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func TestAuditService_Record(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, discardLogger)

	err := svc.Record(context.Background(), ports.AuditEventInput{
		UserID: "u1",
		Action: domain.ActionUserCreated,
	})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected one persisted event, got %d", len(repo.events))
	}
	if repo.events[0].Timestamp.IsZero() {
		t.Fatalf("expected zero timestamp to be filled in")
	}
}

func TestAuditService_Record_InsertFailure(t *testing.T) {
	repo := &stubAuditRepo{insertErr: errors.New("mongo down")}
	svc := NewAuditService(repo, discardLogger)

	err := svc.Record(context.Background(), ports.AuditEventInput{
		UserID:    "u1",
		Action:    domain.ActionUserCreated,
		Timestamp: time.Now(),
	})
	if err == nil {
		t.Fatalf("expected error when insert fails")
	}
}

func TestAuditService_History(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, discardLogger)

	for _, action := range []string{domain.ActionUserCreated, domain.ActionConfigSaved} {
		if err := svc.Record(context.Background(), ports.AuditEventInput{UserID: "u1", Action: action}); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}
	_ = svc.Record(context.Background(), ports.AuditEventInput{UserID: "other", Action: domain.ActionGuestCreated})

	events, err := svc.History(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events for u1, got %d", len(events))
	}
}
