package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/identity-hub/identity-api/internal/core/domain"
)

type stubProfileService struct {
	getFn func(ctx context.Context, userID string) (*domain.Profile, error)
}

func (s *stubProfileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.getFn(ctx, userID)
}

func TestProfileHandler_Get_Success(t *testing.T) {
	stub := &stubProfileService{
		getFn: func(ctx context.Context, userID string) (*domain.Profile, error) {
			return &domain.Profile{ID: userID, Name: "Test User", Email: "test@example.com"}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v2/users/u1/profile", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "u1" {
		t.Fatalf("expected id echoed back, got %q", resp.ID)
	}
}

func TestProfileHandler_Get_Absent(t *testing.T) {
	stub := &stubProfileService{
		getFn: func(ctx context.Context, userID string) (*domain.Profile, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewProfileHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/v2/users/invalid/profile", "")
	c.SetParamNames("id")
	c.SetParamValues("invalid")

	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}
