package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/identity-hub/identity-api/internal/core/domain"
)

type stubTokenService struct {
	issueFn func(ctx context.Context, userID string) (string, *domain.User, error)
}

func (s *stubTokenService) Issue(ctx context.Context, userID string) (string, *domain.User, error) {
	return s.issueFn(ctx, userID)
}

func TestTokenHandler_Issue_Success(t *testing.T) {
	stub := &stubTokenService{
		issueFn: func(ctx context.Context, userID string) (string, *domain.User, error) {
			return "signed-token", &domain.User{ID: userID, Name: "Alice", Email: "a@b.com", Role: domain.RoleUser}, nil
		},
	}
	h := NewTokenHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v2/tokens", `{"user_id":"u1"}`)
	if err := h.Issue(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp issueTokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "signed-token" || resp.User.ID != "u1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestTokenHandler_Issue_MissingUserID(t *testing.T) {
	stub := &stubTokenService{
		issueFn: func(ctx context.Context, userID string) (string, *domain.User, error) {
			t.Fatalf("service should not be called")
			return "", nil, nil
		},
	}
	h := NewTokenHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v2/tokens", `{}`)
	err := h.Issue(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestTokenHandler_Issue_UnknownUser(t *testing.T) {
	stub := &stubTokenService{
		issueFn: func(ctx context.Context, userID string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserNotFound
		},
	}
	h := NewTokenHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v2/tokens", `{"user_id":"missing"}`)
	if err := h.Issue(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}
