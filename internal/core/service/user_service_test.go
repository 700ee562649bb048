package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/identity-hub/identity-api/internal/core/domain"
	"github.com/identity-hub/identity-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	configs   map[string]domain.UserConfig
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    make(map[string]*domain.User),
		configs: make(map[string]domain.UserConfig),
	}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	// Email uniqueness covers only non-guest records, mirroring the partial
	// unique index: guests all share the fixed guest address.
	if user.Role != domain.RoleGuest {
		for _, u := range r.byID {
			if u.Role != domain.RoleGuest && u.Email == user.Email {
				return domain.ErrUserExists
			}
		}
	}
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, f ports.ListUsersFilter) ([]*domain.User, int64, error) {
	var matched []*domain.User
	for _, u := range r.byID {
		if f.Role != "" && string(u.Role) != f.Role {
			continue
		}
		clone := *u
		matched = append(matched, &clone)
	}
	return matched, int64(len(matched)), nil
}

func (r *stubUserRepo) SaveConfig(_ context.Context, userID string, cfg domain.UserConfig) error {
	r.configs[userID] = cfg
	return nil
}

func (r *stubUserRepo) FindConfig(_ context.Context, userID string) (*domain.UserConfig, error) {
	cfg, ok := r.configs[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &cfg, nil
}

// stubDispatcher records enqueued audit events synchronously.
type stubDispatcher struct {
	events []ports.AuditEventInput
}

func (d *stubDispatcher) Enqueue(event ports.AuditEventInput) {
	d.events = append(d.events, event)
}

var discardLogger = zerolog.Nop()

func adminKeyHash(t *testing.T, key string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

// ---------------------------------------------------------------------------
// CreateUser
// ---------------------------------------------------------------------------

func TestUserService_CreateUser_Success(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubDispatcher{}
	svc := NewUserService(repo, audit, "", discardLogger)

	user, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name:  "Alice",
		Email: "alice@example.com",
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	if len(audit.events) != 1 || audit.events[0].Action != domain.ActionUserCreated {
		t.Fatalf("expected one user_created audit event, got %+v", audit.events)
	}
	if audit.events[0].UserID != user.ID {
		t.Fatalf("audit event references wrong user")
	}
}

func TestUserService_CreateUser_InvalidData(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), &stubDispatcher{}, "", discardLogger)

	cases := []ports.CreateUserInput{
		{Name: "A", Email: "a@b.com"},            // name too short
		{Name: "Al", Email: "nodomain"},          // no @
		{Name: "Al", Email: "a@b.com", Role: "superuser"}, // role outside closed set
		{Name: "Al", Email: "a@b.com", Role: "admin"},     // admin without key
	}
	for _, in := range cases {
		if _, err := svc.CreateUser(context.Background(), in); !errors.Is(err, domain.ErrInvalidUser) {
			t.Fatalf("input %+v: expected ErrInvalidUser, got %v", in, err)
		}
	}
}

func TestUserService_CreateUser_AdminKey(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubDispatcher{}, adminKeyHash(t, "letmein"), discardLogger)

	if _, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name: "Root", Email: "root@example.com", Role: "admin", AdminKey: "wrong",
	}); !errors.Is(err, domain.ErrInvalidAdminKey) {
		t.Fatalf("expected ErrInvalidAdminKey for wrong key, got %v", err)
	}

	user, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name: "Root", Email: "root@example.com", Role: "admin", AdminKey: "letmein",
	})
	if err != nil {
		t.Fatalf("expected admin creation to succeed, got %v", err)
	}
	if !user.IsAdmin() {
		t.Fatalf("expected admin role, got %s", user.Role)
	}
}

func TestUserService_CreateUser_AdminDisabledWithoutHash(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), &stubDispatcher{}, "", discardLogger)

	if _, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name: "Root", Email: "root@example.com", Role: "admin", AdminKey: "anything",
	}); !errors.Is(err, domain.ErrInvalidAdminKey) {
		t.Fatalf("expected ErrInvalidAdminKey when no hash configured, got %v", err)
	}
}

func TestUserService_CreateUser_Duplicate(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), &stubDispatcher{}, "", discardLogger)

	if _, err := svc.CreateGuest(context.Background()); err != nil {
		t.Fatalf("guest creation failed: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), ports.CreateUserInput{Name: "Al", Email: "a@b.com"}); err != nil {
		t.Fatalf("first creation failed: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), ports.CreateUserInput{Name: "Bo", Email: "a@b.com"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_CreateUser_SeedsConfig(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubDispatcher{}, "", discardLogger)

	user, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name:   "Al",
		Email:  "a@b.com",
		Config: &domain.UserConfig{Theme: "dark", Language: "en", Notifications: true},
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}

	cfg, err := svc.GetConfig(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetConfig returned error: %v", err)
	}
	if cfg.Theme != "dark" || cfg.Language != "en" || !cfg.Notifications {
		t.Fatalf("unexpected seeded config: %+v", cfg)
	}
}

// ---------------------------------------------------------------------------
// CreateGuest
// ---------------------------------------------------------------------------

func TestUserService_CreateGuest(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubDispatcher{}
	svc := NewUserService(repo, audit, "", discardLogger)

	a, err := svc.CreateGuest(context.Background())
	if err != nil {
		t.Fatalf("CreateGuest returned error: %v", err)
	}
	b, err := svc.CreateGuest(context.Background())
	if err != nil {
		t.Fatalf("second CreateGuest returned error: %v", err)
	}

	if a.ID == b.ID {
		t.Fatalf("guests share an id: %s", a.ID)
	}
	if a.Name != b.Name || a.Email != b.Email || a.Role != b.Role {
		t.Fatalf("guest attributes differ: %+v vs %+v", a, b)
	}
	if len(audit.events) != 2 || audit.events[0].Action != domain.ActionGuestCreated {
		t.Fatalf("expected guest_created audit events, got %+v", audit.events)
	}
}

// ---------------------------------------------------------------------------
// Lookup / list / config / validate
// ---------------------------------------------------------------------------

func TestUserService_GetUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubDispatcher{}, "", discardLogger)

	created, _ := svc.CreateUser(context.Background(), ports.CreateUserInput{Name: "Al", Email: "a@b.com"})

	got, err := svc.GetUser(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetUser returned error: %v", err)
	}
	if got.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := svc.GetUser(context.Background(), ""); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for empty id, got %v", err)
	}
	if _, err := svc.GetUser(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ListUsers_ClampsPaging(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubDispatcher{}, "", discardLogger)

	_, _ = svc.CreateGuest(context.Background())

	result, err := svc.ListUsers(context.Background(), ports.ListUsersInput{Page: -3, Limit: 10_000})
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if result.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", result.Page)
	}
	if result.Limit != maxListLimit {
		t.Fatalf("expected limit clamped to %d, got %d", maxListLimit, result.Limit)
	}
	if result.Total != 1 || len(result.Users) != 1 {
		t.Fatalf("unexpected result: total=%d users=%d", result.Total, len(result.Users))
	}
}

func TestUserService_SaveConfig_UnknownUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), &stubDispatcher{}, "", discardLogger)

	err := svc.SaveConfig(context.Background(), "missing", domain.UserConfig{Theme: "dark"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Validate_Passthrough(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), &stubDispatcher{}, "", discardLogger)

	if !svc.Validate(map[string]any{"name": "Al", "email": "a@b.com"}) {
		t.Fatalf("expected accept verdict")
	}
	if svc.Validate(map[string]any{}) {
		t.Fatalf("expected reject verdict for empty mapping")
	}
}
