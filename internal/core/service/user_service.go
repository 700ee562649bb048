package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/identity-hub/identity-api/internal/api/metrics"
	"github.com/identity-hub/identity-api/internal/core/domain"
	"github.com/identity-hub/identity-api/internal/core/ports"
)

// AuditDispatcher is the interface services use to hand lifecycle events to
// the asynchronous audit pipeline.
type AuditDispatcher interface {
	Enqueue(event ports.AuditEventInput)
}

const maxListLimit = 100

type userService struct {
	repo         ports.UserRepository
	audit        AuditDispatcher
	adminKeyHash string
	log          zerolog.Logger
}

// NewUserService returns a UserService backed by repo. adminKeyHash is the
// bcrypt hash the admin key of incoming admin-creation requests is verified
// against; when empty, admin creation is always refused.
func NewUserService(repo ports.UserRepository, audit AuditDispatcher, adminKeyHash string, log zerolog.Logger) ports.UserService {
	return &userService{
		repo:         repo,
		audit:        audit,
		adminKeyHash: adminKeyHash,
		log:          log,
	}
}

// CreateUser validates the candidate data, verifies the admin key when the
// admin role is requested, and persists a new immutable user record.
func (s *userService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	// Run the request through the same verdict function external callers
	// use, so typed and untyped creation paths cannot drift apart.
	candidate := map[string]any{
		"name":  in.Name,
		"email": in.Email,
	}
	if in.Role != "" {
		candidate["role"] = in.Role
	}
	if in.AdminKey != "" {
		candidate["admin_key"] = in.AdminKey
	}
	if !s.Validate(candidate) {
		return nil, domain.ErrInvalidUser
	}

	role := domain.RoleUser
	if in.Role != "" {
		role = domain.UserRole(in.Role)
	}
	if role == domain.RoleAdmin {
		if s.adminKeyHash == "" ||
			bcrypt.CompareHashAndPassword([]byte(s.adminKeyHash), []byte(in.AdminKey)) != nil {
			return nil, domain.ErrInvalidAdminKey
		}
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user := &domain.User{
		ID:    domain.NewID(),
		Name:  in.Name,
		Email: in.Email,
		Role:  role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		s.log.Error().Err(err).Str("email", in.Email).Msg("failed to create user")
		return nil, err
	}

	if in.Config != nil {
		if err := s.repo.SaveConfig(ctx, user.ID, *in.Config); err != nil {
			// The record itself is committed; losing the seeded preferences
			// is not worth failing the whole creation.
			s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to seed user config")
		}
	}

	s.enqueueAudit(user.ID, domain.ActionUserCreated, string(role))
	metrics.UsersCreatedTotal.WithLabelValues(string(role)).Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", string(role)).Msg("user created")

	return user, nil
}

// CreateGuest persists a freshly synthesized guest record.
func (s *userService) CreateGuest(ctx context.Context) (*domain.User, error) {
	guest := domain.NewGuest()
	if err := s.repo.Create(ctx, &guest); err != nil {
		s.log.Error().Err(err).Msg("failed to create guest")
		return nil, err
	}

	s.enqueueAudit(guest.ID, domain.ActionGuestCreated, string(domain.RoleGuest))
	metrics.UsersCreatedTotal.WithLabelValues(string(domain.RoleGuest)).Inc()
	s.log.Info().Str("user_id", guest.ID).Msg("guest created")

	return &guest, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context, in ports.ListUsersInput) (*ports.ListUsersResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 || limit > maxListLimit {
		limit = maxListLimit
	}

	users, total, err := s.repo.List(ctx, ports.ListUsersFilter{
		Role:  in.Role,
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListUsersResult{
		Users: users,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *userService) GetConfig(ctx context.Context, userID string) (*domain.UserConfig, error) {
	return s.repo.FindConfig(ctx, userID)
}

func (s *userService) SaveConfig(ctx context.Context, userID string, cfg domain.UserConfig) error {
	if _, err := s.repo.FindByID(ctx, userID); err != nil {
		return err
	}
	if err := s.repo.SaveConfig(ctx, userID, cfg); err != nil {
		return err
	}
	s.enqueueAudit(userID, domain.ActionConfigSaved, "")
	return nil
}

// Validate yields the verdict for an untyped candidate mapping. It only adds
// observability around the pure domain check.
func (s *userService) Validate(data map[string]any) bool {
	verdict := domain.IsValidUserData(data)
	result := "rejected"
	if verdict {
		result = "accepted"
	}
	metrics.ValidationVerdictsTotal.WithLabelValues(result).Inc()
	s.log.Debug().Bool("valid", verdict).Int("keys", len(data)).Msg("validation verdict")
	return verdict
}

func (s *userService) enqueueAudit(userID, action, actor string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuditEventInput{
		UserID:    userID,
		Action:    action,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})
}
