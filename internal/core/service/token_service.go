package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/identity-hub/identity-api/internal/core/domain"
	"github.com/identity-hub/identity-api/internal/core/ports"
)

type tokenService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewTokenService returns a TokenService minting HS256 identity assertions.
func NewTokenService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) ports.TokenService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &tokenService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Issue looks up the user and returns a signed token carrying its identity.
// The role claim is informational; no middleware in this service enforces it.
func (s *tokenService) Issue(ctx context.Context, userID string) (string, *domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"role": string(user.Role),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}
