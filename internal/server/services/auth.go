// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, login and issuing bearer tokens.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mlaurent/userboard/internal/common"
	"github.com/mlaurent/userboard/internal/server/auth"
	"github.com/mlaurent/userboard/internal/server/config"
	"github.com/mlaurent/userboard/internal/server/models"
	"github.com/mlaurent/userboard/internal/server/password"
	"github.com/mlaurent/userboard/internal/server/repositories/users"
)

// MinPasswordLength is enforced uniformly on registration, administrative
// creation and update.
const MinPasswordLength = 8

func validatePassword(p string) error {
	if len(p) < MinPasswordLength {
		return common.ErrWeakPassword
	}
	return nil
}

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      *int
}

// AuthService provides authentication-related operations:
//   - Register: create accounts (no token issued; login is a separate step)
//   - Login: verify credentials and mint a token
//   - Authenticate: resolve a bearer token back to its user
type AuthService struct {
	repo                  users.Repository
	hasher                password.Hasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using the repository, hasher and
// server config.
func NewAuthService(repo users.Repository, hasher password.Hasher, cfg *config.Config) *AuthService {
	return &AuthService{
		repo:                  repo,
		hasher:                hasher,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register hashes the password and inserts the new account. Email uniqueness
// is enforced by the store's conditional insert, so there is no window
// between an existence check and the write; a duplicate surfaces as
// common.ErrEmailTaken with no side effect.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Age:      in.Age,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and, on success, returns a signed token
// bound to the user's identifier. Stateless on the store.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUserNotFound
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	ok, err := s.hasher.Verify(plainPassword, user.Password)
	if err != nil || !ok {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID.Hex(), s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}

	return token, nil
}

// Authenticate validates a bearer token and loads the user it asserts.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	return user, nil
}
