package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlaurent/userboard/internal/common"
	"github.com/mlaurent/userboard/internal/server/auth"
	"github.com/mlaurent/userboard/internal/server/config"
	"github.com/mlaurent/userboard/internal/server/password"
	"github.com/mlaurent/userboard/internal/server/repositories/users"
)

func newAuthService(t *testing.T) (*AuthService, *users.InMemoryRepository) {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: 24 * time.Hour,
	}
	repo := users.NewInMemoryRepository()
	hasher := password.NewBcryptHasher(4) // min cost keeps tests fast
	return NewAuthService(repo, hasher, cfg), repo
}

func TestRegister_Success(t *testing.T) {
	s, repo := newAuthService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "longenough"})
	require.NoError(t, err)

	assert.Equal(t, "Ann", u.Name)
	assert.NotEqual(t, "longenough", u.Password, "password must be stored as a hash")

	stored, err := repo.FindByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, stored.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s, repo := newAuthService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "longenough"})
	require.NoError(t, err)

	_, err = s.Register(ctx, RegisterInput{Name: "Other", Email: "ann@example.com", Password: "longenough"})
	assert.ErrorIs(t, err, common.ErrEmailTaken)

	// repeating the failed call fails the same way
	_, err = s.Register(ctx, RegisterInput{Name: "Other", Email: "ann@example.com", Password: "longenough"})
	assert.ErrorIs(t, err, common.ErrEmailTaken)

	_, total, err := repo.List(ctx, users.ListQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "duplicate registration must not create a second record")
}

func TestRegister_WeakPassword(t *testing.T) {
	s, repo := newAuthService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "short"})
	assert.ErrorIs(t, err, common.ErrWeakPassword)

	_, err = repo.FindByEmail(ctx, "ann@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestLogin_Success(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "longenough"})
	require.NoError(t, err)

	token, err := s.Login(ctx, "ann@example.com", "longenough")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// the token embeds the user's identifier and a 24h expiry
	claims := &auth.Claims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("k"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID.Hex(), claims.UserID)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestLogin_UnknownEmail(t *testing.T) {
	s, _ := newAuthService(t)

	_, err := s.Login(context.Background(), "ghost@example.com", "whatever123")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "longenough"})
	require.NoError(t, err)

	_, err = s.Login(ctx, "ann@example.com", "wrongpassword")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthenticate(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "longenough"})
	require.NoError(t, err)

	token, err := s.Login(ctx, "ann@example.com", "longenough")
	require.NoError(t, err)

	got, err := s.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Authenticate(ctx, "not.a.jwt")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
