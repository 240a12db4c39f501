package services

import (
	"context"
	"fmt"

	"github.com/mlaurent/userboard/internal/server/models"
	"github.com/mlaurent/userboard/internal/server/password"
	"github.com/mlaurent/userboard/internal/server/repositories/users"
)

// Pagination defaults; out-of-range values clamp to these.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListInput is the raw pagination/filter request. Zero or negative Page and
// Limit fall back to the defaults.
type ListInput struct {
	Page   int
	Limit  int
	Search string
}

// ListResult is one page of users plus the totals the client needs to render
// pagination. Total counts every record matching the filter, independent of
// the page actually returned.
type ListResult struct {
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	TotalPages int64         `json:"totalPages"`
	Users      []models.User `json:"users"`
}

// UpdateInput carries a partial user modification; nil fields are ignored.
type UpdateInput struct {
	Name     *string
	Email    *string
	Password *string
	Age      *int
}

// UserService provides the paginated, filtered user query plus
// administrative create/update/delete.
type UserService struct {
	repo   users.Repository
	hasher password.Hasher
}

func NewUserService(repo users.Repository, hasher password.Hasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// List returns the requested page of users matching the search filter,
// sorted by creation time descending.
func (s *UserService) List(ctx context.Context, in ListInput) (*ListResult, error) {
	page := in.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := in.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	result, total, err := s.repo.List(ctx, users.ListQuery{
		Search: in.Search,
		Skip:   int64(page-1) * int64(limit),
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return &ListResult{
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		Users:      result,
	}, nil
}

// Create is the administrative creation path; validation and hashing are the
// same as registration.
func (s *UserService) Create(ctx context.Context, in RegisterInput) (*models.User, error) {
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
		return nil, err
	}
	return user, nil
}

// Update applies a partial modification. A new password is validated and
// re-hashed before it reaches the store; on validation failure the stored
// hash is left untouched.
func (s *UserService) Update(ctx context.Context, id string, in UpdateInput) (*models.User, error) {
	upd := users.Update{
		Name:  in.Name,
		Email: in.Email,
		Age:   in.Age,
	}

	if in.Password != nil {
		if err := validatePassword(*in.Password); err != nil {
			return nil, err
		}
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		upd.Password = &hash
	}

	return s.repo.Update(ctx, id, upd)
}

// Delete removes the record; deleting an unknown identifier is treated as
// success.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
