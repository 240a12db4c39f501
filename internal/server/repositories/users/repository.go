// Package users persists user records. The Repository interface hides the
// store; implementations exist for MongoDB and for memory (tests, tooling).
package users

import (
	"context"

	"github.com/mlaurent/userboard/internal/server/models"
)

// ListQuery selects a page of users. Search is matched as a case-insensitive
// substring against name or email; an empty Search matches everything.
type ListQuery struct {
	Search string
	Skip   int64
	Limit  int64
}

// Update carries a partial modification; nil fields are left untouched.
// Password, when present, must already be hashed by the caller.
type Update struct {
	Name     *string
	Email    *string
	Password *string
	Age      *int
}

type Repository interface {
	// Create inserts a new user. The insert is conditional on the unique
	// email index: a duplicate email yields common.ErrEmailTaken and no
	// write.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// FindByEmail returns common.ErrNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByID returns common.ErrNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*models.User, error)

	// List returns the selected page sorted by creation time descending,
	// together with the total number of records matching the filter
	// regardless of pagination.
	List(ctx context.Context, q ListQuery) ([]models.User, int64, error)

	// Update applies a partial modification and returns the new state of
	// the record. Unknown ids yield common.ErrNotFound.
	Update(ctx context.Context, id string, upd Update) (*models.User, error)

	// Delete removes the record. Deleting an id that does not exist is not
	// an error.
	Delete(ctx context.Context, id string) error
}
