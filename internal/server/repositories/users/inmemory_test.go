package users

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlaurent/userboard/internal/common"
	"github.com/mlaurent/userboard/internal/server/models"
)

func seedUsers(t *testing.T, r *InMemoryRepository, n int) []models.User {
	t.Helper()
	created := make([]models.User, 0, n)
	base := time.Now().UTC().Add(-time.Duration(n) * time.Minute)
	for i := 0; i < n; i++ {
		u, err := r.Create(context.Background(), &models.User{
			Name:     fmt.Sprintf("user%02d", i),
			Email:    fmt.Sprintf("user%02d@example.com", i),
			Password: "$2a$10$hash",
		})
		require.NoError(t, err)
		// spread creation times so descending order is deterministic
		u.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		r.items[u.ID.Hex()] = *u
		created = append(created, *u)
	}
	return created
}

func TestInMemory_Create_DuplicateEmail(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, &models.User{Name: "a", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &models.User{Name: "b", Email: "a@example.com"})
	assert.ErrorIs(t, err, common.ErrEmailTaken)

	_, total, err := r.List(ctx, ListQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "failed create must not persist a record")
}

func TestInMemory_Find(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	u, err := r.Create(ctx, &models.User{Name: "ann", Email: "ann@example.com"})
	require.NoError(t, err)

	got, err := r.FindByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = r.FindByID(ctx, u.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "ann", got.Name)

	_, err = r.FindByEmail(ctx, "absent@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = r.FindByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInMemory_List_PaginationAndOrder(t *testing.T) {
	r := NewInMemoryRepository()
	seedUsers(t, r, 25)

	page, total, err := r.List(context.Background(), ListQuery{Skip: 10, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(25), total)
	require.Len(t, page, 10)

	// newest first: records 11..20 of the descending order are user14..user05
	assert.Equal(t, "user14", page[0].Name)
	assert.Equal(t, "user05", page[9].Name)
	for i := 1; i < len(page); i++ {
		assert.True(t, !page[i].CreatedAt.After(page[i-1].CreatedAt), "expected descending creation time")
	}
}

func TestInMemory_List_SkipPastEnd(t *testing.T) {
	r := NewInMemoryRepository()
	seedUsers(t, r, 3)

	page, total, err := r.List(context.Background(), ListQuery{Skip: 30, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, page)
}

func TestInMemory_List_Search(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, &models.User{Name: "Anna", Email: "anna@example.com"})
	require.NoError(t, err)
	_, err = r.Create(ctx, &models.User{Name: "Bob", Email: "hanna@example.com"})
	require.NoError(t, err)
	_, err = r.Create(ctx, &models.User{Name: "Carl", Email: "carl@example.com"})
	require.NoError(t, err)

	page, total, err := r.List(ctx, ListQuery{Search: "ANN", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "search must match name or email, case-insensitively")
	assert.Len(t, page, 2)
}

func TestInMemory_Update(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	u, err := r.Create(ctx, &models.User{Name: "ann", Email: "ann@example.com", Password: "old-hash"})
	require.NoError(t, err)

	name := "Ann Smith"
	got, err := r.Update(ctx, u.ID.Hex(), Update{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ann Smith", got.Name)
	assert.Equal(t, "old-hash", got.Password, "untouched fields must survive")

	_, err = r.Update(ctx, "missing", Update{Name: &name})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInMemory_Delete_AbsentIDIsSuccess(t *testing.T) {
	r := NewInMemoryRepository()

	err := r.Delete(context.Background(), "never-existed")
	assert.NoError(t, err)
}

func TestInMemory_ErrorsAreSentinels(t *testing.T) {
	r := NewInMemoryRepository()
	_, err := r.FindByID(context.Background(), "x")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
