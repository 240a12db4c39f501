package users

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/mlaurent/userboard/internal/common"
	"github.com/mlaurent/userboard/internal/server/models"
)

// InMemoryRepository mirrors the Mongo contract without a database. It backs
// tests and keeps pagination and filter semantics identical to the real
// store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.items {
		if u.Email == user.Email {
			return nil, common.ErrEmailTaken
		}
	}

	now := time.Now().UTC()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.items[user.ID.Hex()] = *user
	return user, nil
}

func (r *InMemoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &u, nil
}

func matches(u models.User, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(u.Name), needle) ||
		strings.Contains(strings.ToLower(u.Email), needle)
}

func (r *InMemoryRepository) List(ctx context.Context, q ListQuery) ([]models.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]models.User, 0, len(r.items))
	for _, u := range r.items {
		if matches(u, q.Search) {
			filtered = append(filtered, u)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := int64(len(filtered))

	start := q.Skip
	if start > total {
		start = total
	}
	end := start + q.Limit
	if q.Limit <= 0 || end > total {
		end = total
	}

	page := make([]models.User, end-start)
	copy(page, filtered[start:end])

	return page, total, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id string, upd Update) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}

	if upd.Email != nil && *upd.Email != u.Email {
		for _, other := range r.items {
			if other.Email == *upd.Email {
				return nil, common.ErrEmailTaken
			}
		}
		u.Email = *upd.Email
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	if upd.Age != nil {
		age := *upd.Age
		u.Age = &age
	}
	u.UpdatedAt = time.Now().UTC()

	r.items[id] = u
	return &u, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

var _ Repository = (*InMemoryRepository)(nil)
