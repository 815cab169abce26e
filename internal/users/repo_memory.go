package users

import (
	"context"
	"sync"
	"time"
)

// MemoryUsersRepo is an in-memory UsersRepo for local development and tests.
type MemoryUsersRepo struct {
	mu    sync.RWMutex
	items map[string]User
}

func NewMemoryUsersRepo() *MemoryUsersRepo {
	return &MemoryUsersRepo{items: map[string]User{}}
}

func (r *MemoryUsersRepo) Upsert(_ context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := r.items[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
	} else {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	r.items[user.ID] = user
	return user, nil
}

func (r *MemoryUsersRepo) GetByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.items[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}
