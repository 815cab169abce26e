package users

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

// UsersRepo persists user profiles keyed by their provider-scoped id
// (for example "google:<sub>").
type UsersRepo interface {
	Upsert(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}
