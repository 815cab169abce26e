package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PGUsersRepo is the PostgreSQL-backed UsersRepo.
type PGUsersRepo struct {
	DB *sql.DB
}

func NewPGUsersRepo(db *sql.DB) *PGUsersRepo {
	return &PGUsersRepo{DB: db}
}

func (r *PGUsersRepo) Upsert(ctx context.Context, user User) (User, error) {
	now := time.Now().UTC()
	row := r.DB.QueryRowContext(ctx, `
		INSERT INTO users (id, email, full_name, picture_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email, full_name = EXCLUDED.full_name, picture_url = EXCLUDED.picture_url, updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at`,
		user.ID, user.Email, user.FullName, user.PictureURL, now,
	)
	if err := row.Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		return User{}, fmt.Errorf("upsert user: %w", err)
	}
	return user, nil
}

func (r *PGUsersRepo) GetByID(ctx context.Context, id string) (User, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, email, full_name, picture_url, created_at, updated_at
		FROM users
		WHERE id = $1`,
		id,
	)
	var user User
	err := row.Scan(&user.ID, &user.Email, &user.FullName, &user.PictureURL, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
