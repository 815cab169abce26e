package users

import "context"

// Service wraps the users repository.
type Service struct {
	Repo UsersRepo
}

func NewService(repo UsersRepo) *Service {
	return &Service{Repo: repo}
}

// Upsert records the user's latest profile as reported by the identity
// provider.
func (s *Service) Upsert(ctx context.Context, user User) (User, error) {
	return s.Repo.Upsert(ctx, user)
}

// Get returns the stored profile for the given user id.
func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.Repo.GetByID(ctx, id)
}
