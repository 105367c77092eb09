package service

import (
	"context"

	"blog_service/internal/models"
	"blog_service/internal/repository"
)

// UserService covers account reads and non-credential mutations.
type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

var _ Users = (*UserService)(nil)

// GetByID returns the user, or (nil, nil) when no row matches.
func (s *UserService) GetByID(ctx context.Context, id int) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Update replaces whichever recognized fields are present in upd.
// With nothing present it is a no-op success.
func (s *UserService) Update(ctx context.Context, id int, upd UserUpdate) error {
	return s.users.Update(ctx, id, upd.fieldUpdates())
}

// Delete removes the user; deleting an absent id still succeeds.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.users.Delete(ctx, id)
}
