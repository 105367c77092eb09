package service

import (
	"context"

	"blog_service/internal/models"
	"blog_service/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, email, password string) (int, error)
	Login(ctx context.Context, username, password string) (int, error)
}

// Users exposes account reads and mutations (credentials excluded).
type Users interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int, upd UserUpdate) error
	Delete(ctx context.Context, id int) error
}

// Posts exposes content CRUD with creation-time ordering on reads.
type Posts interface {
	Create(ctx context.Context, title, content string) (int, error)
	GetByID(ctx context.Context, id int) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, id int, title, content string) error
	Delete(ctx context.Context, id int) error
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Users
	Posts
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users),
		Users:         NewUserService(repos.Users),
		Posts:         NewPostService(repos.Posts),
	}
}
