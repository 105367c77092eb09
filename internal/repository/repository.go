package repository

import (
	"blog_service/internal/models"
	"context"
	"time"
)

// FieldUpdate names one recognized users column and the value replacing it.
type FieldUpdate struct {
	Column string
	Value  string
}

type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int, fields []FieldUpdate) error
	Delete(ctx context.Context, id int) error
}

type Posts interface {
	Create(ctx context.Context, title, content string, now time.Time) (int, error)
	GetByID(ctx context.Context, id int) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, id int, title, content string, now time.Time) error
	Delete(ctx context.Context, id int) error
}

type Repository struct {
	Users Users
	Posts Posts
}

func NewRepository(db QueryExecutor) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Posts: NewPostRepository(db),
	}
}
