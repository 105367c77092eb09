package service

import (
	"context"
	"time"

	"blog_service/internal/models"
	"blog_service/internal/repository"
)

// PostService covers content CRUD. Every content change refreshes updated_at.
type PostService struct {
	posts repository.Posts
	now   func() time.Time
}

func NewPostService(posts repository.Posts) *PostService {
	return &PostService{posts: posts, now: time.Now}
}

var _ Posts = (*PostService)(nil)

// Create stores a new post with created_at == updated_at == now.
func (s *PostService) Create(ctx context.Context, title, content string) (int, error) {
	return s.posts.Create(ctx, title, content, s.now().UTC())
}

func (s *PostService) GetByID(ctx context.Context, id int) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// List returns posts ordered by creation time, most recent first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.List(ctx)
}

// Update replaces title/content and refreshes updated_at; created_at is immutable.
func (s *PostService) Update(ctx context.Context, id int, title, content string) error {
	return s.posts.Update(ctx, id, title, content, s.now().UTC())
}

func (s *PostService) Delete(ctx context.Context, id int) error {
	return s.posts.Delete(ctx, id)
}
