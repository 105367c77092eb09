package repository

import (
	"blog_service/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type PostRepository struct {
	db QueryExecutor
}

func NewPostRepository(db QueryExecutor) *PostRepository {
	return &PostRepository{db: db}
}

var _ Posts = (*PostRepository)(nil)

// SQLite TIMESTAMP format "YYYY-MM-DD HH:MM:SS"
const sqliteTimeLayout = "2006-01-02 15:04:05"

const (
	insertPostSQL = `INSERT INTO posts (title, content, created_at, updated_at) VALUES (?, ?, ?, ?)`

	selectPostByIDSQL = `SELECT id, title, content, created_at, updated_at FROM posts WHERE id = ?`

	// Most recent first.
	selectAllPostsSQL = `SELECT id, title, content, created_at, updated_at FROM posts ORDER BY created_at DESC`

	updatePostSQL = `UPDATE posts SET title = ?, content = ?, updated_at = ? WHERE id = ?`

	deletePostSQL = `DELETE FROM posts WHERE id = ?`
)

// Create inserts a new post with both timestamps set to now, and returns its ID.
func (r *PostRepository) Create(ctx context.Context, title, content string, now time.Time) (int, error) {
	ts := now.UTC().Format(sqliteTimeLayout)
	res, err := r.db.ExecContext(ctx, insertPostSQL, title, content, ts, ts)
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for post: %w", err)
	}
	return int(lastID), nil
}

// GetByID fetches a post by id. Returns (nil, nil) if not found.
func (r *PostRepository) GetByID(ctx context.Context, id int) (*models.Post, error) {
	var p models.Post
	err := r.db.QueryRowContext(ctx, selectPostByIDSQL, id).
		Scan(&p.ID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post id=%d: %w", id, err)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}

// List returns all posts ordered by creation time, most recent first.
func (r *PostRepository) List(ctx context.Context) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, selectAllPostsSQL)
	if err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	defer rows.Close()

	out := make([]models.Post, 0, 32)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}
		p.CreatedAt = p.CreatedAt.UTC()
		p.UpdatedAt = p.UpdatedAt.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post rows: %w", err)
	}
	return out, nil
}

// Update replaces title and content and refreshes updated_at; created_at is untouched.
func (r *PostRepository) Update(ctx context.Context, id int, title, content string, now time.Time) error {
	ts := now.UTC().Format(sqliteTimeLayout)
	if _, err := r.db.ExecContext(ctx, updatePostSQL, title, content, ts, id); err != nil {
		return fmt.Errorf("update post id=%d: %w", id, err)
	}
	return nil
}

// Delete removes a post by id. Deleting a missing row is not an error.
func (r *PostRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deletePostSQL, id); err != nil {
		return fmt.Errorf("delete post id=%d: %w", id, err)
	}
	return nil
}
