package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockPostRepo(t *testing.T) (*PostRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewPostRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestPostRepository_Create(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	ts := now.Format(sqliteTimeLayout)

	t.Run("inserts equal timestamps and returns id", func(t *testing.T) {
		repo, mock, cleanup := newMockPostRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(insertPostSQL)).
			WithArgs("T", "C", ts, ts).
			WillReturnResult(sqlmock.NewResult(11, 1))

		id, err := repo.Create(context.Background(), "T", "C", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 11 {
			t.Fatalf("id=%d want 11", id)
		}
	})

	t.Run("exec error propagates", func(t *testing.T) {
		repo, mock, cleanup := newMockPostRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(insertPostSQL)).
			WithArgs("T", "C", ts, ts).
			WillReturnError(errors.New("db exec failed"))

		_, err := repo.Create(context.Background(), "T", "C", now)
		if err == nil || !strings.Contains(err.Error(), "insert post") {
			t.Fatalf("expected wrapped insert error, got %v", err)
		}
	})
}

func TestPostRepository_GetByID(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := newMockPostRepo(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "title", "content", "created_at", "updated_at"}).
			AddRow(4, "T", "C", created, created)
		mock.ExpectQuery(regexp.QuoteMeta(selectPostByIDSQL)).
			WithArgs(4).
			WillReturnRows(rows)

		p, err := repo.GetByID(context.Background(), 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != 4 || p.Title != "T" || p.Content != "C" {
			t.Fatalf("unexpected post: %+v", p)
		}
		if !p.CreatedAt.Equal(p.UpdatedAt) {
			t.Fatalf("fresh post should have created_at == updated_at: %+v", p)
		}
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		repo, mock, cleanup := newMockPostRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectPostByIDSQL)).
			WithArgs(99).
			WillReturnError(sql.ErrNoRows)

		p, err := repo.GetByID(context.Background(), 99)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p != nil {
			t.Fatalf("expected nil post, got %+v", p)
		}
	})
}

func TestPostRepository_List(t *testing.T) {
	// The statement orders by created_at DESC; rows come back most recent first.
	if !strings.Contains(selectAllPostsSQL, "ORDER BY created_at DESC") {
		t.Fatalf("list statement must order by created_at DESC: %s", selectAllPostsSQL)
	}

	repo, mock, cleanup := newMockPostRepo(t)
	defer cleanup()

	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	rows := sqlmock.NewRows([]string{"id", "title", "content", "created_at", "updated_at"}).
		AddRow(2, "P2", "second", t2, t2).
		AddRow(1, "P1", "first", t1, t1)
	mock.ExpectQuery(regexp.QuoteMeta(selectAllPostsSQL)).
		WillReturnRows(rows)

	posts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 || posts[0].ID != 2 || posts[1].ID != 1 {
		t.Fatalf("unexpected posts: %+v", posts)
	}
}

func TestPostRepository_Update(t *testing.T) {
	later := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ts := later.Format(sqliteTimeLayout)

	t.Run("refreshes updated_at only", func(t *testing.T) {
		repo, mock, cleanup := newMockPostRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(updatePostSQL)).
			WithArgs("T2", "C2", ts, 6).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.Update(context.Background(), 6, "T2", "C2", later); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exec error propagates", func(t *testing.T) {
		repo, mock, cleanup := newMockPostRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(updatePostSQL)).
			WithArgs("T2", "C2", ts, 6).
			WillReturnError(errors.New("db exec failed"))

		err := repo.Update(context.Background(), 6, "T2", "C2", later)
		if err == nil || !strings.Contains(err.Error(), "update post") {
			t.Fatalf("expected wrapped update error, got %v", err)
		}
	})
}

func TestPostRepository_Delete(t *testing.T) {
	t.Run("missing row still succeeds", func(t *testing.T) {
		repo, mock, cleanup := newMockPostRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deletePostSQL)).
			WithArgs(13).
			WillReturnResult(sqlmock.NewResult(0, 0))

		if err := repo.Delete(context.Background(), 13); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exec error propagates", func(t *testing.T) {
		repo, mock, cleanup := newMockPostRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deletePostSQL)).
			WithArgs(13).
			WillReturnError(errors.New("db exec failed"))

		err := repo.Delete(context.Background(), 13)
		if err == nil || !strings.Contains(err.Error(), "delete post") {
			t.Fatalf("expected wrapped delete error, got %v", err)
		}
	})
}
