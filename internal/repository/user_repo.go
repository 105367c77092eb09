package repository

import (
	"blog_service/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type UserRepository struct {
	db QueryExecutor
}

func NewUserRepository(db QueryExecutor) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (username, email, password) VALUES (?, ?, ?)`

	selectUserColumns = `id, username, email, password, picture, description, firstname, surname`

	selectUserByUsernameSQL = `SELECT ` + selectUserColumns + ` FROM users WHERE username = ?`
	selectUserByIDSQL       = `SELECT ` + selectUserColumns + ` FROM users WHERE id = ?`
	selectAllUsersSQL       = `SELECT ` + selectUserColumns + ` FROM users`

	deleteUserSQL = `DELETE FROM users WHERE id = ?`
)

// updatableUserColumns is the closed set of columns Update may touch.
// The id and password columns are deliberately absent.
var updatableUserColumns = map[string]bool{
	"username":    true,
	"email":       true,
	"picture":     true,
	"description": true,
	"firstname":   true,
	"surname":     true,
}

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, username, email, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username)
	u, err := scanUser(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, selectUserByIDSQL, id)
	u, err := scanUser(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user id=%d: %w", id, err)
	}
	return u, nil
}

// List returns all users.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectAllUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return out, nil
}

// Update replaces the given columns for one user. A no-op when fields is empty.
// Column names come from the recognized set only; values travel as binds.
func (r *UserRepository) Update(ctx context.Context, id int, fields []FieldUpdate) error {
	if len(fields) == 0 {
		return nil
	}

	sets := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for _, f := range fields {
		if !updatableUserColumns[f.Column] {
			return fmt.Errorf("update user id=%d: unrecognized column %q", id, f.Column)
		}
		sets = append(sets, f.Column+" = ?")
		args = append(args, f.Value)
	}
	args = append(args, id)

	q := `UPDATE users SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("update user id=%d: %w", id, err)
	}
	return nil
}

// Delete removes a user by id. Deleting a missing row is not an error.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteUserSQL, id); err != nil {
		return fmt.Errorf("delete user id=%d: %w", id, err)
	}
	return nil
}

// scanUser reads one users row via the given Scan function, mapping
// nullable profile columns onto plain strings.
func scanUser(scan func(dest ...any) error) (*models.User, error) {
	var u models.User
	var picture, description, firstname, surname sql.NullString
	if err := scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &picture, &description, &firstname, &surname); err != nil {
		return nil, err
	}
	u.Picture = picture.String
	u.Description = description.String
	u.Firstname = firstname.String
	u.Surname = surname.String
	return &u, nil
}
