package repository

import (
	"context"
	"database/sql"
)

// QueryExecutor is the single chokepoint through which every SQL statement
// reaches the store. Statements are parameterized templates; values travel
// out-of-band as bind arguments, never interpolated into the text.
// *sql.DB satisfies it, as does the sqlmock DB used in tests.
type QueryExecutor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
