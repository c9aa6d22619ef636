package repos

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PoolOps is the read-only slice of *pgxpool.Pool the repositories use.
// pgxmock pools satisfy it in tests.
type PoolOps interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}
