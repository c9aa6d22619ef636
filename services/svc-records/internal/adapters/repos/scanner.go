package repos

import (
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

type (
	// Scanner abstracts row scanning so repositories can be tested against
	// mocked rows, in the same way PoolOps abstracts the pool.
	Scanner interface {
		ScanAll(dst any, rows pgx.Rows) error
	}

	// PgxScanner scans rows with pgxscan. Destinations may be slices of
	// structs, of maps keyed by column, or of a primitive for single-column
	// results.
	PgxScanner struct{}
)

func NewPgxScanner() *PgxScanner {
	return &PgxScanner{}
}

func (s *PgxScanner) ScanAll(dst any, rows pgx.Rows) error {
	return pgxscan.ScanAll(dst, rows)
}
