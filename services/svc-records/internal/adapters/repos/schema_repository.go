package repos

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
)

const columnsCatalog = "information_schema.columns"

// SchemaRepository lists table columns from the information schema.
type SchemaRepository struct {
	pool          PoolOps
	scanner       Scanner
	defaultSchema string
}

// NewSchemaRepository resolves unqualified table names in defaultSchema.
func NewSchemaRepository(pool PoolOps, scanner Scanner, defaultSchema string) *SchemaRepository {
	if defaultSchema == "" {
		defaultSchema = "public"
	}

	return &SchemaRepository{
		pool:          pool,
		scanner:       scanner,
		defaultSchema: defaultSchema,
	}
}

// ListColumns returns the columns of table in ordinal order. An unknown table
// has no columns and is not an error.
func (r *SchemaRepository) ListColumns(ctx context.Context, table string) ([]string, error) {
	schema, name := r.splitTable(table)

	query, args, err := psql.Select("column_name").
		From(columnsCatalog).
		Where(sq.Eq{"table_schema": schema}).
		Where(sq.Eq{"table_name": name}).
		OrderBy("ordinal_position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build columns query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	columns := make([]string, 0)
	if err := r.scanner.ScanAll(&columns, rows); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrDatabaseQuery, err)
	}

	return columns, nil
}

func (r *SchemaRepository) splitTable(table string) (string, string) {
	if schema, name, ok := strings.Cut(table, "."); ok {
		return schema, name
	}

	return r.defaultSchema, table
}
