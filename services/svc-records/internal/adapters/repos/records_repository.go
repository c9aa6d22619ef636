package repos

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
)

// RecordsRepository reads rows of registered entities.
type RecordsRepository struct {
	pool       PoolOps
	scanner    Scanner
	translator *CriteriaTranslator
	logger     logger.Logger
	maxRows    uint64
}

// NewRecordsRepository caps every listing at maxRows; zero disables the cap.
func NewRecordsRepository(
	pool PoolOps,
	scanner Scanner,
	translator *CriteriaTranslator,
	log logger.Logger,
	maxRows uint64,
) *RecordsRepository {
	return &RecordsRepository{
		pool:       pool,
		scanner:    scanner,
		translator: translator,
		logger:     log,
		maxRows:    maxRows,
	}
}

func (r *RecordsRepository) List(ctx context.Context, entity model.Entity, criteria model.Criteria) ([]model.Record, error) {
	builder := psql.Select("*").From(quoteIdentifier(entity.Table))
	builder = r.translator.ApplyToSelect(builder, criteria)

	if r.maxRows > 0 {
		builder = builder.Limit(r.maxRows)
	}

	return r.queryRecords(ctx, builder)
}

func (r *RecordsRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *RecordsRepository) queryRecords(ctx context.Context, builder sq.SelectBuilder) ([]model.Record, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	r.logger.Debug().
		Str("sql", query).
		Int("args", len(args)).
		Msg("listing records")

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, queryError(err)
	}
	defer rows.Close()

	var rowMaps []map[string]any
	if err := r.scanner.ScanAll(&rowMaps, rows); err != nil {
		return nil, queryError(err)
	}

	records := make([]model.Record, 0, len(rowMaps))
	for _, row := range rowMaps {
		records = append(records, model.Record(row))
	}

	return records, nil
}

// queryError separates a database that could not be reached from one that
// rejected the statement.
func queryError(err error) error {
	if IsUnavailable(err) {
		return fmt.Errorf("%w: %w", model.ErrDatabaseConnection, err)
	}

	return fmt.Errorf("%w: %w", model.ErrDatabaseQuery, err)
}
