package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/architeacher/filtersort/pkg/circuitbreaker"
	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"github.com/architeacher/filtersort/services/svc-records/internal/ports"
	"github.com/jackc/pgx/v5/pgconn"
)

// GuardedRecordsRepository puts a circuit breaker in front of another
// repository. While the breaker is open, List fails fast with
// model.ErrDatabaseConnection.
type GuardedRecordsRepository struct {
	next    ports.RecordsRepository
	breaker *circuitbreaker.CircuitBreaker[[]model.Record]
}

func NewGuardedRecordsRepository(
	next ports.RecordsRepository,
	breaker *circuitbreaker.CircuitBreaker[[]model.Record],
) *GuardedRecordsRepository {
	return &GuardedRecordsRepository{next: next, breaker: breaker}
}

func (r *GuardedRecordsRepository) List(ctx context.Context, entity model.Entity, criteria model.Criteria) ([]model.Record, error) {
	records, err := circuitbreaker.Execute(r.breaker, func() ([]model.Record, error) {
		return r.next.List(ctx, entity, criteria)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", model.ErrDatabaseConnection, err)
	}

	return records, err
}

func (r *GuardedRecordsRepository) CircuitState() string {
	return r.breaker.State()
}

// IsUnavailable reports whether err means the database could not serve the
// query at all. Errors the server returned for the statement itself, such as
// a value that does not cast to the column type, and cancelled requests do
// not count.
func IsUnavailable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var pgErr *pgconn.PgError

	return !errors.As(err, &pgErr)
}
