package ports

import (
	"context"

	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
)

// RecordsRepository executes criteria against an entity's table.
type RecordsRepository interface {
	List(ctx context.Context, entity model.Entity, criteria model.Criteria) ([]model.Record, error)
}
