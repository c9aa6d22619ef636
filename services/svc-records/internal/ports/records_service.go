package ports

import (
	"context"

	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
)

// RecordsService lists entity records filtered and sorted by request parameters.
type RecordsService interface {
	ListRecords(ctx context.Context, entityName string, params *model.Params) (*model.RecordList, error)

	// DescribeEntities reports every registered entity with its resolved
	// filter and sort fields.
	DescribeEntities(ctx context.Context) ([]model.EntityFields, error)
}
