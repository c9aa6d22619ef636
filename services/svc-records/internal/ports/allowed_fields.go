package ports

import (
	"context"

	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
)

type (
	// AllowedFieldProvider resolves which fields of an entity a request may
	// filter or sort on.
	AllowedFieldProvider interface {
		AllowedFilters(ctx context.Context, entity model.Entity) (model.AllowedFieldSet, error)
		AllowedSorts(ctx context.Context, entity model.Entity) (model.AllowedFieldSet, error)
	}

	// ColumnLister introspects the backing storage schema.
	ColumnLister interface {
		// ListColumns returns the column names of table in ordinal order.
		ListColumns(ctx context.Context, table string) ([]string, error)
	}
)
