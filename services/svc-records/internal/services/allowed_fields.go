package services

import (
	"context"
	"fmt"

	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"github.com/architeacher/filtersort/services/svc-records/internal/ports"
)

// AllowedFieldResolver returns an entity's configured whitelist, or every
// column of its table when none is configured. Nothing is cached: each call
// resolves again.
type AllowedFieldResolver struct {
	columns ports.ColumnLister
}

func NewAllowedFieldResolver(columns ports.ColumnLister) *AllowedFieldResolver {
	return &AllowedFieldResolver{columns: columns}
}

func (r *AllowedFieldResolver) AllowedFilters(ctx context.Context, entity model.Entity) (model.AllowedFieldSet, error) {
	return r.Resolve(ctx, entity.Table, entity.AllowedFilters)
}

func (r *AllowedFieldResolver) AllowedSorts(ctx context.Context, entity model.Entity) (model.AllowedFieldSet, error) {
	return r.Resolve(ctx, entity.Table, entity.AllowedSorts)
}

// Resolve keeps explicit as given, in order. An empty explicit list falls back
// to introspection; a table without columns yields an empty set.
func (r *AllowedFieldResolver) Resolve(ctx context.Context, table string, explicit []string) (model.AllowedFieldSet, error) {
	if len(explicit) > 0 {
		return model.NewAllowedFieldSet(explicit...), nil
	}

	if r.columns == nil || table == "" {
		return model.NewAllowedFieldSet(), nil
	}

	columns, err := r.columns.ListColumns(ctx, table)
	if err != nil {
		return model.AllowedFieldSet{}, fmt.Errorf("%w: listing columns of %s: %w", model.ErrSchemaIntrospection, table, err)
	}

	return model.NewAllowedFieldSet(columns...), nil
}
