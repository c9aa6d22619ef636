package services

import (
	"context"

	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"github.com/architeacher/filtersort/services/svc-records/internal/ports"
)

// FilterSortService narrows and orders a query from request parameters. Each
// scope resolves the entity's allowed fields, parses the parameters against
// them, and applies the result to the builder it was handed.
type FilterSortService[Q ports.QueryBuilder[Q]] struct {
	fields       ports.AllowedFieldProvider
	filterParser *FilterParser
	filterApply  *FilterApplier[Q]
	sortParser   SortParser
	sortApply    *SortApplier[Q]
}

func NewFilterSortService[Q ports.QueryBuilder[Q]](
	fields ports.AllowedFieldProvider,
	filterParser *FilterParser,
	filterApplier *FilterApplier[Q],
	sortParser SortParser,
	sortApplier *SortApplier[Q],
) *FilterSortService[Q] {
	return &FilterSortService[Q]{
		fields:       fields,
		filterParser: filterParser,
		filterApply:  filterApplier,
		sortParser:   sortParser,
		sortApply:    sortApplier,
	}
}

// ScopeFilter returns the builder with the request's filters applied, along
// with the instructions that produced them.
func (s *FilterSortService[Q]) ScopeFilter(
	ctx context.Context,
	query Q,
	entity model.Entity,
	params *model.Params,
) (Q, []model.FilterInstruction, error) {
	allowed, err := s.fields.AllowedFilters(ctx, entity)
	if err != nil {
		return query, nil, err
	}

	instructions := s.filterParser.Parse(params, allowed)

	return s.filterApply.Apply(query, instructions), instructions, nil
}

// ScopeSort returns the builder with the request's ordering applied, along
// with the instructions that produced it.
func (s *FilterSortService[Q]) ScopeSort(
	ctx context.Context,
	query Q,
	entity model.Entity,
	params *model.Params,
) (Q, []model.SortInstruction, error) {
	allowed, err := s.fields.AllowedSorts(ctx, entity)
	if err != nil {
		return query, nil, err
	}

	instructions := s.sortParser.Parse(params, allowed)

	return s.sortApply.Apply(query, instructions), instructions, nil
}
