package services

import (
	"context"

	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"github.com/architeacher/filtersort/services/svc-records/internal/ports"
)

type RecordsService struct {
	registry ports.EntityRegistry
	repo     ports.RecordsRepository
	fields   ports.AllowedFieldProvider
	scopes   *FilterSortService[*model.CriteriaBuilder]
}

func NewRecordsService(
	registry ports.EntityRegistry,
	repo ports.RecordsRepository,
	fields ports.AllowedFieldProvider,
	scopes *FilterSortService[*model.CriteriaBuilder],
) *RecordsService {
	return &RecordsService{
		registry: registry,
		repo:     repo,
		fields:   fields,
		scopes:   scopes,
	}
}

func (s *RecordsService) ListRecords(ctx context.Context, entityName string, params *model.Params) (*model.RecordList, error) {
	entity, err := s.registry.Get(entityName)
	if err != nil {
		return nil, err
	}

	query, filters, err := s.scopes.ScopeFilter(ctx, model.NewCriteria(), entity, params)
	if err != nil {
		return nil, err
	}

	query, sorts, err := s.scopes.ScopeSort(ctx, query, entity, params)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.List(ctx, entity, query.Build())
	if err != nil {
		return nil, err
	}

	return &model.RecordList{
		Entity:  entity.Name,
		Records: records,
		Filters: filters,
		Sorts:   sorts,
	}, nil
}

func (s *RecordsService) DescribeEntities(ctx context.Context) ([]model.EntityFields, error) {
	entities := s.registry.List()
	described := make([]model.EntityFields, 0, len(entities))

	for _, entity := range entities {
		filters, err := s.fields.AllowedFilters(ctx, entity)
		if err != nil {
			return nil, err
		}

		sorts, err := s.fields.AllowedSorts(ctx, entity)
		if err != nil {
			return nil, err
		}

		described = append(described, model.EntityFields{
			Name:    entity.Name,
			Filters: filters.Names(),
			Sorts:   sorts.Names(),
		})
	}

	return described, nil
}
