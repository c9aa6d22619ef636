package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"github.com/architeacher/filtersort/services/svc-records/internal/services"
	"github.com/stretchr/testify/require"
)

func newRecordsService(repo *stubRecordsRepository) *services.RecordsService {
	log := logger.NewTestLogger()
	registry := stubRegistry{entities: map[string]model.Entity{
		"users": {
			Name:           "users",
			Table:          "app.users",
			AllowedFilters: []string{"status", "age"},
			AllowedSorts:   []string{"name", "age"},
		},
	}}

	resolver := services.NewAllowedFieldResolver(&stubColumnLister{})
	scopes := services.NewFilterSortService(
		resolver,
		services.NewFilterParser("_op", model.OperatorPolicyReject, log),
		services.NewFilterApplier[*model.CriteriaBuilder](log),
		services.NewMultiSortParser("_sort"),
		services.NewSortApplier[*model.CriteriaBuilder](),
	)

	return services.NewRecordsService(registry, repo, resolver, scopes)
}

func TestRecordsService_ListRecords(t *testing.T) {
	t.Parallel()

	repo := &stubRecordsRepository{records: []model.Record{{"id": 1, "status": "active"}}}
	svc := newRecordsService(repo)

	list, err := svc.ListRecords(
		context.Background(),
		"users",
		model.ParseParams("status=active&status_op=eq&role=admin&age_sort=desc&name_sort=asc"),
	)
	require.NoError(t, err)

	require.Equal(t, "users", list.Entity)
	require.Equal(t, repo.records, list.Records)
	require.Equal(t, []model.FilterInstruction{
		{Field: "status", Operator: model.OperatorEq, Value: "active"},
	}, list.Filters)
	require.Equal(t, []model.SortInstruction{
		{Field: "name", Direction: model.SortAsc},
		{Field: "age", Direction: model.SortDesc},
	}, list.Sorts)

	require.True(t, repo.criteria.HasSpec())
	require.Equal(t, model.OperatorEq, repo.criteria.Spec().Operator())
	require.Equal(t, "status", repo.criteria.Spec().Field())
	require.Equal(t, []model.SortField{
		{Field: "name", Direction: model.SortAsc},
		{Field: "age", Direction: model.SortDesc},
	}, repo.criteria.Sorting())
}

func TestRecordsService_ListRecords_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown entity", func(t *testing.T) {
		t.Parallel()

		_, err := newRecordsService(&stubRecordsRepository{}).ListRecords(context.Background(), "orders", model.NewParams())

		require.ErrorIs(t, err, model.ErrEntityNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		t.Parallel()

		repo := &stubRecordsRepository{err: errors.Join(model.ErrDatabaseQuery, errors.New("timeout"))}

		_, err := newRecordsService(repo).ListRecords(context.Background(), "users", model.NewParams())

		require.ErrorIs(t, err, model.ErrDatabaseQuery)
	})
}

func TestRecordsService_DescribeEntities(t *testing.T) {
	t.Parallel()

	described, err := newRecordsService(&stubRecordsRepository{}).DescribeEntities(context.Background())

	require.NoError(t, err)
	require.Equal(t, []model.EntityFields{
		{Name: "users", Filters: []string{"status", "age"}, Sorts: []string{"name", "age"}},
	}, described)
}

func TestRecordsService_DescribeEntities_IntrospectionFailure(t *testing.T) {
	t.Parallel()

	log := logger.NewTestLogger()
	registry := stubRegistry{entities: map[string]model.Entity{
		"orders": {Name: "orders", Table: "orders"},
	}}
	resolver := services.NewAllowedFieldResolver(&stubColumnLister{err: errors.New("connection refused")})
	scopes := services.NewFilterSortService(
		resolver,
		services.NewFilterParser("_op", model.OperatorPolicyReject, log),
		services.NewFilterApplier[*model.CriteriaBuilder](log),
		services.NewMultiSortParser("_sort"),
		services.NewSortApplier[*model.CriteriaBuilder](),
	)

	_, err := services.NewRecordsService(registry, &stubRecordsRepository{}, resolver, scopes).
		DescribeEntities(context.Background())

	require.ErrorIs(t, err, model.ErrSchemaIntrospection)
}
