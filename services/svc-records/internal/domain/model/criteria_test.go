package model_test

import (
	"testing"

	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestCriteriaBuilder_SinglePredicate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name             string
		build            func(*model.CriteriaBuilder) *model.CriteriaBuilder
		expectedOperator model.Operator
		expectedValue    any
	}{
		{
			name:             "equals",
			build:            func(b *model.CriteriaBuilder) *model.CriteriaBuilder { return b.WhereEquals("status", "active") },
			expectedOperator: model.OperatorEq,
			expectedValue:    "active",
		},
		{
			name:             "not equals",
			build:            func(b *model.CriteriaBuilder) *model.CriteriaBuilder { return b.WhereNotEquals("status", "active") },
			expectedOperator: model.OperatorNe,
			expectedValue:    "active",
		},
		{
			name:             "greater",
			build:            func(b *model.CriteriaBuilder) *model.CriteriaBuilder { return b.WhereGreater("status", "5") },
			expectedOperator: model.OperatorGt,
			expectedValue:    "5",
		},
		{
			name:             "less or equal",
			build:            func(b *model.CriteriaBuilder) *model.CriteriaBuilder { return b.WhereLessOrEqual("status", "5") },
			expectedOperator: model.OperatorLte,
			expectedValue:    "5",
		},
		{
			name:             "like keeps the pattern verbatim",
			build:            func(b *model.CriteriaBuilder) *model.CriteriaBuilder { return b.WhereLike("status", "%act%") },
			expectedOperator: model.OperatorLike,
			expectedValue:    "%act%",
		},
		{
			name:             "between",
			build:            func(b *model.CriteriaBuilder) *model.CriteriaBuilder { return b.WhereBetween("status", "5", "10") },
			expectedOperator: model.OperatorBetween,
			expectedValue:    []any{"5", "10"},
		},
		{
			name:             "in",
			build:            func(b *model.CriteriaBuilder) *model.CriteriaBuilder { return b.WhereIn("status", "a", "b") },
			expectedOperator: model.OperatorIn,
			expectedValue:    []any{"a", "b"},
		},
		{
			name:             "not in",
			build:            func(b *model.CriteriaBuilder) *model.CriteriaBuilder { return b.WhereNotIn("status", "a") },
			expectedOperator: model.OperatorNotIn,
			expectedValue:    []any{"a"},
		},
		{
			name:             "null",
			build:            func(b *model.CriteriaBuilder) *model.CriteriaBuilder { return b.WhereNull("status") },
			expectedOperator: model.OperatorNull,
			expectedValue:    nil,
		},
		{
			name:             "not null",
			build:            func(b *model.CriteriaBuilder) *model.CriteriaBuilder { return b.WhereNotNull("status") },
			expectedOperator: model.OperatorNotNull,
			expectedValue:    nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			criteria := tc.build(model.NewCriteria()).Build()

			require.True(t, criteria.HasSpec())
			require.False(t, criteria.Spec().IsComposite())
			require.Equal(t, tc.expectedOperator, criteria.Spec().Operator())
			require.Equal(t, "status", criteria.Spec().Field())
			require.Equal(t, tc.expectedValue, criteria.Spec().Value())
		})
	}
}

func TestCriteriaBuilder_MultiplePredicatesAreJoined(t *testing.T) {
	t.Parallel()

	criteria := model.NewCriteria().
		WhereEquals("status", "active").
		WhereIn("role", "admin", "owner").
		WhereNull("deleted_at").
		Build()

	require.True(t, criteria.HasSpec())
	require.True(t, criteria.Spec().IsComposite())
	require.Equal(t, model.OperatorAnd, criteria.Spec().Operator())

	children := criteria.Spec().Children()
	require.Len(t, children, 3)
	require.Equal(t, "status", children[0].Field())
	require.Equal(t, "role", children[1].Field())
	require.Equal(t, "deleted_at", children[2].Field())
}

func TestCriteriaBuilder_Empty(t *testing.T) {
	t.Parallel()

	criteria := model.NewCriteria().Build()

	require.False(t, criteria.HasSpec())
	require.Nil(t, criteria.Spec())
	require.False(t, criteria.HasSorting())
	require.Empty(t, criteria.Sorting())
}

func TestCriteriaBuilder_OrderBy(t *testing.T) {
	t.Parallel()

	criteria := model.NewCriteria().
		OrderBy("name", model.SortDesc).
		OrderBy("id", model.SortAsc).
		Build()

	require.False(t, criteria.HasSpec())
	require.True(t, criteria.HasSorting())
	require.Equal(t, []model.SortField{
		{Field: "name", Direction: model.SortDesc},
		{Field: "id", Direction: model.SortAsc},
	}, criteria.Sorting())
}

func TestCriteriaBuilder_ReturnsSameBuilder(t *testing.T) {
	t.Parallel()

	builder := model.NewCriteria()

	require.Same(t, builder, builder.WhereEquals("a", "1"))
	require.Same(t, builder, builder.OrderBy("a", model.SortAsc))
}

func TestParseSortDirection(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input    string
		expected model.SortDirection
	}{
		{input: "asc", expected: model.SortAsc},
		{input: "desc", expected: model.SortDesc},
		{input: "DESC", expected: model.SortDesc},
		{input: "Desc", expected: model.SortDesc},
		{input: "", expected: model.SortAsc},
		{input: "sideways", expected: model.SortAsc},
		{input: " desc", expected: model.SortAsc},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, model.ParseSortDirection(tc.input))
		})
	}
}

func TestParseSortMode(t *testing.T) {
	t.Parallel()

	require.Equal(t, model.SortModeSingle, model.ParseSortMode("single"))
	require.Equal(t, model.SortModeSingle, model.ParseSortMode(" Single "))
	require.Equal(t, model.SortModeMulti, model.ParseSortMode("multi"))
	require.Equal(t, model.SortModeMulti, model.ParseSortMode("unknown"))
}
