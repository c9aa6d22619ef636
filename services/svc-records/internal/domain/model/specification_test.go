package model_test

import (
	"testing"

	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestLeafSpecifications(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name             string
		spec             model.Specification
		expectedOperator model.Operator
		expectedValue    any
	}{
		{name: "eq", spec: model.Eq("age", 5), expectedOperator: model.OperatorEq, expectedValue: 5},
		{name: "not eq", spec: model.NotEq("age", 5), expectedOperator: model.OperatorNe, expectedValue: 5},
		{name: "gt", spec: model.Gt("age", 5), expectedOperator: model.OperatorGt, expectedValue: 5},
		{name: "lt", spec: model.Lt("age", 5), expectedOperator: model.OperatorLt, expectedValue: 5},
		{name: "gte", spec: model.Gte("age", 5), expectedOperator: model.OperatorGte, expectedValue: 5},
		{name: "lte", spec: model.Lte("age", 5), expectedOperator: model.OperatorLte, expectedValue: 5},
		{name: "like", spec: model.Like("age", "%5%"), expectedOperator: model.OperatorLike, expectedValue: "%5%"},
		{name: "between", spec: model.Between("age", 1, 9), expectedOperator: model.OperatorBetween, expectedValue: []any{1, 9}},
		{name: "in", spec: model.In("age", 1, 2), expectedOperator: model.OperatorIn, expectedValue: []any{1, 2}},
		{name: "not in", spec: model.NotIn("age", 3), expectedOperator: model.OperatorNotIn, expectedValue: []any{3}},
		{name: "null", spec: model.IsNull("age"), expectedOperator: model.OperatorNull, expectedValue: nil},
		{name: "not null", spec: model.NotNull("age"), expectedOperator: model.OperatorNotNull, expectedValue: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.False(t, tc.spec.IsComposite())
			require.Nil(t, tc.spec.Children())
			require.Equal(t, "age", tc.spec.Field())
			require.Equal(t, tc.expectedOperator, tc.spec.Operator())
			require.Equal(t, tc.expectedValue, tc.spec.Value())
		})
	}
}

func TestAndSpecification(t *testing.T) {
	t.Parallel()

	inner := model.And(model.Eq("status", "active"), model.IsNull("deleted_at"))
	spec := model.And(model.Gt("age", 18), inner)

	require.True(t, spec.IsComposite())
	require.Equal(t, model.OperatorAnd, spec.Operator())
	require.Empty(t, spec.Field())
	require.Nil(t, spec.Value())

	children := spec.Children()
	require.Len(t, children, 2)
	require.Equal(t, model.OperatorGt, children[0].Operator())
	require.True(t, children[1].IsComposite())
	require.Len(t, children[1].Children(), 2)
}
