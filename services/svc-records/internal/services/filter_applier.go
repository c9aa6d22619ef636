package services

import (
	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"github.com/architeacher/filtersort/services/svc-records/internal/ports"
)

const betweenBounds = 2

// FilterApplier adds one predicate per instruction to a query builder, in
// instruction order. Values are passed through as strings; the storage layer
// binds them as parameters.
type FilterApplier[Q ports.QueryBuilder[Q]] struct {
	logger logger.Logger
}

func NewFilterApplier[Q ports.QueryBuilder[Q]](log logger.Logger) *FilterApplier[Q] {
	return &FilterApplier[Q]{logger: log.Component("filter_applier")}
}

func (a *FilterApplier[Q]) Apply(query Q, instructions []model.FilterInstruction) Q {
	for _, instruction := range instructions {
		query = a.apply(query, instruction)
	}

	return query
}

func (a *FilterApplier[Q]) apply(query Q, instruction model.FilterInstruction) Q {
	field, value := instruction.Field, instruction.Value

	switch instruction.Operator {
	case model.OperatorEq:
		return query.WhereEquals(field, value)
	case model.OperatorNe:
		return query.WhereNotEquals(field, value)
	case model.OperatorGt:
		return query.WhereGreater(field, value)
	case model.OperatorLt:
		return query.WhereLess(field, value)
	case model.OperatorGte:
		return query.WhereGreaterOrEqual(field, value)
	case model.OperatorLte:
		return query.WhereLessOrEqual(field, value)
	case model.OperatorLike:
		return query.WhereLike(field, "%"+value+"%")
	case model.OperatorBetween:
		bounds := instruction.Values()
		if len(bounds) != betweenBounds {
			a.skip(instruction, reasonInvalidBetween)

			return query
		}

		return query.WhereBetween(field, bounds[0], bounds[1])
	case model.OperatorIn:
		return query.WhereIn(field, toAny(instruction.Values())...)
	case model.OperatorNotIn:
		return query.WhereNotIn(field, toAny(instruction.Values())...)
	case model.OperatorNull:
		return query.WhereNull(field)
	case model.OperatorNotNull:
		return query.WhereNotNull(field)
	default:
		a.skip(instruction, reasonUnsupportedInstr)

		return query
	}
}

func (a *FilterApplier[Q]) skip(instruction model.FilterInstruction, reason string) {
	a.logger.Debug().
		Str("field", instruction.Field).
		Str("operator", instruction.Operator.String()).
		Str("reason", reason).
		Msg("filter instruction skipped")
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}
