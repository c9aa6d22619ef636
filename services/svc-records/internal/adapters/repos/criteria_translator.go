package repos

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"github.com/jackc/pgx/v5"
)

// CriteriaTranslator renders criteria onto a squirrel select. Field names are
// quoted as identifiers and values are always bound as placeholders.
type CriteriaTranslator struct {
	logger *logger.Logger
}

func NewCriteriaTranslator(log *logger.Logger) *CriteriaTranslator {
	return &CriteriaTranslator{logger: log}
}

func (t *CriteriaTranslator) ApplyToSelect(builder sq.SelectBuilder, criteria model.Criteria) sq.SelectBuilder {
	builder = t.ApplyConditionsOnly(builder, criteria)

	return t.applySorting(builder, criteria)
}

func (t *CriteriaTranslator) ApplyConditionsOnly(builder sq.SelectBuilder, criteria model.Criteria) sq.SelectBuilder {
	if !criteria.HasSpec() {
		return builder
	}

	if where := t.translateSpec(criteria.Spec()); where != nil {
		builder = builder.Where(where)
	}

	return builder
}

func (t *CriteriaTranslator) translateSpec(spec model.Specification) sq.Sqlizer {
	col := quoteIdentifier(spec.Field())

	switch spec.Operator() {
	case model.OperatorEq:
		return sq.Eq{col: spec.Value()}

	case model.OperatorNe:
		return sq.NotEq{col: spec.Value()}

	case model.OperatorGt:
		return sq.Gt{col: spec.Value()}

	case model.OperatorLt:
		return sq.Lt{col: spec.Value()}

	case model.OperatorGte:
		return sq.GtOrEq{col: spec.Value()}

	case model.OperatorLte:
		return sq.LtOrEq{col: spec.Value()}

	// LIKE compares the text form so numeric and temporal columns can be
	// searched by substring too.
	case model.OperatorLike:
		return sq.Expr(col+"::text LIKE ?", spec.Value())

	case model.OperatorIn:
		return sq.Eq{col: spec.Value()}

	case model.OperatorNotIn:
		return sq.NotEq{col: spec.Value()}

	case model.OperatorNull:
		return sq.Eq{col: nil}

	case model.OperatorNotNull:
		return sq.NotEq{col: nil}

	case model.OperatorBetween:
		values, ok := spec.Value().([]any)
		if !ok || len(values) != 2 {
			break
		}

		return sq.Expr(col+" BETWEEN ? AND ?", values[0], values[1])

	case model.OperatorAnd:
		conditions := make(sq.And, 0, len(spec.Children()))
		for _, child := range spec.Children() {
			if condition := t.translateSpec(child); condition != nil {
				conditions = append(conditions, condition)
			}
		}

		return conditions
	}

	if t.logger != nil {
		t.logger.Warn().
			Str("field", spec.Field()).
			Str("operator", spec.Operator().String()).
			Msg("untranslatable specification dropped")
	}

	return nil
}

func (t *CriteriaTranslator) applySorting(builder sq.SelectBuilder, c model.Criteria) sq.SelectBuilder {
	for _, s := range c.Sorting() {
		builder = builder.OrderBy(quoteIdentifier(s.Field) + " " + strings.ToUpper(string(s.Direction)))
	}

	return builder
}

// quoteIdentifier quotes a column or a schema-qualified table name.
func quoteIdentifier(name string) string {
	return pgx.Identifier(strings.Split(name, ".")).Sanitize()
}
