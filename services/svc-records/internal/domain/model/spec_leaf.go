package model

type baseSpec struct {
	op    Operator
	field string
}

func (b baseSpec) IsComposite() bool         { return false }
func (b baseSpec) Children() []Specification { return nil }
func (b baseSpec) Operator() Operator        { return b.op }
func (b baseSpec) Field() string             { return b.field }

type comparisonSpec struct {
	baseSpec
	value any
}

func newComparison(op Operator, field string, value any) Specification {
	return &comparisonSpec{baseSpec: baseSpec{op: op, field: field}, value: value}
}

func Eq(field string, value any) Specification    { return newComparison(OperatorEq, field, value) }
func NotEq(field string, value any) Specification { return newComparison(OperatorNe, field, value) }
func Gt(field string, value any) Specification    { return newComparison(OperatorGt, field, value) }
func Lt(field string, value any) Specification    { return newComparison(OperatorLt, field, value) }
func Gte(field string, value any) Specification   { return newComparison(OperatorGte, field, value) }
func Lte(field string, value any) Specification   { return newComparison(OperatorLte, field, value) }

// Like matches pattern verbatim; wildcards are the caller's choice.
func Like(field, pattern string) Specification {
	return newComparison(OperatorLike, field, pattern)
}

func (s *comparisonSpec) Value() any { return s.value }

type listSpec struct {
	baseSpec
	values []any
}

func In(field string, values ...any) Specification {
	return &listSpec{baseSpec: baseSpec{op: OperatorIn, field: field}, values: values}
}

func NotIn(field string, values ...any) Specification {
	return &listSpec{baseSpec: baseSpec{op: OperatorNotIn, field: field}, values: values}
}

func (s *listSpec) Value() any { return s.values }

type betweenSpec struct {
	baseSpec
	start any
	end   any
}

func Between(field string, start, end any) Specification {
	return &betweenSpec{baseSpec: baseSpec{op: OperatorBetween, field: field}, start: start, end: end}
}

func (s *betweenSpec) Value() any { return []any{s.start, s.end} }

type nullSpec struct {
	baseSpec
}

func IsNull(field string) Specification {
	return &nullSpec{baseSpec: baseSpec{op: OperatorNull, field: field}}
}

func NotNull(field string) Specification {
	return &nullSpec{baseSpec: baseSpec{op: OperatorNotNull, field: field}}
}

func (s *nullSpec) Value() any { return nil }
