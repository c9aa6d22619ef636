package model

import "strings"

type (
	// Operator is a filter comparison selected through the operator suffix key.
	Operator string

	// OperatorPolicy decides what happens to an operator name outside the known set.
	OperatorPolicy string
)

const (
	OperatorEq      Operator = "eq"
	OperatorNe      Operator = "ne"
	OperatorGt      Operator = "gt"
	OperatorLt      Operator = "lt"
	OperatorGte     Operator = "gte"
	OperatorLte     Operator = "lte"
	OperatorBetween Operator = "between"
	OperatorIn      Operator = "in"
	OperatorNotIn   Operator = "notIn"
	OperatorLike    Operator = "like"
	OperatorNull    Operator = "null"
	OperatorNotNull Operator = "notNull"

	// OperatorAnd joins child specifications. It is never accepted from a request.
	OperatorAnd Operator = "and"

	DefaultOperator = OperatorLike

	// OperatorPolicyReject drops filters whose operator is unknown.
	OperatorPolicyReject OperatorPolicy = "reject"
	// OperatorPolicyLike treats unknown operators as a substring match.
	OperatorPolicyLike OperatorPolicy = "like"
)

var (
	filterOperators = []Operator{
		OperatorEq,
		OperatorNe,
		OperatorGt,
		OperatorLt,
		OperatorGte,
		OperatorLte,
		OperatorBetween,
		OperatorIn,
		OperatorNotIn,
		OperatorLike,
		OperatorNull,
		OperatorNotNull,
	}

	operatorsByName = func() map[string]Operator {
		index := make(map[string]Operator, len(filterOperators))
		for _, op := range filterOperators {
			index[strings.ToLower(string(op))] = op
		}

		return index
	}()
)

// FilterOperators returns the closed set of operators a request may select.
func FilterOperators() []Operator {
	ops := make([]Operator, len(filterOperators))
	copy(ops, filterOperators)

	return ops
}

// ParseOperator matches name against the filter operators, ignoring case and
// surrounding whitespace, so "notin" and "NotIn" both select OperatorNotIn.
func ParseOperator(name string) (Operator, bool) {
	op, ok := operatorsByName[strings.ToLower(strings.TrimSpace(name))]

	return op, ok
}

func (o Operator) String() string { return string(o) }

// IsFilter reports whether o belongs to the request-selectable set.
func (o Operator) IsFilter() bool {
	op, ok := operatorsByName[strings.ToLower(string(o))]

	return ok && op == o
}

// RequiresValue is false for the null checks, which ignore the filter value.
func (o Operator) RequiresValue() bool {
	return o != OperatorNull && o != OperatorNotNull
}

// IsList reports whether the value is split on commas before it is applied.
func (o Operator) IsList() bool {
	return o == OperatorBetween || o == OperatorIn || o == OperatorNotIn
}

// ParseOperatorPolicy falls back to OperatorPolicyReject for unknown names.
func ParseOperatorPolicy(name string) OperatorPolicy {
	switch OperatorPolicy(strings.ToLower(strings.TrimSpace(name))) {
	case OperatorPolicyLike:
		return OperatorPolicyLike
	default:
		return OperatorPolicyReject
	}
}
