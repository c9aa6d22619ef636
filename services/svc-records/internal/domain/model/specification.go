package model

// Specification is one node of a criteria predicate tree. Leaves carry a filter
// operator; OperatorAnd nodes only carry children.
type Specification interface {
	IsComposite() bool
	Children() []Specification
	Operator() Operator
	Field() string
	Value() any
}
