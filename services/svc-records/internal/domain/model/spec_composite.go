package model

type andSpec struct {
	specs []Specification
}

// And is satisfied when every child is.
func And(specs ...Specification) Specification {
	return &andSpec{specs: specs}
}

func (s *andSpec) IsComposite() bool         { return true }
func (s *andSpec) Children() []Specification { return s.specs }
func (s *andSpec) Operator() Operator        { return OperatorAnd }
func (s *andSpec) Field() string             { return "" }
func (s *andSpec) Value() any                { return nil }
