package model

// CriteriaBuilder records predicates and ordering keys in call order. Every
// method returns the same builder so calls chain.
type CriteriaBuilder struct {
	specs   []Specification
	sorting []SortField
}

func NewCriteria() *CriteriaBuilder {
	return &CriteriaBuilder{
		specs: make([]Specification, 0),
	}
}

func (b *CriteriaBuilder) WhereEquals(field string, value any) *CriteriaBuilder {
	return b.WhereSpec(Eq(field, value))
}

func (b *CriteriaBuilder) WhereNotEquals(field string, value any) *CriteriaBuilder {
	return b.WhereSpec(NotEq(field, value))
}

func (b *CriteriaBuilder) WhereGreater(field string, value any) *CriteriaBuilder {
	return b.WhereSpec(Gt(field, value))
}

func (b *CriteriaBuilder) WhereLess(field string, value any) *CriteriaBuilder {
	return b.WhereSpec(Lt(field, value))
}

func (b *CriteriaBuilder) WhereGreaterOrEqual(field string, value any) *CriteriaBuilder {
	return b.WhereSpec(Gte(field, value))
}

func (b *CriteriaBuilder) WhereLessOrEqual(field string, value any) *CriteriaBuilder {
	return b.WhereSpec(Lte(field, value))
}

func (b *CriteriaBuilder) WhereLike(field, pattern string) *CriteriaBuilder {
	return b.WhereSpec(Like(field, pattern))
}

func (b *CriteriaBuilder) WhereBetween(field string, start, end any) *CriteriaBuilder {
	return b.WhereSpec(Between(field, start, end))
}

func (b *CriteriaBuilder) WhereIn(field string, values ...any) *CriteriaBuilder {
	return b.WhereSpec(In(field, values...))
}

func (b *CriteriaBuilder) WhereNotIn(field string, values ...any) *CriteriaBuilder {
	return b.WhereSpec(NotIn(field, values...))
}

func (b *CriteriaBuilder) WhereNull(field string) *CriteriaBuilder {
	return b.WhereSpec(IsNull(field))
}

func (b *CriteriaBuilder) WhereNotNull(field string) *CriteriaBuilder {
	return b.WhereSpec(NotNull(field))
}

func (b *CriteriaBuilder) WhereSpec(spec Specification) *CriteriaBuilder {
	b.specs = append(b.specs, spec)

	return b
}

// OrderBy appends a tie-break key; the first call is the primary key.
func (b *CriteriaBuilder) OrderBy(field string, direction SortDirection) *CriteriaBuilder {
	b.sorting = append(b.sorting, SortField{Field: field, Direction: direction})

	return b
}

func (b *CriteriaBuilder) Build() Criteria {
	var rootSpec Specification

	if len(b.specs) == 1 {
		rootSpec = b.specs[0]
	} else if len(b.specs) > 1 {
		rootSpec = And(b.specs...)
	}

	return Criteria{
		spec:    rootSpec,
		sorting: b.sorting,
	}
}
