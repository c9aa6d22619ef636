package model

import "strings"

type (
	SortDirection string

	// SortMode selects how ordering is read from the request.
	SortMode string
)

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"

	DefaultSortDirection = SortAsc

	// SortModeMulti reads one "<field><suffix>=asc|desc" key per allowed field.
	SortModeMulti SortMode = "multi"
	// SortModeSingle reads a single "sort" field and "order" direction pair.
	SortModeSingle SortMode = "single"
)

type (
	SortField struct {
		Field     string
		Direction SortDirection
	}

	Criteria struct {
		spec    Specification
		sorting []SortField
	}
)

func (c Criteria) Spec() Specification  { return c.spec }
func (c Criteria) Sorting() []SortField { return c.sorting }
func (c Criteria) HasSpec() bool        { return c.spec != nil }
func (c Criteria) HasSorting() bool     { return len(c.sorting) > 0 }

// ParseSortDirection lowercases name and falls back to ascending for anything
// other than "asc" or "desc".
func ParseSortDirection(name string) SortDirection {
	switch SortDirection(strings.ToLower(name)) {
	case SortDesc:
		return SortDesc
	default:
		return SortAsc
	}
}

// ParseSortMode falls back to SortModeMulti for unknown names.
func ParseSortMode(name string) SortMode {
	switch SortMode(strings.ToLower(strings.TrimSpace(name))) {
	case SortModeSingle:
		return SortModeSingle
	default:
		return SortModeMulti
	}
}
