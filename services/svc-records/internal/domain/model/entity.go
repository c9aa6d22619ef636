package model

import (
	"fmt"
	"strings"
)

// Entity is a queryable table together with its optional whitelists. An empty
// whitelist means every column of the table is allowed.
type Entity struct {
	Name           string
	Table          string
	AllowedFilters []string
	AllowedSorts   []string
}

// HasExplicitFilters reports whether filters are restricted by configuration
// rather than by the table's columns.
func (e Entity) HasExplicitFilters() bool { return len(e.AllowedFilters) > 0 }

// HasExplicitSorts is the sort counterpart of HasExplicitFilters.
func (e Entity) HasExplicitSorts() bool { return len(e.AllowedSorts) > 0 }

func (e Entity) Validate() error {
	validationErrs := NewValidationErrors()

	if strings.TrimSpace(e.Name) == "" {
		validationErrs.Add("name", "entity name is required")
	}

	if strings.TrimSpace(e.Table) == "" {
		validationErrs.Add("table", fmt.Sprintf("entity %q has no table", e.Name))
	}

	for _, field := range append(append([]string{}, e.AllowedFilters...), e.AllowedSorts...) {
		if strings.TrimSpace(field) == "" {
			validationErrs.Add("fields", fmt.Sprintf("entity %q lists a blank field", e.Name))

			break
		}
	}

	if validationErrs.HasErrors() {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, validationErrs)
	}

	return nil
}
