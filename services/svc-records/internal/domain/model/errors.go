package model

import (
	"errors"
	"strings"
)

var (
	ErrEntityNotFound      = errors.New("entity not found")
	ErrInvalidEntity       = errors.New("invalid entity definition")
	ErrDuplicateEntity     = errors.New("entity already registered")
	ErrSchemaIntrospection = errors.New("schema introspection error")
	ErrDatabaseConnection  = errors.New("database connection error")
	ErrDatabaseQuery       = errors.New("database query error")
	ErrRegistryUnavailable = errors.New("entity registry unavailable")
)

type (
	ValidationError struct {
		Field   string
		Message string
	}

	// ValidationErrors collects every problem of one entity definition so a
	// broken registry file is reported in a single pass.
	ValidationErrors struct {
		Errors []ValidationError
	}
)

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{Errors: make([]ValidationError, 0)}
}

func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}

	parts := make([]string, len(v.Errors))
	for i, e := range v.Errors {
		parts[i] = e.Field + ": " + e.Message
	}

	return strings.Join(parts, "; ")
}
