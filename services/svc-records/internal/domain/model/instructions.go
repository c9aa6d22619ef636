package model

import "strings"

const listSeparator = ","

type (
	// FilterInstruction is one validated predicate taken from the request.
	FilterInstruction struct {
		Field    string   `json:"field"`
		Operator Operator `json:"operator"`
		Value    string   `json:"value,omitempty"`
	}

	// SortInstruction is one validated ordering key taken from the request.
	SortInstruction struct {
		Field     string        `json:"field"`
		Direction SortDirection `json:"direction"`
	}
)

// Values splits the raw value on commas. Parts are not trimmed.
func (i FilterInstruction) Values() []string {
	return strings.Split(i.Value, listSeparator)
}
