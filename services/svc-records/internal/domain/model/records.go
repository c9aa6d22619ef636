package model

type (
	// Record is one result row keyed by column name.
	Record map[string]any

	RecordList struct {
		Entity  string
		Records []Record
		Filters []FilterInstruction
		Sorts   []SortInstruction
	}

	// EntityFields is an entity together with its resolved allowed fields.
	EntityFields struct {
		Name    string
		Filters []string
		Sorts   []string
	}
)
