package services

import (
	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"github.com/architeacher/filtersort/services/svc-records/internal/ports"
)

// SortApplier adds one ordering key per instruction. The first instruction is
// the primary key; the builder gets nothing when there are no instructions.
type SortApplier[Q ports.QueryBuilder[Q]] struct{}

func NewSortApplier[Q ports.QueryBuilder[Q]]() *SortApplier[Q] {
	return &SortApplier[Q]{}
}

func (a *SortApplier[Q]) Apply(query Q, instructions []model.SortInstruction) Q {
	for _, instruction := range instructions {
		query = query.OrderBy(instruction.Field, instruction.Direction)
	}

	return query
}
