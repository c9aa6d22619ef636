package ports

import "github.com/architeacher/filtersort/services/svc-records/internal/domain/model"

// EntityRegistry looks up the entities exposed for listing.
type EntityRegistry interface {
	// Get returns model.ErrEntityNotFound for unknown names.
	Get(name string) (model.Entity, error)

	// List returns every registered entity in registration order.
	List() []model.Entity
}
