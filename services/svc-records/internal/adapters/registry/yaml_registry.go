package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"gopkg.in/yaml.v3"
)

type (
	// Registry holds the entities loaded at startup. It is read-only after
	// construction and safe for concurrent use.
	Registry struct {
		entities []model.Entity
		index    map[string]int
	}

	document struct {
		Entities []entityDocument `yaml:"entities"`
	}

	entityDocument struct {
		Name           string   `yaml:"name"`
		Table          string   `yaml:"table"`
		AllowedFilters []string `yaml:"allowed_filters"`
		AllowedSorts   []string `yaml:"allowed_sorts"`
	}
)

// LoadFile reads a registry document such as:
//
//	entities:
//	  - name: users
//	    table: public.users
//	    allowed_filters: [status, age]
//	    allowed_sorts: [name, created_at]
//
// Omitted or empty field lists allow every column of the table.
func LoadFile(path string) (*Registry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", model.ErrRegistryUnavailable, path, err)
	}

	return Load(bytes.NewReader(content))
}

func Load(r io.Reader) (*Registry, error) {
	var doc document

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decoding entities: %w", model.ErrRegistryUnavailable, err)
	}

	entities := make([]model.Entity, 0, len(doc.Entities))
	for _, entry := range doc.Entities {
		entities = append(entities, model.Entity{
			Name:           entry.Name,
			Table:          entry.Table,
			AllowedFilters: entry.AllowedFilters,
			AllowedSorts:   entry.AllowedSorts,
		})
	}

	return New(entities...)
}

// New validates entities and rejects duplicate names.
func New(entities ...model.Entity) (*Registry, error) {
	reg := &Registry{
		entities: make([]model.Entity, 0, len(entities)),
		index:    make(map[string]int, len(entities)),
	}

	for _, entity := range entities {
		if err := entity.Validate(); err != nil {
			return nil, err
		}

		if _, exists := reg.index[entity.Name]; exists {
			return nil, fmt.Errorf("%w: %s", model.ErrDuplicateEntity, entity.Name)
		}

		reg.index[entity.Name] = len(reg.entities)
		reg.entities = append(reg.entities, entity)
	}

	return reg, nil
}

func (r *Registry) Get(name string) (model.Entity, error) {
	i, ok := r.index[name]
	if !ok {
		return model.Entity{}, fmt.Errorf("%w: %s", model.ErrEntityNotFound, name)
	}

	return r.entities[i], nil
}

func (r *Registry) List() []model.Entity {
	entities := make([]model.Entity, len(r.entities))
	copy(entities, r.entities)

	return entities
}
