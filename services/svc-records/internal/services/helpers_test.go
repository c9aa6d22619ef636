package services_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
)

// recordingQuery renders every builder call as a SQL-like fragment.
type recordingQuery struct {
	calls []string
}

func newRecordingQuery() *recordingQuery {
	return &recordingQuery{calls: make([]string, 0)}
}

func (q *recordingQuery) record(format string, args ...any) *recordingQuery {
	q.calls = append(q.calls, fmt.Sprintf(format, args...))

	return q
}

func (q *recordingQuery) WhereEquals(field string, value any) *recordingQuery {
	return q.record("%s = %v", field, value)
}

func (q *recordingQuery) WhereNotEquals(field string, value any) *recordingQuery {
	return q.record("%s != %v", field, value)
}

func (q *recordingQuery) WhereGreater(field string, value any) *recordingQuery {
	return q.record("%s > %v", field, value)
}

func (q *recordingQuery) WhereLess(field string, value any) *recordingQuery {
	return q.record("%s < %v", field, value)
}

func (q *recordingQuery) WhereGreaterOrEqual(field string, value any) *recordingQuery {
	return q.record("%s >= %v", field, value)
}

func (q *recordingQuery) WhereLessOrEqual(field string, value any) *recordingQuery {
	return q.record("%s <= %v", field, value)
}

func (q *recordingQuery) WhereLike(field, pattern string) *recordingQuery {
	return q.record("%s LIKE %s", field, pattern)
}

func (q *recordingQuery) WhereBetween(field string, start, end any) *recordingQuery {
	return q.record("%s BETWEEN %v AND %v", field, start, end)
}

func (q *recordingQuery) WhereIn(field string, values ...any) *recordingQuery {
	return q.record("%s IN (%s)", field, joinValues(values))
}

func (q *recordingQuery) WhereNotIn(field string, values ...any) *recordingQuery {
	return q.record("%s NOT IN (%s)", field, joinValues(values))
}

func (q *recordingQuery) WhereNull(field string) *recordingQuery {
	return q.record("%s IS NULL", field)
}

func (q *recordingQuery) WhereNotNull(field string) *recordingQuery {
	return q.record("%s IS NOT NULL", field)
}

func (q *recordingQuery) OrderBy(field string, direction model.SortDirection) *recordingQuery {
	return q.record("ORDER BY %s %s", field, direction)
}

func joinValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, ",")
}

type stubColumnLister struct {
	columns map[string][]string
	err     error
	calls   int
}

func (s *stubColumnLister) ListColumns(_ context.Context, table string) ([]string, error) {
	s.calls++

	if s.err != nil {
		return nil, s.err
	}

	return s.columns[table], nil
}

type stubRegistry struct {
	entities map[string]model.Entity
}

func (s stubRegistry) Get(name string) (model.Entity, error) {
	entity, ok := s.entities[name]
	if !ok {
		return model.Entity{}, model.ErrEntityNotFound
	}

	return entity, nil
}

func (s stubRegistry) List() []model.Entity {
	entities := make([]model.Entity, 0, len(s.entities))
	for _, entity := range s.entities {
		entities = append(entities, entity)
	}

	return entities
}

type stubRecordsRepository struct {
	records  []model.Record
	err      error
	criteria model.Criteria
}

func (s *stubRecordsRepository) List(_ context.Context, _ model.Entity, criteria model.Criteria) ([]model.Record, error) {
	s.criteria = criteria

	return s.records, s.err
}
