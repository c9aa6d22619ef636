package ports

import "github.com/architeacher/filtersort/services/svc-records/internal/domain/model"

// QueryBuilder is the chaining contract filters and sorts are applied to. Q is
// the concrete builder type, so each call hands back the same handle.
type QueryBuilder[Q any] interface {
	WhereEquals(field string, value any) Q
	WhereNotEquals(field string, value any) Q
	WhereGreater(field string, value any) Q
	WhereLess(field string, value any) Q
	WhereGreaterOrEqual(field string, value any) Q
	WhereLessOrEqual(field string, value any) Q
	WhereLike(field, pattern string) Q
	WhereBetween(field string, start, end any) Q
	WhereIn(field string, values ...any) Q
	WhereNotIn(field string, values ...any) Q
	WhereNull(field string) Q
	WhereNotNull(field string) Q
	OrderBy(field string, direction model.SortDirection) Q
}
