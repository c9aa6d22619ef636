package handlers

import (
	"errors"
	"net/http"

	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"github.com/architeacher/filtersort/services/svc-records/internal/usecases"
	"github.com/architeacher/filtersort/services/svc-records/internal/usecases/queries"
	"github.com/go-chi/chi/v5"
)

const EntityURLParam = "entity"

type (
	filterData struct {
		Field    string `json:"field"`
		Operator string `json:"operator"`
		Value    string `json:"value,omitempty"`
	}

	sortData struct {
		Field     string `json:"field"`
		Direction string `json:"direction"`
	}

	appliedData struct {
		Filters []filterData `json:"filters"`
		Sorts   []sortData   `json:"sorts"`
	}

	recordListResponse struct {
		Data    []model.Record `json:"data"`
		Applied appliedData    `json:"applied"`
		Meta    ResponseMeta   `json:"meta"`
	}

	entityData struct {
		Name    string   `json:"name"`
		Filters []string `json:"filters"`
		Sorts   []string `json:"sorts"`
	}

	RecordsHandler struct {
		app    *usecases.Application
		logger logger.Logger
	}
)

func NewRecordsHandler(app *usecases.Application, log logger.Logger) *RecordsHandler {
	return &RecordsHandler{
		app:    app,
		logger: log.Component("records_handler"),
	}
}

// ListRecords serves GET /v1/entities/{entity}/records. Query parameters keep
// their order, so filters are applied in the order the client sent them.
func (h *RecordsHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Queries.ListRecords.Execute(r.Context(), queries.ListRecordsQuery{
		Entity: chi.URLParam(r, EntityURLParam),
		Params: model.ParseParams(r.URL.RawQuery),
	})
	if err != nil {
		h.handleError(w, r, err)

		return
	}

	response := toRecordListResponse(list, NewMeta(r))

	// meta differs per request, so only the rows and the applied instructions
	// identify the representation.
	etag, err := contentETag(struct {
		Data    []model.Record `json:"data"`
		Applied appliedData    `json:"applied"`
	}{response.Data, response.Applied})
	if err != nil {
		h.handleError(w, r, err)

		return
	}

	w.Header().Set(headerETag, etag)
	w.Header().Set(headerCacheControl, "private, no-cache")

	if match := r.Header.Get(headerIfNoneMatch); match != "" && etagMatches(match, etag) {
		w.WriteHeader(http.StatusNotModified)

		return
	}

	writeJSONResponse(w, http.StatusOK, response)
}

func (h *RecordsHandler) ListEntities(w http.ResponseWriter, r *http.Request) {
	entities, err := h.app.Queries.ListEntities.Execute(r.Context(), queries.ListEntitiesQuery{})
	if err != nil {
		h.handleError(w, r, err)

		return
	}

	data := make([]entityData, 0, len(entities))
	for _, entity := range entities {
		data = append(data, entityData{
			Name:    entity.Name,
			Filters: entity.Filters,
			Sorts:   entity.Sorts,
		})
	}

	writeJSONResponse(w, http.StatusOK, EnvelopedResponse{Data: data, Meta: NewMeta(r)})
}

func (h *RecordsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrEntityNotFound):
		writeErrorResponse(w, http.StatusNotFound, codeNotFound, "entity not found")
	case errors.Is(err, model.ErrDatabaseConnection):
		writeErrorResponse(w, http.StatusServiceUnavailable, codeServiceUnavailable, "database unavailable")
	case errors.Is(err, model.ErrSchemaIntrospection):
		reqLogger := h.logger.WithContext(r.Context())
		reqLogger.Warn().Err(err).Msg("allowed fields could not be resolved")

		writeErrorResponse(w, http.StatusServiceUnavailable, codeServiceUnavailable, "schema unavailable")
	default:
		reqLogger := h.logger.WithContext(r.Context())
		reqLogger.Error().Err(err).Msg("request failed")

		writeErrorResponse(w, http.StatusInternalServerError, codeInternalError, "internal server error")
	}
}

func toRecordListResponse(list *model.RecordList, meta ResponseMeta) recordListResponse {
	records := list.Records
	if records == nil {
		records = make([]model.Record, 0)
	}

	filters := make([]filterData, 0, len(list.Filters))
	for _, f := range list.Filters {
		filters = append(filters, filterData{
			Field:    f.Field,
			Operator: f.Operator.String(),
			Value:    f.Value,
		})
	}

	sorts := make([]sortData, 0, len(list.Sorts))
	for _, s := range list.Sorts {
		sorts = append(sorts, sortData{
			Field:     s.Field,
			Direction: string(s.Direction),
		})
	}

	return recordListResponse{
		Data:    records,
		Applied: appliedData{Filters: filters, Sorts: sorts},
		Meta:    meta,
	}
}
