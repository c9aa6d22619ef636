package services

import (
	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
)

const (
	DefaultDirectionSuffix = "_sort"
	DefaultSortFieldParam  = "sort"
	DefaultSortOrderParam  = "order"
	DefaultSortField       = "id"
)

type (
	// SortParser turns request parameters into sort instructions.
	SortParser interface {
		Parse(params *model.Params, allowed model.AllowedFieldSet) []model.SortInstruction
	}

	// MultiSortParser reads one "<field><suffix>" key per allowed field.
	// Instructions follow the allowed set's order, not the request's.
	MultiSortParser struct {
		suffix string
	}

	// SingleSortParser reads a single field/order parameter pair, falling back
	// to a default field when the field parameter is absent.
	SingleSortParser struct {
		fieldParam   string
		orderParam   string
		defaultField string
		logger       logger.Logger
	}

	SortParserOptions struct {
		Mode            model.SortMode
		DirectionSuffix string
		FieldParam      string
		OrderParam      string
		DefaultField    string
	}
)

// NewSortParser picks the parser for opts.Mode.
func NewSortParser(opts SortParserOptions, log logger.Logger) SortParser {
	if opts.Mode == model.SortModeSingle {
		return NewSingleSortParser(opts.FieldParam, opts.OrderParam, opts.DefaultField, log)
	}

	return NewMultiSortParser(opts.DirectionSuffix)
}

func NewMultiSortParser(suffix string) *MultiSortParser {
	if suffix == "" {
		suffix = DefaultDirectionSuffix
	}

	return &MultiSortParser{suffix: suffix}
}

func (p *MultiSortParser) Parse(params *model.Params, allowed model.AllowedFieldSet) []model.SortInstruction {
	instructions := make([]model.SortInstruction, 0)

	for _, field := range allowed.Names() {
		direction, ok := params.Get(field + p.suffix)
		if !ok {
			continue
		}

		instructions = append(instructions, model.SortInstruction{
			Field:     field,
			Direction: model.ParseSortDirection(direction),
		})
	}

	return instructions
}

func NewSingleSortParser(fieldParam, orderParam, defaultField string, log logger.Logger) *SingleSortParser {
	if fieldParam == "" {
		fieldParam = DefaultSortFieldParam
	}

	if orderParam == "" {
		orderParam = DefaultSortOrderParam
	}

	if defaultField == "" {
		defaultField = DefaultSortField
	}

	return &SingleSortParser{
		fieldParam:   fieldParam,
		orderParam:   orderParam,
		defaultField: defaultField,
		logger:       log.Component("sort_parser"),
	}
}

func (p *SingleSortParser) Parse(params *model.Params, allowed model.AllowedFieldSet) []model.SortInstruction {
	field := params.Lookup(p.fieldParam, p.defaultField)
	if !allowed.Contains(field) {
		p.logger.Debug().
			Str("field", field).
			Str("reason", reasonFieldNotAllowed).
			Msg("sort parameter ignored")

		return []model.SortInstruction{}
	}

	return []model.SortInstruction{{
		Field:     field,
		Direction: model.ParseSortDirection(params.Lookup(p.orderParam, string(model.DefaultSortDirection))),
	}}
}
