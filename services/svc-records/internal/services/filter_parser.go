package services

import (
	"strings"

	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
)

const DefaultOperatorSuffix = "_op"

const (
	reasonFieldNotAllowed  = "field_not_allowed"
	reasonUnknownOperator  = "unknown_operator"
	reasonEmptyValue       = "empty_value"
	reasonOperatorOnlyKey  = "operator_without_value"
	reasonInvalidBetween   = "invalid_between"
	reasonUnsupportedInstr = "unsupported_operator"
)

// FilterParser turns request parameters into filter instructions.
//
// A parameter whose key ends with the suffix selects the operator for the field
// named by the rest of the key; every other parameter carries a field value.
// Instructions come out in parameter order. Anything that is not whitelisted
// or cannot be interpreted is dropped without an error.
type FilterParser struct {
	suffix string
	policy model.OperatorPolicy
	logger logger.Logger
}

func NewFilterParser(suffix string, policy model.OperatorPolicy, log logger.Logger) *FilterParser {
	if suffix == "" {
		suffix = DefaultOperatorSuffix
	}

	if policy == "" {
		policy = model.OperatorPolicyReject
	}

	return &FilterParser{
		suffix: suffix,
		policy: policy,
		logger: log.Component("filter_parser"),
	}
}

func (p *FilterParser) Parse(params *model.Params, allowed model.AllowedFieldSet) []model.FilterInstruction {
	instructions := make([]model.FilterInstruction, 0)

	for _, key := range params.Keys() {
		if strings.HasSuffix(key, p.suffix) {
			if instruction, ok := p.parseOperatorOnly(params, allowed, key); ok {
				instructions = append(instructions, instruction)
			}

			continue
		}

		if !allowed.Contains(key) {
			p.reject(key, reasonFieldNotAllowed)

			continue
		}

		operator, ok := p.operatorFor(params, key)
		if !ok {
			p.reject(key, reasonUnknownOperator)

			continue
		}

		value, _ := params.Get(key)

		if !operator.RequiresValue() {
			instructions = append(instructions, model.FilterInstruction{Field: key, Operator: operator})

			continue
		}

		if strings.TrimSpace(value) == "" {
			p.reject(key, reasonEmptyValue)

			continue
		}

		instructions = append(instructions, model.FilterInstruction{
			Field:    key,
			Operator: operator,
			Value:    value,
		})
	}

	return instructions
}

// parseOperatorOnly handles an operator key whose field has no value key. Only
// the value-less operators can produce an instruction from it.
func (p *FilterParser) parseOperatorOnly(
	params *model.Params,
	allowed model.AllowedFieldSet,
	key string,
) (model.FilterInstruction, bool) {
	field := strings.TrimSuffix(key, p.suffix)

	if params.Has(field) {
		return model.FilterInstruction{}, false
	}

	if !allowed.Contains(field) {
		p.reject(field, reasonFieldNotAllowed)

		return model.FilterInstruction{}, false
	}

	raw, _ := params.Get(key)

	operator, ok := model.ParseOperator(raw)
	if !ok || operator.RequiresValue() {
		p.reject(field, reasonOperatorOnlyKey)

		return model.FilterInstruction{}, false
	}

	return model.FilterInstruction{Field: field, Operator: operator}, true
}

// operatorFor reads the operator key of field. A missing or blank operator
// selects the default; an unknown one is settled by the policy.
func (p *FilterParser) operatorFor(params *model.Params, field string) (model.Operator, bool) {
	raw := params.Lookup(field+p.suffix, "")
	if raw == "" {
		return model.DefaultOperator, true
	}

	if operator, ok := model.ParseOperator(raw); ok {
		return operator, true
	}

	if p.policy == model.OperatorPolicyLike {
		return model.OperatorLike, true
	}

	return "", false
}

func (p *FilterParser) reject(field, reason string) {
	p.logger.Debug().
		Str("field", field).
		Str("reason", reason).
		Msg("filter parameter ignored")
}
