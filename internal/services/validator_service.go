package services

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/flowforge/internal/models"
)

// FieldErrors maps parameter names to a human-readable validation message.
type FieldErrors map[string]string

// Schema is a compiled set of per-field validation rules for one template.
type Schema struct {
	fields []schemaField
}

type schemaField struct {
	name    string
	kind    models.ParameterKind
	rule    string
	message string
}

// ValidatorService builds field-level validation schemas from a template's
// parameter specs and validates raw user input against them. It has no side
// effects.
type ValidatorService interface {
	BuildSchema(template models.Template) Schema
	// Validate checks every field independently and returns one error per
	// invalid field, keyed by parameter name. On success the returned map
	// holds the accepted (trimmed) values.
	Validate(schema Schema, raw map[string]string) (map[string]string, FieldErrors)
}

type validatorService struct {
	validate *validator.Validate
}

// NewValidatorService creates a new ValidatorService
func NewValidatorService() ValidatorService {
	return &validatorService{validate: validator.New()}
}

func (s *validatorService) BuildSchema(template models.Template) Schema {
	schema := Schema{fields: make([]schemaField, 0, len(template.Parameters))}
	for _, param := range template.Parameters {
		field := schemaField{name: param.Name, kind: param.Kind}
		switch param.Kind {
		case models.ParameterKindInteger:
			field.rule = "required,numeric"
			field.message = "Must be a number"
		case models.ParameterKindAddress:
			field.rule = "required,eth_addr"
			field.message = "Invalid address"
		default:
			field.rule = "required"
			field.message = "Required"
		}
		schema.fields = append(schema.fields, field)
	}
	return schema
}

func (s *validatorService) Validate(schema Schema, raw map[string]string) (map[string]string, FieldErrors) {
	values := make(map[string]string, len(schema.fields))
	errs := make(FieldErrors)

	for _, field := range schema.fields {
		value := strings.TrimSpace(raw[field.name])
		if value == "" {
			errs[field.name] = "Required"
			continue
		}
		if err := s.validate.Var(value, field.rule); err != nil {
			errs[field.name] = field.message
			continue
		}
		values[field.name] = value
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return values, nil
}
