// Package schemas provides JSON Schema validation for domain records before
// they are audited and persisted.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed application.schema.json
var applicationSchemaJSON string

//go:embed job.schema.json
var jobSchemaJSON string

//go:embed user.schema.json
var userSchemaJSON string

// Schema names accepted by Validate.
const (
	Application = "application"
	Job         = "job"
	User        = "user"
)

var schemaSources = map[string]string{
	Application: applicationSchemaJSON,
	Job:         jobSchemaJSON,
	User:        userSchemaJSON,
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Messages returns the per-field errors as "field: message" strings.
func (ve *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return msgs
}

// SchemaLoadError represents errors loading or parsing a schema itself.
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validate checks a record against one of the embedded schemas. The record
// may be any JSON-marshalable value; audit callers pass field maps. Returns
// nil when valid, a *ValidationError describing each failing field when
// invalid, and a *SchemaLoadError when the schema name is unknown or the
// schema cannot be compiled.
func Validate(name string, record any) error {
	source, ok := schemaSources[name]
	if !ok {
		return &SchemaLoadError{Name: name, Message: "unknown schema"}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(source),
		gojsonschema.NewGoLoader(record),
	)
	if err != nil {
		return &SchemaLoadError{Name: name, Message: "schema validation failed during load", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
