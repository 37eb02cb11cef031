package hammock

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Standard sentinel errors for common failure cases.
var (
	// ErrValidation matches every error produced by field or record
	// validation, including RequiredError and CompoundValidationError.
	ErrValidation = errors.New("hammock: invalid value")

	// ErrRequired is returned when a required field receives no value.
	ErrRequired = errors.New("hammock: this field is required")

	// ErrInvalidSchema indicates a schema-definition error: an unresolvable
	// or out-of-model reference, a duplicate entity name, or validation
	// through a reference that was never bound by a Model.
	ErrInvalidSchema = errors.New("hammock: invalid schema")
)

// ValidationError reports that a single value failed a field's check.
// It is terminal and never holds child errors.
type ValidationError struct {
	// Message is the human-readable constraint that was violated,
	// e.g. "this text is too short".
	Message string
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	return "hammock: " + e.Message
}

// Is reports whether the target matches the validation sentinel.
// This allows errors.Is(err, ErrValidation) to return true.
func (e *ValidationError) Is(err error) bool {
	return err == ErrValidation
}

// NewValidationError returns a new ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// IsValidation returns true if the error belongs to the validation family:
// ValidationError, RequiredError or CompoundValidationError. Schema errors
// are not validation errors.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrValidation)
}

// RequiredError reports that a required field received no value.
type RequiredError struct{}

// Error returns the error string.
func (e *RequiredError) Error() string {
	return "hammock: this field is required"
}

// Is reports whether the target matches the required or validation sentinel.
func (e *RequiredError) Is(err error) bool {
	return err == ErrRequired || err == ErrValidation
}

// NewRequiredError returns a new RequiredError.
func NewRequiredError() *RequiredError {
	return &RequiredError{}
}

// IsRequired returns true if the error is a RequiredError.
func IsRequired(err error) bool {
	if err == nil {
		return false
	}
	var e *RequiredError
	return errors.As(err, &e) || errors.Is(err, ErrRequired)
}

// CompoundValidationError reports that one or more fields of a record failed
// validation. Errors maps field names to whichever error each field produced,
// which may itself be a CompoundValidationError for nested records.
//
// A CompoundValidationError is never empty; use NewCompoundValidationError,
// which returns nil when given no errors.
type CompoundValidationError struct {
	Errors map[string]error
}

// Error returns the error string with one line per failed field,
// sorted by field name.
func (e *CompoundValidationError) Error() string {
	names := make([]string, 0, len(e.Errors))
	for name := range e.Errors {
		names = append(names, name)
	}
	sort.Strings(names)
	var sb strings.Builder
	sb.WriteString("hammock: some fields were invalid:")
	for _, name := range names {
		fmt.Fprintf(&sb, "\n  %s: %v", name, e.Errors[name])
	}
	return sb.String()
}

// Is reports whether the target matches the validation sentinel.
func (e *CompoundValidationError) Is(err error) bool {
	return err == ErrValidation
}

// NewCompoundValidationError returns a new CompoundValidationError wrapping
// the given per-field errors, or nil if the map is empty.
func NewCompoundValidationError(errs map[string]error) error {
	if len(errs) == 0 {
		return nil
	}
	return &CompoundValidationError{Errors: errs}
}

// IsCompoundValidation returns true if the error is a CompoundValidationError.
func IsCompoundValidation(err error) bool {
	if err == nil {
		return false
	}
	var e *CompoundValidationError
	return errors.As(err, &e)
}

// SchemaError reports a schema-definition mistake. Unlike validation errors,
// schema errors indicate a programming error: they abort Model construction
// and are never aggregated into a CompoundValidationError.
type SchemaError struct {
	Entity    string // Entity name (if applicable)
	Reference string // Reference name (if applicable)
	Message   string
}

// Error returns the error string.
func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString("hammock: schema error")
	if e.Entity != "" {
		sb.WriteString(" on entity ")
		sb.WriteString(e.Entity)
	}
	if e.Reference != "" {
		sb.WriteString(" reference ")
		sb.WriteString(e.Reference)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	return sb.String()
}

// Is reports whether the target matches the schema sentinel.
func (e *SchemaError) Is(err error) bool {
	return err == ErrInvalidSchema
}

// NewSchemaError returns a new SchemaError.
func NewSchemaError(entity, reference, message string) *SchemaError {
	return &SchemaError{Entity: entity, Reference: reference, Message: message}
}

// IsSchemaError returns true if the error is a SchemaError.
func IsSchemaError(err error) bool {
	if err == nil {
		return false
	}
	var e *SchemaError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidSchema)
}
