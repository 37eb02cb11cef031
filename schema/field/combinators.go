package field

import (
	"reflect"

	"github.com/syssam/hammock"
)

// oneOfBuilder passes values that pass any of its child fields.
type oneOfBuilder struct {
	options
	fields []hammock.Field
}

// OneOf returns a field passing values that pass at least one of the child
// fields. The fields are tried in declaration order and the first success
// wins; child sanitization results are discarded and the original value
// passes through unchanged.
//
//	v := field.OneOf(field.URL(), field.Enum("a", "b"))
//	v.Validate("b")                  // ok
//	v.Validate("http://example.com") // ok
//	v.Validate(23)                   // did not match any fields
func OneOf(fields ...hammock.Field) *oneOfBuilder {
	return &oneOfBuilder{fields: fields}
}

// Required marks the field as required.
func (b *oneOfBuilder) Required() *oneOfBuilder {
	b.required = true
	return b
}

// Default sets the value substituted for absent input.
func (b *oneOfBuilder) Default(v any) *oneOfBuilder {
	b.def = v
	return b
}

// Validate implements hammock.Field.
func (b *oneOfBuilder) Validate(value any) (any, error) {
	if value == nil {
		return b.absent()
	}
	for _, f := range b.fields {
		_, err := f.Validate(value)
		if err == nil {
			return value, nil
		}
		if !hammock.IsValidation(err) {
			return nil, err
		}
	}
	return nil, hammock.NewValidationError("did not match any fields")
}

// listOfBuilder passes non-empty lists whose elements pass a child field.
type listOfBuilder struct {
	options
	field hammock.Field
}

// ListOf returns a field passing a list of values that pass f:
//
//	v := field.ListOf(field.TypeOf(0))
//	v.Validate([]any{1, 2, 3})   // ok
//	v.Validate([]any{1, 2, "3"}) // not of type int
//	v.Validate(1)                // not a list
//
// Empty lists are always rejected, even when the field is optional, and a
// missing value is "not a list" rather than a required-error. Per-element
// sanitization results are discarded; the original list passes through.
func ListOf(f hammock.Field) *listOfBuilder {
	return &listOfBuilder{field: f}
}

// Required marks the field as required. It only affects the partial-update
// rule in record validation; ListOf rejects missing and empty lists
// regardless.
func (b *listOfBuilder) Required() *listOfBuilder {
	b.required = true
	return b
}

// Validate implements hammock.Field.
func (b *listOfBuilder) Validate(value any) (any, error) {
	rv := reflect.ValueOf(value)
	if value == nil || rv.Kind() != reflect.Slice {
		return nil, hammock.NewValidationError("not a list")
	}
	if rv.Len() == 0 {
		return nil, hammock.NewValidationError("this field is required")
	}
	for i := 0; i < rv.Len(); i++ {
		if _, err := b.field.Validate(rv.Index(i).Interface()); err != nil {
			return nil, err
		}
	}
	return value, nil
}

// anythingBuilder passes anything.
type anythingBuilder struct {
	options
}

// Anything returns a field that passes any value unchanged.
func Anything() *anythingBuilder {
	return &anythingBuilder{}
}

// Required marks the field as required.
func (b *anythingBuilder) Required() *anythingBuilder {
	b.required = true
	return b
}

// Default sets the value substituted for absent input.
func (b *anythingBuilder) Default(v any) *anythingBuilder {
	b.def = v
	return b
}

// Validate implements hammock.Field.
func (b *anythingBuilder) Validate(value any) (any, error) {
	if value == nil {
		return b.absent()
	}
	return value, nil
}
