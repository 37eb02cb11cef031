package field

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/syssam/hammock"
)

// enumBuilder passes only values equal to one of a fixed set.
type enumBuilder struct {
	options
	values []any
}

// Enum returns a field passing anything equal to one of values:
//
//	v := field.Enum("a", "b", "c")
//	v.Validate("a") // ok
//	v.Validate("d") // not in the list
func Enum(values ...any) *enumBuilder {
	return &enumBuilder{values: values}
}

// Required marks the field as required.
func (b *enumBuilder) Required() *enumBuilder {
	b.required = true
	return b
}

// Default sets the value substituted for absent input.
func (b *enumBuilder) Default(v any) *enumBuilder {
	b.def = v
	return b
}

// Validate implements hammock.Field.
func (b *enumBuilder) Validate(value any) (any, error) {
	if value == nil {
		return b.absent()
	}
	for _, allowed := range b.values {
		if reflect.DeepEqual(value, allowed) {
			return value, nil
		}
	}
	return nil, hammock.NewValidationError("not in the list")
}

// typeOfBuilder passes only values whose runtime type is in a fixed set.
type typeOfBuilder struct {
	options
	types []reflect.Type
}

// TypeOf returns a field passing any value whose runtime type matches the
// type of one of the prototypes:
//
//	v := field.TypeOf(0.0)
//	v.Validate(0.4) // ok
//	v.Validate(1)   // not of type float64
//
//	v = field.TypeOf(0, 0.0, "")
//	v.Validate(5)     // ok
//	v.Validate("five") // ok
func TypeOf(prototypes ...any) *typeOfBuilder {
	b := &typeOfBuilder{}
	for _, p := range prototypes {
		if t := reflect.TypeOf(p); t != nil {
			b.types = append(b.types, t)
		}
	}
	return b
}

// Required marks the field as required.
func (b *typeOfBuilder) Required() *typeOfBuilder {
	b.required = true
	return b
}

// Default sets the value substituted for absent input.
func (b *typeOfBuilder) Default(v any) *typeOfBuilder {
	b.def = v
	return b
}

// Validate implements hammock.Field.
func (b *typeOfBuilder) Validate(value any) (any, error) {
	t := reflect.TypeOf(value)
	if t == nil {
		return b.absent()
	}
	for _, allowed := range b.types {
		if t == allowed {
			return value, nil
		}
	}
	names := make([]string, len(b.types))
	for i, allowed := range b.types {
		names[i] = allowed.String()
	}
	return nil, hammock.NewValidationError(fmt.Sprintf("not of type %s", strings.Join(names, " or ")))
}
