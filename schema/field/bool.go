package field

import (
	"strings"

	"github.com/syssam/hammock"
)

// boolBuilder validates and coerces common representations of true and
// false.
type boolBuilder struct {
	options
}

// Boolean returns a boolean field:
//
//	v := field.Boolean()
//	v.Validate("true")  // true
//	v.Validate("yes")   // true
//	v.Validate(1)       // true
//	v.Validate("0")     // false
//	v.Validate("maybe") // not a boolean
//
// The strings "true", "1" and "yes" coerce to true and "false", "0" and
// "no" to false, case-insensitively. Integers 1 and 0 coerce to true and
// false; any other integer fails.
func Boolean() *boolBuilder {
	return &boolBuilder{}
}

// Required marks the field as required.
func (b *boolBuilder) Required() *boolBuilder {
	b.required = true
	return b
}

// Default sets the value substituted for absent input.
func (b *boolBuilder) Default(v any) *boolBuilder {
	b.def = v
	return b
}

// Validate implements hammock.Field.
func (b *boolBuilder) Validate(value any) (any, error) {
	if value == nil {
		return b.absent()
	}
	if v, ok := value.(bool); ok {
		return v, nil
	}
	if s, ok := value.(string); ok {
		switch strings.ToLower(s) {
		case "true", "1", "yes":
			return true, nil
		case "false", "0", "no":
			return false, nil
		}
		return nil, hammock.NewValidationError("not a boolean")
	}
	if n, ok := toInt(value); ok {
		switch n {
		case 1:
			return true, nil
		case 0:
			return false, nil
		}
	}
	return nil, hammock.NewValidationError("not a boolean")
}
