package hammock

// Field is the basic validation unit. A Field sanitizes and coerces a single
// untyped value into a typed one, or reports why it cannot.
//
// The Validate contract: an absent value (untyped nil) fails with a
// RequiredError when the field is required, and otherwise yields the field's
// configured default without invoking any type-specific logic. A present
// value is checked and coerced by the concrete field, which returns either a
// sanitized value of the field's target type or an error from the validation
// family.
//
// Fields are pure functions of their configuration and input. They are
// immutable once handed to a Compound, an Entity or another field, and are
// therefore safe for concurrent use.
type Field interface {
	// Validate checks value and returns its sanitized form.
	Validate(value any) (any, error)

	// IsRequired reports whether the field must receive a value.
	// Compound consults it for the partial-update rule.
	IsRequired() bool
}
