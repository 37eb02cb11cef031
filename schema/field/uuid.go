package field

import (
	"github.com/google/uuid"

	"github.com/syssam/hammock"
)

// uuidBuilder validates and coerces RFC-4122 identifiers.
type uuidBuilder struct {
	options
}

// UUID returns an identifier field. A uuid.UUID passes unchanged, strings
// are parsed in any format uuid.Parse accepts, and 16-byte slices are read
// as raw identifiers. The sanitized value is always a uuid.UUID.
func UUID() *uuidBuilder {
	return &uuidBuilder{}
}

// Required marks the field as required.
func (b *uuidBuilder) Required() *uuidBuilder {
	b.required = true
	return b
}

// Default sets the value substituted for absent input.
func (b *uuidBuilder) Default(v any) *uuidBuilder {
	b.def = v
	return b
}

// Validate implements hammock.Field.
func (b *uuidBuilder) Validate(value any) (any, error) {
	if value == nil {
		return b.absent()
	}
	switch v := value.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, hammock.NewValidationError("not a valid uuid")
		}
		return id, nil
	case []byte:
		id, err := uuid.FromBytes(v)
		if err != nil {
			return nil, hammock.NewValidationError("not a valid uuid")
		}
		return id, nil
	}
	return nil, hammock.NewValidationError("not a valid uuid")
}
