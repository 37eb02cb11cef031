package hammock

// Fields maps field names to their validators. It is the declaration form
// for Compound and Entity schemas.
type Fields map[string]Field

// Compound validates a keyed record against a fixed mapping of field names
// to fields. It never fails fast: every declared field is evaluated and all
// failures are aggregated into one CompoundValidationError, so a single
// Validate call surfaces every problem with a record.
//
// Compound implements Field, so records can nest:
//
//	address := hammock.NewCompound(hammock.Fields{
//	    "city": field.Text().Required(),
//	    "zip":  field.Text().Match(regexp.MustCompile(`^\d{5}$`)),
//	})
//	person := hammock.NewCompound(hammock.Fields{
//	    "name":    field.Text().Required(),
//	    "address": address,
//	})
type Compound struct {
	fields   Fields
	required bool
	def      any
}

// NewCompound returns a Compound validating the given fields.
func NewCompound(fields Fields) *Compound {
	fs := make(Fields, len(fields))
	for name, f := range fields {
		fs[name] = f
	}
	return &Compound{fields: fs}
}

// Required marks the compound itself as required when nested in a record.
func (c *Compound) Required() *Compound {
	c.required = true
	return c
}

// Default sets the value substituted when the compound receives no value.
func (c *Compound) Default(v any) *Compound {
	c.def = v
	return c
}

// IsRequired reports whether the compound must receive a value.
func (c *Compound) IsRequired() bool { return c.required }

// Validate implements Field. Required fields are enforced; use
// ValidateRecord for partial-update semantics.
func (c *Compound) Validate(value any) (any, error) {
	if value == nil {
		if c.required {
			return nil, NewRequiredError()
		}
		return c.def, nil
	}
	record, ok := value.(map[string]any)
	if !ok {
		return nil, NewValidationError("not a map of fields")
	}
	return c.ValidateRecord(record, true)
}

// ValidateRecord validates record against the declared fields and returns
// the sanitized record. With enforceRequired false, required fields that are
// absent are treated as valid and omitted, allowing partial updates.
//
// The sanitized record contains only keys whose sanitized value is non-nil:
// undeclared input keys are dropped, and unset optional fields are omitted
// rather than included as nulls. A nil record validates as an empty one.
func (c *Compound) ValidateRecord(record map[string]any, enforceRequired bool) (map[string]any, error) {
	validated := make(map[string]any)
	errs := make(map[string]error)
	for name, f := range c.fields {
		value := record[name]
		if f.IsRequired() && value == nil && !enforceRequired {
			continue
		}
		sanitized, err := f.Validate(value)
		if err != nil {
			// Only validation failures are aggregated. Anything else, such
			// as validating through an unbound reference, is a programming
			// error and aborts the whole record.
			if !IsValidation(err) {
				return nil, err
			}
			errs[name] = err
			continue
		}
		if sanitized != nil {
			validated[name] = sanitized
		}
	}
	if err := NewCompoundValidationError(errs); err != nil {
		return nil, err
	}
	return validated, nil
}
