package hammock

import (
	"fmt"
	"reflect"
)

// Reference is a typed link from one entity's schema to another entity.
// References are declared with either a direct *Entity or a forward name,
// so that mutually-referencing schemas can be declared in any order:
//
//	hammock.One(author)     // direct
//	hammock.One("Author")   // forward name, bound during Model construction
//
// A named reference starts unbound and transitions to bound exactly once,
// inside Model construction, before the Model is published. Validating
// through an unbound reference is a programming error and yields a
// SchemaError, never a validation error.
type Reference interface {
	Field

	// Target returns the referenced entity, or nil while unbound.
	Target() *Entity

	// TargetName returns the referenced entity's name. For direct references
	// it is the entity's declared name.
	TargetName() string

	// bind is called by Model construction to resolve a named reference.
	bind(*Entity)
}

// reference holds the two-state target shared by One and Many.
type reference struct {
	target   *Entity
	name     string
	optional bool
}

func newReference(target any) reference {
	switch t := target.(type) {
	case *Entity:
		return reference{target: t, name: t.Name()}
	case string:
		return reference{name: t}
	default:
		panic(fmt.Sprintf("hammock: reference target must be *Entity or string, got %T", target))
	}
}

// Target returns the referenced entity, or nil while unbound.
func (r *reference) Target() *Entity { return r.target }

// TargetName returns the referenced entity's name.
func (r *reference) TargetName() string { return r.name }

func (r *reference) bind(e *Entity) { r.target = e }

// IsRequired reports whether the reference must receive a value.
// References are required unless declared Optional.
func (r *reference) IsRequired() bool { return !r.optional }

func (r *reference) unresolved() error {
	return NewSchemaError("", r.name, "reference has not been resolved by a model")
}

// ToOne is a link to a single entity. Its values are documents of the
// referenced entity.
type ToOne struct {
	reference
}

// One returns a reference to a single entity. The target is either a
// *Entity or the name of an entity to be resolved during Model construction.
func One(target any) *ToOne {
	return &ToOne{reference: newReference(target)}
}

// Optional makes the reference optional; by default a declared reference
// must be present on create.
func (r *ToOne) Optional() *ToOne {
	r.optional = true
	return r
}

// Validate implements Field. The value must be a document of the
// referenced entity.
func (r *ToOne) Validate(value any) (any, error) {
	if value == nil {
		if r.IsRequired() {
			return nil, NewRequiredError()
		}
		return nil, nil
	}
	if r.target == nil {
		return nil, r.unresolved()
	}
	doc, ok := value.(*Document)
	if !ok || doc.Entity() != r.target {
		return nil, NewValidationError("not an instance of the expected entity")
	}
	return doc, nil
}

// ToMany is a link to a collection of entities. Its values are lists whose
// every element is a document of the referenced entity.
type ToMany struct {
	reference
}

// Many returns a reference to a collection of entities. The target is either
// a *Entity or the name of an entity to be resolved during Model
// construction.
func Many(target any) *ToMany {
	return &ToMany{reference: newReference(target)}
}

// Optional makes the reference optional; by default a declared reference
// must be present on create.
func (r *ToMany) Optional() *ToMany {
	r.optional = true
	return r
}

// Validate implements Field. The value must be a list of documents of the
// referenced entity.
func (r *ToMany) Validate(value any) (any, error) {
	if value == nil {
		if r.IsRequired() {
			return nil, NewRequiredError()
		}
		return nil, nil
	}
	if r.target == nil {
		return nil, r.unresolved()
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice {
		return nil, NewValidationError("expected a list of entities")
	}
	for i := 0; i < rv.Len(); i++ {
		doc, ok := rv.Index(i).Interface().(*Document)
		if !ok || doc.Entity() != r.target {
			return nil, NewValidationError("not an instance of the expected entity")
		}
	}
	return value, nil
}
