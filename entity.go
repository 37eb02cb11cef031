package hammock

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-openapi/inflect"
)

// Entity is a named schema: one Compound built from the declared fields,
// plus the references those fields declare to other entities.
//
// Entities are constructed once, at schema-definition time, before any Model
// exists, and are never mutated afterward. The only later change is the
// binding of their references' targets during Model construction.
//
//	author := hammock.NewEntity("Author", hammock.Fields{
//	    "name": field.Text().Required(),
//	})
//	post := hammock.NewEntity("Post", hammock.Fields{
//	    "title":  field.Text().Required(),
//	    "author": hammock.One("Author"),
//	})
type Entity struct {
	name     string
	compound *Compound
	refs     map[string]Reference
}

// NewEntity returns a new Entity with the given name and fields. Reference
// fields (One, Many) take part in record validation like any other field and
// are additionally exposed through References for Model construction.
func NewEntity(name string, fields Fields) *Entity {
	e := &Entity{
		name:     name,
		compound: NewCompound(fields),
		refs:     make(map[string]Reference),
	}
	for fname, f := range fields {
		if ref, ok := f.(Reference); ok {
			e.refs[fname] = ref
		}
	}
	return e
}

// Name returns the entity name as declared, e.g. "OrderItem".
func (e *Entity) Name() string { return e.name }

// Label returns the snake_case singular form of the entity name,
// e.g. "order_item".
func (e *Entity) Label() string {
	return inflect.Underscore(e.name)
}

// Plural returns the snake_case plural form of the entity name, e.g.
// "order_items". The orchestration layer uses it for collection naming.
func (e *Entity) Plural() string {
	return inflect.Pluralize(e.Label())
}

// Validate validates record against the entity's schema and returns the
// sanitized record. With enforceRequired false, required fields may be
// omitted (update semantics); with true they must be present (create
// semantics).
func (e *Entity) Validate(record map[string]any, enforceRequired bool) (map[string]any, error) {
	return e.compound.ValidateRecord(record, enforceRequired)
}

// References returns the entity's declared references keyed by field name.
// It is consumed by Model construction.
func (e *Entity) References() map[string]Reference {
	refs := make(map[string]Reference, len(e.refs))
	for name, ref := range e.refs {
		refs[name] = ref
	}
	return refs
}

// referenceNames returns the reference field names in sorted order, so that
// resolution failures are deterministic.
func (e *Entity) referenceNames() []string {
	names := make([]string, 0, len(e.refs))
	for name := range e.refs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String implements fmt.Stringer.
func (e *Entity) String() string {
	refs := e.referenceNames()
	if len(refs) == 0 {
		return fmt.Sprintf("Entity(%s)", e.name)
	}
	return fmt.Sprintf("Entity(%s, refs: %s)", e.name, strings.Join(refs, ", "))
}
