package hammock

// Document is a record bound to the entity it belongs to. Reference fields
// accept documents: a One("Author") reference passes only documents of the
// Author entity.
//
// A document does not validate itself; callers are expected to run the
// fields through Entity.Validate before wrapping them.
type Document struct {
	entity *Entity
	fields map[string]any
}

// NewDocument returns a document binding fields to entity.
func NewDocument(entity *Entity, fields map[string]any) *Document {
	return &Document{entity: entity, fields: fields}
}

// Entity returns the entity this document belongs to.
func (d *Document) Entity() *Entity { return d.entity }

// Fields returns the document's fields.
func (d *Document) Fields() map[string]any { return d.fields }

// Get returns the value of the named field, or nil if unset.
func (d *Document) Get(name string) any { return d.fields[name] }
