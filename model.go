package hammock

import "sort"

// Model is a closed, named set of entities with every cross-entity reference
// resolved and verified to stay inside the set.
//
// Construction runs two phases eagerly: first every named reference is bound
// to the entity carrying that name, then every reference target is checked
// for membership in the set. Either failure aborts construction with a
// SchemaError; a Model that was constructed successfully is fully resolved,
// closed and immutable, and is therefore safe for concurrent use.
type Model struct {
	name     string
	entities map[*Entity]struct{}
	byName   map[string]*Entity
}

// NewModel returns a Model owning the given entities. It fails with a
// SchemaError if two entities share a name, if a named reference cannot be
// resolved within the set, or if any reference targets an entity outside
// the set.
func NewModel(name string, entities ...*Entity) (*Model, error) {
	m := &Model{
		name:     name,
		entities: make(map[*Entity]struct{}, len(entities)),
		byName:   make(map[string]*Entity, len(entities)),
	}
	for _, e := range entities {
		if prev, ok := m.byName[e.Name()]; ok && prev != e {
			return nil, NewSchemaError(e.Name(), "", "duplicate entity name")
		}
		m.entities[e] = struct{}{}
		m.byName[e.Name()] = e
	}
	if err := m.resolveReferences(); err != nil {
		return nil, err
	}
	if err := m.checkClosure(); err != nil {
		return nil, err
	}
	return m, nil
}

// resolveReferences binds every reference that was declared by name. This is
// the single sanctioned mutation of a reference, and it completes before the
// model is returned to the caller.
func (m *Model) resolveReferences() error {
	for _, e := range m.Entities() {
		refs := e.References()
		for _, rname := range e.referenceNames() {
			ref := refs[rname]
			if ref.Target() != nil {
				continue
			}
			target, ok := m.byName[ref.TargetName()]
			if !ok {
				return NewSchemaError(e.Name(), rname,
					"cannot resolve reference to entity "+ref.TargetName())
			}
			ref.bind(target)
		}
	}
	return nil
}

// checkClosure verifies that every resolved reference targets a member of
// the model.
func (m *Model) checkClosure() error {
	for _, e := range m.Entities() {
		refs := e.References()
		for _, rname := range e.referenceNames() {
			ref := refs[rname]
			if !m.HasEntity(ref.Target()) {
				return NewSchemaError(e.Name(), rname,
					"references entity "+ref.TargetName()+" outside the model")
			}
		}
	}
	return nil
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// HasEntity reports whether e is a member of the model.
func (m *Model) HasEntity(e *Entity) bool {
	_, ok := m.entities[e]
	return ok
}

// Entity returns the member entity with the given name, or nil.
func (m *Model) Entity(name string) *Entity {
	return m.byName[name]
}

// Entities returns the member entities sorted by name.
func (m *Model) Entities() []*Entity {
	es := make([]*Entity, 0, len(m.entities))
	for e := range m.entities {
		es = append(es, e)
	}
	sort.Slice(es, func(i, j int) bool { return es[i].Name() < es[j].Name() })
	return es
}
