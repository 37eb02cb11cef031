// Package hammock provides declarative schema validation and entity
// reference resolution for record-oriented APIs.
//
// A schema is declared as a set of named entities, each composed of field
// validators and typed references to other entities. A Model owns a closed
// set of entities and resolves every cross-entity reference at construction
// time, so that by the time requests arrive the schema is known to be
// consistent.
//
// # Quick Start
//
// Declare entities from fields and references, then build a model:
//
//	author := hammock.NewEntity("Author", hammock.Fields{
//	    "name":  field.Text().Required().MaxLen(100),
//	    "email": field.Email(),
//	})
//	post := hammock.NewEntity("Post", hammock.Fields{
//	    "title":     field.Text().Required().MaxLen(200),
//	    "published": field.DateTime(),
//	    "author":    hammock.One("Author"),
//	    "tags":      field.ListOf(field.Text()),
//	})
//
//	blog, err := hammock.NewModel("blog", author, post)
//	if err != nil {
//	    // A schema-definition error: an unresolvable reference or a
//	    // reference escaping the model. Treat as a configuration bug.
//	    log.Fatal(err)
//	}
//
// # Validation
//
// Entity.Validate sanitizes a record or reports everything wrong with it in
// one pass:
//
//	fields, err := post.Validate(map[string]any{
//	    "title":     "Hello",
//	    "published": "2011-09-17 14:23",
//	}, true)
//	var cerr *hammock.CompoundValidationError
//	if errors.As(err, &cerr) {
//	    for name, ferr := range cerr.Errors {
//	        // one entry per invalid field
//	    }
//	}
//
// The second argument distinguishes create from update semantics: with
// enforceRequired false, required fields may be legitimately omitted from a
// partial payload.
//
// # Fields
//
// The schema/field package provides the concrete validators:
//
//	field.Text()           // strings, with length and pattern checks
//	field.Email()          // RFC-3696 style addresses
//	field.URL()            // permissive URL tokens
//	field.DateTime()       // natural language, guessed and fixed formats
//	field.Boolean()        // "yes"/1/true and friends
//	field.BoundingBox()    // 4 comma-separated coordinates
//	field.LatLng()         // 2 comma-separated coordinates
//	field.Enum("a", "b")   // closed value set
//	field.TypeOf(0, 0.0)   // runtime type membership
//	field.UUID()           // RFC-4122 identifiers
//	field.OneOf(a, b)      // first matching field wins
//	field.ListOf(f)        // non-empty homogeneous list
//	field.Anything()       // pass-through
//
// All validation is pure computation over in-memory values: no I/O, no
// blocking, and nothing is mutated after construction, so entities and
// models may be shared freely across goroutines.
package hammock
