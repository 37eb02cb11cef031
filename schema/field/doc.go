// Package field provides the concrete field validators for hammock schemas.
//
// Every constructor returns a chainable builder implementing hammock.Field.
// Fields are optional by default; Required() makes absence an error and
// Default() sets the value substituted when no value arrives:
//
//	field.Text().Required().MinLen(2).MaxLen(100)
//	field.Boolean().Default(false)
//	field.Enum("draft", "published").Default("draft")
//
// # Leaf fields
//
//	field.Text()         // strings, length bounds and pattern search
//	field.Email()        // Text plus an RFC-3696 derived address pattern
//	field.URL()          // Text plus a permissive URL-token pattern
//	field.DateTime()     // time.Time, Unix timestamps, parsed strings
//	field.Boolean()      // bool, 0/1, "yes"/"no"/"true"/"false"/"0"/"1"
//	field.BoundingBox()  // 4 coordinates, list or comma-separated string
//	field.LatLng()       // 2 coordinates, list or comma-separated string
//	field.Enum(...)      // closed set of allowed values
//	field.TypeOf(...)    // runtime type membership
//	field.UUID()         // RFC-4122 identifiers
//
// # Combinators
//
//	field.OneOf(a, b)  // passes when any child field passes, in order
//	field.ListOf(f)    // non-empty list, every element checked against f
//	field.Anything()   // pass-through
//
// # Date parsing
//
// DateTime tries an ordered chain of parsers on string input: a
// natural-language parser ("tomorrow at 6pm"), a format-guessing parser, and
// a fixed layout. Each slot can be disabled, and Parsers replaces the chain
// wholesale:
//
//	field.DateTime().Layout(time.RFC1123)
//	field.DateTime().WithoutNaturalLanguage()
//	field.DateTime().Parsers(myParser, field.ParseAnyFormat)
package field
