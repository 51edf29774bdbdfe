// Package literal serializes arbitrary Go values into input-value literals of the GraphQL
// query language, ready to be embedded as arguments into a generated query document.
//
// The package focuses on:
//   - Choosing the encoding of a value from its runtime type alone, without schema information
//   - Escaping strings exactly as the string value grammar demands
//   - Allowing callers to override the encoding of any type (custom scalars)
//
// Key Components:
//
//   - ISerializer: Core interface, implemented by the reflection based serializer returned by
//     NewSerializer and by the metrics decorator returned by NewInstrumentedSerializer.
//
//   - Coercions: Read-only registry mapping exact runtime types to a Coercion. It is consulted
//     before all builtin rules; the result of a coercion is always written as a quoted string.
//
//   - Escape: Wraps text in quotes and escapes ", \, /, backspace, form feed, newline,
//     carriage return and tab with their short sequence, other control characters as \u00xx.
//
//   - Field harvesting: Struct values are written as composites. All exported fields take part,
//     fields promoted from embedded structs included. Fields can be renamed or skipped with
//     the gql struct tag, otherwise the Go name with a lower-cased first letter is used.
//
// Dispatch Order (first match wins):
//
//  1. nil                                   -> null
//  2. registered coercion (exact type)      -> "coerced text"
//  3. GQLEnum                               -> NAME
//  4. time.Time, time.Duration, *time.Location, currency.Unit -> "canonical text"
//  5. bool, integers, floats                -> true, 42, 1.5
//  6. strings                               -> "escaped text"
//  7. slices and arrays                     -> [1, 2, 3]        (nil elements dropped)
//  8. maps and *OrderedMap                  -> { key: value }   (nil values written as null)
//  9. structs                               -> {name:value }    (nil fields dropped)
//
// Pointers and interfaces are followed between the steps; coercions are looked up on every
// pointer level, so a coercion for *T and one for T are both possible. Lookups use the
// runtime type only: a coercion keyed on an interface type never matches.
//
// Errors:
//
//	Coercion errors, ErrMaxDepth and ErrCycle are returned unchanged. A value without literal
//	form (functions, channels, complex numbers) fails with UnsupportedTypeError, wrapped in a
//	FieldError per enclosing struct field. Only exported fields are serialized, so reading a
//	field itself cannot fail. Every pointer and interface followed counts towards WithMaxDepth.
//
// Self References:
//
//	A struct field holding a value of the struct's own type is written with its raw text form
//	(fmt.Stringer or %+v) instead of being serialized. This keeps trees with parent pointers
//	from recursing forever, but the raw text is neither quoted nor escaped. WithSelfReference
//	(SelfReferenceRecurse) serializes those fields normally and reports real cycles as ErrCycle.
//
// Thread Safety:
//
//	Serializers hold no mutable state and are safe for concurrent use
//	across multiple goroutines without additional synchronization.
//
// Usage:
//
//	typ, fn := literal.CoercionFor(func(d time.Time) (any, error) { return d.Format(time.DateOnly), nil })
//	s := literal.NewSerializer(literal.Coercions{typ: fn})
//	text, err := s.Serialize(MovieFilter{Title: "Up", ReleasedAfter: date}) // {title:"Up", releasedAfter:"2009-05-29" }
package literal
