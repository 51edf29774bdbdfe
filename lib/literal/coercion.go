package literal

import (
	"maps"
	"reflect"
)

// Coercion converts a value of one runtime type into its scalar representation.
// The result is converted to text and always quoted, whatever its own type is.
type Coercion func(value any) (any, error)

// Coercions maps exact runtime types to the coercion used for them
type Coercions map[reflect.Type]Coercion

// CoercionFor creates a typed registry entry for T.
//
// Usage:
//
//	typ, fn := literal.CoercionFor(func(d civil.Date) (any, error) { return d.String(), nil })
//	s := literal.NewSerializer(literal.Coercions{typ: fn})
func CoercionFor[T any](fn func(T) (any, error)) (reflect.Type, Coercion) {
	return reflect.TypeFor[T](), func(value any) (any, error) {
		return fn(value.(T))
	}
}

// coercionRegistry is the read-only lookup table consulted before all builtin rules
type coercionRegistry struct {
	entries map[reflect.Type]Coercion
}

// newCoercionRegistry copies the given coercions, the caller may reuse its map afterwards.
// Entries with a nil type or function are ignored.
func newCoercionRegistry(coercions Coercions) coercionRegistry {
	entries := maps.Clone(map[reflect.Type]Coercion(coercions))
	maps.DeleteFunc(entries, func(typ reflect.Type, fn Coercion) bool {
		return typ == nil || fn == nil
	})
	return coercionRegistry{entries: entries}
}

// lookup returns the coercion registered for exactly typ (no assignability or interface matching)
func (r coercionRegistry) lookup(typ reflect.Type) (Coercion, bool) {
	fn, ok := r.entries[typ]
	return fn, ok
}
