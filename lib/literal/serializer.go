package literal

import (
	"fmt"
	"github.com/lni/dragonboat/v4/logger"
	"reflect"
	"sort"
	"strings"
)

var Logger = logger.GetLogger("literal")

// DefaultMaxDepth is the nesting ceiling used if WithMaxDepth is not given
const DefaultMaxDepth = 1024

// --------------------------------------------------------------------------
// Self reference handling
// --------------------------------------------------------------------------

// SelfReferenceMode decides how a struct field holding a value of the struct's own type is written
type SelfReferenceMode int

const (
	// SelfReferenceRaw writes the raw text form of the field value (fmt.Stringer or %+v)
	// without recursing, quoting or escaping. This breaks direct self references but the
	// output is not grammar valid if that text needs escaping.
	SelfReferenceRaw SelfReferenceMode = iota
	// SelfReferenceRecurse serializes such fields like every other field and tracks the
	// pointers currently being serialized instead. Reaching one of them again fails with ErrCycle.
	SelfReferenceRecurse
)

func (m SelfReferenceMode) String() string {
	switch m {
	case SelfReferenceRaw:
		return "raw"
	case SelfReferenceRecurse:
		return "recurse"
	default:
		return "unknown"
	}
}

// ParseSelfReferenceMode converts "raw" or "recurse" into a SelfReferenceMode
func ParseSelfReferenceMode(s string) (SelfReferenceMode, error) {
	switch strings.ToLower(s) {
	case "raw", "":
		return SelfReferenceRaw, nil
	case "recurse":
		return SelfReferenceRecurse, nil
	default:
		return SelfReferenceRaw, fmt.Errorf("invalid self reference mode: %s (expected raw or recurse)", s)
	}
}

// --------------------------------------------------------------------------
// Constructor and options
// --------------------------------------------------------------------------

// Option configures a serializer created by NewSerializer
type Option func(*serializerImpl)

// WithMaxDepth sets the maximal nesting depth. Every list, map, composite, pointer and
// interface followed counts as one level.
// Deeper values fail with ErrMaxDepth instead of exhausting the stack. 0 disables the check.
func WithMaxDepth(depth int) Option {
	return func(s *serializerImpl) {
		s.maxDepth = depth
	}
}

// WithSelfReference sets the SelfReferenceMode, the default is SelfReferenceRaw
func WithSelfReference(mode SelfReferenceMode) Option {
	return func(s *serializerImpl) {
		s.selfRef = mode
	}
}

// NewSerializer creates a new literal serializer. The coercions are consulted before any
// builtin rule and are matched by exact runtime type. The map may be nil or empty; it is
// copied, later changes to it have no effect on the serializer.
//
// Usage:
//
//	s := literal.NewSerializer(nil)
//	text, err := s.Serialize([]int{1, 2, 3}) // [1, 2, 3]
func NewSerializer(coercions Coercions, opts ...Option) ISerializer {
	s := &serializerImpl{
		coercions: newCoercionRegistry(coercions),
		maxDepth:  DefaultMaxDepth,
		selfRef:   SelfReferenceRaw,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// serializerImpl implements ISerializer using reflection. It holds no mutable state,
// all per call state lives in an encodeState.
type serializerImpl struct {
	coercions coercionRegistry
	maxDepth  int
	selfRef   SelfReferenceMode
}

// --------------------------------------------------------------------------
// Interface Methods (docu see literal.ISerializer)
// --------------------------------------------------------------------------

func (s *serializerImpl) Serialize(value any) (string, error) {
	e := &encodeState{serializer: s}
	if s.selfRef == SelfReferenceRecurse {
		e.visiting = make(map[uintptr]struct{})
	}
	if err := e.encode(reflect.ValueOf(value), 0); err != nil {
		return "", err
	}
	return e.String(), nil
}

// --------------------------------------------------------------------------
// Type dispatch
// --------------------------------------------------------------------------

// encodeState is the state of a single Serialize call
type encodeState struct {
	strings.Builder
	serializer *serializerImpl
	visiting   map[uintptr]struct{}
}

// encode writes the literal of v. Interfaces are unwrapped first, then the checks run in a
// fixed order, the first match wins: null, registered coercion, enum, builtin quoted type,
// then (after following pointers) boolean/numeric, string, list, map and finally composite.
func (e *encodeState) encode(v reflect.Value, depth int) error {
	if limit := e.serializer.maxDepth; limit > 0 && depth > limit {
		Logger.Debugf("nesting depth %d exceeds %d", depth, limit)
		return ErrMaxDepth
	}

	if isNull(v) {
		e.WriteString("null")
		return nil
	}

	// the registry is keyed by runtime types, a declared interface type never matches
	if v.Kind() == reflect.Interface {
		return e.encode(v.Elem(), depth+1)
	}

	typ := v.Type()

	if coerce, ok := e.serializer.coercions.lookup(typ); ok {
		out, err := coerce(v.Interface())
		if err != nil {
			return err
		}
		writeEscaped(&e.Builder, textOf(out))
		return nil
	}

	if typ.Implements(gqlEnumType) {
		e.WriteString(v.Interface().(GQLEnum).MarshalGQL())
		return nil
	}

	if canon, ok := quotedTypes[typ]; ok {
		writeEscaped(&e.Builder, canon(v))
		return nil
	}

	if typ == orderedMapType {
		return e.encodeOrderedMap(v.Interface().(*OrderedMap), depth)
	}

	if v.Kind() == reflect.Pointer {
		return e.encodePointer(v, depth)
	}

	if text, ok := canonScalar(v); ok {
		e.WriteString(text)
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		writeEscaped(&e.Builder, v.String())
		return nil
	case reflect.Slice, reflect.Array:
		return e.encodeList(v, depth)
	case reflect.Map:
		return e.encodeMap(v, depth)
	case reflect.Struct:
		return e.encodeComposite(v, depth)
	default:
		return &UnsupportedTypeError{Type: v.Type()}
	}
}

// encodePointer follows a non-nil pointer. In SelfReferenceRecurse mode the pointer is
// marked as visiting until its target has been written.
func (e *encodeState) encodePointer(v reflect.Value, depth int) error {
	if e.visiting == nil {
		return e.encode(v.Elem(), depth+1)
	}

	ptr := v.Pointer()
	if _, ok := e.visiting[ptr]; ok {
		Logger.Debugf("cycle detected at %s (%#x)", v.Type(), ptr)
		return ErrCycle
	}
	e.visiting[ptr] = struct{}{}
	defer delete(e.visiting, ptr)

	return e.encode(v.Elem(), depth+1)
}

// isNull reports whether v is the null value: an invalid value or a nil pointer, interface,
// map, slice, function or channel. Interfaces are looked through.
func isNull(v reflect.Value) bool {
	for {
		if !v.IsValid() {
			return true
		}
		switch v.Kind() {
		case reflect.Interface:
			if v.IsNil() {
				return true
			}
			v = v.Elem()
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return v.IsNil()
		default:
			return false
		}
	}
}

// --------------------------------------------------------------------------
// Lists and maps
// --------------------------------------------------------------------------

// encodeList writes [a, b, c]. Null elements are dropped.
func (e *encodeState) encodeList(v reflect.Value, depth int) error {
	e.WriteByte('[')
	first := true
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if isNull(elem) {
			continue
		}
		if !first {
			e.WriteString(", ")
		}
		first = false
		if err := e.encode(elem, depth+1); err != nil {
			return err
		}
	}
	e.WriteByte(']')
	return nil
}

// mapEntry is a key (already rendered) and its value
type mapEntry struct {
	key   string
	value reflect.Value
}

// encodeMap writes the entries of a Go map sorted by their key text
func (e *encodeState) encodeMap(v reflect.Value, depth int) error {
	entries := make([]mapEntry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, mapEntry{key: keyText(iter.Key()), value: iter.Value()})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})
	return e.writeEntries(entries, depth)
}

// encodeOrderedMap writes the entries of m in insertion order
func (e *encodeState) encodeOrderedMap(m *OrderedMap, depth int) error {
	entries := make([]mapEntry, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, mapEntry{key: pair.Key, value: reflect.ValueOf(pair.Value)})
	}
	return e.writeEntries(entries, depth)
}

// writeEntries writes { k: v, k2: v2 }. Keys are written raw, null values as null.
func (e *encodeState) writeEntries(entries []mapEntry, depth int) error {
	e.WriteString("{ ")
	for i, entry := range entries {
		if i > 0 {
			e.WriteString(", ")
		}
		e.WriteString(entry.key)
		e.WriteString(": ")
		if err := e.encode(entry.value, depth+1); err != nil {
			return err
		}
	}
	e.WriteString(" }")
	return nil
}

// keyText returns the raw text form of a map key
func keyText(k reflect.Value) string {
	if isNull(k) {
		return "null"
	}
	key := k.Interface()
	if enum, ok := key.(GQLEnum); ok {
		return enum.MarshalGQL()
	}
	return textOf(key)
}

// --------------------------------------------------------------------------
// Composite values
// --------------------------------------------------------------------------

// encodeComposite writes {a:1, b:"x" }. Null fields are left out entirely.
func (e *encodeState) encodeComposite(v reflect.Value, depth int) error {
	typ := v.Type()
	e.WriteByte('{')
	first := true
	for _, field := range fieldsOf(typ) {
		fv, err := v.FieldByIndexErr(field.index)
		if err != nil {
			// the path runs through a nil embedded pointer, the promoted field is null
			continue
		}
		if isNull(fv) {
			continue
		}

		if !first {
			e.WriteString(", ")
		}
		first = false
		e.WriteString(field.name)
		e.WriteByte(':')

		if e.serializer.selfRef == SelfReferenceRaw && hasType(fv, typ) {
			e.WriteString(rawText(fv))
			continue
		}
		if err := e.encode(fv, depth+1); err != nil {
			switch err.(type) {
			case *UnsupportedTypeError, *FieldError:
				return &FieldError{Type: typ, Field: field.name, Err: err}
			}
			return err
		}
	}
	e.WriteString(" }")
	return nil
}

// hasType reports whether the value behind v (interfaces and pointers followed) is of type typ
func hasType(v reflect.Value, typ reflect.Type) bool {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	return v.Type() == typ
}
