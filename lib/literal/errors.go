package literal

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrMaxDepth is returned if a value graph is nested deeper than the configured ceiling
	ErrMaxDepth = errors.New("literal: maximum nesting depth exceeded")
	// ErrCycle is returned in SelfReferenceRecurse mode if a pointer is reached again while it is being serialized
	ErrCycle = errors.New("literal: cyclic value graph")
)

// FieldError names the field of a composite value whose value could not be serialized,
// e.g. a function stored in an interface field. Nested composites wrap it again, so the
// message reads as a path. The whole serialization is aborted, no partial literal is returned.
type FieldError struct {
	Type  reflect.Type
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("literal: field %s of %s: %v", e.Field, e.Type, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// UnsupportedTypeError is returned for values that have no literal form (functions, channels, ...)
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("literal: unsupported type %s", e.Type)
}
