package literal

import (
	"github.com/puzpuzpuz/xsync/v3"
	"reflect"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// tagName is the struct tag used to rename (gql:"name") or skip (gql:"-") fields
const tagName = "gql"

// fieldDescriptor describes one serializable field of a struct type
type fieldDescriptor struct {
	name  string
	index []int
}

// fieldPlans caches the field descriptors per struct type. Only type level information
// is stored, the field values are read from the instance on every call.
var fieldPlans = xsync.NewMapOf[reflect.Type, []fieldDescriptor]()

// fieldsOf returns the serializable fields of the struct type t
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func fieldsOf(t reflect.Type) []fieldDescriptor {
	if plan, ok := fieldPlans.Load(t); ok {
		return plan
	}
	plan, _ := fieldPlans.LoadOrCompute(t, func() []fieldDescriptor {
		return buildFieldPlan(t)
	})
	return plan
}

// buildFieldPlan enumerates the fields of t including the fields promoted from embedded
// structs. Go's visibility rules decide which of two equally named fields wins (the
// shallower one). Own fields come first, then promoted fields ordered by embedding depth.
func buildFieldPlan(t reflect.Type) []fieldDescriptor {
	visible := reflect.VisibleFields(t)
	plan := make([]fieldDescriptor, 0, len(visible))

	for _, f := range visible {
		if !f.IsExported() || f.Name == "_" {
			continue
		}

		// the embedded struct itself is structure, its fields are listed on their own
		if f.Anonymous && derefType(f.Type).Kind() == reflect.Struct {
			continue
		}

		if excludedFieldType(f.Type) {
			continue
		}

		name := f.Name
		if tag, ok := f.Tag.Lookup(tagName); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		} else {
			name = lowerFirst(name)
		}

		plan = append(plan, fieldDescriptor{name: name, index: f.Index})
	}

	sort.SliceStable(plan, func(i, j int) bool {
		return len(plan[i].index) < len(plan[j].index)
	})
	return plan
}

// excludedFieldType reports whether fields of type t never carry data: functions,
// channels, unsafe pointers and zero sized structs (markers and namespace holders)
func excludedFieldType(t reflect.Type) bool {
	t = derefType(t)
	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	case reflect.Struct:
		return t.Size() == 0
	default:
		return false
	}
}

// derefType strips all pointer levels of t
func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// lowerFirst lower-cases the first rune of a Go identifier (MovieId -> movieId)
func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
