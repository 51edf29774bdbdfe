package literal

import (
	"fmt"
	"github.com/spf13/cast"
	"golang.org/x/text/currency"
	"reflect"
	"strconv"
	"time"
)

// --------------------------------------------------------------------------
// Canonical scalar text (unquoted)
// --------------------------------------------------------------------------

// canonScalar returns the canonical text of a boolean or numeric value.
// ok is false if the kind of v is not one of those.
func canonScalar(v reflect.Value) (text string, ok bool) {
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), true
	default:
		return "", false
	}
}

// textOf converts an arbitrary value into its plain text form.
// Values cast cannot handle fall back to the fmt verb %v.
func textOf(value any) string {
	if value == nil {
		return "null"
	}
	if text, err := cast.ToStringE(value); err == nil {
		return text
	}
	return fmt.Sprint(value)
}

// --------------------------------------------------------------------------
// Builtin quoted types
// --------------------------------------------------------------------------

// quotedTypes holds the types that are rendered as quoted strings of their canonical
// text when no coercion is registered for them. Values of kind string are quoted as well
// and are handled by the dispatcher directly.
var quotedTypes = map[reflect.Type]func(reflect.Value) string{
	reflect.TypeFor[time.Time](): func(v reflect.Value) string {
		return v.Interface().(time.Time).Format(time.RFC3339Nano)
	},
	reflect.TypeFor[time.Duration](): func(v reflect.Value) string {
		return v.Interface().(time.Duration).String()
	},
	reflect.TypeFor[*time.Location](): func(v reflect.Value) string {
		return v.Interface().(*time.Location).String()
	},
	reflect.TypeFor[time.Location](): func(v reflect.Value) string {
		loc := v.Interface().(time.Location)
		return loc.String()
	},
	reflect.TypeFor[currency.Unit](): func(v reflect.Value) string {
		return v.Interface().(currency.Unit).String()
	},
}

// rawText returns the default text representation of a value without any quoting.
// fmt.Stringer implementations win, pointers are followed.
func rawText(v reflect.Value) string {
	for {
		if v.CanInterface() {
			if s, ok := v.Interface().(fmt.Stringer); ok {
				return s.String()
			}
		}
		if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface {
			break
		}
		if v.IsNil() {
			return "<nil>"
		}
		v = v.Elem()
	}
	return fmt.Sprintf("%+v", v.Interface())
}
