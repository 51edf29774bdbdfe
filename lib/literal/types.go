package literal

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"reflect"
)

// --------------------------------------------------------------------------
// Enum values
// --------------------------------------------------------------------------

// GQLEnum is implemented by enumeration constants. The returned name is written
// bare (unquoted, unescaped) since enum values are identifiers in the literal grammar.
type GQLEnum interface {
	MarshalGQL() string
}

// EnumValue is a GQLEnum for enum values only known at runtime
type EnumValue string

func (e EnumValue) MarshalGQL() string {
	return string(e)
}

// --------------------------------------------------------------------------
// Ordered mappings
// --------------------------------------------------------------------------

// OrderedMap is a keyed mapping that keeps insertion order. Go maps have no order,
// so their entries are written sorted by key; use an OrderedMap to control the order.
type OrderedMap = orderedmap.OrderedMap[string, any]

// NewOrderedMap creates an empty OrderedMap
func NewOrderedMap() *OrderedMap {
	return orderedmap.New[string, any]()
}

var (
	gqlEnumType    = reflect.TypeFor[GQLEnum]()
	orderedMapType = reflect.TypeFor[*OrderedMap]()
)
