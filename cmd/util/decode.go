package util

import (
	"fmt"
	"github.com/mdaniel/dgs-codegen/lib/literal"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
	"time"
)

// Custom scalar tags understood in input documents
const (
	// TagEnum marks an enum value (!enum DRAMA), written without quotes
	TagEnum = "!enum"
	// TagCurrency marks an ISO 4217 currency code (!currency EUR)
	TagCurrency = "!currency"
)

// DecodeValue decodes a YAML (or JSON) document into values the literal serializer understands.
// Mappings become *literal.OrderedMap so the order of the document is kept, sequences []any,
// timestamps time.Time and the custom tags their Go types. An empty document is nil.
func DecodeValue(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid input document: %w", err)
	}
	return decodeNode(&doc)
}

func decodeNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return decodeNode(n.Content[0])
	case yaml.AliasNode:
		return decodeNode(n.Alias)
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			value, err := decodeNode(child)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil
	case yaml.MappingNode:
		m := literal.NewOrderedMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			value, err := decodeNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(key.Value, value)
		}
		return m, nil
	case yaml.ScalarNode:
		return decodeScalar(n)
	default:
		// empty input
		return nil, nil
	}
}

func decodeScalar(n *yaml.Node) (any, error) {
	switch n.Tag {
	case TagEnum:
		return literal.EnumValue(n.Value), nil
	case TagCurrency:
		unit, err := currency.ParseISO(n.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return unit, nil
	}

	if n.ShortTag() == "!!timestamp" {
		var ts time.Time
		if err := n.Decode(&ts); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return ts, nil
	}

	var value any
	if err := n.Decode(&value); err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	return value, nil
}
