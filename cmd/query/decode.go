package query

import (
	"fmt"
	"github.com/mdaniel/dgs-codegen/cmd/util"
	"github.com/mdaniel/dgs-codegen/lib/literal"
	"github.com/mdaniel/dgs-codegen/lib/query"
	"strings"
)

// decodeRequest reads a request document:
//
//	type: query            # query, mutation or subscription
//	name: Movies           # optional
//	operation: movies
//	input:
//	  filter: {title: Up}
//	fields:
//	  - title
//	  - director: [name]
//	  - on Movie: [runtime]
func decodeRequest(data []byte) (*query.Request, error) {
	value, err := util.DecodeValue(data)
	if err != nil {
		return nil, err
	}
	doc, ok := value.(*literal.OrderedMap)
	if !ok {
		return nil, fmt.Errorf("request document must be a mapping")
	}

	opType, err := query.ParseOperationType(stringEntry(doc, "type"))
	if err != nil {
		return nil, err
	}

	req := query.NewRequest(opType, stringEntry(doc, "operation")).Named(stringEntry(doc, "name"))

	if input, ok := doc.Get("input"); ok && input != nil {
		args, ok := input.(*literal.OrderedMap)
		if !ok {
			return nil, fmt.Errorf("input must be a mapping of argument names to values")
		}
		req.Input = args
	}

	if fields, ok := doc.Get("fields"); ok && fields != nil {
		projection, err := decodeProjection(fields)
		if err != nil {
			return nil, err
		}
		req.Select(projection)
	}

	return req, nil
}

// decodeProjection converts a list of field names and single entry mappings (name: [fields])
func decodeProjection(value any) (*query.Projection, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("fields must be a list")
	}

	p := query.NewProjection()
	for _, item := range list {
		switch item := item.(type) {
		case string:
			p.Field(item)
		case *literal.OrderedMap:
			for pair := item.Oldest(); pair != nil; pair = pair.Next() {
				sub := query.NewProjection()
				if pair.Value != nil {
					var err error
					if sub, err = decodeProjection(pair.Value); err != nil {
						return nil, fmt.Errorf("%s: %w", pair.Key, err)
					}
				}
				if typeName, ok := strings.CutPrefix(pair.Key, "on "); ok {
					p.On(strings.TrimSpace(typeName), sub)
				} else {
					p.Child(pair.Key, sub)
				}
			}
		default:
			return nil, fmt.Errorf("invalid field %v", item)
		}
	}
	return p, nil
}

// stringEntry returns the entry key of m as text, "" if it is missing
func stringEntry(m *literal.OrderedMap, key string) string {
	value, ok := m.Get(key)
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
