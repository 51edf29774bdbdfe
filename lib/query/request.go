package query

import (
	"errors"
	"fmt"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/mdaniel/dgs-codegen/lib/literal"
	"strings"
)

var Logger = logger.GetLogger("query")

// OperationType is the keyword an operation document starts with
type OperationType string

const (
	OperationQuery        OperationType = "query"
	OperationMutation     OperationType = "mutation"
	OperationSubscription OperationType = "subscription"
)

// ParseOperationType converts a keyword into an OperationType
func ParseOperationType(s string) (OperationType, error) {
	switch t := OperationType(strings.ToLower(strings.TrimSpace(s))); t {
	case OperationQuery, OperationMutation, OperationSubscription:
		return t, nil
	case "":
		return OperationQuery, nil
	default:
		return "", fmt.Errorf("invalid operation type: %s (expected query, mutation or subscription)", s)
	}
}

// ErrMissingOperationName is returned by Serialize if the request has no operation name
var ErrMissingOperationName = errors.New("query: operation name is required")

// Request is a single-field GraphQL operation
type Request struct {
	// OperationType is the keyword (query, mutation or subscription)
	OperationType OperationType
	// Name is the optional name of the operation document
	Name string
	// OperationName is the root field being selected
	OperationName string
	// Input are the arguments of the root field in the order they are written
	Input *literal.OrderedMap
	// Projection selects the fields of the result, may be nil
	Projection *Projection
}

// NewRequest creates a request for the root field operationName
func NewRequest(opType OperationType, operationName string) *Request {
	return &Request{
		OperationType: opType,
		OperationName: operationName,
		Input:         literal.NewOrderedMap(),
	}
}

// Named sets the name of the operation document
func (r *Request) Named(name string) *Request {
	r.Name = name
	return r
}

// Arg adds or replaces an argument of the root field
func (r *Request) Arg(name string, value any) *Request {
	if r.Input == nil {
		r.Input = literal.NewOrderedMap()
	}
	r.Input.Set(name, value)
	return r
}

// Select sets the projection
func (r *Request) Select(p *Projection) *Request {
	r.Projection = p
	return r
}

// Serialize renders the operation document:
//
//	<type>[ <name>] {<operationName>[(arg: literal, ...)][ projection] }
//
// Argument values are written with s, its errors are returned wrapped with the argument name.
func (r *Request) Serialize(s literal.ISerializer) (string, error) {
	if r.OperationName == "" {
		return "", ErrMissingOperationName
	}
	opType, err := ParseOperationType(string(r.OperationType))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(string(opType))
	if r.Name != "" {
		sb.WriteByte(' ')
		sb.WriteString(r.Name)
	}
	sb.WriteString(" {")
	sb.WriteString(r.OperationName)

	args := 0
	if r.Input != nil {
		args = r.Input.Len()
	}
	if args > 0 {
		sb.WriteByte('(')
		for pair := r.Input.Oldest(); pair != nil; pair = pair.Next() {
			text, err := s.Serialize(pair.Value)
			if err != nil {
				return "", fmt.Errorf("argument %s: %w", pair.Key, err)
			}
			sb.WriteString(pair.Key)
			sb.WriteString(": ")
			sb.WriteString(text)
			if pair.Next() != nil {
				sb.WriteString(", ")
			}
		}
		sb.WriteByte(')')
	}

	if !r.Projection.IsEmpty() {
		sb.WriteByte(' ')
		sb.WriteString(r.Projection.String())
	}
	sb.WriteString(" }")

	Logger.Debugf("serialized %s %s with %d argument(s)", opType, r.OperationName, args)
	return sb.String(), nil
}
