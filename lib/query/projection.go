package query

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"strings"
)

// Projection is the ordered selection set of a field. Fields without a sub projection are leaves.
type Projection struct {
	fields    *orderedmap.OrderedMap[string, *Projection]
	fragments []fragment
}

// fragment is an inline fragment (... on Type { ... })
type fragment struct {
	typeName   string
	projection *Projection
}

// NewProjection creates an empty projection
func NewProjection() *Projection {
	return &Projection{fields: orderedmap.New[string, *Projection]()}
}

// init allows the zero Projection to be used
func (p *Projection) init() {
	if p.fields == nil {
		p.fields = orderedmap.New[string, *Projection]()
	}
}

// Field adds leaf fields. Fields that are already selected keep their sub projection.
func (p *Projection) Field(names ...string) *Projection {
	p.init()
	for _, name := range names {
		if _, ok := p.fields.Get(name); !ok {
			p.fields.Set(name, nil)
		}
	}
	return p
}

// Child selects name with the given sub projection, replacing a previous selection of name
func (p *Projection) Child(name string, sub *Projection) *Projection {
	p.init()
	p.fields.Set(name, sub)
	return p
}

// On adds an inline fragment for typeName
func (p *Projection) On(typeName string, sub *Projection) *Projection {
	p.fragments = append(p.fragments, fragment{typeName: typeName, projection: sub})
	return p
}

// IsEmpty reports whether nothing is selected
func (p *Projection) IsEmpty() bool {
	if p == nil {
		return true
	}
	return (p.fields == nil || p.fields.Len() == 0) && len(p.fragments) == 0
}

// String renders the selection set as { a b { c } ... on T { d } }, an empty projection as ""
func (p *Projection) String() string {
	if p.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	p.write(&sb)
	return sb.String()
}

func (p *Projection) write(sb *strings.Builder) {
	sb.WriteString("{")
	p.init()
	for pair := p.fields.Oldest(); pair != nil; pair = pair.Next() {
		sb.WriteByte(' ')
		sb.WriteString(pair.Key)
		if !pair.Value.IsEmpty() {
			sb.WriteByte(' ')
			pair.Value.write(sb)
		}
	}
	for _, f := range p.fragments {
		if f.projection.IsEmpty() {
			continue
		}
		sb.WriteString(" ... on ")
		sb.WriteString(f.typeName)
		sb.WriteByte(' ')
		f.projection.write(sb)
	}
	sb.WriteString(" }")
}
