package enums

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// A Source declares the members of an enum field.
//
// Two shapes are supported: Map, a static mapping of ids to names or
// attribute bags, and Records, an ordered collection of already-materialized
// entities, such as rows loaded from a lookup table.
type Source interface {
	definitions() ([]Value, error)
}

// Attrs is the bag of attributes declaring a single enum member.
//
// Name is required; Title and Position derive from Name and the member's id
// when left unset.
type Attrs struct {
	Name     string `json:"name" yaml:"name"`
	Title    string `json:"title" yaml:"title"`
	Position int    `json:"position" yaml:"position"`
	Default  bool   `json:"default" yaml:"default"`
}

// A Def pairs an id with its declared value:
// either a bare name (string) or an Attrs.
type Def struct {
	ID    int
	Value any
}

// Map is the static declaration shape: an ordered mapping of ids to names
// or attribute bags. The declaration order breaks position ties when the
// Registry sorts its members.
type Map []Def

func (m Map) definitions() ([]Value, error) {
	defs := make([]Value, 0, len(m))
	for _, d := range m {
		var attrs Attrs
		switch val := d.Value.(type) {
		case string:
			attrs = Attrs{Name: val}

		case Attrs:
			attrs = val

		default:
			return nil, fmt.Errorf("%w: value for id %d must be a name or an Attrs, got %T", ErrBadDefinition, d.ID, d.Value)
		}

		v, err := NewValue(d.ID, attrs)
		if err != nil {
			return nil, err
		}

		defs = append(defs, v)
	}

	return defs, nil
}

// Valuer is implemented by record types whose rows are themselves enum members.
type Valuer interface {
	EnumDef() Def
}

// Records is the dynamic declaration shape: an ordered collection of
// existing entities each declaring itself through EnumDef.
// The entity behind each member stays reachable through Value.Entity,
// so an enum member can be a full-featured record with its own relations.
type Records []Valuer

func (r Records) definitions() ([]Value, error) {
	defs := make([]Value, 0, len(r))
	for _, rec := range r {
		d := rec.EnumDef()
		attrs, ok := d.Value.(Attrs)
		if !ok {
			return nil, fmt.Errorf("%w: %T must declare itself with an Attrs, got %T", ErrBadDefinition, rec, d.Value)
		}

		v, err := NewValue(d.ID, attrs)
		if err != nil {
			return nil, err
		}

		v.entity = rec
		defs = append(defs, v)
	}

	return defs, nil
}

// ParseMap decodes a YAML mapping of ids to names or attribute bags into a
// Map, preserving document order:
//
//	1: new
//	2:
//	  name: in_progress
//	  title: Continuing
//
// Any id that is not an integer and any value that is neither a name nor an
// attribute mapping fails with ErrBadDefinition.
func ParseMap(data []byte) (Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadDefinition, err)
	}

	if len(doc.Content) == 0 {
		return Map{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: document must be a mapping of ids", ErrBadDefinition)
	}

	m := make(Map, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		id, err := strconv.Atoi(keyNode.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: id %q is not an integer", ErrBadDefinition, keyNode.Value)
		}

		switch valNode.Kind {
		case yaml.ScalarNode:
			if valNode.Tag != "!!str" {
				return nil, fmt.Errorf("%w: value for id %d must be a name or an attribute mapping", ErrBadDefinition, id)
			}

			m = append(m, Def{ID: id, Value: valNode.Value})

		case yaml.MappingNode:
			var attrs Attrs
			if err := valNode.Decode(&attrs); err != nil {
				return nil, fmt.Errorf("%w: %s", ErrBadDefinition, err)
			}

			m = append(m, Def{ID: id, Value: attrs})

		default:
			return nil, fmt.Errorf("%w: value for id %d must be a name or an attribute mapping", ErrBadDefinition, id)
		}
	}

	return m, nil
}
