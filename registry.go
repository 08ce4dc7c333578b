package enums

import (
	"fmt"
	"sort"
)

// A Registry is the ordered, dual-indexed collection of the members of one
// enum field. A Registry is built once per (record type, field) pair and is
// read-only thereafter.
type Registry struct {
	values []Value
	byID   map[int]Value
	byName map[string]Value
}

// NewRegistry builds a Registry from src.
//
// Members sort ascending by position; members sharing a position keep their
// declaration order. Duplicate ids or names fail with ErrBadDefinition.
func NewRegistry(src Source) (*Registry, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no source", ErrBadDefinition)
	}

	defs, err := src.definitions()
	if err != nil {
		return nil, err
	}

	r := &Registry{
		values: defs,
		byID:   make(map[int]Value, len(defs)),
		byName: make(map[string]Value, len(defs)),
	}

	for _, v := range defs {
		if _, ok := r.byID[v.id]; ok {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrBadDefinition, v.id)
		}

		if _, ok := r.byName[v.name]; ok {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrBadDefinition, v.name)
		}

		r.byID[v.id] = v
		r.byName[v.name] = v
	}

	sort.SliceStable(r.values, func(i, j int) bool {
		return r.values[i].position < r.values[j].position
	})

	return r, nil
}

// Values returns all members in position order.
func (r *Registry) Values() []Value {
	vals := make([]Value, len(r.values))
	copy(vals, r.values)

	return vals
}

// Lookup resolves key to a member, matching integer keys by id and string
// keys by name. Any other key type fails with ErrInvalidKey; a well-typed
// key with no member fails with ErrNotFound.
func (r *Registry) Lookup(key any) (Value, error) {
	switch k := key.(type) {
	case int:
		if v, ok := r.byID[k]; ok {
			return v, nil
		}

	case int64:
		if v, ok := r.byID[int(k)]; ok {
			return v, nil
		}

	case uint:
		if v, ok := r.byID[int(k)]; ok {
			return v, nil
		}

	case string:
		if v, ok := r.byName[k]; ok {
			return v, nil
		}

	default:
		return Value{}, fmt.Errorf("%w: %T is not an id or name", ErrInvalidKey, key)
	}

	return Value{}, fmt.Errorf("%w: %v", ErrNotFound, key)
}

// Default returns the lowest-position member marked default.
// When no member is marked default, ok is false.
func (r *Registry) Default() (Value, bool) {
	for _, v := range r.values {
		if v.def {
			return v, true
		}
	}

	return Value{}, false
}

// Contains asserts whether id belongs to the Registry.
func (r *Registry) Contains(id int) bool {
	_, ok := r.byID[id]

	return ok
}

// Len returns the number of members.
func (r *Registry) Len() int { return len(r.values) }
