package enums

import (
	"database/sql"
	"fmt"
	"reflect"
	"sync"
)

// ID is the nullable integer column backing an enum field.
// It scans and values like sql.NullInt64, so it drops into any record
// struct the way DeletedTime does.
type ID struct {
	sql.NullInt64
}

// NewID wraps id as a set ID.
func NewID(id int) ID {
	return ID{sql.NullInt64{Int64: int64(id), Valid: true}}
}

// IsBlank asserts whether the column holds no id.
func (id ID) IsBlank() bool { return !id.Valid }

// A Field binds one enum field on an owning record type to its Registry.
// It carries both the class-level accessors (Values, Value, Default) and
// the instance-level behavior operating on the raw ID column (Get, Set, Is).
type Field struct {
	owner reflect.Type
	name  string
	reg   *Registry
}

// Name returns the field name the binding was registered under.
func (f *Field) Name() string { return f.name }

// Registry exposes the Registry backing the Field.
func (f *Field) Registry() *Registry { return f.reg }

// Values returns every member of the field in position order.
func (f *Field) Values() []Value { return f.reg.Values() }

// Value resolves key, an id or a name, to a member.
// ErrInvalidKey and ErrNotFound propagate from the Registry.
func (f *Field) Value(key any) (Value, error) { return f.reg.Lookup(key) }

// Default returns the field's default member; ok is false when none is marked.
func (f *Field) Default() (Value, bool) { return f.reg.Default() }

// Get resolves raw through the Registry.
// ok is false when raw is blank or holds an id outside the Registry;
// rejecting a stray id is validation's concern, so Get never errors.
func (f *Field) Get(raw ID) (Value, bool) {
	if raw.IsBlank() {
		return Value{}, false
	}

	v, ok := f.reg.byID[int(raw.Int64)]

	return v, ok
}

// Set assigns val to the column raw points at.
// val may be a Value (its id is taken directly), a name (resolved through
// the Registry, failing with ErrNotFound when unknown), or nil (clears the
// column). Any other type fails with ErrBadAssignment.
func (f *Field) Set(raw *ID, val any) error {
	switch v := val.(type) {
	case nil:
		*raw = ID{}

	case Value:
		*raw = NewID(v.id)

	case string:
		match, err := f.reg.Lookup(v)
		if err != nil {
			return err
		}

		*raw = NewID(match.id)

	default:
		return fmt.Errorf("%w: cannot assign %T to %s", ErrBadAssignment, val, f.name)
	}

	return nil
}

// Is asserts whether raw currently resolves to the member called name.
// Is answers false, never an error, when raw is blank or unresolvable.
func (f *Field) Is(raw ID, name string) bool {
	v, ok := f.Get(raw)

	return ok && v.name == name
}

type fieldKey struct {
	owner reflect.Type
	name  string
}

var (
	fieldsMu sync.RWMutex
	fields   = make(map[fieldKey]*Field)
)

// Register builds the Registry for field name on record type T from src and
// binds it in the package table. Registering the same (type, field) pair
// again rebuilds both the Registry and the binding.
func Register[T any](name string, src Source) (*Field, error) {
	reg, err := NewRegistry(src)
	if err != nil {
		return nil, err
	}

	f := &Field{owner: reflect.TypeOf((*T)(nil)).Elem(), name: name, reg: reg}

	fieldsMu.Lock()
	fields[fieldKey{f.owner, f.name}] = f
	fieldsMu.Unlock()

	return f, nil
}

// MustRegister is Register, panicking on a bad declaration.
// A malformed declaration is a programming error surfaced at definition time.
func MustRegister[T any](name string, src Source) *Field {
	f, err := Register[T](name, src)
	if err != nil {
		panic(err)
	}

	return f
}

// FieldFor retrieves the binding Register made for field name on T.
func FieldFor[T any](name string) (*Field, bool) {
	fieldsMu.RLock()
	defer fieldsMu.RUnlock()

	f, ok := fields[fieldKey{reflect.TypeOf((*T)(nil)).Elem(), name}]

	return f, ok
}
