package enums

// Enumerable is the interface implemented by types that can only be
// represented by enumerable, constant values.
//
// Implementing a new Enumerable or adding a new constant value ought to
// include updating the database with the same types and values.
type Enumerable interface {
	String() string
	Valid() error
}

// A BoundValue pairs a raw column with the Field it belongs to so the
// current assignment satisfies Enumerable.
type BoundValue struct {
	raw   ID
	field *Field
}

// Enum wraps raw as a BoundValue for consumers written against Enumerable.
func (f *Field) Enum(raw ID) BoundValue { return BoundValue{raw: raw, field: f} }

// String returns the name raw resolves to, or "" when blank or unresolvable.
//
// String implements fmt.Stringer.
func (b BoundValue) String() string {
	v, ok := b.field.Get(b.raw)
	if !ok {
		return ""
	}

	return v.Name()
}

// Valid returns ErrNotValid unless raw resolves to a registered member.
func (b BoundValue) Valid() error {
	if _, ok := b.field.Get(b.raw); !ok {
		return ErrNotValid
	}

	return nil
}
