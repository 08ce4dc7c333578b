package enums

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A Value is an immutable descriptor for one member of an enum field.
//
// A Value carries the raw id stored in the database column alongside the
// name, display title, and ordering position that id resolves to.
type Value struct {
	id       int
	name     string
	title    string
	position int
	def      bool
	entity   any
}

// NewValue constructs a Value for id from attrs.
//
// Title defaults to Humanize(attrs.Name) and Position defaults to id
// when attrs leaves them unset.
func NewValue(id int, attrs Attrs) (Value, error) {
	if attrs.Name == "" {
		return Value{}, fmt.Errorf("%w: no name for id %d", ErrBadDefinition, id)
	}

	v := Value{
		id:       id,
		name:     attrs.Name,
		title:    attrs.Title,
		position: attrs.Position,
		def:      attrs.Default,
	}

	if v.title == "" {
		v.title = Humanize(v.name)
	}

	if v.position == 0 {
		v.position = id
	}

	return v, nil
}

// ID returns the raw id persisted in the database column.
func (v Value) ID() int { return v.id }

// Name returns the identifier the Value is declared under.
func (v Value) Name() string { return v.name }

// Title returns the display string for the Value.
func (v Value) Title() string { return v.title }

// Position returns the ordering position of the Value within its Registry.
func (v Value) Position() int { return v.position }

// IsDefault asserts whether the Value is marked as its field's default.
func (v Value) IsDefault() bool { return v.def }

// Entity returns the record the Value was declared from
// when the declaration was a Records source, or nil otherwise.
func (v Value) Entity() any { return v.entity }

// IsZero asserts whether the Value is the zero Value,
// i.e. not a member of any Registry.
func (v Value) IsZero() bool { return v.name == "" }

// String stringifies the Value as its name.
//
// String implements fmt.Stringer.
func (v Value) String() string { return v.name }

// Matches asserts whether key identifies the Value,
// matching integer keys against the id and string keys against the name.
// Matches answers false, never an error, for any other key type.
func (v Value) Matches(key any) bool {
	switch k := key.(type) {
	case int:
		return v.id == k
	case int64:
		return v.id == int(k)
	case uint:
		return v.id == int(k)
	case string:
		return v.name == k
	default:
		return false
	}
}

// Humanize renders a snake_case enum name as a display title,
// e.g., "in_progress" becomes "In Progress".
func Humanize(name string) string {
	// cases.Caser carries transformer state, so each call gets its own.
	return cases.Title(language.AmericanEnglish).String(strings.ReplaceAll(name, "_", " "))
}
