package validate

import (
	"database/sql"
	"fmt"
	"reflect"

	"github.com/xy-planning-network/enums"
)

// DefaultMessage is recorded against a column failing an inclusion check
// when no Message option overrides it.
const DefaultMessage = "is not valid"

// An InclusionOpt configures an inclusion Rule.
type InclusionOpt func(*inclusion)

// Allow restricts the accepted set to keys, each an id or a name.
// Names resolve through the field's Registry at validation time,
// not at declaration time, so Allow can run before the Registry is final.
func Allow(keys ...any) InclusionOpt {
	return func(i *inclusion) { i.allowed = keys }
}

// Message overrides the text recorded against the column on failure.
func Message(msg string) InclusionOpt {
	return func(i *inclusion) { i.message = msg }
}

// AllowBlank passes a record whose raw column is blank.
func AllowBlank() InclusionOpt {
	return func(i *inclusion) { i.allowBlank = true }
}

type inclusion struct {
	field      *enums.Field
	column     string
	allowed    []any
	message    string
	allowBlank bool
}

// Inclusion constrains the raw integer column named by its "db" tag to the
// members of f's Registry, or to the subset given with Allow. A failing
// record gains exactly one error on the column; a missing column or an
// unresolvable Allow key is a structural error instead.
func Inclusion(f *enums.Field, column string, opts ...InclusionOpt) Rule {
	i := &inclusion{field: f, column: column, message: DefaultMessage}
	for _, opt := range opts {
		opt(i)
	}

	return i
}

func (i *inclusion) Check(rec any, errs Errors) error {
	raw, set, err := rawColumn(rec, i.column)
	if err != nil {
		return err
	}

	if !set {
		if !i.allowBlank {
			errs.Add(i.column, i.message)
		}

		return nil
	}

	if len(i.allowed) == 0 {
		if !i.field.Registry().Contains(raw) {
			errs.Add(i.column, i.message)
		}

		return nil
	}

	for _, key := range i.allowed {
		v, err := i.field.Value(key)
		if err != nil {
			return fmt.Errorf("allowed key for %q: %w", i.column, err)
		}

		if v.ID() == raw {
			return nil
		}
	}

	errs.Add(i.column, i.message)

	return nil
}

// rawColumn reads the integer column tagged with column off rec.
// set is false when the column holds no id (a blank enums.ID, NULL int,
// or nil pointer).
func rawColumn(rec any, column string) (raw int, set bool, err error) {
	v := reflect.ValueOf(rec)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return 0, false, fmt.Errorf("%w: %T is not a record struct", enums.ErrNotValid, rec)
	}

	for _, field := range reflect.VisibleFields(v.Type()) {
		if field.Tag.Get("db") != column {
			continue
		}

		fv := v.FieldByIndex(field.Index)
		switch col := fv.Interface().(type) {
		case enums.ID:
			if col.IsBlank() {
				return 0, false, nil
			}

			return int(col.Int64), true, nil

		case sql.NullInt64:
			if !col.Valid {
				return 0, false, nil
			}

			return int(col.Int64), true, nil
		}

		switch {
		case fv.Kind() == reflect.Pointer && fv.Type().Elem().Kind() == reflect.Int:
			if fv.IsNil() {
				return 0, false, nil
			}

			return int(fv.Elem().Int()), true, nil

		case fv.CanInt():
			return int(fv.Int()), true, nil

		case fv.CanUint():
			return int(fv.Uint()), true, nil
		}

		return 0, false, fmt.Errorf("%w: column %q on %T is not an integer", enums.ErrNotValid, column, rec)
	}

	return 0, false, fmt.Errorf("%w: no %q column on %T", enums.ErrMissingData, column, rec)
}
