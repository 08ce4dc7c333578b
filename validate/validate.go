package validate

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/xy-planning-network/enums"
)

// Errors collects validation failures, keyed by column.
// A record carrying Errors is merely invalid: it can still be loaded,
// inspected and corrected.
type Errors map[string][]string

// Add appends msg to the failures recorded against column.
func (e Errors) Add(column, msg string) { e[column] = append(e[column], msg) }

// Any asserts whether any failure was recorded.
func (e Errors) Any() bool { return len(e) > 0 }

// Error renders each failure as "<column> <message>", one per line,
// in column order.
//
// Error implements error.
func (e Errors) Error() string {
	var msgs []string
	for column, failures := range e {
		for _, msg := range failures {
			msgs = append(msgs, fmt.Sprintf("%s %s", column, msg))
		}
	}

	sort.Strings(msgs)

	return strings.Join(msgs, "\n")
}

func (Errors) Unwrap() error { return enums.ErrNotValid }

// A Rule checks one aspect of a record at validation time.
// A failing check appends to errs; the returned error is reserved for
// structural problems, such as a rule bound to a column the record does
// not have.
type Rule interface {
	Check(rec any, errs Errors) error
}

var (
	rulesMu sync.RWMutex
	rules   = make(map[reflect.Type][]Rule)
)

// RulesFor declares the validation rules for record type T,
// replacing any prior declaration.
func RulesFor[T any](rr ...Rule) {
	rulesMu.Lock()
	rules[reflect.TypeOf((*T)(nil)).Elem()] = rr
	rulesMu.Unlock()
}

// Check runs the rules declared for rec's type, accepting the record
// itself or a pointer to it. The returned Errors describe data-quality
// failures; the returned error reports a structural misconfiguration.
func Check(rec any) (Errors, error) {
	t := reflect.TypeOf(rec)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	rulesMu.RLock()
	rr := rules[t]
	rulesMu.RUnlock()

	errs := make(Errors)
	for _, r := range rr {
		if err := r.Check(rec, errs); err != nil {
			return nil, err
		}
	}

	return errs, nil
}
