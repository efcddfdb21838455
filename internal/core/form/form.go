// Package form aggregates field validators into a single validity signal.
//
// A Validator subscribes to every field it owns when it is created and keeps
// a count of failing fields, so each field's validation pass updates the
// aggregate without rescanning the other fields.
package form

import (
	"errors"
	"fmt"
	"slices"

	"github.com/colonyops/formgate/internal/core/field"
)

// ErrUnknownField is returned when a field name is not owned by the form.
var ErrUnknownField = errors.New("unknown field")

// Validator owns a fixed, ordered set of fields. IsValid reflects the error
// state each field recorded on its last validation pass; fields that were
// never validated count as passing.
//
// Validator is not safe for concurrent use.
type Validator struct {
	fields  []*field.Validator
	failing []bool
	nfail   int

	unsubscribe []func()
	listeners   []*listener
	closed      bool
}

type listener struct {
	fn func(valid bool)
}

// New creates a form over fields. The set of fields cannot change afterwards.
func New(fields ...*field.Validator) *Validator {
	v := &Validator{
		fields:      slices.Clone(fields),
		failing:     make([]bool, len(fields)),
		unsubscribe: make([]func(), 0, len(fields)),
	}

	for i, f := range v.fields {
		if !f.Valid() {
			v.failing[i] = true
			v.nfail++
		}

		idx := i
		v.unsubscribe = append(v.unsubscribe, f.OnValidate(func(res field.Result) {
			v.record(idx, res.Valid)
		}))
	}

	return v
}

// record applies one field's pass to the failing count and republishes.
func (v *Validator) record(idx int, valid bool) {
	switch {
	case valid && v.failing[idx]:
		v.failing[idx] = false
		v.nfail--
	case !valid && !v.failing[idx]:
		v.failing[idx] = true
		v.nfail++
	}

	v.publish()
}

func (v *Validator) publish() {
	valid := v.IsValid()
	listeners := slices.Clone(v.listeners)
	for _, l := range listeners {
		l.fn(valid)
	}
}

// IsValid reports whether no owned field currently has an error. A form
// without fields is valid.
func (v *Validator) IsValid() bool {
	return v.nfail == 0
}

// FailingCount returns how many fields currently have an error.
func (v *Validator) FailingCount() int {
	return v.nfail
}

// ValidateAll validates every field in order, without stopping at the first
// failing field, and reports whether all of them passed. Unlike IsValid it
// never relies on state from earlier passes.
func (v *Validator) ValidateAll() bool {
	ok := true
	for _, f := range v.fields {
		if !f.Validate() {
			ok = false
		}
	}
	return ok
}

// OnChange registers fn to receive the aggregate validity after each field
// validation pass. Passes are not coalesced: validating three fields calls fn
// three times. The returned function removes the listener.
func (v *Validator) OnChange(fn func(valid bool)) func() {
	l := &listener{fn: fn}
	v.listeners = append(v.listeners, l)

	return func() {
		if i := slices.Index(v.listeners, l); i >= 0 {
			v.listeners = slices.Delete(v.listeners, i, i+1)
		}
	}
}

// Close detaches the form from its fields. Later validation passes no longer
// update IsValid. Close is idempotent.
func (v *Validator) Close() {
	if v.closed {
		return
	}
	v.closed = true
	for _, stop := range v.unsubscribe {
		stop()
	}
	v.unsubscribe = nil
}

// Fields returns the owned fields in construction order.
func (v *Validator) Fields() []*field.Validator {
	return slices.Clone(v.fields)
}

// Len returns the number of owned fields.
func (v *Validator) Len() int { return len(v.fields) }

// Field returns the first owned field with the given name.
func (v *Validator) Field(name string) (*field.Validator, bool) {
	for _, f := range v.fields {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// SetValue stores value on the named field without validating it.
func (v *Validator) SetValue(name, value string) error {
	f, ok := v.Field(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	f.SetValue(value)
	return nil
}

// Validate runs a validation pass on the named field.
func (v *Validator) Validate(name string) (bool, error) {
	f, ok := v.Field(name)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f.Validate(), nil
}

// Values returns the current raw value of every field keyed by name.
func (v *Validator) Values() map[string]string {
	out := make(map[string]string, len(v.fields))
	for _, f := range v.fields {
		if _, seen := out[f.Name()]; !seen {
			out[f.Name()] = f.Value()
		}
	}
	return out
}

// Errors returns the current message of every failing field keyed by name.
func (v *Validator) Errors() map[string]string {
	out := make(map[string]string)
	for _, f := range v.fields {
		if msg, ok := f.Error(); ok {
			if _, seen := out[f.Name()]; !seen {
				out[f.Name()] = msg
			}
		}
	}
	return out
}
