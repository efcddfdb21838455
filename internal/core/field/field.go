// Package field holds the per-field validator: one input's raw value, the
// rules it must satisfy and the error left by the last validation pass.
package field

import (
	"slices"

	"github.com/colonyops/formgate/internal/core/rules"
)

// Result describes the outcome of one validation pass.
type Result struct {
	Field string
	Value string
	Error string // empty when Valid
	Valid bool
}

// Validator owns a single field. Setting a value never re-validates it;
// callers run Validate after a change for Error to reflect the new value.
//
// Validator is not safe for concurrent use.
type Validator struct {
	name  string
	value string
	err   string
	ok    bool // false only after a failed pass
	rules []rules.Rule

	listeners []*listener
}

type listener struct {
	fn func(Result)
}

// New creates a field with an empty value and no error. The rule order is
// the evaluation order.
func New(name string, rs ...rules.Rule) *Validator {
	owned := make([]rules.Rule, len(rs))
	copy(owned, rs)
	return &Validator{
		name:  name,
		ok:    true,
		rules: owned,
	}
}

// Name returns the field identifier.
func (v *Validator) Name() string { return v.name }

// Value returns the current raw value.
func (v *Validator) Value() string { return v.value }

// SetValue stores a new raw value. The error state is left as it was.
func (v *Validator) SetValue(value string) {
	v.value = value
}

// Error returns the message of the first rule that failed on the last pass.
// The boolean is false when the field has no error.
func (v *Validator) Error() (string, bool) {
	if v.ok {
		return "", false
	}
	return v.err, true
}

// Valid reports whether the field currently has no error.
func (v *Validator) Valid() bool { return v.ok }

// Rules returns a copy of the field's rules in evaluation order.
func (v *Validator) Rules() []rules.Rule {
	out := make([]rules.Rule, len(v.rules))
	copy(out, v.rules)
	return out
}

// Validate runs the rules in order against the current value and stops at the
// first failure, recording that rule's message. Listeners are notified
// before Validate returns, on every call.
func (v *Validator) Validate() bool {
	v.ok, v.err = true, ""
	for _, r := range v.rules {
		if !r.Check(v.value) {
			v.ok, v.err = false, r.Message
			break
		}
	}

	v.notify(Result{
		Field: v.name,
		Value: v.value,
		Error: v.err,
		Valid: v.ok,
	})

	return v.ok
}

// OnValidate registers fn to run after every Validate call. Listeners run in
// registration order. The returned function removes the listener; calling it
// more than once is a no-op.
func (v *Validator) OnValidate(fn func(Result)) func() {
	l := &listener{fn: fn}
	v.listeners = append(v.listeners, l)

	return func() {
		for i, existing := range v.listeners {
			if existing == l {
				v.listeners = slices.Delete(v.listeners, i, i+1)
				return
			}
		}
	}
}

func (v *Validator) notify(res Result) {
	// Snapshot so a listener may unsubscribe while being notified.
	listeners := make([]*listener, len(v.listeners))
	copy(listeners, v.listeners)
	for _, l := range listeners {
		l.fn(res)
	}
}
