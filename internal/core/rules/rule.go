// Package rules defines validation rules: immutable pairings of a pure string
// predicate and the message shown when the predicate fails.
package rules

import (
	"fmt"
	"regexp"

	"github.com/rivo/uniseg"
)

// Rule checks a single string value. The zero Rule has no predicate and
// always passes.
type Rule struct {
	Message string
	check   func(string) bool
}

// New creates a rule from a predicate. The predicate must be pure and must
// terminate for every input.
func New(message string, check func(string) bool) Rule {
	return Rule{Message: message, check: check}
}

// Check reports whether value satisfies the rule.
func (r Rule) Check(value string) bool {
	if r.check == nil {
		return true
	}
	return r.check(value)
}

// Pattern creates a rule that passes when the whole value matches expr, as
// if expr were wrapped in ^(?:...)$. The expression is compiled here so a
// malformed pattern surfaces when the rule is defined, never when a value is
// validated.
func Pattern(message, expr string) (Rule, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return Rule{}, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	return New(message, re.MatchString), nil
}

// MustPattern is like Pattern but panics on a malformed expression. Use it
// only for rules built at program start.
func MustPattern(message, expr string) Rule {
	r, err := Pattern(message, expr)
	if err != nil {
		panic(err)
	}
	return r
}

// MinLength creates a rule that passes when value has at least n
// user-perceived characters. "é" written as e + combining accent counts once.
func MinLength(message string, n int) Rule {
	return New(message, func(value string) bool {
		return uniseg.GraphemeClusterCount(value) >= n
	})
}

// NotEmpty creates a rule that rejects the empty string.
func NotEmpty(message string) Rule {
	return New(message, func(value string) bool {
		return value != ""
	})
}

// All combines rules into one that passes only when every rule passes. The
// combined rule reports its own message, not the message of the failing part.
func All(message string, rs ...Rule) Rule {
	parts := make([]Rule, len(rs))
	copy(parts, rs)
	return New(message, func(value string) bool {
		for _, r := range parts {
			if !r.Check(value) {
				return false
			}
		}
		return true
	})
}
