package rules

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownRule is returned when a rule name is not present in a Registry.
var ErrUnknownRule = errors.New("unknown rule")

// Registry is a read-only table of named rules. It is built once at startup
// and shared by reference; methods that add rules return a new Registry.
type Registry struct {
	rules map[string]Rule
}

// NewRegistry creates a registry seeded with the catalog entries.
func NewRegistry(c Catalog) *Registry {
	return &Registry{rules: c.entries()}
}

// With returns a copy of the registry that also contains rule under name.
// An existing entry with the same name is replaced in the copy.
func (r *Registry) With(name string, rule Rule) *Registry {
	next := make(map[string]Rule, len(r.rules)+1)
	for k, v := range r.rules {
		next[k] = v
	}
	next[name] = rule
	return &Registry{rules: next}
}

// Lookup returns the rule registered under name.
func (r *Registry) Lookup(name string) (Rule, bool) {
	rule, ok := r.rules[name]
	return rule, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.rules[name]
	return ok
}

// Resolve returns the rules for names, in the order given.
func (r *Registry) Resolve(names ...string) ([]Rule, error) {
	out := make([]Rule, 0, len(names))
	for _, name := range names {
		rule, ok := r.rules[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}
		out = append(out, rule)
	}
	return out, nil
}

// Names returns all registered names sorted A-Z.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
