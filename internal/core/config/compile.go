package config

import (
	"fmt"
	"sort"

	"github.com/colonyops/formgate/internal/core/field"
	"github.com/colonyops/formgate/internal/core/form"
)

// CompiledForm is a configured form ready to be filled: the form validator
// plus the display metadata of every field, in order.
type CompiledForm struct {
	Name      string
	Title     string
	Fields    []FormField
	Validator *form.Validator
}

// FieldSpec returns the display metadata for a field name.
func (cf *CompiledForm) FieldSpec(name string) (FormField, bool) {
	for _, f := range cf.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FormField{}, false
}

// Compile builds a fresh form validator for the named form. Every call
// returns new, unvalidated fields.
func (c *Config) Compile(name string) (*CompiledForm, error) {
	def, ok := c.Forms[name]
	if !ok {
		return nil, fmt.Errorf("form %q not found (available: %v)", name, c.FormNames())
	}

	reg, err := c.Registry()
	if err != nil {
		return nil, fmt.Errorf("build rules: %w", err)
	}

	fields := make([]*field.Validator, 0, len(def.Fields))
	for _, f := range def.Fields {
		rs, err := reg.Resolve(c.RuleNames(f)...)
		if err != nil {
			return nil, fmt.Errorf("form %q: field %q: %w", name, f.Name, err)
		}
		fields = append(fields, field.New(f.Name, rs...))
	}

	title := def.Title
	if title == "" {
		title = name
	}

	return &CompiledForm{
		Name:      name,
		Title:     title,
		Fields:    def.Fields,
		Validator: form.New(fields...),
	}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
