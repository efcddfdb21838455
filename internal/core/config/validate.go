package config

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/formgate/internal/core/rules"
	"github.com/colonyops/formgate/internal/core/styles"
)

// builtinRegistry holds the catalog rules for name checks.
var builtinRegistry = rules.NewRegistry(rules.NewCatalog())

// Validate checks that the configuration is valid. All problems are reported
// together as criterio.FieldErrors keyed by their YAML path.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, themeExists),
		c.validateRules(),
		c.validateDefaults(),
		c.validateForms(),
	)
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

// validateRules checks custom rules compile and do not shadow built-ins. The
// rules compiled here become the config's registry when all of them are valid.
func (c *Config) validateRules() error {
	var errs criterio.FieldErrorsBuilder
	c.registry = nil
	reg := builtinRegistry

	for _, name := range sortedKeys(c.Rules) {
		rule := c.Rules[name]
		prefix := fmt.Sprintf("rules[%q]", name)

		if builtinRegistry.Has(name) {
			errs = errs.Append(prefix, fmt.Errorf("%q is a built-in rule", name))
		}
		if rule.Message == "" {
			errs = errs.Append(prefix+".message", errors.New("message is required"))
		}
		if rule.Pattern == "" && rule.MinLength <= 0 {
			errs = errs.Append(prefix, errors.New("pattern or min_length is required"))
		}
		if rule.MinLength < 0 {
			errs = errs.Append(prefix+".min_length", errors.New("must not be negative"))
		}

		compiled, err := rule.Compile()
		if err != nil {
			errs = errs.Append(prefix+".pattern", fmt.Errorf("invalid regex: %w", err))
			continue
		}
		reg = reg.With(name, compiled)
	}

	if err := errs.ToError(); err != nil {
		return err
	}
	c.registry = reg
	return nil
}

// validateDefaults checks default globs are well formed and reference known rules.
func (c *Config) validateDefaults() error {
	var errs criterio.FieldErrorsBuilder

	for i, d := range c.Defaults {
		prefix := fmt.Sprintf("defaults[%d]", i)
		if d.Match == "" {
			errs = errs.Append(prefix+".match", errors.New("match is required"))
		} else if !doublestar.ValidatePattern(d.Match) {
			errs = errs.Append(prefix+".match", fmt.Errorf("invalid glob %q", d.Match))
		}
		for j, name := range d.Rules {
			if !c.ruleExists(name) {
				errs = errs.Append(fmt.Sprintf("%s.rules[%d]", prefix, j), fmt.Errorf("unknown rule %q", name))
			}
		}
	}

	return errs.ToError()
}

// validateForms checks field names are present and unique and that every
// referenced rule exists.
func (c *Config) validateForms() error {
	var errs criterio.FieldErrorsBuilder

	for _, formName := range sortedKeys(c.Forms) {
		f := c.Forms[formName]
		prefix := fmt.Sprintf("forms[%q]", formName)

		seen := make(map[string]bool, len(f.Fields))
		for i, field := range f.Fields {
			fprefix := fmt.Sprintf("%s.fields[%d]", prefix, i)

			if field.Name == "" {
				errs = errs.Append(fprefix+".name", errors.New("name is required"))
				continue
			}
			if seen[field.Name] {
				errs = errs.Append(fprefix+".name", fmt.Errorf("duplicate field name %q", field.Name))
			}
			seen[field.Name] = true

			kinds := 0
			for _, set := range []bool{field.Secret, field.Multiline, len(field.Options) > 0} {
				if set {
					kinds++
				}
			}
			if kinds > 1 {
				errs = errs.Append(fprefix, errors.New("only one of secret, multiline or options may be set"))
			}

			for j, name := range field.Rules {
				if !c.ruleExists(name) {
					errs = errs.Append(fmt.Sprintf("%s.rules[%d]", fprefix, j), fmt.Errorf("unknown rule %q", name))
				}
			}
		}
	}

	return errs.ToError()
}

func (c *Config) ruleExists(name string) bool {
	if builtinRegistry.Has(name) {
		return true
	}
	_, ok := c.Rules[name]
	return ok
}
