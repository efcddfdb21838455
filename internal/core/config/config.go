// Package config handles configuration loading and validation for formgate.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/formgate/internal/core/rules"
	"github.com/colonyops/formgate/internal/core/styles"
)

// DefaultForm is the name of the built-in form.
const DefaultForm = "signup"

// Config holds the application configuration.
type Config struct {
	Theme    string                `yaml:"theme"`
	Rules    map[string]CustomRule `yaml:"rules"`
	Defaults []DefaultRules        `yaml:"defaults"`
	Forms    map[string]Form       `yaml:"forms"`
	DataDir  string                `yaml:"-"` // set by caller, not from config file

	registry *rules.Registry
}

// CustomRule defines a rule in addition to the built-in catalog. A value
// passes when it matches Pattern (if set) and has at least MinLength
// characters (if set).
type CustomRule struct {
	Message   string `yaml:"message"`
	Pattern   string `yaml:"pattern"`
	MinLength int    `yaml:"min_length"`
}

// DefaultRules assigns rules to fields that declare none, by matching the
// field name against a glob.
type DefaultRules struct {
	Match string   `yaml:"match"` // doublestar glob matched against the field name
	Rules []string `yaml:"rules"`
}

// Form defines a named set of fields.
type Form struct {
	Title  string      `yaml:"title"`
	Fields []FormField `yaml:"fields"`
}

// FormField defines one input of a form.
type FormField struct {
	Name        string   `yaml:"name"`        // identifier used by check --set and JSON input
	Label       string   `yaml:"label"`       // display label
	Placeholder string   `yaml:"placeholder"` // placeholder text for input fields
	Secret      bool     `yaml:"secret"`      // mask input
	Multiline   bool     `yaml:"multiline"`   // use a text area instead of a single line
	Options     []string `yaml:"options"`     // render as a single-select list of these values
	Rules       []string `yaml:"rules"`       // rule names, evaluated in order
}

// DisplayLabel returns the label, falling back to the field name.
func (f FormField) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// DefaultSignupForm mirrors the demo sign-up form: personal details followed
// by login details.
func DefaultSignupForm() Form {
	return Form{
		Title: "Sign up",
		Fields: []FormField{
			{Name: "name", Label: "Name", Rules: []string{rules.NameRequired, rules.NameName}},
			{Name: "phone", Label: "Phone Number", Placeholder: "5551234567", Rules: []string{rules.NameRequired, rules.NamePhoneNumber}},
			{Name: "zip", Label: "Zip Code", Placeholder: "12345", Rules: []string{rules.NameRequired, rules.NameZipCode}},
			{Name: "email", Label: "Email", Placeholder: "you@example.com", Rules: []string{rules.NameRequired, rules.NameEmail}},
			{Name: "password", Label: "Password", Secret: true, Rules: []string{rules.NameRequired, rules.NamePasswordLength}},
		},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Rules: map[string]CustomRule{},
		Forms: map[string]Form{
			DefaultForm: DefaultSignupForm(),
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
// Custom rules are compiled here, so a malformed pattern stops startup.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	defaultForms := cfg.Forms
	cfg.Forms = nil
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	// Merge user forms into defaults (user config overrides defaults)
	cfg.Forms = mergeForms(defaultForms, cfg.Forms)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if _, err := cfg.Registry(); err != nil {
		return nil, fmt.Errorf("build rules: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Rules == nil {
		c.Rules = map[string]CustomRule{}
	}
}

// mergeForms merges user forms into defaults.
// User forms override defaults with the same name.
func mergeForms(defaults, user map[string]Form) map[string]Form {
	result := make(map[string]Form, len(defaults)+len(user))

	for k, v := range defaults {
		result[k] = v
	}

	for k, v := range user {
		result[k] = v
	}

	return result
}

// Registry returns the rule registry: the built-in catalog plus custom rules.
// Configs returned by Load have it built already.
func (c *Config) Registry() (*rules.Registry, error) {
	if c.registry != nil {
		return c.registry, nil
	}
	reg, err := c.buildRegistry()
	if err != nil {
		return nil, err
	}
	c.registry = reg
	return reg, nil
}

func (c *Config) buildRegistry() (*rules.Registry, error) {
	reg := rules.NewRegistry(rules.NewCatalog())
	for _, name := range sortedKeys(c.Rules) {
		r, err := c.Rules[name].Compile()
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", name, err)
		}
		reg = reg.With(name, r)
	}
	return reg, nil
}

// Compile builds the rule described by the custom rule definition.
func (cr CustomRule) Compile() (rules.Rule, error) {
	var parts []rules.Rule
	if cr.Pattern != "" {
		r, err := rules.Pattern(cr.Message, cr.Pattern)
		if err != nil {
			return rules.Rule{}, err
		}
		parts = append(parts, r)
	}
	if cr.MinLength > 0 {
		parts = append(parts, rules.MinLength(cr.Message, cr.MinLength))
	}
	return rules.All(cr.Message, parts...), nil
}

// RuleNames returns the rule names applied to a field: its own list when set,
// otherwise the first matching entry of defaults.
func (c *Config) RuleNames(f FormField) []string {
	if len(f.Rules) > 0 {
		return f.Rules
	}
	for _, d := range c.Defaults {
		if ok, _ := doublestar.Match(d.Match, f.Name); ok {
			return d.Rules
		}
	}
	return nil
}

// FormNames returns the configured form names sorted A-Z.
func (c *Config) FormNames() []string {
	return sortedKeys(c.Forms)
}

// LogFile returns the default log file path inside the data directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "formgate.log")
}
