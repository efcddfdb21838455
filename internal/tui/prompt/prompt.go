// Package prompt fills a form with huh, one input per field, routing every
// input's validation through the field validator.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/formgate/internal/core/config"
	"github.com/colonyops/formgate/internal/core/field"
	coreform "github.com/colonyops/formgate/internal/core/form"
	"github.com/colonyops/formgate/internal/core/styles"
)

// ErrAborted is returned when the user quits the prompt.
var ErrAborted = huh.ErrUserAborted

// Options configures the prompt program.
type Options struct {
	AltScreen bool
}

// Prompt is a huh form bound to a compiled form.
type Prompt struct {
	validator *coreform.Validator
	values    []string
	form      *huh.Form
}

// New builds a prompt for cf. Select fields start on the field's current
// value.
func New(cf *config.CompiledForm, opts Options) *Prompt {
	fields := cf.Validator.Fields()
	p := &Prompt{
		validator: cf.Validator,
		values:    make([]string, len(fields)),
	}

	inputs := make([]huh.Field, len(fields))
	for i, v := range fields {
		p.values[i] = v.Value()
		inputs[i] = newInput(cf.Fields[i], v, &p.values[i])
	}

	form := huh.NewForm(huh.NewGroup(inputs...)).
		WithTheme(Theme()).
		WithKeyMap(KeyMap())
	if opts.AltScreen {
		form = form.WithProgramOptions(tea.WithAltScreen())
	}
	p.form = form

	return p
}

func newInput(spec config.FormField, v *field.Validator, value *string) huh.Field {
	label := spec.DisplayLabel()
	check := validate(v)

	switch {
	case len(spec.Options) > 0:
		return huh.NewSelect[string]().
			Title(label).
			Options(huh.NewOptions(spec.Options...)...).
			Validate(check).
			Value(value)
	case spec.Multiline:
		return huh.NewText().
			Title(label).
			Placeholder(spec.Placeholder).
			Validate(check).
			Value(value)
	default:
		in := huh.NewInput().
			Title(label).
			Placeholder(spec.Placeholder).
			Validate(check).
			Value(value)
		if spec.Secret {
			in = in.EchoMode(huh.EchoModePassword)
		}
		return in
	}
}

// validate adapts a field validator to a huh validation hook. The hook stores
// the value, runs a pass and reports the field's message.
func validate(v *field.Validator) func(string) error {
	return func(s string) error {
		v.SetValue(s)
		if v.Validate() {
			return nil
		}
		msg, _ := v.Error()
		return errors.New(msg)
	}
}

// Run shows the prompt and returns the submitted values. The values pass
// through a final ValidateAll before they are returned.
func (p *Prompt) Run(ctx context.Context) (map[string]string, error) {
	if err := p.form.RunWithContext(ctx); err != nil {
		return nil, err
	}

	for i, v := range p.validator.Fields() {
		v.SetValue(p.values[i])
	}

	if !p.validator.ValidateAll() {
		return nil, fmt.Errorf("%d field(s) failed validation", p.validator.FailingCount())
	}
	return p.validator.Values(), nil
}

// KeyMap returns the huh key map with esc added to quit.
func KeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))
	return km
}

// Theme returns a huh theme derived from the active palette.
func Theme() *huh.Theme {
	var (
		primary = lipgloss.Color(styles.Hex(styles.ColorPrimary))
		fg      = lipgloss.Color(styles.Hex(styles.ColorForeground))
		muted   = lipgloss.Color(styles.Hex(styles.ColorMuted))
		errc    = lipgloss.Color(styles.Hex(styles.ColorError))
	)

	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(primary)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errc)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errc)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary)
	t.Focused.Option = t.Focused.Option.Foreground(fg)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(fg)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(muted).Bold(false)

	return t
}
