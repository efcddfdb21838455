package form

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	coreform "github.com/colonyops/formgate/internal/core/form"
	"github.com/colonyops/formgate/internal/core/styles"
)

// filterer is an optional interface for fields that support list filtering.
type filterer interface {
	IsFiltering() bool
}

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of fields. Focus positions run over the fields
// and then the submit button.
type Dialog struct {
	fields        []Field
	form          *coreform.Validator
	focused       int
	submitEnabled bool
	submitted     bool
	cancelled     bool
	unsubscribe   func()
	Title         string
}

// NewDialog creates a dialog for fields backed by form. The fields must be
// bound to the form's field validators in the same order. The first field is
// focused automatically.
func NewDialog(title string, fields []Field, form *coreform.Validator) *Dialog {
	d := &Dialog{
		fields:        fields,
		form:          form,
		submitEnabled: form.IsValid(),
		Title:         title,
	}
	d.unsubscribe = form.OnChange(func(valid bool) {
		d.submitEnabled = valid
	})
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Init returns the focus command of the first field.
func (d *Dialog) Init() tea.Cmd {
	if d.focused < len(d.fields) {
		return d.fields[d.focused].Focus()
	}
	return nil
}

// Update handles key input for the dialog, managing focus cycling and submit/cancel.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab":
		return d.moveFocus(d.focused + 1)
	case "shift+tab":
		return d.moveFocus(d.focused - 1)
	case "enter":
		switch {
		case d.onSubmit():
			return d.trySubmit()
		case d.isTextAreaFocused():
			return d.updateFocusedField(msg)
		default:
			return d.moveFocus(d.focused + 1)
		}
	case "esc":
		if d.isFocusedFieldFiltering() {
			return d.updateFocusedField(msg)
		}
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// View renders all fields vertically followed by the submit button and help.
func (d *Dialog) View() string {
	var parts []string
	if d.Title != "" {
		parts = append(parts, styles.TitleStyle.Render(d.Title), "")
	}

	for i, f := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, f.View())
	}

	parts = append(parts, "", d.submitView())

	help := styles.FormHelpStyle.Render("tab: next  shift+tab: prev  enter: submit  esc: cancel")
	parts = append(parts, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (d *Dialog) submitView() string {
	style := styles.SubmitDisabledStyle
	if d.submitEnabled {
		style = styles.SubmitEnabledStyle
	}

	cursor := "  "
	if d.onSubmit() {
		cursor = "> "
	}

	line := cursor + style.Render("Submit")
	if n := d.form.FailingCount(); n > 0 {
		line += "  " + styles.TextMutedStyle.Render(fmt.Sprintf("%d field(s) need attention", n))
	}
	return line
}

// FormValues returns the field values keyed by field name.
func (d *Dialog) FormValues() map[string]string {
	return d.form.Values()
}

// SubmitEnabled reports whether the submit button is active.
func (d *Dialog) SubmitEnabled() bool { return d.submitEnabled }

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

// Close detaches the dialog from the form's validity notifications.
func (d *Dialog) Close() {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
}

func (d *Dialog) onSubmit() bool {
	return d.focused == len(d.fields)
}

// trySubmit runs a full validation pass. On failure focus moves to the first
// invalid field so its message is visible. A disabled button only moves focus;
// the failing fields already carry their messages.
func (d *Dialog) trySubmit() (*Dialog, tea.Cmd) {
	if !d.submitEnabled {
		return d.focusFirstInvalid()
	}
	if d.form.ValidateAll() {
		d.submitted = true
		return d, nil
	}
	return d.focusFirstInvalid()
}

func (d *Dialog) focusFirstInvalid() (*Dialog, tea.Cmd) {
	for i, f := range d.fields {
		if !f.Validator().Valid() {
			return d.moveFocus(i)
		}
	}
	return d, nil
}

func (d *Dialog) moveFocus(next int) (*Dialog, tea.Cmd) {
	if next < 0 || next > len(d.fields) || next == d.focused {
		return d, nil
	}

	if !d.onSubmit() {
		d.fields[d.focused].Blur()
	}
	d.focused = next
	if d.onSubmit() {
		return d, nil
	}
	return d, d.fields[d.focused].Focus()
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if d.onSubmit() {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focused], cmd = d.fields[d.focused].Update(msg)
	return d, cmd
}

func (d *Dialog) isTextAreaFocused() bool {
	if d.onSubmit() {
		return false
	}
	_, ok := d.fields[d.focused].(*TextAreaField)
	return ok
}

func (d *Dialog) isFocusedFieldFiltering() bool {
	if d.onSubmit() {
		return false
	}
	if f, ok := d.fields[d.focused].(filterer); ok {
		return f.IsFiltering()
	}
	return false
}
