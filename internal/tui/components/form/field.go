package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/formgate/internal/core/field"
	"github.com/colonyops/formgate/internal/core/styles"
)

// Field is the interface implemented by all form field types. Every field is
// bound to a field validator that holds its value and error.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Label() string
	Validator() *field.Validator
}

// sync pushes an edited input value into the validator and runs a pass when
// the value actually changed. Editing keys that leave the value untouched,
// such as cursor movement, do not trigger validation.
func sync(v *field.Validator, value string) {
	if value == v.Value() {
		return
	}
	v.SetValue(value)
	v.Validate()
}

// render lays out a label, the input and the field's current error.
func render(label, input string, focused bool, v *field.Validator) string {
	titleStyle := styles.FormTitleBlurredStyle
	if focused {
		titleStyle = styles.FormTitleStyle
	}

	parts := []string{titleStyle.Render(label), input}

	msg, hasErr := v.Error()
	if hasErr {
		parts = append(parts, styles.FormErrorStyle.Render(msg))
	}

	borderStyle := styles.FormFieldStyle
	switch {
	case hasErr:
		borderStyle = styles.FormFieldInvalidStyle
	case focused:
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
