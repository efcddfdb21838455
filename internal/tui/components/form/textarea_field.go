package form

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/formgate/internal/core/field"
)

// TextAreaField is a multi-line text input bound to a field validator.
type TextAreaField struct {
	input   textarea.Model
	label   string
	focused bool
	v       *field.Validator
}

// NewTextAreaField creates a multi-line input for v.
func NewTextAreaField(label, placeholder string, v *field.Validator) *TextAreaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.SetHeight(4)
	ta.SetWidth(40)

	if v.Value() != "" {
		ta.SetValue(v.Value())
	}

	return &TextAreaField{
		input: ta,
		label: label,
		v:     v,
	}
}

func (f *TextAreaField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	sync(f.v, f.input.Value())
	return f, cmd
}

// SetValue replaces the text as if the user had typed it.
func (f *TextAreaField) SetValue(value string) {
	f.input.SetValue(value)
	sync(f.v, f.input.Value())
}

func (f *TextAreaField) View() string {
	return render(f.label, f.input.View(), f.focused, f.v)
}

func (f *TextAreaField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextAreaField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextAreaField) Focused() bool               { return f.focused }
func (f *TextAreaField) Label() string               { return f.label }
func (f *TextAreaField) Validator() *field.Validator { return f.v }
