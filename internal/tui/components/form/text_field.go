package form

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/formgate/internal/core/field"
	"github.com/colonyops/formgate/internal/core/styles"
)

// TextField is a single-line text input bound to a field validator.
type TextField struct {
	input   textinput.Model
	label   string
	focused bool
	v       *field.Validator
}

// NewTextField creates a single-line input for v. The input starts with the
// validator's current value.
func NewTextField(label, placeholder string, v *field.Validator) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetWidth(40)

	if v.Value() != "" {
		ti.SetValue(v.Value())
	}

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	return &TextField{
		input: ti,
		label: label,
		v:     v,
	}
}

// NewSecretField creates a text field that masks its input.
func NewSecretField(label, placeholder string, v *field.Validator) *TextField {
	f := NewTextField(label, placeholder, v)
	f.input.EchoMode = textinput.EchoPassword
	return f
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	sync(f.v, f.input.Value())
	return f, cmd
}

// SetValue replaces the input text as if the user had typed it.
func (f *TextField) SetValue(value string) {
	f.input.SetValue(value)
	sync(f.v, f.input.Value())
}

func (f *TextField) View() string {
	return render(f.label, f.input.View(), f.focused, f.v)
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Focused() bool               { return f.focused }
func (f *TextField) Label() string               { return f.label }
func (f *TextField) Validator() *field.Validator { return f.v }
