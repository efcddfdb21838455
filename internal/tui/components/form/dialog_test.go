package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/formgate/internal/core/config"
	"github.com/colonyops/formgate/internal/core/field"
	coreform "github.com/colonyops/formgate/internal/core/form"
	"github.com/colonyops/formgate/internal/core/rules"
	"github.com/colonyops/formgate/pkg/tuitest"
)

// newTestDialog builds a dialog of required text fields, one per name.
func newTestDialog(names ...string) (*Dialog, []*TextField, *coreform.Validator) {
	validators := make([]*field.Validator, len(names))
	inputs := make([]*TextField, len(names))
	fields := make([]Field, len(names))
	for i, name := range names {
		validators[i] = requiredField(name)
		inputs[i] = NewTextField(name, "", validators[i])
		fields[i] = inputs[i]
	}
	v := coreform.New(validators...)
	return NewDialog("Test", fields, v), inputs, v
}

func TestDialog(t *testing.T) {
	t.Run("creation focuses first field", func(t *testing.T) {
		d, inputs, _ := newTestDialog("a", "b")

		assert.True(t, inputs[0].Focused())
		assert.False(t, inputs[1].Focused())
		assert.False(t, d.Submitted())
		assert.False(t, d.Cancelled())
	})

	t.Run("submit starts enabled before any validation", func(t *testing.T) {
		d, _, _ := newTestDialog("a")
		assert.True(t, d.SubmitEnabled())
	})

	t.Run("empty dialog submits immediately", func(t *testing.T) {
		d := NewDialog("Empty", nil, coreform.New())
		assert.Empty(t, d.FormValues())

		d.Update(tuitest.KeyEnter())
		assert.True(t, d.Submitted())
	})

	t.Run("tab advances to the submit button", func(t *testing.T) {
		d, inputs, _ := newTestDialog("a", "b")

		d.Update(tuitest.KeyTab())
		assert.False(t, inputs[0].Focused())
		assert.True(t, inputs[1].Focused())

		d.Update(tuitest.KeyTab())
		assert.False(t, inputs[1].Focused())
		assert.True(t, d.onSubmit())

		d.Update(tuitest.KeyTab())
		assert.True(t, d.onSubmit())
		assert.False(t, d.Submitted())
	})

	t.Run("shift+tab retreats focus", func(t *testing.T) {
		d, inputs, _ := newTestDialog("a", "b")

		d.Update(tuitest.KeyTab())
		d.Update(tuitest.KeyShiftTab())
		assert.True(t, inputs[0].Focused())
		assert.False(t, inputs[1].Focused())

		d.Update(tuitest.KeyShiftTab())
		assert.True(t, inputs[0].Focused())
	})

	t.Run("enter on a field advances focus", func(t *testing.T) {
		d, inputs, _ := newTestDialog("a", "b")

		d.Update(tuitest.KeyEnter())
		assert.True(t, inputs[1].Focused())
		assert.False(t, d.Submitted())
	})

	t.Run("clearing disables submit until fixed", func(t *testing.T) {
		d, inputs, _ := newTestDialog("a")

		for _, msg := range tuitest.Type("x") {
			d.Update(msg)
		}
		assert.True(t, d.SubmitEnabled())

		inputs[0].SetValue("")
		assert.False(t, d.SubmitEnabled())

		for _, msg := range tuitest.Type("y") {
			d.Update(msg)
		}
		assert.True(t, d.SubmitEnabled())
	})

	t.Run("failed submit focuses first invalid field", func(t *testing.T) {
		d, inputs, v := newTestDialog("a", "b", "c")
		inputs[0].SetValue("filled")

		d.Update(tuitest.KeyTab())
		d.Update(tuitest.KeyTab())
		d.Update(tuitest.KeyTab())
		require.True(t, d.onSubmit())

		d.Update(tuitest.KeyEnter())
		assert.False(t, d.Submitted())
		assert.False(t, d.SubmitEnabled())
		assert.Equal(t, 2, v.FailingCount())
		assert.True(t, inputs[1].Focused())

		view := tuitest.StripANSI(d.View())
		assert.Contains(t, view, "This field is required")
		assert.Contains(t, view, "2 field(s) need attention")
	})

	t.Run("enter on disabled submit only refocuses", func(t *testing.T) {
		d, inputs, v := newTestDialog("a", "b", "c")
		inputs[0].SetValue("filled")
		for range 3 {
			d.Update(tuitest.KeyTab())
		}
		d.Update(tuitest.KeyEnter())
		require.False(t, d.SubmitEnabled())
		require.True(t, inputs[1].Focused())

		d.Update(tuitest.KeyTab())
		d.Update(tuitest.KeyTab())
		require.True(t, d.onSubmit())

		passes := 0
		for _, in := range inputs {
			unsubscribe := in.Validator().OnValidate(func(field.Result) { passes++ })
			defer unsubscribe()
		}

		d.Update(tuitest.KeyEnter())
		assert.False(t, d.Submitted())
		assert.Zero(t, passes)
		assert.Equal(t, 2, v.FailingCount())
		assert.True(t, inputs[1].Focused())
	})

	t.Run("submit with valid values", func(t *testing.T) {
		d, inputs, _ := newTestDialog("a", "b")
		inputs[0].SetValue("one")
		inputs[1].SetValue("two")

		d.Update(tuitest.KeyTab())
		d.Update(tuitest.KeyTab())
		d.Update(tuitest.KeyEnter())

		assert.True(t, d.Submitted())
		assert.Equal(t, map[string]string{"a": "one", "b": "two"}, d.FormValues())
	})

	t.Run("esc cancels", func(t *testing.T) {
		d, _, _ := newTestDialog("a")
		d.Update(tuitest.KeyEsc())
		assert.True(t, d.Cancelled())
		assert.False(t, d.Submitted())
	})

	t.Run("enter in text area inserts a newline", func(t *testing.T) {
		v := field.New("notes")
		ta := NewTextAreaField("Notes", "", v)
		d := NewDialog("Test", []Field{ta}, coreform.New(v))

		for _, msg := range tuitest.Type("a") {
			d.Update(msg)
		}
		d.Update(tuitest.KeyEnter())
		assert.True(t, ta.Focused())
		assert.Equal(t, "a\n", v.Value())
	})

	t.Run("close stops mirroring validity", func(t *testing.T) {
		d, inputs, _ := newTestDialog("a")
		d.Close()
		d.Close()

		inputs[0].SetValue("x")
		inputs[0].SetValue("")
		assert.True(t, d.SubmitEnabled())
	})
}

func TestFromCompiled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Forms["survey"] = config.Form{
		Fields: []config.FormField{
			{Name: "color", Options: []string{"red", "green"}, Rules: []string{rules.NameRequired}},
			{Name: "notes", Multiline: true},
			{Name: "pin", Secret: true},
			{Name: "nick"},
		},
	}

	cf, err := cfg.Compile("survey")
	require.NoError(t, err)

	d := FromCompiled(cf)
	defer d.Close()

	require.Len(t, d.fields, 4)
	assert.IsType(t, &SelectField{}, d.fields[0])
	assert.IsType(t, &TextAreaField{}, d.fields[1])
	assert.IsType(t, &TextField{}, d.fields[2])
	assert.IsType(t, &TextField{}, d.fields[3])
	assert.Equal(t, "survey", d.Title)
	assert.Equal(t, "red", d.FormValues()["color"])
}
