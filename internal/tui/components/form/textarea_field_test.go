package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/formgate/internal/core/field"
	"github.com/colonyops/formgate/internal/core/rules"
	"github.com/colonyops/formgate/pkg/tuitest"
)

func TestTextAreaField(t *testing.T) {
	t.Run("creation", func(t *testing.T) {
		f := NewTextAreaField("Notes", "enter text", field.New("notes"))
		assert.Equal(t, "Notes", f.Label())
		assert.False(t, f.Focused())
	})

	t.Run("starts with the validator value", func(t *testing.T) {
		v := field.New("notes")
		v.SetValue("hello world")
		f := NewTextAreaField("Notes", "", v)
		assert.Equal(t, "hello world", f.input.Value())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		v := field.New("notes")
		f := NewTextAreaField("Notes", "", v)
		_, cmd := f.Update(tuitest.KeyPress('a'))
		assert.Nil(t, cmd)
		assert.Empty(t, v.Value())
	})

	t.Run("multi-line values validate", func(t *testing.T) {
		v := field.New("notes", rules.MinLength("too short", 5))
		f := NewTextAreaField("Notes", "", v)

		f.SetValue("ab")
		assert.False(t, v.Valid())

		f.SetValue("line one\nline two")
		assert.True(t, v.Valid())
		assert.Equal(t, "line one\nline two", v.Value())
	})

	t.Run("view changes with focus", func(t *testing.T) {
		f := NewTextAreaField("Notes", "", field.New("notes"))
		unfocused := f.View()

		f.Focus()
		assert.NotEqual(t, unfocused, f.View())
	})
}
