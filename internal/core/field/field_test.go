package field

import (
	"testing"

	"github.com/colonyops/formgate/internal/core/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emailField() *Validator {
	c := rules.NewCatalog()
	return New("email", c.Required, c.Email)
}

func TestValidator(t *testing.T) {
	t.Run("starts empty without error", func(t *testing.T) {
		f := emailField()
		assert.Equal(t, "email", f.Name())
		assert.Empty(t, f.Value())
		assert.True(t, f.Valid())
		_, hasErr := f.Error()
		assert.False(t, hasErr)
	})

	t.Run("empty value reports required", func(t *testing.T) {
		f := emailField()
		f.SetValue("")

		assert.False(t, f.Validate())
		msg, hasErr := f.Error()
		assert.True(t, hasErr)
		assert.Equal(t, "This field is required", msg)
	})

	t.Run("malformed value reports email", func(t *testing.T) {
		f := emailField()
		f.SetValue("not-an-email")

		assert.False(t, f.Validate())
		msg, _ := f.Error()
		assert.Equal(t, "Invalid email address", msg)
	})

	t.Run("valid value clears error", func(t *testing.T) {
		f := emailField()
		f.SetValue("")
		f.Validate()

		f.SetValue("a@b.com")
		assert.True(t, f.Validate())
		_, hasErr := f.Error()
		assert.False(t, hasErr)
		assert.True(t, f.Valid())
	})

	t.Run("set value does not revalidate", func(t *testing.T) {
		f := emailField()
		f.SetValue("")
		f.Validate()

		f.SetValue("a@b.com")
		msg, hasErr := f.Error()
		assert.True(t, hasErr, "error should remain until the next pass")
		assert.Equal(t, "This field is required", msg)
	})

	t.Run("validate is idempotent", func(t *testing.T) {
		f := emailField()
		f.SetValue("nope")

		f.Validate()
		first, _ := f.Error()
		f.Validate()
		second, _ := f.Error()
		assert.Equal(t, first, second)
	})

	t.Run("no rules always valid", func(t *testing.T) {
		f := New("free")
		f.SetValue("")
		assert.True(t, f.Validate())
	})
}

func TestValidator_ShortCircuit(t *testing.T) {
	var calls []string
	track := func(name string, pass bool) rules.Rule {
		return rules.New(name, func(string) bool {
			calls = append(calls, name)
			return pass
		})
	}

	f := New("f", track("first", true), track("second", false), track("third", false))

	assert.False(t, f.Validate())
	msg, _ := f.Error()
	assert.Equal(t, "second", msg, "first failing rule wins")
	assert.Equal(t, []string{"first", "second"}, calls, "rules after the failure are skipped")
}

func TestValidator_ValidIffAllRulesPass(t *testing.T) {
	c := rules.NewCatalog()
	rs := []rules.Rule{c.Required, c.Name, c.PasswordLength}

	for _, value := range []string{"", "ab", "abc", "abcdefg", "abcdefgh", "a long enough value"} {
		f := New("f", rs...)
		f.SetValue(value)

		want := true
		for _, r := range rs {
			want = want && r.Check(value)
		}
		assert.Equal(t, want, f.Validate(), "value %q", value)
		assert.Equal(t, want, f.Valid(), "value %q", value)
	}
}

func TestValidator_OnValidate(t *testing.T) {
	t.Run("fires on every pass", func(t *testing.T) {
		f := emailField()
		var got []Result
		f.OnValidate(func(r Result) { got = append(got, r) })

		f.SetValue("x")
		f.Validate()
		f.Validate()
		f.SetValue("a@b.com")
		f.Validate()

		require.Len(t, got, 3)
		assert.Equal(t, Result{Field: "email", Value: "x", Error: "Invalid email address", Valid: false}, got[0])
		assert.Equal(t, got[0], got[1])
		assert.Equal(t, Result{Field: "email", Value: "a@b.com", Valid: true}, got[2])
	})

	t.Run("set value does not notify", func(t *testing.T) {
		f := emailField()
		calls := 0
		f.OnValidate(func(Result) { calls++ })

		f.SetValue("a@b.com")
		assert.Zero(t, calls)
	})

	t.Run("registration order", func(t *testing.T) {
		f := emailField()
		var order []int
		f.OnValidate(func(Result) { order = append(order, 1) })
		f.OnValidate(func(Result) { order = append(order, 2) })

		f.Validate()
		assert.Equal(t, []int{1, 2}, order)
	})

	t.Run("state is settled before listeners run", func(t *testing.T) {
		f := emailField()
		var seen bool
		f.OnValidate(func(Result) { seen = f.Valid() })

		f.SetValue("a@b.com")
		f.Validate()
		assert.True(t, seen)
	})

	t.Run("unsubscribe", func(t *testing.T) {
		f := emailField()
		calls := 0
		stop := f.OnValidate(func(Result) { calls++ })

		f.Validate()
		stop()
		stop()
		f.Validate()
		assert.Equal(t, 1, calls)
	})

	t.Run("unsubscribe during notify", func(t *testing.T) {
		f := emailField()
		var stop func()
		calls, other := 0, 0
		stop = f.OnValidate(func(Result) {
			calls++
			stop()
		})
		f.OnValidate(func(Result) { other++ })

		f.Validate()
		f.Validate()
		assert.Equal(t, 1, calls)
		assert.Equal(t, 2, other)
	})
}
