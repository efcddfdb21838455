package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/formgate/internal/core/config"
	"github.com/colonyops/formgate/internal/core/field"
	"github.com/colonyops/formgate/internal/core/rules"
)

func TestValidateHook(t *testing.T) {
	c := rules.NewCatalog()
	v := field.New("zip", c.Required, c.ZipCode)
	hook := validate(v)

	err := hook("")
	require.Error(t, err)
	assert.Equal(t, "This field is required", err.Error())

	err = hook("1234")
	require.Error(t, err)
	assert.Equal(t, "Invalid zip code", err.Error())

	require.NoError(t, hook("12345-6789"))
	assert.Equal(t, "12345-6789", v.Value())
	assert.True(t, v.Valid())
}

func TestValidateHookUpdatesForm(t *testing.T) {
	cfg := config.DefaultConfig()
	cf, err := cfg.Compile(config.DefaultForm)
	require.NoError(t, err)

	name, ok := cf.Validator.Field("name")
	require.True(t, ok)

	_ = validate(name)("Al")
	assert.False(t, cf.Validator.IsValid())

	_ = validate(name)("Alice")
	assert.True(t, cf.Validator.IsValid())
}

func TestNew(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Forms["survey"] = config.Form{
		Fields: []config.FormField{
			{Name: "color", Options: []string{"red", "green"}},
			{Name: "notes", Multiline: true},
			{Name: "pin", Secret: true},
		},
	}
	cf, err := cfg.Compile("survey")
	require.NoError(t, err)

	p := New(cf, Options{AltScreen: true})
	require.NotNil(t, p.form)
	assert.Len(t, p.values, 3)
}

func TestKeyMap(t *testing.T) {
	km := KeyMap()
	assert.Equal(t, []string{"ctrl+c", "esc"}, km.Quit.Keys())
}

func TestTheme(t *testing.T) {
	th := Theme()
	require.NotNil(t, th)
	assert.NotEqual(t, th.Focused.Title.GetBold(), th.Blurred.Title.GetBold())
}
