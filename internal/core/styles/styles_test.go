package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemes(t *testing.T) {
	assert.Equal(t, []string{"catppuccin-mocha", "gruvbox", "tokyo-night"}, ThemeNames())

	_, ok := GetPalette(DefaultTheme)
	assert.True(t, ok)

	_, ok = GetPalette("neon")
	assert.False(t, ok)
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)
	SetTheme(p)

	assert.Equal(t, p.Primary, ColorPrimary)
	assert.Equal(t, p.Error, ColorError)
}

func TestGlamourStyle(t *testing.T) {
	cfg := GlamourStyle()
	require.NotNil(t, cfg.Document.Color)
	assert.Equal(t, "#c0caf5", *cfg.Document.Color)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#7aa2f7", Hex(themes[DefaultTheme].Primary))
	assert.Empty(t, Hex(nil))
}
