package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/formgate/internal/core/config"
)

func TestRules_Raw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
rules:
  username:
    message: "Lowercase letters | digits"
    pattern: "^[a-z0-9]+$"
defaults:
  - match: "*user*"
    rules: [required, username]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := config.Load(path, t.TempDir())
	require.NoError(t, err)

	out, err := runCmd(t, NewRulesCmd(&Flags{Config: cfg}), "", "rules", "--raw")
	require.NoError(t, err)

	assert.Contains(t, out, "| `email` | built-in | Invalid email address |")
	assert.Contains(t, out, "| `zipCode` | built-in | Invalid zip code |")
	assert.Contains(t, out, "| `username` | config | Lowercase letters \\| digits |")
	assert.Contains(t, out, "| `*user*` | required, username |")
}

func TestRules_Rendered(t *testing.T) {
	out, err := runCmd(t, NewRulesCmd(testFlags(t)), "", "rules")
	require.NoError(t, err)

	assert.Contains(t, out, "Rules")
	assert.Contains(t, out, "email")
}
