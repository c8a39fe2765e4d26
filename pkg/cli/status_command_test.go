//go:build !integration

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranshivaraju/prodkit/pkg/project"
)

func TestNewStatusCommand(t *testing.T) {
	cmd := NewStatusCommand()
	require.NotNil(t, cmd, "Command should be created")
	assert.Equal(t, "status", cmd.Use, "Command name should be 'status'")
}

func TestRunStatusNeverFails(t *testing.T) {
	t.Run("uninitialized directory", func(t *testing.T) {
		t.Chdir(t.TempDir())
		assert.NoError(t, RunStatus(), "Status is diagnostic and always exits 0")
	})

	t.Run("initialized directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, project.ProdkitDir), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(dir, project.ClaudeDir), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, project.ProdkitDir, project.ConfigFile),
			[]byte("project:\n  name: demo\nsprint:\n  current: \"0.1\"\n"), 0o644))
		t.Chdir(dir)
		assert.NoError(t, RunStatus(), "Status on a full installation exits 0")
	})

	t.Run("malformed config", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, project.ProdkitDir), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, project.ProdkitDir, project.ConfigFile),
			[]byte("project: [broken\n"), 0o644))
		t.Chdir(dir)
		assert.NoError(t, RunStatus(), "A broken config is reported, not fatal")
	})
}

func TestDisplayHelpers(t *testing.T) {
	assert.Equal(t, "Not set", displayValue(""), "Empty value renders as Not set")
	assert.Equal(t, "demo", displayValue("demo"), "Non-empty value passes through")
	assert.Equal(t, "Not set", displaySprint(""), "Empty sprint renders as Not set")
	assert.Equal(t, "v1.2", displaySprint("1.2"), "Sprint gets a v prefix")
}
