//go:build !integration

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ProdkitDir), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProdkitDir, ConfigFile), []byte(content), 0o644))
}

func TestInspect(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		state := Inspect(t.TempDir())
		assert.False(t, state.ProdkitDirFound, "No .prodkit directory expected")
		assert.False(t, state.ClaudeDirFound, "No .claude directory expected")
		assert.False(t, state.ConfigFound, "No config expected")
		assert.False(t, state.Installed(), "Empty directory is not installed")
		assert.Empty(t, state.ProjectName, "Project name should be unset")
	})

	t.Run("full installation", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ClaudeDir), 0o755))
		writeConfig(t, dir, "project:\n  name: demo-project\nsprint:\n  current: \"1.2\"\n")

		state := Inspect(dir)
		assert.True(t, state.Installed(), "Both marker directories present")
		assert.True(t, state.ConfigFound, "Config should be found")
		require.NoError(t, state.ConfigError, "Valid config should parse")
		assert.Equal(t, "demo-project", state.ProjectName, "Project name should be read")
		assert.Equal(t, "1.2", state.CurrentSprint, "Sprint should be read")
	})

	t.Run("numeric sprint tolerated", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "project:\n  name: demo\nsprint:\n  current: 2\n")

		state := Inspect(dir)
		assert.Equal(t, "2", state.CurrentSprint, "Numeric scalar should render as string")
	})

	t.Run("missing keys degrade to unset", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "project: {}\n")

		state := Inspect(dir)
		assert.True(t, state.ConfigFound, "Config file exists")
		require.NoError(t, state.ConfigError, "Partial config is not an error")
		assert.Empty(t, state.ProjectName, "Missing name should be unset")
		assert.Empty(t, state.CurrentSprint, "Missing sprint should be unset")
	})

	t.Run("malformed config reported without failing", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "project: [unclosed\n  name broken\n")

		state := Inspect(dir)
		assert.True(t, state.ConfigFound, "Config file exists")
		assert.Error(t, state.ConfigError, "Parse error should be captured")
		assert.Empty(t, state.ProjectName, "No values from a malformed config")
	})

	t.Run("prodkit dir without claude dir is not installed", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ProdkitDir), 0o755))

		state := Inspect(dir)
		assert.True(t, state.ProdkitDirFound, ".prodkit directory present")
		assert.False(t, state.Installed(), "Installation requires both markers")
	})
}
