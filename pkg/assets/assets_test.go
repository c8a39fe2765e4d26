//go:build !integration

package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadContents(t *testing.T) {
	payload, err := Payload()
	require.NoError(t, err, "Embedded payload should open")

	script, err := fs.ReadFile(payload, ScriptName)
	require.NoError(t, err, "install.sh must be part of the payload")
	assert.Contains(t, string(script), "TARGET_DIR", "Script must consume the environment contract")
	assert.Contains(t, string(script), "PROJECT_NAME", "Script must consume the environment contract")

	commands, err := Commands()
	require.NoError(t, err, "Command templates should open")
	entries, err := fs.Glob(commands, "prodkit.*.md")
	require.NoError(t, err, "Glob over templates should succeed")
	assert.NotEmpty(t, entries, "Payload ships at least one command template")
}

func TestMaterialize(t *testing.T) {
	dir := t.TempDir()

	scriptPath, err := Materialize(dir)
	require.NoError(t, err, "Materialize should succeed into a temp dir")
	assert.Equal(t, filepath.Join(dir, ScriptName), scriptPath, "Returned path should point at the script")

	info, err := os.Stat(scriptPath)
	require.NoError(t, err, "Script should exist on disk")
	assert.NotZero(t, info.Mode()&0o100, "Script should be executable by the owner")

	templates, err := filepath.Glob(filepath.Join(dir, CommandsDir, "prodkit.*.md"))
	require.NoError(t, err, "Template glob should succeed")
	assert.NotEmpty(t, templates, "Templates should be materialized alongside the script")
}
