// Package assets ships the provisioning payload embedded in the prodkit
// binary: the install.sh script and the command template files it copies
// into a target project.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed payload
var payloadFS embed.FS

// ScriptName is the provisioning script inside the payload.
const ScriptName = "install.sh"

// CommandsDir is the payload subdirectory holding command templates.
const CommandsDir = "commands"

// Payload returns the embedded payload tree rooted at its top level.
func Payload() (fs.FS, error) {
	return fs.Sub(payloadFS, "payload")
}

// Commands returns the embedded command template directory.
func Commands() (fs.FS, error) {
	payload, err := Payload()
	if err != nil {
		return nil, err
	}
	return fs.Sub(payload, CommandsDir)
}

// Materialize writes the payload into dir and returns the path of the
// provisioning script. The script is written executable; everything else is
// read-only for the owner.
func Materialize(dir string) (string, error) {
	payload, err := Payload()
	if err != nil {
		return "", fmt.Errorf("failed to open embedded payload: %w", err)
	}

	err = fs.WalkDir(payload, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dest := filepath.Join(dir, filepath.FromSlash(path))
		if entry.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}
		content, err := fs.ReadFile(payload, path)
		if err != nil {
			return err
		}
		mode := os.FileMode(0o644)
		if entry.Name() == ScriptName {
			mode = 0o755
		}
		return os.WriteFile(dest, content, mode)
	})
	if err != nil {
		return "", fmt.Errorf("failed to materialize payload: %w", err)
	}

	return filepath.Join(dir, ScriptName), nil
}
