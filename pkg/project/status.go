// Package project inspects a provisioned prodkit project: its marker
// directories, persisted configuration and the catalog of installed command
// templates. Everything here is read-only and degrades gracefully; a broken
// or absent installation is reported, never a crash.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/kiranshivaraju/prodkit/pkg/logger"
)

var statusLog = logger.New("project:status")

// Fixed on-disk layout produced by the provisioning script.
const (
	ProdkitDir  = ".prodkit"
	ClaudeDir   = ".claude"
	ConfigFile  = "config.yml"
	CommandsDir = "commands"
)

// State is a fresh snapshot of a project's installation, rebuilt on every
// inspection and never cached across invocations.
type State struct {
	ProdkitDirFound bool
	ClaudeDirFound  bool
	ConfigFound     bool
	ConfigError     error

	// Empty string means "not set" in the persisted configuration.
	ProjectName   string
	CurrentSprint string
}

// Installed reports whether both marker directories are present.
func (s State) Installed() bool {
	return s.ProdkitDirFound && s.ClaudeDirFound
}

// Inspect reads the installation state under dir. Missing directories,
// a missing config file, missing keys and parse errors all land in the
// returned State rather than failing.
func Inspect(dir string) State {
	state := State{
		ProdkitDirFound: dirExists(filepath.Join(dir, ProdkitDir)),
		ClaudeDirFound:  dirExists(filepath.Join(dir, ClaudeDir)),
	}

	configPath := filepath.Join(dir, ProdkitDir, ConfigFile)
	content, err := os.ReadFile(configPath)
	if err != nil {
		statusLog.Printf("Config not readable: %v", err)
		return state
	}
	state.ConfigFound = true

	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		statusLog.Printf("Config parse failed: %v", err)
		state.ConfigError = fmt.Errorf("error reading %s: %w", ConfigFile, err)
		return state
	}

	state.ProjectName = nestedString(doc, "project", "name")
	state.CurrentSprint = nestedString(doc, "sprint", "current")
	return state
}

// nestedString fetches doc[group][key] as a display string, tolerating
// missing groups, missing keys and non-string scalars.
func nestedString(doc map[string]any, group, key string) string {
	groupValue, ok := doc[group].(map[string]any)
	if !ok {
		return ""
	}
	value, ok := groupValue[key]
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
