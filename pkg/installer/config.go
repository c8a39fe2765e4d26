// Package installer turns a resolved installation configuration into a run
// of the external provisioning script: it prepares the target directory,
// derives the environment-variable contract and interprets the script's
// exit status.
package installer

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/kiranshivaraju/prodkit/pkg/host"
)

// Environment variable names forming the closed contract with the
// provisioning script. Nothing else crosses the process boundary.
const (
	EnvTargetDir    = "TARGET_DIR"
	EnvProjectName  = "PROJECT_NAME"
	EnvAIPlatform   = "AI_PLATFORM"
	EnvTerminalType = "TERMINAL_TYPE"
	EnvForceInstall = "FORCE_INSTALL"
)

// Config is the fully resolved set of choices driving one installation.
// Every field must be populated before the invoker runs.
type Config struct {
	ProjectName string
	AIPlatform  string
	Terminal    host.Shell
	TargetDir   string
	Here        bool
	Force       bool
}

// Validate checks that all installation dimensions are resolved.
func (c Config) Validate() error {
	switch {
	case c.ProjectName == "":
		return fmt.Errorf("project name is not resolved")
	case c.AIPlatform == "":
		return fmt.Errorf("AI platform is not resolved")
	case c.Terminal == "":
		return fmt.Errorf("terminal type is not resolved")
	case c.TargetDir == "":
		return fmt.Errorf("target directory is not resolved")
	}
	return nil
}

// EnvironmentMap derives the variables passed to the provisioning script.
// The key set is fixed: four always, FORCE_INSTALL only under --force.
func (c Config) EnvironmentMap() map[string]string {
	env := map[string]string{
		EnvTargetDir:    c.TargetDir,
		EnvProjectName:  c.ProjectName,
		EnvAIPlatform:   c.AIPlatform,
		EnvTerminalType: string(c.Terminal),
	}
	if c.Force {
		env[EnvForceInstall] = "1"
	}
	return env
}

// overlayEnviron appends the contract variables onto a base environment.
// Later entries win for duplicate keys, so the overlay takes precedence
// while the child keeps normal tool discovery behavior.
func overlayEnviron(base []string, overlay map[string]string) []string {
	keys := make([]string, 0, len(overlay))
	for key := range overlay {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(base)+len(overlay))
	env = append(env, base...)
	for _, key := range keys {
		env = append(env, key+"="+overlay[key])
	}
	return env
}

// ResolveTarget couples the target directory and project name. With --here
// or the "." positional the target is the working directory and the name is
// its base name, so the two can never disagree.
func ResolveTarget(cwd, projectName string, here bool) (targetDir, resolvedName string) {
	if here || projectName == "." {
		return cwd, filepath.Base(cwd)
	}
	return filepath.Join(cwd, projectName), projectName
}

// ResolveChoice validates a pre-supplied value against an enumerated choice
// set. An empty supplied value means the caller must prompt, seeded with
// defaultValue; a supplied value outside the set is an error, never silently
// accepted.
func ResolveChoice(supplied string, choices []string, defaultValue string) (selected string, needPrompt bool, err error) {
	if supplied == "" {
		return defaultValue, true, nil
	}
	for _, choice := range choices {
		if supplied == choice {
			return supplied, false, nil
		}
	}
	return "", false, fmt.Errorf("invalid value %q (choose from %v)", supplied, choices)
}
