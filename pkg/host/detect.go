// Package host detects attributes of the machine prodkit runs on: the
// operating system family, the user's shell, and the presence of external
// tools the workflow depends on.
package host

import (
	"os"
	"runtime"
	"strings"

	"github.com/kiranshivaraju/prodkit/pkg/logger"
)

var detectLog = logger.New("host:detect")

// OS is a coarse operating system family.
type OS string

const (
	OSLinux   OS = "linux"
	OSMacOS   OS = "macos"
	OSWindows OS = "windows"
)

// Shell is a supported shell family. The same set doubles as the terminal
// profile label passed to the provisioning script.
type Shell string

const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// Profile combines the detected OS, shell and derived terminal label. It is
// computed once per invocation and only ever used to seed interactive
// defaults.
type Profile struct {
	OS       OS
	Shell    Shell
	Terminal Shell
}

// ClassifyOS maps a platform identifier (runtime.GOOS style) onto an OS
// family. Anything unrecognized is treated as linux.
func ClassifyOS(platform string) OS {
	switch strings.ToLower(platform) {
	case "darwin", "macos":
		return OSMacOS
	case "windows":
		return OSWindows
	default:
		return OSLinux
	}
}

// ClassifyShell maps the SHELL environment variable onto a shell family.
// Substring matching follows bash > zsh > fish priority; an empty or
// unmatched value falls back to powershell on windows and bash elsewhere.
func ClassifyShell(shellEnv string, osFamily OS) Shell {
	switch {
	case strings.Contains(shellEnv, "bash"):
		return ShellBash
	case strings.Contains(shellEnv, "zsh"):
		return ShellZsh
	case strings.Contains(shellEnv, "fish"):
		return ShellFish
	case osFamily == OSWindows:
		return ShellPowerShell
	default:
		return ShellBash
	}
}

// TerminalProfile derives the best-guess terminal label from OS and shell:
// windows always gets powershell, macos narrows to zsh or bash, linux keeps
// the detected shell.
func TerminalProfile(osFamily OS, shell Shell) Shell {
	switch osFamily {
	case OSWindows:
		return ShellPowerShell
	case OSMacOS:
		if shell == ShellZsh {
			return ShellZsh
		}
		return ShellBash
	default:
		return shell
	}
}

// Detect builds the environment profile from the ambient platform and SHELL
// variable. It always succeeds.
func Detect() Profile {
	osFamily := ClassifyOS(runtime.GOOS)
	shell := ClassifyShell(os.Getenv("SHELL"), osFamily)
	profile := Profile{
		OS:       osFamily,
		Shell:    shell,
		Terminal: TerminalProfile(osFamily, shell),
	}
	detectLog.Printf("Detected environment: os=%s shell=%s terminal=%s", profile.OS, profile.Shell, profile.Terminal)
	return profile
}
