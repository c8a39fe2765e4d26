//go:build !integration

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranshivaraju/prodkit/pkg/host"
)

func TestNewInitCommand(t *testing.T) {
	cmd := NewInitCommand()
	require.NotNil(t, cmd, "Command should be created")
	assert.Equal(t, "init [project_name]", cmd.Use, "Command usage should accept an optional project name")

	for _, flag := range []string{"here", "ai", "terminal", "force"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "Should have --%s flag", flag)
	}
	forceFlag := cmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag, "Should have --force flag")
	assert.Equal(t, "f", forceFlag.Shorthand, "Force flag should have short form 'f'")
}

func TestTerminalChoices(t *testing.T) {
	t.Run("windows menu", func(t *testing.T) {
		choices := terminalChoices(host.OSWindows)
		require.Len(t, choices, 2, "Windows offers powershell and bash")
		assert.Equal(t, "powershell", choices[0].Value, "PowerShell is the first windows choice")
		assert.Equal(t, "bash", choices[1].Value, "Bash (WSL/Git Bash) is the second windows choice")
	})

	t.Run("unix menu", func(t *testing.T) {
		for _, osFamily := range []host.OS{host.OSLinux, host.OSMacOS} {
			choices := terminalChoices(osFamily)
			require.Len(t, choices, 3, "Unix offers bash, zsh and fish")
			values := []string{choices[0].Value, choices[1].Value, choices[2].Value}
			assert.Equal(t, []string{"bash", "zsh", "fish"}, values, "Unix menu order is fixed")
		}
	})

	t.Run("every menu value is a valid terminal type", func(t *testing.T) {
		for _, osFamily := range []host.OS{host.OSLinux, host.OSMacOS, host.OSWindows} {
			for _, choice := range terminalChoices(osFamily) {
				assert.Contains(t, terminalTypes, choice.Value, "Menu value %q must be in the terminal domain", choice.Value)
			}
		}
	})
}

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple name", input: "demo-project", wantErr: false},
		{name: "dot means current directory", input: ".", wantErr: false},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "whitespace only rejected", input: "   ", wantErr: true},
		{name: "forward slash rejected", input: "a/b", wantErr: true},
		{name: "backslash rejected", input: `a\b`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateProjectName(tt.input)
			if tt.wantErr {
				assert.Error(t, err, "Name %q should be rejected", tt.input)
			} else {
				assert.NoError(t, err, "Name %q should be accepted", tt.input)
			}
		})
	}
}
